package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

// regionRepository implements domain.RegionRepository
type regionRepository struct {
	store *Store
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(store *Store) domain.RegionRepository {
	return &regionRepository{store: store}
}

// GetByID retrieves a region by its ID
func (r *regionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	region, ok := r.store.regions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRegionNotFound, id)
	}
	return &region, nil
}

// Create adds a region to the catalog
func (r *regionRepository) Create(ctx context.Context, region *domain.Region) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if region == nil {
		return fmt.Errorf("region is nil")
	}
	if err := region.Validate(); err != nil {
		return fmt.Errorf("invalid region: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.regions[region.ID]; exists {
		return fmt.Errorf("region %s already exists", region.ID)
	}
	r.store.regions[region.ID] = *region
	return nil
}

// List retrieves the regions of a market sorted by name
// If market is empty, returns all regions
func (r *regionRepository) List(ctx context.Context, market domain.AssetClass) ([]*domain.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	regions := make([]*domain.Region, 0, len(r.store.regions))
	for _, region := range r.store.regions {
		if market != "" && region.Market != market {
			continue
		}
		region := region
		regions = append(regions, &region)
	}

	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Name == regions[j].Name {
			return regions[i].Market < regions[j].Market
		}
		return regions[i].Name < regions[j].Name
	})

	return regions, nil
}
