package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrRegionNotFound is returned when a region id is not in the catalog
var ErrRegionNotFound = errors.New("region not found")

// RegionRepository defines the interface for the region catalog
type RegionRepository interface {
	// GetByID retrieves a region by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Region, error)

	// Create adds a region to the catalog
	Create(ctx context.Context, region *Region) error

	// List retrieves the regions of a market, sorted by name
	// If market is empty, returns all regions
	List(ctx context.Context, market AssetClass) ([]*Region, error)
}
