package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

func newRegion(name string, market domain.AssetClass) *domain.Region {
	return &domain.Region{
		ID:           uuid.New(),
		Name:         name,
		Market:       market,
		AveragePrice: decimal.NewFromInt(100_000),
		Inventory:    10,
		GrowthRate:   5,
		Volatility:   1,
		BaseVolume:   100,
	}
}

func TestRegionRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository(NewStore())

	region := newRegion("Tokyo", domain.AssetRealEstate)
	require.NoError(t, repo.Create(ctx, region))

	got, err := repo.GetByID(ctx, region.ID)
	require.NoError(t, err)
	assert.Equal(t, *region, *got)

	// Returned value is a copy
	got.Name = "Osaka"
	again, err := repo.GetByID(ctx, region.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", again.Name)
}

func TestRegionRepository_GetMissing(t *testing.T) {
	repo := NewRegionRepository(NewStore())

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRegionNotFound))
	assert.Contains(t, err.Error(), "not found")
}

func TestRegionRepository_CreateRejectsDuplicatesAndInvalid(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository(NewStore())

	region := newRegion("Dubai", domain.AssetRealEstate)
	require.NoError(t, repo.Create(ctx, region))

	err := repo.Create(ctx, region)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	invalid := newRegion("", domain.AssetRealEstate)
	err = repo.Create(ctx, invalid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "region name cannot be empty")

	assert.Error(t, repo.Create(ctx, nil))
}

func TestRegionRepository_ListFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository(NewStore())

	require.NoError(t, repo.Create(ctx, newRegion("London", domain.AssetRealEstate)))
	require.NoError(t, repo.Create(ctx, newRegion("Dubai", domain.AssetRealEstate)))
	require.NoError(t, repo.Create(ctx, newRegion("Europe", domain.AssetCarbonCredits)))

	realEstate, err := repo.List(ctx, domain.AssetRealEstate)
	require.NoError(t, err)
	require.Len(t, realEstate, 2)
	assert.Equal(t, "Dubai", realEstate[0].Name)
	assert.Equal(t, "London", realEstate[1].Name)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.List(ctx, domain.AssetArt)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRegionRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository(NewStore())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, newRegion("Region", domain.AssetArt))
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.List(ctx, domain.AssetArt)
		}()
	}
	wg.Wait()

	regions, err := repo.List(ctx, domain.AssetArt)
	require.NoError(t, err)
	assert.Len(t, regions, 20)
}

func TestRegionRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewRegionRepository(NewStore())

	assert.ErrorIs(t, repo.Create(ctx, newRegion("Paris", domain.AssetArt)), context.Canceled)
	_, err := repo.List(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}
