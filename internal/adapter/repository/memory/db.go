package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

// Store is the process-local backing store shared by the memory repositories.
// The region catalog is static reference data; nothing here outlives the process.
type Store struct {
	mu      sync.RWMutex
	regions map[uuid.UUID]domain.Region
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		regions: make(map[uuid.UUID]domain.Region),
	}
}
