package tests

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"fare/internal/domain"
	"fare/internal/redis"
	"fare/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK SUBSCRIPTION REPOSITORY
// ──────────────────────────────────────────────

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository.
type MockSubscriptionRepository struct {
	mu    sync.RWMutex
	tiers map[string]domain.SubscriptionTier

	// Counters for verification
	GetTierCallCount int32

	// Error injection
	GetTierError error
}

// NewMockSubscriptionRepository creates a new mock subscription repository.
func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		tiers: make(map[string]domain.SubscriptionTier),
	}
}

var _ repository.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// SetTier assigns a tier to a user (for test setup).
func (m *MockSubscriptionRepository) SetTier(userID string, tier domain.SubscriptionTier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tiers[userID] = tier
}

func (m *MockSubscriptionRepository) GetTier(ctx context.Context, userID string) (domain.SubscriptionTier, error) {
	atomic.AddInt32(&m.GetTierCallCount, 1)
	if m.GetTierError != nil {
		return domain.TierNone, m.GetTierError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	tier, ok := m.tiers[userID]
	if !ok {
		return domain.TierNone, nil // No subscription is not an error.
	}
	return tier, nil
}

// ──────────────────────────────────────────────
// MOCK RIDE REPOSITORY
// ──────────────────────────────────────────────

// MockRideRepository is a mock implementation of RideRepository.
type MockRideRepository struct {
	mu    sync.RWMutex
	rides map[string]*domain.RideRecord

	// Counters for verification
	CreateCallCount    int32
	GetByUserCallCount int32

	// Error injection
	CreateError    error
	GetByUserError error
}

// NewMockRideRepository creates a new mock ride repository.
func NewMockRideRepository() *MockRideRepository {
	return &MockRideRepository{
		rides: make(map[string]*domain.RideRecord),
	}
}

var _ repository.RideRepository = (*MockRideRepository)(nil)

// AddRide adds a ride record to the mock repository.
func (m *MockRideRepository) AddRide(ride *domain.RideRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides[ride.ID] = ride
}

func (m *MockRideRepository) Create(ctx context.Context, ride *domain.RideRecord) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides[ride.ID] = ride
	return nil
}

func (m *MockRideRepository) GetByID(ctx context.Context, id string) (*domain.RideRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ride, ok := m.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *ride
	return &copy, nil
}

func (m *MockRideRepository) GetByUser(ctx context.Context, userID string, limit int) ([]*domain.RideRecord, error) {
	atomic.AddInt32(&m.GetByUserCallCount, 1)
	if m.GetByUserError != nil {
		return nil, m.GetByUserError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.RideRecord, 0)
	for _, r := range m.rides {
		if r.UserID != userID {
			continue
		}
		copy := *r
		result = append(result, &copy)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// GetRide returns the ride by ID (for test assertions).
func (m *MockRideRepository) GetRide(id string) *domain.RideRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rides[id]
}

// CountRides returns the number of stored ride records.
func (m *MockRideRepository) CountRides() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rides)
}

// ──────────────────────────────────────────────
// MOCK TIER CACHE
// ──────────────────────────────────────────────

// MockTierCache is a mock implementation of TierCacheInterface.
type MockTierCache struct {
	mu      sync.RWMutex
	entries map[string]domain.SubscriptionTier

	// Counters for verification
	GetTierCallCount int32
	SetTierCallCount int32

	// Error injection
	GetTierError error
	SetTierError error
}

// NewMockTierCache creates a new mock tier cache.
func NewMockTierCache() *MockTierCache {
	return &MockTierCache{
		entries: make(map[string]domain.SubscriptionTier),
	}
}

var _ redis.TierCacheInterface = (*MockTierCache)(nil)

// Prime seeds a cache entry (for test setup).
func (m *MockTierCache) Prime(userID string, tier domain.SubscriptionTier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[userID] = tier
}

func (m *MockTierCache) GetTier(ctx context.Context, userID string) (domain.SubscriptionTier, bool, error) {
	atomic.AddInt32(&m.GetTierCallCount, 1)
	if m.GetTierError != nil {
		return "", false, m.GetTierError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	tier, ok := m.entries[userID]
	if !ok {
		return "", false, nil // Cache miss
	}
	return tier, true, nil
}

func (m *MockTierCache) SetTier(ctx context.Context, userID string, tier domain.SubscriptionTier) error {
	atomic.AddInt32(&m.SetTierCallCount, 1)
	if m.SetTierError != nil {
		return m.SetTierError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[userID] = tier
	return nil
}

// CachedTier returns the cached tier for assertions.
func (m *MockTierCache) CachedTier(userID string) (domain.SubscriptionTier, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tier, ok := m.entries[userID]
	return tier, ok
}

// ──────────────────────────────────────────────
// HELPER ERRORS
// ──────────────────────────────────────────────

var (
	ErrMockDBConstraint = errors.New("mock: unique constraint violation")
	ErrMockTimeout      = errors.New("mock: operation timeout")
)
