package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ohtu-ilmo/review-service/internal/cache"
	"github.com/ohtu-ilmo/review-service/internal/models"
	"github.com/ohtu-ilmo/review-service/internal/repositories"
)

// MockGroupRepository is a mock implementation of GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *models.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByInstructor(ctx context.Context, instructorID string) ([]*models.Group, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Group), args.Error(1)
}

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rev *models.InstructorReview) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uint) (*models.InstructorReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InstructorReview), args.Error(1)
}

func (m *MockReviewRepository) GetAnsweredGroupIDs(ctx context.Context, reviewerID string) ([]uint, error) {
	args := m.Called(ctx, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockReviewRepository) ExistsForGroup(ctx context.Context, groupID uint, reviewerID string) (bool, error) {
	args := m.Called(ctx, groupID, reviewerID)
	return args.Bool(0), args.Error(1)
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicRepository) GetByID(ctx context.Context, id uint) (*models.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topic), args.Error(1)
}

func (m *MockTopicRepository) List(ctx context.Context, filters repositories.TopicFilters) ([]*models.Topic, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Topic), args.Get(1).(int64), args.Error(2)
}

func (m *MockTopicRepository) Update(ctx context.Context, topic *models.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

// mockRepository aggregates the repository mocks
type mockRepository struct {
	group  *MockGroupRepository
	review *MockReviewRepository
	topic  *MockTopicRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		group:  new(MockGroupRepository),
		review: new(MockReviewRepository),
		topic:  new(MockTopicRepository),
	}
}

func (r *mockRepository) Group() repositories.GroupRepository   { return r.group }
func (r *mockRepository) Review() repositories.ReviewRepository { return r.review }
func (r *mockRepository) Topic() repositories.TopicRepository   { return r.topic }

// memoryCache is an in-process CacheService for tests
type memoryCache struct {
	data    map[string][]byte
	deletes []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = data
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := c.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	c.deletes = append(c.deletes, key)
	return nil
}

func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
