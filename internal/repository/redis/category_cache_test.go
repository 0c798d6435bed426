package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
)

// ============================================================================
// Моки для CachedCategoryRepo
// ============================================================================

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

// MockCacheRepository реализует repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

var testCategories = []entity.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
}

// ============================================================================
// Тесты для CachedCategoryRepo
// ============================================================================

func TestCachedCategoryRepo_GetAll_CacheHit(t *testing.T) {
	// Arrange
	mockInner := new(MockCategoryRepository)
	mockCache := new(MockCacheRepository)

	mockCache.On("GetJSON", categoriesCacheKey, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(1).(*[]entity.Category)
			*dest = testCategories
		}).
		Return(nil)

	repo := NewCachedCategoryRepo(mockInner, mockCache, 5*time.Minute)

	// Act
	categories, err := repo.GetAll()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, testCategories, categories)
	mockInner.AssertNotCalled(t, "GetAll")
	mockCache.AssertExpectations(t)
}

func TestCachedCategoryRepo_GetAll_CacheMiss(t *testing.T) {
	// Arrange
	mockInner := new(MockCategoryRepository)
	mockCache := new(MockCacheRepository)

	mockCache.On("GetJSON", categoriesCacheKey, mock.Anything).Return(apperrors.ErrNotFound)
	mockInner.On("GetAll").Return(testCategories, nil)
	mockCache.On("SetJSON", categoriesCacheKey, testCategories, 5*time.Minute).Return(nil)

	repo := NewCachedCategoryRepo(mockInner, mockCache, 5*time.Minute)

	// Act
	categories, err := repo.GetAll()

	// Assert: промах - читаем базу и заполняем кеш
	require.NoError(t, err)
	assert.Equal(t, testCategories, categories)
	mockInner.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCachedCategoryRepo_GetAll_CorruptCacheValue(t *testing.T) {
	// Arrange: GetJSON падает не с ErrNotFound - ключ сбрасывается, читаем базу
	mockInner := new(MockCategoryRepository)
	mockCache := new(MockCacheRepository)

	mockCache.On("GetJSON", categoriesCacheKey, mock.Anything).Return(errors.New("unexpected end of JSON input"))
	mockCache.On("Delete", categoriesCacheKey).Return(nil)
	mockInner.On("GetAll").Return(testCategories, nil)
	mockCache.On("SetJSON", categoriesCacheKey, testCategories, time.Minute).Return(nil)

	repo := NewCachedCategoryRepo(mockInner, mockCache, time.Minute)

	// Act
	categories, err := repo.GetAll()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, testCategories, categories)
	mockCache.AssertExpectations(t)
	mockInner.AssertExpectations(t)
}

func TestCachedCategoryRepo_GetAll_InnerError(t *testing.T) {
	// Arrange
	mockInner := new(MockCategoryRepository)
	mockCache := new(MockCacheRepository)

	mockCache.On("GetJSON", categoriesCacheKey, mock.Anything).Return(apperrors.ErrNotFound)
	mockInner.On("GetAll").Return(nil, errors.New("connection refused"))

	repo := NewCachedCategoryRepo(mockInner, mockCache, time.Minute)

	// Act
	categories, err := repo.GetAll()

	// Assert: ошибка базы уходит наверх, кеш не заполняется
	assert.Error(t, err)
	assert.Nil(t, categories)
	mockCache.AssertNotCalled(t, "SetJSON", mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedCategoryRepo_GetAll_SetJSONFailureIsNotFatal(t *testing.T) {
	// Arrange: невозможность записать кеш не должна ломать ответ
	mockInner := new(MockCategoryRepository)
	mockCache := new(MockCacheRepository)

	mockCache.On("GetJSON", categoriesCacheKey, mock.Anything).Return(apperrors.ErrNotFound)
	mockInner.On("GetAll").Return(testCategories, nil)
	mockCache.On("SetJSON", categoriesCacheKey, testCategories, time.Minute).Return(errors.New("redis down"))

	repo := NewCachedCategoryRepo(mockInner, mockCache, time.Minute)

	// Act
	categories, err := repo.GetAll()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, testCategories, categories)
}
