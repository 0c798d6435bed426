package redis

import (
	"errors"
	"log"
	"time"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/entity"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/repository"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
)

// categoriesCacheKey - ключ, под которым кешируется полный список категорий
const categoriesCacheKey = "categories:all"

// CachedCategoryRepo оборачивает CategoryRepository сквозным чтением через кеш.
// Категории через API не изменяются, единственная инвалидация - истечение TTL.
type CachedCategoryRepo struct {
	inner repository.CategoryRepository
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewCachedCategoryRepo создает кеширующий декоратор над репозиторием категорий
func NewCachedCategoryRepo(inner repository.CategoryRepository, cache repository.CacheRepository, ttl time.Duration) *CachedCategoryRepo {
	return &CachedCategoryRepo{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

// GetAll возвращает категории из кеша, при промахе - из базы с заполнением кеша.
// Недоступность Redis не ломает чтение: запрос уходит в базу.
func (r *CachedCategoryRepo) GetAll() ([]entity.Category, error) {
	var cached []entity.Category
	err := r.cache.GetJSON(categoriesCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[CachedCategoryRepo] Ошибка чтения кеша категорий: %v", err)
		// Поврежденное значение сбрасываем, чтобы не спотыкаться о него на каждом чтении
		if delErr := r.cache.Delete(categoriesCacheKey); delErr != nil {
			log.Printf("[CachedCategoryRepo] Не удалось сбросить ключ %s: %v", categoriesCacheKey, delErr)
		}
	}

	categories, err := r.inner.GetAll()
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetJSON(categoriesCacheKey, categories, r.ttl); err != nil {
		log.Printf("[CachedCategoryRepo] Не удалось заполнить кеш категорий: %v", err)
	}

	return categories, nil
}
