package handler

import (
	"errors"
	"log"
	"time"

	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// Ключи кешируемых списочных ответов
const (
	CategoryListCacheKey = "view:/category"
	QuizListCacheKey     = "view:/quiz"
)

// ViewCache кеширует собранные тела списочных ответов. Запись живет до TTL
// или до первой мутации соответствующего ресурса. Ошибки кеша не фатальны:
// ответ в любом случае собирается из БД.
type ViewCache struct {
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewViewCache создает кеш списочных ответов
func NewViewCache(cache repository.CacheRepository, ttl time.Duration) *ViewCache {
	return &ViewCache{cache: cache, ttl: ttl}
}

// Get заполняет dest кешированным телом, если запись есть
func (v *ViewCache) Get(key string, dest interface{}) bool {
	if v == nil || v.cache == nil {
		return false
	}
	if err := v.cache.GetJSON(key, dest); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[ViewCache] Ошибка чтения ключа %s: %v", key, err)
		}
		return false
	}
	return true
}

// Put сохраняет собранное тело ответа
func (v *ViewCache) Put(key string, value interface{}) {
	if v == nil || v.cache == nil {
		return
	}
	if err := v.cache.SetJSON(key, value, v.ttl); err != nil {
		log.Printf("[ViewCache] Ошибка записи ключа %s: %v", key, err)
	}
}

// Invalidate удаляет записи после мутации
func (v *ViewCache) Invalidate(keys ...string) {
	if v == nil || v.cache == nil {
		return
	}
	for _, key := range keys {
		if err := v.cache.Delete(key); err != nil {
			log.Printf("[ViewCache] Ошибка удаления ключа %s: %v", key, err)
		}
	}
}
