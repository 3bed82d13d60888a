package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shenikar/mapstl_api/internal/metrics"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "crime:"

// nopCache используется, когда Redis не настроен
type nopCache struct{}

func (nopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (nopCache) Set(context.Context, string, []byte) error { return nil }

// cacheKey склеивает нормализованные параметры запроса в ключ
func cacheKey(parts ...any) string {
	items := make([]string, len(parts))
	for i, p := range parts {
		items[i] = fmt.Sprint(p)
	}
	return strings.Join(items, ":")
}

// cached отдает результат из кеша или вызывает load и сохраняет результат.
// Ошибки кеша не прерывают запрос: они логируются, и данные читаются из бд.
func cached[T any](ctx context.Context, s *crimeService, log *logrus.Entry, op, key string, load func() (T, error)) (T, error) {
	if _, disabled := s.cache.(nopCache); disabled {
		return load()
	}

	fullKey := cacheKeyPrefix + op
	if key != "" {
		fullKey += ":" + key
	}

	raw, ok, err := s.cache.Get(ctx, fullKey)
	switch {
	case err != nil:
		log.WithError(err).Warn("Failed to read result cache, falling back to database")
	case ok:
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			metrics.RecordCache(op, true)
			return v, nil
		}
		log.WithField("key", fullKey).Warn("Failed to decode cached result, falling back to database")
	}
	metrics.RecordCache(op, false)

	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Warn("Failed to encode result for cache")
		return v, nil
	}
	if err := s.cache.Set(ctx, fullKey, payload); err != nil {
		log.WithError(err).Warn("Failed to write result cache")
	}
	return v, nil
}
