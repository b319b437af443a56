// cache — Redis-кеш для ответов внешнего поиска и витринного каталога.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache — JSON-кеш поверх Redis. Nil-значение *Cache безопасно:
// Get всегда промахивается, Set — no-op (кеширование выключено).
type Cache struct {
	client *redis.Client
}

// New подключается к Redis по URL вида redis://host:port.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}

	return &Cache{client: client}, nil
}

// Get читает значение по ключу в dest. Возвращает true только при
// валидном попадании; любая ошибка Redis/декодирования — промах.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(data, dest) == nil
}

// Set сохраняет значение с заданным TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal error: %w", err)
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Close закрывает соединение с Redis.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// Key строит стабильный ключ из произвольных частей: сырой состав
// хешируется, чтобы не упираться в лимиты и символы ключей Redis.
func Key(scope string, parts ...string) string {
	raw := strings.ToLower(strings.Join(parts, ":"))
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("hustles:%s:%x", scope, hash[:8])
}
