// Package cache caché Redis de lecturas rápidas que el motor consulta antes de abrir la transacción.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/picking-api/internal/application/inventory"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

var _ inventory.ProductChecker = (*ProductCache)(nil)

const keyPrefix = "picking:product:"

// ProductCache read-through de existencia de productos. Solo guarda positivos: un producto
// recién dado de alta se ve de inmediato. El catálogo no tiene bajas, así que no hay invalidación.
// Si Redis falla se consulta la fuente directamente.
type ProductCache struct {
	client *redis.Client
	source repository.ProductRepository
	ttl    time.Duration
	log    zerolog.Logger
}

// NewProductCache construye la caché sobre el catálogo.
func NewProductCache(client *redis.Client, source repository.ProductRepository, ttl time.Duration, log zerolog.Logger) *ProductCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProductCache{client: client, source: source, ttl: ttl, log: log}
}

// Exists consulta Redis y, en caso de fallo, el catálogo.
func (c *ProductCache) Exists(ctx context.Context, itemCode string) (bool, error) {
	key := keyPrefix + itemCode
	err := c.client.Get(ctx, key).Err()
	switch {
	case err == nil:
		return true, nil
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("item_code", itemCode).Msg("redis no disponible, consultando catálogo")
	}

	exists, err := c.source.Exists(ctx, itemCode)
	if err != nil {
		return false, err
	}
	if exists {
		if err := c.client.Set(ctx, key, "1", c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("item_code", itemCode).Msg("no se pudo guardar en caché")
		}
	}
	return exists, nil
}

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
