package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	redisclient "github.com/redis/go-redis/v9"

	"julianmorley.ca/con-plar/shopvibe/pkg/catalog"
	"julianmorley.ca/con-plar/shopvibe/pkg/models"
)

const (
	productsKey     = "catalog:products"
	DefaultCacheTTL = 10 * time.Minute
)

var (
	_ catalog.Cache        = (*CatalogCache)(nil)
	_ catalog.ProductCache = (*CatalogCache)(nil)
)

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// CatalogCache stores the catalog in redis. The full ordered list lives under
// one key; each product is written alongside it under product:{id} so quick
// views don't need to decode the whole catalog.
type CatalogCache struct {
	client redisclient.UniversalClient
	ttl    time.Duration
}

func NewCatalogCache(client redisclient.UniversalClient, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// GetProducts returns catalog.ErrCacheMiss when nothing is cached.
func (c *CatalogCache) GetProducts(ctx context.Context) ([]models.Product, error) {
	raw, err := c.client.Get(ctx, productsKey).Bytes()
	if errors.Is(err, redisclient.Nil) {
		return nil, catalog.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "read cached catalog")
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, errors.Wrap(err, "decode cached catalog")
	}
	return products, nil
}

// SetProducts replaces the cached catalog in a single transaction.
func (c *CatalogCache) SetProducts(ctx context.Context, products []models.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "encode catalog")
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, productsKey, payload, c.ttl)
	for _, p := range products {
		productJSON, err := json.Marshal(p)
		if err != nil {
			return errors.Wrapf(err, "encode product %s", p.ID)
		}
		pipe.Set(ctx, productKey(p.ID), productJSON, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "write catalog to redis")
	}
	return nil
}

// GetProduct reads one cached product. ok is false on a miss.
func (c *CatalogCache) GetProduct(ctx context.Context, id string) (models.Product, bool, error) {
	raw, err := c.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redisclient.Nil) {
		return models.Product{}, false, nil
	}
	if err != nil {
		return models.Product{}, false, errors.Wrapf(err, "read cached product %s", id)
	}

	var p models.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Product{}, false, errors.Wrapf(err, "decode cached product %s", id)
	}
	return p, true, nil
}

// SetProduct caches a single product fetched from the origin.
func (c *CatalogCache) SetProduct(ctx context.Context, p models.Product) error {
	productJSON, err := json.Marshal(p)
	if err != nil {
		return errors.Wrapf(err, "encode product %s", p.ID)
	}
	if err := c.client.Set(ctx, productKey(p.ID), productJSON, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "cache product %s", p.ID)
	}
	return nil
}

// Invalidate drops the cached catalog and every cached product.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	keys := []string{productsKey}
	iter := c.client.Scan(ctx, 0, productKey("*"), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "scan cached products")
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "invalidate cached catalog")
	}
	return nil
}

func (c *CatalogCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
