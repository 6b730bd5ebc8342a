package catalog

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"julianmorley.ca/con-plar/shopvibe/pkg/models"
)

// ErrCacheMiss is returned by a Cache that holds no catalog.
var ErrCacheMiss = errors.New("catalog cache miss")

// Source supplies the ordered product catalog.
type Source interface {
	Products(ctx context.Context) ([]models.Product, error)
}

// Cache stores a catalog snapshot in front of a slower Source.
type Cache interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	SetProducts(ctx context.Context, products []models.Product) error
}

// Finder looks up a single product. ok is false when no product has id.
type Finder interface {
	ProductByID(ctx context.Context, id string) (product models.Product, ok bool, err error)
}

// ProductCache holds individual products for quick views.
type ProductCache interface {
	GetProduct(ctx context.Context, id string) (product models.Product, ok bool, err error)
	SetProduct(ctx context.Context, product models.Product) error
}

// StaticSource serves a fixed in-memory catalog.
type StaticSource struct {
	products []models.Product
}

func NewStaticSource(products []models.Product) *StaticSource {
	cp := make([]models.Product, len(products))
	copy(cp, products)
	return &StaticSource{products: cp}
}

func (s *StaticSource) Products(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *StaticSource) ProductByID(ctx context.Context, id string) (models.Product, bool, error) {
	p, ok := Find(s.products, id)
	return p, ok, nil
}

// CachedSource reads through Cache to Origin. Cache failures are logged and
// never fail a read.
type CachedSource struct {
	Origin Source
	Cache  Cache
	Log    logrus.FieldLogger
}

func (s *CachedSource) Products(ctx context.Context) ([]models.Product, error) {
	products, err := s.Cache.GetProducts(ctx)
	if err == nil {
		return products, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.logger().WithError(err).Warn("catalog cache read failed")
	}

	products, err = s.Origin.Products(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog from origin")
	}

	if cacheErr := s.Cache.SetProducts(ctx, products); cacheErr != nil {
		s.logger().WithError(cacheErr).Warn("failed to cache catalog")
	}
	return products, nil
}

func (s *CachedSource) logger() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}
