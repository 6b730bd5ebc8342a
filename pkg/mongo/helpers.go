package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"julianmorley.ca/con-plar/shopvibe/pkg/catalog"
	"julianmorley.ca/con-plar/shopvibe/pkg/models"
)

// productDocument is the stored shape of a product. Position keeps the
// catalog in the order it was seeded.
type productDocument struct {
	models.Product `bson:",inline"`
	Position       int `bson:"position"`
}

func toDocuments(products []models.Product) []interface{} {
	docs := make([]interface{}, 0, len(products))
	for i, p := range products {
		docs = append(docs, productDocument{Product: p, Position: i})
	}
	return docs
}

func fromDocuments(docs []productDocument) []models.Product {
	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.Product)
	}
	return products
}

var (
	_ catalog.Source = (*ProductStore)(nil)
	_ catalog.Finder = (*ProductStore)(nil)
)

// ProductStore serves the catalog from a MongoDB collection.
type ProductStore struct {
	coll *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{coll: db.Collection(ProductsCollection)}
}

// Products returns the whole catalog in position order.
func (s *ProductStore) Products(ctx context.Context) ([]models.Product, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return fromDocuments(docs), nil
}

// ProductByID looks up a single product. ok is false when no document matches.
func (s *ProductStore) ProductByID(ctx context.Context, id string) (models.Product, bool, error) {
	var doc productDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, false, nil
	}
	if err != nil {
		return models.Product{}, false, errors.Wrapf(err, "find product %s", id)
	}
	return doc.Product, true, nil
}

// Seed inserts products when the collection is empty and reports how many
// were written. A populated collection is left alone.
func (s *ProductStore) Seed(ctx context.Context, products []models.Product) (int, error) {
	count, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	if count > 0 || len(products) == 0 {
		return 0, nil
	}

	result, err := s.coll.InsertMany(ctx, toDocuments(products))
	if err != nil {
		return 0, errors.Wrap(err, "seed products")
	}
	return len(result.InsertedIDs), nil
}

func (s *ProductStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}
