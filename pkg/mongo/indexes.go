package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Product lookups by id
	{
		CollectionName: ProductsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_product_id_unique"),
		},
	},
	// Category filtering
	{
		CollectionName: ProductsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_category"),
		},
	},
	// Catalog display order
	{
		CollectionName: ProductsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetName("idx_position"),
		},
	},
}

func EnsureIndexes(ctx context.Context, db *mongo.Database, log logrus.FieldLogger) error {
	log.Info("starting index creation")

	for _, idxConfig := range requiredIndexes {
		collection := db.Collection(idxConfig.CollectionName)

		indexName, err := collection.Indexes().CreateOne(ctx, idxConfig.IndexModel)
		if err != nil {
			return errors.Wrapf(err, "create index on %s", idxConfig.CollectionName)
		}

		log.WithFields(logrus.Fields{
			"index":      indexName,
			"collection": idxConfig.CollectionName,
		}).Info("index ensured")
	}
	return nil
}
