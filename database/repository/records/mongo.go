package recordsRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type collectionDoc struct {
	Name    string `bson:"_id"`
	Version int64  `bson:"version"`
	Data    string `bson:"data"`
}

type mongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store backed by MongoDB. Each named collection is a
// single document; the compare-and-swap filters on the stored version.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{coll: db.Collection("record_collections")}
}

func (s *mongoStore) Load(ctx context.Context, collection string) (Snapshot, error) {
	var doc collectionDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": collection}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Data: doc.Data, Version: doc.Version}, nil
}

func (s *mongoStore) Save(ctx context.Context, collection string, data string, expected int64) error {
	if expected == 0 {
		_, err := s.coll.InsertOne(ctx, collectionDoc{Name: collection, Version: 1, Data: data})
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return err
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": collection, "version": expected},
		bson.M{"$set": bson.M{"data": data, "version": expected + 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrConflict
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, collection string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": collection})
	return err
}
