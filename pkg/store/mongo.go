package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/puzzle"
)

const (
	defaultDatabase   = "crossgen"
	defaultCollection = "puzzles"
)

// Mongo is a MongoDB-backed Store. Puzzles are stored as one document per
// puzzle with the puzzle ID as _id.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongo connects to MongoDB at uri and verifies the connection with a
// ping. Puzzles live in the crossgen.puzzles collection.
func NewMongo(ctx context.Context, uri string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "mongodb ping")
	}
	return &Mongo{
		client: client,
		coll:   client.Database(defaultDatabase).Collection(defaultCollection),
	}, nil
}

// Save upserts the puzzle document.
func (m *Mongo) Save(ctx context.Context, p *puzzle.Puzzle) error {
	_, err := m.coll.ReplaceOne(ctx,
		bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "save puzzle %s", p.ID)
	}
	return nil
}

// Get retrieves a puzzle by ID.
func (m *Mongo) Get(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	var p puzzle.Puzzle
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "get puzzle %s", id)
	}
	return &p, nil
}

// List returns all puzzles, most recent first.
func (m *Mongo) List(ctx context.Context) ([]*puzzle.Puzzle, error) {
	cur, err := m.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "list puzzles")
	}
	defer cur.Close(ctx)

	var list []*puzzle.Puzzle
	if err := cur.All(ctx, &list); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "decode puzzles")
	}
	return list, nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
