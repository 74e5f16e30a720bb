// Package mongo implements the interface for MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mgo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tarancss/adptools/lib/store"
)

// Database and collection holding the audit log.
const (
	Database   = "audit"
	Collection = "calls"
)

const timeout = 5 * time.Second

// Mongo implements a connection to a MongoDB database.
type Mongo struct {
	c *mgo.Client
}

// MongoCall implements a store call record in MongoDB.
type MongoCall struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Tool     string             `bson:"tool"`
	Chain    string             `bson:"chain,omitempty"`
	Args     string             `bson:"args"`
	IsError  bool               `bson:"isError"`
	Error    string             `bson:"error,omitempty"`
	Upstream int                `bson:"upstream"`
	Skipped  int                `bson:"skipped"`
	Millis   int64              `bson:"ms"`
	TS       time.Time          `bson:"ts"`
}

// Call converts a MongoCall to store.Call type.
func (c MongoCall) Call() store.Call {
	return store.Call{
		ID:       c.ID.Hex(),
		Tool:     c.Tool,
		Chain:    c.Chain,
		Args:     c.Args,
		IsError:  c.IsError,
		Error:    c.Error,
		Upstream: c.Upstream,
		Skipped:  c.Skipped,
		Millis:   c.Millis,
		TS:       c.TS,
	}
}

// New returns a Mongo client connection to the specified MongoDB database uri.
func New(uri string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := mgo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongo DB: %w", err)
	}

	return &Mongo{c: c}, nil
}

// CloseMongo will close a database connection. Must be called at termination time.
func (m *Mongo) CloseMongo() error {
	return m.c.Disconnect(context.Background())
}

// SaveCall inserts a tool call record.
func (m *Mongo) SaveCall(c store.Call) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := m.c.Database(Database).Collection(Collection).InsertOne(ctx, MongoCall{
		Tool:     c.Tool,
		Chain:    c.Chain,
		Args:     c.Args,
		IsError:  c.IsError,
		Error:    c.Error,
		Upstream: c.Upstream,
		Skipped:  c.Skipped,
		Millis:   c.Millis,
		TS:       c.TS,
	})
	if err != nil {
		return fmt.Errorf("could not insert call in db: %w", err)
	}

	return nil
}

// GetCalls returns the latest tool call records, newest first.
func (m *Mongo) GetCalls(tool string, limit int) ([]store.Call, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	filter := bson.M{}
	if tool != "" {
		filter["tool"] = tool
	}

	opts := options.Find().SetSort(bson.D{{Key: "ts", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(store.Limit(limit)))

	cur, err := m.c.Database(Database).Collection(Collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error getting calls from mongo DB: %w", err)
	}

	var docs []MongoCall
	if err = cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	calls := make([]store.Call, 0, len(docs))
	for _, d := range docs {
		calls = append(calls, d.Call())
	}

	return calls, nil
}
