package session

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	griderrors "github.com/mveltman/gridlock/pkg/errors"
)

// MongoStore is a Mongo-backed session store for multi-instance deployments,
// where any server instance may receive the next pointer-move of a gesture.
// A TTL index on expires_at reaps abandoned gestures server-side.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig holds connection parameters for the Mongo backend.
type MongoConfig struct {
	URI        string // mongodb:// connection string
	Database   string // defaults to "gridlock"
	Collection string // defaults to "sessions"
}

// NewMongoStore connects to Mongo, verifies the connection, and ensures the
// TTL index exists.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "gridlock"
	}
	if cfg.Collection == "" {
		cfg.Collection = "sessions"
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, griderrors.Wrap(griderrors.ErrCodeStore, err, "connect to mongo")
	}
	if err := client.Ping(connCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, griderrors.Wrap(griderrors.ErrCodeStore, err, "ping mongo")
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)

	// expireAfterSeconds 0 drops documents as soon as expires_at passes.
	_, err = coll.Indexes().CreateOne(connCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, griderrors.Wrap(griderrors.ErrCodeStore, err, "create ttl index")
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Get retrieves a session by ID. The TTL index reaps lazily, so expiry is
// also checked here.
func (s *MongoStore) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, griderrors.Wrap(griderrors.ErrCodeStore, err, "load session %s", id)
	}
	if sess.IsExpired() {
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Put stores or replaces a session.
func (s *MongoStore) Put(ctx context.Context, sess *Session) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": sess.ID},
		sess,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return griderrors.Wrap(griderrors.ErrCodeStore, err, "store session %s", sess.ID)
	}
	return nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return griderrors.Wrap(griderrors.ErrCodeStore, err, "delete session %s", id)
	}
	return nil
}

// Close disconnects from Mongo.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
