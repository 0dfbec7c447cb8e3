package writer

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joseph-ayodele/rollcall-tracker/internal/common"
	"github.com/joseph-ayodele/rollcall-tracker/internal/record"
)

// Mongo upserts records into a collection keyed by _id.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
	logger     *slog.Logger
}

func NewMongo(ctx context.Context, cfg common.MongoConfig, logger *slog.Logger) (*Mongo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, common.WrapError(err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, common.WrapError(err, "pinging mongodb")
	}

	logger.Info("writer.mongo.connected", "database", cfg.Database, "collection", cfg.Collection)
	return &Mongo{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		timeout:    cfg.Timeout,
		logger:     logger,
	}, nil
}

func (m *Mongo) Write(ctx context.Context, rec record.Record) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	id := rec.ID()
	opts := options.Update().SetUpsert(true)
	_, err := m.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M(rec.Fields())},
		opts,
	)
	if err != nil {
		return common.NewWriterError("upserting "+id, err)
	}
	m.logger.Debug("writer.mongo.upserted", "id", id)
	return nil
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
