package msglog

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/batchcorp/lpsgateway/types"
	"github.com/batchcorp/lpsgateway/validate"
)

const (
	DefaultMongoDatabase   = "lpsgateway"
	DefaultMongoCollection = "lps_messages"

	// MongoConnectionTimeout determines how long before a connection attempt to mongo is timed out
	MongoConnectionTimeout = time.Second * 10
)

type mongoEntry struct {
	ID        string            `bson:"_id"`
	LpsID     string            `bson:"lps_id"`
	LpsKey    string            `bson:"lps_key"`
	Category  string            `bson:"category"`
	Content   map[string]string `bson:"content"`
	CreatedAt time.Time         `bson:"created_at"`
}

type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
	log        *logrus.Entry
}

func NewMongo(cfg *Config) (*Mongo, error) {
	if cfg.MongoDSN == "" {
		return nil, validate.ErrMissingDSN
	}

	ctx, cancel := context.WithTimeout(context.Background(), MongoConnectionTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDSN))
	if err != nil {
		return nil, errors.Wrap(err, "unable to open mongo connection")
	}

	database := cfg.MongoDatabase
	if database == "" {
		database = DefaultMongoDatabase
	}

	collection := cfg.MongoCollection
	if collection == "" {
		collection = DefaultMongoCollection
	}

	log := cfg.Log
	if log == nil {
		log = logrus.WithField("pkg", "msglog")
	}

	m := &Mongo{
		client:     client,
		collection: client.Database(database).Collection(collection),
		log:        log.WithField("backend", TypeMongo),
	}

	_, err = m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "content.0", Value: 1},
			{Key: "content.7", Value: 1},
			{Key: "content.11", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "unable to create reversal index")
	}

	return m, nil
}

func (m *Mongo) Append(ctx context.Context, lpsID, lpsKey string, category types.Category, content types.LegacyMessage) (*Entry, error) {
	if err := validateAppend(lpsID, content); err != nil {
		return nil, persistenceError(err)
	}

	e := &Entry{
		ID:        uuid.NewV4().String(),
		LpsID:     lpsID,
		LpsKey:    lpsKey,
		Category:  category,
		Content:   content.Clone(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	doc := &mongoEntry{
		ID:        e.ID,
		LpsID:     e.LpsID,
		LpsKey:    e.LpsKey,
		Category:  string(e.Category),
		Content:   e.Content.StringMap(),
		CreatedAt: e.CreatedAt,
	}

	if _, err := m.collection.InsertOne(ctx, doc); err != nil {
		return nil, persistenceError(errors.Wrap(err, "unable to insert entry"))
	}

	return e, nil
}

func (m *Mongo) Get(ctx context.Context, id string) (*Entry, error) {
	return m.findOne(ctx, bson.M{"_id": id})
}

func (m *Mongo) FindByContent(ctx context.Context, predicates ...Predicate) (*Entry, error) {
	filter := bson.M{}

	for _, p := range predicates {
		field := "content." + strconv.Itoa(p.Field)

		if p.IgnoreLeadingZeros {
			filter[field] = bson.M{"$regex": "^0*" + regexp.QuoteMeta(strings.TrimLeft(p.Value, "0")) + "$"}
			continue
		}

		filter[field] = p.Value
	}

	return m.findOne(ctx, filter)
}

func (m *Mongo) findOne(ctx context.Context, filter interface{}) (*Entry, error) {
	doc := &mongoEntry{}

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	if err := m.collection.FindOne(ctx, filter, opts).Decode(doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "unable to find entry")
	}

	return &Entry{
		ID:        doc.ID,
		LpsID:     doc.LpsID,
		LpsKey:    doc.LpsKey,
		Category:  types.Category(doc.Category),
		Content:   types.FromStringMap(doc.Content),
		CreatedAt: doc.CreatedAt.UTC(),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
