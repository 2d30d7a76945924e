package msglog

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/types"
	"github.com/batchcorp/lpsgateway/validate"
)

const (
	RedisKeyPrefix = "lpsgateway:msglog:"

	redisAllKey = RedisKeyPrefix + "all"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Redis stores each entry as a JSON string and maintains a sorted set per
// MTI/date/STAN tuple (scored by creation time) for reversal lookups.
type Redis struct {
	client *redis.Client
	log    *logrus.Entry
}

func NewRedis(cfg *Config) (*Redis, error) {
	if cfg.RedisAddress == "" {
		return nil, validate.ErrMissingAddress
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDatabase,
	})

	log := cfg.Log
	if log == nil {
		log = logrus.WithField("pkg", "msglog")
	}

	return &Redis{
		client: client,
		log:    log.WithField("backend", TypeRedis),
	}, nil
}

func entryKey(id string) string {
	return RedisKeyPrefix + "entry:" + id
}

func redisIndexKey(key string) string {
	return RedisKeyPrefix + "idx:" + key
}

func (r *Redis) Append(ctx context.Context, lpsID, lpsKey string, category types.Category, content types.LegacyMessage) (*Entry, error) {
	if err := validateAppend(lpsID, content); err != nil {
		return nil, persistenceError(err)
	}

	e := &Entry{
		ID:        uuid.NewV4().String(),
		LpsID:     lpsID,
		LpsKey:    lpsKey,
		Category:  category,
		Content:   content.Clone(),
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(e)
	if err != nil {
		return nil, persistenceError(errors.Wrap(err, "unable to marshal entry"))
	}

	score := float64(e.CreatedAt.UnixNano())

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, entryKey(e.ID), data, 0)
		pipe.ZAdd(ctx, redisIndexKey(contentIndexKey(e.Content)), &redis.Z{Score: score, Member: e.ID})
		pipe.ZAdd(ctx, redisAllKey, &redis.Z{Score: score, Member: e.ID})

		return nil
	})
	if err != nil {
		return nil, persistenceError(errors.Wrap(err, "unable to write entry to redis"))
	}

	return e, nil
}

func (r *Redis) Get(ctx context.Context, id string) (*Entry, error) {
	data, err := r.client.Get(ctx, entryKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}

		return nil, errors.Wrapf(err, "unable to get entry '%s'", id)
	}

	e := &Entry{}

	if err := json.Unmarshal(data, e); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal entry '%s'", id)
	}

	return e, nil
}

// FindByContent uses the composite index when the predicates pin MTI, date and
// STAN; anything else falls back to walking every entry.
func (r *Redis) FindByContent(ctx context.Context, predicates ...Predicate) (*Entry, error) {
	setKey := redisAllKey

	if key := indexKey(predicates...); key != "" {
		setKey = redisIndexKey(key)
	} else {
		r.log.Debug("predicates not covered by index, scanning all entries")
	}

	ids, err := r.client.ZRevRange(ctx, setKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read index")
	}

	for _, id := range ids {
		e, err := r.Get(ctx, id)
		if err != nil {
			if err == ErrNotFound {
				r.log.Warnf("index references missing entry '%s'", id)
				continue
			}

			return nil, err
		}

		if Matches(e.Content, predicates...) {
			return e, nil
		}
	}

	return nil, ErrNotFound
}

func (r *Redis) Close(_ context.Context) error {
	return r.client.Close()
}
