// Package msglog is the append-only record of every inbound legacy message.
// Entries are written once on receipt and never mutated; the reversal path
// queries them by content rather than by id.
package msglog

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/types"
	"github.com/batchcorp/lpsgateway/validate"
)

const (
	TypeMemory   = "memory"
	TypeRedis    = "redis"
	TypePostgres = "postgres"
	TypeMongo    = "mongo"
)

var (
	ErrNotFound        = errors.New("message log entry not found")
	ErrMissingContent  = errors.New("content cannot be empty")
	ErrMissingLpsID    = errors.New("lps id cannot be empty")
	ErrUnsupportedType = errors.New("unsupported message log type")
)

type Entry struct {
	ID        string              `json:"id"`
	LpsID     string              `json:"lps_id"`
	LpsKey    string              `json:"lps_key"`
	Category  types.Category      `json:"category"`
	Content   types.LegacyMessage `json:"content"`
	CreatedAt time.Time           `json:"created_at"`
}

// Predicate is an exact match on one content field. With IgnoreLeadingZeros
// both sides are compared after stripping leading '0' characters.
type Predicate struct {
	Field              int
	Value              string
	IgnoreLeadingZeros bool
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . IMessageLog
type IMessageLog interface {
	// Append persists a new entry. Failures wrap types.ErrPersistence.
	Append(ctx context.Context, lpsID, lpsKey string, category types.Category, content types.LegacyMessage) (*Entry, error)

	// Get returns the entry with the given id or ErrNotFound
	Get(ctx context.Context, id string) (*Entry, error)

	// FindByContent returns the most recent entry whose content satisfies
	// every predicate, or ErrNotFound.
	FindByContent(ctx context.Context, predicates ...Predicate) (*Entry, error)

	Close(ctx context.Context) error
}

type Config struct {
	Type string

	RedisAddress  string
	RedisPassword string
	RedisDatabase int

	PostgresDSN            string
	PostgresMaxConnections int

	MongoDSN        string
	MongoDatabase   string
	MongoCollection string

	Log *logrus.Entry
}

// New returns the message log backend selected by cfg.Type
func New(cfg *Config) (IMessageLog, error) {
	if cfg == nil {
		return nil, validate.ErrMissingMsgLogConfig
	}

	switch cfg.Type {
	case TypeMemory, "":
		return NewMemory(cfg.Log), nil
	case TypeRedis:
		return NewRedis(cfg)
	case TypePostgres:
		return NewPostgres(cfg)
	case TypeMongo:
		return NewMongo(cfg)
	}

	return nil, errors.Wrapf(ErrUnsupportedType, "'%s'", cfg.Type)
}

func validateAppend(lpsID string, content types.LegacyMessage) error {
	if lpsID == "" {
		return ErrMissingLpsID
	}

	if len(content) == 0 {
		return ErrMissingContent
	}

	return nil
}

func persistenceError(err error) error {
	return errors.Wrap(types.ErrPersistence, err.Error())
}

// Matches reports whether content satisfies every predicate
func Matches(content types.LegacyMessage, predicates ...Predicate) bool {
	for _, p := range predicates {
		v, ok := content[p.Field]

		if p.IgnoreLeadingZeros {
			if strings.TrimLeft(v, "0") != strings.TrimLeft(p.Value, "0") {
				return false
			}

			continue
		}

		if !ok || v != p.Value {
			return false
		}
	}

	return true
}

// indexFields are the fields covered by the composite reversal index
var indexFields = []int{types.FieldMTI, types.FieldTransmissionDate, types.FieldSTAN}

// indexKey returns the composite index key for a predicate set, or "" if the
// predicates do not pin every indexed field exactly.
func indexKey(predicates ...Predicate) string {
	values := make(map[int]string)

	for _, p := range predicates {
		if !p.IgnoreLeadingZeros {
			values[p.Field] = p.Value
		}
	}

	parts := make([]string, 0, len(indexFields))

	for _, f := range indexFields {
		v, ok := values[f]
		if !ok {
			return ""
		}

		parts = append(parts, v)
	}

	return strings.Join(parts, ":")
}

func contentIndexKey(content types.LegacyMessage) string {
	parts := make([]string, 0, len(indexFields))

	for _, f := range indexFields {
		parts = append(parts, content[f])
	}

	return strings.Join(parts, ":")
}
