package msglog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/types"
	"github.com/batchcorp/lpsgateway/validate"
)

const DefaultPostgresMaxConnections = 10

var postgresMigrations = []string{
	`CREATE TABLE IF NOT EXISTS lps_messages (
		id         TEXT PRIMARY KEY,
		lps_id     TEXT NOT NULL,
		lps_key    TEXT NOT NULL,
		category   TEXT NOT NULL,
		content    JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS lps_messages_reversal_idx ON lps_messages
		((content->>'0'), (content->>'7'), (content->>'11'))`,
	`CREATE INDEX IF NOT EXISTS lps_messages_lps_key_idx ON lps_messages (lps_key)`,
}

// Postgres keeps message content as JSONB with an expression index over the
// fields used for reversal correlation.
type Postgres struct {
	pool *pgx.ConnPool
	log  *logrus.Entry
}

func NewPostgres(cfg *Config) (*Postgres, error) {
	if cfg.PostgresDSN == "" {
		return nil, validate.ErrMissingDSN
	}

	connCfg, err := pgx.ParseConnectionString(cfg.PostgresDSN)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse postgres DSN")
	}

	maxConns := cfg.PostgresMaxConnections
	if maxConns <= 0 {
		maxConns = DefaultPostgresMaxConnections
	}

	pool, err := pgx.NewConnPool(pgx.ConnPoolConfig{
		ConnConfig:     connCfg,
		MaxConnections: maxConns,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to create postgres connection pool")
	}

	log := cfg.Log
	if log == nil {
		log = logrus.WithField("pkg", "msglog")
	}

	p := &Postgres{
		pool: pool,
		log:  log.WithField("backend", TypePostgres),
	}

	if err := p.migrate(context.Background()); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "unable to run migrations")
	}

	return p, nil
}

func (p *Postgres) migrate(ctx context.Context) error {
	for _, m := range postgresMigrations {
		if _, err := p.pool.ExecEx(ctx, m, nil); err != nil {
			return err
		}
	}

	return nil
}

func (p *Postgres) Append(ctx context.Context, lpsID, lpsKey string, category types.Category, content types.LegacyMessage) (*Entry, error) {
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

	data, err := json.Marshal(e.Content.StringMap())
	if err != nil {
		return nil, persistenceError(errors.Wrap(err, "unable to marshal content"))
	}

	_, err = p.pool.ExecEx(ctx,
		`INSERT INTO lps_messages (id, lps_id, lps_key, category, content, created_at)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6)`,
		nil, e.ID, e.LpsID, e.LpsKey, string(e.Category), string(data), e.CreatedAt)
	if err != nil {
		return nil, persistenceError(errors.Wrap(err, "unable to insert entry"))
	}

	return e, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (*Entry, error) {
	row := p.pool.QueryRowEx(ctx,
		`SELECT id, lps_id, lps_key, category, content::text, created_at FROM lps_messages WHERE id = $1`,
		nil, id)

	return scanEntry(row)
}

func (p *Postgres) FindByContent(ctx context.Context, predicates ...Predicate) (*Entry, error) {
	where, args := buildWhere(predicates...)

	query := `SELECT id, lps_id, lps_key, category, content::text, created_at FROM lps_messages`
	if where != "" {
		query += " WHERE " + where
	}

	query += " ORDER BY created_at DESC LIMIT 1"

	return scanEntry(p.pool.QueryRowEx(ctx, query, nil, args...))
}

func (p *Postgres) Close(_ context.Context) error {
	p.pool.Close()
	return nil
}

func buildWhere(predicates ...Predicate) (string, []interface{}) {
	clauses := make([]string, 0, len(predicates))
	args := make([]interface{}, 0, len(predicates))

	for i, pr := range predicates {
		if pr.IgnoreLeadingZeros {
			clauses = append(clauses, fmt.Sprintf("ltrim(coalesce(content->>'%d', ''), '0') = $%d", pr.Field, i+1))
			args = append(args, strings.TrimLeft(pr.Value, "0"))

			continue
		}

		clauses = append(clauses, fmt.Sprintf("content->>'%d' = $%d", pr.Field, i+1))
		args = append(args, pr.Value)
	}

	return strings.Join(clauses, " AND "), args
}

func scanEntry(row *pgx.Row) (*Entry, error) {
	var (
		e        Entry
		category string
		content  string
	)

	if err := row.Scan(&e.ID, &e.LpsID, &e.LpsKey, &category, &content, &e.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "unable to scan entry")
	}

	raw := make(map[string]string)

	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal content")
	}

	e.Category = types.Category(category)
	e.Content = types.FromStringMap(raw)
	e.CreatedAt = e.CreatedAt.UTC()

	return &e, nil
}
