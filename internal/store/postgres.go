package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"hetvrp/internal/customer"
)

const schema = `
CREATE TABLE IF NOT EXISTS instances (
    id         uuid PRIMARY KEY,
    name       text NOT NULL,
    created_at timestamptz NOT NULL,
    size       integer NOT NULL,
    body       jsonb NOT NULL
)`

type Postgres struct {
	db  *sql.DB
	log *zap.Logger
}

func NewPostgres(ctx context.Context, dsn string, log *zap.Logger) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	p := &Postgres{db: db, log: log.Named("postgres")}
	if err := p.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	p.log.Info("connected")
	return p, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Migrate creates the instances table if it is missing.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (p *Postgres) SaveInstance(ctx context.Context, name string, cs *customer.Set) (string, error) {
	body, err := encodeSet(cs)
	if err != nil {
		return "", err
	}
	id := uuid.New()
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO instances (id, name, created_at, size, body) VALUES ($1,$2,$3,$4,$5)`,
		id, name, time.Now().UTC(), cs.Size(), body)
	if err != nil {
		return "", fmt.Errorf("save instance: %w", err)
	}
	p.log.Debug("saved instance", zap.Stringer("id", id), zap.Int("size", cs.Size()))
	return id.String(), nil
}

func (p *Postgres) LoadInstance(ctx context.Context, id string) (Instance, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return Instance{}, fmt.Errorf("load instance %q: %w", id, ErrNotFound)
	}
	var in Instance
	var body []byte
	err = p.db.QueryRowContext(ctx,
		`SELECT id::text, name, created_at, size, body FROM instances WHERE id=$1`, uid,
	).Scan(&in.ID, &in.Name, &in.CreatedAt, &in.Size, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return Instance{}, fmt.Errorf("load instance %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Instance{}, fmt.Errorf("load instance %s: %w", id, err)
	}
	if in.Customers, err = decodeSet(body); err != nil {
		return Instance{}, err
	}
	return in, nil
}

func (p *Postgres) ListInstances(ctx context.Context) ([]Summary, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id::text, name, created_at, size FROM instances ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	defer rows.Close()
	out := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.Size); err != nil {
			return nil, fmt.Errorf("list instances: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Postgres) DeleteInstance(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("delete instance %q: %w", id, ErrNotFound)
	}
	res, err := p.db.ExecContext(ctx, `DELETE FROM instances WHERE id=$1`, uid)
	if err != nil {
		return fmt.Errorf("delete instance %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete instance %s: %w", id, ErrNotFound)
	}
	return nil
}

func (p *Postgres) Close() error { return p.db.Close() }
