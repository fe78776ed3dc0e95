package store

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"hetvrp/internal/customer"
)

// Store persists problem instances so a run can be repeated on the exact
// customers of an earlier one.
type Store interface {
	SaveInstance(ctx context.Context, name string, cs *customer.Set) (id string, err error)
	LoadInstance(ctx context.Context, id string) (Instance, error)
	ListInstances(ctx context.Context) ([]Summary, error)
	DeleteInstance(ctx context.Context, id string) error
	Close() error
}

var ErrNotFound = errors.New("store: not found")

// Instance is a stored customer set.
type Instance struct {
	Summary
	Customers *customer.Set
}

// Summary describes a stored instance without its customers.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	// Size counts the depot.
	Size int `json:"size"`
}

// Open picks the backend the way the harness is configured: Postgres when
// databaseURL is set, else Redis when redisURL is set, else memory.
func Open(ctx context.Context, databaseURL, redisURL string, log *zap.Logger) (Store, error) {
	switch {
	case databaseURL != "":
		p, err := NewPostgres(ctx, databaseURL, log)
		if err != nil {
			return nil, err
		}
		if err := p.Migrate(ctx); err != nil {
			_ = p.Close()
			return nil, err
		}
		return p, nil
	case redisURL != "":
		return NewRedis(ctx, redisURL, log)
	}
	log.Info("using in-memory instance store")
	return NewMemory(), nil
}
