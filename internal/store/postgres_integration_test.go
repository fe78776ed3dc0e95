//go:build postgres_integration

package store

import (
	"errors"
	"os"
	"testing"

	"go.uber.org/zap"
)

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}
	p, err := NewPostgres(t.Context(), dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("NewPostgres: %v", err)
	}
	if err := p.Migrate(t.Context()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if _, err := p.db.ExecContext(t.Context(), `TRUNCATE instances`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := p.LoadInstance(t.Context(), "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("malformed id: want ErrNotFound, got %v", err)
	}

	exerciseStore(t, p)
}
