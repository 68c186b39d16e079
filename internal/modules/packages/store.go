// README: Package store backed by PostgreSQL (JSON documents).
package packages

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, pkg *TravelPackage) error {
	payload, err := json.Marshal(pkg)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO travel_packages (id, destination_theme, payload, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload
	`, pkg.ID, pkg.Theme, payload, pkg.CreatedAt)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*TravelPackage, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, `SELECT payload FROM travel_packages WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var pkg TravelPackage
	if err := json.Unmarshal(payload, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}
