// README: Itinerary store backed by PostgreSQL with a Redis read-through cache.
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const cacheTTL = 24 * time.Hour

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

func cacheKey(id string) string {
	return "itinerary:" + id
}

// Save upserts the itinerary as a JSON document and refreshes the cache.
// Cache write failures are logged, not surfaced; Postgres is the source of
// truth.
func (s *Store) Save(ctx context.Context, it *GeneratedItinerary) error {
	payload, err := json.Marshal(it)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO itineraries (id, destination, payload, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload
	`, it.ID, it.Title, payload, it.CreatedAt)
	if err != nil {
		return err
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey(it.ID), payload, cacheTTL).Err(); err != nil {
			log.Printf("itinerary: cache set %s: %v", it.ID, err)
		}
	}
	return nil
}

// Get reads from the cache first, then Postgres, backfilling the cache on a
// miss.
func (s *Store) Get(ctx context.Context, id string) (*GeneratedItinerary, error) {
	if s.redis != nil {
		raw, err := s.redis.Get(ctx, cacheKey(id)).Bytes()
		if err == nil {
			var it GeneratedItinerary
			if jerr := json.Unmarshal(raw, &it); jerr == nil {
				return &it, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("itinerary: cache get %s: %v", id, err)
		}
	}

	var payload []byte
	err := s.db.QueryRow(ctx, `SELECT payload FROM itineraries WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var it GeneratedItinerary
	if err := json.Unmarshal(payload, &it); err != nil {
		return nil, err
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey(id), payload, cacheTTL).Err(); err != nil {
			log.Printf("itinerary: cache backfill %s: %v", id, err)
		}
	}
	return &it, nil
}
