package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-tracker/internal/types"
)

// PGStore is a PostgreSQL-backed snapshot store for setups where the
// corpus outgrows a directory of JSON files. It implements the same Store
// contract as FileStore; row writes are transactional, so the atomicity
// guarantee holds.
type PGStore struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool to the database and ensures the
// snapshots table exists.
func ConnectPG(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PGStore{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the connection pool.
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PGStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id          UUID PRIMARY KEY,
			snapshot_id TEXT UNIQUE NOT NULL,
			raw_text    TEXT NOT NULL,
			parsed_data JSONB NOT NULL,
			state       TEXT NOT NULL DEFAULT 'captured',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure snapshots table: %w", err)
	}
	return nil
}

// Save upserts a snapshot row. The raw_text column is immutable: an
// update that would change it is rejected.
func (s *PGStore) Save(ctx context.Context, snap *types.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return &StoreError{ID: snap.ID(), Op: "save", Message: "invalid snapshot", Cause: err}
	}

	parsedJSON, err := json.Marshal(snap.ParsedData)
	if err != nil {
		return &StoreError{ID: snap.ID(), Op: "save", Message: "failed to marshal parsed_data", Cause: err}
	}

	var existingRaw string
	err = s.pool.QueryRow(ctx,
		`SELECT raw_text FROM snapshots WHERE snapshot_id = $1`, snap.ID(),
	).Scan(&existingRaw)
	switch {
	case err == nil:
		if existingRaw != snap.RawText {
			return &ImmutableError{ID: snap.ID()}
		}
		_, err = s.pool.Exec(ctx,
			`UPDATE snapshots SET parsed_data = $1, state = $2 WHERE snapshot_id = $3`,
			parsedJSON, string(snap.EffectiveState()), snap.ID(),
		)
		if err != nil {
			return &StoreError{ID: snap.ID(), Op: "save", Cause: err}
		}
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		_, err = s.pool.Exec(ctx,
			`INSERT INTO snapshots (id, snapshot_id, raw_text, parsed_data, state)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), snap.ID(), snap.RawText, parsedJSON, string(snap.EffectiveState()),
		)
		if err != nil {
			return &StoreError{ID: snap.ID(), Op: "save", Cause: err}
		}
		return nil
	default:
		return &StoreError{ID: snap.ID(), Op: "save", Cause: err}
	}
}

// Load retrieves one snapshot by id.
func (s *PGStore) Load(ctx context.Context, id string) (*types.Snapshot, error) {
	var (
		snap       types.Snapshot
		parsedJSON []byte
		state      string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT raw_text, parsed_data, state FROM snapshots WHERE snapshot_id = $1`, id,
	).Scan(&snap.RawText, &parsedJSON, &state)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, &StoreError{ID: id, Op: "load", Cause: err}
	}
	if err := json.Unmarshal(parsedJSON, &snap.ParsedData); err != nil {
		return nil, &StoreError{ID: id, Op: "load", Message: "invalid parsed_data JSON", Cause: err}
	}
	snap.Timestamp = id
	snap.State = types.SnapshotState(state)
	return &snap, nil
}

// List returns all snapshot ids in timestamp order.
func (s *PGStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT snapshot_id FROM snapshots ORDER BY snapshot_id`)
	if err != nil {
		return nil, &StoreError{Op: "list", Cause: err}
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, &StoreError{Op: "list", Cause: err}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list", Cause: err}
	}
	return ids, nil
}

// Walk streams snapshots in timestamp order.
func (s *PGStore) Walk(ctx context.Context, fn func(*types.Snapshot) error) error {
	ids, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		snap, err := s.Load(ctx, id)
		if err != nil {
			return fmt.Errorf("walk stopped at %s: %w", id, err)
		}
		if err := fn(snap); err != nil {
			return err
		}
	}
	return nil
}
