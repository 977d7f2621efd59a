package games

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"germanbridge/internal/roster"
	"germanbridge/internal/store"
)

var (
	ErrNotFound  = errors.New("game not found")
	ErrNoPlayers = errors.New("at least one player name is required")
)

// Repository stores game records under "game:<id>". Update is a blind full
// overwrite: concurrent writers are not detected and the last one wins.
type Repository struct {
	store store.Store
}

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func key(id string) string {
	return "game:" + id
}

// Create stores a fresh game for the given names at round 1 with zero scores
// and returns its id.
func (r *Repository) Create(ctx context.Context, names []string) (string, Record, error) {
	var cleaned []string
	for _, n := range names {
		cleaned = append(cleaned, roster.ParseNames(n)...)
	}
	if len(cleaned) == 0 {
		return "", Record{}, ErrNoPlayers
	}
	rec := NewRecord(roster.New(cleaned...), 1)

	// Try up to 10 times to generate an unused code
	for range 10 {
		code, err := GenerateCode()
		if err != nil {
			return "", Record{}, fmt.Errorf("generating game code: %w", err)
		}
		_, err = r.store.Get(ctx, key(code))
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return "", Record{}, fmt.Errorf("checking game code: %w", err)
		}
		if err := r.put(ctx, code, rec); err != nil {
			return "", Record{}, err
		}
		return code, rec, nil
	}
	return "", Record{}, fmt.Errorf("failed to generate unique game code after 10 attempts")
}

func (r *Repository) Get(ctx context.Context, id string) (Record, error) {
	raw, err := r.store.Get(ctx, key(id))
	if errors.Is(err, store.ErrNotFound) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("reading game: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, fmt.Errorf("decoding game %s: %w", id, err)
	}
	return rec, nil
}

// Update replaces the stored record wholesale. Writing the same record twice
// leaves the store in the same state.
func (r *Repository) Update(ctx context.Context, id string, rec Record) error {
	return r.put(ctx, id, rec)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *Repository) put(ctx context.Context, id string, rec Record) error {
	raw, err := json.Marshal(rec.normalized())
	if err != nil {
		return fmt.Errorf("encoding game: %w", err)
	}
	if err := r.store.Set(ctx, key(id), raw); err != nil {
		return fmt.Errorf("writing game: %w", err)
	}
	return nil
}
