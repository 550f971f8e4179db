package directory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store resolves player display names to stable account ids against a players
// schema. Display names are mutable; the table keeps the latest binding per
// name (last_seen_at), so lookups return the account most recently seen with
// that name.
type Store struct {
	pg     *pgxpool.Pool
	schema string
}

// NewStore creates a directory over the given pool. schema defaults to
// "players".
func NewStore(pg *pgxpool.Pool, schema string) *Store {
	s := strings.TrimSpace(schema)
	if s == "" {
		s = "players"
	}
	return &Store{pg: pg, schema: s}
}

func (s *Store) accountsTable() string { return s.schema + ".accounts" }

// Resolve returns the account id bound to displayName, case-insensitively.
// Not-found is reported via the bool; only real faults are errors.
func (s *Store) Resolve(ctx context.Context, displayName string) (uuid.UUID, bool, error) {
	name := strings.TrimSpace(displayName)
	if s.pg == nil || name == "" {
		return uuid.Nil, false, nil
	}
	var id uuid.UUID
	err := s.pg.QueryRow(ctx, `SELECT account_id FROM `+s.accountsTable()+` WHERE lower(display_name)=lower($1) ORDER BY last_seen_at DESC LIMIT 1`, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}

// Record upserts a name→account binding, refreshing last_seen_at. Called by
// the embedding process whenever a player connects.
func (s *Store) Record(ctx context.Context, accountID uuid.UUID, displayName string) error {
	name := strings.TrimSpace(displayName)
	if s.pg == nil || accountID == uuid.Nil || name == "" {
		return nil
	}
	_, err := s.pg.Exec(ctx, `INSERT INTO `+s.accountsTable()+` (account_id, display_name, last_seen_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (account_id) DO UPDATE SET display_name=EXCLUDED.display_name, last_seen_at=NOW()`,
		accountID, name)
	return err
}
