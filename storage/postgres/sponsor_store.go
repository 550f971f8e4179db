package pgstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/open-rails/sponsorkit/sponsor"
)

// SponsorStore is a Postgres implementation of sponsor.Store over a
// schema-qualified sponsors table (see migrations/postgres). Upsert is a
// single INSERT ... ON CONFLICT statement; Delete tolerates absent rows.
type SponsorStore struct {
	pg     *pgxpool.Pool
	schema string
}

// NewSponsorStore creates a Postgres-backed sponsor store. schema defaults to
// "entitlements".
func NewSponsorStore(pg *pgxpool.Pool, schema string) *SponsorStore {
	s := strings.TrimSpace(schema)
	if s == "" {
		s = "entitlements"
	}
	return &SponsorStore{pg: pg, schema: s}
}

func (s *SponsorStore) table() string { return s.schema + ".sponsors" }

func (s *SponsorStore) Upsert(ctx context.Context, rec sponsor.SponsorRecord) error {
	_, err := s.pg.Exec(ctx, `INSERT INTO `+s.table()+` (account_id, tier, expires_at, granted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id) DO UPDATE SET tier=EXCLUDED.tier, expires_at=EXCLUDED.expires_at, granted_at=EXCLUDED.granted_at`,
		rec.AccountID, rec.Tier, rec.ExpiresAt, rec.GrantedAt)
	return err
}

func (s *SponsorStore) Delete(ctx context.Context, accountID uuid.UUID) error {
	_, err := s.pg.Exec(ctx, `DELETE FROM `+s.table()+` WHERE account_id=$1`, accountID)
	return err
}

func (s *SponsorStore) Get(ctx context.Context, accountID uuid.UUID) (sponsor.SponsorRecord, bool, error) {
	var rec sponsor.SponsorRecord
	var expires *time.Time
	err := s.pg.QueryRow(ctx, `SELECT account_id, tier, expires_at, granted_at FROM `+s.table()+` WHERE account_id=$1 LIMIT 1`, accountID).
		Scan(&rec.AccountID, &rec.Tier, &expires, &rec.GrantedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return sponsor.SponsorRecord{}, false, nil
	}
	if err != nil {
		return sponsor.SponsorRecord{}, false, err
	}
	rec.ExpiresAt = expires
	return rec, true, nil
}

func (s *SponsorStore) List(ctx context.Context) ([]sponsor.SponsorRecord, error) {
	rows, err := s.pg.Query(ctx, `SELECT account_id, tier, expires_at, granted_at FROM `+s.table()+` ORDER BY granted_at, account_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []sponsor.SponsorRecord
	for rows.Next() {
		var rec sponsor.SponsorRecord
		var expires *time.Time
		if err := rows.Scan(&rec.AccountID, &rec.Tier, &expires, &rec.GrantedAt); err != nil {
			return nil, err
		}
		rec.ExpiresAt = expires
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []sponsor.SponsorRecord{}
	}
	return out, nil
}
