package memorystore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/open-rails/sponsorkit/sponsor"
)

// SponsorStore is an in-memory implementation of sponsor.Store, for tests and
// single-node embedding. Records are copied on the way in and out.
type SponsorStore struct {
	mu   sync.Mutex
	recs map[uuid.UUID]sponsor.SponsorRecord
}

// NewSponsorStore creates an empty in-memory sponsor store.
func NewSponsorStore() *SponsorStore {
	return &SponsorStore{recs: make(map[uuid.UUID]sponsor.SponsorRecord)}
}

func (s *SponsorStore) Upsert(ctx context.Context, rec sponsor.SponsorRecord) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ExpiresAt != nil {
		exp := *rec.ExpiresAt
		rec.ExpiresAt = &exp
	}
	s.recs[rec.AccountID] = rec
	return nil
}

func (s *SponsorStore) Delete(ctx context.Context, accountID uuid.UUID) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, accountID)
	return nil
}

func (s *SponsorStore) Get(ctx context.Context, accountID uuid.UUID) (sponsor.SponsorRecord, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[accountID]
	if !ok {
		return sponsor.SponsorRecord{}, false, nil
	}
	if rec.ExpiresAt != nil {
		exp := *rec.ExpiresAt
		rec.ExpiresAt = &exp
	}
	return rec, true, nil
}

func (s *SponsorStore) List(ctx context.Context) ([]sponsor.SponsorRecord, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sponsor.SponsorRecord, 0, len(s.recs))
	for _, rec := range s.recs {
		if rec.ExpiresAt != nil {
			exp := *rec.ExpiresAt
			rec.ExpiresAt = &exp
		}
		out = append(out, rec)
	}
	return out, nil
}
