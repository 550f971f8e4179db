package sponsor

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/open-rails/sponsorkit/actor"
)

// Service is the entitlement facade: it validates inputs against the catalog,
// derives expiry/activity, and issues single keyed operations against the
// store. All validation happens before the store call; store faults are
// wrapped as *StoreError.
type Service struct {
	catalog *Catalog
	store   Store
	dir     Directory
	audit   EventLogger
	log     *logrus.Logger

	// now is the clock used for expiry computation and activity derivation.
	// Tests substitute a fixed clock.
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithDirectory sets the account directory used by ResolveAccount for
// display-name inputs. Without one, only raw account ids resolve.
func WithDirectory(d Directory) Option { return func(s *Service) { s.dir = d } }

// WithEventLogger sets the best-effort audit sink.
func WithEventLogger(a EventLogger) Option { return func(s *Service) { s.audit = a } }

// WithLogger sets the logger. Defaults to logrus.StandardLogger.
func WithLogger(l *logrus.Logger) Option { return func(s *Service) { s.log = l } }

// WithClock overrides the service clock.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// NewService builds the facade over a catalog and a store.
func NewService(catalog *Catalog, store Store, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("sponsor: catalog required")
	}
	if store == nil {
		return nil, fmt.Errorf("sponsor: store required")
	}
	s := &Service{catalog: catalog, store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	return s, nil
}

// Catalog returns the injected tier catalog.
func (s *Service) Catalog() *Catalog { return s.catalog }

// ResolveAccount canonicalizes administrative input into an account id: a
// parseable uuid is used as-is, anything else is looked up in the directory.
// The facade operations only ever see the resolved id.
func (s *Service) ResolveAccount(ctx context.Context, idOrName string) (uuid.UUID, error) {
	in := strings.TrimSpace(idOrName)
	if in == "" {
		return uuid.Nil, ErrAccountNotResolvable
	}
	if id, err := uuid.Parse(in); err == nil {
		return id, nil
	}
	if s.dir == nil {
		return uuid.Nil, ErrAccountNotResolvable
	}
	id, ok, err := s.dir.Resolve(ctx, in)
	if err != nil {
		return uuid.Nil, &StoreError{Op: "resolve", Err: err}
	}
	if !ok {
		return uuid.Nil, ErrAccountNotResolvable
	}
	return id, nil
}

// Grant upserts the sponsor record for accountID, replacing any prior tier and
// expiry wholesale. days, when non-nil, must be >= 0 and sets the expiry to
// now + days*24h; nil means permanent. Granting a private tier requires an
// invoking-actor session in ctx; the session id is echoed back in the result
// as a disclosure artifact. It never gates the grant beyond requiring that a
// session exists.
func (s *Service) Grant(ctx context.Context, accountID uuid.UUID, tier string, days *int) (GrantResult, error) {
	if !s.catalog.IsValidTier(tier) {
		return GrantResult{}, ErrInvalidTier
	}
	if days != nil && *days < 0 {
		return GrantResult{}, fmt.Errorf("%w: duration must be a non-negative day count", ErrInvalidArgumentCount)
	}
	var session string
	if s.catalog.IsPrivateTier(tier) {
		sess, ok := actor.SessionFromContext(ctx)
		if !ok {
			return GrantResult{}, ErrInteractiveActorRequired
		}
		session = sess
	}

	now := s.now()
	rec := SponsorRecord{AccountID: accountID, Tier: tier, GrantedAt: now}
	if days != nil {
		exp := now.Add(time.Duration(*days) * 24 * time.Hour)
		rec.ExpiresAt = &exp
	}
	if err := s.store.Upsert(ctx, rec); err != nil {
		s.log.WithError(err).WithField("account_id", accountID).Warn("sponsor grant failed")
		return GrantResult{}, &StoreError{Op: "grant", Err: err}
	}
	s.log.WithFields(logrus.Fields{
		"account_id": accountID,
		"tier":       tier,
		"permanent":  rec.ExpiresAt == nil,
	}).Info("sponsor granted")
	if s.audit != nil {
		if err := s.audit.LogGrant(ctx, rec, session); err != nil {
			s.log.WithError(err).Debug("sponsor audit sink failed")
		}
	}
	return GrantResult{Record: rec, ActorSession: session}, nil
}

// Revoke deletes the record for accountID. Revoking a non-sponsor is a
// success: the delete is issued regardless and an absent key is a no-op.
func (s *Service) Revoke(ctx context.Context, accountID uuid.UUID) error {
	if err := s.store.Delete(ctx, accountID); err != nil {
		s.log.WithError(err).WithField("account_id", accountID).Warn("sponsor revoke failed")
		return &StoreError{Op: "revoke", Err: err}
	}
	s.log.WithField("account_id", accountID).Info("sponsor revoked")
	if s.audit != nil {
		if err := s.audit.LogRevoke(ctx, accountID); err != nil {
			s.log.WithError(err).Debug("sponsor audit sink failed")
		}
	}
	return nil
}

// Query reads the record for accountID. A missing record is a normal result
// (IsSponsor=false, Record=nil). Activity is derived at call time; a record
// whose tier has since left the catalog is returned unchanged.
func (s *Service) Query(ctx context.Context, accountID uuid.UUID) (QueryResult, error) {
	rec, ok, err := s.store.Get(ctx, accountID)
	if err != nil {
		return QueryResult{}, &StoreError{Op: "query", Err: err}
	}
	if !ok {
		return QueryResult{}, nil
	}
	st := SponsorStatus{SponsorRecord: rec, Active: rec.ActiveAt(s.now())}
	return QueryResult{IsSponsor: true, Record: &st}, nil
}

// Enumerate lists every record with activity derived per record at call time,
// ordered by grant time (account id as tie-break) regardless of backend.
// Expired records are included, marked inactive; expiry never auto-deletes.
// An empty store yields an empty slice.
func (s *Service) Enumerate(ctx context.Context) ([]SponsorStatus, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "enumerate", Err: err}
	}
	now := s.now()
	out := make([]SponsorStatus, 0, len(recs))
	for _, rec := range recs {
		out = append(out, SponsorStatus{SponsorRecord: rec, Active: rec.ActiveAt(now)})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].GrantedAt.Equal(out[j].GrantedAt) {
			return out[i].GrantedAt.Before(out[j].GrantedAt)
		}
		return out[i].AccountID.String() < out[j].AccountID.String()
	})
	return out, nil
}
