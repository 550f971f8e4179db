package sponsor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/open-rails/sponsorkit/actor"
)

type fakeStore struct {
	recs    map[uuid.UUID]SponsorRecord
	upserts int
	fail    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: make(map[uuid.UUID]SponsorRecord)}
}

func (f *fakeStore) Upsert(_ context.Context, rec SponsorRecord) error {
	if f.fail != nil {
		return f.fail
	}
	f.upserts++
	f.recs[rec.AccountID] = rec
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	if f.fail != nil {
		return f.fail
	}
	delete(f.recs, id)
	return nil
}

func (f *fakeStore) Get(_ context.Context, id uuid.UUID) (SponsorRecord, bool, error) {
	if f.fail != nil {
		return SponsorRecord{}, false, f.fail
	}
	rec, ok := f.recs[id]
	return rec, ok, nil
}

func (f *fakeStore) List(_ context.Context) ([]SponsorRecord, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]SponsorRecord, 0, len(f.recs))
	for _, rec := range f.recs {
		out = append(out, rec)
	}
	return out, nil
}

type fakeDirectory map[string]uuid.UUID

func (d fakeDirectory) Resolve(_ context.Context, name string) (uuid.UUID, bool, error) {
	id, ok := d[name]
	return id, ok, nil
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]string{"bronze", "silver", "gold", "patron"}, []string{"patron"})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func testService(t *testing.T, store Store, clock *time.Time, opts ...Option) *Service {
	t.Helper()
	opts = append(opts, WithClock(func() time.Time { return *clock }))
	svc, err := NewService(testCatalog(t), store, opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestGrantThenQueryActive(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc := testService(t, store, &now)
	id := uuid.New()
	days := 5

	res, err := svc.Grant(context.Background(), id, "gold", &days)
	if err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if res.Record.Tier != "gold" {
		t.Errorf("expected tier gold, got %q", res.Record.Tier)
	}
	wantExp := now.Add(5 * 24 * time.Hour)
	if res.Record.ExpiresAt == nil || !res.Record.ExpiresAt.Equal(wantExp) {
		t.Errorf("expected expiry %v, got %v", wantExp, res.Record.ExpiresAt)
	}
	if res.ActorSession != "" {
		t.Errorf("public tier must not disclose a session, got %q", res.ActorSession)
	}

	q, err := svc.Query(context.Background(), id)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !q.IsSponsor || q.Record == nil {
		t.Fatal("expected sponsor with record")
	}
	if q.Record.Tier != "gold" || !q.Record.Active {
		t.Errorf("expected active gold record, got %+v", q.Record)
	}
}

func TestZeroDayGrantExpiresAsClockAdvances(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc := testService(t, store, &now)
	id := uuid.New()
	zero := 0

	if _, err := svc.Grant(context.Background(), id, "silver", &zero); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	now = now.Add(time.Hour)
	q, err := svc.Query(context.Background(), id)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !q.IsSponsor {
		t.Error("record must remain present after expiry")
	}
	if q.Record == nil || q.Record.Active {
		t.Error("expected inactive record after clock passed expiry")
	}
}

func TestRevokeAbsentIsNoError(t *testing.T) {
	now := time.Now()
	store := newFakeStore()
	svc := testService(t, store, &now)

	if err := svc.Revoke(context.Background(), uuid.New()); err != nil {
		t.Fatalf("revoking a non-sponsor must succeed, got %v", err)
	}
	if len(store.recs) != 0 {
		t.Error("store must be unchanged")
	}
}

func TestGrantRevokeQueryRoundtrip(t *testing.T) {
	now := time.Now()
	store := newFakeStore()
	svc := testService(t, store, &now)
	id := uuid.New()

	if _, err := svc.Grant(context.Background(), id, "bronze", nil); err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if err := svc.Revoke(context.Background(), id); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	q, err := svc.Query(context.Background(), id)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if q.IsSponsor || q.Record != nil {
		t.Errorf("expected no record after revoke, got %+v", q)
	}
}

func TestRegrantOverwritesWholesale(t *testing.T) {
	now := time.Now()
	store := newFakeStore()
	svc := testService(t, store, &now)
	id := uuid.New()
	days := 5

	if _, err := svc.Grant(context.Background(), id, "bronze", &days); err != nil {
		t.Fatalf("first Grant: %v", err)
	}
	if _, err := svc.Grant(context.Background(), id, "gold", nil); err != nil {
		t.Fatalf("second Grant: %v", err)
	}
	q, err := svc.Query(context.Background(), id)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if q.Record.Tier != "gold" {
		t.Errorf("expected tier gold after re-grant, got %q", q.Record.Tier)
	}
	if q.Record.ExpiresAt != nil {
		t.Errorf("prior expiry must not survive a permanent re-grant, got %v", q.Record.ExpiresAt)
	}
	if !q.Record.Active {
		t.Error("permanent grant must be active")
	}
}

func TestInvalidTierWritesNothing(t *testing.T) {
	now := time.Now()
	store := newFakeStore()
	svc := testService(t, store, &now)

	_, err := svc.Grant(context.Background(), uuid.New(), "not-a-real-tier", nil)
	if !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}
	if store.upserts != 0 {
		t.Error("invalid tier must not reach the store")
	}
}

func TestNegativeDurationRejected(t *testing.T) {
	now := time.Now()
	store := newFakeStore()
	svc := testService(t, store, &now)
	neg := -1

	_, err := svc.Grant(context.Background(), uuid.New(), "gold", &neg)
	if !errors.Is(err, ErrInvalidArgumentCount) {
		t.Fatalf("expected ErrInvalidArgumentCount, got %v", err)
	}
	if store.upserts != 0 {
		t.Error("invalid duration must not reach the store")
	}
}

func TestEnumerate(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc := testService(t, store, &now)

	items, err := svc.Enumerate(context.Background())
	if err != nil {
		t.Fatalf("Enumerate empty: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty sequence, got %d items", len(items))
	}

	permanent := uuid.New()
	expiring := uuid.New()
	one := 1
	if _, err := svc.Grant(context.Background(), permanent, "gold", nil); err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if _, err := svc.Grant(context.Background(), expiring, "bronze", &one); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	now = now.Add(48 * time.Hour) // past the one-day expiry
	items, err = svc.Enumerate(context.Background())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	for _, it := range items {
		switch it.AccountID {
		case permanent:
			if !it.Active {
				t.Error("permanent grant must stay active")
			}
		case expiring:
			if it.Active {
				t.Error("expired grant must be listed inactive, not dropped")
			}
		default:
			t.Errorf("unexpected record %v", it.AccountID)
		}
	}
}

func TestPrivateTierRequiresSession(t *testing.T) {
	now := time.Now()
	store := newFakeStore()
	svc := testService(t, store, &now)
	id := uuid.New()

	_, err := svc.Grant(context.Background(), id, "patron", nil)
	if !errors.Is(err, ErrInteractiveActorRequired) {
		t.Fatalf("expected ErrInteractiveActorRequired, got %v", err)
	}
	if store.upserts != 0 {
		t.Error("blocked private grant must not reach the store")
	}

	ctx := actor.WithSession(context.Background(), "sess-42")
	res, err := svc.Grant(ctx, id, "patron", nil)
	if err != nil {
		t.Fatalf("interactive private grant: %v", err)
	}
	if res.ActorSession != "sess-42" {
		t.Errorf("expected disclosed session sess-42, got %q", res.ActorSession)
	}
}

func TestStoreFaultsAreWrapped(t *testing.T) {
	now := time.Now()
	store := newFakeStore()
	cause := errors.New("connection refused")
	store.fail = cause
	svc := testService(t, store, &now)
	id := uuid.New()

	if _, err := svc.Grant(context.Background(), id, "gold", nil); !IsStoreUnavailable(err) {
		t.Errorf("Grant: expected store-unavailable, got %v", err)
	} else if !errors.Is(err, cause) {
		t.Errorf("Grant: cause must be preserved, got %v", err)
	}
	if err := svc.Revoke(context.Background(), id); !IsStoreUnavailable(err) {
		t.Errorf("Revoke: expected store-unavailable, got %v", err)
	}
	if _, err := svc.Query(context.Background(), id); !IsStoreUnavailable(err) {
		t.Errorf("Query: expected store-unavailable, got %v", err)
	}
	if _, err := svc.Enumerate(context.Background()); !IsStoreUnavailable(err) {
		t.Errorf("Enumerate: expected store-unavailable, got %v", err)
	}
}

func TestResolveAccount(t *testing.T) {
	now := time.Now()
	store := newFakeStore()
	known := uuid.New()
	svc := testService(t, store, &now, WithDirectory(fakeDirectory{"Steve": known}))

	raw := uuid.New()
	id, err := svc.ResolveAccount(context.Background(), raw.String())
	if err != nil || id != raw {
		t.Errorf("raw id must pass through, got (%v, %v)", id, err)
	}

	id, err = svc.ResolveAccount(context.Background(), "Steve")
	if err != nil || id != known {
		t.Errorf("display name must resolve via directory, got (%v, %v)", id, err)
	}

	if _, err := svc.ResolveAccount(context.Background(), "Nobody"); !errors.Is(err, ErrAccountNotResolvable) {
		t.Errorf("expected ErrAccountNotResolvable, got %v", err)
	}
	if _, err := svc.ResolveAccount(context.Background(), ""); !errors.Is(err, ErrAccountNotResolvable) {
		t.Errorf("expected ErrAccountNotResolvable for empty input, got %v", err)
	}
}

func TestGrantIdempotentSemantics(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc := testService(t, store, &now)
	id := uuid.New()
	days := 7

	first, err := svc.Grant(context.Background(), id, "silver", &days)
	if err != nil {
		t.Fatalf("Grant: %v", err)
	}
	second, err := svc.Grant(context.Background(), id, "silver", &days)
	if err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if first.Record.Tier != second.Record.Tier {
		t.Error("repeat grant must yield the same tier")
	}
	if len(store.recs) != 1 {
		t.Errorf("expected a single record, got %d", len(store.recs))
	}
}
