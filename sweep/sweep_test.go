package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/open-rails/sponsorkit/sponsor"
	memorystore "github.com/open-rails/sponsorkit/storage/memory"
)

func TestReportLogsExpiredOnly(t *testing.T) {
	store := memorystore.NewSponsorStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	past := base.Add(-time.Hour)
	future := base.Add(time.Hour)
	if err := store.Upsert(ctx, sponsor.SponsorRecord{AccountID: uuid.New(), Tier: "bronze", ExpiresAt: &past}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := store.Upsert(ctx, sponsor.SponsorRecord{AccountID: uuid.New(), Tier: "gold", ExpiresAt: &future}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := store.Upsert(ctx, sponsor.SponsorRecord{AccountID: uuid.New(), Tier: "silver"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r := New(store, logger)
	r.now = func() time.Time { return base }

	r.Report(ctx)

	expired := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "sponsor grant expired but retained" {
			expired++
			if e.Data["tier"] != "bronze" {
				t.Errorf("expected expired bronze record, got %v", e.Data["tier"])
			}
		}
	}
	if expired != 1 {
		t.Errorf("expected exactly 1 expired record logged, got %d", expired)
	}
}

func TestReportSurvivesStoreFault(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	r := New(failingStore{}, logger)

	r.Report(context.Background())

	if len(hook.AllEntries()) != 1 || hook.LastEntry().Level != logrus.WarnLevel {
		t.Errorf("expected a single warning, got %v", hook.AllEntries())
	}
}

type failingStore struct{}

func (failingStore) Upsert(context.Context, sponsor.SponsorRecord) error { return errFail }
func (failingStore) Delete(context.Context, uuid.UUID) error            { return errFail }
func (failingStore) Get(context.Context, uuid.UUID) (sponsor.SponsorRecord, bool, error) {
	return sponsor.SponsorRecord{}, false, errFail
}
func (failingStore) List(context.Context) ([]sponsor.SponsorRecord, error) { return nil, errFail }

var errFail = errors.New("store down")
