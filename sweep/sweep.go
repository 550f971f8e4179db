// Package sweep periodically reports sponsor grants whose expiry has passed.
// Expiry is a passive transition: nothing deletes an expired record, so this
// reporter is the only place the transition becomes visible to operators.
package sweep

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/open-rails/sponsorkit/sponsor"
)

// Reporter logs expired-but-retained sponsor records on a cron schedule.
// It is strictly read-only against the store.
type Reporter struct {
	store sponsor.Store
	log   *logrus.Logger
	cron  *cron.Cron
	now   func() time.Time
}

// New builds a Reporter. log defaults to logrus.StandardLogger.
func New(store sponsor.Store, log *logrus.Logger) *Reporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Reporter{store: store, log: log, cron: cron.New(), now: time.Now}
}

// Start schedules the report with a cron spec (e.g. "@hourly") and starts the
// scheduler. Call Stop to shut it down.
func (r *Reporter) Start(spec string) error {
	if spec == "" {
		spec = "@hourly"
	}
	if _, err := r.cron.AddFunc(spec, func() { r.Report(context.Background()) }); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running report to finish.
func (r *Reporter) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// Report lists the store once and logs every expired record. Store faults are
// logged and swallowed; the next tick retries naturally.
func (r *Reporter) Report(ctx context.Context) {
	recs, err := r.store.List(ctx)
	if err != nil {
		r.log.WithError(err).Warn("sponsor expiry report failed")
		return
	}
	now := r.now()
	expired := 0
	for _, rec := range recs {
		if rec.ActiveAt(now) {
			continue
		}
		expired++
		r.log.WithFields(logrus.Fields{
			"account_id": rec.AccountID,
			"tier":       rec.Tier,
			"expired_at": rec.ExpiresAt,
		}).Info("sponsor grant expired but retained")
	}
	r.log.WithFields(logrus.Fields{"total": len(recs), "expired": expired}).Debug("sponsor expiry report")
}
