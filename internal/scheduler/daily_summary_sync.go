// Package scheduler runs the nightly jobs that keep derived reporting data
// fresh.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository"
	"github.com/aideveloperindia/KDSMS-sub000/internal/config"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/aggregating"
)

// DailySummarySyncService folds the previous day's sale rows into one
// summary row per zone. The summaries are derived data: rerunning the job
// for the same day upserts, never duplicates.
type DailySummarySyncService struct {
	scheduler   *gocron.Scheduler
	saleRepo    repository.SaleRepository
	summaryRepo repository.ZoneSummaryRepository
	config      config.SummarySync

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailySummarySyncService(
	saleRepo repository.SaleRepository,
	summaryRepo repository.ZoneSummaryRepository,
	cfg *config.Config,
) *DailySummarySyncService {
	logrus.WithField("cron_schedule", cfg.SummarySync.CronSchedule).Info("summary sync: scheduler configured")

	return &DailySummarySyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		saleRepo:    saleRepo,
		summaryRepo: summaryRepo,
		config:      cfg.SummarySync,
	}
}

func (s *DailySummarySyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("summary sync: disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		if err := s.RunFor(yesterday); err != nil {
			logrus.WithError(err).Error("summary sync: nightly run failed")
		}
	})
	if err != nil {
		return errors.Wrap(err, "scheduling summary sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

// RunFor rebuilds the zone summaries of one calendar day. Also used by the
// manual trigger endpoint.
func (s *DailySummarySyncService) RunFor(date time.Time) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return errors.New("summary sync already running")
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	sales, err := s.saleRepo.FindByScope(domain.Scope{Date: &day})
	if err != nil {
		return errors.Wrap(err, "loading sales for summary")
	}

	buckets := aggregating.AggregateByZone(sales)
	for _, bucket := range buckets {
		summary := &domain.ZoneDailySummary{
			SummaryDate:      day,
			Zone:             bucket.Zone,
			QuantityReceived: bucket.QuantityReceived,
			QuantitySold:     bucket.QuantitySold,
			QuantityExpired:  bucket.QuantityExpired,
			Performance:      bucket.Performance,
			SaleCount:        bucket.SaleCount,
		}
		if err := s.summaryRepo.SaveOrUpdate(summary); err != nil {
			return errors.Wrapf(err, "saving summary for zone %d", bucket.Zone)
		}
	}

	logrus.WithFields(logrus.Fields{
		"date":  day.Format(time.DateOnly),
		"zones": len(buckets),
		"sales": len(sales),
	}).Info("summary sync: completed")

	return nil
}

// SyncStatus reports whether a run is in flight and when the last one
// started and finished.
type SyncStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	CronSchedule    string     `json:"cron_schedule"`
	Enabled         bool       `json:"enabled"`
}

func (s *DailySummarySyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Running:      s.syncRunning,
		CronSchedule: s.config.CronSchedule,
		Enabled:      s.config.Enabled,
	}
	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}
