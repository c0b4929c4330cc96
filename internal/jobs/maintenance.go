package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/fjordrenovering/website/internal/config"
	"go.uber.org/zap"
)

const (
	MessageRetentionJobName = "message_retention"
	OrphanMediaJobName      = "orphan_media"

	// orphanBatchSize caps how many media files one sweep removes
	orphanBatchSize = 500
)

// MessagePurger deletes archived contact messages
type MessagePurger interface {
	PurgeArchivedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// OrphanMediaCleaner deletes uploads that nothing references
type OrphanMediaCleaner interface {
	DeleteOrphans(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

// MessageRetentionJob removes archived messages older than the retention period
type MessageRetentionJob struct {
	messages  MessagePurger
	retention time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewMessageRetentionJob(messages MessagePurger, retentionDays int, logger *zap.Logger) *MessageRetentionJob {
	return &MessageRetentionJob{
		messages:  messages,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		logger:    logger,
		now:       time.Now,
	}
}

// Run purges archived messages last changed before now minus the retention period
func (j *MessageRetentionJob) Run(ctx context.Context) error {
	cutoff := j.now().Add(-j.retention)
	deleted, err := j.messages.PurgeArchivedBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	j.logger.Info("purged archived messages",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff))
	return nil
}

// OrphanMediaJob removes uploads that were never attached to anything.
// The grace period leaves time for an editor to finish an upload flow.
type OrphanMediaJob struct {
	media  OrphanMediaCleaner
	grace  time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewOrphanMediaJob(media OrphanMediaCleaner, graceHours int, logger *zap.Logger) *OrphanMediaJob {
	return &OrphanMediaJob{
		media:  media,
		grace:  time.Duration(graceHours) * time.Hour,
		logger: logger,
		now:    time.Now,
	}
}

// Run deletes one batch of orphaned media
func (j *OrphanMediaJob) Run(ctx context.Context) error {
	cutoff := j.now().Add(-j.grace)
	removed, err := j.media.DeleteOrphans(ctx, cutoff, orphanBatchSize)
	if err != nil {
		return err
	}
	if removed > 0 {
		j.logger.Info("removed orphaned media",
			zap.Int("removed", removed),
			zap.Time("cutoff", cutoff))
	}
	return nil
}

// RegisterMaintenanceJobs adds the message retention and orphan media jobs.
// A job whose cron expression or period is unset is skipped.
func RegisterMaintenanceJobs(s *Scheduler, cfg *config.JobsConfig, messages MessagePurger, media OrphanMediaCleaner, logger *zap.Logger) error {
	if cfg.MessageRetentionCron != "" && cfg.MessageRetentionDays > 0 {
		job := NewMessageRetentionJob(messages, cfg.MessageRetentionDays, logger)
		if err := s.AddJob(MessageRetentionJobName, cfg.MessageRetentionCron, job.Run); err != nil {
			return fmt.Errorf("register message retention job: %w", err)
		}
	} else {
		logger.Info("message retention job disabled")
	}

	if cfg.OrphanMediaCron != "" && cfg.OrphanMediaHours > 0 {
		job := NewOrphanMediaJob(media, cfg.OrphanMediaHours, logger)
		if err := s.AddJob(OrphanMediaJobName, cfg.OrphanMediaCron, job.Run); err != nil {
			return fmt.Errorf("register orphan media job: %w", err)
		}
	} else {
		logger.Info("orphan media job disabled")
	}
	return nil
}
