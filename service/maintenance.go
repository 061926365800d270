package service

import (
	"context"
	"fmt"
	"time"

	"campus/config"
	"campus/database"
	"campus/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartMaintenanceJobs schedules the nightly housekeeping: purging rows
// that were soft-deleted past the retention window and reporting the size
// of the token blacklist. Returns the running scheduler so the caller can
// stop it on shutdown.
func StartMaintenanceJobs() (*cron.Cron, error) {
	schedule := config.GetString("maintenance.schedule")
	if schedule == "" {
		schedule = "0 3 * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, runMaintenance); err != nil {
		return nil, fmt.Errorf("failed to schedule maintenance job: %v", err)
	}

	c.Start()
	logrus.Infof("Maintenance jobs scheduled at '%s'", schedule)
	return c, nil
}

func runMaintenance() {
	start := time.Now()

	purged, err := purgeSoftDeleted()
	if err != nil {
		logrus.Errorf("Maintenance purge failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	blacklisted, err := repository.GetBlacklistedTokensCount(ctx)
	if err != nil {
		logrus.Warnf("Failed to count blacklisted tokens: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"purged_rows":        purged,
		"blacklisted_tokens": blacklisted,
		"duration":           time.Since(start).String(),
	}).Info("Maintenance run complete")
}

// purgeSoftDeleted hard-deletes rows that have carried the deleted flag
// longer than the retention window. Join and submission history rows are
// never purged.
func purgeSoftDeleted() (int64, error) {
	retentionDays := config.GetInt("maintenance.retention_days")
	if retentionDays <= 0 {
		retentionDays = 90
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	var purged int64
	for _, model := range []any{
		&database.CourseContent{},
		&database.Chapter{},
		&database.Question{},
		&database.QuestionTopic{},
	} {
		result := database.DB.
			Where("is_deleted = ? AND updated_at < ?", true, cutoff).
			Delete(model)
		if result.Error != nil {
			return purged, fmt.Errorf("failed to purge rows: %v", result.Error)
		}
		purged += result.RowsAffected
	}
	return purged, nil
}
