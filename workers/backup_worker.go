package workers

import (
	"context"

	"eco-garden-system/models"
	"eco-garden-system/services"

	"github.com/sirupsen/logrus"
)

// BackupWorker drains a queue of completed-mission records and pushes
// each to the backup sheet. The earn transaction commits before anything
// is enqueued, so a failed or dropped push can never roll it back.
type BackupWorker struct {
	Sync  *services.SheetSyncService
	queue chan models.PushRecord
}

func NewBackupWorker(sync *services.SheetSyncService, queueSize int) *BackupWorker {
	if queueSize <= 0 {
		queueSize = 16
	}
	return &BackupWorker{
		Sync:  sync,
		queue: make(chan models.PushRecord, queueSize),
	}
}

// Enqueue hands a record to the worker without blocking the caller. A
// full queue drops the record with a warning; the daily snapshot still
// covers it.
func (w *BackupWorker) Enqueue(record models.PushRecord) {
	select {
	case w.queue <- record:
	default:
		logrus.WithField("mission", record.Mission).Warn("backup queue full, dropping push")
	}
}

// Run consumes the queue until the context is cancelled.
func (w *BackupWorker) Run(ctx context.Context) {
	logrus.Info("backup push worker started")
	for {
		select {
		case <-ctx.Done():
			logrus.Info("backup push worker stopped")
			return
		case record := <-w.queue:
			outcome := w.Sync.PushRecord(record)
			if outcome.Success {
				logrus.WithField("mission", record.Mission).Info("pushed completion to backup sheet")
			} else {
				logrus.WithFields(logrus.Fields{
					"mission": record.Mission,
					"notice":  outcome.Message,
				}).Warn("backup push did not go through")
			}
		}
	}
}
