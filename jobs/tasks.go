// Package jobs hosts the background workers: scheduled stock scans and
// ledger integrity sweeps run through Asynq.
package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLowStockScan triggers the periodic low-stock sweep.
	TaskLowStockScan = "inventory:lowstock_scan"
	// TaskLedgerIntegrity triggers the ledger balance sweep.
	TaskLedgerIntegrity = "ledger:integrity"
)

// ScanPayload carries scheduling metadata shared by the sweeps.
type ScanPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewLowStockScanTask constructs an Asynq task for the stock sweep.
func NewLowStockScanTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(ScanPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockScan, body, asynq.Queue(QueueDefault)), nil
}

// NewLedgerIntegrityTask constructs an Asynq task for the ledger sweep.
func NewLedgerIntegrityTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(ScanPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLedgerIntegrity, body, asynq.Queue(QueueDefault)), nil
}
