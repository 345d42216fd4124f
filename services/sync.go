// services/sync.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"eco-garden-system/models"

	"github.com/sirupsen/logrus"
)

// ErrNoBackupURL means the backup sheet endpoint is not configured.
var ErrNoBackupURL = errors.New("backup sheet URL not configured")

// Outcome is the user-facing result of a fire-and-forget push. A failed
// push is a transient notice, never a reason to revert the local earn.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SheetSyncService talks to the remote backup sheet: one-way pushes of
// completed missions and a pull that rebuilds the whole ledger.
type SheetSyncService struct {
	BaseURL    string
	HTTPClient *http.Client
	Ledger     *LedgerService
}

func NewSheetSyncService(baseURL string, client *http.Client, ledger *LedgerService) *SheetSyncService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &SheetSyncService{BaseURL: baseURL, HTTPClient: client, Ledger: ledger}
}

// PushRecord posts one completed mission to the sheet. The endpoint is an
// opaque cross-origin write: status and body are not inspected. Only a
// transport-level failure is reported, and only as a notice.
func (s *SheetSyncService) PushRecord(record models.PushRecord) Outcome {
	if s.BaseURL == "" {
		return Outcome{Success: false, Message: "backup sheet URL not set"}
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return Outcome{Success: false, Message: "backup payload encoding failed"}
	}

	resp, err := s.HTTPClient.Post(s.BaseURL, "text/plain;charset=utf-8", bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Warn("backup push failed")
		return Outcome{Success: false, Message: "backup push failed"}
	}
	// Response intentionally ignored.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return Outcome{Success: true, Message: "sent to backup sheet"}
}

// SyncFromSheet pulls all rows from the sheet and hands them to the
// ledger's restore path. The cache-buster query param forces a fresh
// read. The endpoint may return a bare row array or an object wrapping
// one under "data"; anything else is a malformed response.
func (s *SheetSyncService) SyncFromSheet(ctx context.Context) (RestoreResult, error) {
	if s.BaseURL == "" {
		return RestoreResult{}, ErrNoBackupURL
	}

	url := fmt.Sprintf("%s?t=%d", s.BaseURL, time.Now().UnixMilli())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return RestoreResult{}, fmt.Errorf("build backup request: %w", err)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return RestoreResult{}, fmt.Errorf("fetch backup sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return RestoreResult{}, fmt.Errorf("backup sheet returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RestoreResult{}, fmt.Errorf("read backup response: %w", err)
	}

	rows, err := decodeSheetRows(body)
	if err != nil {
		return RestoreResult{}, err
	}

	return s.Ledger.RestoreFromRows(rows)
}

func decodeSheetRows(body []byte) ([]models.SheetRow, error) {
	var rows []models.SheetRow
	if err := json.Unmarshal(body, &rows); err == nil {
		return rows, nil
	}

	var wrapped struct {
		Data []models.SheetRow `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("malformed backup response: %w", err)
	}
	if wrapped.Data == nil {
		return nil, errors.New("malformed backup response: expected a row array or a data wrapper")
	}
	return wrapped.Data, nil
}
