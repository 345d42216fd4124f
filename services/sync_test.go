package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eco-garden-system/models"
)

func newTestSync(t *testing.T, baseURL string) *SheetSyncService {
	t.Helper()
	ledger, _ := newTestLedger(t)
	seedUser(t, ledger, models.User{Name: "Greta", Points: 10, LifetimePoints: 10, Stage: StageSeed})
	return NewSheetSyncService(baseURL, &http.Client{Timeout: 5 * time.Second}, ledger)
}

func TestSyncFromSheetBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("t") == "" {
			t.Error("pull request missing cache-buster param")
		}
		w.Write([]byte(`[{"user":"Greta","mission":"Pick up litter","points":"120P","timestamp":"2026-08-28T09:00:00Z"}]`))
	}))
	defer server.Close()

	sync := newTestSync(t, server.URL)
	result, err := sync.SyncFromSheet(context.Background())
	if err != nil {
		t.Fatalf("SyncFromSheet: %v", err)
	}
	if !result.Restored || result.TotalPoints != 120 {
		t.Errorf("result = %+v, want 120P restore", result)
	}
}

func TestSyncFromSheetDataWrapper(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"user": "Greta", "mission": "Use a tumbler", "points": 80},
			},
		})
	}))
	defer server.Close()

	sync := newTestSync(t, server.URL)
	result, err := sync.SyncFromSheet(context.Background())
	if err != nil {
		t.Fatalf("SyncFromSheet: %v", err)
	}
	if !result.Restored || result.TotalPoints != 80 {
		t.Errorf("result = %+v, want 80P restore", result)
	}
}

func TestSyncFromSheetNoMatchIsSoft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"user":"Nobody","mission":"x","points":10}]`))
	}))
	defer server.Close()

	sync := newTestSync(t, server.URL)
	result, err := sync.SyncFromSheet(context.Background())
	if err != nil {
		t.Fatalf("no-match must not error: %v", err)
	}
	if result.Restored {
		t.Error("no-match reported as restore")
	}

	user, _ := sync.Ledger.Storage.GetUser()
	if user.Points != 10 || user.LifetimePoints != 10 {
		t.Errorf("ledger changed on no-match: %+v", user)
	}
}

func TestSyncFromSheetHardFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"unparseable body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json at all`))
		}},
		{"object without data array", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rows": 3}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			sync := newTestSync(t, server.URL)
			if _, err := sync.SyncFromSheet(context.Background()); err == nil {
				t.Fatal("expected an error")
			}

			user, _ := sync.Ledger.Storage.GetUser()
			if user.Points != 10 {
				t.Errorf("failed pull mutated the ledger: %+v", user)
			}
		})
	}
}

func TestSyncFromSheetRequiresURL(t *testing.T) {
	sync := newTestSync(t, "")
	if _, err := sync.SyncFromSheet(context.Background()); err != ErrNoBackupURL {
		t.Errorf("error = %v, want ErrNoBackupURL", err)
	}
}

func TestPushRecordIgnoresResponse(t *testing.T) {
	var received models.PushRecord
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		// A hostile status must not matter: the write is opaque.
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sync := newTestSync(t, server.URL)
	outcome := sync.PushRecord(models.PushRecord{User: "Greta", Mission: "Pick up litter", Points: 10, Level: StageSeed})
	if !outcome.Success {
		t.Errorf("outcome = %+v, want success despite non-OK status", outcome)
	}
	if received.User != "Greta" || received.Points != 10 {
		t.Errorf("payload = %+v", received)
	}
}

func TestPushRecordTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // connection refused from here on

	sync := newTestSync(t, url)
	outcome := sync.PushRecord(models.PushRecord{User: "Greta", Mission: "x", Points: 1, Level: StageSeed})
	if outcome.Success {
		t.Error("transport failure reported as success")
	}
	if !strings.Contains(outcome.Message, "failed") {
		t.Errorf("message = %q, want a transient failure notice", outcome.Message)
	}
}
