package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/videoculler/engine/internal/history"
)

func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer test-token")
	return req
}

func TestHealth_NoAuthRequired(t *testing.T) {
	router := NewRouter(testServerConfig(newFakeRepo(), t.TempDir()))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if resp.Version == "" {
		t.Error("version missing")
	}
}

func TestProtectedRoutes_RequireAuth(t *testing.T) {
	router := NewRouter(testServerConfig(newFakeRepo(), t.TempDir()))

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/formats"},
		{http.MethodPost, "/export"},
		{http.MethodGet, "/exports"},
		{http.MethodGet, "/exports/some-id"},
	}
	for _, p := range paths {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(p.method, p.path, nil))
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want %d", p.method, p.path, rr.Code, http.StatusUnauthorized)
		}
	}
}

func TestFormats(t *testing.T) {
	router := NewRouter(testServerConfig(newFakeRepo(), t.TempDir()))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authed(httptest.NewRequest(http.MethodGet, "/formats", nil)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp FormatsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	want := []string{"edl", "fcpxml", "premiere", "resolve"}
	if !reflect.DeepEqual(resp.Formats, want) {
		t.Errorf("formats = %v, want %v", resp.Formats, want)
	}
}

func TestListExports(t *testing.T) {
	repo := newFakeRepo()
	now := time.Now().UTC()
	for _, id := range []string{"a", "b"} {
		repo.CreateExport(context.Background(), &history.ExportRecord{
			ID: id, Title: "Cut", Format: "edl", OutputPath: "/tmp/cut.edl",
			Status: history.ExportStatusCompleted, CreatedAt: now, UpdatedAt: now,
		})
	}
	router := NewRouter(testServerConfig(repo, t.TempDir()))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authed(httptest.NewRequest(http.MethodGet, "/exports", nil)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp ExportRecordsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	if len(resp.Exports) != 2 {
		t.Fatalf("exports = %d records, want 2", len(resp.Exports))
	}
}

func TestGetExport(t *testing.T) {
	repo := newFakeRepo()
	now := time.Now().UTC()
	repo.CreateExport(context.Background(), &history.ExportRecord{
		ID: "rec-1", Title: "Cut", Format: "fcpxml", OutputPath: "/tmp/cut.fcpxml",
		Status: history.ExportStatusCompleted, ClipCount: 2, CreatedAt: now, UpdatedAt: now,
	})
	router := NewRouter(testServerConfig(repo, t.TempDir()))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authed(httptest.NewRequest(http.MethodGet, "/exports/rec-1", nil)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp ExportRecordResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	if resp.ID != "rec-1" || resp.Format != "fcpxml" || resp.ClipCount != 2 {
		t.Errorf("record mismatch: %+v", resp)
	}
}

func TestGetExport_NotFound(t *testing.T) {
	router := NewRouter(testServerConfig(newFakeRepo(), t.TempDir()))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authed(httptest.NewRequest(http.MethodGet, "/exports/missing", nil)))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
