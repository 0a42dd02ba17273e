package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/tasks"
)

func newTestRouter(t *testing.T) (http.Handler, *tasks.Service) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		Environment:    "development",
		AllowedOrigins: []string{"http://localhost:8080"},
		FrontendURL:    "http://localhost:8080",
	}

	taskSvc := tasks.NewService(tasks.NewInMemoryRepository(nil))
	authSvc := auth.NewService(auth.NewInMemoryRepository(), time.Hour)
	assets := fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte("<!doctype html><title>Taskboard</title>")},
		"app.js":     &fstest.MapFile{Data: []byte("console.log('ok');")},
	}

	return NewRouter(cfg, taskSvc, authSvc, &fakeGoogleAuthenticator{}, assets, logger), taskSvc
}

func TestRouterHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body %q", rec.Body.String())
	}
}

func TestRouterRejectsUnauthenticatedTaskWrites(t *testing.T) {
	router, service := newTestRouter(t)

	body := bytes.NewBufferString(`{"title": "sneaky", "description": "no session"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	list, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(list) != 0 {
		t.Fatal("expected rejected request to leave the store unchanged")
	}
}

func TestRouterRejectsUnauthenticatedTaskReads(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouterSessionStatusIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":false`) {
		t.Fatalf("unexpected session body %q", rec.Body.String())
	}
}

func TestRouterServesEmbeddedClient(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Taskboard") {
		t.Fatalf("expected index page, got %q", rec.Body.String())
	}
}

func TestRouterFallsBackToIndexForClientRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Taskboard") {
		t.Fatalf("expected index fallback, got %q", rec.Body.String())
	}
}
