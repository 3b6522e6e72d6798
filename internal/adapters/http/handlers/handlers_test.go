package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-vote-service/internal/mocks"
	"github.com/jsamuelsen/quote-vote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

const testUser = "user-a"

var testAuth = &config.AuthConfig{SubjectHeader: "X-User-ID"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// apiRouter mounts the given registrations the way the production router
// does: a public group with optional auth and a protected group.
func apiRouter(register func(public, protected *gin.RouterGroup)) *gin.Engine {
	engine := gin.New()
	api := engine.Group("/api/v1")
	register(
		api.Group("", middleware.OptionalAuth(testAuth)),
		api.Group("", middleware.RequireAuth(testAuth)),
	)

	return engine
}

// call performs a request as user (anonymous when user is "") and decodes the
// JSON body into a generic map.
func call(t *testing.T, engine *gin.Engine, method, path, user, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if user != "" {
		req.Header.Set("X-User-ID", user)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}

	return w.Code, resp
}

// errorCode extracts error.code from an error envelope.
func errorCode(t *testing.T, resp map[string]any) string {
	t.Helper()

	errObj, ok := resp["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %v", resp)

	code, _ := errObj["code"].(string)

	return code
}

func errorDetails(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	errObj, ok := resp["error"].(map[string]any)
	require.True(t, ok)

	details, _ := errObj["details"].(map[string]any)

	return details
}

func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %v", resp)

	return d
}

// storeWithTx returns a ledger store whose transactions run against tx.
func storeWithTx(t *testing.T, tx ports.LedgerTx) *mocks.MockLedgerStore {
	t.Helper()

	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, ports.LedgerTx) error) error {
			return fn(ctx, tx)
		})

	return store
}

// storeWithSnapshot returns a ledger store whose snapshots read from r.
func storeWithSnapshot(t *testing.T, r ports.SnapshotReader) *mocks.MockLedgerStore {
	t.Helper()

	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().ReadSnapshot(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, ports.SnapshotReader) error) error {
			return fn(ctx, r)
		})

	return store
}
