package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fjordrenovering/website/internal/http/handler"
	"github.com/fjordrenovering/website/internal/storage"
	"github.com/fjordrenovering/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type unreachableStorage struct {
	storage.Storage
}

func (unreachableStorage) Ping(ctx context.Context) error {
	return errors.New("container not reachable")
}

type healthBody struct {
	Status string                       `json:"status"`
	Checks map[string]map[string]string `json:"checks"`
}

func TestHealthHandler(t *testing.T) {
	f := setupFixture(t)

	rr := serve(f.health.Live, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	rr = serve(f.health.Database, httptest.NewRequest(http.MethodGet, "/health/db", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"stats"`)

	rr = serve(f.health.Ready, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode[healthBody](t, rr)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["storage"]["status"])
}

func TestHealthHandler_ReadyReportsStorageFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := handler.NewHealthHandler(db, unreachableStorage{}, zap.NewNop())

	rr := serve(h.Ready, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	body := decode[healthBody](t, rr)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"]["status"])
	assert.Equal(t, "container not reachable", body.Checks["storage"]["error"])
}
