package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petworks/tamacore/internal/clock"
	"github.com/petworks/tamacore/internal/domain"
	"github.com/petworks/tamacore/internal/item"
	"github.com/petworks/tamacore/internal/session"
)

type nullStore struct{}

func (nullStore) Load(ctx context.Context) (*domain.SaveState, error)  { return nil, nil }
func (nullStore) Save(ctx context.Context, st *domain.SaveState) error { return nil }
func (nullStore) Ping(ctx context.Context) error                       { return nil }
func (nullStore) Close() error                                         { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	clk := clock.NewFake(time.UnixMilli(700 * clock.DayMillis))
	catalog, err := item.LoadEmbedded()
	require.NoError(t, err)
	sess, err := session.New(context.Background(), clk, nullStore{}, catalog)
	require.NoError(t, err)
	return NewServer(0, sess, nullStore{})
}

func TestRoutesWired(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/readyz"},
		{http.MethodGet, "/version"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/v1/state"},
		{http.MethodPost, "/api/v1/pet/feed"},
		{http.MethodPost, "/api/v1/pet/sleep"},
		{http.MethodPost, "/api/v1/pet/clean"},
		{http.MethodPost, "/api/v1/pet/play"},
		{http.MethodPost, "/api/v1/pet/revive"},
		{http.MethodPost, "/api/v1/chest/claim"},
		{http.MethodPost, "/api/v1/shop/buy"},
		{http.MethodPost, "/api/v1/shop/reroll"},
		{http.MethodPost, "/api/v1/inventory/equip"},
		{http.MethodPost, "/api/v1/inventory/unequip"},
		{http.MethodPost, "/api/v1/nav/pop"},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestStateEndToEndThroughRouter(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/pet/feed", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var v session.View
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	assert.Equal(t, domain.StartingCoins+30, v.Coins)
}
