package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petworks/tamacore/internal/clock"
	"github.com/petworks/tamacore/internal/domain"
	"github.com/petworks/tamacore/internal/item"
	"github.com/petworks/tamacore/internal/session"
)

type stubStore struct {
	pingErr error
}

func (s *stubStore) Load(ctx context.Context) (*domain.SaveState, error)  { return nil, nil }
func (s *stubStore) Save(ctx context.Context, st *domain.SaveState) error { return nil }
func (s *stubStore) Ping(ctx context.Context) error                       { return s.pingErr }
func (s *stubStore) Close() error                                         { return nil }

func newTestHandlerSession(t *testing.T) *session.Session {
	t.Helper()
	clk := clock.NewFake(time.UnixMilli(700*clock.DayMillis + 3_600_000))
	catalog, err := item.LoadEmbedded()
	require.NoError(t, err)
	sess, err := session.New(context.Background(), clk, &stubStore{}, catalog)
	require.NoError(t, err)
	return sess
}

func TestHandleFeedReturnsToast(t *testing.T) {
	sess := newTestHandlerSession(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pet/feed", nil)
	rec := httptest.NewRecorder()
	HandleFeed(sess)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res domain.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res.OK)
	assert.Equal(t, domain.MsgFed, res.Message)
}

func TestHandleFeedFailureStillHTTP200(t *testing.T) {
	sess := newTestHandlerSession(t)

	// Two chest claims: the second is rejected gameplay, not an HTTP error.
	rec := httptest.NewRecorder()
	HandleClaimChest(sess)(rec, httptest.NewRequest(http.MethodPost, "/api/v1/chest/claim", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HandleClaimChest(sess)(rec, httptest.NewRequest(http.MethodPost, "/api/v1/chest/claim", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var res domain.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.False(t, res.OK)
	assert.Equal(t, domain.MsgAlreadyClaimed, res.Message)
}

func TestHandleGetState(t *testing.T) {
	sess := newTestHandlerSession(t)

	rec := httptest.NewRecorder()
	HandleGetState(sess)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var v session.View
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	assert.Equal(t, domain.StartingCoins, v.Coins)
	assert.Len(t, v.Featured, 6)
	assert.True(t, v.ChestReady)
}

func TestHandleShopSelectBadBody(t *testing.T) {
	sess := newTestHandlerSession(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shop/select", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	HandleShopSelect(sess)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleShopSelectThenBuy(t *testing.T) {
	sess := newTestHandlerSession(t)

	v := sess.View()
	var target session.ItemView
	for _, it := range v.Featured {
		if it.PriceCoins > 0 && it.PriceCoins <= v.Coins {
			target = it
			break
		}
	}
	require.NotEmpty(t, target.ID)

	body, _ := json.Marshal(SelectRequest{ID: target.ID})
	rec := httptest.NewRecorder()
	HandleShopSelect(sess)(rec, httptest.NewRequest(http.MethodPost, "/api/v1/shop/select", strings.NewReader(string(body))))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HandleBuy(sess)(rec, httptest.NewRequest(http.MethodPost, "/api/v1/shop/buy", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res domain.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res.OK)
	assert.Equal(t, "Bought "+target.ID, res.Message)
}

func TestHandleNavPushRejectsUnknownScene(t *testing.T) {
	sess := newTestHandlerSession(t)

	body, _ := json.Marshal(NavRequest{Scene: "Basement"})
	rec := httptest.NewRecorder()
	HandleNavPush(sess)(rec, httptest.NewRequest(http.MethodPost, "/api/v1/nav/push", strings.NewReader(string(body))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleNavPushAndPop(t *testing.T) {
	sess := newTestHandlerSession(t)

	body, _ := json.Marshal(NavRequest{Scene: session.SceneShop})
	rec := httptest.NewRecorder()
	HandleNavPush(sess)(rec, httptest.NewRequest(http.MethodPost, "/api/v1/nav/push", strings.NewReader(string(body))))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.SceneShop, sess.Scene())

	rec = httptest.NewRecorder()
	HandleNavPop(sess)(rec, httptest.NewRequest(http.MethodPost, "/api/v1/nav/pop", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.SceneHome, sess.Scene())
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var res HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "ok", res.Status)
}

func TestHandleReadyzReportsStoreFailure(t *testing.T) {
	store := &stubStore{pingErr: errors.New("disk gone")}

	rec := httptest.NewRecorder()
	HandleReadyz(store)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var res HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "unavailable", res.Status)
}

func TestHandleVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleVersion()(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var info VersionInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&info))
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
