package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/logger"
)

func newMiniStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewSessionStore(client,
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
		time.Hour,
		false,
	)
	return store, mr
}

func carryCookies(from *httptest.ResponseRecorder, to *http.Request) *http.Request {
	for _, c := range from.Result().Cookies() {
		to.AddCookie(c)
	}
	return to
}

func TestRedisStore_StartSessionThenLoad(t *testing.T) {
	store, mr := newMiniStore(t)

	w := httptest.NewRecorder()
	require.NoError(t, StartSession(w, httptest.NewRequest(http.MethodPost, "/api/session", nil), store,
		Actor{PersonID: 11, Email: "ana@example.com"}))
	require.Len(t, mr.Keys(), 1, "session data lives in redis")
	assert.True(t, strings.HasPrefix(mr.Keys()[0], sessionKeyPrefix))
	assert.Equal(t, time.Hour, mr.TTL(mr.Keys()[0]))

	r := carryCookies(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	a, ok := actorFromSession(r, store, logger.Discard())
	require.True(t, ok)
	assert.Equal(t, Actor{PersonID: 11, Email: "ana@example.com"}, a)
}

func TestRedisStore_EndSessionDeletesKey(t *testing.T) {
	store, mr := newMiniStore(t)

	w := httptest.NewRecorder()
	require.NoError(t, StartSession(w, httptest.NewRequest(http.MethodPost, "/api/session", nil), store,
		Actor{PersonID: 11, Email: "ana@example.com"}))

	r := carryCookies(w, httptest.NewRequest(http.MethodDelete, "/api/session", nil))
	w2 := httptest.NewRecorder()
	require.NoError(t, EndSession(w2, r, store))

	assert.Empty(t, mr.Keys())
	cookies := w2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0, "cookie must be expired")
}

func TestRedisStore_ExpiredRedisKeyYieldsNewSession(t *testing.T) {
	store, mr := newMiniStore(t)

	w := httptest.NewRecorder()
	require.NoError(t, StartSession(w, httptest.NewRequest(http.MethodPost, "/api/session", nil), store,
		Actor{PersonID: 11, Email: "ana@example.com"}))
	mr.FlushAll()

	r := carryCookies(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	session, err := store.New(r, sessionName)
	require.NoError(t, err)
	assert.True(t, session.IsNew)
}

func TestRedisStore_TamperedCookieYieldsNewSession(t *testing.T) {
	store, _ := newMiniStore(t)

	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.AddCookie(&http.Cookie{Name: sessionName, Value: "forged"})
	session, err := store.New(r, sessionName)
	require.NoError(t, err)
	assert.True(t, session.IsNew)
	assert.Empty(t, session.ID)
}
