// Package auth resolves the acting person for audit columns. The actor is
// kept in a server-side session: Redis holds the values and the cookie only
// carries a signed and encrypted session id.
//
// Keys must be 32 or 64 bytes for HMAC and 16, 24 or 32 bytes for AES.
// Generate production keys with:
//
//	openssl rand -base64 32
package auth

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/gob"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "orderdesk:session:"

// RedisStore is a sessions.Store keeping gob-encoded values under
// "orderdesk:session:<id>" with a TTL equal to the cookie MaxAge.
type RedisStore struct {
	client  *redis.Client
	codecs  []securecookie.Codec
	options *sessions.Options
}

// NewSessionStore returns a store whose cookies live for ttl. secureCookie
// restricts the cookie to HTTPS and is set in production.
func NewSessionStore(client *redis.Client, authKey, encryptionKey []byte, ttl time.Duration, secureCookie bool) *RedisStore {
	return &RedisStore{
		client: client,
		codecs: securecookie.CodecsFromPairs(authKey, encryptionKey),
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// Get returns the request-cached session for name.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New never fails on a bad cookie: a missing, tampered or expired cookie and
// a missing Redis key all yield a fresh session.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true

	id, ok := s.decodeID(r, name)
	if !ok {
		return session, nil
	}
	session.ID = id
	if err := s.load(r.Context(), session); err != nil {
		return session, nil
	}
	session.IsNew = false
	return session, nil
}

func (s *RedisStore) decodeID(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return "", false
	}
	return id, true
}

// Save writes the values to Redis and sets the cookie. A negative MaxAge
// deletes both.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			_ = s.client.Del(r.Context(), sessionKeyPrefix+session.ID).Err()
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}
	if err := s.save(r.Context(), session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func newSessionID() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}

func (s *RedisStore) save(ctx context.Context, session *sessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("set session in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, session *sessions.Session) error {
	data, err := s.client.Get(ctx, sessionKeyPrefix+session.ID).Bytes()
	if err != nil {
		return fmt.Errorf("get session from redis: %w", err)
	}
	return gob.NewDecoder(bytes.NewReader(data)).Decode(&session.Values)
}

// StartSession stores a in the request's session and writes the cookie.
func StartSession(w http.ResponseWriter, r *http.Request, store sessions.Store, a Actor) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		// A stale or undecodable cookie still yields a usable fresh session.
		session, err = store.New(r, sessionName)
		if err != nil {
			return fmt.Errorf("new session: %w", err)
		}
	}
	session.Values[sessionPersonIDKey] = a.PersonID
	session.Values[sessionEmailKey] = a.Email
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// EndSession expires the request's session and clears the cookie.
func EndSession(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	session.Values = map[any]any{}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
