package main

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kacperborowieckb/sql-chat/shared/sqlgen"
	"github.com/patrickmn/go-cache"
)

const sessionCookieName = "sqlchat_session"

// sessionStore keeps each browser session's History in memory. Sessions expire
// after ttl without activity.
type sessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		cache: cache.New(ttl, ttl),
		ttl:   ttl,
	}
}

// history returns the caller's History, starting a session when the request
// carries no valid session cookie. The cookie and expiry are refreshed.
func (s *sessionStore) history(w http.ResponseWriter, r *http.Request) *sqlgen.History {
	id := ""
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			id = cookie.Value
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	h := s.lookup(id)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return h
}

func (s *sessionStore) lookup(id string) *sqlgen.History {
	if v, found := s.cache.Get(id); found {
		h := v.(*sqlgen.History)
		s.cache.SetDefault(id, h)
		return h
	}

	h := sqlgen.NewHistory()
	if err := s.cache.Add(id, h, cache.DefaultExpiration); err != nil {
		// lost a race with a concurrent request for the same session
		if v, found := s.cache.Get(id); found {
			return v.(*sqlgen.History)
		}
	}

	return h
}

func (s *sessionStore) count() int {
	return s.cache.ItemCount()
}
