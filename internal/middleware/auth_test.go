package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/serviplan/booking-api/internal/config"
	"github.com/serviplan/booking-api/internal/models"
	"github.com/serviplan/booking-api/internal/session"
)

type stubStore struct {
	sessions map[string]*session.Session
}

func newStubStore() *stubStore {
	return &stubStore{sessions: map[string]*session.Session{}}
}

func (s *stubStore) Get(_ context.Context, id string) (*session.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (s *stubStore) Save(_ context.Context, sess *session.Session) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *stubStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		SessionCookie: "booking_session",
		SessionTTL:    time.Hour,
	}
}

func newRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoadSession(store, testConfig()))

	r.GET("/whoami", func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": sess.UserID})
	})
	r.GET("/private", RequireUser(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "booking_session", Value: cookie})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestLoadSessionAnonymousWithoutCookie(t *testing.T) {
	r := newRouter(newStubStore())
	w := get(r, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")
}

func TestLoadSessionUnknownCookieStaysAnonymous(t *testing.T) {
	r := newRouter(newStubStore())
	w := get(r, "/whoami", "stale-id")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")
}

func TestLoadSessionResolvesCookie(t *testing.T) {
	store := newStubStore()
	sess := session.New(7, "amani", models.RoleUser)
	_ = store.Save(context.Background(), sess)

	r := newRouter(store)
	w := get(r, "/whoami", sess.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestRequireUser(t *testing.T) {
	store := newStubStore()
	sess := session.New(3, "lina", models.RoleUser)
	_ = store.Save(context.Background(), sess)
	r := newRouter(store)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/private", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/private", sess.ID).Code)
}

func TestRequireAdmin(t *testing.T) {
	store := newStubStore()
	userSess := session.New(3, "lina", models.RoleUser)
	adminSess := session.New(1, "root", models.RoleAdmin)
	_ = store.Save(context.Background(), userSess)
	_ = store.Save(context.Background(), adminSess)
	r := newRouter(store)

	tests := []struct {
		name   string
		cookie string
		want   int
	}{
		{"anonymous", "", http.StatusForbidden},
		{"regular user", userSess.ID, http.StatusForbidden},
		{"admin", adminSess.ID, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, get(r, "/admin", tt.cookie).Code)
		})
	}
}
