package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"classroom-dashboard/models"
	"classroom-dashboard/testutil"

	"github.com/gin-gonic/gin"
)

func newTestRouter(exchange *ExchangeClient, users *testutil.MemUserStore, sessions *testutil.MemSessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	resolve := CurrentUser(users, sessions)
	r.POST("/api/auth/session", CreateSession(exchange, users, sessions))
	r.GET("/api/auth/me", resolve, RequireUser(), Me())
	r.POST("/api/auth/logout", Logout(sessions))
	return r
}

// identityServer fakes the external provider: any session id resolves to the
// same email, but each call mints a fresh token.
func identityServer(t *testing.T, email string) *httptest.Server {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprintf(w, `{"email":%q,"name":"A","session_token":"tok%d"}`, email, calls)
	}))
	t.Cleanup(server.Close)
	return server
}

func postSession(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getMe(t *testing.T, r *gin.Engine, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func withCookie(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func TestCreateSession_MissingSessionID(t *testing.T) {
	r := newTestRouter(NewExchangeClient("http://unused"), testutil.NewMemUserStore(), testutil.NewMemSessionStore())
	if w := postSession(t, r, `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateSession_UpstreamRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	r := newTestRouter(NewExchangeClient(server.URL), testutil.NewMemUserStore(), testutil.NewMemSessionStore())
	if w := postSession(t, r, `{"session_id":"bad"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateSession_UpstreamDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	r := newTestRouter(NewExchangeClient(server.URL), testutil.NewMemUserStore(), testutil.NewMemSessionStore())
	if w := postSession(t, r, `{"session_id":"abc"}`); w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestLoginFlow_NewUserThenReuse(t *testing.T) {
	server := identityServer(t, "a@x.com")
	users := testutil.NewMemUserStore()
	sessions := testutil.NewMemSessionStore()
	r := newTestRouter(NewExchangeClient(server.URL), users, sessions)

	// first login creates the user with the default role
	w := postSession(t, r, `{"session_id":"abc"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var first struct {
		User    models.User `json:"user"`
		Message string      `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if first.User.Role != models.RoleStudent {
		t.Fatalf("role = %q, want student", first.User.Role)
	}

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookie {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil {
		t.Fatal("session cookie not set")
	}
	if !sessionCookie.HttpOnly || !sessionCookie.Secure || sessionCookie.Path != "/" {
		t.Fatalf("cookie attributes wrong: %+v", sessionCookie)
	}
	if sessionCookie.MaxAge != int(SessionTTL.Seconds()) {
		t.Fatalf("cookie MaxAge = %d, want %d", sessionCookie.MaxAge, int(SessionTTL.Seconds()))
	}

	// second login with the same email reuses the user and adds a session
	w = postSession(t, r, `{"session_id":"def"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("second login status = %d, want 200", w.Code)
	}
	var second struct {
		User models.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if second.User.ID != first.User.ID {
		t.Fatalf("user id changed on repeat login: %q vs %q", second.User.ID, first.User.ID)
	}

	// both tokens resolve to the same user until revoked or expired
	for _, token := range []string{"tok1", "tok2"} {
		w := getMe(t, r, withBearer(token))
		if w.Code != http.StatusOK {
			t.Fatalf("me with %s: status = %d, want 200", token, w.Code)
		}
		var me models.User
		if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
			t.Fatalf("decode me: %v", err)
		}
		if me.ID != first.User.ID {
			t.Fatalf("me with %s resolved wrong user", token)
		}
	}
}

func TestSessionExpiry(t *testing.T) {
	users := testutil.NewMemUserStore()
	sessions := testutil.NewMemSessionStore()
	users.Add(models.User{ID: "u1", Email: "a@x.com", Role: models.RoleStudent})
	if _, err := sessions.Create(context.Background(), "u1", "tok1", time.Minute); err != nil {
		t.Fatalf("create session: %v", err)
	}
	r := newTestRouter(NewExchangeClient("http://unused"), users, sessions)

	if w := getMe(t, r, withBearer("tok1")); w.Code != http.StatusOK {
		t.Fatalf("fresh session: status = %d, want 200", w.Code)
	}

	sessions.Now = func() time.Time { return time.Now().UTC().Add(2 * time.Minute) }

	// lazy expiry: resolution fails but the record stays, and resolving
	// again gives the same result
	for i := 0; i < 2; i++ {
		if w := getMe(t, r, withBearer("tok1")); w.Code != http.StatusUnauthorized {
			t.Fatalf("expired session: status = %d, want 401", w.Code)
		}
	}
	if sessions.Len() != 1 {
		t.Fatalf("expired session was deleted; want it kept")
	}
}

func TestOrphanedSession(t *testing.T) {
	users := testutil.NewMemUserStore()
	sessions := testutil.NewMemSessionStore()
	users.Add(models.User{ID: "u1", Email: "a@x.com", Role: models.RoleStudent})
	sessions.Create(context.Background(), "u1", "tok1", time.Hour)
	users.Delete("u1")
	r := newTestRouter(NewExchangeClient("http://unused"), users, sessions)

	if w := getMe(t, r, withBearer("tok1")); w.Code != http.StatusUnauthorized {
		t.Fatalf("orphaned session: status = %d, want 401", w.Code)
	}
}

func TestCookieTakesPrecedenceOverBearer(t *testing.T) {
	users := testutil.NewMemUserStore()
	sessions := testutil.NewMemSessionStore()
	users.Add(models.User{ID: "u1", Email: "a@x.com", Role: models.RoleStudent})
	users.Add(models.User{ID: "u2", Email: "b@x.com", Role: models.RoleTeacher})
	sessions.Create(context.Background(), "u1", "cookie-tok", time.Hour)
	sessions.Create(context.Background(), "u2", "bearer-tok", time.Hour)
	r := newTestRouter(NewExchangeClient("http://unused"), users, sessions)

	w := getMe(t, r, withCookie("cookie-tok"), withBearer("bearer-tok"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var me models.User
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.ID != "u1" {
		t.Fatalf("resolved %q, want the cookie's user u1", me.ID)
	}
}

func TestLogout(t *testing.T) {
	users := testutil.NewMemUserStore()
	sessions := testutil.NewMemSessionStore()
	users.Add(models.User{ID: "u1", Email: "a@x.com", Role: models.RoleStudent})
	sessions.Create(context.Background(), "u1", "tok1", time.Hour)
	r := newTestRouter(NewExchangeClient("http://unused"), users, sessions)

	logout := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok1"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := logout()
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d, want 200", w.Code)
	}
	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("session cookie not cleared")
	}
	if sessions.Len() != 0 {
		t.Fatal("session not revoked")
	}
	if w := getMe(t, r, withBearer("tok1")); w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout: status = %d, want 401", w.Code)
	}

	// revoking again is a no-op, logout still succeeds
	if w := logout(); w.Code != http.StatusOK {
		t.Fatalf("repeat logout status = %d, want 200", w.Code)
	}
}
