package internal

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoginLogoutCheck(t *testing.T) {
	r, _, _ := newTestEnv(t)

	// anonymous
	w := doJSON(r, "GET", "/api/auth/check", "", nil)
	var st struct {
		Authenticated bool   `json:"authenticated"`
		Username      string `json:"username"`
	}
	json.Unmarshal(w.Body.Bytes(), &st)
	if st.Authenticated {
		t.Fatal("authenticated before login")
	}

	// wrong credentials
	w = doJSON(r, "POST", "/api/login", `{"username":"admin","password":"wrong"}`, nil)
	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	w = doJSON(r, "POST", "/api/login", `{"username":"ghost","password":"secret123"}`, nil)
	if w.Code != 401 {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}

	// login
	ck := adminCookie(t, r)
	w = doJSON(r, "GET", "/api/auth/check", "", ck)
	st.Authenticated = false
	json.Unmarshal(w.Body.Bytes(), &st)
	if !st.Authenticated || st.Username != "admin" {
		t.Fatalf("check after login: %+v", st)
	}

	// logout clears the cookie
	w = doJSON(r, "POST", "/api/logout", "", ck)
	if w.Code != 200 {
		t.Fatalf("logout: %d", w.Code)
	}
	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			cleared = c
		}
	}
	if cleared == nil || cleared.Value != "" {
		t.Fatalf("session cookie not cleared: %+v", cleared)
	}

	// a tampered token is anonymous
	bad := &http.Cookie{Name: cookieName, Value: ck.Value + "x"}
	w = doJSON(r, "GET", "/api/auth/check", "", bad)
	st.Authenticated = true
	json.Unmarshal(w.Body.Bytes(), &st)
	if st.Authenticated {
		t.Fatal("tampered token accepted")
	}
}

// Logout must clear the cookie with the same Secure flag Login set it with.
func TestLogoutCookieSecureFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := Config{
		SessionSecret: "test-secret",
		StaticDir:     t.TempDir(),
		UploadDir:     t.TempDir(),
		CookieSecure:  true,
	}
	r := SetupRouter(NewMemStore(), cfg)

	w := doJSON(r, "POST", "/api/logout", "", nil)
	if w.Code != 200 {
		t.Fatalf("logout: %d", w.Code)
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookieName {
			if !ck.Secure {
				t.Fatal("logout cookie missing Secure flag")
			}
			return
		}
	}
	t.Fatal("no session cookie in logout response")
}

func TestLogoutIsIdempotent(t *testing.T) {
	r, _, _ := newTestEnv(t)
	for i := 0; i < 2; i++ {
		w := doJSON(r, "POST", "/api/logout", "", nil)
		if w.Code != 200 {
			t.Fatalf("logout #%d: %d", i+1, w.Code)
		}
	}
}
