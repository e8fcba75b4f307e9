package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ask-astro/internal/adapters/auth/jwtauth"
	"ask-astro/internal/domain/chat"
	"ask-astro/internal/router"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type fixedProvider struct{}

func (fixedProvider) Reply(context.Context, chat.Prompt) (string, error) {
	return "The stars say yes.", nil
}

func TestHTTP_EndToEnd_GuestJourney(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Provider:       fixedProvider{},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}))
	defer ts.Close()

	guestID := "guest-1"

	// 1) Sin perfil no hay dashboard
	{
		st, _ := doReq(t, ts.URL, "GET", "/me/dashboard", guestID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 dashboard without profile, got %d", st)
		}
	}

	// 2) Tres preguntas de guest: la tercera pide registro
	for i := 1; i <= 3; i++ {
		st, body := doReq(t, ts.URL, "POST", "/chat/messages", guestID, map[string]any{"text": "love today?"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 send message, got %d body=%s", st, string(body))
		}
		var res struct {
			QuestionCount   int  `json:"question_count"`
			PromptSignup    bool `json:"prompt_signup"`
			PromptBirthInfo bool `json:"prompt_birth_info"`
		}
		mustJSON(t, body, &res)
		if res.QuestionCount != i || res.PromptSignup != (i == 3) || !res.PromptBirthInfo {
			t.Fatalf("unexpected prompts at question %d: %+v", i, res)
		}
	}

	// 3) Guarda perfil de nacimiento
	{
		st, body := doReq(t, ts.URL, "PUT", "/me/profile", guestID, map[string]any{
			"first_name": "Ana",
			"birth_date": "1990-07-23",
			"birth_time": "06:45",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 save profile, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"sign":"Leo"`) || !strings.Contains(string(body), `"life_path_number":4`) {
			t.Fatalf("unexpected cosmic block: %s", string(body))
		}
	}

	// 4) Se registra: adopta el id del guest y reinicia el contador
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/signup", guestID, map[string]any{"email": "ana@example.com"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 signup, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"user_id":"guest-1"`) {
			t.Fatalf("expected adopted guest id, got %s", string(body))
		}
	}

	// 5) Cambia a Celestial y el dashboard lo refleja
	{
		st, body := doReq(t, ts.URL, "POST", "/me/plan", guestID, map[string]any{"plan": "celestial"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 change plan, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/me/dashboard", guestID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
		}
		var d struct {
			FirstName    string              `json:"first_name"`
			Plan         struct{ ID string } `json:"plan"`
			Capabilities map[string]bool     `json:"capabilities"`
		}
		mustJSON(t, body, &d)
		if d.FirstName != "Ana" || d.Plan.ID != "celestial" || !d.Capabilities["video_consultations"] {
			t.Fatalf("unexpected dashboard: %s", string(body))
		}
	}

	// 6) El historial tiene las tres preguntas y sus respuestas
	{
		st, body := doReq(t, ts.URL, "GET", "/chat/messages", guestID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d", st)
		}
		var msgs []map[string]any
		mustJSON(t, body, &msgs)
		if len(msgs) != 6 {
			t.Fatalf("expected 6 messages, got %d", len(msgs))
		}
	}
}

func TestHTTP_PublicEndpoints(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/astrology/signs", http.StatusOK},
		{"/astrology/reading?date=2000-02-29", http.StatusOK},
		{"/astrology/reading?date=1990-02-30", http.StatusBadRequest},
		{"/plans", http.StatusOK},
		{"/chat/welcome", http.StatusOK},
		{"/swagger/doc.json", http.StatusOK},
		{"/me/profile", http.StatusUnauthorized},
	}
	for _, c := range cases {
		st, body := doReq(t, ts.URL, "GET", c.path, "", nil)
		if st != c.want {
			t.Fatalf("GET %s: expected %d, got %d body=%s", c.path, c.want, st, string(body))
		}
	}
}

func TestHTTP_JWTAndRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	jwt := jwtauth.NewManager("0123456789abcdef-router-test", time.Hour)
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: jwt,
		TokenIssuer:  jwt,
		Redis:        rdb,
		Provider:     fixedProvider{},
	}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/auth/guest", "", nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 guest, got %d", st)
	}
	var sess struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	mustJSON(t, body, &sess)
	if sess.Token == "" {
		t.Fatalf("expected token, got %s", string(body))
	}

	// el header de debug no sirve con verifier configurado
	if st, _ := doReq(t, ts.URL, "GET", "/me/capabilities", sess.UserID, nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug header, got %d", st)
	}

	st, _ = doBearer(t, ts.URL, "POST", "/chat/messages", sess.Token, map[string]any{"text": "career?"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 send with token, got %d", st)
	}
	if got, _ := mr.Get("askastro:questions:" + sess.UserID); got != "1" {
		t.Fatalf("expected redis counter 1, got %q", got)
	}

	st, body = doBearer(t, ts.URL, "POST", "/auth/signup", sess.Token, map[string]any{"email": "leo@example.com"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 signup, got %d body=%s", st, string(body))
	}
	if mr.Exists("askastro:questions:" + sess.UserID) {
		t.Fatalf("expected counter reset after signup")
	}
}

func doBearer(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()
	return do(t, method, baseURL+path, body, map[string]string{"Authorization": "Bearer " + token})
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()
	headers := map[string]string{}
	if debugUserID != "" {
		headers["X-Debug-User-ID"] = debugUserID
	}
	return do(t, method, baseURL+path, body, headers)
}

func do(t *testing.T, method, url string, body any, headers map[string]string) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func mustJSON(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}
