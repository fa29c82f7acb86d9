// Package main demonstrates hosting the Heroku strategy in a small web app:
// chi routing, env-based configuration, and a signed state cookie for CSRF
// protection (the strategy itself never synthesizes state).
package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/herokuauth"
)

const stateCookie = "heroku_oauth_state"

type config struct {
	Heroku       herokuauth.Config
	Addr         string `env:"ADDR" envDefault:":8080"`
	CookieSecret string `env:"COOKIE_SECRET,required"`
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).With("app", "herokuauth-example")

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Error("parse config", "error", err)
		os.Exit(1)
	}

	strategy, err := herokuauth.New(cfg.Heroku, herokuauth.WithLogger(log))
	if err != nil {
		log.Error("build strategy", "error", err)
		os.Exit(1)
	}

	h := &authHandler{
		strategy: strategy,
		secret:   []byte(cfg.CookieSecret),
		log:      log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/auth/heroku", h.login)
	r.Get("/auth/heroku/callback", h.callback)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("starting server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

type authHandler struct {
	strategy *herokuauth.Heroku
	secret   []byte
	log      *slog.Logger
}

// login generates a fresh state value, pins it in a signed cookie, and hands
// the request to the strategy's request phase.
func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    h.sign(state),
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	q := r.URL.Query()
	q.Set("state", state)
	r = r.Clone(r.Context())
	r.URL.RawQuery = q.Encode()

	h.strategy.HandleRequest(w, r)
}

func (h *authHandler) callback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookie)
	if err != nil || !h.verify(cookie.Value, r.URL.Query().Get("state")) {
		http.Error(w, "state mismatch", http.StatusForbidden)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Path: "/", MaxAge: -1})

	st := &herokuauth.State{}
	defer h.strategy.Cleanup(st)

	if err := h.strategy.HandleCallback(r, st); err != nil {
		h.log.ErrorContext(r.Context(), "token exchange unavailable", "error", err)
		http.Error(w, "authentication unavailable", http.StatusBadGateway)
		return
	}

	if fails := st.Failures(); len(fails) > 0 {
		h.writeJSON(w, http.StatusUnauthorized, map[string]any{"failures": fails})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"uid":         h.strategy.UID(st),
		"info":        h.strategy.Info(st),
		"credentials": h.strategy.Credentials(st),
	})
}

func (h *authHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("encode response", "error", err)
	}
}

// sign appends an HMAC-SHA256 signature to the state value.
func (h *authHandler) sign(value string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(value))
	return value + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// verify checks the cookie's signature and that its value matches the state
// echoed back by the provider.
func (h *authHandler) verify(signed, state string) bool {
	value, _, ok := strings.Cut(signed, ".")
	if !ok || state == "" || value != state {
		return false
	}
	return hmac.Equal([]byte(signed), []byte(h.sign(value)))
}
