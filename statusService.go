package main

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
)

type statusResponse struct {
	Response string       `json:"response"`
	Error    string       `json:"error,omitempty"`
	Status   *panelStatus `json:"status,omitempty"`
	Features []string     `json:"features,omitempty"`
}

// apiHandler - settings for the thing that handles HTTP requests
type apiHandler struct {
	rt     runtimeConfig
	user   string
	secret string
	realm  string
}

func newHandler(rt runtimeConfig) *apiHandler {
	return &apiHandler{
		rt:     rt,
		user:   rt.settings.GetString(sStatusUser),
		secret: rt.settings.GetString(sStatusSecret),
		realm:  "ampanel",
	}
}

// BasicAuth - only enforced when a secret is configured
func (m *apiHandler) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.secret == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) != 1 || subtle.ConstantTimeCompare([]byte(pass), []byte(m.secret)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.realm+`"`)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorised.\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *apiHandler) getStatus() statusResponse {
	s := m.rt.board.read()
	if s.Updated.IsZero() {
		return statusResponse{Response: "BAD", Error: "panel not running"}
	}
	return statusResponse{Response: "OK", Status: &s}
}

func (m *apiHandler) getFeatures() statusResponse {
	f := append([]string{}, features...)
	sort.Strings(f)
	return statusResponse{Response: "OK", Features: f}
}

func writeAnswer(w http.ResponseWriter, sr statusResponse) {
	output, _ := json.Marshal(sr)
	w.Header().Set("Content-Type", "application/json")
	if sr.Response != "OK" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	w.Write(output)
}

func (m *apiHandler) apiStatus(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, m.getStatus())
}

func (m *apiHandler) apiFeatures(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, m.getFeatures())
}

func (m *apiHandler) rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api/status", http.StatusMovedPermanently)
}

func (m *apiHandler) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(m.BasicAuth)
	r.HandleFunc("/api/status", m.apiStatus).Methods("GET")
	r.HandleFunc("/api/features", m.apiFeatures).Methods("GET")
	r.HandleFunc("/", m.rootHandler)
	return r
}

func startStatusService(rt runtimeConfig) {
	if !rt.settings.GetBool(sStatusEnabled) {
		return
	}
	rt.logger = &ThreadLogger{name: "Status"}
	wg.Add(1)
	go runStatusService(rt)
}

// runStatusService serves the read-only status API until quit
func runStatusService(rt runtimeConfig) {
	defer wg.Done()

	handler := newHandler(rt)
	addr := rt.settings.GetString(sStatusAddr)
	rt.logger.Printf("starting status service on %s", addr)
	rt.status.launch(handler, addr)

	<-rt.comms.quit
	rt.logger.Println("quit from status service")
	rt.status.stop()
}
