package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/saludml/salud-backend/internal/auth"
	"github.com/saludml/salud-backend/internal/config"
	"github.com/saludml/salud-backend/internal/model"
	"github.com/saludml/salud-backend/internal/store"
)

// App holds everything the handlers need: configuration, stores, the loaded
// model artifacts and the token manager. It is built once at startup and
// shared read-only across requests.
type App struct {
	Cfg     *config.Config
	Users   store.UserStore
	History store.HistoryStore
	Models  map[store.Domain]*model.Model
	Tokens  *auth.TokenManager
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
