package handlers

import (
	"log"
	"net/http"

	"github.com/saludml/salud-backend/internal/httperr"
	"github.com/saludml/salud-backend/internal/middleware"
	"github.com/saludml/salud-backend/internal/store"
)

// Historial returns the handler for an owner-scoped history listing in one
// domain. The caller only ever sees their own records; a user with no prior
// predictions gets an empty list, not an error.
func (a *App) Historial(domain store.Domain) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.UsernameFromContext(r.Context())
		if !ok {
			httperr.Write(w, httperr.E(httperr.Auth, "authentication required"))
			return
		}

		records, err := a.History.List(r.Context(), domain, username)
		if err != nil {
			log.Printf("historial %s: %v", domain, err)
			httperr.Write(w, httperr.Wrap(httperr.Persistence, "failed to load history", err))
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

// HistorialAdmin is the unfiltered listing across all users. It is an
// explicitly administrative capability: the caller must be authenticated and
// named in the admin allowlist, and the endpoint is disabled entirely when
// no admins are configured. ?domain=cardiaco selects the cardiac history;
// the default is diabetes.
func (a *App) HistorialAdmin(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		httperr.Write(w, httperr.E(httperr.Auth, "authentication required"))
		return
	}

	if len(a.Cfg.AdminUsernames) == 0 || !a.Cfg.IsAdmin(username) {
		httperr.Write(w, httperr.E(httperr.Forbidden, "administrative access required"))
		return
	}

	domain := store.DomainDiabetes
	switch r.URL.Query().Get("domain") {
	case "", string(store.DomainDiabetes):
	case string(store.DomainCardiaco):
		domain = store.DomainCardiaco
	default:
		httperr.Write(w, httperr.E(httperr.Validation, "unknown domain"))
		return
	}

	records, err := a.History.List(r.Context(), domain, "")
	if err != nil {
		log.Printf("historial admin %s: %v", domain, err)
		httperr.Write(w, httperr.Wrap(httperr.Persistence, "failed to load history", err))
		return
	}

	writeJSON(w, http.StatusOK, records)
}
