package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/saludml/salud-backend/internal/handlers"
	"github.com/saludml/salud-backend/internal/middleware"
	"github.com/saludml/salud-backend/internal/store"
)

// SetupRoutes mounts the API. Authorization policy is expressed per route
// group: auth endpoints are public, history is always bearer-protected, and
// the predict endpoints follow the RequireAuthForPredictions flag.
func SetupRoutes(r chi.Router, app *handlers.App) {
	requireAuth := middleware.RequireAuth(app.Tokens)

	// Auth
	r.Post("/register", app.Register)
	r.Post("/login", app.Login)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/usuarios/me", app.Me)
	})

	// Predictions
	r.Group(func(r chi.Router) {
		if app.Cfg.RequireAuthForPredictions {
			r.Use(requireAuth)
		}
		r.Post("/predict-diabetes", app.Predict(store.DomainDiabetes))
		r.Post("/predict-cardiaco", app.Predict(store.DomainCardiaco))
	})

	// History (always owner-scoped except the admin listing)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/historial-diabetes", app.Historial(store.DomainDiabetes))
		r.Get("/historial-cardiaco", app.Historial(store.DomainCardiaco))
		r.Get("/historial-usuario", app.Historial(store.DomainDiabetes))
		r.Get("/historial", app.HistorialAdmin)
	})
}
