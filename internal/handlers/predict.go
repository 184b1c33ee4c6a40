package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/saludml/salud-backend/internal/httperr"
	"github.com/saludml/salud-backend/internal/middleware"
	"github.com/saludml/salud-backend/internal/model"
	"github.com/saludml/salud-backend/internal/models"
	"github.com/saludml/salud-backend/internal/store"
)

type DiabetesPredictionResponse struct {
	Probabilidad float64 `json:"probabilidad_diabetes"`
	Resultado    string  `json:"resultado"`
}

type CardiacoPredictionResponse struct {
	Probabilidad float64 `json:"probabilidad_cardiaco"`
}

// Predict returns the handler for one prediction domain. Both domains share
// the same pipeline: validate → score → persist → respond, short-circuiting
// to an error response at the first failing stage.
func (a *App) Predict(domain store.Domain) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := a.Models[domain]
		if !ok {
			httperr.Write(w, httperr.E(httperr.Internal, "model not loaded"))
			return
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			httperr.Write(w, httperr.E(httperr.Validation, "invalid request body"))
			return
		}

		vec, err := m.Vector(payload)
		if err != nil {
			if errors.Is(err, model.ErrMissingField) || errors.Is(err, model.ErrWrongType) {
				httperr.Write(w, httperr.E(httperr.Validation, err.Error()))
			} else {
				httperr.Write(w, httperr.E(httperr.Scoring, err.Error()))
			}
			return
		}

		probability := m.Score(vec)

		features := make(map[string]float64, len(vec))
		for i, spec := range m.Features() {
			features[spec.Name] = vec[i]
		}

		// Username is present whenever the route required auth; with auth
		// disabled by configuration the record is stored anonymously.
		username, _ := middleware.UsernameFromContext(r.Context())

		record := models.PredictionRecord{
			Username:    username,
			Features:    features,
			Probability: probability,
			Timestamp:   time.Now().UTC(),
		}
		if domain == store.DomainDiabetes {
			record.Resultado = m.Label(probability)
		}

		if _, err := a.History.Append(r.Context(), domain, record); err != nil {
			// Partial failure: the prediction itself succeeded. Surface it
			// distinctly instead of conflating it with a validation error.
			log.Printf("predict %s: history write failed: %v", domain, err)
			httperr.Write(w, httperr.Wrap(httperr.Persistence,
				fmt.Sprintf("prediction succeeded (probabilidad %.4f) but saving history failed", probability),
				err))
			return
		}

		switch domain {
		case store.DomainDiabetes:
			writeJSON(w, http.StatusOK, DiabetesPredictionResponse{
				Probabilidad: probability,
				Resultado:    record.Resultado,
			})
		case store.DomainCardiaco:
			writeJSON(w, http.StatusOK, CardiacoPredictionResponse{
				Probabilidad: probability,
			})
		}
	}
}
