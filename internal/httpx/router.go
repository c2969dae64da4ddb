package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brandpulse/influence-api/internal/models"
	"github.com/brandpulse/influence-api/internal/service"
	"github.com/brandpulse/influence-api/internal/utils"
)

func NewRouter(log *slog.Logger, svc *service.Service) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.Metrics)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"message": "Unified Brand Influence Query API is running.",
		})
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/api/influencer/query", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("unhandled panic in query handler",
					slog.Any("panic", rec),
					slog.String("rid", utils.RID(r.Context())),
					slog.String("stack", string(debug.Stack())))
				writeJSON(w, http.StatusInternalServerError, errorBody("An internal server error occurred."))
			}
		}()

		var req models.QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("received request with invalid or missing JSON payload")
			writeJSON(w, http.StatusBadRequest, errorBody("Invalid JSON payload"))
			return
		}

		log.Info("routing query", slog.String("source", req.Source), slog.String("rid", utils.RID(r.Context())))

		var (
			res any
			err error
		)
		switch req.Source {
		case "dashboard":
			res, err = svc.Dashboard(r.Context(), req)
		case "influencer_analytics":
			res, err = svc.Analytics(r.Context(), req)
		default:
			log.Warn("invalid source", slog.String("source", req.Source))
			writeJSON(w, http.StatusBadRequest, errorBody("Invalid 'source'. Must be 'dashboard' or 'influencer_analytics'."))
			return
		}
		if err != nil {
			// Service errors are already logged at their origin.
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, res)
	})

	return mux
}

func errorBody(msg string) map[string]string { return map[string]string{"error": msg} }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
