package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Organizations *OrganizationHandler
	Campaigns     *CampaignHandler
	Channels      *ChannelHandler
	Content       *ContentHandler
	Metrics       *MetricsHandler
	Benchmarks    *BenchmarkHandler
	Analysis      *AnalysisHandler
	Chat          *ChatHandler
}

// NewRouter builds the chi router with every API route.
func NewRouter(h Handlers) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":     "ok",
			"service":    "marketing-intel",
			"ai_enabled": h.Chat.Service.Configured(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/organizations", func(r chi.Router) {
			r.Post("/", h.Organizations.Create)
			r.Get("/", h.Organizations.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Organizations.Get)
				r.Put("/", h.Organizations.Update)
				r.Delete("/", h.Organizations.Delete)

				r.Get("/campaigns", h.Campaigns.ListByOrganization)
				r.Post("/campaigns", h.Campaigns.Create)

				r.Get("/channels", h.Channels.ListByOrganization)
				r.Post("/channels", h.Channels.Create)
				r.Post("/channels/analyze", h.Channels.Analyze)

				r.Get("/content", h.Content.ListByOrganization)
				r.Post("/content", h.Content.Create)
				r.Post("/content/analyze", h.Content.Analyze)

				r.Post("/funnel/analyze", h.Analysis.AnalyzeFunnel)
				r.Post("/funnel/simulate", h.Analysis.SimulateFunnel)
				r.Post("/roi/analyze", h.Analysis.AnalyzeROI)

				r.Get("/metrics", h.Metrics.List)
				r.Post("/metrics", h.Metrics.Create)
				r.Get("/metrics/latest", h.Metrics.Latest)

				r.Post("/benchmark", h.Benchmarks.Run)
				r.Get("/benchmark/latest", h.Benchmarks.Latest)

				r.Get("/alerts", h.Analysis.Alerts)
				r.Get("/report.csv", h.Analysis.ReportCSV)
			})
		})

		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.Campaigns.Get)
			r.Put("/", h.Campaigns.Update)
			r.Delete("/", h.Campaigns.Delete)
			r.Post("/score", h.Campaigns.Score)
		})

		r.Put("/channels/{id}", h.Channels.Update)

		r.Route("/chat", func(r chi.Router) {
			r.Get("/modes", h.Chat.Modes)
			r.Get("/prompts/{mode}", h.Chat.Prompts)
			r.Post("/suggestions", h.Chat.Suggestions)

			r.Get("/sessions", h.Chat.ListSessions)
			r.Post("/sessions", h.Chat.CreateSession)
			r.Get("/sessions/{id}", h.Chat.GetSession)
			r.Delete("/sessions/{id}", h.Chat.DeleteSession)
			r.Post("/sessions/{id}/messages", h.Chat.SendMessage)
			r.Post("/sessions/{id}/stream", h.Chat.StreamMessage)
		})
	})

	return r
}
