package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sghrms/payroll-backend-go/internal/handler/http/middleware"
	"github.com/sghrms/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	overtimeHandler OvertimeHandler,
	payrollHandler PayrollHandler,
	compensationHandler CompensationHandler,
	statutoryHandler StatutoryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", employeeHandler.ListActive)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", employeeHandler.Create)
					r.Post("/{id}/deactivate", employeeHandler.Deactivate)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", overtimeHandler.ListTypes)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", overtimeHandler.CreateType)
						r.Put("/{id}", overtimeHandler.UpdateType)
						r.Delete("/{id}", overtimeHandler.DeactivateType)
					})
				})

				r.Route("/claims", func(r chi.Router) {
					r.Post("/", overtimeHandler.CreateClaim)
					r.Get("/", overtimeHandler.ListClaims)
					r.Get("/{id}", overtimeHandler.GetClaim)
				})

				r.Route("/approvals", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", overtimeHandler.ListPendingApprovals)
					r.Post("/{id}/decide", overtimeHandler.DecideApproval)
				})

				r.Route("/summaries", func(r chi.Router) {
					r.Get("/{employeeID}", overtimeHandler.ListDailySummaries)
					r.Get("/{employeeID}/{date}", overtimeHandler.GetDailySummary)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/generate", payrollHandler.Generate)
					r.Post("/generate-batch", payrollHandler.GenerateBatch)
					r.Post("/{id}/approve", payrollHandler.Approve)
					r.Post("/{id}/finalize", payrollHandler.Finalize)
				})
			})

			r.Route("/compensation", func(r chi.Router) {
				r.Get("/{employeeID}", compensationHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/", compensationHandler.Upsert)
				})
			})

			r.Route("/statutory", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/config", statutoryHandler.GetConfig)
				r.Post("/config/reload", statutoryHandler.Reload)
			})
		})
	})
	return r
}
