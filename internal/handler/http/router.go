package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paylinehq/payroll-engine-go/internal/handler/http/middleware"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	payPeriodHandler PayPeriodHandler,
	attendanceHandler AttendanceHandler,
	compensationHandler CompensationHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

			r.Route("/pay-periods", func(r chi.Router) {
				r.Get("/", payPeriodHandler.List)
				r.Post("/", payPeriodHandler.Create)

				r.Route("/{periodID}", func(r chi.Router) {
					r.Get("/", payPeriodHandler.GetSummary)
					r.Get("/validation", payPeriodHandler.Validate)
					r.Post("/enroll", payPeriodHandler.Enroll)
					r.Post("/recompute", payPeriodHandler.Recompute)
					r.Post("/close", payPeriodHandler.Close)
					r.Post("/reopen", payPeriodHandler.Reopen)
					r.Post("/mark-paid", payPeriodHandler.MarkPaid)

					r.Route("/lines/{employeeID}", func(r chi.Router) {
						r.Get("/", payPeriodHandler.GetLine)
						r.Post("/manual-lines", payPeriodHandler.AddManualLine)
					})
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/records", attendanceHandler.Record)
				r.Get("/records/{employeeID}", attendanceHandler.ListRecords)

				r.Route("/types", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListTypes)
					r.Post("/", attendanceHandler.CreateType)
					r.Put("/{typeID}", attendanceHandler.UpdateType)
				})
			})

			r.Route("/compensation-rules", func(r chi.Router) {
				r.Get("/", compensationHandler.List)
				r.Post("/", compensationHandler.Create)
				r.Get("/{ruleID}", compensationHandler.Get)
				r.Put("/{ruleID}", compensationHandler.Update)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListActive)

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Get("/wage-history", employeeHandler.GetWageHistory)
					r.Post("/wage-history", employeeHandler.ChangeWage)
					r.Post("/wage-history/revert", employeeHandler.RevertWage)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
