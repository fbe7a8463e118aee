package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/salonhq/salon-backend-go/internal/handler/http/middleware"
	"github.com/salonhq/salon-backend-go/internal/pkg/jwt"
)

func NewRouter(
	logger *slog.Logger,
	JWTService jwt.Service,
	staffingHandler StaffingHandler,
	leaveHandler LeaveHandler,
	commissionHandler CommissionHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employment-profiles", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Post("/", staffingHandler.CreateProfile)
					r.Put("/{id}", staffingHandler.UpdateProfile)
				})
			})

			r.Route("/staff/{staffID}", func(r chi.Router) {
				r.Get("/employment-profile", staffingHandler.GetProfile)
				r.Get("/salary", staffingHandler.GetSalary)
				r.Get("/salary/history", staffingHandler.SalaryHistory)
				r.Get("/exit", staffingHandler.GetExitRecord)
				r.Get("/leave-balances", leaveHandler.ListBalances)
				r.Get("/commission-earnings", commissionHandler.ListEarnings)

				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Put("/salary", staffingHandler.ReplaceSalary)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.OwnerOnly)
				r.Post("/exits", staffingHandler.RecordExit)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)

					r.Group(func(r chi.Router) {
						r.Use(middleware.OwnerOnly)
						r.Post("/", leaveHandler.CreateType)
						r.Put("/{id}", leaveHandler.UpdateType)
					})
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Post("/balances", leaveHandler.AllocateBalance)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.CreateRequest)
					r.Post("/{id}/cancel", leaveHandler.CancelRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.OwnerOnly)
						r.Get("/", leaveHandler.ListRequests)
						r.Post("/{id}/approve", leaveHandler.ApproveRequest)
						r.Post("/{id}/reject", leaveHandler.RejectRequest)
					})
				})
			})

			r.Route("/commission-structures", func(r chi.Router) {
				r.Get("/", commissionHandler.ListStructures)
				r.Get("/{id}", commissionHandler.GetStructure)

				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Post("/", commissionHandler.CreateStructure)
					r.Delete("/{id}", commissionHandler.DeleteStructure)
					r.Post("/{id}/deactivate", commissionHandler.DeactivateStructure)
					r.Post("/{id}/assignments", commissionHandler.AssignStaff)
					r.Delete("/{id}/assignments/{staffID}", commissionHandler.UnassignStaff)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.OwnerOnly)
				r.Post("/commission-earnings", commissionHandler.RecordSale)
			})

			r.Route("/payroll/cycles", func(r chi.Router) {
				r.Use(middleware.OwnerOnly)
				r.Post("/", payrollHandler.CreateCycle)
				r.Get("/", payrollHandler.ListCycles)
				r.Get("/{id}", payrollHandler.GetCycle)
				r.Get("/{id}/entries", payrollHandler.ListEntries)
				r.Post("/{id}/process", payrollHandler.ProcessCycle)
				r.Post("/{id}/approve", payrollHandler.ApproveCycle)
				r.Post("/{id}/pay", payrollHandler.MarkCyclePaid)
			})
		})
	})

	return r
}
