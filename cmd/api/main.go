package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"

	"github.com/salonhq/salon-backend-go/internal/config"
	appHTTP "github.com/salonhq/salon-backend-go/internal/handler/http"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
	"github.com/salonhq/salon-backend-go/internal/pkg/jwt"
	"github.com/salonhq/salon-backend-go/internal/repository/postgresql"
	commissionService "github.com/salonhq/salon-backend-go/internal/service/commission"
	leaveService "github.com/salonhq/salon-backend-go/internal/service/leave"
	payrollService "github.com/salonhq/salon-backend-go/internal/service/payroll"
	staffingService "github.com/salonhq/salon-backend-go/internal/service/staffing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salon-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	profileRepo := postgresql.NewProfileRepository(db)
	salaryRepo := postgresql.NewSalaryComponentRepository(db)
	exitRepo := postgresql.NewExitRecordRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	structureRepo := postgresql.NewCommissionStructureRepository(db)
	assignmentRepo := postgresql.NewCommissionAssignmentRepository(db)
	earningRepo := postgresql.NewCommissionEarningRepository(db)
	cycleRepo := postgresql.NewPayrollCycleRepository(db)
	entryRepo := postgresql.NewPayrollEntryRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	staffingSvc := staffingService.NewStaffingService(db, profileRepo, salaryRepo, exitRepo, earningRepo, leaveBalanceRepo, leaveTypeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveBalanceRepo, leaveRequestRepo)
	commissionSvc := commissionService.NewCommissionService(db, structureRepo, assignmentRepo, earningRepo)
	payrollSvc := payrollService.NewPayrollService(db, logger, cycleRepo, entryRepo, profileRepo, salaryRepo, earningRepo, leaveRequestRepo)

	staffingHandler := appHTTP.NewStaffingHandler(staffingSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	commissionHandler := appHTTP.NewCommissionHandler(commissionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		logger,
		JWTService,
		staffingHandler,
		leaveHandler,
		commissionHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
