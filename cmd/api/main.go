package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sghrms/payroll-backend-go/internal/config"
	"github.com/sghrms/payroll-backend-go/internal/fixtures"
	appHTTP "github.com/sghrms/payroll-backend-go/internal/handler/http"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
	"github.com/sghrms/payroll-backend-go/internal/pkg/jwt"
	"github.com/sghrms/payroll-backend-go/internal/repository/postgresql"
	compensationService "github.com/sghrms/payroll-backend-go/internal/service/compensation"
	employeeService "github.com/sghrms/payroll-backend-go/internal/service/employee"
	overtimeService "github.com/sghrms/payroll-backend-go/internal/service/overtime"
	payrollService "github.com/sghrms/payroll-backend-go/internal/service/payroll"
	"github.com/sghrms/payroll-backend-go/internal/statutory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	otTypeRepo := postgresql.NewOTTypeRepository(db)
	otClaimRepo := postgresql.NewOTClaimRepository(db)
	otApprovalRepo := postgresql.NewOTApprovalRepository(db)
	otSummaryRepo := postgresql.NewOTSummaryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	statutoryStore, err := statutory.NewStore(fixtures.DefaultRateTable(), fixtures.CeilingsFromConfig(cfg.Statutory))
	if err != nil {
		log.Fatal("Failed to initialize statutory store:", err)
	}

	empService := employeeService.NewService(employeeRepo)
	typeService := overtimeService.NewTypeService(otTypeRepo)
	claimService := overtimeService.NewClaimService(
		db, otClaimRepo, otApprovalRepo, otTypeRepo, employeeRepo, compensationRepo,
		cfg.Payroll.WorkingHoursPerMonth,
	)
	summaryService := overtimeService.NewSummaryService(db, otSummaryRepo, otClaimRepo)
	approvalService := overtimeService.NewApprovalService(db, otApprovalRepo, otClaimRepo, summaryService)
	compService := compensationService.NewService(compensationRepo, employeeRepo)
	payrollSvc := payrollService.NewService(
		db, payrollRepo, employeeRepo, compensationRepo, attendanceRepo, leaveRepo,
		otSummaryRepo, statutoryStore,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	overtimeHandler := appHTTP.NewOvertimeHandler(typeService, claimService, approvalService, summaryService)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	compensationHandler := appHTTP.NewCompensationHandler(compService)
	statutoryHandler := appHTTP.NewStatutoryHandler(statutoryStore)

	r := appHTTP.NewRouter(jwtService, employeeHandler, overtimeHandler, payrollHandler, compensationHandler, statutoryHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
