package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/sshraki/Attendance/internal/config"
	appHTTP "github.com/sshraki/Attendance/internal/handler/http"
	"github.com/sshraki/Attendance/internal/pkg/clock"
	"github.com/sshraki/Attendance/internal/pkg/cron"
	"github.com/sshraki/Attendance/internal/pkg/database"
	"github.com/sshraki/Attendance/internal/pkg/jwt"
	"github.com/sshraki/Attendance/internal/repository/postgresql"
	approvalService "github.com/sshraki/Attendance/internal/service/approval"
	attendanceService "github.com/sshraki/Attendance/internal/service/attendance"
	authService "github.com/sshraki/Attendance/internal/service/auth"
	dashboardService "github.com/sshraki/Attendance/internal/service/dashboard"
	employeeService "github.com/sshraki/Attendance/internal/service/employee"
	reportService "github.com/sshraki/Attendance/internal/service/report"
	settingsService "github.com/sshraki/Attendance/internal/service/settings"
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
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	approvalRepo := postgresql.NewApprovalRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	clk := clock.New()
	runTx := postgresql.NewTxRunner(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, settingsSvc, clk, runTx)
	approvalSvc := approvalService.NewApprovalService(approvalRepo, employeeRepo, clk)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, JWTService, cfg.Admin)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, clk)
	reportSvc := reportService.NewReportService(reportRepo)

	if err := authSvc.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Fatal("Failed to seed admin account: ", err)
	}

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	approvalHandler := appHTTP.NewApprovalHandler(approvalSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, clk).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		authHandler,
		attendanceHandler,
		approvalHandler,
		settingsHandler,
		employeeHandler,
		dashboardHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
