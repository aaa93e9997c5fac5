package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-insights-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-insights-go/internal/repository/postgresql"
	reportService "github.com/cmlabs-hris/attendance-insights-go/internal/service/report"
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

	punchRecordRepo := postgresql.NewPunchRecordRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	reports := reportService.NewReportService(
		db,
		punchRecordRepo,
		leaveRequestRepo,
		cfg.Report,
		cfg.App.Timezone,
	)

	reportHandler := appHTTP.NewReportHandler(reports)

	router := appHTTP.NewRouter(JWTService, reportHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
