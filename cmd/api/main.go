package main

import (
	"fmt"
	"net/http"

	"github.com/paylinehq/payroll-engine-go/internal/config"
	appHTTP "github.com/paylinehq/payroll-engine-go/internal/handler/http"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/database"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/jwt"
	"github.com/paylinehq/payroll-engine-go/internal/repository/postgresql"
	attendanceService "github.com/paylinehq/payroll-engine-go/internal/service/attendance"
	compensationService "github.com/paylinehq/payroll-engine-go/internal/service/compensation"
	employeeService "github.com/paylinehq/payroll-engine-go/internal/service/employee"
	payPeriodService "github.com/paylinehq/payroll-engine-go/internal/service/payperiod"
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

	txManager := postgresql.NewTxManager(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	periodRepo := postgresql.NewPayPeriodRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, employeeRepo, periodRepo)
	ruleSvc := compensationService.NewRuleService(ruleRepo)
	payPeriodSvc := payPeriodService.NewPayPeriodService(txManager, periodRepo, employeeRepo, attendanceRepo, ruleRepo)

	payPeriodHandler := appHTTP.NewPayPeriodHandler(payPeriodSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	compensationHandler := appHTTP.NewCompensationHandler(ruleSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		payPeriodHandler,
		attendanceHandler,
		compensationHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
