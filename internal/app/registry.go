package app

import (
	"database/sql"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-folha/internal/account"
	"go-folha/internal/company"
	"go-folha/internal/costcenter"
	"go-folha/internal/employee"
	"go-folha/internal/messaging/kafka"
	"go-folha/internal/middleware"
	"go-folha/internal/position"
	"go-folha/internal/rbac"
	"go-folha/internal/rbac/infra"
	"go-folha/internal/taxrate"
	"go-folha/internal/thirteenth"
	"go-folha/internal/union"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	accountRepo := account.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	costCenterRepo := costcenter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	positionRepo := position.NewRepository(gormDB)
	taxRateRepo := taxrate.NewRepository(gormDB)
	thirteenthRepo := thirteenth.NewRepository(gormDB)
	unionRepo := union.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	accountService := account.NewService(db, accountRepo)
	companyService := company.NewService(db, companyRepo)
	costCenterService := costcenter.NewService(db, costCenterRepo)
	employeeService := employee.NewService(db, employeeRepo)
	positionService := position.NewService(db, positionRepo)
	taxRateService := taxrate.NewService(db, taxRateRepo)
	thirteenthService := thirteenth.NewService(db, thirteenthRepo, taxRateService, outboxRepo, logger)
	unionService := union.NewService(db, unionRepo)

	// --- Handlers ---
	accountHandler := account.NewHandler(accountService)
	companyHandler := company.NewHandler(companyService)
	costCenterHandler := costcenter.NewHandler(costCenterService)
	employeeHandler := employee.NewHandler(employeeService)
	positionHandler := position.NewHandler(positionService)
	taxRateHandler := taxrate.NewHandler(taxRateService)
	thirteenthHandler := thirteenth.NewHandler(thirteenthService)
	unionHandler := union.NewHandler(unionService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		account.RegisterRoutes(api, accountHandler, rbacService)
		company.RegisterRoutes(api, companyHandler, rbacService)
		costcenter.RegisterRoutes(api, costCenterHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		position.RegisterRoutes(api, positionHandler, rbacService)
		taxrate.RegisterRoutes(api, taxRateHandler, rbacService)
		thirteenth.RegisterRoutes(api, thirteenthHandler, rbacService, rdb)
		union.RegisterRoutes(api, unionHandler, rbacService)
	}

	return nil
}
