package bootstrap

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	app "github.com/agencyhub/lead-import/internal/application/lead"
	domain "github.com/agencyhub/lead-import/internal/domain/lead"
	"github.com/agencyhub/lead-import/internal/infrastructure/repository"
	httpecho "github.com/agencyhub/lead-import/internal/interfaces/http/echo"
)

func NewHTTPServer(db *gorm.DB, notifier domain.Notifier) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.Validator = httpecho.NewRequestValidator()

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("10M"))

	runRepo := repository.NewImportRunRepository(db)
	startImport := app.NewStartLeadImport(runRepo, notifier)
	importHandler := httpecho.NewImportHandler(startImport)
	getRun := app.NewGetImportRun(runRepo)
	runHandler := httpecho.NewRunHandler(getRun)
	leadQueryRepo := repository.NewLeadQueryRepository(db)
	getLead := app.NewGetLeadByUsername(leadQueryRepo)
	leadHandler := httpecho.NewLeadHandler(getLead)

	httpecho.RegisterRoutes(server, importHandler, runHandler, leadHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
