package router

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/colegios-api/internal/handler"
	"github.com/noah-isme/colegios-api/internal/repository"
	"github.com/noah-isme/colegios-api/internal/service"
)

// Dependencies are the shared resources the handlers are built from.
type Dependencies struct {
	DB      *sqlx.DB
	Cache   *service.CacheService
	Metrics *service.MetricsService
	Logger  *zap.Logger
}

// NewHandlers assembles repositories, services and handlers over a single pool.
func NewHandlers(deps Dependencies) Handlers {
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}
	var observer repository.QueryObserver
	if deps.Metrics != nil {
		observer = deps.Metrics
	}
	validate := service.NewValidator()

	departments := service.NewDepartmentService(repository.NewDepartmentRepository(deps.DB, observer), validate, deps.Cache, logr)
	municipalities := service.NewMunicipalityService(repository.NewMunicipalityRepository(deps.DB, observer), validate, deps.Cache, logr)
	schools := service.NewSchoolService(repository.NewSchoolRepository(deps.DB, observer), validate, deps.Cache, logr)
	sites := service.NewSiteService(repository.NewSiteRepository(deps.DB, observer), validate, deps.Cache, logr)
	users := service.NewUserService(repository.NewUserRepository(deps.DB, observer), validate, deps.Cache, logr)
	health := service.NewHealthService(repository.NewHealthRepository(deps.DB, observer), logr)
	exports := service.NewExportService(service.ExportSources{
		Departments:    departments,
		Municipalities: municipalities,
		Schools:        schools,
		Sites:          sites,
		Users:          users,
	}, logr, nil, nil, nil)

	return Handlers{
		Departments:    handler.NewDepartmentHandler(departments),
		Municipalities: handler.NewMunicipalityHandler(municipalities),
		Schools:        handler.NewSchoolHandler(schools),
		Sites:          handler.NewSiteHandler(sites),
		Users:          handler.NewUserHandler(users),
		Exports:        handler.NewExportHandler(exports),
		System:         handler.NewSystemHandler(health, deps.Metrics),
	}
}
