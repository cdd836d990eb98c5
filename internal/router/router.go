package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/colegios-api/internal/handler"
	"github.com/noah-isme/colegios-api/internal/middleware"
	"github.com/noah-isme/colegios-api/internal/service"
	"github.com/noah-isme/colegios-api/pkg/config"
	"github.com/noah-isme/colegios-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/colegios-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/colegios-api/pkg/middleware/requestid"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Departments    *handler.DepartmentHandler
	Municipalities *handler.MunicipalityHandler
	Schools        *handler.SchoolHandler
	Sites          *handler.SiteHandler
	Users          *handler.UserHandler
	Exports        *handler.ExportHandler
	System         *handler.SystemHandler
}

// Options configures the engine.
type Options struct {
	Env            string
	AllowedOrigins []string
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Handlers       Handlers
}

type crudHandler interface {
	List(*gin.Context)
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

// New builds the gin engine with middleware and the route table. JSON bodies
// carrying fields the resource does not define are rejected on every route.
func New(opts Options) *gin.Engine {
	binding.EnableDecoderDisallowUnknownFields = true
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics))

	h := opts.Handlers
	r.GET("/health", h.System.Health)
	if opts.Metrics != nil {
		r.GET("/metrics", h.System.Prometheus)
	}
	if opts.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.GET("/test", h.System.DatabaseCheck)

	mountCRUD(api.Group("/"+service.ResourceDepartments), h.Departments)
	mountCRUD(api.Group("/"+service.ResourceMunicipalities), h.Municipalities)
	mountCRUD(api.Group("/"+service.ResourceSchools), h.Schools)
	mountCRUD(api.Group("/"+service.ResourceSites), h.Sites)

	users := api.Group("/" + service.ResourceUsers)
	users.GET("/roles", h.Users.Roles)
	mountCRUD(users, h.Users)

	api.GET("/reportes/:resource", h.Exports.Export)

	return r
}

func mountCRUD(group *gin.RouterGroup, h crudHandler) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}
