package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/incevents/incevents-api/docs"
	v1 "github.com/incevents/incevents-api/internal/api/handler/v1"
	"github.com/incevents/incevents-api/internal/api/middleware"
	"github.com/incevents/incevents-api/internal/config"
	"github.com/incevents/incevents-api/internal/repository"
	"github.com/incevents/incevents-api/internal/repository/dao"
	"github.com/incevents/incevents-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, blobStore service.BlobStore) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	eventHandler := s.initEventHandler(db, blobStore)
	reportHandler := s.initReportHandler(db, blobStore)
	healthHandler := v1.NewHealthHandler(db)
	s.MountHandlers(authHandler, eventHandler, reportHandler, healthHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db), dao.NewUserVisitDAO(db))
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB, blobStore service.BlobStore) *v1.EventHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db), dao.NewEventUpdateDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db), dao.NewUserVisitDAO(db))
	trackingRepo := repository.NewTrackingRepository(dao.NewEventUpdateDAO(db), dao.NewEventViewDAO(db))

	mediaSvc := service.NewMediaService(blobStore, s.Config.Upload.MaxFileSize)
	catalogSvc := service.NewCatalogService(eventRepo, userRepo, mediaSvc)
	updateSvc := service.NewUpdateService(trackingRepo, mediaSvc)
	uSvc := service.NewAuthService(userRepo)
	handler := v1.NewEventHandler(catalogSvc, updateSvc, uSvc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB, blobStore service.BlobStore) *v1.ReportHandler {
	reportRepo := repository.NewReportRepository(dao.NewReportDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db), dao.NewEventUpdateDAO(db))
	trackingRepo := repository.NewTrackingRepository(dao.NewEventUpdateDAO(db), dao.NewEventViewDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db), dao.NewUserVisitDAO(db))

	mediaSvc := service.NewMediaService(blobStore, s.Config.Upload.MaxFileSize)
	reportSvc := service.NewReportService(reportRepo, eventRepo)
	updateSvc := service.NewUpdateService(trackingRepo, mediaSvc)
	uSvc := service.NewAuthService(userRepo)
	handler := v1.NewReportHandler(reportSvc, updateSvc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, eventHandler *v1.EventHandler, reportHandler *v1.ReportHandler, healthHandler *v1.HealthHandler) {
	const basePath = "/api"

	public := s.Router.Group(basePath)
	{
		public.POST("/login", authHandler.HandleLogin)
		public.GET("/user_visits/:user_id", authHandler.HandleGetUserVisits)
		public.GET("/events", eventHandler.HandleListEvents)
		public.POST("/event_view", eventHandler.HandleRecordView)
		public.POST("/event_update", eventHandler.HandleSubmitUpdate)
		public.GET("/event_user_details/:event_id/:user_id", reportHandler.HandleGetEventUserDetails)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.POST("/event_add", eventHandler.HandleCreateEvent)
		admin.GET("/event_report/:event_id", reportHandler.HandleGetEventReport)
	}

	s.Router.GET("/health", healthHandler.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "incevents API"
	docs.SwaggerInfo.Description = "Event-management backend: PIN login, event catalog, member updates and participation reports."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
