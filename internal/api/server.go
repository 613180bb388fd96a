package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/guestlistapp/guestlist-api/docs"
	v1 "github.com/guestlistapp/guestlist-api/internal/api/handler/v1"
	"github.com/guestlistapp/guestlist-api/internal/api/middleware"
	"github.com/guestlistapp/guestlist-api/internal/config"
	"github.com/guestlistapp/guestlist-api/internal/repository"
	"github.com/guestlistapp/guestlist-api/internal/repository/dao"
	"github.com/guestlistapp/guestlist-api/internal/service"
	"github.com/guestlistapp/guestlist-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, bucket *storage.BucketClient) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	clubHandler := s.initClubHandler(db)
	eventHandler := s.initEventHandler(db)
	uploadHandler := s.initUploadHandler(bucket)
	s.MountHandlers(authHandler, clubHandler, eventHandler, uploadHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	userSvc := service.NewUserService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc, userSvc)

	return handler
}

func (s *Server) initClubHandler(db *gorm.DB) *v1.ClubHandler {
	clubDAO := dao.NewClubDAO(db)
	repo := repository.NewClubRepository(clubDAO)
	svc := service.NewClubService(repo)
	eventSvc := s.initEventService(db)
	handler := v1.NewClubHandler(svc, eventSvc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	svc := s.initEventService(db)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initEventService(db *gorm.DB) *service.EventService {
	eventDAO := dao.NewEventDAO(db)
	bookingDAO := dao.NewBookingDAO(db)
	repo := repository.NewEventRepository(eventDAO, bookingDAO)
	clubRepo := repository.NewClubRepository(dao.NewClubDAO(db))

	return service.NewEventService(repo, clubRepo)
}

func (s *Server) initUploadHandler(bucket *storage.BucketClient) *v1.UploadHandler {
	svc := service.NewUploadService(bucket)
	handler := v1.NewUploadHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, clubHandler *v1.ClubHandler, eventHandler *v1.EventHandler, uploadHandler *v1.UploadHandler) {
	const basePath = "/api/v1"

	authenticated := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/register", authHandler.HandleRegister)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.POST("/auth/phone-auth", authHandler.HandlePhoneAuth)
		public.GET("/auth/me", authenticated, authHandler.HandleGetMe)

		public.GET("/clubs", clubHandler.HandleGetClubs)
		public.GET("/clubs/:clubID", clubHandler.HandleGetClub)
		public.GET("/clubs/:clubID/events", clubHandler.HandleGetClubEvents)

		public.GET("/events", eventHandler.HandleGetEvents)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)
		public.POST("/events/:eventID/bookings", eventHandler.HandleCreateBooking)
	}

	admin := s.Router.Group(basePath, authenticated, middleware.RequireAdmin())
	{
		admin.POST("/clubs", clubHandler.HandleCreateClub)
		admin.PUT("/clubs/:clubID", clubHandler.HandleUpdateClub)
		admin.DELETE("/clubs/:clubID", clubHandler.HandleDeleteClub)
		admin.POST("/clubs/:clubID/credentials", clubHandler.HandleGenerateCredentials)

		admin.POST("/events", eventHandler.HandleCreateEvent)
		admin.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		admin.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		admin.GET("/events/:eventID/bookings", eventHandler.HandleGetBookings)

		admin.POST("/upload", uploadHandler.HandleUpload)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Guestlist API"
	docs.SwaggerInfo.Description = "Event-booking backend with clubs, events, guestlists and media uploads."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
