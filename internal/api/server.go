package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/shwenadi/goldshop-api/docs"
	v1 "github.com/shwenadi/goldshop-api/internal/api/handler/v1"
	"github.com/shwenadi/goldshop-api/internal/api/middleware"
	"github.com/shwenadi/goldshop-api/internal/cache"
	"github.com/shwenadi/goldshop-api/internal/config"
	"github.com/shwenadi/goldshop-api/internal/imagestore"
	"github.com/shwenadi/goldshop-api/internal/repository"
	"github.com/shwenadi/goldshop-api/internal/repository/dao"
	"github.com/shwenadi/goldshop-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, cacheStore cache.Store, images imagestore.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	catalogHandler := s.initCatalogHandler(db, images)
	invoiceHandler := s.initInvoiceHandler(db, cacheStore)
	rateHandler := s.initRateHandler(db)
	settingsHandler := s.initSettingsHandler(db, cacheStore)
	imageHandler := v1.NewImageHandler(images)
	s.MountHandlers(authHandler, catalogHandler, invoiceHandler, rateHandler, settingsHandler, imageHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API.JWTSigningKey, svc)

	return handler
}

func (s *Server) initCatalogHandler(db *gorm.DB, images imagestore.Store) *v1.CatalogHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewCatalogService(repo, images)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) initInvoiceHandler(db *gorm.DB, cacheStore cache.Store) *v1.InvoiceHandler {
	invoiceDAO := dao.NewInvoiceDAO(db)
	repo := repository.NewInvoiceRepository(invoiceDAO)
	svc := service.NewInvoiceService(repo, cacheStore)
	handler := v1.NewInvoiceHandler(svc)

	return handler
}

func (s *Server) initRateHandler(db *gorm.DB) *v1.RateHandler {
	rateDAO := dao.NewMarketRateDAO(db)
	repo := repository.NewMarketRateRepository(rateDAO)
	svc := service.NewRateService(repo)
	handler := v1.NewRateHandler(svc)

	return handler
}

func (s *Server) initSettingsHandler(db *gorm.DB, cacheStore cache.Store) *v1.SettingsHandler {
	settingsDAO := dao.NewSettingsDAO(db)
	repo := repository.NewSettingsRepository(settingsDAO)
	svc := service.NewSettingsService(repo, cacheStore)
	handler := v1.NewSettingsHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	catalogHandler *v1.CatalogHandler,
	invoiceHandler *v1.InvoiceHandler,
	rateHandler *v1.RateHandler,
	settingsHandler *v1.SettingsHandler,
	imageHandler *v1.ImageHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/auth/me", authHandler.HandleGetMe)

		authed.GET("/items", catalogHandler.HandleListItems)
		authed.GET("/items/search", catalogHandler.HandleSearchItems)
		authed.GET("/items/:itemID", catalogHandler.HandleGetItem)
		authed.POST("/items", catalogHandler.HandleCreateItem)
		authed.PUT("/items/:itemID", catalogHandler.HandleUpdateItem)
		authed.PUT("/items/:itemID/stock", catalogHandler.HandleSetStock)
		authed.DELETE("/items/:itemID", catalogHandler.HandleDeleteItem)

		authed.GET("/invoices", invoiceHandler.HandleGetInvoices)
		authed.GET("/invoices/:invoiceID", invoiceHandler.HandleGetInvoiceByID)
		authed.GET("/invoices/number/:invoiceNumber", invoiceHandler.HandleGetInvoiceByNumber)
		authed.POST("/invoices", invoiceHandler.HandleCreateInvoice)

		authed.GET("/dashboard/monthly-sales", invoiceHandler.HandleGetMonthlySales)

		authed.GET("/rates", rateHandler.HandleListRates)
		authed.POST("/rates", rateHandler.HandleAppendRate)

		authed.GET("/settings/categories", settingsHandler.HandleListCategories)
		authed.POST("/settings/categories", settingsHandler.HandleCreateCategory)
		authed.PUT("/settings/categories/:categoryID", settingsHandler.HandleUpdateCategory)
		authed.DELETE("/settings/categories/:categoryID", settingsHandler.HandleDeleteCategory)

		authed.GET("/settings/materials", settingsHandler.HandleListMaterials)
		authed.POST("/settings/materials", settingsHandler.HandleCreateMaterial)
		authed.PUT("/settings/materials/:materialID", settingsHandler.HandleUpdateMaterial)
		authed.DELETE("/settings/materials/:materialID", settingsHandler.HandleDeleteMaterial)
	}

	// Item photos are public so image tags can load them without a token.
	s.Router.GET("/images/*key", imageHandler.HandleGetImage)

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Goldshop Admin API"
	docs.SwaggerInfo.Description = "Back office API for a jewelry retail store."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
