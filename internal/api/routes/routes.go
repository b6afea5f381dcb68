package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/banit/househunt-backend/internal/api/handlers"
	"github.com/banit/househunt-backend/internal/api/middleware"
	"github.com/banit/househunt-backend/internal/cache"
	"github.com/banit/househunt-backend/internal/config"
	"github.com/banit/househunt-backend/internal/repository"
	"github.com/banit/househunt-backend/internal/services"
	"github.com/banit/househunt-backend/pkg/logger"
)

// Dependencies are the external collaborators the services talk to.
type Dependencies struct {
	KV       cache.KVStore
	Mailer   services.Mailer
	Images   services.ImageStore
	Geocoder services.Geocoder
}

type Services struct {
	Auth     *services.AuthService
	Houses   *services.HouseService
	Managers *services.ManagerService
	Users    *services.UserService
}

func NewServices(db *gorm.DB, cfg *config.Config, deps Dependencies) *Services {
	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	rankCache := services.NewRankingCache(deps.KV, cfg.RankCacheTTL)

	return &Services{
		Auth: services.NewAuthService(userRepo, deps.Geocoder, cfg),
		Houses: services.NewHouseService(
			houseRepo,
			repository.NewReviewRepository(db),
			repository.NewFavoriteRepository(db),
			rankCache,
			cfg.NearbyDefaultRadiusKm,
		),
		Managers: services.NewManagerService(repository.NewManagerRepository(db), houseRepo, rankCache, deps.Mailer),
		Users:    services.NewUserService(userRepo, repository.NewNotificationRepository(db), deps.Geocoder, deps.Images),
	}
}

func SetupRoutes(router *gin.Engine, svc *Services, cfg *config.Config) {
	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	router.Use(middleware.RateLimitMiddleware(cfg))

	authHandler := handlers.NewAuthHandler(svc.Auth)
	houseHandler := handlers.NewHouseHandler(svc.Houses, cfg.NearbyDefaultRadiusKm)
	reviewHandler := handlers.NewReviewHandler(svc.Houses)
	managerHandler := handlers.NewManagerHandler(svc.Managers)
	userHandler := handlers.NewUserHandler(svc.Users)

	authRequired := middleware.AuthMiddleware(svc.Auth)
	userRequired := middleware.RequireUser()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authRequired, userRequired, authHandler.Logout)
		auth.GET("/profile", authRequired, userRequired, authHandler.GetProfile)
	}

	house := api.Group("/house", authRequired)
	{
		house.GET("/all", houseHandler.GetAllHouses)
		house.GET("/my", houseHandler.GetMyHouses)
		house.GET("/search", houseHandler.SearchHouses)
		house.GET("/nearby", houseHandler.GetNearbyBuildings)
		house.GET("/location", houseHandler.SearchByLocation)
		house.GET("/:id", houseHandler.GetHouse)
		house.GET("/:id/rating", reviewHandler.GetHouseRating)
		house.GET("/:id/reviews", reviewHandler.GetHouseReviews)
		house.POST("/save/view", houseHandler.SaveView)

		house.GET("/favorites", userRequired, houseHandler.GetFavorites)
		house.POST("/add/favorite", userRequired, houseHandler.AddFavorite)
		house.DELETE("/delete/favorite/:id", userRequired, houseHandler.DeleteFavorite)
		house.POST("/save/review", userRequired, reviewHandler.SaveReview)
	}

	manager := api.Group("/manager", authRequired)
	{
		manager.GET("/all", managerHandler.GetAllManagers)
		manager.GET("/rank", managerHandler.GetRankedManagers)
		manager.POST("/enquiry", userRequired, managerHandler.SendEnquiry)
		manager.POST("/complaint", userRequired, managerHandler.SendComplaint)
	}

	user := api.Group("/user", authRequired, userRequired)
	{
		user.PUT("/profile", userHandler.UpdateProfile)
		user.PUT("/location", userHandler.UpdateLocation)
		user.PUT("/preferences", userHandler.UpdatePreferences)
		user.PUT("/password", userHandler.ChangePassword)
		user.POST("/profile-image", userHandler.UploadProfileImage)
		user.POST("/feedback", userHandler.SendFeedback)
		user.GET("/notifications", userHandler.GetNotifications)
		user.DELETE("/account", userHandler.DeleteAccount)
	}

	logger.Info("Routes initialized successfully")
}
