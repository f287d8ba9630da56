package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campshop/pkg/access"
	"campshop/pkg/cache"
	"campshop/pkg/config"
	"campshop/pkg/database"
	"campshop/pkg/geocoder"
	"campshop/pkg/jwt"
	"campshop/pkg/logger"
	"campshop/pkg/mailer"
	"campshop/pkg/middleware"
	"campshop/pkg/s3"
	"campshop/pkg/storage"
	catalogHTTP "campshop/services/catalog/internal/controller/http"
	"campshop/services/catalog/internal/repo/persistent"
	"campshop/services/catalog/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "campshop/services/catalog/docs" // Swagger docs
)

const geocodeCacheTTL = 24 * time.Hour

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	store       storage.Store
	geocoder    geocoder.Geocoder
	mailer      mailer.Mailer
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Rate limiting and geocode caching are skipped without redis
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	var store storage.Store
	if cfg.StorageDriver == "s3" {
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			return nil, err
		}
		if err := s3Client.EnsureBucket(context.Background()); err != nil {
			log.Error("Failed to ensure S3 bucket %s: %v", cfg.S3BucketName, err)
			return nil, err
		}
		store = storage.NewS3Store(s3Client, log)
	} else {
		store = storage.NewLocalStore(cfg.UploadRoot)
	}

	var geo geocoder.Geocoder
	if cfg.GeocoderAPIKey != "" {
		geo = geocoder.NewMapQuest(cfg.GeocoderURL, cfg.GeocoderAPIKey)
		if redisClient != nil {
			geo = geocoder.NewCached(geo, redisClient, geocodeCacheTTL)
		}
	} else {
		log.Warn("GEOCODER_API_KEY is not set, bootcamp locations will not be resolved")
	}

	if cfg.AppURL == "" && cfg.IsProduction() {
		log.Warn("APP_URL is not set, reset links will use the request host")
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		store:       store,
		geocoder:    geo,
		mailer:      mailer.NewSMTPMailer(cfg),
		jwtService:  jwt.NewServiceWithExpiry(cfg.JWTSecret, cfg.JWTExpire),
	}, nil
}

func (a *App) Run() error {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: a.router(),
	}

	go func() {
		a.log.Info("Campshop API starting in %s mode on port %s", a.cfg.Env, a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) router() *gin.Engine {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	bootcampRepo := persistent.NewBootcampRepository(a.db)
	courseRepo := persistent.NewCourseRepository(a.db)
	reviewRepo := persistent.NewReviewRepository(a.db)
	categoryRepo := persistent.NewCategoryRepository(a.db)
	productRepo := persistent.NewProductRepository(a.db)

	photos := storage.NewPhotoUploader(a.store, a.cfg.MaxFileUpload)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.mailer, a.log)
	userUseCase := usecase.NewUserUseCase(userRepo, a.log)
	bootcampUseCase := usecase.NewBootcampUseCase(bootcampRepo, a.geocoder, photos, a.cfg.BootcampUploadDir, a.log)
	courseUseCase := usecase.NewCourseUseCase(courseRepo, bootcampRepo, a.log)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, bootcampRepo, categoryRepo, a.log)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, photos, a.cfg.CategoryUploadDir, a.log)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, photos, a.cfg.ProductUploadDir, a.log)

	// Handlers
	authHandler := catalogHTTP.NewAuthHandler(authUseCase, a.cfg.JWTCookieExpire, a.cfg.IsProduction(), a.cfg.AppURL, a.log)
	userHandler := catalogHTTP.NewUserHandler(userUseCase, a.log)
	bootcampHandler := catalogHTTP.NewBootcampHandler(bootcampUseCase, a.log)
	courseHandler := catalogHTTP.NewCourseHandler(courseUseCase, a.log)
	reviewHandler := catalogHTTP.NewReviewHandler(reviewUseCase, a.log)
	categoryHandler := catalogHTTP.NewCategoryHandler(categoryUseCase, a.log)
	productHandler := catalogHTTP.NewProductHandler(productUseCase, a.log)

	r := gin.Default()
	r.Use(middleware.ErrorHandler(a.log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if a.cfg.StorageDriver != "s3" {
		r.Static("/uploads", a.cfg.UploadRoot)
	}

	protect := middleware.Protect(a.jwtService, authUseCase)
	publishers := middleware.Authorize(access.RolePublisher, access.RoleAdmin)
	sellers := middleware.Authorize(access.RoleSeller, access.RoleAdmin)
	admins := middleware.Authorize(access.RoleAdmin)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitRequests, a.cfg.RateLimitWindow))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/logout", authHandler.Logout)
			auth.GET("/me", protect, authHandler.GetMe)
			auth.PUT("/updatedetails", protect, authHandler.UpdateDetails)
			auth.PUT("/updatepassword", protect, authHandler.UpdatePassword)
			auth.POST("/forgotpassword", authHandler.ForgotPassword)
			auth.PUT("/resetpassword/:resettoken", authHandler.ResetPassword)
		}

		bootcamps := api.Group("/bootcamps")
		{
			bootcamps.GET("", middleware.AdvancedFilter(bootcampUseCase), bootcampHandler.ListBootcamps)
			bootcamps.POST("", protect, publishers, bootcampHandler.CreateBootcamp)
			bootcamps.GET("/radius/:zipcode/:distance", bootcampHandler.BootcampsInRadius)
			bootcamps.GET("/:id", bootcampHandler.GetBootcamp)
			bootcamps.PUT("/:id", protect, publishers, bootcampHandler.UpdateBootcamp)
			bootcamps.DELETE("/:id", protect, publishers, bootcampHandler.DeleteBootcamp)
			bootcamps.PUT("/:id/photo", protect, publishers, bootcampHandler.UploadPhoto)

			bootcamps.GET("/:id/courses", courseHandler.ListBootcampCourses)
			bootcamps.POST("/:id/courses", protect, publishers, courseHandler.CreateCourse)

			bootcamps.GET("/:id/reviews", reviewHandler.ListBootcampReviews)
			bootcamps.POST("/:id/reviews", protect, reviewHandler.ReviewBootcamp)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", middleware.AdvancedFilter(courseUseCase), courseHandler.ListCourses)
			courses.GET("/:id", courseHandler.GetCourse)
			courses.PUT("/:id", protect, publishers, courseHandler.UpdateCourse)
			courses.DELETE("/:id", protect, publishers, courseHandler.DeleteCourse)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", middleware.AdvancedFilter(reviewUseCase), reviewHandler.ListReviews)
			reviews.GET("/:id", reviewHandler.GetReview)
			reviews.PUT("/:id", protect, reviewHandler.UpdateReview)
			reviews.DELETE("/:id", protect, reviewHandler.DeleteReview)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", middleware.AdvancedFilter(categoryUseCase), categoryHandler.ListCategories)
			categories.POST("", protect, admins, categoryHandler.CreateCategory)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", protect, admins, categoryHandler.UpdateCategory)
			categories.DELETE("/:id", protect, admins, categoryHandler.DeleteCategory)
			categories.PUT("/:id/photo", protect, admins, categoryHandler.UploadPhoto)

			categories.GET("/:id/products", productHandler.ListCategoryProducts)
			categories.POST("/:id/products", protect, sellers, productHandler.CreateProduct)

			categories.GET("/:id/reviews", reviewHandler.ListCategoryReviews)
			categories.POST("/:id/reviews", protect, reviewHandler.ReviewCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", middleware.AdvancedFilter(productUseCase), productHandler.ListProducts)
			products.POST("", protect, sellers, productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", protect, sellers, productHandler.UpdateProduct)
			products.DELETE("/:id", protect, sellers, productHandler.DeleteProduct)
			products.PUT("/:id/photo", protect, sellers, productHandler.UploadPhoto)
		}

		users := api.Group("/users")
		users.Use(protect, admins)
		{
			users.GET("", middleware.AdvancedFilter(userUseCase), userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	return r
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down campshop API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Drain in-flight requests before their stores go away.
	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.Error("Error closing database: %v", err)
			}
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Campshop API exited")
	if err := a.log.Close(); err != nil && shutdownErr == nil {
		shutdownErr = err
	}
	return shutdownErr
}
