package routes

import (
	"log"
	"strings"

	"github.com/Lutkowo/lutkowo/config"
	"github.com/Lutkowo/lutkowo/controllers"
	"github.com/Lutkowo/lutkowo/handler"
	"github.com/Lutkowo/lutkowo/libs"
	"github.com/Lutkowo/lutkowo/middleware"
	"github.com/Lutkowo/lutkowo/repositories"
	"github.com/Lutkowo/lutkowo/services"
	"github.com/Lutkowo/lutkowo/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Stores picks redis when it is connected and the in-process store otherwise.
func Stores() (libs.KV, libs.PubSub) {
	if config.RedisClient != nil {
		store := libs.NewRedisStore(config.RedisClient)
		return store, store
	}
	store := libs.NewMemoryStore()
	return store, store
}

func objectStorage(cfg *config.Config) libs.ObjectStorage {
	if cfg.CloudinaryURL != "" || (cfg.CloudName != "" && cfg.CloudKey != "" && cfg.CloudSecret != "") {
		storage, err := libs.NewCloudinaryStorage(cfg.CloudName, cfg.CloudKey, cfg.CloudSecret, cfg.CloudinaryURL)
		if err == nil {
			log.Println("Image storage: cloudinary")
			return storage
		}
		log.Printf("Cloudinary init failed, falling back to disk: %v", err)
	}

	storage, err := libs.NewDiskStorage(cfg.UploadDir, strings.TrimRight(cfg.PublicURL, "/")+"/uploads")
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}
	log.Println("Image storage: local disk")
	return storage
}

func mailer(cfg *config.Config) libs.Mailer {
	if cfg.SMTPHost == "" {
		return libs.NopMailer{}
	}
	m, err := libs.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	if err != nil {
		log.Printf("SMTP mailer disabled: %v", err)
		return libs.NopMailer{}
	}
	return m
}

// SetupRoutes builds the service graph on top of config.DB and
// config.RedisClient and registers every endpoint. The returned refresher
// must be run by the caller for live product lists to update.
func SetupRoutes(router *gin.Engine) *services.ProductRefresher {
	cfg := config.AppConfig
	kv, pubsub := Stores()

	productRepo := repositories.NewProductRepository(config.DB)
	categoryRepo := repositories.NewCategoryRepository(config.DB)
	couponRepo := repositories.NewCouponRepository(config.DB)
	cartRepo := repositories.NewCartRepository(config.DB)
	userRepo := repositories.NewUserRepository(config.DB)

	catalog := services.NewCatalogService(productRepo, kv, services.CatalogConfig{
		PageSize:         cfg.PageSize,
		MaxPageSize:      cfg.MaxPageSize,
		SearchWindow:     cfg.SearchWindow,
		SearchLimit:      cfg.SearchLimit,
		ImagesPerProduct: cfg.ImagesPerProduct,
		CacheTTL:         cfg.CacheTTL,
	})
	categories := services.NewCategoryService(categoryRepo, kv, cfg.CacheTTL)
	coupons := services.NewCouponService(couponRepo)
	carts := services.NewCartService(kv, services.NewCartBus(pubsub), cartRepo, productRepo, coupons, cfg.CartTTL)
	auth := services.NewAuthService(userRepo, kv, pubsub, utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry), mailer(cfg), cfg.LoginPerMinute)
	images := services.NewImageService(objectStorage(cfg), cfg.ImagesPerProduct)
	refresher := services.NewProductRefresher(catalog, cfg.RefreshInterval)

	authCtrl := controllers.NewAuthController(auth, carts)
	userCtrl := controllers.NewUserController(auth)
	productCtrl := controllers.NewProductController(catalog, images, refresher, cfg.MaxUploadSize)
	categoryCtrl := controllers.NewCategoryController(categories)
	cartCtrl := controllers.NewCartController(carts)
	couponCtrl := controllers.NewCouponController(coupons)
	uploadCtrl := controllers.NewUploadController(images, cfg.MaxUploadSize)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", gin.WrapF(handler.Handler))

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/products", productCtrl.ListProducts)
	router.GET("/products/search", productCtrl.SearchProducts)
	router.GET("/products/featured", productCtrl.FeaturedProducts)
	router.GET("/products/live", productCtrl.LiveProducts)
	router.GET("/products/:id", productCtrl.GetProduct)
	router.GET("/products/:id/similar", productCtrl.SimilarProducts)

	router.GET("/categories", categoryCtrl.GetAllCategories)
	router.GET("/categories/top", categoryCtrl.GetTopLevel)
	router.GET("/categories/names", categoryCtrl.GetNames)
	router.GET("/categories/slug/:slug", categoryCtrl.GetBySlug)
	router.GET("/categories/:id", categoryCtrl.GetByID)
	router.GET("/categories/:id/children", categoryCtrl.GetChildren)

	cart := router.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(auth))
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.ClearCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.POST("/coupon", cartCtrl.ApplyCoupon)
		cart.DELETE("/coupon", cartCtrl.RemoveCoupon)
		cart.POST("/checkout/preview", cartCtrl.CheckoutPreview)
		cart.GET("/events", cartCtrl.CartEvents)
	}
	router.GET("/coupons/:code", middleware.OptionalAuthMiddleware(auth), couponCtrl.CheckCoupon)
	router.GET("/auth/session", middleware.OptionalAuthMiddleware(auth), authCtrl.GetSession)

	authed := router.Group("/")
	authed.Use(middleware.AuthMiddleware(auth))
	{
		authed.POST("/auth/logout", authCtrl.Logout)
		authed.GET("/auth/session/events", authCtrl.SessionEvents)
		authed.GET("/auth/profile", authCtrl.GetProfile)
		authed.PATCH("/auth/profile", authCtrl.UpdateProfile)
		authed.POST("/cart/sync", cartCtrl.SyncCart)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(auth), middleware.AdminMiddleware())
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.PATCH("/users/:id", userCtrl.UpdateUser)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.POST("/products/:id/images", productCtrl.UploadImages)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PUT("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.GET("/coupons", couponCtrl.ListCoupons)
		admin.POST("/coupons", couponCtrl.CreateCoupon)
		admin.PATCH("/coupons/:code", couponCtrl.SetCouponStatus)

		admin.POST("/uploads", uploadCtrl.UploadImage)
		admin.POST("/uploads/batch", uploadCtrl.UploadImages)
		admin.DELETE("/uploads", uploadCtrl.DeleteImage)
	}

	router.Static("/uploads", cfg.UploadDir)

	return refresher
}
