package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shoe-store/clients"
	"shoe-store/config"
	"shoe-store/controllers"
	"shoe-store/middleware"
	"shoe-store/models"
	"shoe-store/repositories"
	"shoe-store/services"
)

func SetupRoutes(router *gin.Engine) {
	api := clients.NewShopAPI(config.AppConfig.BackendAPIURL, config.AppConfig.RequestTimeout)

	cartRepo := repositories.NewCartRepository(newCartBackend())
	carts := services.NewCartService(cartRepo)

	checkout := newCheckoutService(carts, api)

	authCtrl := controllers.NewAuthController(api)
	productCtrl := controllers.NewProductController(api)
	reviewCtrl := controllers.NewReviewController(api)
	cartCtrl := controllers.NewCartController(carts, api)
	checkoutCtrl := controllers.NewCheckoutController(checkout, api)
	orderCtrl := controllers.NewOrderController(api)
	userCtrl := controllers.NewUserController(api)
	uploadCtrl := controllers.NewUploadController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	public := router.Group("/api")
	{
		public.POST("/auth/login", authCtrl.Login)
		public.GET("/products", productCtrl.GetAllProducts)
		public.GET("/products/:productId", productCtrl.GetProductByID)
		public.GET("/reviews", reviewCtrl.GetAllReviews)
	}

	cart := router.Group("/api/cart")
	cart.Use(middleware.CartSession())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items", cartCtrl.AdjustItem)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.GET("/count", cartCtrl.GetCount)
		cart.GET("/total", cartCtrl.GetTotal)
		cart.GET("/events", cartCtrl.Events)
	}

	auth := router.Group("/api")
	auth.Use(middleware.RequireAuth())
	{
		auth.GET("/profile", authCtrl.GetProfile)
		auth.GET("/orders", orderCtrl.GetUserOrders)
		auth.GET("/checkout", checkoutCtrl.Prefill)
		auth.POST("/checkout", middleware.CartSession(), checkoutCtrl.PlaceOrder)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireAuth(), middleware.AdminMiddleware())
	{
		admin.GET("/orders/:page/:limit", orderCtrl.GetAllOrders)
		admin.PUT("/orders/:id", orderCtrl.UpdateOrder)
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:productId", productCtrl.UpdateProduct)
		admin.DELETE("/products/:productId", productCtrl.DeleteProduct)
		admin.POST("/uploads", uploadCtrl.UploadImage)
	}
}

// newCartBackend picks the key-value store behind the cart per configuration.
// A missing Redis falls back to the in-process store so the shop stays
// browsable, at the cost of carts not surviving a restart.
func newCartBackend() repositories.KVStore {
	switch config.AppConfig.CartBackend {
	case "postgres":
		return repositories.NewPostgresStore(config.DB)
	case "memory":
		log.Println("Using in-memory cart store")
		return repositories.NewMemoryStore()
	default:
		if config.RedisClient == nil {
			log.Println("Redis unavailable, falling back to in-memory cart store")
			return repositories.NewMemoryStore()
		}
		return repositories.NewRedisStore(config.RedisClient, config.AppConfig.CartTTL)
	}
}

func newCheckoutService(carts *services.CartService, api *clients.ShopAPI) *services.CheckoutService {
	mailer, err := models.NewEmailService(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPass,
		config.AppConfig.SMTPFrom,
	)
	if err != nil {
		log.Println("Order confirmation emails disabled:", err)
		return services.NewCheckoutService(carts, api, nil, config.AppConfig.CardDelay)
	}
	return services.NewCheckoutService(carts, api, mailer, config.AppConfig.CardDelay)
}
