package routes

import (
	"log"

	"nutcha-shop/controllers"
	"nutcha-shop/middleware"
	"nutcha-shop/models"
	"nutcha-shop/repositories"
	"nutcha-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	cartRepo := repositories.NewRedisCartRepository(models.RedisClient)
	checkoutRepo := repositories.NewRedisCheckoutRepository(models.RedisClient)
	currentOrderRepo := repositories.NewRedisCurrentOrderRepository(models.RedisClient)
	contactRepo := repositories.NewRedisContactRepository(models.RedisClient)
	prefRepo := repositories.NewRedisPreferenceRepository(models.RedisClient)
	historyRepo := repositories.NewPostgresOrderHistoryRepository(models.DB)
	productRepo := repositories.NewProductRepository(models.DB)
	userRepo := repositories.NewUserRepository(models.DB)

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Printf("email service disabled: %v", err)
		mailer = nil
	}

	cartService := services.NewCartService(cartRepo)
	checkoutService := services.NewCheckoutService(
		cartService, checkoutRepo, currentOrderRepo, historyRepo,
		services.NewPaymentGateway(), orderMailer(mailer))
	contactService := services.NewContactService(contactRepo, contactMailer(mailer))
	prefService := services.NewPreferenceService(prefRepo)
	productService := services.NewProductService(productRepo)
	authService := services.NewAuthService(userRepo)

	cartCtrl := controllers.NewCartController(cartService, checkoutService)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService)
	contactCtrl := controllers.NewContactController(contactService)
	prefCtrl := controllers.NewPreferenceController(prefService)
	productCtrl := controllers.NewProductController(productService)
	orderCtrl := controllers.NewOrderController(historyRepo)
	authCtrl := controllers.NewAuthController(authService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	shop := router.Group("/")
	shop.Use(middleware.SessionMiddleware())
	{
		shop.GET("/cart", cartCtrl.GetCart)
		shop.DELETE("/cart", cartCtrl.ClearCart)
		shop.POST("/cart/items", cartCtrl.AddLine)
		shop.DELETE("/cart/items", cartCtrl.RemoveLine)
		shop.PATCH("/cart/items/quantity", cartCtrl.UpdateQuantity)
		shop.POST("/cart/items/save", cartCtrl.SaveForLater)
		shop.POST("/cart/coupon", cartCtrl.ApplyCoupon)

		shop.GET("/checkout", checkoutCtrl.GetState)
		shop.POST("/checkout/billing", checkoutCtrl.SubmitBilling)
		shop.POST("/checkout/shipping", checkoutCtrl.SubmitShipping)
		shop.POST("/checkout/payment", checkoutCtrl.SubmitPayment)
		shop.POST("/checkout/back", checkoutCtrl.Back)
		shop.POST("/checkout/place-order", checkoutCtrl.PlaceOrder)

		shop.GET("/orders", orderCtrl.GetHistory)
		shop.GET("/orders/current", checkoutCtrl.CurrentOrder)
		shop.DELETE("/orders/current", checkoutCtrl.ContinueShopping)

		shop.POST("/contact", contactCtrl.Submit)
		shop.GET("/contact/draft", contactCtrl.GetDraft)
		shop.PUT("/contact/draft", contactCtrl.SaveDraft)

		shop.GET("/favorites", prefCtrl.GetFavorites)
		shop.POST("/favorites", prefCtrl.ToggleFavorite)
		shop.GET("/bookmarks", prefCtrl.GetBookmarks)
		shop.POST("/bookmarks", prefCtrl.ToggleBookmark)
		shop.GET("/preferences/dark-mode", prefCtrl.GetDarkMode)
		shop.PUT("/preferences/dark-mode", prefCtrl.SetDarkMode)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
	}

	router.Static("/uploads", "./uploads")
}

// orderMailer and contactMailer keep a nil *EmailService from becoming a
// non-nil interface inside the services.
func orderMailer(m *models.EmailService) services.OrderMailer {
	if m == nil {
		return nil
	}
	return m
}

func contactMailer(m *models.EmailService) services.ContactMailer {
	if m == nil {
		return nil
	}
	return m
}
