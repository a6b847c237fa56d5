package routes

import (
	"github.com/VanThinh512/Ordering-Food-Website/configs"
	"github.com/VanThinh512/Ordering-Food-Website/controllers"
	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/middlewares"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
	"github.com/VanThinh512/Ordering-Food-Website/services"
	"github.com/VanThinh512/Ordering-Food-Website/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, feed *ws.OrderFeed) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	tableRepo := repository.NewTableRepository(db)
	resRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	resSvc := services.NewReservationService(db, resRepo, tableRepo)
	tableStatusSvc := services.NewTableStatusService(resRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, productRepo, tableRepo, resRepo)
	orderSvc.Notifier = services.LogNotifier{}
	orderSvc.Feed = feed
	statsSvc := services.NewStatsService(orderRepo, resRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, userRepo)
	categoryCtrl := controllers.NewCategoryController(categoryRepo)
	productCtrl := controllers.NewProductController(productRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	tableCtrl := controllers.NewTableController(tableRepo, tableStatusSvc)
	resCtrl := controllers.NewReservationController(resSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	statsCtrl := controllers.NewStatsController(statsSvc)
	userCtrl := controllers.NewUserController(userRepo)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Catalog (public)
	r.GET("/categories", categoryCtrl.List)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)
	r.GET("/tables", tableCtrl.List)
	r.GET("/tables/:id", tableCtrl.Detail)

	// User (ต้องล็อกอิน)
	u := r.Group("/", auth())
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.GET("/reservations", resCtrl.ListMine)
		u.POST("/reservations", resCtrl.Create)
		u.GET("/reservations/availability/:tableId", resCtrl.Availability)
		u.DELETE("/reservations/:id", resCtrl.Cancel)

		u.GET("/orders", orderCtrl.List)
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)
	}

	// Staff/Admin
	staff := r.Group("/", auth(entity.RoleAdmin, entity.RoleStaff))
	{
		staff.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		staff.GET("/ws/orders", feed.HandleWebSocket)
		staff.GET("/admin/statistics/overview", statsCtrl.Overview)
	}

	// Admin only
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.POST("/categories", categoryCtrl.Create)
		admin.PUT("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.POST("/products", productCtrl.Create)
		admin.PUT("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.GET("/users", userCtrl.List)
		admin.PATCH("/users/:id", userCtrl.Update)

		admin.POST("/tables", tableCtrl.Create)
		admin.PUT("/tables/:id", tableCtrl.Update)
		admin.DELETE("/tables/:id", tableCtrl.Delete)
	}
}
