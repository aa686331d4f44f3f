package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flavourhaven/hotel-restaurant-app/controllers"
	"github.com/flavourhaven/hotel-restaurant-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global limiter: 50 requests per second per IP. Gin freezes each
	// route's handler chain at registration, so this must be attached
	// before any route is added.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(db)
	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	inventoryCtrl := controllers.NewInventoryController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	roomCtrl := controllers.NewRoomController(db)
	analyticsCtrl := controllers.NewAnalyticsController(db)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "timestamp": time.Now().Format(time.RFC3339)})
	})

	// ---- Auth ----
	auth := api.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}
	api.GET("/auth/profile", middlewares.AuthMiddleware(), authCtrl.GetProfile)

	// ---- Menu (public reads, admin writes) ----
	api.GET("/menu", menuCtrl.GetAllMenuItems)
	api.GET("/menu/:item_id", menuCtrl.GetMenuItemByID)

	menuAdmin := api.Group("/menu")
	menuAdmin.Use(middlewares.AuthMiddleware(), middlewares.RequirePermission("menu:write"))
	{
		menuAdmin.POST("", menuCtrl.CreateMenuItem)
		menuAdmin.PUT("/:item_id", menuCtrl.UpdateMenuItem)
		menuAdmin.DELETE("/:item_id", menuCtrl.DeleteMenuItem)
	}

	// ---- Orders ----
	orders := api.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.GET("", middlewares.RequirePermission("orders:list"), orderCtrl.GetAllOrders)
		orders.GET("/my", orderCtrl.GetMyOrders)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
		orders.POST("", middlewares.RequirePermission("orders:create"), orderCtrl.CreateOrder)
		orders.PATCH("/:order_id/status", middlewares.RequirePermission("orders:update-status"), orderCtrl.UpdateOrderStatus)
		orders.DELETE("/:order_id", middlewares.RequirePermission("orders:delete"), orderCtrl.DeleteOrder)
	}

	// ---- Inventory ----
	inventory := api.Group("/inventory")
	inventory.Use(middlewares.AuthMiddleware())
	{
		inventory.GET("", middlewares.RequirePermission("inventory:read"), inventoryCtrl.GetAllItems)
		inventory.GET("/:item_id", middlewares.RequirePermission("inventory:read"), inventoryCtrl.GetItemByID)
		inventory.POST("", middlewares.RequirePermission("inventory:write"), inventoryCtrl.CreateItem)
		inventory.PUT("/:item_id", middlewares.RequirePermission("inventory:write"), inventoryCtrl.UpdateItem)
		inventory.DELETE("/:item_id", middlewares.RequirePermission("inventory:write"), inventoryCtrl.DeleteItem)
	}

	// ---- Payments ----
	payments := api.Group("/payments")
	payments.Use(middlewares.AuthMiddleware())
	{
		payments.GET("", middlewares.RequirePermission("payments:list"), paymentCtrl.GetAllPayments)
		payments.POST("", middlewares.RequirePermission("payments:create"), paymentCtrl.CreatePayment)
		payments.GET("/:payment_id/pdf", paymentCtrl.GetInvoicePDF)
	}

	// ---- Users (admin) ----
	users := api.Group("/users")
	users.Use(middlewares.AuthMiddleware(), middlewares.RequirePermission("users:manage"))
	{
		users.GET("", userCtrl.GetAllUsers)
		users.GET("/:user_id", userCtrl.GetUserByID)
		users.PATCH("/:user_id", userCtrl.UpdateUser)
		users.DELETE("/:user_id", userCtrl.DeleteUser)
	}

	// ---- Rooms & bookings ----
	api.GET("/rooms", roomCtrl.GetAllRooms)
	api.GET("/rooms/:room_id", roomCtrl.GetRoomByID)

	roomsAdmin := api.Group("/rooms")
	roomsAdmin.Use(middlewares.AuthMiddleware(), middlewares.RequirePermission("rooms:write"))
	{
		roomsAdmin.POST("", roomCtrl.CreateRoom)
		roomsAdmin.PUT("/:room_id", roomCtrl.UpdateRoom)
		roomsAdmin.DELETE("/:room_id", roomCtrl.DeleteRoom)
	}

	bookings := api.Group("/rooms/bookings")
	bookings.Use(middlewares.AuthMiddleware())
	{
		bookings.GET("/all", middlewares.RequirePermission("bookings:list"), roomCtrl.GetAllBookings)
		bookings.GET("/my", roomCtrl.GetMyBookings)
		bookings.POST("", middlewares.RequirePermission("bookings:create"), roomCtrl.CreateBooking)
		bookings.PATCH("/:booking_id/checkin", middlewares.RequirePermission("bookings:transition"), roomCtrl.CheckIn)
		bookings.PATCH("/:booking_id/checkout", middlewares.RequirePermission("bookings:transition"), roomCtrl.CheckOut)
		// Cancel is open to the owner as well; the controller enforces
		// ownership for customers.
		bookings.PATCH("/:booking_id/cancel", roomCtrl.CancelBooking)
	}

	// ---- Analytics (admin) ----
	analytics := api.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware(), middlewares.RequirePermission("analytics:read"))
	{
		analytics.GET("/dashboard", analyticsCtrl.GetDashboard)
		analytics.GET("/revenue-chart", analyticsCtrl.GetRevenueChart)
	}

	return r
}
