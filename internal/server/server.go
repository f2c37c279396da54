package server

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/lumiere-beauty/storefront-api/internal/config"
	"github.com/lumiere-beauty/storefront-api/internal/handler"
	"github.com/lumiere-beauty/storefront-api/internal/middleware"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
	"github.com/lumiere-beauty/storefront-api/internal/service"
)

type Server struct {
	echo *echo.Echo

	authHandler     *handler.AuthHandler
	storeHandler    *handler.StoreHandler
	bookingHandler  *handler.BookingHandler
	checkoutHandler *handler.CheckoutHandler
	adminHandler    *handler.AdminHandler
}

type Deps struct {
	// BaseURL is the storefront origin; when set, CORS is restricted to it.
	BaseURL string

	AuthService     service.AuthService
	StoreService    service.StoreService
	BookingService  service.BookingService
	CheckoutService service.CheckoutService
	PaymentService  service.PaymentService
	UserRepo        repository.UserRepository

	// Redis is optional; without it the rate limiter is simply not
	// installed.
	Redis     *redis.Client
	RateLimit config.RateLimit
}

func NewServer(deps *Deps) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(corsMiddleware(deps.BaseURL))
	e.Use(middleware.LoadUser(deps.AuthService))
	if deps.Redis != nil {
		window := time.Duration(deps.RateLimit.WindowSeconds) * time.Second
		e.Use(middleware.RateLimit(deps.Redis, window, deps.RateLimit.Max))
	}

	s := &Server{
		echo:            e,
		authHandler:     handler.NewAuthHandler(deps.AuthService),
		storeHandler:    handler.NewStoreHandler(deps.StoreService),
		bookingHandler:  handler.NewBookingHandler(deps.BookingService),
		checkoutHandler: handler.NewCheckoutHandler(deps.CheckoutService, deps.PaymentService),
		adminHandler:    handler.NewAdminHandler(deps.UserRepo),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)
	auth.GET("/me", s.authHandler.Me, middleware.RequireAuth)
	auth.PUT("/me", s.authHandler.UpdateProfile, middleware.RequireAuth)

	// -------- catalog (public reads, permission-gated writes) --------
	products := api.Group("/products")
	products.GET("", s.storeHandler.ListProducts)
	products.GET("/:id", s.storeHandler.GetProduct)
	products.POST("", s.storeHandler.CreateProduct, middleware.RequirePermission(service.ModuleProducts, service.ActionWrite))
	products.PUT("/:id", s.storeHandler.UpdateProduct, middleware.RequirePermission(service.ModuleProducts, service.ActionWrite))
	products.DELETE("/:id", s.storeHandler.DeleteProduct, middleware.RequirePermission(service.ModuleProducts, service.ActionWrite))

	services := api.Group("/services")
	services.GET("", s.storeHandler.ListServices)
	services.GET("/:id", s.storeHandler.GetService)
	services.POST("", s.storeHandler.CreateService, middleware.RequirePermission(service.ModuleServices, service.ActionWrite))
	services.PUT("/:id", s.storeHandler.UpdateService, middleware.RequirePermission(service.ModuleServices, service.ActionWrite))
	services.DELETE("/:id", s.storeHandler.DeleteService, middleware.RequirePermission(service.ModuleServices, service.ActionWrite))

	staff := api.Group("/staff")
	staff.GET("", s.storeHandler.ListStaff)
	staff.POST("", s.storeHandler.CreateStaff, middleware.RequirePermission(service.ModuleStaff, service.ActionWrite))
	staff.PUT("/:id", s.storeHandler.UpdateStaff, middleware.RequirePermission(service.ModuleStaff, service.ActionWrite))
	staff.DELETE("/:id", s.storeHandler.DeleteStaff, middleware.RequirePermission(service.ModuleStaff, service.ActionWrite))

	clients := api.Group("/clients")
	clients.GET("", s.storeHandler.ListClients, middleware.RequirePermission(service.ModuleClients, service.ActionRead))
	clients.POST("", s.storeHandler.CreateClient, middleware.RequirePermission(service.ModuleClients, service.ActionWrite))
	clients.PUT("/:id", s.storeHandler.UpdateClient, middleware.RequirePermission(service.ModuleClients, service.ActionWrite))
	clients.DELETE("/:id", s.storeHandler.DeleteClient, middleware.RequirePermission(service.ModuleClients, service.ActionWrite))

	// -------- bookings --------
	bookings := api.Group("/bookings")
	bookings.GET("/slots", s.bookingHandler.Slots)
	bookings.GET("/mine", s.bookingHandler.ListMine, middleware.RequireAuth)
	bookings.POST("", s.bookingHandler.Create, middleware.RequireAuth)
	bookings.PUT("/:id/cancel", s.bookingHandler.Cancel, middleware.RequireAuth)
	bookings.PUT("/:id/feedback", s.bookingHandler.Feedback, middleware.RequireAuth)

	// -------- orders & payments --------
	orders := api.Group("/orders")
	orders.GET("/mine", s.checkoutHandler.ListMyOrders, middleware.RequireAuth)
	orders.POST("", s.checkoutHandler.PlaceCashOrder, middleware.RequireAuth)

	payments := api.Group("/payments")
	payments.POST("/create-checkout-session", s.checkoutHandler.CreateCheckoutSession, middleware.RequireAuth)
	payments.GET("/verify", s.checkoutHandler.VerifyPayment, middleware.RequireAuth)

	// -------- admin --------
	admin := api.Group("/admin", middleware.RequireAdmin)
	admin.GET("/staff", s.adminHandler.ListStaffUsers)
	admin.PUT("/staff/:id/permissions", s.adminHandler.UpdateStaffPermissions)
}

func corsMiddleware(baseURL string) echo.MiddlewareFunc {
	cfg := echomw.DefaultCORSConfig
	if baseURL != "" {
		cfg.AllowOrigins = []string{baseURL}
	}
	return echomw.CORSWithConfig(cfg)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
