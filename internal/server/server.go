package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/auth"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/clock"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/config"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/notification"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/payment"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/reservation"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/schedule"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/subscription"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/user"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, notifications *notification.Service) *Server {
	RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(corsMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	loc := cfg.StudioLocation()
	clk := clock.System()

	userRepo := user.NewRepository(db)
	subscriptionRepo := subscription.NewRepository(db)
	scheduleRepo := schedule.NewRepository(db, loc)
	reservationRepo := reservation.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	dispatcher := notification.NewDispatcher(notifications, userRepo)

	userService := user.NewService(userRepo, cfg.JWTSecret, dispatcher)
	subscriptionService := subscription.NewService(
		subscriptionRepo, clk, loc,
		cfg.WeeklyClassLimit, cfg.MaxFutureWeeks, cfg.WeekOptionsOffered,
	)
	scheduleService := schedule.NewService(scheduleRepo, clk, loc)
	reservationService := reservation.NewService(
		reservationRepo, scheduleRepo, subscriptionRepo,
		reservation.NewValidator(cfg.WeeklyClassLimit, cfg.DailyClassLimit),
		clk, loc, cfg.RefundWindow(), dispatcher,
	)
	paymentService := payment.NewService(paymentRepo, subscriptionRepo, dispatcher)

	userHandler := user.NewHandler(userService)
	subscriptionHandler := subscription.NewHandler(subscriptionService, loc)
	scheduleHandler := schedule.NewHandler(scheduleService)
	reservationHandler := reservation.NewHandler(reservationService)
	paymentHandler := payment.NewHandler(paymentService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	router.POST("/payments/webhook", paymentHandler.Webhook)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/me", userHandler.Me)

		protected.GET("/classes", scheduleHandler.ListUpcoming)
		protected.GET("/classes/:classID", scheduleHandler.GetClass)

		protected.GET("/plans", subscriptionHandler.ListPlans)
		protected.GET("/subscriptions/week-options", subscriptionHandler.WeekOptions)
		protected.POST("/subscriptions/weeks", subscriptionHandler.PurchaseWeek)
		protected.POST("/subscriptions/packs", subscriptionHandler.PurchasePack)
		protected.GET("/subscriptions", subscriptionHandler.ListMine)

		protected.POST("/reservations", reservationHandler.Book)
		protected.POST("/reservations/:reservationID/cancel", reservationHandler.Cancel)
		protected.GET("/reservations", reservationHandler.ListMine)

		protected.GET("/payments", paymentHandler.ListMine)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(user.RoleAdmin))
	{
		admin.POST("/classes", scheduleHandler.CreateClass)
		admin.GET("/classes/:classID/reservations", reservationHandler.ListByClass)
		admin.POST("/reservations/:reservationID/attended", reservationHandler.MarkAttended)
		admin.POST("/reservations/:reservationID/no-show", reservationHandler.ApplyNoShowPenalty)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
