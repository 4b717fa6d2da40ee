package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	arrearsapp "github.com/arenda/backend/internal/application/arrears"
	billingapp "github.com/arenda/backend/internal/application/billing"
	leasingapp "github.com/arenda/backend/internal/application/leasing"
	paymentapp "github.com/arenda/backend/internal/application/payment"
	propertyapp "github.com/arenda/backend/internal/application/property"
	tenantapp "github.com/arenda/backend/internal/application/tenant"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/infrastructure/config"
	"github.com/arenda/backend/internal/infrastructure/event"
	"github.com/arenda/backend/internal/infrastructure/logger"
	"github.com/arenda/backend/internal/infrastructure/persistence"
	httpapi "github.com/arenda/backend/internal/interfaces/http"
	"github.com/arenda/backend/internal/interfaces/http/handler"
	"github.com/arenda/backend/internal/interfaces/http/middleware"
	"github.com/arenda/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting arenda backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	premiseRepo := persistence.NewGormPremiseRepository(db.DB)
	reservationRepo := persistence.NewGormReservationRepository(db.DB)
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	leaseRepo := persistence.NewGormLeaseRepository(db.DB)

	// Transaction scopes
	propertyTxScope := persistence.NewGormPropertyTransactionScope(db.DB)
	leasingTxScope := persistence.NewGormLeasingTransactionScope(db.DB)
	billingTxScope := persistence.NewGormBillingTransactionScope(db.DB)
	paymentTxScope := persistence.NewGormPaymentTransactionScope(db.DB)
	arrearsTxScope := persistence.NewGormArrearsTransactionScope(db.DB)

	// Event bus with the audit trail subscribed to everything
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log.Named("audit")))

	clock := shared.SystemClock{}

	// Application services
	premiseService := propertyapp.NewPremiseService(premiseRepo, reservationRepo, leaseRepo, clock)
	premiseService.SetEventPublisher(eventBus)

	reservationService := propertyapp.NewReservationService(propertyTxScope, clock)
	reservationService.SetEventPublisher(eventBus)

	tenantService := tenantapp.NewTenantService(tenantRepo, leaseRepo)

	leaseService := leasingapp.NewLeaseService(leasingTxScope, tenantRepo, clock)
	leaseService.SetEventPublisher(eventBus)

	billingService := billingapp.NewBillingService(billingTxScope, clock, log.Named("billing"))
	billingService.SetEventPublisher(eventBus)

	paymentService := paymentapp.NewPaymentService(paymentTxScope, tenantRepo, clock, log.Named("payment"))
	paymentService.SetEventPublisher(eventBus)

	arrearsService := arrearsapp.NewArrearsService(arrearsTxScope, clock, log.Named("arrears"))

	// Handlers
	premiseHandler := handler.NewPremiseHandler(premiseService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	leaseHandler := handler.NewLeaseHandler(leaseService, billingService, paymentService)
	billingHandler := handler.NewBillingHandler(billingService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	arrearsHandler := handler.NewArrearsHandler(arrearsService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := httpapi.RegisterValidators(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}
	engine.Use(logger.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", healthHandler(db))

	// Property routes (premises and reservations)
	propertyRoutes := router.NewDomainGroup("property", "/property")
	propertyRoutes.POST("/premises", premiseHandler.Create)
	propertyRoutes.GET("/premises", premiseHandler.List)
	propertyRoutes.GET("/premises/available", premiseHandler.ListAvailable)
	propertyRoutes.POST("/premises/import", premiseHandler.Import)
	propertyRoutes.GET("/premises/:id", premiseHandler.GetByID)
	propertyRoutes.PUT("/premises/:id", premiseHandler.Update)
	propertyRoutes.DELETE("/premises/:id", premiseHandler.Delete)
	propertyRoutes.POST("/reservations", reservationHandler.Create)
	propertyRoutes.GET("/reservations", reservationHandler.List)
	propertyRoutes.POST("/reservations/expire", reservationHandler.Expire)
	propertyRoutes.GET("/reservations/:id", reservationHandler.GetByID)
	propertyRoutes.POST("/reservations/:id/cancel", reservationHandler.Cancel)

	// Tenant routes (renting parties)
	tenantRoutes := router.NewDomainGroup("tenant", "/tenants")
	tenantRoutes.POST("", tenantHandler.Create)
	tenantRoutes.GET("", tenantHandler.List)
	tenantRoutes.GET("/:id", tenantHandler.GetByID)
	tenantRoutes.PUT("/:id", tenantHandler.Update)
	tenantRoutes.DELETE("/:id", tenantHandler.Delete)

	// Lease routes (lifecycle, indexations, per-lease billing history)
	leaseRoutes := router.NewDomainGroup("leasing", "/leases")
	leaseRoutes.POST("", leaseHandler.Create)
	leaseRoutes.GET("", leaseHandler.List)
	leaseRoutes.GET("/:id", leaseHandler.GetByID)
	leaseRoutes.PUT("/:id", leaseHandler.Update)
	leaseRoutes.DELETE("/:id", leaseHandler.Delete)
	leaseRoutes.POST("/:id/activate", leaseHandler.Activate)
	leaseRoutes.POST("/:id/terminate", leaseHandler.Terminate)
	leaseRoutes.POST("/:id/close", leaseHandler.Close)
	leaseRoutes.POST("/:id/indexations", leaseHandler.AddIndexation)
	leaseRoutes.GET("/:id/indexations", leaseHandler.ListIndexations)
	leaseRoutes.DELETE("/:id/indexations/:indexationId", leaseHandler.RemoveIndexation)
	leaseRoutes.GET("/:id/accruals", leaseHandler.ListAccruals)
	leaseRoutes.GET("/:id/invoices", leaseHandler.ListInvoices)
	leaseRoutes.GET("/:id/payments", leaseHandler.ListPayments)

	// Billing routes (run, invoices, VAT settings)
	billingRoutes := router.NewDomainGroup("billing", "/billing")
	billingRoutes.POST("/run", billingHandler.Run)
	billingRoutes.GET("/accruals", billingHandler.ListAccruals)
	billingRoutes.GET("/invoices", billingHandler.ListInvoices)
	billingRoutes.GET("/invoices/:id", billingHandler.GetInvoice)
	billingRoutes.GET("/vat-settings", billingHandler.ListVATSettings)
	billingRoutes.POST("/vat-settings", billingHandler.SetVATRate)

	// Payment routes (recording, reconciliation, imports)
	paymentRoutes := router.NewDomainGroup("payment", "/payments")
	paymentRoutes.POST("", paymentHandler.Create)
	paymentRoutes.GET("", paymentHandler.List)
	paymentRoutes.POST("/import", paymentHandler.Import)
	paymentRoutes.GET("/:id", paymentHandler.GetByID)
	paymentRoutes.POST("/:id/apply", paymentHandler.Apply)
	paymentRoutes.POST("/:id/refund", paymentHandler.Refund)

	// Arrears routes (aging report, penalties)
	arrearsRoutes := router.NewDomainGroup("arrears", "/arrears")
	arrearsRoutes.GET("/aging", arrearsHandler.Aging)
	arrearsRoutes.POST("/penalties/preview", arrearsHandler.PreviewPenalties)
	arrearsRoutes.POST("/penalties/run", arrearsHandler.RunPenalties)
	arrearsRoutes.GET("/penalties", arrearsHandler.ListPenalties)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(propertyRoutes)
	r.Register(tenantRoutes)
	r.Register(leaseRoutes)
	r.Register(billingRoutes)
	r.Register(paymentRoutes)
	r.Register(arrearsRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Background reservation expiry sweep
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	if cfg.Reservation.SweepEnabled {
		go runReservationSweep(sweepCtx, reservationService, cfg.Reservation.SweepInterval, log)
		log.Info("Reservation expiry sweep enabled",
			zap.Duration("interval", cfg.Reservation.SweepInterval),
		)
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// runReservationSweep expires overdue reservations on a fixed interval until
// the context is cancelled
func runReservationSweep(ctx context.Context, svc *propertyapp.ReservationService, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := svc.ExpireNow(ctx)
			if err != nil {
				log.Warn("Reservation sweep failed", zap.Error(err))
				continue
			}
			if result.Expired > 0 {
				log.Info("Reservations expired",
					zap.Int("expired", result.Expired),
					zap.Int("freed_premises", len(result.Freed)),
				)
			}
		}
	}
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
