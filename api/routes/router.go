// api/routes/router.go
package routes

import (
	"errors"
	"net/http"
	"time"

	_ "tripbook/docs"
	"tripbook/internal/bookings"
	"tripbook/internal/invoices"
	"tripbook/internal/notifications"
	"tripbook/internal/shared/config"
	"tripbook/internal/shared/database"
	"tripbook/internal/shared/utils/response"
	"tripbook/pkg/cache"
	"tripbook/pkg/logger"
	"tripbook/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const invoiceURLPrefix = "invoices"

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher notifications.Publisher
	log       *logger.Logger

	// Overridable for tests; built from config when nil.
	repo     bookings.Repository
	launcher invoices.Launcher
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher, log *logger.Logger) *Router {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
		log:       log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) error {
	r.setupHealthRoutes(engine)

	bookingService, err := r.setupBookingRoutes(engine)
	if err != nil {
		return err
	}

	if err := r.setupInvoiceRoutes(engine, bookingService); err != nil {
		return err
	}

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(func(c *gin.Context) {
		response.RespondError(c, http.StatusNotFound, "route not found")
	})

	return nil
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "tripbook",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "tripbook",
			"store":     r.config.StoreDriver,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupBookingRoutes wires the booking store, cache and publisher
func (r *Router) setupBookingRoutes(engine *gin.Engine) (bookings.Service, error) {
	repo, err := r.bookingRepository()
	if err != nil {
		return nil, err
	}

	bookingService := bookings.NewService(repo, r.log)
	if r.db.Redis != nil {
		bookingService.SetCacheService(cache.NewService(r.db.Redis))
	}
	bookingService.SetPublisher(r.publisher)

	bookings.SetupBookingRoutes(engine, bookings.NewController(bookingService))
	return bookingService, nil
}

func (r *Router) bookingRepository() (bookings.Repository, error) {
	if r.repo != nil {
		return r.repo, nil
	}
	switch {
	case r.config.UsesPostgres() && r.db.PostgreSQL != nil:
		return bookings.NewRepository(r.db.PostgreSQL), nil
	case !r.config.UsesPostgres() && r.db.MongoDB != nil:
		return bookings.NewMongoRepository(r.db.BookingCollection(r.config)), nil
	default:
		return nil, errors.New("no booking store connected")
	}
}

// setupInvoiceRoutes wires the renderer, image storage and static serving
func (r *Router) setupInvoiceRoutes(engine *gin.Engine, bookingService bookings.Service) error {
	store, err := storage.New(storage.Config{
		Driver:          r.config.Storage.Driver,
		Dir:             r.config.Invoice.OutputDir,
		BaseURL:         r.config.Invoice.PublicBaseURL,
		URLPrefix:       invoiceURLPrefix,
		Region:          r.config.Storage.Region,
		AccessKeyID:     r.config.Storage.AccessKeyID,
		SecretAccessKey: r.config.Storage.SecretAccessKey,
		Bucket:          r.config.Storage.S3Bucket,
		Prefix:          r.config.Storage.S3Prefix,
	})
	if err != nil {
		return err
	}

	if _, ok := store.(*storage.LocalStore); ok {
		engine.Static("/"+invoiceURLPrefix, r.config.Invoice.OutputDir)
	}

	launcher := r.launcher
	if launcher == nil {
		launcher = invoices.NewChromeLauncher(r.config.Invoice.ChromePath)
	}

	invoiceService := invoices.NewService(invoices.Config{
		TemplatePath:  r.config.Invoice.TemplatePath,
		ShareBaseURL:  r.config.Invoice.ShareBaseURL,
		RenderTimeout: r.config.Invoice.RenderTimeout,
	}, launcher, store, bookingService, r.log)
	invoiceService.SetPublisher(r.publisher)

	invoices.SetupInvoiceRoutes(engine, invoices.NewController(invoiceService))
	return nil
}
