package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mzhdanova/autoservice/api"
	"github.com/mzhdanova/autoservice/config"
	"github.com/mzhdanova/autoservice/internal/service/auth"
	"github.com/mzhdanova/autoservice/internal/service/booking"
	"github.com/mzhdanova/autoservice/internal/service/catalog"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger, authSvc auth.AuthUseCase, catalogSvc catalog.CatalogUseCase, bookingSvc booking.BookingUseCase) error {
	router := newRouter(cfg, log, authSvc, catalogSvc, bookingSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Info().Str("address", cfg.HTTP.Address).Msg("http server started")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, log zerolog.Logger, authSvc auth.AuthUseCase, catalogSvc catalog.CatalogUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.NewAuthHandler(authSvc, log).Register(router.Group("/"))

	services := router.Group("/services")
	api.NewServicesHandler(catalogSvc, log).Register(services)

	api.NewBookingHandler(bookingSvc, log).Register(services, api.AuthRequired(authSvc, log))

	if cfg.HTTP.SwaggerFile != "" {
		router.StaticFile("/docs/swagger.json", cfg.HTTP.SwaggerFile)
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/docs/swagger.json"),
		)))
	}

	return router
}

// requestLogger emits one structured access-log line per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
