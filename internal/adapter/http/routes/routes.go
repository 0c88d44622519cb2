package routes

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/unrolled/secure"

	_ "construction_console/docs"
	request "construction_console/internal/adapter/http/dto/request"
	"construction_console/internal/adapter/http/handlers"
	"construction_console/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Estimates   *handlers.EstimateHandler
	Items       *handlers.ItemHandler
	Suggestions *handlers.SuggestionHandler
	Customers   *handlers.CustomerHandler
	FollowUps   *handlers.FollowUpHandler
	Company     *handlers.CompanyHandler
	Reports     *handlers.ReportHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(cfg *config.Config, h Handlers) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := request.RegisterValidators(v, cfg.PhoneRegion); err != nil {
			return nil, err
		}
	}

	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.Estimates)
	addCatalogRoutes(v1, h.Items, h.Suggestions, h.Customers, h.FollowUps)
	addCompanyRoutes(v1, h.Company)
	addReportRoutes(v1, h.Reports)
	return router, nil
}

// Run serves the router on cfg.AppAddr until ctx ends, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	router, err := NewRouter(cfg, h)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.GetLogger().WithField("addr", cfg.AppAddr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		config.GetLogger().WithField("path", c.Request.URL.Path).Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(secureHeaders(cfg))
	if h := corsMiddleware(cfg); h != nil {
		router.Use(h)
	}
}

func secureHeaders(cfg *config.Config) gin.HandlerFunc {
	sm := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        cfg.IsProduction(),
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !cfg.IsProduction(),
	})
	return func(c *gin.Context) {
		if err := sm.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		// secure already wrote a redirect
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
		}
	}
}

// corsMiddleware allows every origin outside production. In production only the listed
// origins are allowed, and none when the list is empty.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	origins := make([]string, 0, len(cfg.CORSAllowedOrigins))
	for _, o := range cfg.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" && o != "*" {
			origins = append(origins, o)
		}
	}
	if cfg.IsProduction() {
		if len(origins) == 0 {
			return nil
		}
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddExposeHeaders("Content-Disposition")
	return cors.New(corsConfig)
}
