package rest

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abdidvp/growthcheck/internal/application"
)

// Handler serves the evaluation API over HTTP.
type Handler struct {
	dataDir  string
	evaluate *application.EvaluateService
	profiles *application.ProfileService
	logger   *zap.Logger
	now      func() time.Time
}

func NewHandler(dataDir string, evaluate *application.EvaluateService, profiles *application.ProfileService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		dataDir:  dataDir,
		evaluate: evaluate,
		profiles: profiles,
		logger:   logger,
		now:      time.Now,
	}
}

// SetupRouter builds the gin engine with every route registered.
func SetupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(RecoveryMiddleware(h.logger))
	router.Use(LoggerMiddleware(h.logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/evaluate", h.Evaluate)
		v1.GET("/history", h.History)
		v1.DELETE("/history", h.ClearHistory)
		v1.GET("/profile", h.Profile)
		v1.GET("/calendar/today", h.Today)
	}

	return router
}

func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("stack", string(debug.Stack())),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
