package webserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/present"
	"github.com/tubetale/tubetale/src/reports"
	"github.com/tubetale/tubetale/src/ui"
	"github.com/tubetale/tubetale/src/web/config"
	"github.com/tubetale/tubetale/src/web/data"
)

// Deps is everything the handlers need, wired once at startup.
type Deps struct {
	Client     *analytics.Client
	Controller *ui.Controller
	Presenter  *present.Presenter
	Cache      *data.ReportCache
	Log        *logrus.Logger
}

// New builds the HTTP router: CORS, rate limiting, the three analysis
// endpoints, UI state endpoints and PDF export.
func New(cfg config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Every submission gets an ID it can be traced by in the logs.
	r.Use(func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := NewHandler(deps)
	exp := NewExport(reports.NewGenerator(), deps.Log)

	limiter := NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	api := r.Group("/api")
	api.Use(RateLimitMiddleware(limiter))
	{
		api.POST("/analyze-channel", h.AnalyzeChannel)
		api.POST("/run-battle", h.RunBattle)
		api.POST("/analyze-truth", h.AnalyzeTruth)
		api.POST("/reset", h.Reset)
		api.GET("/state", h.State)

		api.POST("/export/solo", exp.Solo)
		api.POST("/export/battle", exp.Battle)
		api.POST("/export/truth", exp.Truth)
	}

	return r
}
