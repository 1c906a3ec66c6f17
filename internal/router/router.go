package router

import (
	"net/http"
	"time"

	"menuhub/internal/llm"
	"menuhub/internal/menu"
	"menuhub/internal/middleware"
	"menuhub/internal/scholar"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Log            *zap.Logger
	CORSOrigins    []string
	RequestTimeout time.Duration

	Menus    *menu.Handler
	Stories  *llm.Handler
	Articles *scholar.Handler
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.Recovery(d.Log),
		corsMiddleware(d.CORSOrigins),
		middleware.Timeout(d.RequestTimeout),
	)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── MENUS ─────────────────────────
	if d.Menus != nil {
		d.Menus.Register(r.Group("/menus"))
	}

	// ───────────────────────── UTILITIES ─────────────────────────
	if d.Stories != nil {
		r.GET("/word2story", d.Stories.Word2Story)
	}
	if d.Articles != nil {
		r.GET("/content2articles", d.Articles.Content2Articles)
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
