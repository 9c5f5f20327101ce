package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/omoluabi/heartville/internal/api/handlers"
	"github.com/omoluabi/heartville/internal/utils"
)

type Deps struct {
	Profile   *handlers.ProfileHandler
	Match     *handlers.MatchHandler
	Insights  *handlers.InsightsHandler
	Catalogue *handlers.CatalogueHandler
	WS        *handlers.WSHandler

	// StaticDir holds the marketing page; GET requests that match no route
	// and look like client-side navigation fall back to its index.html.
	StaticDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/profiles", d.Profile.List)
	api.GET("/profiles/:id", d.Profile.Get)
	api.GET("/recommendations", d.Profile.Recommendations)
	api.GET("/matches", d.Match.List)
	api.POST("/matches", d.Match.Create)
	api.POST("/rewind", d.Match.Rewind)
	api.GET("/messages", d.Match.Messages)
	api.GET("/insights", d.Insights.Summary)
	api.GET("/catalogue", d.Catalogue.Album)
	api.GET("/tracks/search", d.Catalogue.SearchTracks)

	r.GET("/ws", d.WS.Connect)

	r.NoRoute(staticFallback(d.StaticDir))
}

// staticFallback serves assets from the static dir and routes every other
// HTML-accepting GET to index.html so client-side routing keeps working.
// Everything else is a JSON 404.
func staticFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method == http.MethodGet && staticDir != "" &&
			!strings.HasPrefix(path, "/api") && !strings.HasPrefix(path, "/ws") {
			if strings.Contains(path, ".") {
				file := filepath.Join(staticDir, filepath.Clean("/"+path))
				if info, err := os.Stat(file); err == nil && !info.IsDir() {
					c.File(file)
					return
				}
			} else if acceptsHTML(c.GetHeader("Accept")) {
				index := filepath.Join(staticDir, "index.html")
				if _, err := os.Stat(index); err == nil {
					c.File(index)
					return
				}
			}
		}

		c.JSON(http.StatusNotFound, handlers.APIError{
			Code:    utils.CodeNotFound,
			Message: "not found",
		})
	}
}

func acceptsHTML(accept string) bool {
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}
