package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS allows cross-origin calls from the configured hosts. An empty
// allow-list falls back to permissive mode for local development, with
// credentials disabled since a wildcard origin must not carry them.
func (m Middleware) CORS() gin.HandlerFunc {
	allowed := m.config.HTTPServer.AllowedHosts
	credentials := true
	if len(allowed) == 0 {
		allowed = []string{"*"}
		credentials = false
	}

	crs := cors.New(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: credentials,
		MaxAge:           300,
	})

	return func(c *gin.Context) {
		crs.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
