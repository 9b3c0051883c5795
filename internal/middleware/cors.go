package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns a configured CORS middleware. Preflight OPTIONS requests get
// an empty 200 response with the permissive headers — the storefront calls
// this service cross-origin and its client checks for 200.
func CORS(origins, methods, headers []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:              origins,
		AllowMethods:              methods,
		AllowHeaders:              headers,
		OptionsResponseStatusCode: http.StatusOK,
	})
}
