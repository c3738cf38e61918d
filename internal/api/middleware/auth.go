package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opstrack/forms-go/pkg/response"
	"github.com/opstrack/forms-go/pkg/utils"
)

// Admin restricts a route to administrator tokens. Form and field
// administration goes through this guard; submission routes do not.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsAdminFromContext(c) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
