package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/opstrack/forms-go/internal/api/routes"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r
}
