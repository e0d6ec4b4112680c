package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Greenoni119/k2.0/auth"
)

// SetupAuthRoutes registers client identity issuance.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/client", auth.CreateClient()) // POST /auth/client
	}
}
