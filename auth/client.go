package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const clientTokenTTL = 30 * 24 * time.Hour

// POST /auth/client
//
// Issues a fresh client identity: a uuid plus a signed token the browser
// stores and sends on every cart request. One identity per browser scopes
// one durable cart record.
func CreateClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := uuid.NewString()

		token, err := issueClientToken(clientID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"client_id":  clientID,
			"token":      token,
			"expires_at": time.Now().Add(clientTokenTTL),
		})
	}
}

func issueClientToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"client_id": id,
		"exp":       time.Now().Add(clientTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
