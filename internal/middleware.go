package internal

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const cookieName = "nightrun_admin"

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func sessionFromCookie(c *gin.Context, secret string) (*claims, bool) {
	tokenStr, err := c.Cookie(cookieName)
	if err != nil || tokenStr == "" {
		return nil, false
	}
	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, false
	}
	cl, ok := tok.Claims.(*claims)
	return cl, ok
}

// Auth gates admin-only routes. There is a single admin role, so a valid
// session is all it takes.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl, ok := sessionFromCookie(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized"})
			return
		}
		c.Set("username", cl.Username)
		c.Next()
	}
}

func adminName(c *gin.Context) string {
	v, _ := c.Get("username")
	s, _ := v.(string)
	return s
}
