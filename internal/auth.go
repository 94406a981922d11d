package internal

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

func signSession(secret, username string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "nightrun",
		},
	})
	return tok.SignedString([]byte(secret))
}

// POST /api/login
func Login(store Store, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": "bad json"})
			return
		}
		if req.Username == "" || req.Password == "" {
			c.JSON(400, gin.H{"error": "fill all fields"})
			return
		}

		u, err := store.GetUserByUsername(c.Request.Context(), req.Username)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(req.Password)) != nil {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}

		s, err := signSession(secret, u.Username)
		if err != nil {
			c.JSON(500, gin.H{"error": "internal"})
			return
		}
		c.SetCookie(cookieName, s, int(sessionTTL.Seconds()), "/", "", secure, true)

		logAction(store, u.Username, "login", "success")
		c.JSON(200, gin.H{"success": true, "username": u.Username})
	}
}

// POST /api/logout — idempotent, clearing an absent cookie is fine.
func Logout(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(cookieName, "", -1, "/", "", secure, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /api/auth/check
func CheckAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl, ok := sessionFromCookie(c, secret)
		if !ok {
			c.JSON(200, gin.H{"authenticated": false})
			return
		}
		c.JSON(200, gin.H{"authenticated": true, "username": cl.Username})
	}
}
