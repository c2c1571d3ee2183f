package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
	"github.com/Bhavishya0149/Real-Real-Estate/services"
	"github.com/Bhavishya0149/Real-Real-Estate/utils"
)

const userContextKey = "authUser"

// Auth resolves the acting account from the access token in the
// "accessToken" cookie or the Authorization Bearer header and attaches it to
// the gin context. When allowRefresh is set (logout), a missing access token
// falls back to the refresh cookie, checked against the stored slot without
// rotating it.
func Auth(sessions *services.SessionService, allowRefresh bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessTokenFrom(c)

		if token == "" && allowRefresh {
			if refresh, err := c.Cookie("refreshToken"); err == nil && refresh != "" {
				user, err := sessions.VerifyRefresh(c.Request.Context(), refresh)
				if err != nil {
					utils.AbortError(c, models.ErrInvalidToken)
					return
				}
				c.Set(userContextKey, user)
				c.Next()
				return
			}
		}

		if token == "" {
			utils.AbortError(c, models.ErrUnauthorized)
			return
		}

		claims, err := utils.ValidateToken(token, sessions.Cfg.AccessTokenSecret)
		if err != nil {
			utils.AbortError(c, models.ErrInvalidToken)
			return
		}
		userID, err := bson.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.AbortError(c, models.ErrInvalidToken)
			return
		}
		user, err := sessions.Users.FindByID(c.Request.Context(), userID)
		if err != nil {
			utils.AbortError(c, models.ErrInvalidToken)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func accessTokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// CurrentUser returns the account the auth gate resolved, or nil on
// unprotected routes.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
