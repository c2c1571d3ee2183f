package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Bhavishya0149/Real-Real-Estate/config"
	"github.com/Bhavishya0149/Real-Real-Estate/dto"
	"github.com/Bhavishya0149/Real-Real-Estate/middleware"
	"github.com/Bhavishya0149/Real-Real-Estate/models"
	"github.com/Bhavishya0149/Real-Real-Estate/services"
	"github.com/Bhavishya0149/Real-Real-Estate/utils"
)

func Login(sessions *services.SessionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))
		pair, user, err := sessions.Login(c.Request.Context(), email, body.Password)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.SetAccessCookie(c, pair.AccessToken,
			int(cfg.AccessTokenTTL.Seconds()), cfg.CookieSecure, cfg.CookieDomain)
		utils.SetRefreshCookie(c, pair.RefreshToken,
			int(cfg.RefreshTokenTTL.Seconds()), cfg.CookieSecure, cfg.CookieDomain)
		c.JSON(http.StatusOK, gin.H{
			"accessToken": pair.AccessToken,
			"user": gin.H{
				"id":       user.ID,
				"fullname": user.Fullname,
				"email":    user.Email,
				"role":     user.Role,
			},
		})
	}
}

func Refresh(sessions *services.SessionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented, _ := c.Cookie("refreshToken")
		if presented == "" {
			var body dto.RefreshDTO
			if err := c.ShouldBindJSON(&body); err == nil {
				presented = body.RefreshToken
			}
		}
		if presented == "" {
			utils.RespondError(c, models.ErrRefreshMissing)
			return
		}

		pair, err := sessions.Refresh(c.Request.Context(), presented)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.SetAccessCookie(c, pair.AccessToken,
			int(cfg.AccessTokenTTL.Seconds()), cfg.CookieSecure, cfg.CookieDomain)
		utils.SetRefreshCookie(c, pair.RefreshToken,
			int(cfg.RefreshTokenTTL.Seconds()), cfg.CookieSecure, cfg.CookieDomain)
		c.JSON(http.StatusOK, gin.H{
			"accessToken":  pair.AccessToken,
			"refreshToken": pair.RefreshToken,
		})
	}
}

// Logout sits behind the refresh-tolerant auth gate, so a client whose
// access token already expired can still end its session.
func Logout(sessions *services.SessionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			utils.RespondError(c, models.ErrUnauthorized)
			return
		}

		if err := sessions.Logout(c.Request.Context(), user.ID); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.ClearAuthCookies(c, cfg.CookieSecure, cfg.CookieDomain)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
