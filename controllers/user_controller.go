package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bhavishya0149/Real-Real-Estate/config"
	"github.com/Bhavishya0149/Real-Real-Estate/dto"
	"github.com/Bhavishya0149/Real-Real-Estate/middleware"
	"github.com/Bhavishya0149/Real-Real-Estate/models"
	"github.com/Bhavishya0149/Real-Real-Estate/services"
	"github.com/Bhavishya0149/Real-Real-Estate/utils"
)

// Register creates an account. The single address matching ADMIN_EMAIL
// becomes admin, everyone else is a regular user. Email delivery failure
// downgrades the message but the account is still created.
func Register(users services.UserStore, mailer utils.Mailer, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RegisterUserDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		fullname := strings.TrimSpace(body.Fullname)
		email := strings.ToLower(strings.TrimSpace(body.Email))
		if fullname == "" || email == "" || strings.TrimSpace(body.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fullname, email and password are required"})
			return
		}

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		role := models.RoleUser
		if email == cfg.AdminEmail {
			role = models.RoleAdmin
		}

		now := time.Now().UTC()
		user := models.User{
			Fullname:                 fullname,
			Email:                    email,
			PasswordHash:             hash,
			Role:                     role,
			Mobile:                   strings.TrimSpace(body.Mobile),
			EmailVerificationString:  utils.RandomHexString(16),
			MobileVerificationString: utils.RandomHexString(16),
			ShareEmailWhenListing:    true,
			CreatedAt:                now,
			UpdatedAt:                now,
		}
		if err := users.Create(c.Request.Context(), &user); err != nil {
			utils.RespondError(c, err)
			return
		}

		message := "user created successfully"
		if role == models.RoleAdmin {
			message = "admin created successfully"
		}
		html := fmt.Sprintf(
			`<h2>Welcome, %s!</h2><p>Click the link below to verify your email address:</p>`+
				`<a href="%s/verify-email/%s">Verify Email</a>`+
				`<p>If you did not create this account, please ignore this email.</p>`,
			user.Fullname, cfg.ClientURL, user.EmailVerificationString)
		if err := mailer.Send(user.Email, "Verify your account", html); err != nil {
			log.Printf("verification email to %s failed: %v", user.Email, err)
			message = "email service unavailable"
		}

		c.JSON(http.StatusCreated, gin.H{
			"fullname": user.Fullname,
			"email":    user.Email,
			"message":  message,
		})
	}
}

func GetCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.CurrentUser(c))
	}
}

// UpdateUser changes profile fields after re-checking the current password.
// A new email or mobile resets the matching verified flag and rotates its
// verification string; the password hash is recomputed only when a new
// password is supplied.
func UpdateUser(users services.UserStore, mailer utils.Mailer, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateUserDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		acting := middleware.CurrentUser(c)
		user, err := users.FindByID(c.Request.Context(), acting.ID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if err := utils.CheckPassword(user.PasswordHash, body.Password); err != nil {
			utils.RespondError(c, models.NewAPIError(401, "incorrect password"))
			return
		}

		if body.Fullname != nil {
			if name := strings.TrimSpace(*body.Fullname); name != "" {
				user.Fullname = name
			}
		}

		if body.NewEmail != nil {
			newEmail := strings.ToLower(strings.TrimSpace(*body.NewEmail))
			if newEmail != "" && newEmail != user.Email {
				user.Email = newEmail
				user.EmailVerified = false
				user.EmailVerificationString = utils.RandomHexString(16)
				html := fmt.Sprintf(
					`<p>Confirm your new email address:</p><a href="%s/verify-email/%s">Verify Email</a>`,
					cfg.ClientURL, user.EmailVerificationString)
				if err := mailer.Send(newEmail, "Verify your new email", html); err != nil {
					log.Printf("verification email to %s failed: %v", newEmail, err)
				}
			}
		}

		if body.Mobile != nil {
			mobile := strings.TrimSpace(*body.Mobile)
			if mobile != "" && mobile != user.Mobile {
				user.Mobile = mobile
				user.MobileVerified = false
				user.MobileVerificationString = utils.RandomHexString(16)
			}
		}

		if body.NewPassword != nil {
			if pw := strings.TrimSpace(*body.NewPassword); pw != "" {
				hash, err := utils.HashPassword(pw)
				if err != nil {
					utils.RespondError(c, err)
					return
				}
				user.PasswordHash = hash
			}
		}

		if err := users.Update(c.Request.Context(), user); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func ToggleEmailSharing(users services.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		user.ShareEmailWhenListing = !user.ShareEmailWhenListing
		if err := users.Update(c.Request.Context(), user); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func VerifyEmail(users services.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByEmailVerification(c.Request.Context(), c.Param("verificationString"))
		if err != nil {
			utils.RespondError(c, models.NewAPIError(400, "invalid verification string"))
			return
		}
		user.EmailVerified = true
		if err := users.Update(c.Request.Context(), user); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "email verified successfully"})
	}
}

func VerifyMobile(users services.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByMobileVerification(c.Request.Context(), c.Param("verificationString"))
		if err != nil {
			utils.RespondError(c, models.NewAPIError(400, "invalid verification string"))
			return
		}
		user.MobileVerified = true
		if err := users.Update(c.Request.Context(), user); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "mobile verified successfully"})
	}
}

func GetSavedProperties(properties services.PropertyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		saved := make([]models.Property, 0, len(user.SavedProperties))
		for _, id := range user.SavedProperties {
			property, err := properties.FindByID(c.Request.Context(), id)
			if err != nil {
				continue // saved reference to a since-deleted listing
			}
			saved = append(saved, *property)
		}
		c.JSON(http.StatusOK, saved)
	}
}
