package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/dto"
	"github.com/Bhavishya0149/Real-Real-Estate/middleware"
	"github.com/Bhavishya0149/Real-Real-Estate/models"
	"github.com/Bhavishya0149/Real-Real-Estate/services"
	"github.com/Bhavishya0149/Real-Real-Estate/utils"
)

func CreateInquiry(inquiries *services.InquiryService, properties services.PropertyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateInquiryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		propertyID, err := bson.ObjectIDFromHex(body.PropertyID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}
		property, err := properties.FindByID(c.Request.Context(), propertyID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		buyer := middleware.CurrentUser(c)
		inquiry, err := inquiries.Create(c.Request.Context(), buyer.ID, property, body.Message)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, inquiry)
	}
}

// GetInquiriesForProperty runs behind VerifyOwnerOrAdmin, so only the
// listing's owner or an admin sees them.
func GetInquiriesForProperty(inquiries services.InquiryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		property := middleware.PropertyFromContext(c)

		list, err := inquiries.FindByProperty(c.Request.Context(), property.ID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetUserInquiries returns the inquiries the acting account sent.
func GetUserInquiries(inquiries services.InquiryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		list, err := inquiries.FindByBuyer(c.Request.Context(), user.ID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// DeleteInquiry lets the buyer withdraw their own inquiry; admins may
// delete any.
func DeleteInquiry(inquiries services.InquiryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
			return
		}
		inquiry, err := inquiries.FindByID(c.Request.Context(), id)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if inquiry.Buyer != user.ID && !user.IsAdmin() {
			utils.RespondError(c, models.ErrForbidden)
			return
		}

		if err := inquiries.Delete(c.Request.Context(), id); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "inquiry deleted successfully"})
	}
}
