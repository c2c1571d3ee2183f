package middleware

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
	"github.com/Bhavishya0149/Real-Real-Estate/services"
	"github.com/Bhavishya0149/Real-Real-Estate/utils"
)

const propertyContextKey = "authProperty"

// VerifyOwnerOrAdmin loads the property addressed by the route and allows
// the request when the acting account owns it or is an admin. Runs after
// Auth; pure predicate, never writes.
func VerifyOwnerOrAdmin(properties services.PropertyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.AbortError(c, models.ErrUnauthorized)
			return
		}

		idHex := c.Param("id")
		if idHex == "" {
			idHex = c.Param("propertyId")
		}
		propertyID, err := bson.ObjectIDFromHex(idHex)
		if err != nil {
			utils.AbortError(c, models.NewAPIError(400, "invalid property id"))
			return
		}

		property, err := properties.FindByID(c.Request.Context(), propertyID)
		if err != nil {
			utils.AbortError(c, err)
			return
		}

		if property.Owner != user.ID && !user.IsAdmin() {
			utils.AbortError(c, models.ErrForbidden)
			return
		}

		c.Set(propertyContextKey, property)
		c.Next()
	}
}

// PropertyFromContext returns the property VerifyOwnerOrAdmin loaded, so
// handlers behind it skip a second lookup.
func PropertyFromContext(c *gin.Context) *models.Property {
	v, ok := c.Get(propertyContextKey)
	if !ok {
		return nil
	}
	property, _ := v.(*models.Property)
	return property
}
