package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
)

type stubPropertyStore struct {
	properties map[bson.ObjectID]*models.Property
}

func (s *stubPropertyStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Property, error) {
	property, ok := s.properties[id]
	if !ok {
		return nil, models.ErrPropertyNotFound
	}
	return property, nil
}

func (s *stubPropertyStore) FindAll(context.Context) ([]models.Property, error) { return nil, nil }
func (s *stubPropertyStore) Create(context.Context, *models.Property) error    { return nil }
func (s *stubPropertyStore) Update(context.Context, *models.Property) error    { return nil }
func (s *stubPropertyStore) Delete(context.Context, bson.ObjectID) error       { return nil }

func (s *stubPropertyStore) PushPhotos(context.Context, bson.ObjectID, []bson.ObjectID, int) error {
	return nil
}

func (s *stubPropertyStore) PushVideo(context.Context, bson.ObjectID, bson.ObjectID, int) error {
	return nil
}

func (s *stubPropertyStore) PullPhoto(context.Context, bson.ObjectID, bson.ObjectID) error {
	return nil
}

func (s *stubPropertyStore) PullVideo(context.Context, bson.ObjectID, bson.ObjectID) error {
	return nil
}

func (s *stubPropertyStore) IncrementViews(context.Context, bson.ObjectID) (int64, error) {
	return 0, nil
}

func ownerRouter(properties *stubPropertyStore, acting *models.User) *gin.Engine {
	r := gin.New()
	r.DELETE("/properties/:id",
		func(c *gin.Context) {
			if acting != nil {
				c.Set(userContextKey, acting)
			}
			c.Next()
		},
		VerifyOwnerOrAdmin(properties),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"slug": PropertyFromContext(c).Slug})
		})
	return r
}

func TestVerifyOwnerOrAdmin(t *testing.T) {
	owner := &models.User{ID: bson.NewObjectID(), Role: models.RoleUser}
	admin := &models.User{ID: bson.NewObjectID(), Role: models.RoleAdmin}
	stranger := &models.User{ID: bson.NewObjectID(), Role: models.RoleUser}

	property := &models.Property{
		ID:    bson.NewObjectID(),
		Slug:  "sea-view-apartment",
		Owner: owner.ID,
	}
	properties := &stubPropertyStore{
		properties: map[bson.ObjectID]*models.Property{property.ID: property},
	}

	tests := []struct {
		name   string
		acting *models.User
		target string
		want   int
	}{
		{"owner allowed", owner, property.ID.Hex(), http.StatusOK},
		{"admin allowed on foreign listing", admin, property.ID.Hex(), http.StatusOK},
		{"non-owner forbidden", stranger, property.ID.Hex(), http.StatusForbidden},
		{"unauthenticated", nil, property.ID.Hex(), http.StatusUnauthorized},
		{"unknown property", owner, bson.NewObjectID().Hex(), http.StatusNotFound},
		{"malformed id", owner, "not-an-id", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/properties/"+tt.target, nil)
			w := httptest.NewRecorder()
			ownerRouter(properties, tt.acting).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
