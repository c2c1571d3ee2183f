package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/config"
	"github.com/Bhavishya0149/Real-Real-Estate/models"
	"github.com/Bhavishya0149/Real-Real-Estate/services"
	"github.com/Bhavishya0149/Real-Real-Estate/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUserStore serves FindByID lookups; the session endpoints under test
// never reach the other methods.
type stubUserStore struct {
	users map[bson.ObjectID]*models.User
}

func (s *stubUserStore) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserStore) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, models.ErrUserNotFound
}

func (s *stubUserStore) FindByEmailVerification(context.Context, string) (*models.User, error) {
	return nil, models.ErrUserNotFound
}

func (s *stubUserStore) FindByMobileVerification(context.Context, string) (*models.User, error) {
	return nil, models.ErrUserNotFound
}

func (s *stubUserStore) Create(context.Context, *models.User) error { return nil }
func (s *stubUserStore) Update(context.Context, *models.User) error { return nil }

func (s *stubUserStore) SetRefreshToken(context.Context, bson.ObjectID, string) error { return nil }

func (s *stubUserStore) SwapRefreshToken(context.Context, bson.ObjectID, string, string) (bool, error) {
	return false, nil
}

func (s *stubUserStore) AddSavedProperty(context.Context, bson.ObjectID, bson.ObjectID) error {
	return nil
}

func (s *stubUserStore) RemoveSavedProperty(context.Context, bson.ObjectID, bson.ObjectID) error {
	return nil
}

func authFixture(t *testing.T) (*services.SessionService, *models.User) {
	t.Helper()

	cfg := &config.Config{
		AccessTokenSecret:  "access-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenSecret: "refresh-secret",
		RefreshTokenTTL:    24 * time.Hour,
	}
	user := &models.User{
		ID:       bson.NewObjectID(),
		Fullname: "Asha Rao",
		Email:    "asha@example.com",
		Role:     models.RoleUser,
	}
	users := &stubUserStore{users: map[bson.ObjectID]*models.User{user.ID: user}}
	return services.NewSessionService(users, cfg), user
}

func whoamiRouter(sessions *services.SessionService, allowRefresh bool) *gin.Engine {
	r := gin.New()
	r.GET("/whoami", Auth(sessions, allowRefresh), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID.Hex()})
	})
	return r
}

func TestAuthBearerHeader(t *testing.T) {
	sessions, user := authFixture(t)
	r := whoamiRouter(sessions, false)

	token, err := utils.GenerateAccessToken(user, "access-secret", 15*time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.Hex())
}

func TestAuthAccessCookie(t *testing.T) {
	sessions, user := authFixture(t)
	r := whoamiRouter(sessions, false)

	token, err := utils.GenerateAccessToken(user, "access-secret", 15*time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMissingToken(t *testing.T) {
	sessions, _ := authFixture(t)
	r := whoamiRouter(sessions, false)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	sessions, user := authFixture(t)
	r := whoamiRouter(sessions, false)

	token, err := utils.GenerateAccessToken(user, "access-secret", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// The refresh fallback only applies on gates that opt in, and only when the
// presented token matches the stored slot.
func TestAuthRefreshFallback(t *testing.T) {
	sessions, user := authFixture(t)

	refresh, err := utils.GenerateRefreshToken(user, "refresh-secret", 24*time.Hour)
	require.NoError(t, err)
	user.RefreshToken = refresh

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: refresh})

	w := httptest.NewRecorder()
	whoamiRouter(sessions, true).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	whoamiRouter(sessions, false).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRefreshFallbackRejectsRevoked(t *testing.T) {
	sessions, user := authFixture(t)

	refresh, err := utils.GenerateRefreshToken(user, "refresh-secret", 24*time.Hour)
	require.NoError(t, err)
	user.RefreshToken = "" // logged out

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: refresh})
	w := httptest.NewRecorder()
	whoamiRouter(sessions, true).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
