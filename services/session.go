package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/config"
	"github.com/Bhavishya0149/Real-Real-Estate/models"
	"github.com/Bhavishya0149/Real-Real-Estate/utils"
)

// SessionService issues, rotates and revokes token pairs. One refresh token
// per account: the stored slot is the only revocation handle.
type SessionService struct {
	Users UserStore
	Cfg   *config.Config
}

func NewSessionService(users UserStore, cfg *config.Config) *SessionService {
	return &SessionService{Users: users, Cfg: cfg}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Login authenticates credentials and mints a fresh pair. Unknown email and
// wrong password return the same error so callers cannot enumerate accounts.
// The new refresh token overwrites whatever was in the slot: logging in on a
// second device logs out the first.
func (s *SessionService) Login(ctx context.Context, email, password string) (*TokenPair, *models.User, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, models.ErrInvalidCredentials
	}
	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, nil, models.ErrInvalidCredentials
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Users.SetRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Refresh verifies the presented refresh token, requires it to byte-equal
// the stored slot, and rotates. A rotated-out token stays rejected forever
// even before its expiry. The swap is conditional on the old value, so of
// two concurrent refreshes with the same token only one succeeds.
func (s *SessionService) Refresh(ctx context.Context, presented string) (*TokenPair, error) {
	claims, err := utils.ValidateToken(presented, s.Cfg.RefreshTokenSecret)
	if err != nil {
		return nil, models.ErrInvalidToken
	}

	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, models.ErrInvalidToken
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, models.ErrUnauthorized
	}
	if user.RefreshToken != presented {
		return nil, models.ErrRefreshMismatch
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return nil, err
	}
	swapped, err := s.Users.SwapRefreshToken(ctx, user.ID, presented, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !swapped {
		// Lost the rotation race or the slot was cleared in between.
		return nil, models.ErrRefreshMismatch
	}
	return pair, nil
}

// VerifyRefresh checks a refresh token against the stored slot without
// rotating it. Used by the auth gate for refresh-tolerant routes (logout).
func (s *SessionService) VerifyRefresh(ctx context.Context, presented string) (*models.User, error) {
	claims, err := utils.ValidateToken(presented, s.Cfg.RefreshTokenSecret)
	if err != nil {
		return nil, models.ErrInvalidToken
	}
	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, models.ErrInvalidToken
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, models.ErrUnauthorized
	}
	if user.RefreshToken != presented {
		return nil, models.ErrRefreshMismatch
	}
	return user, nil
}

// Logout clears the refresh slot. Idempotent: logging out twice is fine.
func (s *SessionService) Logout(ctx context.Context, userID bson.ObjectID) error {
	return s.Users.SetRefreshToken(ctx, userID, "")
}

func (s *SessionService) mintPair(user *models.User) (*TokenPair, error) {
	access, err := utils.GenerateAccessToken(user, s.Cfg.AccessTokenSecret, s.Cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateRefreshToken(user, s.Cfg.RefreshTokenSecret, s.Cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
