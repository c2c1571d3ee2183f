package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmailVerification(ctx context.Context, verification string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"emailVerificationString": verification})
}

func (r *UserRepository) FindByMobileVerification(ctx context.Context, verification string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"mobileVerificationString": verification})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, user)
	if err != nil && isDuplicateKey(err) {
		return models.ErrEmailTaken
	}
	return err
}

// Update replaces the full document, mirroring a loaded-then-saved entity.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// SetRefreshToken overwrites the refresh slot unconditionally. Login uses
// this: a new session always displaces the previous one.
func (r *UserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{"refreshToken": token, "updatedAt": time.Now().UTC()}}
	if token == "" {
		update = bson.M{
			"$unset": bson.M{"refreshToken": ""},
			"$set":   bson.M{"updatedAt": time.Now().UTC()},
		}
	}
	res, err := r.col.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// SwapRefreshToken rotates the slot only if it still holds old. Two
// concurrent refreshes with the same token race here; exactly one wins.
func (r *UserRepository) SwapRefreshToken(ctx context.Context, id bson.ObjectID, old, rotated string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "refreshToken": old},
		bson.M{"$set": bson.M{"refreshToken": rotated, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *UserRepository) AddSavedProperty(ctx context.Context, id, propertyID bson.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$addToSet": bson.M{"savedProperties": propertyID}})
	return err
}

func (r *UserRepository) RemoveSavedProperty(ctx context.Context, id, propertyID bson.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$pull": bson.M{"savedProperties": propertyID}})
	return err
}
