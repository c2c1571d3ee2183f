// Package services holds the core business rules: sessions, media
// lifecycle and inquiry throttling. Storage is reached through the narrow
// interfaces below, implemented by package repository on MongoDB and by
// in-memory fakes in tests.
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
)

type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailVerification(ctx context.Context, verification string) (*models.User, error)
	FindByMobileVerification(ctx context.Context, verification string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	SwapRefreshToken(ctx context.Context, id bson.ObjectID, old, rotated string) (bool, error)
	AddSavedProperty(ctx context.Context, id, propertyID bson.ObjectID) error
	RemoveSavedProperty(ctx context.Context, id, propertyID bson.ObjectID) error
}

type PropertyStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Property, error)
	FindAll(ctx context.Context) ([]models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id bson.ObjectID) error
	PushPhotos(ctx context.Context, id bson.ObjectID, photoIDs []bson.ObjectID, limit int) error
	PushVideo(ctx context.Context, id, videoID bson.ObjectID, limit int) error
	PullPhoto(ctx context.Context, id, photoID bson.ObjectID) error
	PullVideo(ctx context.Context, id, videoID bson.ObjectID) error
	IncrementViews(ctx context.Context, id bson.ObjectID) (int64, error)
}

type PhotoStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Photo, error)
	FindByProperty(ctx context.Context, propertyID bson.ObjectID) ([]models.Photo, error)
	Create(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByProperty(ctx context.Context, propertyID bson.ObjectID) error
}

type VideoStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Video, error)
	FindByProperty(ctx context.Context, propertyID bson.ObjectID) ([]models.Video, error)
	Create(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByProperty(ctx context.Context, propertyID bson.ObjectID) error
}

type AddressStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Address, error)
	Create(ctx context.Context, address *models.Address) error
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type InquiryStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Inquiry, error)
	FindLatest(ctx context.Context, buyer, property bson.ObjectID) (*models.Inquiry, error)
	FindByProperty(ctx context.Context, propertyID bson.ObjectID) ([]models.Inquiry, error)
	FindByBuyer(ctx context.Context, buyerID bson.ObjectID) ([]models.Inquiry, error)
	Create(ctx context.Context, inquiry *models.Inquiry) error
	Delete(ctx context.Context, id bson.ObjectID) error
}
