package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
)

type PhotoRepository struct {
	col *mongo.Collection
}

func NewPhotoRepository(db *mongo.Database) *PhotoRepository {
	return &PhotoRepository{col: db.Collection("photos")}
}

func (r *PhotoRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Photo, error) {
	var photo models.Photo
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&photo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) FindByProperty(ctx context.Context, propertyID bson.ObjectID) ([]models.Photo, error) {
	cursor, err := r.col.Find(ctx, bson.M{"property": propertyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	photos := make([]models.Photo, 0)
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	if photo.ID.IsZero() {
		photo.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, photo)
	return err
}

func (r *PhotoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *PhotoRepository) DeleteByProperty(ctx context.Context, propertyID bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"property": propertyID})
	return err
}

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{col: db.Collection("videos")}
}

func (r *VideoRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Video, error) {
	var video models.Video
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&video); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) FindByProperty(ctx context.Context, propertyID bson.ObjectID) ([]models.Video, error) {
	cursor, err := r.col.Find(ctx, bson.M{"property": propertyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := make([]models.Video, 0)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	if video.ID.IsZero() {
		video.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, video)
	return err
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *VideoRepository) DeleteByProperty(ctx context.Context, propertyID bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"property": propertyID})
	return err
}

type AddressRepository struct {
	col *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{col: db.Collection("addresses")}
}

func (r *AddressRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Address, error) {
	var address models.Address
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&address); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewAPIError(404, "address not found")
		}
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) Create(ctx context.Context, address *models.Address) error {
	if address.ID.IsZero() {
		address.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, address)
	return err
}

func (r *AddressRepository) Update(ctx context.Context, address *models.Address) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": address.ID}, address)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.NewAPIError(404, "address not found")
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
