package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
)

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection("properties")}
}

func (r *PropertyRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Property, error) {
	var property models.Property
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&property); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := make([]models.Property, 0)
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	if property.ID.IsZero() {
		property.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, property)
	return err
}

func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	property.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": property.ID}, property)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// PushPhotos appends photo references only while the result stays within
// limit. The $expr guard closes the concurrent read-check-append race: the
// document is matched, counted and pushed in one storage call.
func (r *PropertyRepository) PushPhotos(ctx context.Context, id bson.ObjectID, photoIDs []bson.ObjectID, limit int) error {
	if len(photoIDs) == 0 {
		return nil
	}
	filter := bson.M{
		"_id": id,
		"$expr": bson.M{"$lte": bson.A{
			bson.M{"$size": bson.M{"$ifNull": bson.A{"$photos", bson.A{}}}},
			limit - len(photoIDs),
		}},
	}
	update := bson.M{
		"$push": bson.M{"photos": bson.M{"$each": photoIDs}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.NewQuotaError("photos", limit)
	}
	return nil
}

func (r *PropertyRepository) PushVideo(ctx context.Context, id, videoID bson.ObjectID, limit int) error {
	filter := bson.M{
		"_id": id,
		"$expr": bson.M{"$lt": bson.A{
			bson.M{"$size": bson.M{"$ifNull": bson.A{"$videos", bson.A{}}}},
			limit,
		}},
	}
	update := bson.M{
		"$push": bson.M{"videos": videoID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.NewQuotaError("videos", limit)
	}
	return nil
}

func (r *PropertyRepository) PullPhoto(ctx context.Context, id, photoID bson.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$pull": bson.M{"photos": photoID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	return err
}

func (r *PropertyRepository) PullVideo(ctx context.Context, id, videoID bson.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	return err
}

func (r *PropertyRepository) IncrementViews(ctx context.Context, id bson.ObjectID) (int64, error) {
	var property models.Property
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"viewCount": 1}},
	).Decode(&property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, models.ErrPropertyNotFound
		}
		return 0, err
	}
	// FindOneAndUpdate returns the pre-update document by default.
	return property.ViewCount + 1, nil
}
