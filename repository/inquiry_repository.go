package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
)

type InquiryRepository struct {
	col *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{col: db.Collection("inquiries")}
}

func (r *InquiryRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

// FindLatest returns the most recent inquiry for a (buyer, property) pair,
// or nil when there has never been one.
func (r *InquiryRepository) FindLatest(ctx context.Context, buyer, property bson.ObjectID) (*models.Inquiry, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var inquiry models.Inquiry
	err := r.col.FindOne(ctx, bson.M{"buyer": buyer, "property": property}, opts).Decode(&inquiry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepository) FindByProperty(ctx context.Context, propertyID bson.ObjectID) ([]models.Inquiry, error) {
	return r.find(ctx, bson.M{"property": propertyID})
}

func (r *InquiryRepository) FindByBuyer(ctx context.Context, buyerID bson.ObjectID) ([]models.Inquiry, error) {
	return r.find(ctx, bson.M{"buyer": buyerID})
}

func (r *InquiryRepository) find(ctx context.Context, filter bson.M) ([]models.Inquiry, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	inquiries := make([]models.Inquiry, 0)
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID.IsZero() {
		inquiry.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, inquiry)
	return err
}

func (r *InquiryRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
