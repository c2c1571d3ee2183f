package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Photo is owned by exactly one property; ObjectName is the key of the
// backing object in the external store.
type Photo struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Property   bson.ObjectID `bson:"property" json:"property"`
	URL        string        `bson:"url" json:"url"`
	ObjectName string        `bson:"objectName" json:"objectName"`
	UploadedAt time.Time     `bson:"uploadedAt" json:"uploadedAt"`
}

type Video struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Property   bson.ObjectID `bson:"property" json:"property"`
	URL        string        `bson:"url" json:"url"`
	ObjectName string        `bson:"objectName" json:"objectName"`
	Title      string        `bson:"title,omitempty" json:"title,omitempty"`
	Duration   int64         `bson:"duration,omitempty" json:"duration,omitempty"` // seconds
	SizeBytes  int64         `bson:"size,omitempty" json:"size,omitempty"`
	UploadedBy bson.ObjectID `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}
