package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Inquiry struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Property  bson.ObjectID `bson:"property" json:"property"`
	Buyer     bson.ObjectID `bson:"buyer" json:"buyer"`
	Seller    bson.ObjectID `bson:"seller" json:"seller"`
	Message   string        `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}
