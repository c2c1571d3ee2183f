package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "Apartment"
	PropertyHouse     PropertyType = "House"
	PropertyVilla     PropertyType = "Villa"
	PropertyPlot      PropertyType = "Plot"
	PropertyStudio    PropertyType = "Studio"
	PropertyOther     PropertyType = "Other"
)

type PropertyStatus string

const (
	StatusForSale PropertyStatus = "For Sale"
	StatusForRent PropertyStatus = "For Rent"
	StatusSold    PropertyStatus = "Sold"
)

// GeoPoint is a GeoJSON point, coordinates are [longitude, latitude].
// The 2dsphere index lives on the properties collection.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

type Property struct {
	ID           bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title        string         `bson:"title" json:"title"`
	Slug         string         `bson:"slug" json:"slug"`
	Description  string         `bson:"description" json:"description"`
	PropertyType PropertyType   `bson:"propertyType" json:"propertyType"`
	Status       PropertyStatus `bson:"status" json:"status"`

	Price           float64 `bson:"price" json:"price"`
	SecurityDeposit float64 `bson:"securityDeposit" json:"securityDeposit"`
	Area            float64 `bson:"area" json:"area"`

	Address   bson.ObjectID `bson:"address" json:"address"`
	Amenities []string      `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Location  GeoPoint      `bson:"location" json:"location"`

	Owner  bson.ObjectID   `bson:"owner" json:"owner"`
	Photos []bson.ObjectID `bson:"photos,omitempty" json:"photos,omitempty"`
	Videos []bson.ObjectID `bson:"videos,omitempty" json:"videos,omitempty"`

	ViewCount  int64 `bson:"viewCount" json:"viewCount"`
	ListedFlag bool  `bson:"listedFlag" json:"listedFlag"`
	IsVerified bool  `bson:"isVerified" json:"isVerified"`

	ListedAt  time.Time `bson:"listedAt" json:"listedAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type Address struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Street    string        `bson:"street,omitempty" json:"street,omitempty"`
	City      string        `bson:"city,omitempty" json:"city,omitempty"`
	State     string        `bson:"state,omitempty" json:"state,omitempty"`
	PinCode   int           `bson:"pinCode,omitempty" json:"pinCode,omitempty"`
	Country   string        `bson:"country,omitempty" json:"country,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}
