package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Fullname     string        `bson:"fullname" json:"fullname"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash" json:"-"` // never expose
	Role         Role          `bson:"role" json:"role"`

	SavedProperties []bson.ObjectID `bson:"savedProperties,omitempty" json:"savedProperties,omitempty"`

	EmailVerificationString string `bson:"emailVerificationString" json:"-"`
	EmailVerified           bool   `bson:"emailVerified" json:"emailVerified"`

	Mobile                   string `bson:"mobile,omitempty" json:"mobile,omitempty"`
	MobileVerificationString string `bson:"mobileVerificationString" json:"-"`
	MobileVerified           bool   `bson:"mobileVerified" json:"mobileVerified"`

	ShareEmailWhenListing bool `bson:"shareEmailWhenListing" json:"shareEmailWhenListing"`

	// Single refresh-token slot. Empty means no active session; logging in
	// anywhere overwrites it, which invalidates any prior session.
	RefreshToken string `bson:"refreshToken,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
