package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the users collection. Username and email are kept
// unique by indexes created at startup.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Username     string             `bson:"username" json:"username"`
	Contact      string             `bson:"contact" json:"contact"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// SessionUser is the payload stored in the session cookie.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
