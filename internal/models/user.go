package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account record. Email matching is exact and case-sensitive;
// the password field stores a bcrypt hash and is never serialized.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
