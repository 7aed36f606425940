package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user stored in MongoDB. Password holds the
// bcrypt hash, never the plaintext. Posts holds references to the posts the
// user owns.
type User struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name"`
	Email     string               `json:"email" bson:"email"`
	Password  string               `json:"-" bson:"password"`
	Role      string               `json:"role" bson:"role"`
	Posts     []primitive.ObjectID `json:"posts" bson:"posts"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at"`
	DeletedAt *time.Time           `json:"deleted_at,omitempty" bson:"deleted_at"`
}

// CreateUserRequest defines the request body for registering a new user
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=user admin"`
}

// LoginRequest defines the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the user's identifier
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
