package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash *string            `bson:"passwordHash,omitempty" json:"-"`

	// Profile fields
	Name   string `bson:"name" json:"name"`
	Avatar string `bson:"avatar" json:"avatar"`
	Title  string `bson:"title" json:"title"` // headline, e.g. "CS Student at MIT"
	Role   string `bson:"role" json:"role"`
	Bio    string `bson:"bio" json:"bio"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
	LastSeen  int64 `bson:"lastSeen" json:"lastSeen"`
}

// Summary returns the value-copied author stamp embedded into posts and
// comments created by this user.
func (u User) Summary() Author {
	return Author{
		ID:     u.ID.Hex(),
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Title:  u.Title,
		Role:   u.Role,
	}
}
