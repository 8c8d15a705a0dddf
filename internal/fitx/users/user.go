package users

import (
	"errors"
	"time"
)

var (
	ErrEmailTaken       = errors.New("email already taken")
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrNoPatches        = errors.New("no patchups found")
)

// SignupRecord is written once on signup and never mutated.
type SignupRecord struct {
	ID           string    `json:"userID" bson:"_id"`
	FirstName    string    `json:"firstName" bson:"firstName"`
	LastName     string    `json:"lastName" bson:"lastName"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token  string `json:"token"`
	UserID string `json:"userID"`
}

// UserProfile holds the anthropometrics given at profile creation.
// Later measurements are appended as ProfilePatch records.
type UserProfile struct {
	UserID    string    `json:"userID" bson:"userID"`
	Email     string    `json:"email" bson:"email"`
	FirstName string    `json:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName" bson:"lastName"`
	HeightCm  float64   `json:"height_cm" bson:"height_cm"`
	WeightKg  float64   `json:"weight_kg" bson:"weight_kg"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type ProfilePatch struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userID" bson:"userID"`
	HeightCm  float64   `json:"height_cm" bson:"height_cm"`
	WeightKg  float64   `json:"weight_kg" bson:"weight_kg"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// PatchRequest uses pointers to tell a missing field from a zero one.
type PatchRequest struct {
	HeightCm *float64 `json:"height_cm"`
	WeightKg *float64 `json:"weight_kg"`
}

type ProfileView struct {
	UserProfile
	LatestPatch *ProfilePatch `json:"latestPatch,omitempty"`
}
