package reps

import (
	"errors"
	"time"
)

var (
	ErrDuplicateVideo = errors.New("video already submitted")
	ErrNoRepsInWindow = errors.New("no reps in week window")
)

// RepRecord is one submitted set, tied 1:1 to the instructional video it was recorded against.
type RepRecord struct {
	ID            string    `json:"id" bson:"_id"`
	UserID        string    `json:"userID" bson:"userID"`
	VideoID       string    `json:"videoID" bson:"videoID"`
	LiftType      string    `json:"liftType" bson:"liftType"`
	AttemptedReps int       `json:"attemptedReps" bson:"attemptedReps"`
	GoodReps      int       `json:"goodReps" bson:"goodReps"`
	Date          time.Time `json:"date" bson:"date"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

type AddRepRequest struct {
	UserID        string `json:"userID"`
	VideoID       string `json:"videoID"`
	LiftType      string `json:"liftType"`
	AttemptedReps *int   `json:"attemptedReps"`
	GoodReps      *int   `json:"goodReps"`
	// optional, defaults to the submission time
	Date string `json:"date"`
}

type WeeklyTotal struct {
	UserID             string `json:"userID"`
	TotalAttemptedReps int    `json:"total_attemptedReps"`
}
