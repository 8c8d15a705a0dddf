package leaderboard

import "errors"

var ErrEmptyLeaderboard = errors.New("leaderboard is empty")

// Entry is one user's standing for a lift type. Weight and name come from the user profile.
type Entry struct {
	UserID             string  `json:"userID" bson:"userID"`
	Weight             float64 `json:"weight" bson:"weight"`
	LiftType           string  `json:"liftType" bson:"liftType"`
	TotalAttemptedReps int     `json:"totalAttemptedReps" bson:"totalAttemptedReps"`
	UserName           string  `json:"userName" bson:"userName"`
}
