package models

import (
	"time"
)

// Review belongs to exactly one trail and is stored in the trail's reviews
// subcollection. A user may review a trail at most once.
type Review struct {
	ID          string     `json:"id" firestore:"-"`
	TrailID     string     `json:"trailId" firestore:"trailId"`
	UserID      string     `json:"userId" firestore:"userId"`
	UserName    string     `json:"userName" firestore:"userName"`
	Rating      int        `json:"rating" firestore:"rating"`
	Comment     string     `json:"comment" firestore:"comment"`
	Photos      []string   `json:"photos,omitempty" firestore:"photos"`
	Timestamp   time.Time  `json:"timestamp" firestore:"timestamp"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty" firestore:"lastUpdated"`
}

// ReviewUpdate carries a partial review update.
type ReviewUpdate struct {
	Rating  *int     `json:"rating"`
	Comment *string  `json:"comment"`
	Photos  []string `json:"photos"`
}
