package models

import (
	"time"
)

type TrailDifficulty string

const (
	DifficultyEasy     TrailDifficulty = "Easy"
	DifficultyModerate TrailDifficulty = "Moderate"
	DifficultyHard     TrailDifficulty = "Hard"
	DifficultyExpert   TrailDifficulty = "Expert"
)

type TrailStatus string

const (
	StatusOpen        TrailStatus = "open"
	StatusClosed      TrailStatus = "closed"
	StatusMaintenance TrailStatus = "maintenance"
	StatusSeasonal    TrailStatus = "seasonal"
)

func ValidDifficulties() []TrailDifficulty {
	return []TrailDifficulty{DifficultyEasy, DifficultyModerate, DifficultyHard, DifficultyExpert}
}

func ValidStatuses() []TrailStatus {
	return []TrailStatus{StatusOpen, StatusClosed, StatusMaintenance, StatusSeasonal}
}

func (d TrailDifficulty) IsValid() bool {
	for _, v := range ValidDifficulties() {
		if d == v {
			return true
		}
	}
	return false
}

func (s TrailStatus) IsValid() bool {
	for _, v := range ValidStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// Trail is a single hiking-trail record. Distance is kilometers, elevation
// gain is meters.
type Trail struct {
	ID            string          `json:"id" firestore:"-"`
	Name          string          `json:"name" firestore:"name" validate:"required,max=100"`
	Location      GeoPoint        `json:"location" firestore:"location"`
	Distance      float64         `json:"distance" firestore:"distance" validate:"min=0"`
	ElevationGain float64         `json:"elevationGain" firestore:"elevationGain" validate:"min=0"`
	Difficulty    TrailDifficulty `json:"difficulty" firestore:"difficulty" validate:"required,trail_difficulty"`
	Tags          []string        `json:"tags" firestore:"tags" validate:"max=10,dive,max=50"`
	GPSRoute      []GeoPoint      `json:"gpsRoute,omitempty" firestore:"gpsRoute"`
	Description   string          `json:"description" firestore:"description" validate:"required,max=2000"`
	Photos        []string        `json:"photos" firestore:"photos" validate:"max=20,dive,photo_url"`
	Status        TrailStatus     `json:"status" firestore:"status" validate:"omitempty,trail_status"`
	CreatedBy     string          `json:"createdBy" firestore:"createdBy" validate:"required"`
	CreatedAt     time.Time       `json:"createdAt" firestore:"createdAt"`
	LastUpdated   time.Time       `json:"lastUpdated" firestore:"lastUpdated"`
}

// TrailUpdate carries a partial trail update. Nil fields are left untouched.
type TrailUpdate struct {
	Name          *string          `json:"name"`
	Location      *GeoPoint        `json:"location"`
	Distance      *float64         `json:"distance"`
	ElevationGain *float64         `json:"elevationGain"`
	Difficulty    *TrailDifficulty `json:"difficulty"`
	Tags          []string         `json:"tags"`
	GPSRoute      []GeoPoint       `json:"gpsRoute"`
	Description   *string          `json:"description"`
	Photos        []string         `json:"photos"`
	Status        *TrailStatus     `json:"status"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u *TrailUpdate) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.Distance == nil &&
		u.ElevationGain == nil && u.Difficulty == nil && u.Tags == nil &&
		u.GPSRoute == nil && u.Description == nil && u.Photos == nil &&
		u.Status == nil
}

// ApplyTo merges the update onto an existing trail.
func (u *TrailUpdate) ApplyTo(t *Trail) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Location != nil {
		t.Location = *u.Location
	}
	if u.Distance != nil {
		t.Distance = *u.Distance
	}
	if u.ElevationGain != nil {
		t.ElevationGain = *u.ElevationGain
	}
	if u.Difficulty != nil {
		t.Difficulty = *u.Difficulty
	}
	if u.Tags != nil {
		t.Tags = u.Tags
	}
	if u.GPSRoute != nil {
		t.GPSRoute = u.GPSRoute
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Photos != nil {
		t.Photos = u.Photos
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
}

// TrailListOptions is the normalized filter/sort request for trail listings.
type TrailListOptions struct {
	Difficulty   TrailDifficulty
	Status       TrailStatus
	Tags         []string
	MinDistance  *float64
	MaxDistance  *float64
	MinElevation *float64
	MaxElevation *float64
	Sort         string
	Order        string
}

// HasFilters reports whether any equality, array or range filter is set.
func (o TrailListOptions) HasFilters() bool {
	return o.Difficulty != "" || o.Status != "" || len(o.Tags) > 0 ||
		o.MinDistance != nil || o.MaxDistance != nil ||
		o.MinElevation != nil || o.MaxElevation != nil
}

// NearbyTrail is a trail annotated with its computed distance from a query
// point, in meters.
type NearbyTrail struct {
	Trail
	DistanceFromLocation int `json:"distanceFromLocation"`
}
