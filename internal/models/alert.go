package models

import (
	"time"
)

type AlertType string

const (
	AlertWeather   AlertType = "weather"
	AlertWildlife  AlertType = "wildlife"
	AlertClosure   AlertType = "closure"
	AlertCondition AlertType = "condition"
	AlertOther     AlertType = "other"
)

func ValidAlertTypes() []AlertType {
	return []AlertType{AlertWeather, AlertWildlife, AlertClosure, AlertCondition, AlertOther}
}

func (t AlertType) IsValid() bool {
	for _, v := range ValidAlertTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Alert is a condition notice attached to a trail. ExpiresAt is advisory
// metadata only; no sweep deactivates expired alerts.
type Alert struct {
	ID          string     `json:"id" firestore:"-"`
	TrailID     string     `json:"trailId" firestore:"trailId"`
	Message     string     `json:"message" firestore:"message"`
	Type        AlertType  `json:"type" firestore:"type"`
	Comment     string     `json:"comment" firestore:"comment"`
	IsActive    bool       `json:"isActive" firestore:"isActive"`
	IsTimed     bool       `json:"isTimed" firestore:"isTimed"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty" firestore:"expiresAt"`
	Timestamp   time.Time  `json:"timestamp" firestore:"timestamp"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty" firestore:"lastUpdated"`
}

// AlertCreate is the inbound payload for creating an alert. Duration is in
// minutes and only honored when IsTimed is set.
type AlertCreate struct {
	TrailID  string    `json:"trailId"`
	Message  string    `json:"message"`
	Type     AlertType `json:"type"`
	Comment  string    `json:"comment"`
	IsTimed  bool      `json:"isTimed"`
	Duration int       `json:"duration"`
}

// AlertUpdate carries a partial alert update.
type AlertUpdate struct {
	IsActive *bool      `json:"isActive"`
	Message  *string    `json:"message"`
	Type     *AlertType `json:"type"`
	Comment  *string    `json:"comment"`
}
