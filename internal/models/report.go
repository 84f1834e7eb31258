package models

import (
	"time"
)

type ReportType string

const (
	ReportTrail   ReportType = "trail"
	ReportReview  ReportType = "review"
	ReportImage   ReportType = "image"
	ReportAlert   ReportType = "alert"
	ReportGeneral ReportType = "general"
)

type ReportPriority string

const (
	PriorityLow    ReportPriority = "low"
	PriorityMedium ReportPriority = "medium"
	PriorityHigh   ReportPriority = "high"
	PriorityUrgent ReportPriority = "urgent"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportReviewed  ReportStatus = "reviewed"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

func ValidReportTypes() []ReportType {
	return []ReportType{ReportTrail, ReportReview, ReportImage, ReportAlert, ReportGeneral}
}

func ValidReportPriorities() []ReportPriority {
	return []ReportPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

func ValidReportStatuses() []ReportStatus {
	return []ReportStatus{ReportPending, ReportReviewed, ReportResolved, ReportDismissed}
}

func (t ReportType) IsValid() bool {
	for _, v := range ValidReportTypes() {
		if t == v {
			return true
		}
	}
	return false
}

func (p ReportPriority) IsValid() bool {
	for _, v := range ValidReportPriorities() {
		if p == v {
			return true
		}
	}
	return false
}

func (s ReportStatus) IsValid() bool {
	for _, v := range ValidReportStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// Report is a user-submitted moderation report. Status transitions are
// free-form; any status may be set from any other.
type Report struct {
	ID          string         `json:"id" firestore:"-"`
	Type        ReportType     `json:"type" firestore:"type"`
	Category    string         `json:"category" firestore:"category"`
	Description string         `json:"description" firestore:"description"`
	Priority    ReportPriority `json:"priority" firestore:"priority"`
	Status      ReportStatus   `json:"status" firestore:"status"`
	TrailID     string         `json:"trailId,omitempty" firestore:"trailId"`
	ReporterID  string         `json:"reporterId,omitempty" firestore:"reporterId"`
	CreatedAt   time.Time      `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" firestore:"updatedAt"`
}

// ReportUpdate carries a partial report update.
type ReportUpdate struct {
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
	Priority    *ReportPriority `json:"priority"`
	Status      *ReportStatus   `json:"status"`
}
