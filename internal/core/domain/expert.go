package domain

import (
	"errors"
	"time"
)

// ExpertStatus represents the lifecycle state of an expert profile.
type ExpertStatus string

const (
	ExpertPending  ExpertStatus = "pending"
	ExpertApproved ExpertStatus = "approved"
	ExpertRejected ExpertStatus = "rejected"
	ExpertActive   ExpertStatus = "active"
	ExpertInactive ExpertStatus = "inactive"
)

// validExpertTransitions defines the admin-controlled state machine.
// Only pending → approved|rejected and approved → active are permitted.
var validExpertTransitions = map[ExpertStatus][]ExpertStatus{
	ExpertPending:  {ExpertApproved, ExpertRejected},
	ExpertApproved: {ExpertActive},
}

var ErrExpertNotFound = errors.New("expert not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrSessionTypeNotFound = errors.New("session type not found")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s ExpertStatus) CanTransitionTo(next ExpertStatus) bool {
	for _, allowed := range validExpertTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Listable reports whether an expert in this status appears in the public
// directory.
func (s ExpertStatus) Listable() bool {
	return s == ExpertApproved || s == ExpertActive
}

// SessionTypeKind is the delivery medium of a session type.
type SessionTypeKind string

const (
	SessionVideo SessionTypeKind = "video"
	SessionAudio SessionTypeKind = "audio"
	SessionChat  SessionTypeKind = "chat"
)

// SessionType is a priced, timed offering belonging to exactly one expert.
// Price is stored in cents; duration in minutes.
type SessionType struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	ExpertID    string          `json:"expert_id" bson:"expert_id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Duration    int             `json:"duration" bson:"duration"`
	Price       int             `json:"price" bson:"price"`
	Kind        SessionTypeKind `json:"type" bson:"type"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
}

// Expert is a service provider profile offering bookable session types.
// HourlyRate is whole dollars; it drives the directory price brackets.
type Expert struct {
	ID                string       `json:"id" bson:"_id,omitempty"`
	UserID            string       `json:"user_id" bson:"user_id"`
	Title             string       `json:"title" bson:"title"`
	Experience        string       `json:"experience,omitempty" bson:"experience,omitempty"`
	Education         string       `json:"education,omitempty" bson:"education,omitempty"`
	Languages         []string     `json:"languages,omitempty" bson:"languages,omitempty"`
	Skills            []string     `json:"skills,omitempty" bson:"skills,omitempty"`
	Timezone          string       `json:"timezone,omitempty" bson:"timezone,omitempty"`
	Location          string       `json:"location,omitempty" bson:"location,omitempty"`
	HourlyRate        int          `json:"hourly_rate" bson:"hourly_rate"`
	Status            ExpertStatus `json:"status" bson:"status"`
	Rating            float64      `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewsCount      int          `json:"reviews_count,omitempty" bson:"reviews_count,omitempty"`
	SessionsCompleted int          `json:"sessions_completed,omitempty" bson:"sessions_completed,omitempty"`
	CreatedAt         time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" bson:"updated_at"`

	// Relations populated by fetch-with-relations reads.
	Profile      *User         `json:"profiles,omitempty" bson:"profiles,omitempty"`
	SessionTypes []SessionType `json:"session_types,omitempty" bson:"session_types,omitempty"`
}

// HasSkill reports whether the expert lists the given skill. Experts with no
// skills never match.
func (e *Expert) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// Availability is a weekly recurring availability window for one expert.
// StartTime and EndTime are local times of day in "15:04" form.
type Availability struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ExpertID    string    `json:"expert_id" bson:"expert_id"`
	DayOfWeek   int       `json:"day_of_week" bson:"day_of_week"`
	StartTime   string    `json:"start_time" bson:"start_time"`
	EndTime     string    `json:"end_time" bson:"end_time"`
	IsAvailable bool      `json:"is_available" bson:"is_available"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
