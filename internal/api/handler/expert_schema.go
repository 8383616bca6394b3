package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type profileSummaryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

type sessionTypeResponse struct {
	ID          string `json:"id"`
	ExpertID    string `json:"expert_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Duration    int    `json:"duration"`
	Price       int    `json:"price"`
	Type        string `json:"type"`
}

type expertResponse struct {
	ID                string                  `json:"id"`
	Title             string                  `json:"title"`
	Experience        string                  `json:"experience,omitempty"`
	Education         string                  `json:"education,omitempty"`
	Languages         []string                `json:"languages,omitempty"`
	Skills            []string                `json:"skills,omitempty"`
	Timezone          string                  `json:"timezone,omitempty"`
	Location          string                  `json:"location,omitempty"`
	HourlyRate        int                     `json:"hourly_rate"`
	Status            string                  `json:"status"`
	Rating            float64                 `json:"rating,omitempty"`
	ReviewsCount      int                     `json:"reviews_count,omitempty"`
	SessionsCompleted int                     `json:"sessions_completed,omitempty"`
	Profile           *profileSummaryResponse `json:"profiles,omitempty"`
	SessionTypes      []sessionTypeResponse   `json:"session_types,omitempty"`
}

type listExpertsResponse struct {
	Data  []expertResponse `json:"data"`
	Count int              `json:"count"`
}

type availabilityResponse struct {
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type slotResponse struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration"`
}

type listSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []slotResponse `json:"slots"`
}

// --- Admin request types ---

type sessionTypeRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration"    validate:"required,gt=0"`
	Price       int    `json:"price"       validate:"required,gt=0"`
	Type        string `json:"type"        validate:"omitempty,oneof=video audio chat"`
}

type createExpertRequest struct {
	UserID       string               `json:"user_id"       validate:"required"`
	Title        string               `json:"title"         validate:"required"`
	Experience   string               `json:"experience"`
	Education    string               `json:"education"`
	Languages    []string             `json:"languages"`
	Skills       []string             `json:"skills"`
	Timezone     string               `json:"timezone"`
	Location     string               `json:"location"`
	HourlyRate   int                  `json:"hourly_rate"   validate:"required,gt=0"`
	SessionTypes []sessionTypeRequest `json:"session_types" validate:"omitempty,dive"`
}

type expertStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected active"`
}
