package handler

import (
	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

// --- Domain → Response ---

func toExpertResponse(e *domain.Expert) expertResponse {
	resp := expertResponse{
		ID:                e.ID,
		Title:             e.Title,
		Experience:        e.Experience,
		Education:         e.Education,
		Languages:         e.Languages,
		Skills:            e.Skills,
		Timezone:          e.Timezone,
		Location:          e.Location,
		HourlyRate:        e.HourlyRate,
		Status:            string(e.Status),
		Rating:            e.Rating,
		ReviewsCount:      e.ReviewsCount,
		SessionsCompleted: e.SessionsCompleted,
	}
	if e.Profile != nil {
		resp.Profile = &profileSummaryResponse{
			ID:        e.Profile.ID,
			Name:      e.Profile.Name,
			Email:     e.Profile.Email,
			AvatarURL: e.Profile.AvatarURL,
			Bio:       e.Profile.Bio,
		}
	}
	for _, st := range e.SessionTypes {
		resp.SessionTypes = append(resp.SessionTypes, toSessionTypeResponse(st))
	}
	return resp
}

func toExpertListResponse(experts []*domain.Expert) listExpertsResponse {
	resp := listExpertsResponse{Data: make([]expertResponse, 0, len(experts)), Count: len(experts)}
	for _, e := range experts {
		resp.Data = append(resp.Data, toExpertResponse(e))
	}
	return resp
}

func toSessionTypeResponse(st domain.SessionType) sessionTypeResponse {
	return sessionTypeResponse{
		ID:          st.ID,
		ExpertID:    st.ExpertID,
		Title:       st.Title,
		Description: st.Description,
		Duration:    st.Duration,
		Price:       st.Price,
		Type:        string(st.Kind),
	}
}

// --- Request → Service input ---

func toCreateExpertInput(req createExpertRequest) ports.CreateExpertInput {
	input := ports.CreateExpertInput{
		UserID:     req.UserID,
		Title:      req.Title,
		Experience: req.Experience,
		Education:  req.Education,
		Languages:  req.Languages,
		Skills:     req.Skills,
		Timezone:   req.Timezone,
		Location:   req.Location,
		HourlyRate: req.HourlyRate,
	}
	for _, st := range req.SessionTypes {
		input.SessionTypes = append(input.SessionTypes, toSessionTypeInput(st))
	}
	return input
}

func toSessionTypeInput(req sessionTypeRequest) ports.SessionTypeInput {
	return ports.SessionTypeInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Kind:        req.Type,
	}
}
