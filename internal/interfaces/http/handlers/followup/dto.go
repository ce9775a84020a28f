package followup

import (
	"time"

	"briefing/internal/application/followup/usecases"
)

type AddFollowUpRequest struct {
	Person     string `json:"person" binding:"required,max=200"`
	Summary    string `json:"summary" binding:"required"`
	SourceLink string `json:"source_link,omitempty" binding:"max=500"`
}

func (r *AddFollowUpRequest) ToCommand() usecases.AddFollowUpCommand {
	return usecases.AddFollowUpCommand{
		Person:     r.Person,
		Summary:    r.Summary,
		SourceLink: r.SourceLink,
	}
}

type FollowUpResponse struct {
	ID         uint       `json:"id"`
	Person     string     `json:"person"`
	Summary    string     `json:"summary"`
	SourceLink string     `json:"source_link,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	AgeDays    int        `json:"age_days"`
}

type ListFollowUpsResponse struct {
	FollowUps []FollowUpResponse `json:"followups"`
}
