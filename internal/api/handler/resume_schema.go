package handler

import (
	"time"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

type resumeResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ResumeURL  string    `json:"resume_url"`
	AIFeedback string    `json:"ai_feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toResumeResponse(r *domain.Resume) resumeResponse {
	return resumeResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		ResumeURL:  r.ResumeURL,
		AIFeedback: r.AIFeedback,
		CreatedAt:  r.CreatedAt,
	}
}

type resumeEnvelope struct {
	Message string         `json:"message"`
	Resume  resumeResponse `json:"resume"`
}

type feedbackResponse struct {
	Feedback *string `json:"feedback"`
}
