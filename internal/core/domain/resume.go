package domain

import "time"

// Resume is a user's uploaded resume plus the AI feedback generated for it.
// Each user has at most one; a new upload replaces the previous record and
// its stored object.
type Resume struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ResumeURL  string    `json:"resume_url"`
	AIFeedback string    `json:"ai_feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
