package handler

import (
	"time"

	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

type updateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Education *string `json:"education"`
	Password  *string `json:"password"`
}

type userProfileResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Education string    `json:"education,omitempty"`
	HasResume bool      `json:"has_resume"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserProfileResponse(p *ports.UserProfile) userProfileResponse {
	return userProfileResponse{
		ID:        p.User.ID,
		Email:     p.User.Email,
		Role:      string(p.User.Role),
		Name:      p.User.Name,
		Education: p.User.Education,
		HasResume: p.HasResume,
		CreatedAt: p.User.CreatedAt,
	}
}
