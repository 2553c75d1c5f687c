package domain

import "time"

// Session is the server-side marker that a login is still live, independent
// of token expiry. Keyed in the cache by the token's jti; never mutated in
// place, so a role change requires re-login to take effect.
type Session struct {
	UserID    int64     `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
