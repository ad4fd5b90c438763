package response

import "time"

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type AuthStatusResponse struct {
	Enabled bool `json:"enabled"`
}
