package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims represents the claims carried in session tokens issued by
// the external auth provider. The subject claim is the user's ID.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email           string `json:"email"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}
