package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the host login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued host token.
type LoginResponse struct {
	Token  string `json:"token"`
	HostID string `json:"hostId"`
}

// HostClaims are the JWT claims for a host session.
type HostClaims struct {
	HostID string `json:"hostId"`
	jwt.RegisteredClaims
}
