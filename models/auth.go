package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /auth/login. Token is an opaque bearer
// credential.
type LoginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

// Session describes a restored operator session. User and Role come from the
// locally cached profile and may be empty when the cache is missing.
type Session struct {
	User AdminUser
	Role string
}
