package api

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the gateway's answer to a successful login. Field values
// are profile data and take precedence over token claims during
// reconciliation; the role is deliberately absent here — it only travels
// inside the token.
type AuthResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	CollegeName string `json:"collegeName"`
}

// RegistrationRequest is the full registration payload.
type RegistrationRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	CollegeName string `json:"collegeName,omitempty"`
	Department  string `json:"department,omitempty"`
}

// RegistrationUser is the profile part of a registration response.
type RegistrationUser struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CollegeName string `json:"collegeName"`
	Department  string `json:"department"`
}

// RegistrationResponse is the gateway's answer to a verified registration.
type RegistrationResponse struct {
	Token string           `json:"token"`
	User  RegistrationUser `json:"user"`
}
