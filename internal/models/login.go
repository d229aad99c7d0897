package models

// LoginRequest is the JSON body posted to the login endpoint.
// swagger:model LoginRequest
type LoginRequest struct {
	// Username, trimmed of surrounding whitespace
	// example: admin
	Username string `json:"username"`

	// Password, sent as typed
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse is the body returned by the login endpoint.
// swagger:model LoginResponse
type LoginResponse struct {
	// True when the credentials were accepted
	// example: false
	OK bool `json:"ok"`

	// Optional reason for a rejected login
	// example: Invalid username or password
	Error string `json:"error,omitempty"`
}
