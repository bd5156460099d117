package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// First name
	// required: true
	// example: John
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	// example: Doe
	LastName string `json:"last_name"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: Registration successful
	Message string `json:"message"`

	// Identifier of the new user
	// example: 1
	UserID int64 `json:"user_id"`
}

// ErrorResponse is the body of every non-2xx JSON response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// MessageResponse is a bare acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Logged out successfully
	Message string `json:"message"`
}
