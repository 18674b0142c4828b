package dto

type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	// Shape is not validated here: a wrong-length or non-numeric code
	// must reach the comparison and report a mismatch, not a generic
	// validation failure.
	OTP   string `json:"otp" binding:"required"`
}

type VerifyOTPResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type VerifySessionResponse struct {
	Valid bool         `json:"valid"`
	User  UserResponse `json:"user"`
}
