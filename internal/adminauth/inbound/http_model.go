package inbound

type RequestOTPRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RequestOTPResponse struct{}

func (RequestOTPResponse) Message() string {
	return "OTP sent to admin email"
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type VerifyOTPResponse struct {
	Token string `json:"token"`
}

func (VerifyOTPResponse) Message() string {
	return "Admin login successful"
}
