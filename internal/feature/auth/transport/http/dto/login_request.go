package dto

// LoginReq represents the request body for the /signin endpoint.
// Missing fields are not binding errors: they are reported as bad credentials.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenRes is returned on successful sign in.
type TokenRes struct {
	Token string `json:"token"`
}
