package handler

// registerRequest mirrors the registration form. Role is part of the
// public contract of the assignment API: accounts declare USER or ADMIN.
type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Surname  string `json:"surname"  validate:"required"`
	NickName string `json:"nickName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Age      int    `json:"age"      validate:"required,gt=0"`
	Role     string `json:"role"     validate:"required,oneof=USER ADMIN"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	ID uint `json:"id"`
}

type loginResponse struct {
	Token string `json:"token"`
}
