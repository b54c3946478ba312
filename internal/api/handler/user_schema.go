package handler

type userIDRequest struct {
	ID uint `param:"id" validate:"required,gt=0"`
}

type updateUserRequest struct {
	ID       uint    `param:"id"        validate:"required,gt=0"`
	Name     *string `json:"name"      validate:"omitempty,min=1"`
	Surname  *string `json:"surname"   validate:"omitempty,min=1"`
	NickName *string `json:"nickName"  validate:"omitempty,min=1"`
	Age      *int    `json:"age"       validate:"omitempty,gte=0"`
	Role     *string `json:"role"      validate:"omitempty,oneof=USER ADMIN"`
}
