package dto

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshDTO carries the refresh token when the client cannot use the
// cookie (mobile clients).
type RefreshDTO struct {
	RefreshToken string `json:"refreshToken"`
}

type RegisterUserDTO struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Mobile   string `json:"mobile"`
}
