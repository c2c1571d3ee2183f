package dto

// UpdateUserDTO requires the current password; only non-nil fields change.
type UpdateUserDTO struct {
	Password    string  `json:"password" binding:"required"`
	NewPassword *string `json:"newPassword,omitempty"`
	Fullname    *string `json:"fullname,omitempty"`
	Mobile      *string `json:"mobile,omitempty"`
	NewEmail    *string `json:"newEmail,omitempty"`
}
