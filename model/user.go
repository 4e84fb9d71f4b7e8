package model

type User struct {
	DTO
	Name         string `gorm:"not null" validate:"required" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:waiter" json:"role"`
	Active       bool   `gorm:"not null;default:true" json:"active"`
}

type Users []User

type CreateUserInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=admin waiter"`
}

type UpdateUserInput struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=admin waiter"`
	Active *bool   `json:"active,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=4"`
	RepeatPassword  string `json:"repeatPassword" validate:"required"`
}

type FilterUser struct {
	Pagination
	SearchKey string  `query:"searchKey" json:"searchKey"`
	Role      *string `query:"role" json:"role"`
	Active    *bool   `query:"active" json:"active"`
}
