package model

// Table is a physical restaurant table. Status flips to occupied while an
// open order references it and back to free when that order closes.
type Table struct {
	DTO
	Name   string  `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Status string  `gorm:"not null;default:free" json:"status"`
	Orders []Order `gorm:"foreignKey:TableId" json:"orders,omitempty"`
}

type Tables []Table

type CreateTableInput struct {
	Name   string `json:"name" validate:"required,min=1"`
	Status string `json:"status" validate:"omitempty,oneof=free occupied"`
}

type UpdateTableInput struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=free occupied"`
}
