package model

type Category struct {
	DTO
	Name      string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`
	Active    bool   `gorm:"not null;default:true" json:"active"`
	Dishes    []Dish `gorm:"foreignKey:CategoryId" json:"dishes,omitempty"`
}

type Categories []Category

type CreateCategoryInput struct {
	Name      string `json:"name" validate:"required,min=1"`
	SortOrder *int   `json:"sortOrder,omitempty"`
	Active    *bool  `json:"active,omitempty"`
}

type UpdateCategoryInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1"`
	SortOrder *int    `json:"sortOrder,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}
