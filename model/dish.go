package model

// Dish is one menu entry. Dishes referenced by historical order items are
// deactivated instead of deleted so old orders keep resolving.
type Dish struct {
	DTO
	Name        string    `gorm:"not null" validate:"required" json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:120" json:"slug"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" validate:"required,gt=0" json:"price"`
	CategoryId  uint      `gorm:"not null" json:"categoryId"`
	Category    *Category `gorm:"foreignKey:CategoryId" json:"category,omitempty"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	ImageUrl    string    `json:"imageUrl"`
}

type Dishes []Dish

type CreateDishInput struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryId  uint    `json:"categoryId" validate:"required"`
	Active      *bool   `json:"active,omitempty"`
	ImageUrl    string  `json:"imageUrl"`
}

type UpdateDishInput struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	CategoryId  *uint    `json:"categoryId,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	ImageUrl    *string  `json:"imageUrl,omitempty"`
}

type FilterDish struct {
	Pagination
	SearchKey  string `query:"searchKey" json:"searchKey"`
	CategoryId *uint  `query:"categoryId" json:"categoryId"`
	Active     *bool  `query:"active" json:"active"`
}
