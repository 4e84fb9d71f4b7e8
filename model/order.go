package model

import "time"

// Order is one table visit's running tab. Total always equals the sum of its
// items' subtotals, AmountPaid never exceeds Total, and the open->closed
// transition fires exactly once, when AmountPaid first reaches Total.
type Order struct {
	DTO
	TableId       uint        `gorm:"not null" json:"tableId"`
	Table         *Table      `gorm:"foreignKey:TableId" json:"table,omitempty"`
	WaiterId      uint        `gorm:"not null" json:"waiterId"`
	Waiter        *User       `gorm:"foreignKey:WaiterId" json:"waiter,omitempty"`
	Status        string      `gorm:"not null;default:open" json:"status"`
	Total         float64     `gorm:"not null;default:0" json:"total"`
	AmountPaid    float64     `gorm:"not null;default:0" json:"amountPaid"`
	PaymentMethod string      `json:"paymentMethod"`
	ClosedById    *uint       `json:"closedById,omitempty"`
	ClosedBy      *User       `gorm:"foreignKey:ClosedById" json:"closedBy,omitempty"`
	ClosedAt      *time.Time  `json:"closedAt,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderId" json:"items,omitempty"`
	Payments      []Payment   `gorm:"foreignKey:OrderId" json:"payments,omitempty"`
}

type Orders []Order

// OrderItem holds the dish price at insertion time; later price changes do
// not re-price it.
type OrderItem struct {
	DTO
	OrderId  uint    `gorm:"not null;index" json:"orderId"`
	DishId   uint    `gorm:"not null" json:"dishId"`
	Dish     *Dish   `gorm:"foreignKey:DishId" json:"dish,omitempty"`
	Quantity int     `gorm:"not null" validate:"required,gt=0" json:"quantity"`
	Note     string  `json:"note"`
	Subtotal float64 `gorm:"not null" json:"subtotal"`
}

type CreateOrderInput struct {
	TableId uint `json:"tableId" validate:"required"`
}

type AddOrderItemInput struct {
	DishId   uint   `json:"dishId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Note     string `json:"note"`
}

// CloseOrderInput drives the legacy direct-close path: status straight to
// closed with a payment method, bypassing incremental payments.
type CloseOrderInput struct {
	Status        string `json:"status" validate:"required,eq=closed"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cash pix debit credit"`
}

type FilterOrder struct {
	Pagination
	Status   *string `query:"status" json:"status"`
	TableId  *uint   `query:"tableId" json:"tableId"`
	WaiterId *uint   `query:"waiterId" json:"waiterId"`
}
