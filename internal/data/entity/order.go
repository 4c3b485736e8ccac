package entity

import "github.com/google/uuid"

// OrderItem is one line item inside an order. The whole slice is stored
// as a single JSONB blob in the orders table.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	Base
	UserID          uuid.UUID   `db:"user_id"`
	TotalAmount     float64     `db:"total_amount"`
	Items           []OrderItem `db:"items"`
	ShippingAddress string      `db:"shipping_address"`
	ContactNumber   string      `db:"contact_number"`
}
