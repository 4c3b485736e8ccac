package request

type OrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"min=0"`
}

type CreateOrderRequest struct {
	UserID          string             `json:"userId" validate:"required,uuid4"`
	TotalAmount     float64            `json:"totalAmount" validate:"required,gt=0"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string             `json:"shippingAddress" validate:"required"`
	ContactNumber   string             `json:"contactNumber" validate:"required"`
}
