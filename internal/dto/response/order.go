package response

import (
	"time"

	"storefront/internal/data/entity"
)

type OrderResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	TotalAmount     float64            `json:"total_amount"`
	Items           []entity.OrderItem `json:"items"`
	ShippingAddress string             `json:"shipping_address"`
	ContactNumber   string             `json:"contact_number"`
	CreatedAt       time.Time          `json:"created_at"`
}

func OrderToResponse(order *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:              order.ID.String(),
		UserID:          order.UserID.String(),
		TotalAmount:     order.TotalAmount,
		Items:           order.Items,
		ShippingAddress: order.ShippingAddress,
		ContactNumber:   order.ContactNumber,
		CreatedAt:       order.CreatedAt,
	}
}
