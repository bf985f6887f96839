package domain

import "time"

// OrderStatus enumerates marketplace order lifecycle states. Orders are
// read-only for this service; their lifecycle is owned by the order
// collaborator.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a marketplace transaction between a buyer and an entrepreneur.
type Order struct {
	ID             string      `json:"id"`
	EntrepreneurID string      `json:"entrepreneur_id"`
	BuyerID        string      `json:"buyer_id"`
	Status         OrderStatus `json:"status"`
	TotalCents     int64       `json:"total_cents"`
	CreatedAt      time.Time   `json:"created_at"`
}
