package usecase

// SubmittedMsg goes out on RabbitMQ when an order is frozen and persisted.
// The invoice and inventory workers consume it.
type SubmittedMsg struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	Location   string `json:"location"`
	TotalCents int64  `json:"totalCents"`
}

// PaymentStatusMsg arrives on Kafka from the payment gateway once a charge
// settles.
type PaymentStatusMsg struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	Cents      int64  `json:"cents"`
	Status     string `json:"status"` // e.g. "SUCCESS"
}
