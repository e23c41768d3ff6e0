package catalog

import "encoding/json"

type Product struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Price     float64       `json:"price"`
	Currency  string        `json:"currency"`
	Stock     int           `json:"stock"`
	Category  string        `json:"category"`
	SellerID  string        `json:"sellerId"`
	Status    ProductStatus `json:"status"`
	ImageURL  string        `json:"imageUrl,omitempty"`
	CreatedAt Timestamp     `json:"createdAt"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

type OrderItem struct {
	ProductID    string  `json:"productId"`
	ProductTitle string  `json:"productTitle"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
}

type Order struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     float64       `json:"totalAmount"`
	Currency        string        `json:"currency"`
	OrderStatus     OrderStatus   `json:"orderStatus"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	DeliveryAddress *Address      `json:"deliveryAddress,omitempty"`
	CreatedAt       Timestamp     `json:"createdAt"`
}

type Payment struct {
	ID                   string          `json:"id"`
	OrderID              string          `json:"orderId"`
	UserID               string          `json:"userId"`
	Amount               float64         `json:"amount"`
	Currency             string          `json:"currency"`
	Method               PaymentMethod   `json:"method"`
	Status               PaymentStatus   `json:"status"`
	TransactionReference string          `json:"transactionReference,omitempty"`
	ProviderResponse     json.RawMessage `json:"providerResponse,omitempty"`
	CreatedAt            Timestamp       `json:"createdAt"`
}

// PaymentStats is the aggregate the payment service precomputes. The
// dashboard never exposes a nil stats record; see dashboard.ComputeStats.
type PaymentStats struct {
	TotalPayments int     `json:"totalPayments"`
	Succeeded     int     `json:"succeeded"`
	Pending       int     `json:"pending"`
	Failed        int     `json:"failed"`
	TotalAmount   float64 `json:"totalAmount"`
}
