package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	StatusPending  PaymentStatus = "PENDING"
	StatusComplete PaymentStatus = "COMPLETE"
	StatusFailed   PaymentStatus = "FAILED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusComplete, StatusFailed:
		return true
	}
	return false
}

type Order struct {
	ID            uint          `json:"id"`
	CustomerID    uint          `json:"customer_id"`
	PlacedAt      time.Time     `json:"placed_at"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Items         []*OrderItem  `json:"items"`
}

// TotalPrice sums the snapshotted line totals.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

type OrderItem struct {
	ID        uint `json:"id"`
	OrderID   uint `json:"-"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
	// UnitPrice is copied from the product at checkout time; later price
	// changes do not alter historical orders.
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ProductTitle string          `json:"product_title"`
}
