package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is an anonymous, token-addressed holding area for prospective
// purchases. It lives only until checkout converts it into an order.
type Cart struct {
	ID        uuid.UUID   `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []*CartItem `json:"items"`
}

// TotalPrice sums the item totals.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

type CartItem struct {
	ID       uint        `json:"id"`
	CartID   uuid.UUID   `json:"-"`
	Quantity int         `json:"quantity"`
	Product  ItemProduct `json:"product"`
}

// ItemProduct is the slim product view embedded in a cart item.
type ItemProduct struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (i *CartItem) TotalPrice() decimal.Decimal {
	return i.Product.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type AddItemParams struct {
	CartID    uuid.UUID
	ProductID uint
	Quantity  int
}

type CreateItemParams struct {
	CartID    uuid.UUID
	ProductID uint
	Quantity  int
}
