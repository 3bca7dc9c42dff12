package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// taxRate is the flat sales tax applied on top of the unit price.
var taxRate = decimal.New(110, -2) // 1.10

type Product struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Slug         string          `json:"slug"`
	Inventory    int             `json:"inventory"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LastUpdate   time.Time       `json:"last_update"`
	CollectionID uint            `json:"collection"`
}

// PriceWithTax is the unit price with tax applied, computed with decimal
// arithmetic so 100.00 comes out as exactly 110.00.
func (p *Product) PriceWithTax() decimal.Decimal {
	return p.UnitPrice.Mul(taxRate)
}

type CreateParams struct {
	Title        string
	Description  string
	Slug         string
	Inventory    int
	UnitPrice    decimal.Decimal
	CollectionID uint
}

type SortInput struct {
	Field     string // "unit_price" or "last_update"
	Direction string // "asc" or "desc"
}

type ListFilter struct {
	Search       *string
	CollectionID *uint
	Sort         *SortInput
	Limit        *int32
	Page         *int32
}
