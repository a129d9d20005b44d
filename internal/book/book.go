package book

import "github.com/shopspring/decimal"

// Book represents one catalog entry. Price is a decimal so money never
// touches floating point; stock is the available inventory count that gates
// cart additions.
type Book struct {
	ID     int             `json:"id"`
	Title  string          `json:"title"`
	Author string          `json:"author"`
	Price  decimal.Decimal `json:"price"`
	Stock  int             `json:"stock"`
}

// CanOrder reports whether the requested quantity is coverable by stock.
func (b Book) CanOrder(quantity int) bool {
	return quantity <= b.Stock
}
