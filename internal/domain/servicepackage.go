package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ServicePackage is a reference price record for booking packages. Price is
// kept as the operator entered it ("Rs. 50,000"); ParsePrice extracts the
// numeric amount for aggregation.
type ServicePackage struct {
	ID        string
	Name      string
	Category  string
	Price     string
	CreatedAt time.Time
}

// ParsePrice returns the package price as a decimal amount.
func (p *ServicePackage) ParsePrice() (decimal.Decimal, error) {
	return ParsePriceField(p.Price)
}

// ParsePriceField extracts the leading numeric token of a free-form price
// field, stripping thousands separators. "Rs. 50,000" parses to 50000 and
// "1,250.50 per event" to 1250.50.
func ParsePriceField(price string) (decimal.Decimal, error) {
	start := strings.IndexFunc(price, isDigit)
	if start < 0 {
		return decimal.Zero, ErrInvalidPrice
	}

	end := start
	for end < len(price) && (isDigit(rune(price[end])) || price[end] == ',' || price[end] == '.') {
		end++
	}

	token := strings.ReplaceAll(price[start:end], ",", "")
	token = strings.TrimRight(token, ".")

	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	return amount, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
