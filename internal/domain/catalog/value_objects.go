package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// A delivery label carries its lead time in days, e.g. "5 días" or "10 days".
var deliveryLabelPattern = regexp.MustCompile(`(?i)^\s*(\d{1,3})\s*(d[ií]as?|days?)\s*$`)

type DeliveryOption struct {
	label    string
	leadDays int
}

func ParseDeliveryOption(label string) (DeliveryOption, error) {
	m := deliveryLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return DeliveryOption{}, ErrInvalidDeliveryOption
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days <= 0 {
		return DeliveryOption{}, ErrInvalidDeliveryOption
	}
	return DeliveryOption{label: strings.TrimSpace(label), leadDays: days}, nil
}

func (d DeliveryOption) Label() string { return d.label }
func (d DeliveryOption) LeadDays() int { return d.leadDays }

type Price struct {
	amount decimal.Decimal
}

func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: amount}, nil
}

func (p Price) Amount() decimal.Decimal { return p.amount }
