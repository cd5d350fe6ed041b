package response

import "github.com/shopspring/decimal"

// Amount is a money value written as a bare JSON number with every stored
// digit, e.g. 1234567890123456.78. Clients that read it back as a string or a
// decimal can accept it verbatim.
type Amount decimal.Decimal

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

func amountPtr(d *decimal.Decimal) *Amount {
	if d == nil {
		return nil
	}
	a := Amount(*d)
	return &a
}
