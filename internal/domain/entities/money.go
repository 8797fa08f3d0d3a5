package entities

import (
	"fmt"
	"math"
)

// Money is an amount in centavos (BRL). Arithmetic stays in integers so
// ledger sums are exact; conversion to reais only happens at the edges.
type Money int64

// MoneyFromReais rounds to the nearest centavo.
func MoneyFromReais(v float64) Money {
	return Money(math.Round(v * 100))
}

func (m Money) Reais() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%sR$ %d.%02d", sign, v/100, v%100)
}
