package entity

import "github.com/shopspring/decimal"

// CartLine snapshot de un MenuItem más la cantidad (siempre >= 1).
type CartLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// LineTotal cantidad * precio efectivo.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Clone copia profunda de la línea.
func (l CartLine) Clone() CartLine {
	l.MenuItem = l.MenuItem.Clone()
	return l
}

// CloneLines copia profunda de una lista de líneas.
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}
