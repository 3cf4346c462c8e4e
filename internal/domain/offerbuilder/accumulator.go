package offerbuilder

import (
	"errors"
	"math"

	"palettepad/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrLineNotFound  = errors.New("line not found")
	ErrInvalidNumber = errors.New("value must be a finite number")
)

// LineCommand is an explicit edit applied to one selected line.
type LineCommand interface {
	apply(l *entities.SelectedLine) error
}

// SetQuantity replaces the line quantity. Zero and negative values are kept as-is.
type SetQuantity struct {
	Quantity float64
}

func (c SetQuantity) apply(l *entities.SelectedLine) error {
	if !isFinite(c.Quantity) {
		return ErrInvalidNumber
	}
	l.Quantity = c.Quantity
	return nil
}

// SetUnitPrice replaces the line unit price. Zero and negative values are kept as-is.
type SetUnitPrice struct {
	UnitPrice float64
}

func (c SetUnitPrice) apply(l *entities.SelectedLine) error {
	if !isFinite(c.UnitPrice) {
		return ErrInvalidNumber
	}
	l.UnitPrice = c.UnitPrice
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Accumulator holds the selected lines of one in-progress offer.
type Accumulator struct {
	lines []entities.SelectedLine
	newID func() string
}

func NewAccumulator() *Accumulator {
	return &Accumulator{newID: uuid.NewString}
}

// AddLine appends a line for item with quantity 1 and the catalog default price.
// It is a no-op when a line with the same catalog key already exists.
func (a *Accumulator) AddLine(item CatalogItem) (entities.SelectedLine, bool) {
	key := item.Key().String()
	for _, l := range a.lines {
		if l.CatalogKey == key {
			return l, false
		}
	}
	line := entities.SelectedLine{
		ID:         a.newID(),
		Area:       item.Area,
		SubArea:    item.SubArea,
		CatalogKey: key,
		Label:      item.Label,
		Sentence:   item.Sentence,
		Quantity:   1,
		Unit:       item.Unit,
		UnitPrice:  item.DefaultUnitPrice,
	}
	a.lines = append(a.lines, line)
	return line, true
}

// Apply runs cmds against the line with the given id. Either all commands
// apply or the line is left untouched.
func (a *Accumulator) Apply(id string, cmds ...LineCommand) (entities.SelectedLine, error) {
	for i := range a.lines {
		if a.lines[i].ID != id {
			continue
		}
		next := a.lines[i]
		for _, cmd := range cmds {
			if err := cmd.apply(&next); err != nil {
				return a.lines[i], err
			}
		}
		a.lines[i] = next
		return next, nil
	}
	return entities.SelectedLine{}, ErrLineNotFound
}

func (a *Accumulator) Remove(id string) error {
	for i := range a.lines {
		if a.lines[i].ID == id {
			a.lines = append(a.lines[:i], a.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Lines returns an independent copy of the current lines.
func (a *Accumulator) Lines() []entities.SelectedLine {
	return append([]entities.SelectedLine(nil), a.lines...)
}

func (a *Accumulator) Len() int { return len(a.lines) }

// VATConfig controls the VAT added on top of the subtotal.
type VATConfig struct {
	Enabled bool    `json:"enabled"`
	Rate    float64 `json:"rate"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	VAT      float64 `json:"vat"`
	Total    float64 `json:"total"`
}

// ComputeTotals sums quantity × unit price over lines and applies VAT.
func ComputeTotals(lines []entities.SelectedLine, vat VATConfig) Totals {
	var t Totals
	for _, l := range lines {
		t.Subtotal += l.Amount()
	}
	if vat.Enabled {
		t.VAT = t.Subtotal * vat.Rate / 100
	}
	t.Total = t.Subtotal + t.VAT
	return t
}
