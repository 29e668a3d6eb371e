package models

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"pokedex/internal/pokeapi"
)

// NotAvailable stands in for any value the API could not provide.
const NotAvailable = "N/A"

// Entry holds the label texts and sprite of one lookup, formatted for display.
type Entry struct {
	Name      string
	Type1     string
	Type2     string
	Abilities string
	Height    string
	Weight    string
	CatchRate string
	Sprite    image.Image
}

// NewEntry formats a creature resource. Catch rate starts as N/A and the
// sprite as blank until the secondary lookups fill them in.
func NewEntry(p *pokeapi.Pokemon) *Entry {
	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, Capitalize(t.Type.Name))
	}
	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, Capitalize(a.Ability.Name))
	}

	return &Entry{
		Name:      Capitalize(p.Name),
		Type1:     "Type 1: " + nth(types, 0),
		Type2:     "Type 2: " + nth(types, 1),
		Abilities: "Abilities: " + strings.Join(abilities, ", "),
		Height:    fmt.Sprintf("Height: %s m", FormatTenths(p.Height)),
		Weight:    fmt.Sprintf("Weight: %s kg", FormatTenths(p.Weight)),
		CatchRate: "Catch Rate: " + NotAvailable,
	}
}

// SetCatchRate formats the species capture rate.
func (e *Entry) SetCatchRate(rate int32) {
	e.CatchRate = "Catch Rate: " + strconv.Itoa(int(rate))
}

// ClearCatchRate marks the catch rate unavailable.
func (e *Entry) ClearCatchRate() {
	e.CatchRate = "Catch Rate: " + NotAvailable
}

func nth(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return NotAvailable
}

// Capitalize upper-cases the first letter and lower-cases the rest,
// so "mr-mime" becomes "Mr-mime".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

// FormatTenths renders an API unit count (decimetres, hectograms) in the
// next unit up with at least one decimal: 7 -> "0.7", 1000 -> "100.0".
func FormatTenths(v int32) string {
	sign := ""
	n := int64(v)
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%d", sign, n/10, n%10)
}
