package models

import (
	"testing"

	"pokedex/internal/pokeapi"

	"github.com/stretchr/testify/assert"
)

func pokemon(name string, height, weight int32, types []string, abilities []string) *pokeapi.Pokemon {
	p := &pokeapi.Pokemon{Name: name, Height: height, Weight: weight}
	for i, t := range types {
		p.Types = append(p.Types, pokeapi.PokemonType{Slot: int32(i + 1), Type: pokeapi.NamedResource{Name: t}})
	}
	for i, a := range abilities {
		p.Abilities = append(p.Abilities, pokeapi.PokemonAbility{Slot: int32(i + 1), Ability: pokeapi.NamedResource{Name: a}})
	}
	return p
}

func TestNewEntryDualType(t *testing.T) {
	e := NewEntry(pokemon("bulbasaur", 7, 69, []string{"grass", "poison"}, []string{"overgrow", "chlorophyll"}))

	assert.Equal(t, "Bulbasaur", e.Name)
	assert.Equal(t, "Type 1: Grass", e.Type1)
	assert.Equal(t, "Type 2: Poison", e.Type2)
	assert.Equal(t, "Abilities: Overgrow, Chlorophyll", e.Abilities)
	assert.Equal(t, "Height: 0.7 m", e.Height)
	assert.Equal(t, "Weight: 6.9 kg", e.Weight)
	assert.Equal(t, "Catch Rate: N/A", e.CatchRate)
	assert.Nil(t, e.Sprite)
}

func TestNewEntrySingleType(t *testing.T) {
	e := NewEntry(pokemon("ditto", 3, 40, []string{"normal"}, []string{"limber"}))

	assert.Equal(t, "Type 1: Normal", e.Type1)
	assert.Equal(t, "Type 2: N/A", e.Type2)
	assert.Equal(t, "Weight: 4.0 kg", e.Weight)
}

func TestNewEntryWithoutTypes(t *testing.T) {
	e := NewEntry(pokemon("unknown", 10, 10, nil, nil))

	assert.Equal(t, "Type 1: N/A", e.Type1)
	assert.Equal(t, "Type 2: N/A", e.Type2)
	assert.Equal(t, "Abilities: ", e.Abilities)
}

func TestCatchRate(t *testing.T) {
	e := NewEntry(pokemon("ditto", 3, 40, []string{"normal"}, nil))

	e.SetCatchRate(35)
	assert.Equal(t, "Catch Rate: 35", e.CatchRate)

	e.ClearCatchRate()
	assert.Equal(t, "Catch Rate: N/A", e.CatchRate)
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"pikachu": "Pikachu",
		"mr-mime": "Mr-mime",
		"PIKACHU": "Pikachu",
		"éevee":   "Éevee",
	}
	for in, want := range cases {
		assert.Equal(t, want, Capitalize(in), in)
	}
}

func TestFormatTenths(t *testing.T) {
	assert.Equal(t, "0.7", FormatTenths(7))
	assert.Equal(t, "1.0", FormatTenths(10))
	assert.Equal(t, "6.9", FormatTenths(69))
	assert.Equal(t, "100.0", FormatTenths(1000))
	assert.Equal(t, "0.0", FormatTenths(0))
	assert.Equal(t, "-0.5", FormatTenths(-5))
}
