package pokeapi

type NamedResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type PokemonType struct {
	Slot int32         `json:"slot"`
	Type NamedResource `json:"type"`
}

type PokemonAbility struct {
	Slot     int32         `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

type PokemonSprites struct {
	// FrontDefault is null for a handful of forms.
	FrontDefault *string `json:"front_default"`
}

type Pokemon struct {
	Id        int32            `json:"id"`
	Name      string           `json:"name"`
	Height    int32            `json:"height"`
	Weight    int32            `json:"weight"`
	Types     []PokemonType    `json:"types"`
	Abilities []PokemonAbility `json:"abilities"`
	Species   NamedResource    `json:"species"`
	Sprites   PokemonSprites   `json:"sprites"`
}

// SpriteURL returns the default front sprite, or "" when the API has none.
func (p *Pokemon) SpriteURL() string {
	if p.Sprites.FrontDefault == nil {
		return ""
	}
	return *p.Sprites.FrontDefault
}

type Species struct {
	Id          int32  `json:"id"`
	Name        string `json:"name"`
	CaptureRate int32  `json:"capture_rate"`
}
