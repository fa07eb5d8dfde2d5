package gamedata

// ItemDef defines a floor item type loaded from JSON.
type ItemDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "health_potion")
	Name        string `json:"name"`        // Display name (e.g., "Health Potion")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "!")
	Color       string `json:"color"`       // Hex color code
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	if len(i.Glyph) == 0 {
		return '?'
	}
	return rune(i.Glyph[0])
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// MustLoadItems loads item definitions, panicking on error.
func MustLoadItems() []ItemDef {
	items, err := LoadItems()
	if err != nil {
		panic(err)
	}
	return items
}
