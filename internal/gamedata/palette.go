package gamedata

// PaletteDef defines the message and UI color palette loaded from JSON.
// All values are hex color strings (e.g., "#20A0FF").
type PaletteDef struct {
	Welcome      string `json:"welcome"`      // Greeting shown on game start
	Impossible   string `json:"impossible"`   // Actions that cannot be performed
	Invalid      string `json:"invalid"`      // Malformed or rejected input
	PlayerAttack string `json:"playerAttack"` // Player-initiated combat messages
	EnemyAttack  string `json:"enemyAttack"`  // Enemy-initiated combat messages
	PlayerDie    string `json:"playerDie"`    // Player death announcement
	EnemyDie     string `json:"enemyDie"`     // Monster death announcements
	BarText      string `json:"barText"`      // HUD text such as the HP readout
}

// PaletteFile represents the structure of colors.json.
type PaletteFile struct {
	Palette PaletteDef `json:"palette"`
}

// LoadPalette loads the palette definition from the embedded colors.json file.
func LoadPalette() (PaletteDef, error) {
	file, err := Load[PaletteFile]("colors.json")
	if err != nil {
		return PaletteDef{}, err
	}
	return file.Palette, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() PaletteDef {
	palette, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return palette
}
