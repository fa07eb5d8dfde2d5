package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hollowdeep/internal/gamedata"
)

// Styles holds the message and HUD styles derived from the embedded palette.
type Styles struct {
	Welcome      tcell.Style
	Impossible   tcell.Style
	Invalid      tcell.Style
	PlayerAttack tcell.Style
	EnemyAttack  tcell.Style
	PlayerDie    tcell.Style
	EnemyDie     tcell.Style
	BarText      tcell.Style
}

// NewStyles converts a palette definition into tcell styles.
func NewStyles(def gamedata.PaletteDef) Styles {
	fg := func(hex string) tcell.Style {
		return tcell.StyleDefault.Foreground(gamedata.MustParseHexColor(hex))
	}
	return Styles{
		Welcome:      fg(def.Welcome),
		Impossible:   fg(def.Impossible),
		Invalid:      fg(def.Invalid),
		PlayerAttack: fg(def.PlayerAttack),
		EnemyAttack:  fg(def.EnemyAttack),
		PlayerDie:    fg(def.PlayerDie),
		EnemyDie:     fg(def.EnemyDie),
		BarText:      fg(def.BarText),
	}
}
