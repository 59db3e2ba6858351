package quest

// State is the game-flow state. It is the single source of truth for which
// subsystems run each tick and which screen is drawn.
type State uint8

const (
	StateTitle State = iota
	StatePlaying
	StateWin
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Variant describes one ruleset of the game.
type Variant struct {
	ID    string
	Title string

	Initial    State      // State entered on Reset
	Jump       JumpPolicy // When jump presses are honoured
	Procedural bool       // Spawn and prune platforms around the camera
	WinOnCoins bool       // Collecting every coin wins the run
	Clouds     bool       // Draw and drift background clouds
}

var (
	// VariantEndless is the endless runner: title screen, procedural
	// platforms, coyote-time jumping and a high score.
	VariantEndless = Variant{
		ID:         "quest",
		Title:      "Jerry's Quest",
		Initial:    StateTitle,
		Jump:       JumpBuffered,
		Procedural: true,
		Clouds:     true,
	}

	// VariantCollect is the fixed-layout mode: collect every coin on the
	// opening platforms to win.
	VariantCollect = Variant{
		ID:         "coins",
		Title:      "Jerry's Quest: Coin Rush",
		Initial:    StatePlaying,
		Jump:       JumpGrounded,
		WinOnCoins: true,
	}
)
