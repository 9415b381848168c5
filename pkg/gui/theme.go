package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name     string      `json:"name"`
	Empty    tcell.Color `json:"empty"`
	Border   tcell.Color `json:"border"`
	Label    tcell.Color `json:"label"`
	Score    tcell.Color `json:"score"`
	Level    tcell.Color `json:"level"`
	Msg      tcell.Color `json:"msg"`
	Paused   tcell.Color `json:"paused"`
	GameOver tcell.Color `json:"gameOver"`
	I        tcell.Color `json:"i"`
	J        tcell.Color `json:"j"`
	L        tcell.Color `json:"l"`
	O        tcell.Color `json:"o"`
	S        tcell.Color `json:"s"`
	T        tcell.Color `json:"t"`
	Z        tcell.Color `json:"z"`
}

// ThemeHex is used for dynamically coloring the UI
type ThemeHex struct {
	Name     string `json:"name"`
	Empty    string `json:"empty"`
	Border   string `json:"border"`
	Label    string `json:"label"`
	Score    string `json:"score"`
	Level    string `json:"level"`
	Msg      string `json:"msg"`
	Paused   string `json:"paused"`
	GameOver string `json:"gameOver"`
	I        string `json:"i"`
	J        string `json:"j"`
	L        string `json:"l"`
	O        string `json:"o"`
	S        string `json:"s"`
	T        string `json:"t"`
	Z        string `json:"z"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Empty.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Score.Hex()),
		fmtHex(t.Level.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Paused.Hex()),
		fmtHex(t.GameOver.Hex()),
		fmtHex(t.I.Hex()),
		fmtHex(t.J.Hex()),
		fmtHex(t.L.Hex()),
		fmtHex(t.O.Hex()),
		fmtHex(t.S.Hex()),
		fmtHex(t.T.Hex()),
		fmtHex(t.Z.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Empty),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Score),
		tcell.GetColor(t.Level),
		tcell.GetColor(t.Msg),
		tcell.GetColor(t.Paused),
		tcell.GetColor(t.GameOver),
		tcell.GetColor(t.I),
		tcell.GetColor(t.J),
		tcell.GetColor(t.L),
		tcell.GetColor(t.O),
		tcell.GetColor(t.S),
		tcell.GetColor(t.T),
		tcell.GetColor(t.Z),
	}
}

// BlockColor returns the color a cell with tag b is painted with
func (t Theme) BlockColor(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockI:
		return t.I
	case mino.BlockJ:
		return t.J
	case mino.BlockL:
		return t.L
	case mino.BlockO:
		return t.O
	case mino.BlockS:
		return t.S
	case mino.BlockT:
		return t.T
	case mino.BlockZ:
		return t.Z
	default:
		return t.Empty
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

// LoadThemes reads a JSON array of ThemeHex from path
func LoadThemes(path string) ([]ThemeHex, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}

	var themes []ThemeHex
	if err := json.Unmarshal(b, &themes); err != nil {
		return nil, fmt.Errorf("theme: parse %s: %w", path, err)
	}

	return themes, nil
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",                   // Name
	tcell.Color234,            // Empty
	tcell.Color239,            // Border
	tcell.Color51,             // Label
	tcell.Color226,            // Score
	tcell.Color46,             // Level
	tcell.ColorDefault,        // Msg
	tcell.Color214,            // Paused
	tcell.Color196,            // GameOver
	tcell.GetColor("#00f0f0"), // I
	tcell.GetColor("#0000f0"), // J
	tcell.GetColor("#f0a000"), // L
	tcell.GetColor("#f0f000"), // O
	tcell.GetColor("#00f000"), // S
	tcell.GetColor("#a000f0"), // T
	tcell.GetColor("#f00000"), // Z
}

// ThemeMono only uses the terminal's default colors and grays
var ThemeMono = Theme{
	"mono",             // Name
	tcell.ColorDefault, // Empty
	tcell.Color245,     // Border
	tcell.ColorDefault, // Label
	tcell.ColorDefault, // Score
	tcell.ColorDefault, // Level
	tcell.ColorDefault, // Msg
	tcell.Color250,     // Paused
	tcell.Color250,     // GameOver
	tcell.Color255,     // I
	tcell.Color250,     // J
	tcell.Color247,     // L
	tcell.Color253,     // O
	tcell.Color244,     // S
	tcell.Color252,     // T
	tcell.Color241,     // Z
}

// BuiltinThemes lists the themes available without a config file
var BuiltinThemes = []Theme{ThemeBasic, ThemeMono}
