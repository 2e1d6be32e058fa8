// Color themes for the board renderer.
package tui

import "fmt"

// RGB is a 24-bit truecolor value.
type RGB struct {
	R, G, B uint8
}

// Fg returns the escape sequence setting c as the foreground color.
func (c RGB) Fg() string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Bg returns the escape sequence setting c as the background color.
func (c RGB) Bg() string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Theme maps board roles to colors.
type Theme struct {
	GameBg        RGB // screen background
	CellBase      RGB // inactive cell
	CellRowActive RGB // cell in the row being edited
	CellActive    RGB // cell under the edit cursor
	CellPresent   RGB // letter in the word, wrong spot
	CellCorrect   RGB // letter in the right spot
	TextBase      RGB // letters on neutral cells
	TextInverted  RGB // letters on present/correct cells
}

// Catppuccin Mocha.
var DarkTheme = Theme{
	GameBg:        RGB{30, 30, 46},
	CellBase:      RGB{69, 71, 90},
	CellRowActive: RGB{88, 91, 112},
	CellActive:    RGB{127, 132, 156},
	CellPresent:   RGB{249, 226, 175},
	CellCorrect:   RGB{166, 227, 161},
	TextBase:      RGB{205, 214, 244},
	TextInverted:  RGB{30, 30, 46},
}

// Catppuccin Latte.
var LightTheme = Theme{
	GameBg:        RGB{239, 241, 245},
	CellBase:      RGB{188, 192, 204},
	CellRowActive: RGB{172, 176, 190},
	CellActive:    RGB{140, 143, 161},
	CellPresent:   RGB{223, 142, 29},
	CellCorrect:   RGB{64, 160, 43},
	TextBase:      RGB{76, 79, 105},
	TextInverted:  RGB{239, 241, 245},
}

// ThemeByName resolves a config theme name; unknown names fall back to
// the dark theme.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme
	}
	return DarkTheme
}
