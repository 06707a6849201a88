package styles

import "github.com/charmbracelet/lipgloss"

// Shades shared by every theme.
var (
	Slate200 = lipgloss.Color("#e2e8f0")
	Slate900 = lipgloss.Color("#0f172a")
	Slate950 = lipgloss.Color("#020617")
)

// Palette is one accent scale of the fixed theme list.
type Palette struct {
	Name string
	C400 lipgloss.Color
	C900 lipgloss.Color
}

// Palettes is the ordered theme list cycled with h/l. The indices matter:
// theme state is an index into this slice.
var Palettes = []Palette{
	{Name: "blue", C400: lipgloss.Color("#60a5fa"), C900: lipgloss.Color("#1e3a8a")},
	{Name: "emerald", C400: lipgloss.Color("#34d399"), C900: lipgloss.Color("#064e3b")},
	{Name: "indigo", C400: lipgloss.Color("#818cf8"), C900: lipgloss.Color("#312e81")},
	{Name: "red", C400: lipgloss.Color("#f87171"), C900: lipgloss.Color("#7f1d1d")},
}

// TableColors is the resolved color set the renderer works with.
type TableColors struct {
	BufferBG     lipgloss.Color
	HeaderBG     lipgloss.Color
	HeaderFG     lipgloss.Color
	RowFG        lipgloss.Color
	SelectedFG   lipgloss.Color
	NormalRowBG  lipgloss.Color
	AltRowBG     lipgloss.Color
	FooterBorder lipgloss.Color
}

// NewTableColors derives the working colors from one palette.
func NewTableColors(p Palette) TableColors {
	return TableColors{
		BufferBG:     Slate950,
		HeaderBG:     p.C900,
		HeaderFG:     Slate200,
		RowFG:        Slate200,
		SelectedFG:   p.C400,
		NormalRowBG:  Slate950,
		AltRowBG:     Slate900,
		FooterBorder: p.C400,
	}
}

var (
	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	SearchTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFF7DB"))
)

// ColorForDirection styles a price string by its movement since the previous
// refresh.
func ColorForDirection(dir string) lipgloss.Style {
	sStyle := StatusStyle
	if dir == "UP" {
		return sStyle.Foreground(lipgloss.Color("46")) // Green
	} else if dir == "DOWN" {
		return sStyle.Foreground(lipgloss.Color("196")) // Red
	}
	return sStyle.UnsetBold().Foreground(Slate200)
}
