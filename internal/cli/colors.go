package cli

import (
	"github.com/fatih/color"

	"github.com/tiwariParth/todo/internal/models"
)

// palette holds the colors used for task listings. Disabled palettes
// render plain text.
type palette struct {
	bold   *color.Color
	red    *color.Color
	yellow *color.Color
	green  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		bold:   color.New(color.Bold),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		green:  color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.bold, p.red, p.yellow, p.green} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Bold renders s in bold.
func (p palette) Bold(s string) string { return p.bold.Sprint(s) }

// Red renders s in red.
func (p palette) Red(s string) string { return p.red.Sprint(s) }

// Green renders s in green.
func (p palette) Green(s string) string { return p.green.Sprint(s) }

func (p palette) importance(i models.Importance) string {
	switch i {
	case models.High:
		return p.red.Sprint(i.String())
	case models.Mid:
		return p.yellow.Sprint(i.String())
	default:
		return p.green.Sprint(i.String())
	}
}

func (p palette) status(t models.Task) string {
	if t.Completed {
		return p.Green(t.Status())
	}
	return p.Red(t.Status())
}
