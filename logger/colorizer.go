// This file is part of Geodash.
//
// Geodash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Geodash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Geodash.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colorizer styles log entries for output to a terminal. The tag is
// highlighted and any lines after the first line of the detail are dimmed.
//
// Styling is dropped automatically by lipgloss if the output is not a
// terminal.
type Colorizer struct {
	tag    lipgloss.Style
	detail lipgloss.Style
	extra  lipgloss.Style
	repeat lipgloss.Style
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer() *Colorizer {
	return &Colorizer{
		tag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		detail: lipgloss.NewStyle(),
		extra:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Faint(true),
		repeat: lipgloss.NewStyle().Faint(true),
	}
}

// Entry writes the styled entry to the output.
func (c *Colorizer) Entry(out io.Writer, e *Entry) {
	l := strings.Split(e.Detail, "\n")

	s := strings.Builder{}
	s.WriteString(c.tag.Render(e.Tag + ":"))
	s.WriteString(" ")
	s.WriteString(c.detail.Render(l[0]))
	if e.repeated > 0 {
		s.WriteString(" ")
		s.WriteString(c.repeat.Render(fmt.Sprintf("(repeat x%d)", e.repeated+1)))
	}
	s.WriteString("\n")

	for _, x := range l[1:] {
		s.WriteString(c.extra.Render(x))
		s.WriteString("\n")
	}

	io.WriteString(out, s.String())
}
