// Package preview draws a page fragment in the terminal, approximating the
// utility classes with lipgloss styles.
package preview

import (
	"strings"

	"headings/web/pages/shared"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is used when the caller does not know the terminal width
const DefaultWidth = 60

// Colours matching the stylesheet values of the text-*-700 classes
var (
	Red700  = lipgloss.Color("#b91c1c")
	Blue700 = lipgloss.Color("#1d4ed8")
)

// StyleFor converts a class string into a terminal style.
// Tokens with no terminal meaning (positioning mostly) are ignored.
func StyleFor(classes string, width int) lipgloss.Style {
	style := lipgloss.NewStyle()

	for _, token := range strings.Fields(classes) {
		switch token {
		case "text-red-700":
			style = style.Foreground(Red700)
		case "text-blue-700":
			style = style.Foreground(Blue700)
		case "text-5xl":
			style = style.Bold(true)
		case "p-5":
			style = style.Padding(1, 2)
		case "pt-5":
			style = style.PaddingTop(1)
		case "px-3":
			style = style.PaddingLeft(1).PaddingRight(1)
		case "mt-5":
			style = style.MarginTop(1)
		case "mx-auto":
			style = style.Width(width).Align(lipgloss.Center)
		}
	}

	return style
}

// Render draws each node of the fragment on its own block, top to bottom.
func Render(frag shared.Fragment, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	blocks := make([]string, 0, len(frag.Children))
	for _, n := range frag.Children {
		blocks = append(blocks, renderNode(n, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderNode(n shared.Node, width int) string {
	text := n.Text
	if len(n.Children) > 0 {
		parts := []string{text}
		for _, c := range n.Children {
			parts = append(parts, renderNode(c, width))
		}
		text = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return StyleFor(n.Class, width).Render(text)
}
