package overlay

import (
	"strings"

	"github.com/milk9111/shopfront/prefabs"
)

type LineStyle int

const (
	StyleTitle LineStyle = iota
	StyleHeading
	StyleSubheading
	StyleBody
	StyleMeta
	StyleBullet
	StyleTags
	StyleLink
	StyleAction
)

// scale is the glyph magnification used for each style.
func (s LineStyle) scale() float64 {
	switch s {
	case StyleTitle:
		return 3
	case StyleHeading:
		return 2
	case StyleSubheading, StyleLink, StyleAction:
		return 1.5
	default:
		return 1.25
	}
}

// gapBefore is the extra space above the first line of a block.
func (s LineStyle) gapBefore() float64 {
	switch s {
	case StyleTitle:
		return 0
	case StyleHeading:
		return 28
	case StyleSubheading:
		return 16
	case StyleTags, StyleMeta:
		return 6
	default:
		return 10
	}
}

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionOpen
	ActionCopy
)

type Action struct {
	Kind   ActionKind
	Target string
}

// Line is one laid out row of panel text. Y is relative to the top of the
// content area.
type Line struct {
	Text   string
	Style  LineStyle
	Y      float64
	Width  float64
	Height float64
	Action Action
}

// Metrics is the unscaled glyph cell of the panel font.
type Metrics struct {
	CharWidth  float64
	LineHeight float64
}

// LayoutSection flows a section's title and blocks into lines no wider than
// width. It returns the lines and the total content height.
func LayoutSection(spec prefabs.SectionSpec, width float64, m Metrics) ([]Line, float64) {
	if m.CharWidth <= 0 || m.LineHeight <= 0 {
		return nil, 0
	}
	var lines []Line
	y := 0.0

	add := func(style LineStyle, text string, action Action, first bool) {
		scale := style.scale()
		maxChars := int(width / (m.CharWidth * scale))
		rows := Wrap(text, maxChars)
		if first && len(lines) > 0 {
			y += style.gapBefore()
		}
		for _, row := range rows {
			h := m.LineHeight * scale * 1.3
			lines = append(lines, Line{
				Text:   row,
				Style:  style,
				Y:      y,
				Width:  float64(len([]rune(row))) * m.CharWidth * scale,
				Height: h,
				Action: action,
			})
			y += h
		}
	}

	add(StyleTitle, spec.Title, Action{}, true)
	y += 16

	for _, b := range spec.Blocks {
		switch b.Kind {
		case "heading":
			add(StyleHeading, b.Text, Action{}, true)
		case "subheading":
			add(StyleSubheading, b.Text, Action{}, true)
		case "meta":
			add(StyleMeta, b.Text, Action{}, true)
		case "list":
			for i, item := range b.Items {
				add(StyleBullet, "- "+item, Action{}, i == 0)
			}
		case "tags":
			tags := make([]string, len(b.Items))
			for i, item := range b.Items {
				tags[i] = "[" + item + "]"
			}
			add(StyleTags, strings.Join(tags, " "), Action{}, true)
		case "links":
			for i, l := range b.Links {
				add(StyleLink, "> "+l.Label, Action{Kind: ActionOpen, Target: l.URL}, i == 0)
			}
		case "copy":
			add(StyleAction, "[ copy "+b.Text+" ]", Action{Kind: ActionCopy, Target: b.Text}, true)
		default:
			add(StyleBody, b.Text, Action{}, true)
		}
	}
	return lines, y
}

// Wrap breaks text on spaces into rows of at most maxChars runes. Words
// longer than a row are split.
func Wrap(text string, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxChars < 1 {
		maxChars = 1
	}

	var rows []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			rows = append(rows, string(cur))
			cur = cur[:0]
		}
	}
	for _, word := range words {
		w := []rune(word)
		for len(w) > maxChars {
			flush()
			rows = append(rows, string(w[:maxChars]))
			w = w[maxChars:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= maxChars:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			flush()
			cur = append(cur, w...)
		}
	}
	flush()
	return rows
}
