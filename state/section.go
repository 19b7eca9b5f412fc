package state

import (
	"fmt"
	"strings"
)

// Section identifies which content panel is open. The zero value is the
// home view with no panel.
type Section string

const (
	SectionNone     Section = ""
	SectionProjects Section = "projects"
	SectionAbout    Section = "about"
	SectionSkills   Section = "skills"
	SectionContact  Section = "contact"
)

// Sections lists every selectable section in display order.
var Sections = []Section{SectionProjects, SectionAbout, SectionSkills, SectionContact}

// ParseSection accepts a section id case-insensitively. "none", "home" and
// the empty string map to SectionNone.
func ParseSection(s string) (Section, error) {
	switch v := Section(strings.ToLower(strings.TrimSpace(s))); v {
	case SectionNone, "none", "home":
		return SectionNone, nil
	case SectionProjects, SectionAbout, SectionSkills, SectionContact:
		return v, nil
	default:
		return SectionNone, fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
}

// Selectable reports whether s names a content panel.
func (s Section) Selectable() bool {
	switch s {
	case SectionProjects, SectionAbout, SectionSkills, SectionContact:
		return true
	}
	return false
}

func (s Section) String() string {
	if s == SectionNone {
		return "none"
	}
	return string(s)
}
