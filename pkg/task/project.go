package task

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultProjectIcon is used for projects created without an explicit icon.
const DefaultProjectIcon = "📁"

// Project groups tasks.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// Clone returns a copy of the project.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// Section orders a subset of a project's tasks under a heading.
type Section struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	Order     int    `json:"order"`
}

// Clone returns a copy of the section.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

// RandomColor returns a pleasant random hex color for new projects.
func RandomColor() string {
	return colorful.FastHappyColor().Hex()
}

// NormalizeColor validates a hex color (with or without the leading #) and
// returns it in canonical #rrggbb form.
func NormalizeColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("task: invalid color %q", s)
	}
	return c.Hex(), nil
}
