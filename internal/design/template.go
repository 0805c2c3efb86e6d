package design

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound is returned when no template matches a lookup.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateConfig is the partial design a template applies. Optional fields
// are empty strings when the template does not specify them.
type TemplateConfig struct {
	GradientEnabled bool             `json:"gradientEnabled"`
	DotsColor       string           `json:"dotsColor,omitempty"`
	Bg              string           `json:"bg"`
	Shape           DotType          `json:"shape"`
	EyeFrame        CornerSquareType `json:"eyeFrame"`
	EyeDot          CornerDotType    `json:"eyeDot"`
	CustomEye       bool             `json:"customEye"`
	GType           GradientType     `json:"gType,omitempty"`
	G1              string           `json:"g1,omitempty"`
	G2              string           `json:"g2,omitempty"`
	FrameColor      string           `json:"frameColor,omitempty"`
	DotColor        string           `json:"dotColor,omitempty"`
}

// Template is a named, immutable preset.
type Template struct {
	Name   string         `json:"name"`
	Config TemplateConfig `json:"config"`
}

// Category groups templates under a heading.
type Category struct {
	Name      string     `json:"name"`
	Templates []Template `json:"templates"`
}

// Apply merges the template into the style. Fields the template leaves empty
// keep their current value; the gradient and custom eye flags are always taken
// from the template.
func (t TemplateConfig) Apply(s *Style) {
	s.Gradient.Enabled = t.GradientEnabled

	switch {
	case t.GradientEnabled && t.G1 != "" && t.G2 != "":
		s.Gradient.Type = GradientLinear
		if t.GType != "" {
			s.Gradient.Type = t.GType
		}

		s.Gradient.C1 = t.G1
		s.Gradient.C2 = t.G2
	case t.DotsColor != "":
		s.Design.DotsOptions.Color = t.DotsColor
	}

	s.CustomEye = t.CustomEye
	if t.CustomEye && t.FrameColor != "" && t.DotColor != "" {
		s.Design.CornersSquareOptions.Color = t.FrameColor
		s.Design.CornersDotOptions.Color = t.DotColor
	}

	s.Design.BackgroundOptions.Color = t.Bg
	s.Design.DotsOptions.Type = t.Shape
	s.Design.CornersSquareOptions.Type = t.EyeFrame
	s.Design.CornersDotOptions.Type = t.EyeDot
}

// Catalog returns the built-in template categories in display order.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	for i, c := range catalog {
		out[i] = Category{Name: c.Name, Templates: append([]Template(nil), c.Templates...)}
	}

	return out
}

// Lookup finds a template by category and name. An empty category searches all.
func Lookup(category, name string) (Template, error) {
	for _, c := range catalog {
		if category != "" && c.Name != category {
			continue
		}

		for _, t := range c.Templates {
			if t.Name == name {
				return t, nil
			}
		}
	}

	return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
}
