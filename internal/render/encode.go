package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Renderer writes a View in one output format
type Renderer interface {
	Render(w io.Writer, view *View) error
	RenderTags(w io.Writer, view *View) error
}

// Output formats accepted by New
const (
	FormatCard = "card"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options configures New
type Options struct {
	Format     string
	DateLayout string
	Width      int
}

// New returns the renderer for opts.Format
func New(opts Options) (Renderer, error) {
	switch opts.Format {
	case "", FormatCard:
		return NewCardRenderer(opts.DateLayout, opts.Width), nil
	case FormatJSON:
		return &JSONRenderer{Indent: "  "}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", opts.Format)
	}
}

// JSONRenderer writes views as JSON
type JSONRenderer struct {
	Indent string
}

// Render writes the whole view
func (r *JSONRenderer) Render(w io.Writer, view *View) error {
	return r.encode(w, view)
}

// RenderTags writes only the tag counts
func (r *JSONRenderer) RenderTags(w io.Writer, view *View) error {
	return r.encode(w, view.Tags)
}

func (r *JSONRenderer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", r.Indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// YAMLRenderer writes views as YAML
type YAMLRenderer struct{}

// Render writes the whole view
func (r *YAMLRenderer) Render(w io.Writer, view *View) error {
	return r.encode(w, view)
}

// RenderTags writes only the tag counts
func (r *YAMLRenderer) RenderTags(w io.Writer, view *View) error {
	return r.encode(w, view.Tags)
}

func (r *YAMLRenderer) encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
