package manifest

import (
	"encoding/json"
	"io"

	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// FormatYAML renders configurations as a YAML sequence.
	FormatYAML = "yaml"
	// FormatJSON renders configurations as an indented JSON array.
	FormatJSON = "json"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes configs to w in the given format.
func (r *Renderer) Render(w io.Writer, configs []domain.ResolvedBuildConfig, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(configs); err != nil {
			return zerr.Wrap(domain.ErrManifestEncodeFailed, err.Error())
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(domain.ErrManifestEncodeFailed, err.Error())
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(configs); err != nil {
			return zerr.Wrap(domain.ErrManifestEncodeFailed, err.Error())
		}
		return nil
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidOutputFormat, "unsupported output format"), "format", format)
	}
}
