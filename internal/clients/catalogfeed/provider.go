// Package catalogfeed turns the supported catalog file formats into
// catalog.Data. Every format collapses into the same normalized shape.
package catalogfeed

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-loadout/internal/catalog"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

// Format names a catalog file layout
type Format string

// Supported formats
const (
	FormatAuto      Format = ""
	FormatConstants Format = "constants"
	FormatDatafeed  Format = "datafeed"
	FormatYAML      Format = "yaml"
)

//go:embed sample_catalog.yaml
var sampleCatalog []byte

// Provider supplies catalog data
type Provider interface {
	Load(ctx context.Context) (*catalog.Data, error)
}

// FileProvider reads a catalog from disk
type FileProvider struct {
	Path string

	// Format overrides detection by extension and content
	Format Format
}

var _ Provider = (*FileProvider)(nil)

// Load reads and parses the file
func (p *FileProvider) Load(ctx context.Context) (*catalog.Data, error) {
	if p.Path == "" {
		return nil, errors.InvalidArgument("catalog path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "catalog load cancelled")
	}

	raw, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s does not exist", p.Path)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read catalog file")
	}

	format := p.Format
	if format == FormatAuto {
		format = DetectFormat(p.Path, raw)
	}

	data, err := Parse(format, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog %s", p.Path)
	}
	return data, nil
}

// EmbeddedProvider serves the sample catalog compiled into the binary
type EmbeddedProvider struct{}

var _ Provider = EmbeddedProvider{}

// Load parses the embedded sample catalog
func (EmbeddedProvider) Load(_ context.Context) (*catalog.Data, error) {
	return ParseYAML(sampleCatalog)
}

// DetectFormat picks a format from the file extension, falling back to the
// JSON layout for anything else
func DetectFormat(path string, raw []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	if gjson.GetBytes(raw, "result.data").Exists() {
		return FormatDatafeed
	}
	return FormatConstants
}

// Parse decodes raw data in the given format
func Parse(format Format, raw []byte) (*catalog.Data, error) {
	switch format {
	case FormatConstants:
		return ParseConstants(raw)
	case FormatDatafeed:
		return ParseDatafeed(raw)
	case FormatYAML:
		return ParseYAML(raw)
	case FormatAuto:
		return Parse(DetectFormat("", raw), raw)
	default:
		return nil, errors.InvalidArgumentf("unknown catalog format %q", format)
	}
}
