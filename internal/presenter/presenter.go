// Package presenter writes builds, selections and catalog summaries for the
// command line, either as styled text or as JSON.
package presenter

import (
	"io"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/roll"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection"
)

// Format selects the output encoding
type Format string

// Output formats
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// CatalogSummary describes a loaded catalog
type CatalogSummary struct {
	Characters    int      `json:"characters"`
	Items         int      `json:"items"`
	Abilities     int      `json:"abilities"`
	MovementItems []string `json:"movement_items"`
	HighlightPool int      `json:"highlight_pool"`
	Orphans       []string `json:"orphan_abilities,omitempty"`
}

// Presenter renders results to a writer
type Presenter interface {
	Builds(w io.Writer, builds []*roll.RolledBuild) error
	Selection(w io.Writer, view *selection.View) error
	Catalog(w io.Writer, summary *CatalogSummary) error
}

// Options tune the output
type Options struct {
	// ImageBaseURL, when set, adds image links to JSON output
	ImageBaseURL string
}

// New returns the presenter for a format. An empty format means text.
func New(format Format, opts *Options) (Presenter, error) {
	if opts == nil {
		opts = &Options{}
	}

	switch format {
	case FormatText, "":
		return &textPresenter{}, nil
	case FormatJSON:
		return &jsonPresenter{imageBaseURL: opts.ImageBaseURL}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown output format %q", format)
	}
}
