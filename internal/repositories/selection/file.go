package selection

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/pkg/clock"
)

// profile IDs become file names
var profileFilePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// FileConfig holds the configuration for the file repository
type FileConfig struct {
	// Dir holds one YAML file per profile; it is created on first write
	Dir   string
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Dir == "" {
		vb.RequiredField("Dir")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type fileRepository struct {
	mu    sync.Mutex
	dir   string
	clock clock.Clock
}

// selectionFile is the on-disk layout of one profile
type selectionFile struct {
	ProfileID string   `yaml:"profile_id"`
	Disabled  []string `yaml:"disabled"`
	UpdatedAt string   `yaml:"updated_at"`
}

// NewFileRepository creates a repository that keeps selections in a local
// state directory, so they survive between command invocations
func NewFileRepository(cfg *FileConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &fileRepository{
		dir:   cfg.Dir,
		clock: cfg.Clock,
	}, nil
}

var _ Repository = (*fileRepository)(nil)

// Get reads the profile's file
func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	path, err := r.path(input.ProfileID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	raw, err := os.ReadFile(path)
	r.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("no selection saved for profile %s", input.ProfileID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read selection file")
	}

	var stored selectionFile
	if err := yaml.Unmarshal(raw, &stored); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "corrupt selection file")
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, stored.UpdatedAt)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "corrupt selection timestamp")
	}

	return &GetOutput{
		Selection: &Selection{
			ProfileID: input.ProfileID,
			Disabled:  normalize(stored.Disabled),
			UpdatedAt: updatedAt,
		},
	}, nil
}

// Update replaces the profile's file through a rename
func (r *fileRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	path, err := r.path(input.ProfileID)
	if err != nil {
		return nil, err
	}

	sel := &Selection{
		ProfileID: input.ProfileID,
		Disabled:  normalize(input.Disabled),
		UpdatedAt: r.clock.Now(),
	}

	raw, err := yaml.Marshal(&selectionFile{
		ProfileID: sel.ProfileID,
		Disabled:  sel.Disabled,
		UpdatedAt: sel.UpdatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode selection")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create state directory")
	}
	if err := writeFileAtomic(path, raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write selection file")
	}

	return &UpdateOutput{Selection: copySelection(sel)}, nil
}

// Delete removes the profile's file
func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	path, err := r.path(input.ProfileID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &DeleteOutput{Existed: false}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete selection file")
	}
	return &DeleteOutput{Existed: true}, nil
}

func (r *fileRepository) path(profileID string) (string, error) {
	if profileID == "" {
		return "", errors.InvalidArgument(errProfileIDNone)
	}
	if !profileFilePattern.MatchString(profileID) {
		return "", errors.InvalidArgumentf("profile ID %q may only use letters, digits, '.', '_' and '-'", profileID)
	}
	return filepath.Join(r.dir, profileID+".yaml"), nil
}

func writeFileAtomic(path string, raw []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".selection-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
