// Package roll turns a profile's selection into freshly generated builds
package roll

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/generator"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection"
	"github.com/KirkDiggler/rpg-loadout/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-loadout/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-loadout/internal/random"
)

// MaxBatchSize caps RollBuilds
const MaxBatchSize = 20

// Service defines the roll operations
type Service interface {
	RollBuild(ctx context.Context, input *RollBuildInput) (*RollBuildOutput, error)
	RollBuilds(ctx context.Context, input *RollBuildsInput) (*RollBuildsOutput, error)
}

// BuildGenerator draws a build from the active characters
type BuildGenerator interface {
	GenerateBuild(active []string, src random.Source) (*generator.Build, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	Selection   selection.Service
	Generator   BuildGenerator
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// DiceRoller drives unseeded rolls, dice.DefaultRoller when nil
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Selection == nil {
		vb.RequiredField("Selection")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	selection selection.Service
	generator BuildGenerator
	idGen     idgen.Generator
	clock     clock.Clock
	roller    dice.Roller
}

// NewOrchestrator creates a new roll orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		selection: cfg.Selection,
		generator: cfg.Generator,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		roller:    roller,
	}, nil
}

// RollBuild generates one build for the profile's active characters
func (o *orchestrator) RollBuild(ctx context.Context, input *RollBuildInput) (*RollBuildOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	active, err := o.activeKeys(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	rolled, err := o.roll(input.ProfileID, active, input.Seed)
	if err != nil {
		return nil, err
	}

	return &RollBuildOutput{Build: rolled}, nil
}

// RollBuilds generates Count builds from one read of the selection
func (o *orchestrator) RollBuilds(ctx context.Context, input *RollBuildsInput) (*RollBuildsOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}
	if input.Count < 1 || input.Count > MaxBatchSize {
		return nil, errors.OutOfRangef("count must be between 1 and %d, got %d", MaxBatchSize, input.Count)
	}

	active, err := o.activeKeys(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	builds := make([]*RolledBuild, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		var seed *uint64
		if input.Seed != nil {
			s := *input.Seed + uint64(i)
			seed = &s
		}

		rolled, err := o.roll(input.ProfileID, active, seed)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll build %d of %d", i+1, input.Count)
		}
		builds = append(builds, rolled)
	}

	return &RollBuildsOutput{Builds: builds}, nil
}

func (o *orchestrator) activeKeys(ctx context.Context, profileID string) ([]string, error) {
	out, err := o.selection.GetSelection(ctx, &selection.GetSelectionInput{ProfileID: profileID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load selection")
	}
	return out.Selection.ActiveKeys(), nil
}

func (o *orchestrator) roll(profileID string, active []string, seed *uint64) (*RolledBuild, error) {
	src := random.FromRoller(o.roller)
	if seed != nil {
		src = random.NewSeeded(*seed)
	}

	build, err := o.generator.GenerateBuild(active, src)
	if err != nil {
		if generator.IsNoActiveCharacter(err) || generator.IsNoMovementItem(err) {
			slog.Warn("Build could not be generated",
				"profile_id", profileID,
				"reason", errors.GetReason(err))
		}
		return nil, errors.Wrap(err, "failed to generate build")
	}

	rolled := &RolledBuild{
		ID:        o.idGen.Generate(),
		ProfileID: profileID,
		RolledAt:  o.clock.Now(),
		Seed:      seed,
		Build:     build,
	}

	slog.Info("Build rolled",
		"build_id", rolled.ID,
		"profile_id", profileID,
		"character", build.Character().Key,
		"movement_item", build.MovementItem().Key,
		"highlights", len(build.HighlightItems()),
		"seeded", seed != nil)

	return rolled, nil
}
