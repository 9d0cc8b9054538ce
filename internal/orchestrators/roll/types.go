package roll

import (
	"time"

	"github.com/KirkDiggler/rpg-loadout/internal/generator"
)

// RolledBuild is a generated build stamped for display. Builds are not stored.
type RolledBuild struct {
	ID        string
	ProfileID string
	RolledAt  time.Time

	// Seed reproduces the build with RollBuildInput.Seed; nil when the dice
	// roller was used
	Seed *uint64

	Build *generator.Build
}

// RollBuildInput selects the profile whose selection is rolled from
type RollBuildInput struct {
	ProfileID string
	Seed      *uint64
}

// RollBuildOutput contains the rolled build
type RollBuildOutput struct {
	Build *RolledBuild
}

// RollBuildsInput rolls several builds at once. With a seed, build i uses
// Seed+i.
type RollBuildsInput struct {
	ProfileID string
	Seed      *uint64
	Count     int
}

// RollBuildsOutput contains the builds in roll order
type RollBuildsOutput struct {
	Builds []*RolledBuild
}
