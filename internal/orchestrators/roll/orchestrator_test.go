package roll_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/generator"
	"github.com/KirkDiggler/rpg-loadout/internal/items"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/roll"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection"
	selectionmock "github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection/mock"
	"github.com/KirkDiggler/rpg-loadout/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-loadout/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-loadout/internal/rules"
	"github.com/KirkDiggler/rpg-loadout/internal/testutils"
	"github.com/KirkDiggler/rpg-loadout/internal/testutils/mocks"
)

const profileID = "profile-1"

// highRoller always rolls the top face
type highRoller struct {
	calls int
}

func (r *highRoller) Roll(size int) (int, error) {
	r.calls++
	return size, nil
}

func (r *highRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	mockSelection *selectionmock.MockService
	roller        *highRoller
	now           time.Time
	orchestrator  roll.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockSelection = selectionmock.NewMockService(s.ctrl)
	s.roller = &highRoller{}
	s.now = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	store := testutils.CreateTestStore(s.T())
	engine, err := rules.New(rules.DefaultConfig(), store)
	s.Require().NoError(err)
	filter, err := items.NewFilter(items.DefaultConfig(), store)
	s.Require().NoError(err)
	gen, err := generator.New(&generator.Config{Catalog: store, Rules: engine, Items: filter})
	s.Require().NoError(err)

	o, err := roll.NewOrchestrator(&roll.Config{
		Selection:   s.mockSelection,
		Generator:   gen,
		IDGenerator: idgen.NewSequential("build"),
		Clock:       &clock.Fixed{At: s.now},
		DiceRoller:  s.roller,
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) expectSelection(active ...string) {
	states := make([]selection.CharacterState, 0, len(testutils.TestCharacterKeys()))
	on := map[string]bool{}
	for _, k := range active {
		on[k] = true
	}
	for _, k := range testutils.TestCharacterKeys() {
		states = append(states, selection.CharacterState{
			Character: entities.Character{Key: k},
			Active:    on[k],
		})
	}

	mocks.ExpectActiveSelection(s.ctx, s.mockSelection, profileID, &selection.View{
		ProfileID:  profileID,
		Characters: states,
	}, nil)
}

func seed(v uint64) *uint64 {
	return &v
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	_, err := roll.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = roll.NewOrchestrator(&roll.Config{})
	s.Require().Error(err)
	for _, field := range []string{"Selection", "Generator", "IDGenerator", "Clock"} {
		s.Contains(err.Error(), field)
	}
}

func (s *OrchestratorTestSuite) TestRollBuildWithDiceRoller() {
	s.expectSelection(testutils.CharacterAxe, testutils.CharacterInvoker)

	out, err := s.orchestrator.RollBuild(s.ctx, &roll.RollBuildInput{ProfileID: profileID})
	s.Require().NoError(err)

	rolled := out.Build
	s.Equal("build_1", rolled.ID)
	s.Equal(profileID, rolled.ProfileID)
	s.True(rolled.RolledAt.Equal(s.now))
	s.Nil(rolled.Seed)
	s.Positive(s.roller.calls)

	// the top face maps to the last candidate
	s.Equal(testutils.CharacterInvoker, rolled.Build.Character().Key)
	s.Equal("guardian_greaves", rolled.Build.MovementItem().Key)
	s.Len(rolled.Build.Skills(), generator.DefaultLevels)
}

func (s *OrchestratorTestSuite) TestRollBuildSeededIsReproducible() {
	s.expectSelection(testutils.TestCharacterKeys()...)
	s.expectSelection(testutils.TestCharacterKeys()...)

	first, err := s.orchestrator.RollBuild(s.ctx, &roll.RollBuildInput{ProfileID: profileID, Seed: seed(77)})
	s.Require().NoError(err)
	second, err := s.orchestrator.RollBuild(s.ctx, &roll.RollBuildInput{ProfileID: profileID, Seed: seed(77)})
	s.Require().NoError(err)

	s.Equal(uint64(77), *first.Build.Seed)
	s.NotEqual(first.Build.ID, second.Build.ID)
	s.Equal(first.Build.Build.Character(), second.Build.Build.Character())
	s.Equal(first.Build.Build.Items(), second.Build.Build.Items())
	s.Equal(first.Build.Build.Skills(), second.Build.Build.Skills())
	s.Zero(s.roller.calls)
}

func (s *OrchestratorTestSuite) TestRollBuildNoActiveCharacter() {
	s.expectSelection()

	_, err := s.orchestrator.RollBuild(s.ctx, &roll.RollBuildInput{ProfileID: profileID})
	s.Require().Error(err)
	s.True(generator.IsNoActiveCharacter(err))
	s.Contains(err.Error(), "failed to generate build")
}

func (s *OrchestratorTestSuite) TestRollBuildSelectionFailure() {
	mocks.ExpectActiveSelection(s.ctx, s.mockSelection, profileID, nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.RollBuild(s.ctx, &roll.RollBuildInput{ProfileID: profileID})
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestRollBuildValidation() {
	_, err := s.orchestrator.RollBuild(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.RollBuild(s.ctx, &roll.RollBuildInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollBuilds() {
	s.expectSelection(testutils.TestCharacterKeys()...)

	out, err := s.orchestrator.RollBuilds(s.ctx, &roll.RollBuildsInput{
		ProfileID: profileID,
		Seed:      seed(10),
		Count:     3,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Builds, 3)

	for i, b := range out.Builds {
		s.Equal(uint64(10+i), *b.Seed)
	}
	s.Equal([]string{"build_1", "build_2", "build_3"},
		[]string{out.Builds[0].ID, out.Builds[1].ID, out.Builds[2].ID})

	// build 2 on its own matches build 2 of the batch
	s.expectSelection(testutils.TestCharacterKeys()...)
	single, err := s.orchestrator.RollBuild(s.ctx, &roll.RollBuildInput{ProfileID: profileID, Seed: seed(11)})
	s.Require().NoError(err)
	s.Equal(out.Builds[1].Build.Items(), single.Build.Build.Items())
	s.Equal(out.Builds[1].Build.Skills(), single.Build.Build.Skills())
}

func (s *OrchestratorTestSuite) TestRollBuildsCount() {
	testCases := []struct {
		name  string
		count int
	}{
		{name: "zero", count: 0},
		{name: "negative", count: -2},
		{name: "too many", count: roll.MaxBatchSize + 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.RollBuilds(s.ctx, &roll.RollBuildsInput{ProfileID: profileID, Count: tc.count})
			s.Equal(errors.CodeOutOfRange, errors.GetCode(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestRollBuildsStopsOnFailure() {
	s.expectSelection()

	_, err := s.orchestrator.RollBuilds(s.ctx, &roll.RollBuildsInput{ProfileID: profileID, Count: 2})
	s.Require().Error(err)
	s.True(generator.IsNoActiveCharacter(err))
	s.Contains(err.Error(), "build 1 of 2")
}
