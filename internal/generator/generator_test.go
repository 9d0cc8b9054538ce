package generator_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-loadout/internal/catalog"
	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/generator"
	"github.com/KirkDiggler/rpg-loadout/internal/items"
	"github.com/KirkDiggler/rpg-loadout/internal/random"
	randommock "github.com/KirkDiggler/rpg-loadout/internal/random/mock"
	"github.com/KirkDiggler/rpg-loadout/internal/rules"
	"github.com/KirkDiggler/rpg-loadout/internal/testutils"
)

type GeneratorTestSuite struct {
	suite.Suite
	store     *catalog.Store
	rules     *rules.Engine
	filter    *items.Filter
	generator *generator.Generator
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.store = testutils.CreateTestStore(s.T())
	s.rules, s.filter, s.generator = s.wire(s.store)
}

func (s *GeneratorTestSuite) wire(store *catalog.Store) (*rules.Engine, *items.Filter, *generator.Generator) {
	engine, err := rules.New(rules.DefaultConfig(), store)
	s.Require().NoError(err)

	filter, err := items.NewFilter(items.DefaultConfig(), store)
	s.Require().NoError(err)

	gen, err := generator.New(&generator.Config{
		Catalog: store,
		Rules:   engine,
		Items:   filter,
	})
	s.Require().NoError(err)

	return engine, filter, gen
}

func itemKeys(list []entities.Item) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.Key
	}
	return out
}

func (s *GeneratorTestSuite) TestNew() {
	_, err := generator.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = generator.New(&generator.Config{Levels: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Catalog")
	s.Contains(err.Error(), "Rules")
	s.Contains(err.Error(), "Items")
	s.Contains(err.Error(), "Levels")
}

func (s *GeneratorTestSuite) TestGenerateBuildFirstDraws() {
	build, err := s.generator.GenerateBuild(testutils.TestCharacterKeys(), random.NewSequence(0))
	s.Require().NoError(err)

	s.Equal(testutils.CharacterAxe, build.Character().Key)
	s.Equal("phase_boots", build.MovementItem().Key)
	s.Len(build.HighlightItems(), generator.DefaultHighlightSlots)
	s.Len(build.Skills(), generator.DefaultLevels)
}

func (s *GeneratorTestSuite) TestGenerateBuildFollowsCatalogOrder() {
	// selection order does not matter, the draw indexes the catalog order
	active := []string{testutils.CharacterTechies, "not_a_character", testutils.CharacterMeepo}

	build, err := s.generator.GenerateBuild(active, random.NewSequence(0))
	s.Require().NoError(err)
	s.Equal(testutils.CharacterMeepo, build.Character().Key)

	build, err = s.generator.GenerateBuild(active, random.NewSequence(1))
	s.Require().NoError(err)
	s.Equal(testutils.CharacterTechies, build.Character().Key)
}

func (s *GeneratorTestSuite) TestGenerateBuildNoActiveCharacter() {
	testCases := []struct {
		name   string
		active []string
	}{
		{name: "nil selection", active: nil},
		{name: "empty selection", active: []string{}},
		{name: "only unknown keys", active: []string{"roshan", "courier"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			build, err := s.generator.GenerateBuild(tc.active, random.NewSequence(0))
			s.Nil(build)
			s.True(generator.IsNoActiveCharacter(err))
			s.False(generator.IsNoMovementItem(err))
			s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
		})
	}
}

func (s *GeneratorTestSuite) TestGenerateBuildNoMovementItem() {
	store, err := catalog.New(&catalog.Data{
		Characters: []entities.Character{{Key: "axe", Name: "Axe"}},
		Items: []entities.Item{
			{Key: "boots", Cost: 500, Quality: entities.QualityComponent},
			{Key: "heart", Cost: 5000, Quality: entities.QualityArtifact},
		},
	})
	s.Require().NoError(err)
	_, _, gen := s.wire(store)

	build, err := gen.GenerateBuild([]string{"axe"}, random.NewSequence(0))
	s.Nil(build)
	s.True(generator.IsNoMovementItem(err))
	s.False(generator.IsNoActiveCharacter(err))
}

func (s *GeneratorTestSuite) TestGenerateBuildNilSource() {
	_, err := s.generator.GenerateBuild(testutils.TestCharacterKeys(), nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.generator.GenerateSkillBuild(testutils.CharacterAxe, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GeneratorTestSuite) TestGenerateBuildSourceFailure() {
	ctrl := gomock.NewController(s.T())
	src := randommock.NewMockSource(ctrl)

	gomock.InOrder(
		src.EXPECT().IntN(len(testutils.TestCharacterKeys())).Return(0, nil),
		src.EXPECT().IntN(testutils.TestMovementItemCount).Return(0, errors.Unavailable("entropy pool drained")),
	)

	build, err := s.generator.GenerateBuild(testutils.TestCharacterKeys(), src)
	s.Nil(build)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "movement item")
	s.Contains(err.Error(), "entropy pool drained")
}

func (s *GeneratorTestSuite) TestScenarioTwoCharactersThreeItems() {
	store, err := catalog.New(&catalog.Data{
		Characters: []entities.Character{
			{Key: "axe", Name: "Axe"},
			{Key: "lina", Name: "Lina"},
		},
		Items: []entities.Item{
			{Key: "item_a", Cost: 2500, Quality: entities.QualityRare},
			{Key: "item_b", Cost: 1500, Quality: entities.QualityRare},
			{Key: "item_c", Cost: 1000, Quality: entities.QualityCommon, Components: []string{"boots"}},
		},
	})
	s.Require().NoError(err)
	_, _, gen := s.wire(store)

	build, err := gen.GenerateBuild([]string{"axe", "lina"}, random.NewSequence(0))
	s.Require().NoError(err)

	s.Equal("axe", build.Character().Key)
	s.Equal([]string{"item_c", "item_a"}, itemKeys(build.Items()))
	s.Equal("item_c", build.MovementItem().Key)
	s.Equal([]string{"item_a"}, itemKeys(build.HighlightItems()))
}

func (s *GeneratorTestSuite) TestSmallHighlightPoolIsNotAnError() {
	gen, err := generator.New(&generator.Config{
		Catalog:        s.store,
		Rules:          s.rules,
		Items:          s.filter,
		HighlightSlots: 20,
	})
	s.Require().NoError(err)

	build, err := gen.GenerateBuild([]string{testutils.CharacterAxe}, random.NewSeeded(3))
	s.Require().NoError(err)
	s.Len(build.HighlightItems(), testutils.TestHighlightPoolSize)
}

func (s *GeneratorTestSuite) TestGenerateBuildItemInvariants() {
	for seed := uint64(0); seed < 64; seed++ {
		build, err := s.generator.GenerateBuild(testutils.TestCharacterKeys(), random.NewSeeded(seed))
		s.Require().NoError(err)

		s.True(s.filter.IsMovementItem(build.MovementItem()))

		highlights := build.HighlightItems()
		s.Len(highlights, generator.DefaultHighlightSlots)

		seen := map[string]bool{}
		for _, it := range highlights {
			s.False(s.filter.IsMovementItem(it), it.Key)
			s.False(s.store.IsComponent(it.Key), it.Key)
			s.GreaterOrEqual(it.Cost, items.DefaultMinHighlightCost, it.Key)
			s.False(seen[it.Key], "duplicate highlight %s", it.Key)
			seen[it.Key] = true
		}
	}
}

func (s *GeneratorTestSuite) TestGenerateBuildIsDeterministic() {
	first, err := s.generator.GenerateBuild(testutils.TestCharacterKeys(), random.NewSeeded(2024))
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		again, err := s.generator.GenerateBuild(testutils.TestCharacterKeys(), random.NewSeeded(2024))
		s.Require().NoError(err)
		s.Equal(first.Character(), again.Character())
		s.Equal(first.Items(), again.Items())
		s.Equal(first.Skills(), again.Skills())
	}
}

func (s *GeneratorTestSuite) TestBuildAccessorsReturnCopies() {
	build, err := s.generator.GenerateBuild(testutils.TestCharacterKeys(), random.NewSequence(0))
	s.Require().NoError(err)

	skills := build.Skills()
	skills[0] = 99
	s.NotEqual(99, build.Skills()[0])

	list := build.Items()
	list[0].Key = "mutated"
	s.Equal("phase_boots", build.Items()[0].Key)

	character := build.Character()
	character.Roles[0] = "mutated"
	s.NotEqual("mutated", build.Character().Roles[0])
}
