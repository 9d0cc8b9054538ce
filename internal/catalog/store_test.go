package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loadout/internal/catalog"
	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	store *catalog.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.store = testutils.CreateTestStore(s.T())
}

func abilityKeys(abilities []entities.Ability) []string {
	keys := make([]string, len(abilities))
	for i, a := range abilities {
		keys[i] = a.Key
	}
	return keys
}

func (s *StoreTestSuite) TestNewValidation() {
	testCases := []struct {
		name   string
		data   *catalog.Data
		errMsg string
	}{
		{
			name:   "nil data",
			data:   nil,
			errMsg: "catalog data cannot be nil",
		},
		{
			name:   "duplicate character",
			data:   &catalog.Data{Characters: []entities.Character{{Key: "axe"}, {Key: "axe"}}},
			errMsg: `duplicate key "axe"`,
		},
		{
			name:   "empty item key",
			data:   &catalog.Data{Items: []entities.Item{{Name: "nameless"}}},
			errMsg: "entry 0 has an empty key",
		},
		{
			name: "duplicate ability",
			data: &catalog.Data{
				Characters: []entities.Character{{Key: "axe"}},
				Abilities:  []entities.Ability{{Key: "axe_counter_helix"}, {Key: "axe_counter_helix"}},
			},
			errMsg: `duplicate key "axe_counter_helix"`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			store, err := catalog.New(tc.data)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(store)
		})
	}
}

func (s *StoreTestSuite) TestCharacterAbilitiesOrder() {
	abilities := s.store.CharacterAbilities(testutils.CharacterAxe)

	s.Equal([]string{
		entities.TalentLeft,
		entities.TalentRight,
		"axe_berserkers_call",
		"axe_battle_hunger",
		"axe_counter_helix",
		"axe_culling_blade",
	}, abilityKeys(abilities))

	for _, a := range abilities {
		s.Equal(testutils.CharacterAxe, a.Owner)
	}
	s.True(abilities[0].Talent)
	s.True(abilities[1].Talent)
	s.False(abilities[2].Talent)
}

func (s *StoreTestSuite) TestCharacterAbilitiesUnderscoreInsensitiveOwner() {
	abilities := s.store.CharacterAbilities(testutils.CharacterQueenOfPain)

	s.Len(abilities, 6)
	s.Equal("queenofpain_sonic_wave", abilities[5].Key)
	s.Equal(testutils.CharacterQueenOfPain, abilities[5].Owner)
}

func (s *StoreTestSuite) TestCharacterAbilitiesUnknownCharacter() {
	s.Empty(s.store.CharacterAbilities("pudge"))
}

func (s *StoreTestSuite) TestLongestPrefixWins() {
	store, err := catalog.New(&catalog.Data{
		Characters: []entities.Character{{Key: "shadow"}, {Key: "shadow_demon"}},
		Abilities: []entities.Ability{
			{Key: "shadow_demon_disruption"},
			{Key: "shadow_strike"},
			{Key: "unowned_thing"},
		},
	})
	s.Require().NoError(err)

	s.Equal([]string{entities.TalentLeft, entities.TalentRight, "shadow_demon_disruption"},
		abilityKeys(store.CharacterAbilities("shadow_demon")))
	s.Equal([]string{entities.TalentLeft, entities.TalentRight, "shadow_strike"},
		abilityKeys(store.CharacterAbilities("shadow")))
	s.Equal([]string{"unowned_thing"}, store.Orphans())
}

func (s *StoreTestSuite) TestCatalogTalentsAreIgnored() {
	store, err := catalog.New(&catalog.Data{
		Characters: []entities.Character{{Key: "axe"}},
		Abilities: []entities.Ability{
			{Key: entities.TalentLeft, Owner: "axe"},
			{Key: "axe_special_bonus", Owner: "axe", Talent: true},
			{Key: "axe_counter_helix"},
		},
	})
	s.Require().NoError(err)

	s.Len(store.CharacterAbilities("axe"), 3)
	_, ok := store.Ability(entities.TalentLeft)
	s.False(ok)
}

func (s *StoreTestSuite) TestLookups() {
	c, ok := s.store.Character(testutils.CharacterInvoker)
	s.True(ok)
	s.Equal(entities.AttributeIntelligence, c.Attribute)

	_, ok = s.store.Character("pudge")
	s.False(ok)

	it, ok := s.store.Item("phase_boots")
	s.True(ok)
	s.Equal([]string{"boots", "blades_of_attack"}, it.Components)

	a, ok := s.store.Ability("meepo_poof")
	s.True(ok)
	s.Equal(testutils.CharacterMeepo, a.Owner)
}

func (s *StoreTestSuite) TestIsComponent() {
	s.True(s.store.IsComponent("boots"))
	s.True(s.store.IsComponent("crystalys"))
	s.True(s.store.IsComponent("arcane_boots"))
	s.False(s.store.IsComponent("greater_crit"))
	s.False(s.store.IsComponent("blink"))
}

func (s *StoreTestSuite) TestReturnedSlicesAreCopies() {
	it, _ := s.store.Item("phase_boots")
	it.Components[0] = "tampered"

	again, _ := s.store.Item("phase_boots")
	s.Equal("boots", again.Components[0])

	chars := s.store.Characters()
	chars[0].Roles[0] = "tampered"
	s.Equal("Initiator", s.store.Characters()[0].Roles[0])
}

func (s *StoreTestSuite) TestNewDoesNotMutateInput() {
	data := testutils.CreateTestCatalogData()
	_, err := catalog.New(data)
	s.Require().NoError(err)

	s.Equal("", data.Abilities[0].Owner)
}
