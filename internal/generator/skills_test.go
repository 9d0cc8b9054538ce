package generator_test

import (
	"github.com/KirkDiggler/rpg-loadout/internal/entities"
	"github.com/KirkDiggler/rpg-loadout/internal/generator"
	"github.com/KirkDiggler/rpg-loadout/internal/random"
	"github.com/KirkDiggler/rpg-loadout/internal/rules"
	"github.com/KirkDiggler/rpg-loadout/internal/testutils"
)

func (s *GeneratorTestSuite) TestGenerateSkillBuildFirstEligible() {
	// axe: talent_left, talent_right, berserkers_call, battle_hunger,
	// counter_helix, culling_blade (finisher)
	skills, err := s.generator.GenerateSkillBuild(testutils.CharacterAxe, random.NewSequence(0))
	s.Require().NoError(err)

	no := generator.NoUpgrade
	s.Equal([]int{
		2, 3, 2, 3, 2, 3, 2, 3, 4, 0, // 1-10
		4, 4, 4, 5, 0, 5, no, 5, no, 0, // 11-20
		no, no, no, no, 0, // 21-25
	}, skills)
}

func (s *GeneratorTestSuite) TestGenerateSkillBuildUnknownCharacter() {
	skills, err := s.generator.GenerateSkillBuild("roshan", random.NewSequence(0))
	s.Require().NoError(err)
	s.Len(skills, generator.DefaultLevels)
	for _, entry := range skills {
		s.Equal(generator.NoUpgrade, entry)
	}
}

func (s *GeneratorTestSuite) TestGenerateSkillBuildCustomLevels() {
	gen, err := generator.New(&generator.Config{
		Catalog: s.store,
		Rules:   s.rules,
		Items:   s.filter,
		Levels:  30,
	})
	s.Require().NoError(err)

	skills, err := gen.GenerateSkillBuild(testutils.CharacterAxe, random.NewSeeded(1))
	s.Require().NoError(err)
	s.Len(skills, 30)
}

// TestSkillOrderInvariants replays many seeds for every test character and
// checks each upgrade against the progression rules.
func (s *GeneratorTestSuite) TestSkillOrderInvariants() {
	cfg := rules.DefaultConfig()
	ignored := map[string]bool{}
	for _, key := range cfg.IgnoredAbilities {
		ignored[key] = true
	}

	for _, key := range testutils.TestCharacterKeys() {
		abilities := s.store.CharacterAbilities(key)

		for seed := uint64(0); seed < 40; seed++ {
			skills, err := s.generator.GenerateSkillBuild(key, random.NewSeeded(seed))
			s.Require().NoError(err)
			s.Require().Len(skills, generator.DefaultLevels)

			counts := make([]int, len(abilities))
			talents := 0

			for i, pos := range skills {
				level := i + 1
				if pos == generator.NoUpgrade {
					continue
				}
				s.Require().Less(pos, len(abilities))
				a := abilities[pos]
				s.False(ignored[a.Key], "%s picked ignored %s", key, a.Key)

				switch s.rules.ClassOf(a) {
				case rules.ClassTalent:
					s.GreaterOrEqual(level, cfg.TalentFirstLevel+talents*cfg.TalentInterval,
						"%s talent #%d at level %d", key, talents+1, level)
					talents++
				case rules.ClassFinisher:
					levels := cfg.FinisherLevels
					if key == testutils.CharacterMeepo {
						levels = cfg.EarlyFinisherLevels
					}
					s.Require().Less(counts[pos], len(levels), "%s finisher overflow", key)
					s.GreaterOrEqual(level, levels[counts[pos]],
						"%s finisher #%d at level %d", key, counts[pos]+1, level)
				default:
					s.GreaterOrEqual(level, cfg.AbilityFirstLevel+counts[pos]*cfg.AbilityInterval,
						"%s %s #%d at level %d", key, a.Key, counts[pos]+1, level)
				}
				counts[pos]++
			}

			s.LessOrEqual(talents, cfg.TalentMax, key)
			for pos, a := range abilities {
				if a.Talent {
					continue
				}
				s.LessOrEqual(counts[pos], s.rules.MaxCount(a), "%s %s", key, a.Key)
			}
		}
	}
}

func (s *GeneratorTestSuite) TestSkillOrderUsesExtendedMax() {
	// with only zeros drawn invoker keeps taking quas until its extended max
	skills, err := s.generator.GenerateSkillBuild(testutils.CharacterInvoker, random.NewSequence(0))
	s.Require().NoError(err)

	abilities := s.store.CharacterAbilities(testutils.CharacterInvoker)
	quas := -1
	for i, a := range abilities {
		if a.Key == "invoker_quas" {
			quas = i
		}
	}
	s.Require().NotEqual(-1, quas)

	count := 0
	for _, pos := range skills {
		if pos == quas {
			count++
		}
	}
	s.Equal(7, count)
}

func (s *GeneratorTestSuite) TestSkillOrderNeverPicksIgnored() {
	abilities := s.store.CharacterAbilities(testutils.CharacterMonkeyKing)
	ignoredPos := -1
	for i, a := range abilities {
		if a.Key == "monkey_king_untransform" {
			ignoredPos = i
		}
	}
	s.Require().NotEqual(-1, ignoredPos)

	for seed := uint64(0); seed < 100; seed++ {
		skills, err := s.generator.GenerateSkillBuild(testutils.CharacterMonkeyKing, random.NewSeeded(seed))
		s.Require().NoError(err)
		s.NotContains(skills, ignoredPos)
	}
}

func (s *GeneratorTestSuite) TestSharedTalentGate() {
	// Alternate draws between the two slots: the combined counter still
	// limits talents to four upgrades at levels 10, 15, 20 and 25.
	skills, err := s.generator.GenerateSkillBuild(testutils.CharacterTechies, random.NewSeeded(11))
	s.Require().NoError(err)

	var talentLevels []int
	for i, pos := range skills {
		if pos == 0 || pos == 1 {
			talentLevels = append(talentLevels, i+1)
		}
	}
	s.LessOrEqual(len(talentLevels), 4)
	for k, level := range talentLevels {
		s.GreaterOrEqual(level, 10+5*k)
	}
}

func (s *GeneratorTestSuite) TestSkillAt() {
	build, err := s.generator.GenerateBuild([]string{testutils.CharacterAxe}, random.NewSequence(0))
	s.Require().NoError(err)

	a, ok := build.SkillAt(1)
	s.True(ok)
	s.Equal("axe_berserkers_call", a.Key)

	a, ok = build.SkillAt(10)
	s.True(ok)
	s.Equal(entities.TalentLeft, a.Key)

	_, ok = build.SkillAt(17)
	s.False(ok, "no upgrade at 17")

	_, ok = build.SkillAt(0)
	s.False(ok)
	_, ok = build.SkillAt(26)
	s.False(ok)
}
