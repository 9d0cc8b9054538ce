// Package testutils provides shared fixtures: a small catalog and an
// in-memory Redis.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-loadout/internal/catalog"
	"github.com/KirkDiggler/rpg-loadout/internal/entities"
)

// Character keys in the test catalog
const (
	CharacterAxe          = "axe"
	CharacterMeepo        = "meepo"
	CharacterInvoker      = "invoker"
	CharacterMonkeyKing   = "monkey_king"
	CharacterQueenOfPain  = "queen_of_pain"
	CharacterTechies      = "techies"
	TestMovementItemCount = 4
	TestHighlightPoolSize = 10
)

// CreateTestCatalogData returns a small but complete catalog:
//   - axe has 4 abilities, the last one is its finisher
//   - meepo uses the early finisher milestones
//   - invoker has an ignored ability and the extended ordinary max
//   - monkey_king has a finisher override and an ignored last ability
//   - queen_of_pain abilities only match by an underscore-free owner key
//   - techies has too few abilities to have a finisher
func CreateTestCatalogData() *catalog.Data {
	return &catalog.Data{
		Characters: []entities.Character{
			{Key: CharacterAxe, Name: "Axe", Attribute: entities.AttributeStrength, Roles: []string{"Initiator", "Durable"}},
			{Key: CharacterMeepo, Name: "Meepo", Attribute: entities.AttributeAgility, Roles: []string{"Carry", "Pusher"}},
			{Key: CharacterInvoker, Name: "Invoker", Attribute: entities.AttributeIntelligence, Roles: []string{"Carry", "Nuker"}},
			{Key: CharacterMonkeyKing, Name: "Monkey King", Attribute: entities.AttributeAgility, Roles: []string{"Carry", "Initiator"}},
			{Key: CharacterQueenOfPain, Name: "Queen of Pain", Attribute: entities.AttributeIntelligence, Roles: []string{"Nuker", "Escape"}},
			{Key: CharacterTechies, Name: "Techies", Attribute: entities.AttributeIntelligence, Roles: []string{"Nuker"}},
		},
		Abilities: []entities.Ability{
			{Key: "axe_berserkers_call", Name: "Berserker's Call"},
			{Key: "axe_battle_hunger", Name: "Battle Hunger"},
			{Key: "axe_counter_helix", Name: "Counter Helix"},
			{Key: "axe_culling_blade", Name: "Culling Blade"},

			{Key: "meepo_earthbind", Name: "Earthbind", Owner: CharacterMeepo},
			{Key: "meepo_poof", Name: "Poof", Owner: CharacterMeepo},
			{Key: "meepo_ransack", Name: "Ransack", Owner: CharacterMeepo},
			{Key: "meepo_divided_we_stand", Name: "Divided We Stand", Owner: CharacterMeepo},

			{Key: "invoker_quas", Name: "Quas"},
			{Key: "invoker_wex", Name: "Wex"},
			{Key: "invoker_exort", Name: "Exort"},
			{Key: "invoker_empty1", Name: "Empty"},
			{Key: "invoker_invoke", Name: "Invoke"},

			{Key: "monkey_king_boundless_strike", Name: "Boundless Strike"},
			{Key: "monkey_king_tree_dance", Name: "Tree Dance"},
			{Key: "monkey_king_jingu_mastery", Name: "Jingu Mastery"},
			{Key: "monkey_king_wukongs_command", Name: "Wukong's Command"},
			{Key: "monkey_king_untransform", Name: "Untransform"},

			{Key: "queenofpain_shadow_strike", Name: "Shadow Strike", Owner: "queenofpain"},
			{Key: "queenofpain_blink", Name: "Blink", Owner: "queenofpain"},
			{Key: "queenofpain_scream_of_pain", Name: "Scream Of Pain", Owner: "queenofpain"},
			{Key: "queenofpain_sonic_wave", Name: "Sonic Wave", Owner: "queenofpain"},

			{Key: "techies_land_mines", Name: "Proximity Mines"},
			{Key: "techies_stasis_trap", Name: "Stasis Trap"},
			{Key: "techies_remote_mines", Name: "Remote Mines"},
		},
		Items: []entities.Item{
			{Key: "boots", Name: "Boots of Speed", Cost: 500, Quality: entities.QualityComponent},
			{Key: "blades_of_attack", Name: "Blades of Attack", Cost: 450, Quality: entities.QualityComponent},
			{Key: "wind_lace", Name: "Wind Lace", Cost: 250, Quality: entities.QualityComponent},
			{Key: "ultimate_orb", Name: "Ultimate Orb", Cost: 2050, Quality: entities.QualitySecretShop},
			{Key: "mithril_hammer", Name: "Mithril Hammer", Cost: 1600, Quality: entities.QualityCommon},

			{Key: "phase_boots", Name: "Phase Boots", Cost: 1500, Quality: entities.QualityCommon, Components: []string{"boots", "blades_of_attack"}},
			{Key: "tranquil_boots", Name: "Tranquil Boots", Cost: 925, Quality: entities.QualityRare, Components: []string{"wind_lace", "boots", "ring_of_regen"}},
			{Key: "arcane_boots", Name: "Arcane Boots", Cost: 1400, Quality: entities.QualityRare, Components: []string{"boots", "energy_booster"}},
			{Key: "guardian_greaves", Name: "Guardian Greaves", Cost: 4950, Quality: entities.QualityEpic, Components: []string{"arcane_boots", "mekansm", "recipe_guardian_greaves"}},

			{Key: "skadi", Name: "Eye of Skadi", Cost: 5300, Quality: entities.QualityArtifact, Components: []string{"ultimate_orb", "ultimate_orb", "point_booster"}},
			{Key: "black_king_bar", Name: "Black King Bar", Cost: 4050, Quality: entities.QualityEpic, Components: []string{"mithril_hammer", "ogre_axe", "recipe_black_king_bar"}},
			{Key: "desolator", Name: "Desolator", Cost: 3500, Quality: entities.QualityEpic, Components: []string{"mithril_hammer", "mithril_hammer", "blight_stone"}},
			{Key: "butterfly", Name: "Butterfly", Cost: 4975, Quality: entities.QualityEpic, Components: []string{"eaglesong", "talisman_of_evasion", "quarterstaff"}},
			{Key: "radiance", Name: "Radiance", Cost: 5150, Quality: entities.QualityEpic, Components: []string{"relic", "recipe_radiance"}},
			{Key: "satanic", Name: "Satanic", Cost: 5050, Quality: entities.QualityArtifact, Components: []string{"morbid_mask", "claymore", "reaver"}},
			{Key: "heart", Name: "Heart of Tarrasque", Cost: 5000, Quality: entities.QualityArtifact, Components: []string{"vitality_booster", "reaver", "recipe_heart"}},
			{Key: "crystalys", Name: "Crystalys", Cost: 2000, Quality: entities.QualityRare, Components: []string{"broadsword", "blades_of_attack", "recipe_crystalys"}},
			{Key: "greater_crit", Name: "Daedalus", Cost: 5150, Quality: entities.QualityEpic, Components: []string{"crystalys", "demon_edge", "recipe_greater_crit"}},
			{Key: "ultimate_scepter", Name: "Aghanim's Scepter", Cost: 4200, Quality: entities.QualityRare, Components: []string{"point_booster", "ogre_axe", "blade_of_alacrity", "staff_of_wizardry"}},
			{Key: "solar_crest", Name: "Solar Crest", Cost: 2625, Quality: entities.QualityRare, Components: []string{"medallion_of_courage", "talisman_of_evasion", "crown"}},

			{Key: "blink", Name: "Blink Dagger", Cost: 2250, Quality: entities.QualityCommon},
			{Key: "vanguard", Name: "Vanguard", Cost: 1700, Quality: entities.QualityRare, Components: []string{"ring_of_health", "vitality_booster"}},
			{Key: "tango", Name: "Tango", Cost: 90, Quality: entities.QualityConsumable},
		},
	}
}

// CreateTestStore builds a catalog store from CreateTestCatalogData
func CreateTestStore(t *testing.T) *catalog.Store {
	store, err := catalog.New(CreateTestCatalogData())
	require.NoError(t, err, "failed to build test catalog")
	return store
}

// TestCharacterKeys returns every character key of the test catalog in order
func TestCharacterKeys() []string {
	return []string{
		CharacterAxe,
		CharacterMeepo,
		CharacterInvoker,
		CharacterMonkeyKing,
		CharacterQueenOfPain,
		CharacterTechies,
	}
}
