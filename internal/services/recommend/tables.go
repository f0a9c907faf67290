package recommend

import "github.com/KirkDiggler/dnd-character-api/internal/domain/shared"

// classLists pairs go-to classes with reasonable fallbacks for one
// playstyle
type classLists struct {
	primary   []string
	secondary []string
}

var playstyleClasses = map[string]classLists{
	"damage_dealer": {
		primary:   []string{"Fighter", "Barbarian", "Ranger", "Rogue"},
		secondary: []string{"Paladin", "Warlock", "Sorcerer"},
	},
	"spellcaster": {
		primary:   []string{"Wizard", "Sorcerer", "Warlock", "Cleric", "Druid"},
		secondary: []string{"Bard", "Ranger", "Paladin"},
	},
	"support": {
		primary:   []string{"Cleric", "Bard", "Druid"},
		secondary: []string{"Paladin", "Ranger", "Wizard"},
	},
	"tank": {
		primary:   []string{"Fighter", "Paladin", "Barbarian"},
		secondary: []string{"Cleric", "Druid"},
	},
	"sneaky": {
		primary:   []string{"Rogue"},
		secondary: []string{"Ranger", "Bard", "Warlock"},
	},
	"versatile": {
		primary:   []string{"Bard", "Ranger"},
		secondary: []string{"Fighter", "Cleric", "Druid"},
	},
	"beginner_friendly": {
		primary:   []string{"Fighter", "Barbarian", "Rogue"},
		secondary: []string{"Cleric", "Ranger"},
	},
}

var classBackgroundSynergies = map[string][]string{
	"Fighter":   {"Soldier", "Guard", "Noble", "Folk Hero"},
	"Wizard":    {"Sage", "Hermit", "Scribe", "Noble"},
	"Rogue":     {"Criminal", "Charlatan", "Entertainer", "Urchin"},
	"Cleric":    {"Acolyte", "Hermit", "Noble", "Folk Hero"},
	"Ranger":    {"Outlander", "Folk Hero", "Guide", "Hermit"},
	"Barbarian": {"Outlander", "Folk Hero", "Tribal Member", "Soldier"},
	"Bard":      {"Entertainer", "Noble", "Charlatan", "Guild Artisan"},
	"Druid":     {"Hermit", "Outlander", "Folk Hero", "Guide"},
	"Paladin":   {"Noble", "Acolyte", "Soldier", "Folk Hero"},
	"Sorcerer":  {"Noble", "Hermit", "Entertainer", "Folk Hero"},
	"Warlock":   {"Charlatan", "Hermit", "Entertainer", "Noble"},
	"Monk":      {"Hermit", "Acolyte", "Folk Hero", "Outlander"},
}

var classSpeciesSynergies = map[string][]string{
	"Fighter":   {"Human", "Dwarf", "Dragonborn", "Goliath"},
	"Wizard":    {"Human", "Elf", "Gnome", "Tiefling"},
	"Rogue":     {"Halfling", "Elf", "Human", "Tiefling"},
	"Cleric":    {"Human", "Dwarf", "Dragonborn", "Aasimar"},
	"Ranger":    {"Elf", "Human", "Halfling", "Goliath"},
	"Barbarian": {"Goliath", "Dragonborn", "Human", "Orc"},
	"Bard":      {"Human", "Elf", "Halfling", "Tiefling"},
	"Druid":     {"Elf", "Human", "Halfling", "Goliath"},
	"Paladin":   {"Human", "Dragonborn", "Aasimar", "Dwarf"},
	"Sorcerer":  {"Dragonborn", "Tiefling", "Elf", "Human"},
	"Warlock":   {"Tiefling", "Human", "Elf", "Halfling"},
	"Monk":      {"Human", "Elf", "Halfling", "Dragonborn"},
}

// classAbilityPriorities ranks the six abilities per class, 1 highest
var classAbilityPriorities = map[string]map[shared.Attribute]int{
	"Fighter": {
		shared.AttributeStrength: 1, shared.AttributeConstitution: 2, shared.AttributeDexterity: 3,
		shared.AttributeWisdom: 4, shared.AttributeCharisma: 5, shared.AttributeIntelligence: 6,
	},
	"Wizard": {
		shared.AttributeIntelligence: 1, shared.AttributeConstitution: 2, shared.AttributeDexterity: 3,
		shared.AttributeWisdom: 4, shared.AttributeCharisma: 5, shared.AttributeStrength: 6,
	},
	"Rogue": {
		shared.AttributeDexterity: 1, shared.AttributeConstitution: 2, shared.AttributeIntelligence: 3,
		shared.AttributeWisdom: 4, shared.AttributeCharisma: 5, shared.AttributeStrength: 6,
	},
	"Cleric": {
		shared.AttributeWisdom: 1, shared.AttributeConstitution: 2, shared.AttributeStrength: 3,
		shared.AttributeCharisma: 4, shared.AttributeDexterity: 5, shared.AttributeIntelligence: 6,
	},
	"Ranger": {
		shared.AttributeDexterity: 1, shared.AttributeWisdom: 2, shared.AttributeConstitution: 3,
		shared.AttributeStrength: 4, shared.AttributeCharisma: 5, shared.AttributeIntelligence: 6,
	},
	"Barbarian": {
		shared.AttributeStrength: 1, shared.AttributeConstitution: 2, shared.AttributeDexterity: 3,
		shared.AttributeWisdom: 4, shared.AttributeCharisma: 5, shared.AttributeIntelligence: 6,
	},
	"Bard": {
		shared.AttributeCharisma: 1, shared.AttributeDexterity: 2, shared.AttributeConstitution: 3,
		shared.AttributeWisdom: 4, shared.AttributeIntelligence: 5, shared.AttributeStrength: 6,
	},
	"Druid": {
		shared.AttributeWisdom: 1, shared.AttributeConstitution: 2, shared.AttributeDexterity: 3,
		shared.AttributeStrength: 4, shared.AttributeIntelligence: 5, shared.AttributeCharisma: 6,
	},
	"Paladin": {
		shared.AttributeStrength: 1, shared.AttributeCharisma: 2, shared.AttributeConstitution: 3,
		shared.AttributeWisdom: 4, shared.AttributeDexterity: 5, shared.AttributeIntelligence: 6,
	},
	"Sorcerer": {
		shared.AttributeCharisma: 1, shared.AttributeConstitution: 2, shared.AttributeDexterity: 3,
		shared.AttributeWisdom: 4, shared.AttributeIntelligence: 5, shared.AttributeStrength: 6,
	},
	"Warlock": {
		shared.AttributeCharisma: 1, shared.AttributeConstitution: 2, shared.AttributeDexterity: 3,
		shared.AttributeWisdom: 4, shared.AttributeIntelligence: 5, shared.AttributeStrength: 6,
	},
	"Monk": {
		shared.AttributeDexterity: 1, shared.AttributeWisdom: 2, shared.AttributeConstitution: 3,
		shared.AttributeStrength: 4, shared.AttributeIntelligence: 5, shared.AttributeCharisma: 6,
	},
}

var classWeaponPicks = map[string][]string{
	"Fighter":   {"Longsword", "Shield", "Crossbow, light", "Handaxe"},
	"Wizard":    {"Quarterstaff", "Dagger", "Crossbow, light"},
	"Rogue":     {"Shortsword", "Shortbow", "Dagger", "Thieves' tools"},
	"Cleric":    {"Mace", "Shield", "Scale mail", "Crossbow, light"},
	"Ranger":    {"Longsword", "Longbow", "Studded leather armor"},
	"Barbarian": {"Greataxe", "Handaxe", "Javelin"},
	"Bard":      {"Rapier", "Shortbow", "Leather armor"},
	"Druid":     {"Scimitar", "Shield", "Leather armor"},
	"Paladin":   {"Longsword", "Shield", "Chain mail"},
	"Sorcerer":  {"Quarterstaff", "Dagger", "Crossbow, light"},
	"Warlock":   {"Shortsword", "Crossbow, light", "Leather armor"},
	"Monk":      {"Shortsword", "Dart", "Simple weapon"},
}

var backgroundToolPicks = map[string][]string{
	"Acolyte":     {"Holy symbol"},
	"Criminal":    {"Thieves' tools", "Crowbar"},
	"Entertainer": {"Musical instrument", "Costume"},
	"Folk Hero":   {"Smith's tools", "Vehicles (land)"},
	"Noble":       {"Gaming set", "Signet ring"},
	"Sage":        {"Ink and quill", "Parchment"},
	"Soldier":     {"Gaming set", "Vehicles (land)"},
}

var adventuringGear = []string{
	"Backpack", "Bedroll", "Rations (10 days)",
	"Rope (50 feet)", "Torch (10)", "Tinderbox",
}

// classSpellPicks maps class -> spell level -> suggestions. Level 0 is
// cantrips.
var classSpellPicks = map[string]map[int][]SpellSuggestion{
	"Wizard": {
		0: {
			{Name: "Mage Hand", Reason: "Utility cantrip for manipulation"},
			{Name: "Minor Illusion", Reason: "Versatile for creativity"},
			{Name: "Fire Bolt", Reason: "Reliable damage cantrip"},
		},
		1: {
			{Name: "Shield", Reason: "Essential defensive spell"},
			{Name: "Magic Missile", Reason: "Guaranteed damage"},
			{Name: "Detect Magic", Reason: "Utility for finding magic"},
		},
	},
	"Cleric": {
		0: {
			{Name: "Sacred Flame", Reason: "Dexterity save damage"},
			{Name: "Guidance", Reason: "Help allies with skill checks"},
			{Name: "Thaumaturgy", Reason: "Impressive divine effects"},
		},
		1: {
			{Name: "Cure Wounds", Reason: "Essential healing"},
			{Name: "Bless", Reason: "Boost allies' attacks and saves"},
			{Name: "Guiding Bolt", Reason: "Damage with utility"},
		},
	},
	"Sorcerer": {
		0: {
			{Name: "Fire Bolt", Reason: "Reliable damage cantrip"},
			{Name: "Mage Hand", Reason: "Useful utility"},
			{Name: "Minor Illusion", Reason: "Creative problem solving"},
		},
		1: {
			{Name: "Shield", Reason: "Critical defensive spell"},
			{Name: "Magic Missile", Reason: "Guaranteed damage"},
			{Name: "Chromatic Orb", Reason: "Flexible damage type"},
		},
	},
	"Warlock": {
		0: {
			{Name: "Eldritch Blast", Reason: "Core warlock damage cantrip"},
			{Name: "Minor Illusion", Reason: "Versatile utility"},
			{Name: "Prestidigitation", Reason: "Useful minor effects"},
		},
		1: {
			{Name: "Hex", Reason: "Boost damage and debuff"},
			{Name: "Armor of Agathys", Reason: "Temp HP and damage"},
			{Name: "Charm Person", Reason: "Social manipulation"},
		},
	},
	"Bard": {
		0: {
			{Name: "Vicious Mockery", Reason: "Damage with debuff"},
			{Name: "Minor Illusion", Reason: "Creative utility"},
			{Name: "Mage Hand", Reason: "Useful manipulation"},
		},
		1: {
			{Name: "Healing Word", Reason: "Bonus action healing"},
			{Name: "Faerie Fire", Reason: "Great debuff spell"},
			{Name: "Dissonant Whispers", Reason: "Damage with movement"},
		},
	},
	"Druid": {
		0: {
			{Name: "Produce Flame", Reason: "Damage and light source"},
			{Name: "Guidance", Reason: "Help with skill checks"},
			{Name: "Druidcraft", Reason: "Nature-themed utility"},
		},
		1: {
			{Name: "Cure Wounds", Reason: "Essential healing"},
			{Name: "Entangle", Reason: "Area control"},
			{Name: "Goodberry", Reason: "Healing and sustenance"},
		},
	},
}

var classFeatPicks = map[string][]FeatSuggestion{
	"Fighter": {
		{Name: "Great Weapon Master", Reason: "Massive damage for two-handed weapons"},
		{Name: "Sharpshooter", Reason: "Enhanced ranged combat"},
		{Name: "Sentinel", Reason: "Control battlefield movement"},
		{Name: "Polearm Master", Reason: "Extra attacks with polearms"},
	},
	"Wizard": {
		{Name: "Telekinetic", Reason: "Enhanced battlefield control"},
		{Name: "War Caster", Reason: "Cast spells in armor with weapons"},
		{Name: "Resilient (Constitution)", Reason: "Better concentration saves"},
		{Name: "Fey Touched", Reason: "Extra spells and teleportation"},
	},
	"Rogue": {
		{Name: "Sharpshooter", Reason: "Enhanced sneak attack damage at range"},
		{Name: "Alert", Reason: "Always act first, avoid surprise"},
		{Name: "Lucky", Reason: "Reroll failed important rolls"},
		{Name: "Mobile", Reason: "Hit and run tactics"},
	},
	"Cleric": {
		{Name: "War Caster", Reason: "Cast with shield and weapon"},
		{Name: "Resilient (Wisdom)", Reason: "Better wisdom saves"},
		{Name: "Spiritual Weapon", Reason: "Bonus action attacks"},
		{Name: "Lucky", Reason: "Reroll important saves and attacks"},
	},
	"Barbarian": {
		{Name: "Great Weapon Master", Reason: "Massive damage while raging"},
		{Name: "Sentinel", Reason: "Protect allies and control enemies"},
		{Name: "Mobile", Reason: "Enhanced movement and positioning"},
		{Name: "Tough", Reason: "Even more hit points"},
	},
}

var generalFeatPicks = []FeatSuggestion{
	{Name: "Lucky", Reason: "Universally useful rerolls"},
	{Name: "Alert", Reason: "Better initiative and avoid surprise"},
	{Name: "Tough", Reason: "Increased survivability"},
}
