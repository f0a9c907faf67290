package rulebook

import "github.com/KirkDiggler/dnd-character-api/internal/domain/shared"

// Seed content for the twelve core classes, the common species and
// backgrounds, and the feats the rest of the package references by
// effect. Lookup helpers at the bottom.

func intPtr(v int) *int { return &v }

var classes = []*Class{
	{
		Key:                 "barbarian",
		Name:                "Barbarian",
		HitDie:              12,
		PrimaryAbility:      shared.AttributeStrength,
		SavingThrows:        []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution},
		ArmorProficiencies:  []string{"light", "medium", "shield"},
		WeaponProficiencies: []string{"simple", "martial"},
		SkillChoiceCount:    2,
		SkillOptions:        []string{"animal-handling", "athletics", "intimidation", "nature", "perception", "survival"},
	},
	{
		Key:                 "bard",
		Name:                "Bard",
		HitDie:              8,
		PrimaryAbility:      shared.AttributeCharisma,
		SavingThrows:        []shared.Attribute{shared.AttributeDexterity, shared.AttributeCharisma},
		ArmorProficiencies:  []string{"light"},
		WeaponProficiencies: []string{"simple"},
		ToolProficiencies:   []string{"musical instrument"},
		SkillChoiceCount:    3,
		SkillOptions: []string{
			"acrobatics", "animal-handling", "arcana", "athletics", "deception", "history",
			"insight", "intimidation", "investigation", "medicine", "nature", "perception",
			"performance", "persuasion", "religion", "sleight-of-hand", "stealth", "survival",
		},
		Spellcaster:         true,
		SpellcastingAbility: shared.AttributeCharisma,
		PreparationMode:     PreparationModeKnown,
		SpellProgression: map[int]SpellProgression{
			1: {CantripsKnown: 2, SpellsKnown: intPtr(4), SlotsByLevel: map[int]int{1: 2}},
			3: {CantripsKnown: 2, SpellsKnown: intPtr(6), SlotsByLevel: map[int]int{1: 4, 2: 2}},
			5: {CantripsKnown: 3, SpellsKnown: intPtr(8), SlotsByLevel: map[int]int{1: 4, 2: 3, 3: 2}},
		},
	},
	{
		Key:                 "cleric",
		Name:                "Cleric",
		HitDie:              8,
		PrimaryAbility:      shared.AttributeWisdom,
		SavingThrows:        []shared.Attribute{shared.AttributeWisdom, shared.AttributeCharisma},
		ArmorProficiencies:  []string{"light", "medium", "shield"},
		WeaponProficiencies: []string{"simple"},
		SkillChoiceCount:    2,
		SkillOptions:        []string{"history", "insight", "medicine", "persuasion", "religion"},
		Spellcaster:         true,
		SpellcastingAbility: shared.AttributeWisdom,
		PreparationMode:     PreparationModePrepared,
		SpellProgression: map[int]SpellProgression{
			1: {CantripsKnown: 3, SlotsByLevel: map[int]int{1: 2}},
			3: {CantripsKnown: 3, SlotsByLevel: map[int]int{1: 4, 2: 2}},
			5: {CantripsKnown: 4, SlotsByLevel: map[int]int{1: 4, 2: 3, 3: 2}},
		},
	},
	{
		Key:                 "druid",
		Name:                "Druid",
		HitDie:              8,
		PrimaryAbility:      shared.AttributeWisdom,
		SavingThrows:        []shared.Attribute{shared.AttributeIntelligence, shared.AttributeWisdom},
		ArmorProficiencies:  []string{"light", "shield"},
		WeaponProficiencies: []string{"simple"},
		ToolProficiencies:   []string{"herbalism kit"},
		SkillChoiceCount:    2,
		SkillOptions:        []string{"arcana", "animal-handling", "insight", "medicine", "nature", "perception", "religion", "survival"},
		Spellcaster:         true,
		SpellcastingAbility: shared.AttributeWisdom,
		PreparationMode:     PreparationModePrepared,
		SpellProgression: map[int]SpellProgression{
			1: {CantripsKnown: 2, SlotsByLevel: map[int]int{1: 2}},
			3: {CantripsKnown: 2, SlotsByLevel: map[int]int{1: 4, 2: 2}},
			5: {CantripsKnown: 3, SlotsByLevel: map[int]int{1: 4, 2: 3, 3: 2}},
		},
	},
	{
		Key:                 "fighter",
		Name:                "Fighter",
		HitDie:              10,
		PrimaryAbility:      shared.AttributeStrength,
		SavingThrows:        []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution},
		ArmorProficiencies:  []string{"light", "medium", "heavy", "shield"},
		WeaponProficiencies: []string{"simple", "martial"},
		SkillChoiceCount:    2,
		SkillOptions: []string{
			"acrobatics", "animal-handling", "athletics", "history", "insight",
			"intimidation", "perception", "persuasion", "survival",
		},
		// Fighters pick up extra improvements at 6 and 14
		ASILevels: []int{4, 6, 8, 12, 14, 16, 19},
	},
	{
		Key:                 "monk",
		Name:                "Monk",
		HitDie:              8,
		PrimaryAbility:      shared.AttributeDexterity,
		SavingThrows:        []shared.Attribute{shared.AttributeStrength, shared.AttributeDexterity},
		WeaponProficiencies: []string{"simple", "shortsword"},
		SkillChoiceCount:    2,
		SkillOptions:        []string{"acrobatics", "athletics", "history", "insight", "religion", "stealth"},
	},
	{
		Key:                 "paladin",
		Name:                "Paladin",
		HitDie:              10,
		PrimaryAbility:      shared.AttributeStrength,
		SavingThrows:        []shared.Attribute{shared.AttributeWisdom, shared.AttributeCharisma},
		ArmorProficiencies:  []string{"light", "medium", "heavy", "shield"},
		WeaponProficiencies: []string{"simple", "martial"},
		SkillChoiceCount:    2,
		SkillOptions:        []string{"athletics", "insight", "intimidation", "medicine", "persuasion", "religion"},
		Spellcaster:         true,
		SpellcastingAbility: shared.AttributeCharisma,
		PreparationMode:     PreparationModePrepared,
		SpellProgression: map[int]SpellProgression{
			2: {SlotsByLevel: map[int]int{1: 2}},
			5: {SlotsByLevel: map[int]int{1: 4, 2: 2}},
		},
	},
	{
		Key:                 "ranger",
		Name:                "Ranger",
		HitDie:              10,
		PrimaryAbility:      shared.AttributeDexterity,
		SavingThrows:        []shared.Attribute{shared.AttributeStrength, shared.AttributeDexterity},
		ArmorProficiencies:  []string{"light", "medium", "shield"},
		WeaponProficiencies: []string{"simple", "martial"},
		SkillChoiceCount:    3,
		SkillOptions: []string{
			"animal-handling", "athletics", "insight", "investigation",
			"nature", "perception", "stealth", "survival",
		},
		Spellcaster:         true,
		SpellcastingAbility: shared.AttributeWisdom,
		PreparationMode:     PreparationModeKnown,
		SpellProgression: map[int]SpellProgression{
			2: {SpellsKnown: intPtr(2), SlotsByLevel: map[int]int{1: 2}},
			5: {SpellsKnown: intPtr(4), SlotsByLevel: map[int]int{1: 4, 2: 2}},
		},
	},
	{
		Key:                 "rogue",
		Name:                "Rogue",
		HitDie:              8,
		PrimaryAbility:      shared.AttributeDexterity,
		SavingThrows:        []shared.Attribute{shared.AttributeDexterity, shared.AttributeIntelligence},
		ArmorProficiencies:  []string{"light"},
		WeaponProficiencies: []string{"simple", "shortsword", "rapier", "longsword", "hand-crossbow"},
		ToolProficiencies:   []string{"thieves' tools"},
		SkillChoiceCount:    4,
		SkillOptions: []string{
			"acrobatics", "athletics", "deception", "insight", "intimidation", "investigation",
			"perception", "performance", "persuasion", "sleight-of-hand", "stealth",
		},
		// Rogues get one extra improvement at 10
		ASILevels: []int{4, 8, 10, 12, 16, 19},
	},
	{
		Key:                 "sorcerer",
		Name:                "Sorcerer",
		HitDie:              6,
		PrimaryAbility:      shared.AttributeCharisma,
		SavingThrows:        []shared.Attribute{shared.AttributeConstitution, shared.AttributeCharisma},
		WeaponProficiencies: []string{"simple"},
		SkillChoiceCount:    2,
		SkillOptions:        []string{"arcana", "deception", "insight", "intimidation", "persuasion", "religion"},
		Spellcaster:         true,
		SpellcastingAbility: shared.AttributeCharisma,
		PreparationMode:     PreparationModeKnown,
		SpellProgression: map[int]SpellProgression{
			1: {CantripsKnown: 4, SpellsKnown: intPtr(2), SlotsByLevel: map[int]int{1: 2}},
			3: {CantripsKnown: 4, SpellsKnown: intPtr(4), SlotsByLevel: map[int]int{1: 4, 2: 2}},
			5: {CantripsKnown: 5, SpellsKnown: intPtr(6), SlotsByLevel: map[int]int{1: 4, 2: 3, 3: 2}},
		},
	},
	{
		Key:                 "warlock",
		Name:                "Warlock",
		HitDie:              8,
		PrimaryAbility:      shared.AttributeCharisma,
		SavingThrows:        []shared.Attribute{shared.AttributeWisdom, shared.AttributeCharisma},
		ArmorProficiencies:  []string{"light"},
		WeaponProficiencies: []string{"simple"},
		SkillChoiceCount:    2,
		SkillOptions:        []string{"arcana", "deception", "history", "intimidation", "investigation", "nature", "religion"},
		Spellcaster:         true,
		SpellcastingAbility: shared.AttributeCharisma,
		PreparationMode:     PreparationModeKnown,
		SpellProgression: map[int]SpellProgression{
			1: {CantripsKnown: 2, SpellsKnown: intPtr(2), SlotsByLevel: map[int]int{1: 1}},
			3: {CantripsKnown: 2, SpellsKnown: intPtr(4), SlotsByLevel: map[int]int{2: 2}},
			5: {CantripsKnown: 3, SpellsKnown: intPtr(6), SlotsByLevel: map[int]int{3: 2}},
		},
	},
	{
		Key:                 "wizard",
		Name:                "Wizard",
		HitDie:              6,
		PrimaryAbility:      shared.AttributeIntelligence,
		SavingThrows:        []shared.Attribute{shared.AttributeIntelligence, shared.AttributeWisdom},
		WeaponProficiencies: []string{"simple"},
		SkillChoiceCount:    2,
		SkillOptions:        []string{"arcana", "history", "insight", "investigation", "medicine", "religion"},
		Spellcaster:         true,
		SpellcastingAbility: shared.AttributeIntelligence,
		PreparationMode:     PreparationModePrepared,
		SpellProgression: map[int]SpellProgression{
			1: {CantripsKnown: 3, SlotsByLevel: map[int]int{1: 2}},
			3: {CantripsKnown: 3, SlotsByLevel: map[int]int{1: 4, 2: 2}},
			5: {CantripsKnown: 4, SlotsByLevel: map[int]int{1: 4, 2: 3, 3: 2}},
		},
	},
}

var allSpecies = []*Species{
	{
		Key:   "human",
		Name:  "Human",
		Size:  "Medium",
		Speed: 30,
		Traits: []Trait{
			{Key: "resourceful", Name: "Resourceful"},
			{Key: "skillful", Name: "Skillful"},
		},
		Languages: []string{"Common"},
	},
	{
		Key:   "dwarf",
		Name:  "Dwarf",
		Size:  "Medium",
		Speed: 30,
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Effect: &TraitEffect{DarkvisionRange: 120}},
			{Key: "dwarven-resilience", Name: "Dwarven Resilience"},
			{Key: "dwarven-toughness", Name: "Dwarven Toughness", Effect: &TraitEffect{HPPerLevel: 1}},
			{Key: "stonecunning", Name: "Stonecunning"},
		},
		Languages: []string{"Common", "Dwarvish"},
	},
	{
		Key:   "elf",
		Name:  "Elf",
		Size:  "Medium",
		Speed: 30,
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Effect: &TraitEffect{DarkvisionRange: 60}},
			{Key: "fey-ancestry", Name: "Fey Ancestry"},
			{Key: "keen-senses", Name: "Keen Senses"},
			{Key: "trance", Name: "Trance"},
		},
		Languages:          []string{"Common", "Elvish"},
		SkillProficiencies: []string{"perception"},
	},
	{
		Key:   "halfling",
		Name:  "Halfling",
		Size:  "Small",
		Speed: 30,
		Traits: []Trait{
			{Key: "brave", Name: "Brave"},
			{Key: "halfling-nimbleness", Name: "Halfling Nimbleness"},
			{Key: "luck", Name: "Luck"},
			{Key: "naturally-stealthy", Name: "Naturally Stealthy"},
		},
		Languages: []string{"Common", "Halfling"},
	},
	{
		Key:   "gnome",
		Name:  "Gnome",
		Size:  "Small",
		Speed: 30,
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Effect: &TraitEffect{DarkvisionRange: 60}},
			{Key: "gnomish-cunning", Name: "Gnomish Cunning"},
		},
		Languages: []string{"Common", "Gnomish"},
	},
	{
		Key:   "orc",
		Name:  "Orc",
		Size:  "Medium",
		Speed: 30,
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Effect: &TraitEffect{DarkvisionRange: 120}},
			{Key: "adrenaline-rush", Name: "Adrenaline Rush"},
			{Key: "relentless-endurance", Name: "Relentless Endurance"},
		},
		Languages: []string{"Common", "Orc"},
	},
	{
		Key:   "dragonborn",
		Name:  "Dragonborn",
		Size:  "Medium",
		Speed: 30,
		Traits: []Trait{
			{Key: "breath-weapon", Name: "Breath Weapon"},
			{Key: "damage-resistance", Name: "Damage Resistance"},
			{Key: "draconic-flight", Name: "Draconic Flight"},
		},
		Languages: []string{"Common", "Draconic"},
	},
	{
		Key:   "goliath",
		Name:  "Goliath",
		Size:  "Medium",
		Speed: 35,
		Traits: []Trait{
			{Key: "giant-ancestry", Name: "Giant Ancestry"},
			{Key: "powerful-build", Name: "Powerful Build"},
		},
		Languages: []string{"Common", "Giant"},
	},
	{
		Key:   "tiefling",
		Name:  "Tiefling",
		Size:  "Medium",
		Speed: 30,
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Effect: &TraitEffect{DarkvisionRange: 60}},
			{Key: "fiendish-legacy", Name: "Fiendish Legacy"},
			{Key: "otherworldly-presence", Name: "Otherworldly Presence"},
		},
		Languages: []string{"Common", "Infernal"},
	},
}

var backgrounds = []*Background{
	{
		Key:                "acolyte",
		Name:               "Acolyte",
		SkillProficiencies: []string{"insight", "religion"},
		ToolProficiencies:  []string{"calligrapher's supplies"},
		OriginFeatKey:      "magic-initiate",
		Equipment:          []string{"holy symbol", "prayer book", "robe"},
	},
	{
		Key:                "criminal",
		Name:               "Criminal",
		SkillProficiencies: []string{"sleight-of-hand", "stealth"},
		ToolProficiencies:  []string{"thieves' tools"},
		OriginFeatKey:      "alert",
		Equipment:          []string{"crowbar", "dagger", "pouch"},
	},
	{
		Key:                "entertainer",
		Name:               "Entertainer",
		SkillProficiencies: []string{"acrobatics", "performance"},
		ToolProficiencies:  []string{"musical instrument"},
		OriginFeatKey:      "musician",
		Equipment:          []string{"musical instrument", "costume"},
	},
	{
		Key:                "guard",
		Name:               "Guard",
		SkillProficiencies: []string{"athletics", "perception"},
		ToolProficiencies:  []string{"gaming set"},
		OriginFeatKey:      "alert",
		Equipment:          []string{"spear", "light-crossbow", "hooded lantern"},
	},
	{
		Key:                "hermit",
		Name:               "Hermit",
		SkillProficiencies: []string{"medicine", "religion"},
		ToolProficiencies:  []string{"herbalism kit"},
		OriginFeatKey:      "healer",
		Equipment:          []string{"quarterstaff", "herbalism kit", "bedroll"},
	},
	{
		Key:                "noble",
		Name:               "Noble",
		SkillProficiencies: []string{"history", "persuasion"},
		ToolProficiencies:  []string{"gaming set"},
		OriginFeatKey:      "skilled",
		Equipment:          []string{"fine clothes", "signet ring", "perfume"},
	},
	{
		Key:                "sage",
		Name:               "Sage",
		SkillProficiencies: []string{"arcana", "history"},
		ToolProficiencies:  []string{"calligrapher's supplies"},
		OriginFeatKey:      "magic-initiate",
		Equipment:          []string{"quarterstaff", "book", "parchment"},
	},
	{
		Key:                "sailor",
		Name:               "Sailor",
		SkillProficiencies: []string{"acrobatics", "perception"},
		ToolProficiencies:  []string{"navigator's tools"},
		OriginFeatKey:      "tavern-brawler",
		Equipment:          []string{"dagger", "rope", "navigator's tools"},
	},
	{
		Key:                "soldier",
		Name:               "Soldier",
		SkillProficiencies: []string{"athletics", "intimidation"},
		ToolProficiencies:  []string{"gaming set"},
		OriginFeatKey:      "savage-attacker",
		Equipment:          []string{"spear", "shortbow", "gaming set"},
	},
}

var feats = []*Feat{
	{
		Key:      "alert",
		Name:     "Alert",
		Benefits: &FeatBenefit{InitiativeBonus: 5},
	},
	{
		Key:      "archery",
		Name:     "Archery",
		Benefits: &FeatBenefit{RangedAttackBonus: 2},
		Prerequisites: &FeatPrerequisites{
			Classes: []string{"fighter", "paladin", "ranger"},
		},
	},
	{
		Key:  "healer",
		Name: "Healer",
	},
	{
		Key:        "magic-initiate",
		Name:       "Magic Initiate",
		Repeatable: true,
	},
	{
		Key:      "mobile",
		Name:     "Mobile",
		Benefits: &FeatBenefit{SpeedBonus: 10},
	},
	{
		Key:  "musician",
		Name: "Musician",
	},
	{
		Key:  "savage-attacker",
		Name: "Savage Attacker",
	},
	{
		Key:  "skilled",
		Name: "Skilled",
		// Grants three skill or tool proficiencies, chosen on pick up
		Repeatable: true,
	},
	{
		Key:  "tavern-brawler",
		Name: "Tavern Brawler",
	},
	{
		Key:      "tough",
		Name:     "Tough",
		Benefits: &FeatBenefit{HPPerLevel: 2},
	},
	{
		Key:  "great-weapon-master",
		Name: "Great Weapon Master",
		Prerequisites: &FeatPrerequisites{
			MinLevel:     4,
			MinAbilities: map[shared.Attribute]int{shared.AttributeStrength: 13},
		},
		AbilityScoreIncrease: map[shared.Attribute]int{shared.AttributeStrength: 1},
	},
	{
		Key:  "sharpshooter",
		Name: "Sharpshooter",
		Prerequisites: &FeatPrerequisites{
			MinLevel:     4,
			MinAbilities: map[shared.Attribute]int{shared.AttributeDexterity: 13},
		},
		AbilityScoreIncrease: map[shared.Attribute]int{shared.AttributeDexterity: 1},
	},
	{
		Key:  "war-caster",
		Name: "War Caster",
		Prerequisites: &FeatPrerequisites{
			MinLevel: 4,
			Classes:  []string{"bard", "cleric", "druid", "paladin", "ranger", "sorcerer", "warlock", "wizard"},
		},
	},
	{
		Key:  "resilient",
		Name: "Resilient",
		Prerequisites: &FeatPrerequisites{
			MinLevel: 4,
		},
		Repeatable: true,
	},
	{
		Key:  "sentinel",
		Name: "Sentinel",
		Prerequisites: &FeatPrerequisites{
			MinLevel:     4,
			MinAbilities: map[shared.Attribute]int{shared.AttributeStrength: 13},
		},
	},
	{
		Key:  "lucky",
		Name: "Lucky",
		Prerequisites: &FeatPrerequisites{
			MinLevel: 4,
		},
	},
}

var spells = []*Spell{
	{
		Key: "fire-bolt", Name: "Fire Bolt", Level: 0, School: "evocation",
		Classes: []string{"sorcerer", "wizard"},
	},
	{
		Key: "mage-hand", Name: "Mage Hand", Level: 0, School: "conjuration",
		Classes: []string{"bard", "sorcerer", "warlock", "wizard"},
	},
	{
		Key: "prestidigitation", Name: "Prestidigitation", Level: 0, School: "transmutation",
		Classes: []string{"bard", "sorcerer", "warlock", "wizard"},
	},
	{
		Key: "minor-illusion", Name: "Minor Illusion", Level: 0, School: "illusion",
		Classes: []string{"bard", "sorcerer", "warlock", "wizard"},
	},
	{
		Key: "eldritch-blast", Name: "Eldritch Blast", Level: 0, School: "evocation",
		Classes: []string{"warlock"},
	},
	{
		Key: "sacred-flame", Name: "Sacred Flame", Level: 0, School: "evocation",
		Classes: []string{"cleric"},
	},
	{
		Key: "guidance", Name: "Guidance", Level: 0, School: "divination", Concentration: true,
		Classes: []string{"cleric", "druid"},
	},
	{
		Key: "vicious-mockery", Name: "Vicious Mockery", Level: 0, School: "enchantment",
		Classes: []string{"bard"},
	},
	{
		Key: "druidcraft", Name: "Druidcraft", Level: 0, School: "transmutation",
		Classes: []string{"druid"},
	},
	{
		Key: "magic-missile", Name: "Magic Missile", Level: 1, School: "evocation",
		Classes: []string{"sorcerer", "wizard"},
	},
	{
		Key: "shield", Name: "Shield", Level: 1, School: "abjuration",
		Classes: []string{"sorcerer", "wizard"},
	},
	{
		Key: "mage-armor", Name: "Mage Armor", Level: 1, School: "abjuration",
		Classes: []string{"sorcerer", "wizard"},
	},
	{
		Key: "sleep", Name: "Sleep", Level: 1, School: "enchantment",
		Classes: []string{"bard", "sorcerer", "wizard"},
	},
	{
		Key: "cure-wounds", Name: "Cure Wounds", Level: 1, School: "abjuration",
		Classes: []string{"bard", "cleric", "druid", "paladin", "ranger"},
	},
	{
		Key: "healing-word", Name: "Healing Word", Level: 1, School: "abjuration",
		Classes: []string{"bard", "cleric", "druid"},
	},
	{
		Key: "bless", Name: "Bless", Level: 1, School: "enchantment", Concentration: true,
		Classes: []string{"cleric", "paladin"},
	},
	{
		Key: "guiding-bolt", Name: "Guiding Bolt", Level: 1, School: "evocation",
		Classes: []string{"cleric"},
	},
	{
		Key: "faerie-fire", Name: "Faerie Fire", Level: 1, School: "evocation", Concentration: true,
		Classes: []string{"bard", "druid"},
	},
	{
		Key: "entangle", Name: "Entangle", Level: 1, School: "conjuration", Concentration: true,
		Classes: []string{"druid"},
	},
	{
		Key: "hex", Name: "Hex", Level: 1, School: "enchantment", Concentration: true,
		Classes: []string{"warlock"},
	},
	{
		Key: "hunters-mark", Name: "Hunter's Mark", Level: 1, School: "divination", Concentration: true,
		Classes: []string{"ranger"},
	},
	{
		Key: "detect-magic", Name: "Detect Magic", Level: 1, School: "divination", Concentration: true, Ritual: true,
		Classes: []string{"bard", "cleric", "druid", "paladin", "ranger", "sorcerer", "wizard"},
	},
}

var (
	classIndex      = indexClasses()
	speciesIndex    = indexSpecies()
	backgroundIndex = indexBackgrounds()
	featIndex       = indexFeats()
	spellIndex      = indexSpells()
)

func indexClasses() map[string]*Class {
	idx := make(map[string]*Class, len(classes))
	for _, c := range classes {
		idx[c.Key] = c
	}
	return idx
}

func indexSpecies() map[string]*Species {
	idx := make(map[string]*Species, len(allSpecies))
	for _, s := range allSpecies {
		idx[s.Key] = s
	}
	return idx
}

func indexBackgrounds() map[string]*Background {
	idx := make(map[string]*Background, len(backgrounds))
	for _, b := range backgrounds {
		idx[b.Key] = b
	}
	return idx
}

func indexFeats() map[string]*Feat {
	idx := make(map[string]*Feat, len(feats))
	for _, f := range feats {
		idx[f.Key] = f
	}
	return idx
}

func indexSpells() map[string]*Spell {
	idx := make(map[string]*Spell, len(spells))
	for _, s := range spells {
		idx[s.Key] = s
	}
	return idx
}

// Classes returns every class in the rulebook
func Classes() []*Class {
	return classes
}

// ClassByKey looks up a class, nil when unknown
func ClassByKey(key string) *Class {
	return classIndex[key]
}

// AllSpecies returns every species in the rulebook
func AllSpecies() []*Species {
	return allSpecies
}

// SpeciesByKey looks up a species, nil when unknown
func SpeciesByKey(key string) *Species {
	return speciesIndex[key]
}

// Backgrounds returns every background in the rulebook
func Backgrounds() []*Background {
	return backgrounds
}

// BackgroundByKey looks up a background, nil when unknown
func BackgroundByKey(key string) *Background {
	return backgroundIndex[key]
}

// Feats returns every feat in the rulebook
func Feats() []*Feat {
	return feats
}

// FeatByKey looks up a feat, nil when unknown
func FeatByKey(key string) *Feat {
	return featIndex[key]
}

// Spells returns every spell in the rulebook
func Spells() []*Spell {
	return spells
}

// SpellByKey looks up a spell, nil when unknown
func SpellByKey(key string) *Spell {
	return spellIndex[key]
}
