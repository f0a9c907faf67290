package shared

// CharacterState tracks a character through the creation lifecycle
type CharacterState string

const (
	// CharacterStateDraft is a character mid-creation
	CharacterStateDraft CharacterState = "draft"

	// CharacterStateComplete is a finished, playable character
	CharacterStateComplete CharacterState = "complete"

	// CharacterStateArchived is a retired character kept for reference
	CharacterStateArchived CharacterState = "archived"
)

// ProficiencyLevel is a character's training level in a skill
type ProficiencyLevel string

const (
	ProficiencyLevelNone       ProficiencyLevel = "none"
	ProficiencyLevelProficient ProficiencyLevel = "proficient"
	ProficiencyLevelExpertise  ProficiencyLevel = "expertise"
)

// FeatSource records how a character acquired a feat
type FeatSource string

const (
	FeatSourceBackground FeatSource = "background"
	FeatSourceClass      FeatSource = "class"
	FeatSourceASI        FeatSource = "asi"
	FeatSourceSpecies    FeatSource = "species"
)

// SkillSource records which choice granted a skill proficiency
type SkillSource string

const (
	SkillSourceClass      SkillSource = "class"
	SkillSourceBackground SkillSource = "background"
	SkillSourceSpecies    SkillSource = "species"
)
