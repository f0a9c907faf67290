package validation

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/dnd-character-api/internal/dice"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
	"github.com/KirkDiggler/dnd-character-api/internal/services/calculator"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockvalidation -source=service.go

// ScoreMethod names how the six ability scores were produced
type ScoreMethod string

const (
	MethodPointBuy      ScoreMethod = "point_buy"
	MethodStandardArray ScoreMethod = "standard_array"
	MethodRolled        ScoreMethod = "rolled"
	MethodManual        ScoreMethod = "manual"
)

// Issue is one problem found on a build. Field points at what to fix.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result collects everything wrong (errors block finalizing) and
// everything questionable (warnings do not) about a build
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

func (r *Result) addError(field, format string, args ...interface{}) {
	r.Errors = append(r.Errors, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
	r.Valid = false
}

func (r *Result) addWarning(field, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
}

// standardArray is the fixed set of scores the standard array method
// must use, in any assignment
var standardArray = []int{8, 10, 12, 13, 14, 15}

// Service checks characters against the creation rules
type Service interface {
	ValidateCharacter(char *character.Character) *Result
	ValidateAbilityScores(scores character.AbilityScores, method ScoreMethod) *Result
}

type ServiceConfig struct {
	Calculator calculator.Service
}

type service struct {
	calculator calculator.Service
}

func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config is required")
	}
	if cfg.Calculator == nil {
		return nil, dnderr.InvalidArgument("calculator is required")
	}
	return &service{calculator: cfg.Calculator}, nil
}

// ValidateCharacter runs every check a build must pass before it can
// leave the draft state, plus advisory warnings
func (s *service) ValidateCharacter(char *character.Character) *Result {
	result := &Result{Valid: true}

	s.checkRequiredFields(char, result)
	s.checkLevel(char, result)
	s.checkScoreBounds(char, result)
	s.checkSkills(char, result)
	s.checkEquipment(char, result)
	s.checkFeats(char, result)
	s.checkSpells(char, result)
	s.addAdvisoryWarnings(char, result)

	return result
}

func (s *service) checkRequiredFields(char *character.Character, result *Result) {
	if char.Name == "" {
		result.addError("name", "character name is required")
	}
	if char.Class == nil {
		result.addError("class", "a class must be selected")
	}
	if char.Species == nil {
		result.addError("species", "a species must be selected")
	}
	if char.Background == nil {
		result.addError("background", "a background must be selected")
	}
}

func (s *service) checkLevel(char *character.Character, result *Result) {
	if char.Level < 1 || char.Level > 20 {
		result.addError("level", "level must be between 1 and 20, got %d", char.Level)
	}
}

func (s *service) checkScoreBounds(char *character.Character, result *Result) {
	for _, attr := range shared.Attributes {
		score := char.Attributes.Score(attr)
		if score < 3 || score > 20 {
			result.addError(string(attr), "%s must be between 3 and 20, got %d", attr.FullName(), score)
		}
	}
}

// checkSkills verifies class-sourced picks come from the class list
// and stay within the class's choice budget, and that every
// background-sourced skill is one the background actually grants
func (s *service) checkSkills(char *character.Character, result *Result) {
	seen := make(map[string]bool, len(char.Skills))
	for _, sp := range char.Skills {
		if seen[sp.SkillKey] {
			result.addError("skills", "%s is selected more than once", sp.SkillKey)
		}
		seen[sp.SkillKey] = true
	}

	if char.Background != nil {
		for _, sp := range char.Skills {
			if sp.Source == shared.SkillSourceBackground && !char.Background.GrantsSkill(sp.SkillKey) {
				result.addError("skills", "%s is not granted by the %s background", sp.SkillKey, char.Background.Name)
			}
		}
	}

	if char.Class == nil {
		return
	}

	classPicks := 0
	for _, sp := range char.Skills {
		if sp.Source != shared.SkillSourceClass {
			continue
		}
		classPicks++
		if !char.Class.CanLearnSkill(sp.SkillKey) {
			result.addError("skills", "%s is not a %s skill option", sp.SkillKey, char.Class.Name)
		}
	}
	if char.Class.SkillChoiceCount > 0 && classPicks != char.Class.SkillChoiceCount {
		result.addError("skills", "%s requires %d skill choices, got %d",
			char.Class.Name, char.Class.SkillChoiceCount, classPicks)
	}
}

// checkEquipment enforces proficiency and wearability rules on what is
// currently equipped
func (s *service) checkEquipment(char *character.Character, result *Result) {
	bodyArmor := 0
	attuned := 0
	var twoHanded *equipment.Weapon
	for _, item := range char.Inventory {
		if item.Attuned {
			attuned++
		}
		if !item.Equipped {
			continue
		}
		switch it := item.Item.(type) {
		case *equipment.Armor:
			if it.IsBodyArmor() {
				bodyArmor++
				if char.Class != nil && !char.Class.HasArmorProficiency(string(it.ArmorType)) {
					result.addError("equipment", "not proficient with %s", it.GetName())
				}
			}
		case *equipment.Weapon:
			if it.IsTwoHanded() {
				twoHanded = it
			}
			if char.Class != nil && !isWeaponProficient(char.Class, it) {
				result.addError("equipment", "not proficient with %s", it.GetName())
			}
		}
	}

	if bodyArmor > 1 {
		result.addError("equipment", "only one suit of armor can be worn at a time")
	}
	if attuned > 3 {
		result.addError("equipment", "%d items attuned but only 3 attunement slots exist", attuned)
	}
	if twoHanded != nil && char.HasShieldEquipped() {
		result.addError("equipment", "%s needs both hands, a shield cannot be carried with it", twoHanded.GetName())
	}

	if enc := s.calculator.EncumbranceFor(char); enc.Status == calculator.EncumbranceOverloaded {
		result.addError("equipment", "carrying %.1f lb exceeds the %.1f lb capacity", enc.CarriedWeight, enc.Capacity)
	}
}

func isWeaponProficient(class *rulebook.Class, weapon *equipment.Weapon) bool {
	return class.HasWeaponProficiency(string(weapon.WeaponCategory)) ||
		class.HasWeaponProficiency(weapon.GetName()) ||
		class.HasWeaponProficiency(weapon.GetKey())
}

func (s *service) checkFeats(char *character.Character, result *Result) {
	classKey := ""
	if char.Class != nil {
		classKey = char.Class.Key
	}
	scores := char.Attributes.ToMap()

	asiBudget := 0
	if char.Class != nil {
		asiBudget = char.Class.ASILevelsUpTo(char.Level)
	}
	earnedFeats := 0

	for _, cf := range char.Feats {
		if cf.Feat == nil {
			continue
		}
		if !cf.Feat.MeetsPrerequisites(scores, char.Level, classKey) {
			result.addError("feats", "prerequisites not met for %s", cf.Feat.Name)
		}
		// Everything past the background origin feat costs an
		// ability score improvement slot
		if cf.Source != shared.FeatSourceBackground {
			earnedFeats++
		}
	}

	if earnedFeats > asiBudget {
		result.addError("feats", "%d feats taken but only %d ability score improvements earned", earnedFeats, asiBudget)
	}

	if char.Background != nil && char.Background.OriginFeatKey != "" {
		found := false
		for _, cf := range char.Feats {
			if cf.Source == shared.FeatSourceBackground && cf.Feat != nil && cf.Feat.Key == char.Background.OriginFeatKey {
				found = true
				break
			}
		}
		if !found {
			result.addError("feats", "the %s background grants the %s feat, which is missing",
				char.Background.Name, char.Background.OriginFeatKey)
		}
	}
}

func (s *service) checkSpells(char *character.Character, result *Result) {
	if char.Class == nil {
		return
	}
	if !char.Class.Spellcaster {
		if len(char.Spells) > 0 {
			result.addError("spells", "%s does not cast spells", char.Class.Name)
		}
		return
	}

	stats := s.calculator.SpellcastingStats(char)
	if stats == nil {
		return
	}
	if prepared := char.PreparedSpellCount(); prepared > stats.MaxPreparedSpells {
		result.addError("spells", "%d spells prepared but the maximum is %d", prepared, stats.MaxPreparedSpells)
	}

	progression, ok := char.Class.ProgressionAt(char.Level)
	if !ok {
		return
	}

	cantrips, leveled := 0, 0
	for _, spell := range char.Spells {
		if spell.Level == 0 {
			cantrips++
		} else {
			leveled++
		}
		// Homebrew spells missing from the rulebook are let through
		if known := rulebook.SpellByKey(spell.SpellKey); known != nil && !known.AvailableTo(char.Class.Key) {
			result.addError("spells", "%s is not on the %s spell list", known.Name, char.Class.Name)
		}
	}
	if cantrips != progression.CantripsKnown {
		result.addError("spells", "%d cantrips known but %s level %d requires %d",
			cantrips, char.Class.Name, char.Level, progression.CantripsKnown)
	}
	if progression.SpellsKnown != nil && leveled != *progression.SpellsKnown {
		result.addError("spells", "%d spells known but %s level %d requires %d",
			leveled, char.Class.Name, char.Level, *progression.SpellsKnown)
	}
}

// addAdvisoryWarnings flags choices that are legal but usually
// regretted at the table
func (s *service) addAdvisoryWarnings(char *character.Character, result *Result) {
	if char.Class != nil && char.Class.PrimaryAbility != "" {
		if char.Attributes.Score(char.Class.PrimaryAbility) < 14 {
			result.addWarning(string(char.Class.PrimaryAbility),
				"%s below 14 will make a %s struggle", char.Class.PrimaryAbility.FullName(), char.Class.Name)
		}
	}

	if char.Attributes.Constitution > 0 && char.Attributes.Constitution < 12 {
		result.addWarning("CON", "Constitution below 12 leaves very few hit points")
	}

	if char.Class != nil && char.Class.ASILevelsUpTo(char.Level) > 0 {
		taken := 0
		for _, cf := range char.Feats {
			if cf.Source != shared.FeatSourceBackground {
				taken++
			}
		}
		if taken == 0 {
			result.addWarning("feats", "no feats or improvements taken despite earned ability score improvements")
		}
	}

	if armor := char.EquippedBodyArmor(); armor != nil {
		if armor.StrengthRequirement > 0 && char.Attributes.Strength < armor.StrengthRequirement {
			result.addWarning("equipment", "%s needs Strength %d, speed will drop", armor.GetName(), armor.StrengthRequirement)
		}
	}

}

// ValidateAbilityScores checks a score set against the rules of the
// method that produced it
func (s *service) ValidateAbilityScores(scores character.AbilityScores, method ScoreMethod) *Result {
	result := &Result{Valid: true}
	values := scores.AsSlice()

	switch method {
	case MethodPointBuy:
		for i, attr := range shared.Attributes {
			if values[i] < 8 || values[i] > 15 {
				result.addError(string(attr), "point buy scores must be between 8 and 15, got %d", values[i])
			}
		}
		if !result.Valid {
			return result
		}
		analysis := dice.AnalyzePointBuy(values)
		if analysis.ExceedsBudget {
			result.addError("scores", "point buy cost %d exceeds the %d point budget", analysis.TotalCost, analysis.Budget)
		}

	case MethodStandardArray:
		sorted := append([]int(nil), values...)
		sort.Ints(sorted)
		for i := range sorted {
			if sorted[i] != standardArray[i] {
				result.addError("scores", "scores must use the standard array 15, 14, 13, 12, 10, 8")
				break
			}
		}

	case MethodRolled:
		for i, attr := range shared.Attributes {
			if values[i] < 3 || values[i] > 18 {
				result.addError(string(attr), "rolled scores must be between 3 and 18, got %d", values[i])
			}
		}

	case MethodManual:
		for i, attr := range shared.Attributes {
			if values[i] < 1 || values[i] > 30 {
				result.addError(string(attr), "scores must be between 1 and 30, got %d", values[i])
			}
		}

	default:
		result.addError("method", "unknown score method %q", method)
	}

	return result
}
