package recommend

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockrecommend -source=service.go

// ExperienceLevel shapes how safe the class suggestions should be
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// ClassRecommendations splits suggested classes into best fits and
// honorable mentions
type ClassRecommendations struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// EquipmentRecommendations groups starting gear suggestions
type EquipmentRecommendations struct {
	Weapons []string `json:"weapons"`
	Armor   []string `json:"armor"`
	Tools   []string `json:"tools"`
	Other   []string `json:"other"`
}

// SpellSuggestion is one recommended spell with the pitch for it
type SpellSuggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// FeatSuggestion is one recommended feat with the pitch for it
type FeatSuggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// SynergyAnalysis is the free-text review of a build
type SynergyAnalysis struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// BuildScore grades how optimized a build is, out of 100
type BuildScore struct {
	Score      int    `json:"score"`
	MaxScore   int    `json:"max_score"`
	Percentage int    `json:"percentage"`
	Grade      string `json:"grade"`
	Reason     string `json:"reason,omitempty"`
}

// Service suggests creation choices and reviews finished builds
type Service interface {
	RecommendClasses(playstyles []string, experience ExperienceLevel) *ClassRecommendations
	BackgroundsForClass(className string) []string
	SpeciesForClass(className string) []string
	AbilityPriority(className string) map[shared.Attribute]int
	SuggestScoreAssignment(className string, scores []int) (map[shared.Attribute]int, error)
	StartingEquipment(char *character.Character) *EquipmentRecommendations
	SpellsForClass(className string, spellLevel int) []SpellSuggestion
	FeatsForBuild(char *character.Character) []FeatSuggestion
	AnalyzeSynergies(char *character.Character) *SynergyAnalysis
	OptimizationScore(char *character.Character) *BuildScore
}

type ServiceConfig struct{}

type service struct{}

func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config is required")
	}
	return &service{}, nil
}

// RecommendClasses folds every requested playstyle together.
// Beginners get the beginner-friendly list mixed in, and a class never
// appears in both tiers.
func (s *service) RecommendClasses(playstyles []string, experience ExperienceLevel) *ClassRecommendations {
	if experience == ExperienceBeginner {
		playstyles = append(append([]string(nil), playstyles...), "beginner_friendly")
	}

	primary := make(map[string]bool)
	secondary := make(map[string]bool)
	for _, style := range playstyles {
		lists, ok := playstyleClasses[style]
		if !ok {
			continue
		}
		for _, c := range lists.primary {
			primary[c] = true
		}
		for _, c := range lists.secondary {
			secondary[c] = true
		}
	}
	for c := range primary {
		delete(secondary, c)
	}

	return &ClassRecommendations{
		Primary:   sortedKeys(primary),
		Secondary: sortedKeys(secondary),
	}
}

func (s *service) BackgroundsForClass(className string) []string {
	return append([]string(nil), classBackgroundSynergies[className]...)
}

func (s *service) SpeciesForClass(className string) []string {
	return append([]string(nil), classSpeciesSynergies[className]...)
}

func (s *service) AbilityPriority(className string) map[shared.Attribute]int {
	priorities := classAbilityPriorities[className]
	out := make(map[shared.Attribute]int, len(priorities))
	for attr, rank := range priorities {
		out[attr] = rank
	}
	return out
}

// SuggestScoreAssignment maps a rolled or standard array set onto the
// class's priority order, best score to highest priority
func (s *service) SuggestScoreAssignment(className string, scores []int) (map[shared.Attribute]int, error) {
	priorities := classAbilityPriorities[className]
	if len(priorities) == 0 {
		return nil, dnderr.NotFoundf("no ability priorities for class %q", className)
	}
	if len(scores) != 6 {
		return nil, dnderr.InvalidArgumentf("expected 6 scores, got %d", len(scores))
	}

	sorted := append([]int(nil), scores...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	byPriority := make([]shared.Attribute, 0, len(priorities))
	for attr := range priorities {
		byPriority = append(byPriority, attr)
	}
	sort.Slice(byPriority, func(i, j int) bool {
		return priorities[byPriority[i]] < priorities[byPriority[j]]
	})

	assignment := make(map[shared.Attribute]int, len(byPriority))
	for i, attr := range byPriority {
		assignment[attr] = sorted[i]
	}
	return assignment, nil
}

// StartingEquipment suggests weapons by class, tools by background,
// and a standard adventuring kit
func (s *service) StartingEquipment(char *character.Character) *EquipmentRecommendations {
	recs := &EquipmentRecommendations{
		Weapons: []string{},
		Armor:   []string{},
		Tools:   []string{},
		Other:   []string{},
	}
	if char == nil || char.Class == nil {
		return recs
	}

	recs.Weapons = append(recs.Weapons, classWeaponPicks[char.Class.Name]...)
	if char.Background != nil {
		recs.Tools = append(recs.Tools, backgroundToolPicks[char.Background.Name]...)
	}
	recs.Other = append(recs.Other, adventuringGear...)
	return recs
}

func (s *service) SpellsForClass(className string, spellLevel int) []SpellSuggestion {
	return append([]SpellSuggestion(nil), classSpellPicks[className][spellLevel]...)
}

// FeatsForBuild leads with the class's signature feats and pads with
// the universal picks, capped at six
func (s *service) FeatsForBuild(char *character.Character) []FeatSuggestion {
	if char == nil || char.Class == nil {
		return nil
	}

	recs := append([]FeatSuggestion(nil), classFeatPicks[char.Class.Name]...)
	seen := make(map[string]bool, len(recs))
	for _, r := range recs {
		seen[r.Name] = true
	}
	for _, feat := range generalFeatPicks {
		if !seen[feat.Name] {
			recs = append(recs, feat)
		}
	}

	if len(recs) > 6 {
		recs = recs[:6]
	}
	return recs
}

// AnalyzeSynergies writes up what works and what does not in the
// current build
func (s *service) AnalyzeSynergies(char *character.Character) *SynergyAnalysis {
	analysis := &SynergyAnalysis{
		Strengths:   []string{},
		Weaknesses:  []string{},
		Suggestions: []string{},
	}

	if char == nil || char.Class == nil {
		analysis.Weaknesses = append(analysis.Weaknesses, "Character build incomplete")
		return analysis
	}

	className := char.Class.Name
	primary := char.Class.PrimaryAbility
	if primary != "" {
		primaryScore := char.Attributes.Score(primary)
		if primaryScore >= 15 {
			analysis.Strengths = append(analysis.Strengths,
				fmt.Sprintf("Strong %s (%d) for %s", primary.FullName(), primaryScore, className))
		} else if primaryScore < 13 {
			analysis.Weaknesses = append(analysis.Weaknesses,
				fmt.Sprintf("Low %s (%d) may hurt effectiveness", primary.FullName(), primaryScore))
		}
	}

	conScore := char.Attributes.Constitution
	if conScore >= 14 {
		analysis.Strengths = append(analysis.Strengths,
			fmt.Sprintf("Good Constitution (%d) for survivability", conScore))
	} else if conScore < 12 {
		analysis.Weaknesses = append(analysis.Weaknesses,
			fmt.Sprintf("Low Constitution (%d) reduces hit points", conScore))
		analysis.Suggestions = append(analysis.Suggestions,
			"Consider increasing Constitution at next ASI")
	}

	switch className {
	case "Fighter":
		strScore := char.Attributes.Strength
		dexScore := char.Attributes.Dexterity
		if strScore >= 15 && dexScore >= 13 {
			analysis.Strengths = append(analysis.Strengths, "Well-rounded combat abilities")
		} else if strScore >= 15 {
			analysis.Strengths = append(analysis.Strengths, "Strong melee combat potential")
		} else if dexScore >= 15 {
			analysis.Strengths = append(analysis.Strengths, "Good ranged combat and AC")
		}
	case "Wizard", "Sorcerer", "Warlock":
		if char.Attributes.Dexterity >= 14 {
			analysis.Strengths = append(analysis.Strengths, "Good Dexterity for AC and initiative")
		} else {
			analysis.Suggestions = append(analysis.Suggestions, "Consider Mage Armor spell for better AC")
		}
	}

	if char.Background != nil && contains(classBackgroundSynergies[className], char.Background.Name) {
		analysis.Strengths = append(analysis.Strengths,
			fmt.Sprintf("%s background synergizes well with %s", char.Background.Name, className))
	}
	if char.Species != nil && contains(classSpeciesSynergies[className], char.Species.Name) {
		analysis.Strengths = append(analysis.Strengths,
			fmt.Sprintf("%s species complements %s abilities", char.Species.Name, className))
	}

	if char.EquippedBodyArmor() == nil && className != "Barbarian" && className != "Monk" {
		analysis.Suggestions = append(analysis.Suggestions, "Consider equipping armor for better AC")
	}

	return analysis
}

// OptimizationScore grades the build out of 100: primary ability up to
// 30, Constitution up to 20, background and species synergy 15 each,
// 10 for no dump stats, 10 for any skill picks
func (s *service) OptimizationScore(char *character.Character) *BuildScore {
	const maxScore = 100

	if char == nil || char.Class == nil {
		return &BuildScore{Score: 0, MaxScore: maxScore, Grade: "F", Reason: "Incomplete character"}
	}

	score := 0

	primaryScore := char.Attributes.Score(char.Class.PrimaryAbility)
	switch {
	case primaryScore >= 15:
		score += 30
	case primaryScore >= 13:
		score += 20
	case primaryScore >= 10:
		score += 10
	}

	conScore := char.Attributes.Constitution
	switch {
	case conScore >= 14:
		score += 20
	case conScore >= 12:
		score += 15
	case conScore >= 10:
		score += 10
	}

	if char.Background != nil && contains(classBackgroundSynergies[char.Class.Name], char.Background.Name) {
		score += 15
	}
	if char.Species != nil && contains(classSpeciesSynergies[char.Class.Name], char.Species.Name) {
		score += 15
	}

	noDumpStats := true
	for _, v := range char.Attributes.AsSlice() {
		if v < 8 {
			noDumpStats = false
			break
		}
	}
	if noDumpStats {
		score += 10
	}

	if len(char.Skills) > 0 {
		score += 10
	}

	return &BuildScore{
		Score:      score,
		MaxScore:   maxScore,
		Percentage: score * 100 / maxScore,
		Grade:      gradeFor(score),
	}
}

func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
