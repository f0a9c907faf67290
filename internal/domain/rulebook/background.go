package rulebook

// Background is a 5e character background
type Background struct {
	Key                string   `json:"key"`
	Name               string   `json:"name"`
	SkillProficiencies []string `json:"skill_proficiencies"`
	ToolProficiencies  []string `json:"tool_proficiencies,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	OriginFeatKey      string   `json:"origin_feat_key,omitempty"`
	Equipment          []string `json:"equipment,omitempty"`
	Description        string   `json:"description,omitempty"`
}

// GrantsSkill checks the background proficiency list
func (b *Background) GrantsSkill(skillKey string) bool {
	for _, skill := range b.SkillProficiencies {
		if skill == skillKey {
			return true
		}
	}
	return false
}
