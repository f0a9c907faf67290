package rulebook

// Spell is a 5e spell as stored in the rulebook. Level 0 is a cantrip.
type Spell struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Level         int      `json:"level"`
	School        string   `json:"school"`
	CastingTime   string   `json:"casting_time,omitempty"`
	Range         string   `json:"range,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Concentration bool     `json:"concentration,omitempty"`
	Ritual        bool     `json:"ritual,omitempty"`
	Classes       []string `json:"classes,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// IsCantrip reports whether the spell is a cantrip
func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}

// AvailableTo checks the spell's class list
func (s *Spell) AvailableTo(classKey string) bool {
	for _, c := range s.Classes {
		if c == classKey {
			return true
		}
	}
	return false
}
