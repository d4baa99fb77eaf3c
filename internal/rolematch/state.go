package rolematch

import "strings"

// Skill is a selectable search filter.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// QueryState is the immutable search state: the raw query, the selected skill
// filters (unique by ID, insertion order preserved) and the corrected query
// when fuzzy matching substituted a canonical role.
type QueryState struct {
	RawQuery       string  `json:"rawQuery"`
	SelectedSkills []Skill `json:"selectedSkills"`
	CorrectedQuery string  `json:"correctedQuery,omitempty"`
}

// WithQuery returns a new state for the given raw query. CorrectedQuery is set
// only when the matcher accepts an alias and the canonical role differs from
// the lowercased raw query.
func (s QueryState) WithQuery(raw string) QueryState {
	next := s
	next.RawQuery = raw
	next.CorrectedQuery = ""
	if role, ok := Match(raw); ok && role != strings.ToLower(strings.TrimSpace(raw)) {
		next.CorrectedQuery = role
	}
	return next
}

// EffectiveQuery returns the corrected query when present, else the raw query.
func (s QueryState) EffectiveQuery() string {
	if s.CorrectedQuery != "" {
		return s.CorrectedQuery
	}
	return s.RawQuery
}

// AddSkill returns a new state with the skill appended, keeping IDs unique and
// preserving insertion order.
func (s QueryState) AddSkill(skill Skill) QueryState {
	for _, existing := range s.SelectedSkills {
		if existing.ID == skill.ID {
			return s
		}
	}
	next := s
	next.SelectedSkills = make([]Skill, 0, len(s.SelectedSkills)+1)
	next.SelectedSkills = append(next.SelectedSkills, s.SelectedSkills...)
	next.SelectedSkills = append(next.SelectedSkills, skill)
	return next
}

// RemoveSkill returns a new state without the skill of the given ID.
func (s QueryState) RemoveSkill(id string) QueryState {
	next := s
	next.SelectedSkills = make([]Skill, 0, len(s.SelectedSkills))
	for _, existing := range s.SelectedSkills {
		if existing.ID != id {
			next.SelectedSkills = append(next.SelectedSkills, existing)
		}
	}
	return next
}
