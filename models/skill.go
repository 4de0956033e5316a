package models

// SkillKind distinguishes the two granularities a jovem skill may carry.
type SkillKind string

const (
	SkillService  SkillKind = "service"
	SkillCategory SkillKind = "category"
)

// Skill is a tagged union: either an exact service id or a service category.
// Legacy profiles stored both forms in a single string list; they are resolved
// into tagged values once at the boundary so matching never special-cases.
type Skill struct {
	Kind  SkillKind `bson:"kind" json:"kind"`
	Value string    `bson:"value" json:"value"`
}

// Matches reports whether the skill covers the given service.
func (s Skill) Matches(serviceID, category string) bool {
	switch s.Kind {
	case SkillService:
		return s.Value == serviceID
	case SkillCategory:
		return s.Value == category
	default:
		return false
	}
}

// SkillSet is a jovem's resolved skill list.
type SkillSet []Skill

// Allows reports whether any skill in the set covers the given service.
func (ss SkillSet) Allows(serviceID, category string) bool {
	for _, s := range ss {
		if s.Matches(serviceID, category) {
			return true
		}
	}
	return false
}

// NormalizeSkills resolves a legacy flat skill list into tagged skills.
// Entries matching a known category become category skills; everything else
// is treated as a service id.
func NormalizeSkills(raw []string, knownCategories map[string]bool) SkillSet {
	out := make(SkillSet, 0, len(raw))
	for _, v := range raw {
		if v == "" {
			continue
		}
		if knownCategories[v] {
			out = append(out, Skill{Kind: SkillCategory, Value: v})
		} else {
			out = append(out, Skill{Kind: SkillService, Value: v})
		}
	}
	return out
}
