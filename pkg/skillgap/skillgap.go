package skillgap

import (
	"math"
	"sort"

	"github.com/jobpilot/ats/pkg/nlp"
)

// SkillStatus classifies one required skill against the user's skill set.
type SkillStatus string

const (
	StatusMatched SkillStatus = "matched" // user holds it at proficiency >= 3
	StatusWeak    SkillStatus = "weak"    // user holds it below proficiency 3
	StatusMissing SkillStatus = "missing" // user does not hold it
)

// UserSkill is the slice of the profile the scorer needs.
type UserSkill struct {
	Name        string
	Proficiency int
}

// Item is the derived record for one required skill.
type Item struct {
	Skill     string      `json:"skill"`
	Status    SkillStatus `json:"status"`
	UserLevel *int        `json:"userLevel,omitempty"`
	Priority  int         `json:"priority"`
	Resources []Resource  `json:"resources"`
}

// Report is the full skill-gap result for one job.
type Report struct {
	Matched      []Item `json:"matched"`
	Weak         []Item `json:"weak"`
	Missing      []Item `json:"missing"`
	PriorityList []Item `json:"priorityList"`
	MatchPercent int    `json:"matchPercent"`
}

// highDemandSkills contribute extra priority weight. Fixed list, normalized.
var highDemandSkills = map[string]struct{}{
	"python":     {},
	"javascript": {},
	"sql":        {},
	"react":      {},
	"aws":        {},
}

// weakThreshold is the proficiency below which a held skill counts as weak.
const weakThreshold = 3

// CalculatePriority scores a required skill 1..5. The inputs are a gap
// component (nil level contributes the maximum of 3), a demand component
// (2 for high-demand skills) and a constant importance component of 1 per
// required skill; no per-job importance source exists in the schema. The
// 0..7 total is rescaled onto 1..5.
func CalculatePriority(skill string, userLevel *int) int {
	gap := 3
	if userLevel != nil {
		gap = 3 - *userLevel
		if gap < 0 {
			gap = 0
		}
	}
	demand := 0
	if _, ok := highDemandSkills[nlp.NormalizeSkill(skill)]; ok {
		demand = 2
	}
	const importance = 1
	total := gap + demand + importance
	score := int(math.Ceil(float64(total) / 7 * 5))
	if score > 5 {
		score = 5
	}
	return score
}

// ComputeGap classifies every required skill against the user's skills.
// Names on both sides are normalized before comparison; matching is exact
// string equality on normalized names, no fuzzy matching. The priority list
// contains every required skill sorted by priority descending, ties keeping
// their original order.
func ComputeGap(userSkills []UserSkill, requiredSkills []string) Report {
	levels := make(map[string]int, len(userSkills))
	for _, us := range userSkills {
		name := nlp.NormalizeSkill(us.Name)
		if name == "" {
			continue
		}
		// Keep the strongest level if a skill appears twice.
		if cur, ok := levels[name]; !ok || us.Proficiency > cur {
			levels[name] = us.Proficiency
		}
	}

	var rep Report
	seen := map[string]struct{}{}
	for _, raw := range requiredSkills {
		name := nlp.NormalizeSkill(raw)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		item := Item{Skill: name, Resources: ResourcesFor(name)}
		if level, ok := levels[name]; ok {
			l := level
			item.UserLevel = &l
			if level < weakThreshold {
				item.Status = StatusWeak
				item.Priority = CalculatePriority(name, item.UserLevel)
				rep.Weak = append(rep.Weak, item)
			} else {
				item.Status = StatusMatched
				// Matched skills bypass the formula entirely.
				item.Priority = 1
				rep.Matched = append(rep.Matched, item)
			}
		} else {
			item.Status = StatusMissing
			item.Priority = CalculatePriority(name, nil)
			rep.Missing = append(rep.Missing, item)
		}
		rep.PriorityList = append(rep.PriorityList, item)
	}

	sort.SliceStable(rep.PriorityList, func(i, j int) bool {
		return rep.PriorityList[i].Priority > rep.PriorityList[j].Priority
	})

	total := len(rep.Matched) + len(rep.Weak) + len(rep.Missing)
	if total > 0 {
		rep.MatchPercent = len(rep.Matched) * 100 / total
	}
	return rep
}
