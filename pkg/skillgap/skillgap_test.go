package skillgap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func level(n int) *int { return &n }

func TestCalculatePriority(t *testing.T) {
	tests := []struct {
		name      string
		skill     string
		userLevel *int
		want      int
	}{
		{"missing ordinary skill", "erlang", nil, 3},
		{"missing high-demand skill", "python", nil, 5},
		{"weak ordinary skill at 1", "erlang", level(1), 3},
		{"weak ordinary skill at 2", "erlang", level(2), 2},
		{"weak high-demand skill at 2", "sql", level(2), 3},
		{"held at threshold", "erlang", level(3), 1},
		{"held above threshold", "erlang", level(5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculatePriority(tt.skill, tt.userLevel))
		})
	}
}

func TestComputeGapClassification(t *testing.T) {
	user := []UserSkill{
		{Name: "Python", Proficiency: 4},
		{Name: "SQL", Proficiency: 2},
	}
	rep := ComputeGap(user, []string{"python", "sql", "terraform"})

	require.Len(t, rep.Matched, 1)
	assert.Equal(t, "python", rep.Matched[0].Skill)
	assert.Equal(t, StatusMatched, rep.Matched[0].Status)
	// matched skills always score the minimum priority
	assert.Equal(t, 1, rep.Matched[0].Priority)

	require.Len(t, rep.Weak, 1)
	assert.Equal(t, "sql", rep.Weak[0].Skill)
	require.NotNil(t, rep.Weak[0].UserLevel)
	assert.Equal(t, 2, *rep.Weak[0].UserLevel)

	require.Len(t, rep.Missing, 1)
	assert.Equal(t, "terraform", rep.Missing[0].Skill)
	assert.Nil(t, rep.Missing[0].UserLevel)

	assert.Equal(t, 33, rep.MatchPercent)
}

func TestComputeGapPriorityOrder(t *testing.T) {
	rep := ComputeGap(nil, []string{"erlang", "python", "haskell"})

	require.Len(t, rep.PriorityList, 3)
	// python is high-demand and missing, so it outranks the others; ties
	// keep required-skill order.
	assert.Equal(t, "python", rep.PriorityList[0].Skill)
	assert.Equal(t, 5, rep.PriorityList[0].Priority)
	assert.Equal(t, "erlang", rep.PriorityList[1].Skill)
	assert.Equal(t, "haskell", rep.PriorityList[2].Skill)
}

func TestComputeGapNormalizesAndDedupes(t *testing.T) {
	user := []UserSkill{
		{Name: "React", Proficiency: 1},
		{Name: "react ", Proficiency: 4}, // strongest level wins
	}
	rep := ComputeGap(user, []string{"React", "REACT", "  "})

	require.Len(t, rep.Matched, 1)
	assert.Equal(t, "react", rep.Matched[0].Skill)
	assert.Equal(t, 4, *rep.Matched[0].UserLevel)
	assert.Empty(t, rep.Weak)
	assert.Empty(t, rep.Missing)
	assert.Equal(t, 100, rep.MatchPercent)
}

func TestComputeGapEmptyRequirements(t *testing.T) {
	rep := ComputeGap([]UserSkill{{Name: "go", Proficiency: 5}}, nil)
	assert.Empty(t, rep.PriorityList)
	assert.Equal(t, 0, rep.MatchPercent)
}

func TestResourcesFor(t *testing.T) {
	curated := ResourcesFor("go")
	require.NotEmpty(t, curated)
	assert.Equal(t, "A Tour of Go", curated[0].Title)

	fallback := ResourcesFor("cobol")
	require.Len(t, fallback, 2)
	assert.Equal(t, "Search courses for cobol", fallback[0].Title)
	assert.Contains(t, fallback[0].URL, "query=cobol")
	assert.Contains(t, fallback[1].URL, "tagged/cobol")
}
