package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/features"
	"github.com/jonathan/resume-scorer/internal/seniority"
	"github.com/jonathan/resume-scorer/internal/types"
)

func TestBulletTables_IdealBands(t *testing.T) {
	cases := []struct {
		level  seniority.Level
		count  int
		points float64
	}{
		{seniority.LevelEntry, 12, 24},
		{seniority.LevelEntry, 15, 24},
		{seniority.LevelEntry, 16, 20},
		{seniority.LevelEntry, 9, 16},
		{seniority.LevelEntry, 4, 4},
		{seniority.LevelEntry, 3, 0},
		{seniority.LevelMid, 22, 24},
		{seniority.LevelMid, 17, 16},
		{seniority.LevelMid, 7, 0},
		{seniority.LevelSenior, 30, 24},
		{seniority.LevelSenior, 25, 20},
		{seniority.LevelSenior, 13, 4},
		{seniority.LevelSenior, 11, 0},
	}
	for _, tc := range cases {
		got := bulletTables[tc.level].score(tc.count)
		assert.Equal(t, tc.points, got, "level=%s count=%d", tc.level, tc.count)
	}
}

func TestWorkExperienceScore_EntryProjectCompensation(t *testing.T) {
	// With no jobs, a strong project portfolio still earns most points.
	assert.Equal(t, 10.0, workExperienceScore(seniority.LevelEntry, 0, 5))
	assert.Equal(t, 6.0, workExperienceScore(seniority.LevelEntry, 0, 3))
	assert.Equal(t, 2.0, workExperienceScore(seniority.LevelEntry, 0, 0))

	// One job plus projects scales up.
	assert.Equal(t, 13.0, workExperienceScore(seniority.LevelEntry, 1, 5))
	assert.Equal(t, 9.0, workExperienceScore(seniority.LevelEntry, 1, 3))
	assert.Equal(t, 7.0, workExperienceScore(seniority.LevelEntry, 1, 0))

	assert.Equal(t, 15.0, workExperienceScore(seniority.LevelEntry, 3, 0))
}

func TestWorkExperienceScore_MidAndSenior(t *testing.T) {
	assert.Equal(t, 15.0, workExperienceScore(seniority.LevelMid, 4, 0))
	assert.Equal(t, 8.0, workExperienceScore(seniority.LevelMid, 2, 5))
	assert.Equal(t, 0.0, workExperienceScore(seniority.LevelMid, 0, 5))

	assert.Equal(t, 15.0, workExperienceScore(seniority.LevelSenior, 5, 0))
	assert.Equal(t, 7.0, workExperienceScore(seniority.LevelSenior, 3, 0))
	assert.Equal(t, 0.0, workExperienceScore(seniority.LevelSenior, 1, 0))
}

func TestEducationScore_LevelDependence(t *testing.T) {
	complete := []types.EducationEntry{{
		Degree:      "B.S",
		Field:       "Computer Science",
		Institution: "Stanford University",
	}}
	noInstitution := []types.EducationEntry{{Degree: "B.Tech", Field: "Computer Science"}}
	two := []types.EducationEntry{{Degree: "B.S"}, {Degree: "M.S"}}

	assert.Equal(t, 6.0, educationScore(seniority.LevelEntry, complete))
	assert.Equal(t, 2.0, educationScore(seniority.LevelEntry, noInstitution))
	assert.Equal(t, 0.0, educationScore(seniority.LevelEntry, nil))

	assert.Equal(t, 6.0, educationScore(seniority.LevelMid, two))
	assert.Equal(t, 5.0, educationScore(seniority.LevelMid, complete))
	assert.Equal(t, 2.5, educationScore(seniority.LevelMid, noInstitution))

	assert.Equal(t, 5.0, educationScore(seniority.LevelSenior, two))
	assert.Equal(t, 4.0, educationScore(seniority.LevelSenior, complete))
}

func TestThresholdBands(t *testing.T) {
	assert.Equal(t, 5.0, thresholdPoints(sectionBands, 6))
	assert.Equal(t, 1.5, thresholdPoints(sectionBands, 3))
	assert.Equal(t, 0.0, thresholdPoints(sectionBands, 2))

	assert.Equal(t, 6.0, thresholdPoints(verbBands, 15))
	assert.Equal(t, 1.0, thresholdPoints(verbBands, 4))
	assert.Equal(t, 0.0, thresholdPoints(verbBands, 3))

	assert.Equal(t, 5.0, thresholdPoints(skillBands, 30))
	assert.Equal(t, 0.0, thresholdPoints(skillBands, 5))
}

func TestQuantificationScore_RatioSteps(t *testing.T) {
	mk := func(total, quantified int) *features.Record {
		return &features.Record{
			Bullets:           make([]string, total),
			QuantifiedBullets: quantified,
		}
	}

	assert.Equal(t, 7.0, quantificationScore(mk(10, 5)))
	assert.Equal(t, 6.0, quantificationScore(mk(10, 4)))
	assert.Equal(t, 4.0, quantificationScore(mk(10, 2)))
	assert.Equal(t, 1.0, quantificationScore(mk(20, 1)))
	assert.Equal(t, 0.0, quantificationScore(mk(25, 1)))
}

func TestQuantificationScore_NumberFallback(t *testing.T) {
	rec := &features.Record{Numbers: make([]string, 10)}

	// No bullets at all, so the raw number count decides.
	assert.Equal(t, 4.0, quantificationScore(rec))
}

func TestContentDensityBands(t *testing.T) {
	assert.Equal(t, 4.0, rangePoints(densityBands, 700))
	assert.Equal(t, 3.0, rangePoints(densityBands, 550))
	assert.Equal(t, 2.0, rangePoints(densityBands, 950))
	assert.Equal(t, 1.0, rangePoints(densityBands, 1100))
	assert.Equal(t, 0.0, rangePoints(densityBands, 150))
	assert.Equal(t, 0.0, rangePoints(densityBands, 1500))
}

func TestRuleOnlyScore_Saturation(t *testing.T) {
	rec := &features.Record{
		HasContact:  true,
		Email:       "a@b.c",
		Phone:       "555",
		WordCount:   700,
		Sections:    []string{"experience", "education", "skills", "summary", "projects", "certifications"},
		ActionVerbs: make([]string, 20),
		Numbers:     make([]string, 15),
		Skills:      make([]string, 30),
	}

	score := ruleOnlyScore(rec)

	// 8 contact + 12 sections + 15 verbs + 18 metrics + 17 words + 30 bonus.
	assert.Equal(t, 100.0, score)
}

func TestRuleOnlyScore_SparseResume(t *testing.T) {
	rec := &features.Record{WordCount: 100}

	score := ruleOnlyScore(rec)

	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 10.0)
}
