package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/features"
	"github.com/jonathan/resume-scorer/internal/seniority"
	"github.com/jonathan/resume-scorer/internal/types"
)

func TestGenerateInsights_LevelLabel(t *testing.T) {
	rec := &features.Record{WordCount: 500}

	insights := generateInsights(rec, 82, seniority.LevelMid)

	assert.Equal(t, "Excellent Mid-Level resume optimization for ATS systems", insights[0])
}

func TestGenerateInsights_Deterministic(t *testing.T) {
	rec := &features.Record{
		HasContact:  true,
		LinkedIn:    "johndoe",
		WordCount:   650,
		Sections:    []string{"experience", "education", "skills"},
		ActionVerbs: []string{"built", "led", "improved", "designed", "created"},
		Numbers:     []string{"1", "2", "3"},
		Skills:      []string{"go", "sql", "aws", "docker", "redis"},
	}

	first := generateInsights(rec, 65, seniority.LevelEntry)
	second := generateInsights(rec, 65, seniority.LevelEntry)

	assert.Equal(t, first, second)
}

func TestGenerateRecommendations_MissingBasics(t *testing.T) {
	rec := &features.Record{WordCount: 150}

	recs := generateRecommendations(rec, 30, seniority.LevelEntry)

	assert.Contains(t, recs, "📛 Add your full name at the top of your resume")
	assert.Contains(t, recs, "🔗 Add LinkedIn profile (essential) or GitHub (if technical)")
	assert.Contains(t, recs, "⚠️ Add your email address at the top of your resume")
	assert.Contains(t, recs, "⚠️ Add your phone number for easy contact")
	assert.Contains(t, recs, "🎓 Add an Education section with your degree, institution, and graduation year")
}

func TestGenerateRecommendations_RepetitiveVerbs(t *testing.T) {
	rec := &features.Record{
		Bullets:         make([]string, 14),
		ActionVerbs:     []string{"led", "built"},
		RepetitiveVerbs: map[string]int{"led": 4},
		WordCount:       600,
	}

	recs := generateRecommendations(rec, 60, seniority.LevelEntry)

	assert.Contains(t, recs, "🔄 Replace repetitive 'Led' verb (used 4 times) - use it max 2 times")
}

func TestGenerateRecommendations_BulletHintFallback(t *testing.T) {
	// Every other bullet-related recommendation is satisfied, so only the
	// generic formatting hint should mention bullets.
	rec := &features.Record{
		Name:              "Jane Smith",
		Email:             "jane@example.com",
		Phone:             "555-123-4567",
		HasContact:        true,
		LinkedIn:          "janesmith",
		WordCount:         700,
		Bullets:           make([]string, 13),
		QuantifiedBullets: 10,
		Sections:          []string{"experience", "education", "skills", "summary"},
		ActionVerbs:       make([]string, 12),
		Skills:            make([]string, 9),
		Education: []types.EducationEntry{{
			Degree:      "B.S",
			Field:       "Computer Science",
			Institution: "MIT",
		}},
		WorkExperience: []types.WorkEntry{
			{Organization: "Acme", Role: "Engineer"},
			{Organization: "Beta", Role: "Engineer"},
		},
		Projects: []types.ProjectEntry{{Name: "One"}, {Name: "Two"}, {Name: "Three"}},
	}

	recs := generateRecommendations(rec, 75, seniority.LevelEntry)

	assert.Contains(t, recs, "✨ Use bullet points to make your resume easier to scan by ATS systems")
	for _, r := range recs {
		if r == "✨ Use bullet points to make your resume easier to scan by ATS systems" {
			continue
		}
		assert.NotContains(t, r, "bullet")
	}
}
