package scoring

import (
	"context"
	"sort"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/features"
	"github.com/jonathan/resume-scorer/internal/seniority"
)

// idealCharacteristics describe what ATS systems reward. The semantic score
// is the resume's average similarity to its three closest characteristics.
var idealCharacteristics = []string{
	"professional summary with clear career objectives and key achievements",
	"detailed work experience with quantifiable accomplishments and impact metrics",
	"comprehensive technical skills and competencies relevant to the role",
	"educational background with degrees certifications and relevant coursework",
	"strong action verbs describing responsibilities and achievements",
	"contact information including email phone and location",
	"clean formatting with clear section headers and bullet points",
}

func (s *Scorer) semanticScore(ctx context.Context, text string) (float64, error) {
	resumeVec, err := s.enc.Encode(ctx, text)
	if err != nil {
		return 0, err
	}
	idealVecs, err := s.enc.EncodeBatch(ctx, idealCharacteristics)
	if err != nil {
		return 0, err
	}

	sims := make([]float64, 0, len(idealVecs))
	for _, v := range idealVecs {
		sims = append(sims, embedding.CosineSimilarity(resumeVec, v))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sims)))

	top := min(3, len(sims))
	if top == 0 {
		return 0, nil
	}
	sum := 0.0
	for _, sim := range sims[:top] {
		sum += sim
	}
	return sum / float64(top) * mlMaxPoints, nil
}

// hybridBreakdown combines the semantic score with every rule category and
// returns the per-category map keyed the way API clients expect.
func hybridBreakdown(rec *features.Record, level seniority.Level, mlScore float64) map[string]float64 {
	breakdown := map[string]float64{"ml_semantic_score": round1(mlScore)}

	ruleScore := 0.0
	add := func(key string, points float64) {
		breakdown[key] = round1(points)
		ruleScore += points
	}

	add("contact_info_score", contactScore(rec))
	add("professional_identity_score", identityScore(rec))
	add("sections_score", thresholdPoints(sectionBands, len(rec.Sections)))
	add("education_score", educationScore(level, rec.Education))
	add("work_experience_score", workExperienceScore(level, len(rec.WorkExperience), len(rec.Projects)))
	add("projects_score", projectsScore(level, len(rec.Projects)))
	add("action_verbs_score", thresholdPoints(verbBands, len(rec.ActionVerbs)))
	add("skills_score", thresholdPoints(skillBands, len(rec.Skills)))
	add("quantification_score", quantificationScore(rec))
	add("content_density_score", rangePoints(densityBands, rec.WordCount))
	add("bullet_points_score", bulletTables[level].score(len(rec.Bullets)))

	breakdown["rule_based_score"] = round1(ruleScore)
	breakdown["total_score"] = round1(clamp(mlScore+ruleScore, 0, 100))
	return breakdown
}
