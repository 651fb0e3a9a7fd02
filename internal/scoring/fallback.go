package scoring

import "github.com/jonathan/resume-scorer/internal/features"

// ruleOnlyScore replaces the hybrid path when no embedding backend exists.
// The 20 semantic points are redistributed into a content quality bonus
// built from section coverage, verb and metric co-occurrence, and skill
// count, keeping the overall 100-point budget.
func ruleOnlyScore(rec *features.Record) float64 {
	score := 0.0

	// Contact info, 8 points.
	switch {
	case rec.HasContact:
		score += 8
	case rec.Email != "" || rec.Phone != "":
		score += 4
	}

	// Sections, 12 points.
	sectionCount := len(rec.Sections)
	switch {
	case sectionCount >= 5:
		score += 12
	case sectionCount >= 4:
		score += 8
	case sectionCount >= 3:
		score += 5
	default:
		score += float64(sectionCount) / 6 * 12
	}

	// Action verbs, 15 points, saturating at 12 verbs.
	verbScore := float64(len(rec.ActionVerbs)) / 12 * 15
	if verbScore > 15 {
		verbScore = 15
	}
	score += verbScore

	// Quantifiable metrics, 18 points, saturating at 10 numbers.
	metricScore := float64(len(rec.Numbers)) / 10 * 18
	if metricScore > 18 {
		metricScore = 18
	}
	score += metricScore

	// Word count, 17 points.
	score += fallbackWordScore(rec.WordCount)

	// Content quality bonus, 30 points.
	score += qualityBonus(rec)

	return clamp(score, 0, 100)
}

func fallbackWordScore(wordCount int) float64 {
	switch {
	case wordCount >= 500 && wordCount <= 800:
		return 17
	case wordCount >= 450 && wordCount < 500:
		return 14
	case wordCount >= 400 && wordCount < 450:
		return 11
	case wordCount >= 350 && wordCount < 400:
		return 7
	case wordCount >= 300 && wordCount < 350:
		return 4
	case wordCount < 300:
		return 2
	case wordCount > 800 && wordCount <= 1000:
		return 14
	case wordCount > 1000 && wordCount <= 1200:
		return 10
	default:
		return 6
	}
}

func qualityBonus(rec *features.Record) float64 {
	bonus := 0.0

	sectionCount := len(rec.Sections)
	switch {
	case sectionCount >= 6:
		bonus += 12
	case sectionCount >= 5:
		bonus += 9
	case sectionCount >= 4:
		bonus += 6
	case sectionCount >= 3:
		bonus += 3
	}

	verbCount := len(rec.ActionVerbs)
	numberCount := len(rec.Numbers)
	switch {
	case verbCount >= 15 && numberCount >= 12:
		bonus += 12
	case verbCount >= 10 && numberCount >= 8:
		bonus += 9
	case verbCount >= 6 && numberCount >= 5:
		bonus += 6
	case verbCount >= 4 && numberCount >= 3:
		bonus += 3
	}

	skillCount := len(rec.Skills)
	switch {
	case skillCount >= 25:
		bonus += 6
	case skillCount >= 15:
		bonus += 4
	case skillCount >= 10:
		bonus += 2
	}

	return bonus
}
