package scoring

import (
	"github.com/jonathan/resume-scorer/internal/features"
	"github.com/jonathan/resume-scorer/internal/seniority"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Category maxima for the 80 rule points of the hybrid score.
const (
	mlMaxPoints             = 20.0
	contactMaxPoints        = 3.0
	identityMaxPoints       = 2.0
	sectionsMaxPoints       = 5.0
	educationMaxPoints      = 6.0
	workMaxPoints           = 15.0
	projectsMaxPoints       = 8.0
	verbsMaxPoints          = 6.0
	skillsMaxPoints         = 5.0
	quantificationMaxPoints = 7.0
	densityMaxPoints        = 4.0
	bulletsMaxPoints        = 24.0
)

// thresholdBand awards points when a count reaches min. Bands are checked
// in order, so they must be sorted by descending min.
type thresholdBand struct {
	min    int
	points float64
}

// rangeBand awards points when a value falls in [lo, hi]. Overlapping bands
// are checked in order, tightest first.
type rangeBand struct {
	lo, hi int
	points float64
}

type ratioBand struct {
	min    float64
	points float64
}

var (
	sectionBands = []thresholdBand{{6, 5}, {5, 4}, {4, 3}, {3, 1.5}}
	verbBands    = []thresholdBand{{15, 6}, {12, 5}, {10, 4}, {8, 3}, {6, 2}, {4, 1}}
	skillBands   = []thresholdBand{{25, 5}, {20, 4}, {15, 3}, {10, 2}, {6, 1}}

	quantRatioBands = []ratioBand{
		{0.5, 7}, {0.4, 6}, {0.3, 5}, {0.2, 4}, {0.15, 3}, {0.10, 2}, {0.05, 1},
	}
	// Number-count fallback when a resume has no bullets at all.
	quantNumberBands = []thresholdBand{{10, 4}, {7, 3}, {5, 2}, {3, 1}}

	densityBands = []rangeBand{
		{600, 800, 4}, {500, 900, 3}, {400, 1000, 2}, {300, 1200, 1},
	}
)

// bulletTable scores the bullet count for one experience level: an ideal
// band earns the maximum, widening outer bands step down, and anything at
// or above weakFloor still earns the weak score.
type bulletTable struct {
	bands      []rangeBand
	weakFloor  int
	weakPoints float64
}

func (t bulletTable) score(n int) float64 {
	for _, b := range t.bands {
		if n >= b.lo && n <= b.hi {
			return b.points
		}
	}
	if n >= t.weakFloor {
		return t.weakPoints
	}
	return 0
}

// bulletTables shift the ideal bullet range with the declared level: an
// entry resume peaks at 12-15 bullets, a senior one at 28-35.
var bulletTables = map[seniority.Level]bulletTable{
	seniority.LevelEntry: {
		bands:      []rangeBand{{12, 15, 24}, {10, 17, 20}, {8, 19, 16}, {6, 21, 12}, {5, 23, 8}},
		weakFloor:  4,
		weakPoints: 4,
	},
	seniority.LevelMid: {
		bands:      []rangeBand{{20, 25, 24}, {18, 28, 20}, {15, 30, 16}, {12, 32, 12}, {10, 35, 8}},
		weakFloor:  8,
		weakPoints: 4,
	},
	seniority.LevelSenior: {
		bands:      []rangeBand{{28, 35, 24}, {25, 38, 20}, {20, 40, 16}, {18, 42, 12}, {15, 45, 8}},
		weakFloor:  12,
		weakPoints: 4,
	},
}

var projectBands = map[seniority.Level][]thresholdBand{
	seniority.LevelEntry:  {{5, 8}, {4, 7}, {3, 5}, {2, 3}, {1, 1}},
	seniority.LevelMid:    {{4, 8}, {3, 6}, {2, 4}, {1, 2}},
	seniority.LevelSenior: {{3, 7}, {2, 5}, {1, 3}},
}

func thresholdPoints(bands []thresholdBand, n int) float64 {
	for _, b := range bands {
		if n >= b.min {
			return b.points
		}
	}
	return 0
}

func rangePoints(bands []rangeBand, n int) float64 {
	for _, b := range bands {
		if n >= b.lo && n <= b.hi {
			return b.points
		}
	}
	return 0
}

func contactScore(rec *features.Record) float64 {
	if rec.HasContact {
		return contactMaxPoints
	}
	if rec.Email != "" || rec.Phone != "" {
		return contactMaxPoints / 2
	}
	return 0
}

func identityScore(rec *features.Record) float64 {
	score := 0.0
	if rec.Name != "" {
		score++
	}
	if rec.LinkedIn != "" || rec.GitHub != "" {
		score++
	}
	return score
}

// educationScore weighs completeness differently per level: entry resumes
// are judged on the detail of their single entry, mid and senior on how
// many degrees they list.
func educationScore(level seniority.Level, entries []types.EducationEntry) float64 {
	n := len(entries)
	switch level {
	case seniority.LevelEntry:
		if n == 0 {
			return 0
		}
		e := entries[0]
		switch {
		case e.Institution != "" && e.Degree != "" && e.Field != "":
			return 6
		case e.Institution != "" && e.Degree != "":
			return 4
		default:
			return 2
		}
	case seniority.LevelMid:
		switch {
		case n >= 2:
			return 6
		case n == 1:
			e := entries[0]
			if e.Institution != "" && e.Degree != "" {
				return 5
			}
			return 2.5
		}
		return 0
	default:
		switch {
		case n >= 2:
			return 5
		case n >= 1:
			return 4
		}
		return 0
	}
}

// workExperienceScore is the heaviest non-bullet category. For entry-level
// resumes a strong project portfolio substitutes for missing roles; mid and
// senior levels demand an actual track record.
func workExperienceScore(level seniority.Level, workCount, projectCount int) float64 {
	switch level {
	case seniority.LevelEntry:
		switch {
		case workCount >= 3:
			return 15
		case workCount == 2:
			return 13
		case workCount == 1:
			switch {
			case projectCount >= 5:
				return 13
			case projectCount >= 4:
				return 11
			case projectCount >= 3:
				return 9
			default:
				return 7
			}
		case projectCount >= 5:
			return 10
		case projectCount >= 4:
			return 8
		case projectCount >= 3:
			return 6
		default:
			return 2
		}
	case seniority.LevelMid:
		switch {
		case workCount >= 4:
			return 15
		case workCount == 3:
			return 13
		case workCount == 2:
			return 8
		case workCount == 1:
			return 3
		default:
			return 0
		}
	default:
		switch {
		case workCount >= 5:
			return 15
		case workCount >= 4:
			return 12
		case workCount == 3:
			return 7
		case workCount == 2:
			return 2
		default:
			return 0
		}
	}
}

func projectsScore(level seniority.Level, projectCount int) float64 {
	return thresholdPoints(projectBands[level], projectCount)
}

func quantificationScore(rec *features.Record) float64 {
	if len(rec.Bullets) > 0 {
		ratio := float64(rec.QuantifiedBullets) / float64(len(rec.Bullets))
		for _, b := range quantRatioBands {
			if ratio >= b.min {
				return b.points
			}
		}
		return 0
	}
	return thresholdPoints(quantNumberBands, len(rec.Numbers))
}
