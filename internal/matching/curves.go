package matching

import "strings"

// A posting below this word count is scored as a snippet.
const snippetWordLimit = 100

// ATS bonus caps. Snippets get a smaller bonus since matching against a
// truncated description is already noisy.
const (
	snippetATSCap = 10.0
	fullATSCap    = 15.0
)

// curveSegment maps similarities at or above floor onto base plus a linear
// ramp. Segments are ordered highest floor first; evaluation takes the first
// segment whose floor the similarity clears.
type curveSegment struct {
	floor float64
	base  float64
	slope float64
}

type scoreCurve []curveSegment

// snippetCurve sits higher than fullCurve across its whole range. Short
// aggregator snippets drop most of the context an embedding could align
// with, so the same cosine similarity means a stronger match.
var snippetCurve = scoreCurve{
	{floor: 0.6, base: 75, slope: 62.5},
	{floor: 0.4, base: 60, slope: 75},
	{floor: 0.25, base: 45, slope: 100},
	{floor: 0, base: 0, slope: 180},
}

var fullCurve = scoreCurve{
	{floor: 0.7, base: 70, slope: 50},
	{floor: 0.5, base: 55, slope: 75},
	{floor: 0.3, base: 35, slope: 100},
	{floor: 0, base: 0, slope: 116.7},
}

func curveFor(snippet bool) scoreCurve {
	if snippet {
		return snippetCurve
	}
	return fullCurve
}

func atsCap(snippet bool) float64 {
	if snippet {
		return snippetATSCap
	}
	return fullATSCap
}

// at evaluates the curve. Similarities below every floor (a negative cosine)
// extend the bottom segment, which keeps the output monotone.
func (c scoreCurve) at(sim float64) float64 {
	for _, seg := range c {
		if sim >= seg.floor {
			return seg.base + (sim-seg.floor)*seg.slope
		}
	}
	last := c[len(c)-1]
	return last.base + (sim-last.floor)*last.slope
}

func isSnippet(jobText string) bool {
	return len(strings.Fields(jobText)) < snippetWordLimit
}
