package seniority

// penaltyTable prices under-qualification by (candidate level, job level).
// Entry and student candidates are close to disqualified from principal
// roles, while a one-level stretch costs little.
var penaltyTable = map[Level]map[Level]float64{
	LevelStudent: {LevelPrincipal: 50, LevelSenior: 40, LevelMid: 20},
	LevelIntern:  {LevelPrincipal: 50, LevelSenior: 40, LevelMid: 20},
	LevelEntry:   {LevelPrincipal: 45, LevelSenior: 30, LevelMid: 10},
	LevelMid:     {LevelPrincipal: 20, LevelSenior: 5},
	LevelSenior:  {LevelPrincipal: 5},
}

// Penalty returns the points to subtract from a match score for a seniority
// mismatch. Over-qualification never costs anything.
func Penalty(candidate, job Level) float64 {
	if JobRank(job) <= CandidateRank(candidate) {
		return 0
	}
	return penaltyTable[candidate][job]
}
