package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/features"
	"github.com/jonathan/resume-scorer/internal/seniority"
)

var levelLabels = map[seniority.Level]string{
	seniority.LevelEntry:  "Entry-Level",
	seniority.LevelMid:    "Mid-Level",
	seniority.LevelSenior: "Senior-Level",
}

// generateInsights lists what the resume already does well. The opening
// line is always present and graded by score; everything after is gated on
// the feature that earned it.
func generateInsights(rec *features.Record, score float64, level seniority.Level) []string {
	var insights []string
	label := levelLabels[level]

	switch {
	case score >= 80:
		insights = append(insights, fmt.Sprintf("Excellent %s resume optimization for ATS systems", label))
	case score >= 70:
		insights = append(insights, fmt.Sprintf("Very good %s resume structure with strong ATS compatibility", label))
	case score >= 60:
		insights = append(insights, fmt.Sprintf("Good %s resume structure with room for enhancement", label))
	case score >= 50:
		insights = append(insights, fmt.Sprintf("Decent %s resume foundation - follow recommendations to improve", label))
	default:
		insights = append(insights, fmt.Sprintf("%s resume needs improvement - focus on the recommendations below", label))
	}

	if rec.HasContact {
		insights = append(insights, "Complete contact information present")
	}

	switch {
	case rec.LinkedIn != "" && rec.GitHub != "":
		insights = append(insights, "Strong professional presence with LinkedIn and GitHub profiles")
	case rec.LinkedIn != "" || rec.GitHub != "":
		insights = append(insights, "Professional profile link included")
	}

	educationCount := len(rec.Education)
	switch {
	case educationCount >= 2:
		insights = append(insights, fmt.Sprintf("Multiple degrees listed (%d found)", educationCount))
	case educationCount == 1:
		insights = append(insights, "Educational background included")
	}

	workCount := len(rec.WorkExperience)
	switch {
	case workCount >= 3:
		insights = append(insights, fmt.Sprintf("Rich work history with %d experiences", workCount))
	case workCount >= 2:
		insights = append(insights, fmt.Sprintf("Good work history with %d experiences", workCount))
	case workCount == 1:
		insights = append(insights, "Work experience included")
	}

	projectCount := len(rec.Projects)
	switch {
	case projectCount >= 3:
		insights = append(insights, fmt.Sprintf("Strong project portfolio with %d projects", projectCount))
	case projectCount >= 2:
		insights = append(insights, fmt.Sprintf("Good project showcase with %d projects", projectCount))
	case projectCount == 1:
		insights = append(insights, "Project work demonstrated")
	}

	sectionCount := len(rec.Sections)
	switch {
	case sectionCount >= 5:
		insights = append(insights, fmt.Sprintf("Well-structured with %d key sections", sectionCount))
	case sectionCount >= 3:
		insights = append(insights, fmt.Sprintf("Good structure with %d sections present", sectionCount))
	}

	verbCount := len(rec.ActionVerbs)
	switch {
	case verbCount >= 10:
		insights = append(insights, fmt.Sprintf("Excellent use of action verbs (%d found)", verbCount))
	case verbCount >= 5:
		insights = append(insights, fmt.Sprintf("Good use of action verbs (%d found)", verbCount))
	}

	numberCount := len(rec.Numbers)
	switch {
	case numberCount >= 5:
		insights = append(insights, fmt.Sprintf("Strong quantification of achievements (%d metrics)", numberCount))
	case numberCount >= 3:
		insights = append(insights, fmt.Sprintf("Good quantification of achievements (%d metrics)", numberCount))
	}

	skillCount := len(rec.Skills)
	switch {
	case skillCount >= 10:
		insights = append(insights, fmt.Sprintf("Comprehensive skill set (%d skills identified)", skillCount))
	case skillCount >= 5:
		insights = append(insights, fmt.Sprintf("Diverse skill set (%d skills identified)", skillCount))
	}

	switch {
	case rec.WordCount >= 400 && rec.WordCount <= 900:
		insights = append(insights, "Optimal resume length for ATS systems")
	case rec.WordCount >= 300 && rec.WordCount < 400:
		insights = append(insights, "Acceptable resume length but could be more detailed")
	}

	return insights
}

// generateRecommendations names each deficiency with a concrete fix. The
// expectations scale with the target level, e.g. a senior resume with two
// jobs draws a sharper warning than an entry one with none.
func generateRecommendations(rec *features.Record, score float64, level seniority.Level) []string {
	var recs []string

	workCount := len(rec.WorkExperience)
	projectCount := len(rec.Projects)
	educationCount := len(rec.Education)
	totalBullets := len(rec.Bullets)

	if rec.Name == "" {
		recs = append(recs, "📛 Add your full name at the top of your resume")
	}

	if rec.LinkedIn == "" && rec.GitHub == "" {
		if level == seniority.LevelEntry {
			recs = append(recs, "🔗 Add LinkedIn profile (essential) or GitHub (if technical)")
		} else {
			recs = append(recs, "🔗 Add LinkedIn and GitHub profiles to strengthen professional presence")
		}
	}

	if !rec.HasContact {
		if rec.Email == "" {
			recs = append(recs, "⚠️ Add your email address at the top of your resume")
		}
		if rec.Phone == "" {
			recs = append(recs, "⚠️ Add your phone number for easy contact")
		}
	}

	switch {
	case educationCount == 0:
		recs = append(recs, "🎓 Add an Education section with your degree, institution, and graduation year")
	case educationCount == 1:
		edu := rec.Education[0]
		if edu.Institution == "" {
			recs = append(recs, "🎓 Include the name of your educational institution")
		}
		if edu.Degree == "" {
			recs = append(recs, "🎓 Specify your degree/major in the Education section")
			if level == seniority.LevelSenior {
				recs = append(recs, "🎓 Consider adding advanced degrees or certifications if applicable")
			}
		}
	}

	switch level {
	case seniority.LevelEntry:
		if workCount == 0 && projectCount < 3 {
			recs = append(recs, "💼 Add internships, volunteer work, or part-time jobs to demonstrate experience")
			recs = append(recs, "🚀 Include 3-4 substantial projects to compensate for limited work experience")
		} else if workCount == 1 {
			recs = append(recs, "💼 Add more internships or part-time experiences if available")
		}
	case seniority.LevelMid:
		switch workCount {
		case 0:
			recs = append(recs, "⚠️ CRITICAL: Mid-level positions require 2-3 years work experience - add all relevant roles")
		case 1:
			recs = append(recs, "💼 Add more work experiences - mid-level roles typically require 2-3 positions")
		case 2:
			recs = append(recs, "💼 Consider adding additional relevant experiences to strengthen your profile")
		}
	default:
		if workCount < 3 {
			recs = append(recs, "⚠️ CRITICAL: Senior positions require 3+ work experiences showing career progression")
		} else if workCount == 3 {
			recs = append(recs, "💼 Consider adding more experiences to demonstrate extensive background (4+ is ideal)")
		}
	}

	switch level {
	case seniority.LevelEntry:
		switch projectCount {
		case 0:
			recs = append(recs, "🚀 CRITICAL: Add 3-4 projects to demonstrate your skills (essential for entry-level)")
		case 1:
			recs = append(recs, "🚀 Add more projects (aim for 3-4) - crucial for entry-level candidates")
		case 2:
			recs = append(recs, "🚀 Add 1-2 more projects to strengthen your portfolio")
		}
	case seniority.LevelMid:
		if projectCount == 0 && workCount < 3 {
			recs = append(recs, "🚀 Add 2-3 projects to demonstrate continued skill development")
		} else if projectCount == 1 {
			recs = append(recs, "🚀 Add more projects to showcase diverse skills and initiative")
		}
	default:
		if projectCount == 0 {
			recs = append(recs, "🚀 Consider adding 1-2 notable projects or technical leadership examples")
		}
	}

	switch level {
	case seniority.LevelEntry:
		if totalBullets < 10 {
			recs = append(recs, fmt.Sprintf("📝 Add more bullet points (currently %d, aim for 12-20 for entry-level)", totalBullets))
		} else if totalBullets < 12 {
			recs = append(recs, fmt.Sprintf("📝 Add a few more details (currently %d, aim for 15-20)", totalBullets))
		}
	case seniority.LevelMid:
		if totalBullets < 20 {
			recs = append(recs, fmt.Sprintf("📝 Add more accomplishment bullets (currently %d, aim for 20-30 for mid-level)", totalBullets))
		} else if totalBullets < 25 {
			recs = append(recs, fmt.Sprintf("📝 Expand your accomplishments (currently %d, aim for 25-30)", totalBullets))
		}
	default:
		if totalBullets < 30 {
			recs = append(recs, fmt.Sprintf("📝 Add more detailed accomplishments (currently %d, aim for 30-35+ for senior-level)", totalBullets))
		} else if totalBullets < 35 {
			recs = append(recs, fmt.Sprintf("📝 Expand on your leadership impact (currently %d, aim for 35+)", totalBullets))
		}
	}

	present := make(map[string]bool, len(rec.Sections))
	for _, s := range rec.Sections {
		present[s] = true
	}
	for _, section := range []string{"experience", "education", "skills", "summary"} {
		if !present[section] {
			recs = append(recs, fmt.Sprintf("📝 Add a '%s' section to improve structure", capitalize(section)))
		}
	}

	// Repetitive verbs surface in vocabulary order to keep output stable.
	for _, verb := range rec.ActionVerbs {
		if count, ok := rec.RepetitiveVerbs[verb]; ok {
			recs = append(recs, fmt.Sprintf("🔄 Replace repetitive '%s' verb (used %d times) - use it max 2 times", capitalize(verb), count))
		}
	}

	verbCount := len(rec.ActionVerbs)
	if verbCount < 5 {
		recs = append(recs, "💪 Use more action verbs (achieved, developed, implemented, led, etc.) to strengthen impact")
	} else if verbCount < 10 {
		recs = append(recs, "💪 Add more action verbs to better showcase your achievements")
	}

	if totalBullets > 0 {
		ratio := float64(rec.QuantifiedBullets) / float64(totalBullets)
		switch {
		case ratio < 0.3:
			recs = append(recs, fmt.Sprintf("📊 Only %d of %d bullets are quantified - add numbers to at least 50%% (e.g., 'Increased sales by 30%%')", rec.QuantifiedBullets, totalBullets))
		case ratio < 0.5:
			recs = append(recs, fmt.Sprintf("📊 Quantify more bullets: %d/%d have metrics - aim for 50%%+ (add %%, $, or specific numbers)", rec.QuantifiedBullets, totalBullets))
		case ratio < 0.7:
			recs = append(recs, fmt.Sprintf("📊 Good quantification (%d/%d) - try to add metrics to a few more bullets", rec.QuantifiedBullets, totalBullets))
		}
	} else {
		if len(rec.Numbers) < 3 {
			recs = append(recs, "📊 Add quantifiable metrics (%, $, numbers) to demonstrate impact")
		} else if len(rec.Numbers) < 5 {
			recs = append(recs, "📊 Include more specific numbers and percentages to quantify your achievements")
		}
	}

	switch {
	case rec.WordCount < 200:
		recs = append(recs, "📄 Your resume is too short - add more details about your experience, achievements, and impact")
	case rec.WordCount < 300:
		recs = append(recs, "📄 Expand your resume with more specific examples and details (aim for 400-700 words)")
	case rec.WordCount < 400:
		recs = append(recs, "📄 Consider adding more details about your responsibilities and achievements")
	case rec.WordCount > 1200:
		recs = append(recs, "✂️ Your resume is too long - condense to 2 pages maximum (600-900 words)")
	case rec.WordCount > 900:
		recs = append(recs, "✂️ Consider condensing slightly for better readability (aim for 600-900 words)")
	}

	skillCount := len(rec.Skills)
	if skillCount < 5 {
		recs = append(recs, "🔧 List more relevant technical and soft skills (e.g., programming languages, tools, frameworks)")
	} else if skillCount < 8 {
		recs = append(recs, "🔧 Expand your skills section with more specific technologies and competencies")
	}

	if score < 50 {
		recs = append(recs, "⭐ Focus on adding quantifiable achievements and action verbs first - these have the biggest impact")
	} else if score < 70 {
		recs = append(recs, "⭐ Your resume foundation is good - focus on quantifying achievements and adding specific results")
	}

	mentionsBullets := false
	for _, r := range recs {
		if strings.Contains(strings.ToLower(r), "bullet") {
			mentionsBullets = true
			break
		}
	}
	if !mentionsBullets {
		recs = append(recs, "✨ Use bullet points to make your resume easier to scan by ATS systems")
	}

	return recs
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
