package features

import "regexp"

// actionVerbs are matched in order, so the found list is deterministic.
var actionVerbs = []string{
	"achieved", "improved", "developed", "implemented", "managed", "created",
	"increased", "reduced", "led", "designed", "built", "optimized", "launched",
	"delivered", "executed", "established", "streamlined", "spearheaded",
	"automated", "collaborated", "coordinated", "directed", "engineered",
	"enhanced", "founded", "generated", "initiated", "integrated", "maintained",
	"operated", "planned", "programmed", "resolved", "supervised", "trained",
	"upgraded", "validated", "architected", "deployed", "facilitated",
	"migrated", "modernized", "orchestrated", "pioneered", "scaled",
	"accelerated", "drove", "transformed", "revamped", "overhauled",
}

// skillVocabulary is the fixed skill list the extractor recognizes. Matching
// is exact word-boundary, case-insensitive, with first-seen order preserved.
var skillVocabulary = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "c", "ruby", "php",
	"swift", "kotlin", "go", "rust", "scala", "r", "matlab", "perl", "haskell",
	// Web technologies and frameworks
	"react", "angular", "vue", "vue.js", "node.js", "node", "express", "express.js",
	"django", "flask", "spring", "spring boot", "asp.net", "html", "html5", "css",
	"css3", "sass", "less", "bootstrap", "tailwind", "tailwindcss", "material-ui",
	"next.js", "next", "nuxt", "gatsby", "svelte", "backbone", "ember",
	// Backend and APIs
	"fastapi", "graphql", "rest", "restful", "soap", "grpc", "microservices",
	"serverless", "lambda", "api", "websocket",
	// Databases
	"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "sqlite",
	"oracle", "dynamodb", "cassandra", "elasticsearch", "mariadb", "neo4j",
	"firestore", "supabase", "firebase",
	// Cloud and devops
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"jenkins", "ci/cd", "terraform", "ansible", "vagrant", "git", "github",
	"gitlab", "bitbucket", "linux", "unix", "bash", "shell", "nginx", "apache",
	// Data and AI/ML
	"machine learning", "deep learning", "data analysis", "data science",
	"artificial intelligence", "ai", "ml", "tensorflow", "pytorch", "keras",
	"scikit-learn", "sklearn", "pandas", "numpy", "jupyter", "matplotlib",
	"seaborn", "plotly", "tableau", "power bi", "spark", "hadoop", "airflow",
	"etl", "data mining", "nlp", "computer vision", "opencv",
	// Mobile
	"android", "ios", "react native", "flutter", "xamarin", "ionic", "cordova",
	"objective-c", "java android",
	// Testing and quality
	"testing", "unit testing", "selenium", "jest", "mocha", "chai", "pytest",
	"junit", "testng", "cypress", "puppeteer", "test automation", "tdd", "bdd",
	// Tools
	"agile", "scrum", "jira", "confluence", "trello", "slack", "figma", "sketch",
	"photoshop", "illustrator", "postman", "swagger", "webpack", "vite", "babel",
	"eslint", "prettier", "vim", "vscode", "intellij", "eclipse", "xcode",
	// Version control and collaboration
	"version control", "source control", "git flow", "github actions", "travis ci",
	"circle ci", "gitlab ci",
	// Blockchain
	"blockchain", "ethereum", "solidity", "web3", "smart contracts", "cryptocurrency",
	// System design and architecture
	"system design", "architecture", "design patterns", "oop", "functional programming",
	"event-driven", "message queue", "kafka", "rabbitmq", "redis pub/sub",
	// Soft skills
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"collaboration", "project management", "critical thinking", "mentoring",
	"presentation", "negotiation", "time management", "event management",
	"team management", "versatile", "trust building",
}

type vocabPattern struct {
	term string
	re   *regexp.Regexp
}

var (
	verbPatterns  = compileVocab(actionVerbs)
	skillPatterns = compileVocab(skillVocabulary)
)

func compileVocab(terms []string) []vocabPattern {
	patterns := make([]vocabPattern, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, vocabPattern{
			term: term,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`),
		})
	}
	return patterns
}

func matchActionVerbs(textLower string) ([]string, map[string]int) {
	var found []string
	freq := make(map[string]int)
	for _, p := range verbPatterns {
		if n := len(p.re.FindAllString(textLower, -1)); n > 0 {
			found = append(found, p.term)
			freq[p.term] = n
		}
	}
	return found, freq
}

func matchSkills(textLower string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, p := range skillPatterns {
		if seen[p.term] {
			continue
		}
		if p.re.MatchString(textLower) {
			found = append(found, p.term)
			seen[p.term] = true
		}
	}
	return found
}
