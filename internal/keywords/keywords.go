// Package keywords holds the curated keyword tables shared by resume
// discovery and job analysis: per-domain skill vocabularies, folder-name
// signals, action verbs, and seniority terms.
package keywords

import "github.com/jonathan/resume-intel/internal/types"

// DomainOrder fixes the iteration order over the classified domains so a
// score tie always resolves to the same winner
var DomainOrder = []types.Domain{
	types.DomainTechnology,
	types.DomainBusiness,
	types.DomainCreative,
}

// DomainSkills maps each professional domain to its skill vocabulary.
// Matching is by lowercase substring membership against resume content and
// job text.
var DomainSkills = map[types.Domain][]string{
	types.DomainTechnology: {
		"python", "java", "javascript", "typescript", "golang", "c++", "c#",
		"sql", "nosql", "postgresql", "mysql", "mongodb", "redis",
		"aws", "azure", "gcp", "cloud", "docker", "kubernetes", "terraform",
		"machine learning", "deep learning", "tensorflow", "pytorch",
		"data science", "data engineering", "etl", "spark", "kafka",
		"api", "rest", "grpc", "microservices", "devops", "ci/cd",
		"linux", "git", "react", "node", "django", "backend", "frontend",
		"software engineering", "distributed systems", "nlp", "llm",
	},
	types.DomainBusiness: {
		"sales", "marketing", "revenue", "crm", "salesforce", "hubspot",
		"account management", "business development", "negotiation",
		"forecasting", "pipeline", "quota", "b2b", "b2c", "saas",
		"project management", "product management", "stakeholder",
		"strategy", "operations", "finance", "budgeting", "p&l",
		"analytics", "kpi", "roi", "market research", "partnerships",
		"customer success", "go-to-market", "pricing", "procurement",
	},
	types.DomainCreative: {
		"design", "ux", "ui", "user experience", "figma", "sketch",
		"adobe", "photoshop", "illustrator", "branding", "typography",
		"copywriting", "content strategy", "storytelling", "video",
		"animation", "motion graphics", "art direction", "illustration",
		"creative direction", "photography", "editing", "social media",
	},
}

// FolderSignals maps each domain to folder-name hints. A folder hit counts
// double a skill hit during domain classification.
var FolderSignals = map[types.Domain][]string{
	types.DomainTechnology: {
		"tech", "technology", "engineering", "software", "dev", "it",
		"data", "ai", "ml", "machine-learning", "backend", "frontend",
	},
	types.DomainBusiness: {
		"business", "sales", "marketing", "finance", "operations",
		"management", "consulting", "bd", "account",
	},
	types.DomainCreative: {
		"creative", "design", "art", "content", "media", "ux", "ui",
		"writing", "video",
	},
}

// ActionVerbs starts the sentences treated as responsibility statements when
// a job posting or resume has no explicit bullet formatting
var ActionVerbs = []string{
	"developed", "designed", "built", "created", "implemented", "managed",
	"led", "launched", "delivered", "improved", "optimized", "increased",
	"reduced", "drove", "owned", "architected", "automated", "analyzed",
	"coordinated", "established", "maintained", "mentored", "negotiated",
	"organized", "oversaw", "planned", "produced", "researched", "resolved",
	"scaled", "spearheaded", "streamlined", "supported", "trained",
}

// SeniorityTerms are the experience-level words extracted from job postings
var SeniorityTerms = []string{
	"junior", "mid-level", "senior", "staff", "principal", "lead",
	"director", "head of", "vp", "entry level", "intern",
}
