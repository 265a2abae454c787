package config

// DefaultQueries are the built-in search rotations. Each phrasing targets
// the same contract market from a different angle; the pipeline picks one
// per calendar day so the full set gets visited over successive runs.
var DefaultQueries = []string{
	//Primary recommended query
	`(salesforce OR "program manager" OR "release manager" OR "data strategy" OR "agile coach" OR CDP OR martech OR "business intelligence" OR CRM OR "digital transformation") AND (contract OR freelance OR consultant OR "looking for" OR "seeking" OR "need" OR "hiring" OR "project" OR "interim") AND (remote OR europe OR EU OR "work from home" OR WFH)`,

	//Role-specific focus
	`("salesforce architect" OR "program manager" OR "release manager" OR "CDP specialist" OR "agile coach" OR "BI manager" OR "data strategist") AND (freelance OR contract OR consultant OR "3-6 months" OR "6-12 months" OR interim OR project) AND (remote OR "remote work" OR europe)`,

	//Technology + opportunity focus
	`(salesforce OR tableau OR "marketing cloud" OR "service cloud" OR agile OR scrum OR "data analytics" OR CDP OR martech) AND ("looking for" OR "need a" OR "seeking" OR hiring OR contract OR freelance OR consultant) AND (remote OR EU OR europe OR "work from anywhere")`,

	//Industry-specific
	`(salesforce OR "program management" OR "release management" OR "agile transformation" OR "data strategy") AND (pharma OR retail OR healthcare OR telecom OR "life sciences" OR fintech OR banking) AND (contract OR freelance OR consultant OR "project basis") AND (remote OR europe)`,
}

// DefaultPersonas maps consulting profiles to the phrases that mark a post
// as relevant to them. Every distinct phrase hit contributes to the quality
// score, so broader personas naturally rank posts higher.
var DefaultPersonas = map[string][]string{
	"martech_cdp":        {"CDP", "customer data platform", "martech", "marketing cloud", "personalization"},
	"agile_coach":        {"agile", "scrum", "transformation", "coaching", "scaled agile", "SAFe"},
	"service_cloud":      {"service cloud", "case management", "field service", "customer service"},
	"program_manager":    {"program manager", "project manager", "PMO", "portfolio management"},
	"bi_analytics":       {"tableau", "business intelligence", "analytics", "einstein analytics", "CRM analytics"},
	"solution_architect": {"architect", "technical design", "integration", "API", "system design"},
	"release_manager":    {"release", "deployment", "devops", "CI/CD", "change management"},
	"data_strategy":      {"data strategy", "data governance", "data architecture", "MDM"},
	"transformation":     {"digital transformation", "change management", "organizational change"},
	"industry_specific":  {"pharma", "healthcare", "retail", "telecom", "financial services", "life sciences"},
}
