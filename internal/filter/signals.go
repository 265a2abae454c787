package filter

const (
	//MinScore is the acceptance threshold; totals below it are discarded
	MinScore = 4
	//MaxScore caps the final quality score
	MaxScore = 10
	//maxMatchedTerms bounds how many matched terms a lead carries into the digest
	maxMatchedTerms = 6
)

// Category weights are additive. No single category reaches MinScore on
// its own, so acceptance always takes corroborating signals.
const (
	weightHiring     = 3
	weightQuality    = 2
	weightGeography  = 2
	weightIndustry   = 2
	weightEngagement = 2
	weightImmediacy  = 3
)

// exclusionPhrases mark a post as a job seeker advertising themselves
// rather than an opportunity. Any hit rejects the candidate outright,
// before any scoring happens.
var exclusionPhrases = []string{
	"open to work", "opentowork", "looking for opportunities",
	"seeking new role", "job search", "career change",
	"actively looking", "available for hire", "seeking opportunities",
	"#opentowork", "jobseekers", "candidates", "seeking a position",
}

type signalCategory struct {
	name    string
	weight  int
	collect bool //terms matched here surface as key terms in the digest
	terms   []string
}

// signalCategories are evaluated in a fixed order. Each category adds its
// weight once, no matter how many of its terms hit. All terms are stored
// pre-normalized (lowercase, no diacritics) to match the folded haystack.
var signalCategories = []signalCategory{
	{
		name:    "hiring",
		weight:  weightHiring,
		collect: true,
		terms: []string{
			"hiring", "looking for", "seeking", "need", "opportunity",
			"position", "role", "join our team", "we are looking",
			"contract position", "freelance opportunity", "consultant needed",
			"project starts", "immediate start", "urgently need",
		},
	},
	{
		name:    "quality",
		weight:  weightQuality,
		collect: true,
		terms: []string{
			"urgent", "asap", "start immediately", "competitive rate",
			"remote first", "flexible", "experienced", "senior",
			"3-6 months", "6-12 months", "interim", "transformation",
			"enterprise", "global", "multinational",
		},
	},
	{
		name:   "geography",
		weight: weightGeography,
		terms: []string{
			"germany", "netherlands", "france", "spain", "italy",
			"poland", "sweden", "denmark", "austria", "belgium",
			"ireland", "portugal", "finland", "norway", "switzerland",
			"europe", "eu", "european union", "remote", "work from home",
			"wfh", "work from anywhere", "timezone", "cet", "gmt",
		},
	},
	{
		name:   "industry",
		weight: weightIndustry,
		terms: []string{
			"pharma", "pharmaceutical", "healthcare", "life sciences",
			"retail", "beauty", "cosmetics", "telecom", "telco",
			"financial services", "fintech", "banking", "insurance",
		},
	},
	{
		name:   "engagement",
		weight: weightEngagement,
		terms:  []string{"contract", "freelance", "consultant", "interim"},
	},
	{
		name:   "immediacy",
		weight: weightImmediacy,
		terms:  []string{"urgent", "asap", "immediately", "start soon"},
	},
}
