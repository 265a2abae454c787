package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"leadscout/internal/digest"
	"leadscout/internal/filter"
	"leadscout/internal/scraper"
	"leadscout/internal/search"
)

func main() {
	fmt.Println("📧 Testing digest rendering...")

	leads := []filter.Lead{
		{
			Candidate: scraper.Candidate{
				Author:     "Jane Smith",
				Title:      "Talent Acquisition Lead at Acme",
				PostedText: "2h",
				Body:       "We are hiring a senior Salesforce consultant for a remote contract engagement. Competitive daily rate, immediate start.",
				URL:        "https://www.linkedin.com/posts/sample-111",
				Source:     "LinkedIn",
			},
			QualityScore:   9,
			PersonaMatches: []string{"service_cloud(2)"},
			MatchedTerms:   []string{"hiring", "senior", "contract"},
		},
		{
			Candidate: scraper.Candidate{
				Author:     "Acme Jobs",
				Title:      "Agile Coach (Remote, EU)",
				PostedText: "1d",
				Body:       "Looking for an experienced agile coach to support a scaled transformation programme across three European markets.",
				URL:        "https://jobs.example.com/agile-coach",
				Source:     "Feed",
			},
			QualityScore:   6,
			PersonaMatches: []string{"agile_coach(1)"},
			MatchedTerms:   []string{"looking for", "experienced"},
		},
	}

	d := digest.New(leads, search.Variant{Index: 0, Text: `"hiring" AND "Salesforce"`}, time.Now())
	fmt.Printf("   Subject: %s\n", d.Subject())

	html, err := digest.Render(d)
	if err != nil {
		log.Fatalf("Failed to render digest: %v", err)
	}

	if err := os.WriteFile("digest-preview.html", []byte(html), 0644); err != nil {
		log.Fatalf("Failed to write preview: %v", err)
	}
	fmt.Println("✅ Preview saved: digest-preview.html")
	fmt.Println("✨ Test complete!")
}
