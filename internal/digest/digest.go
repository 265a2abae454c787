package digest

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"leadscout/internal/filter"
	"leadscout/internal/search"
)

// Digest is the final work product of one run: the ranked leads plus the
// context needed to explain them. Empty Leads with an empty FailureReason
// is a legitimate zero-lead day, not an error.
type Digest struct {
	Leads         []filter.Lead
	Query         search.Variant
	GeneratedAt   time.Time
	FailureReason string
}

func New(leads []filter.Lead, query search.Variant, now time.Time) Digest {
	return Digest{Leads: leads, Query: query, GeneratedAt: now}
}

// Failed builds the digest for a run that died before producing leads. The
// reason travels to the recipient so failures cannot stay silent.
func Failed(query search.Variant, reason string, now time.Time) Digest {
	return Digest{Query: query, GeneratedAt: now, FailureReason: reason}
}

// TotalScore sums the lead scores for the subject line.
func (d Digest) TotalScore() int {
	total := 0
	for _, l := range d.Leads {
		total += l.QualityScore
	}
	return total
}

// DateLine formats the run date the way the digest header shows it.
func (d Digest) DateLine() string {
	return d.GeneratedAt.Format("January 2, 2006")
}

// Subject is the delivery subject line.
func (d Digest) Subject() string {
	date := d.GeneratedAt.Format("January 2")
	if d.FailureReason != "" {
		return fmt.Sprintf("⚠️ Lead search failed - %s", date)
	}
	return fmt.Sprintf("🎯 %d LinkedIn Opportunities - %s - Score %d/%d",
		len(d.Leads), date, d.TotalScore(), filter.MaxLeads*filter.MaxScore)
}

// WriteRunLog persists the digest as JSON under logsDir, one file per day,
// so what was delivered stays inspectable after the fact. Zero-lead days
// write nothing; failed runs are kept as evidence.
func (d Digest) WriteRunLog(logsDir string) {
	if len(d.Leads) == 0 && d.FailureReason == "" {
		log.Println("ℹ️ No leads to save.")
		return
	}

	//create logs directory if not exists
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: leads-YYYY-MM-DD.json
	filename := fmt.Sprintf("leads-%s.json", d.GeneratedAt.Format("2006-01-02"))
	filePath := filepath.Join(logsDir, filename)

	data, err := json.MarshalIndent(d, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal digest to JSON: %v", err)
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write run log: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
