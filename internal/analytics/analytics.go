package analytics

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"personal-kb/internal/storage"
)

// DailyStats summarises one day of the processing log.
type DailyStats struct {
	Date        string         `json:"date"`
	Processed   int            `json:"processed"`
	Failed      int            `json:"failed"`
	Skipped     int            `json:"skipped"`
	Filtered    int            `json:"filtered"`
	TotalTokens int            `json:"total_tokens"`
	TotalCost   float64        `json:"total_cost"`
	ByStatus    map[string]int `json:"by_status"`
	Titles      []string       `json:"titles"`
}

// AnalyzeDailyLogs aggregates the events that fall on targetDate, in
// targetDate's location.
func AnalyzeDailyLogs(events []storage.Event, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:     startOfDay.Format("2006-01-02"),
		ByStatus: make(map[string]int),
	}

	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}
		stats.ByStatus[event.Status]++
		switch event.Status {
		case storage.StatusProcessed:
			stats.Processed++
			stats.TotalTokens += event.Tokens
			stats.TotalCost += event.Cost
			if event.Title != "" {
				stats.Titles = append(stats.Titles, event.Title)
			}
		case storage.StatusFailed:
			stats.Failed++
		case storage.StatusSkipped:
			stats.Skipped++
		case storage.StatusFiltered:
			stats.Filtered++
		}
	}
	return stats
}

// Empty reports whether nothing happened that day.
func (ds *DailyStats) Empty() bool {
	return len(ds.ByStatus) == 0
}

// GenerateReportSummary renders a short plain-text summary for notifications.
func (ds *DailyStats) GenerateReportSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Video processing for %s\n\n", ds.Date)
	fmt.Fprintf(&b, "✅ Processed: %d\n", ds.Processed)
	fmt.Fprintf(&b, "❌ Failed: %d\n", ds.Failed)
	fmt.Fprintf(&b, "⏭ Skipped: %d\n", ds.Skipped)
	fmt.Fprintf(&b, "🚫 Filtered: %d\n", ds.Filtered)
	fmt.Fprintf(&b, "💰 Cost: $%.2f (%d tokens)\n", ds.TotalCost, ds.TotalTokens)

	if len(ds.Titles) > 0 {
		titles := append([]string(nil), ds.Titles...)
		sort.Strings(titles)
		b.WriteString("\nNew reports:\n")
		for _, t := range titles {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}
	return b.String()
}

func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
