package analytics

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"personal-kb/internal/storage"
)

func TestAnalyzeDailyLogs(t *testing.T) {
	testDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	events := []storage.Event{
		{Timestamp: testDate.Add(2 * time.Hour), VideoID: "a", Title: "Zig in Prod", Status: storage.StatusProcessed, Tokens: 1200, Cost: 0.12},
		{Timestamp: testDate.Add(3 * time.Hour), VideoID: "b", Title: "Agents 101", Status: storage.StatusProcessed, Tokens: 800, Cost: 0.08},
		{Timestamp: testDate.Add(4 * time.Hour), VideoID: "c", Status: storage.StatusFailed, Error: "timeout"},
		{Timestamp: testDate.Add(5 * time.Hour), VideoID: "d", Status: storage.StatusSkipped},
		{Timestamp: testDate.Add(6 * time.Hour), VideoID: "e", Status: storage.StatusFiltered},
		// next day, not counted
		{Timestamp: testDate.AddDate(0, 0, 1), VideoID: "f", Status: storage.StatusProcessed, Cost: 5},
	}

	stats := AnalyzeDailyLogs(events, testDate.Add(13*time.Hour))

	if stats.Date != "2024-01-15" {
		t.Errorf("Expected date '2024-01-15', got '%s'", stats.Date)
	}
	if stats.Processed != 2 || stats.Failed != 1 || stats.Skipped != 1 || stats.Filtered != 1 {
		t.Errorf("unexpected counters: %+v", stats)
	}
	if stats.TotalTokens != 2000 {
		t.Errorf("Expected 2000 tokens, got %d", stats.TotalTokens)
	}
	if stats.TotalCost < 0.199 || stats.TotalCost > 0.201 {
		t.Errorf("Expected cost 0.20, got %f", stats.TotalCost)
	}
	if stats.Empty() {
		t.Errorf("stats should not be empty")
	}

	summary := stats.GenerateReportSummary()
	for _, want := range []string{"2024-01-15", "Processed: 2", "Failed: 1", "$0.20", "- Agents 101\n- Zig in Prod"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}

	js, err := stats.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	var back DailyStats
	if err := json.Unmarshal([]byte(js), &back); err != nil || back.Processed != 2 {
		t.Fatalf("json not decodable: %v %+v", err, back)
	}
}

func TestAnalyzeDailyLogs_Empty(t *testing.T) {
	stats := AnalyzeDailyLogs(nil, time.Now())
	if !stats.Empty() {
		t.Fatalf("want empty stats")
	}
}
