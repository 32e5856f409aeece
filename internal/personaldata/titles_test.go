package personaldata

import "testing"

func TestReportTitle(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"h1", "intro\n\n# Building Agents\n\ntext", "Building Agents"},
		{"h2 only", "## Summary of *talk*\n", "Summary of talk"},
		{"h1 after h2", "## Sub\n\n# Main\n", "Main"},
		{"no heading", "plain text", "api_1_abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ReportTitle([]byte(tc.content), "/tmp/api_1_abc.md")
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestReportSummaries(t *testing.T) {
	m, _ := newConfigured(t)
	if _, err := m.SaveReport("vid_1", 4, "# Title One\n"); err != nil {
		t.Fatal(err)
	}
	sums, err := m.ReportSummaries()
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(sums) != 1 || sums[0].Title != "Title One" || sums[0].VideoID != "vid_1" || sums[0].Index != 4 {
		t.Fatalf("unexpected summaries: %+v", sums)
	}
}
