package youtube

import "testing"

func TestIsPolitical(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Election Night Recap", true},
		{"Elevator Music", false},
		{"President's Day hike", true}, // substring match, not word boundary
		{"Senate hearing on AI", true},
		{"Devoted to Go", true}, // false positive: "vote" inside "devoted"
		{"Voters guide", true},  // false positive under substring matching
		{"VOTING machines explained", true},
		{"Building a compiler in Rust", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := IsPolitical(tt.title); got != tt.want {
				t.Errorf("IsPolitical(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestFilterPolitical(t *testing.T) {
	in := []Video{
		{Title: "Election Night Recap"},
		{Title: "Elevator Music"},
		{Title: "Transformers from scratch"},
	}
	kept, removed := FilterPolitical(in)
	if removed != 1 {
		t.Fatalf("want 1 removed, got %d", removed)
	}
	if len(kept) != 2 || kept[0].Title != "Elevator Music" || kept[1].Title != "Transformers from scratch" {
		t.Fatalf("unexpected kept: %+v", kept)
	}
}
