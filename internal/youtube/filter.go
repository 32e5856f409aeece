package youtube

import "strings"

// PoliticalKeywords are matched case-insensitively as plain substrings, so
// "president" also hits "President's Day hike".
var PoliticalKeywords = []string{
	"trump", "biden", "election", "politics", "political",
	"democrat", "republican", "congress", "senate", "president",
	"government", "policy", "legislation", "vote", "voting",
	"campaign", "liberal", "conservative",
}

func IsPolitical(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range PoliticalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FilterPolitical returns the videos whose titles are not political and the
// number removed. Order is preserved.
func FilterPolitical(videos []Video) ([]Video, int) {
	kept := make([]Video, 0, len(videos))
	for _, v := range videos {
		if IsPolitical(v.Title) {
			continue
		}
		kept = append(kept, v)
	}
	return kept, len(videos) - len(kept)
}
