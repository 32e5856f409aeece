package youtube

import (
	"fmt"
	"io"
	"strings"
)

// WatchHistoryPrompt asks an assistant with access to the user's YouTube
// history for a JSON list in the recent-videos.json shape.
const WatchHistoryPrompt = `Using your access to my YouTube watch history, please provide my last 50 watched videos.

For each video, provide:
- Video title
- Video URL
- Channel name
- Brief description/topic

Filter out any political content (politics, elections, government, etc.)

Format as a JSON array:
[
  {
    "title": "Video Title",
    "url": "https://www.youtube.com/watch?v=...",
    "channel": "Channel Name",
    "description": "Brief description"
  },
  ...
]

Only include videos related to:
- Technology
- AI/Machine Learning
- Programming
- Software Development
- Creative Tools
- Science
- Education`

// WritePromptInstructions prints the prompt framed by copy-paste instructions.
func WritePromptInstructions(w io.Writer, outputFile string) error {
	rule := strings.Repeat("═", 70)
	thin := strings.Repeat("─", 70)
	_, err := fmt.Fprintf(w, `📺 YouTube Recent Watch History Fetcher

%s

🤖 PROMPT FOR GEMINI PERSONAL INTELLIGENCE:

%s
%s

%s

📋 NEXT STEPS:

1. Copy the prompt above
2. Go to https://gemini.google.com
3. Paste and submit
4. Copy the JSON response
5. Save to: %s
6. Run: process-videos -run

%s

`, rule, thin, WatchHistoryPrompt, thin, outputFile, rule)
	return err
}
