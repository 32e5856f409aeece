package personaldata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ReportSummary is a report path with the title taken from its first heading.
type ReportSummary struct {
	Path    string `json:"path"`
	VideoID string `json:"video_id,omitempty"`
	Index   int    `json:"index,omitempty"`
	Title   string `json:"title"`
}

var markdown = goldmark.New()

// ReportTitle returns the text of the first heading in a markdown document,
// preferring level 1. If there is none the file name is used.
func ReportTitle(content []byte, filename string) string {
	doc := markdown.Parser().Parse(text.NewReader(content))

	var first string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		t := headingText(h, content)
		if h.Level == 1 {
			first = t
			return ast.WalkStop, nil
		}
		if first == "" {
			first = t
		}
		return ast.WalkSkipChildren, nil
	})
	if first != "" {
		return first
	}
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

func headingText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// ReportSummaries lists reports with their titles.
func (m *Manager) ReportSummaries() ([]ReportSummary, error) {
	reports, err := m.ListReports()
	if err != nil {
		return nil, err
	}
	out := make([]ReportSummary, 0, len(reports))
	for _, p := range reports {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", p, err)
		}
		s := ReportSummary{Path: p, Title: ReportTitle(data, p)}
		if id, idx, ok := ParseReportFileName(p); ok {
			s.VideoID, s.Index = id, idx
		}
		out = append(out, s)
	}
	return out, nil
}
