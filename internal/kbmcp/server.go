// Package kbmcp exposes the personal knowledge base as MCP tools.
package kbmcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"personal-kb/internal/index"
	"personal-kb/internal/personaldata"
)

type StatusParams struct{}

type ListReportsParams struct {
	Limit int `json:"limit,omitempty" mcp:"maximum number of reports to return, newest numbering last (0 = all)"`
}

type IsProcessedParams struct {
	VideoID string `json:"video_id" mcp:"YouTube video id"`
	Index   *int   `json:"index,omitempty" mcp:"report index to check as well"`
}

type GenerateKBParams struct{}

type ExportParams struct {
	Format string `json:"format" mcp:"export format: urls or markdown"`
}

// ExactIndex answers exact processed lookups. Optional.
type ExactIndex interface {
	Has(ctx context.Context, videoID string) (bool, error)
}

// Server handlers run one at a time; each re-reads config.json first.
type Server struct {
	mu    sync.Mutex
	kb    *personaldata.Manager
	index ExactIndex
}

func New(kb *personaldata.Manager, exact ExactIndex) *Server {
	return &Server{kb: kb, index: exact}
}

// NewWithIndexFile looks up the processed index under the current data root
// on every call, so a root configured after startup is picked up.
func NewWithIndexFile(kb *personaldata.Manager) *Server {
	return New(kb, fileIndex{kb: kb})
}

type fileIndex struct {
	kb *personaldata.Manager
}

func (f fileIndex) Has(ctx context.Context, videoID string) (bool, error) {
	path, err := f.kb.ProcessedIndexPath()
	if err != nil {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	idx, err := index.Open(ctx, path)
	if err != nil {
		return false, err
	}
	defer idx.Close()
	return idx.Has(ctx, videoID)
}

// reload picks up config.json changes made by `kb-tool setup` while the
// server runs. A corrupt file leaves the server unconfigured.
func (s *Server) reload() {
	if err := s.kb.Reload(); err != nil {
		log.Printf("⚠️ %v", err)
	}
}

// Register adds all knowledge base tools to server.
func (s *Server) Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "kb_status",
		Description: "Shows whether the personal data root is configured, its paths and processing stats",
	}, s.Status)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_reports",
		Description: "Lists video reports with their titles",
	}, s.ListReports)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "is_processed",
		Description: "Checks whether a video already has a report",
	}, s.IsProcessed)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_kb",
		Description: "Concatenates all reports into the consolidated knowledge base",
	}, s.GenerateKB)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_kb",
		Description: "Exports video URLs or the consolidated knowledge base for NotebookLM",
	}, s.Export)
}

func errorResult(format string, args ...any) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: "❌ " + fmt.Sprintf(format, args...)},
		},
	}
}

func (s *Server) Status(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[StatusParams]) (*mcp.CallToolResultFor[any], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload()
	if !s.kb.IsConfigured() {
		return &mcp.CallToolResultFor[any]{
			Content: []mcp.Content{
				&mcp.TextContent{Text: "⚠️ Personal data path not configured. Run `kb-tool setup <path>`."},
			},
			Meta: map[string]interface{}{"configured": false},
		}, nil
	}

	root, err := s.kb.PersonalDataPath()
	if err != nil {
		return errorResult("%v", err), nil
	}
	reports, err := s.kb.ListReports()
	if err != nil {
		return errorResult("list reports: %v", err), nil
	}
	stats, err := s.kb.LoadStats()
	if err != nil {
		return errorResult("load stats: %v", err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Personal data root: %s\n", root)
	fmt.Fprintf(&b, "**Reports:** %d\n", len(reports))
	meta := map[string]interface{}{
		"configured": true,
		"root":       root,
		"reports":    len(reports),
	}
	if stats != nil {
		fmt.Fprintf(&b, "**Total videos:** %d\n", stats.TotalVideos)
		fmt.Fprintf(&b, "**Processed:** %d\n", stats.ProcessedVideos)
		fmt.Fprintf(&b, "**Unprocessed:** %d\n", stats.Unprocessed())
		fmt.Fprintf(&b, "**Total cost:** $%.2f\n", stats.TotalCost)
		meta["total_videos"] = stats.TotalVideos
		meta["processed_videos"] = stats.ProcessedVideos
		meta["total_cost"] = stats.TotalCost
	}
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: b.String()}},
		Meta:    meta,
	}, nil
}

func (s *Server) ListReports(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ListReportsParams]) (*mcp.CallToolResultFor[any], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload()
	summaries, err := s.kb.ReportSummaries()
	if err != nil {
		return errorResult("list reports: %v", err), nil
	}
	if limit := params.Arguments.Limit; limit > 0 && len(summaries) > limit {
		summaries = summaries[len(summaries)-limit:]
	}

	if len(summaries) == 0 {
		return &mcp.CallToolResultFor[any]{
			Content: []mcp.Content{&mcp.TextContent{Text: "No reports yet."}},
			Meta:    map[string]interface{}{"count": 0},
		}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 %d report(s):\n", len(summaries))
	for _, r := range summaries {
		if r.VideoID != "" {
			fmt.Fprintf(&b, "%d. %s (%s)\n", r.Index, r.Title, r.VideoID)
		} else {
			fmt.Fprintf(&b, "- %s\n", r.Title)
		}
	}
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: b.String()}},
		Meta:    map[string]interface{}{"count": len(summaries)},
	}, nil
}

func (s *Server) IsProcessed(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[IsProcessedParams]) (*mcp.CallToolResultFor[any], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload()
	args := params.Arguments
	if args.VideoID == "" {
		return errorResult("video_id is required"), nil
	}

	exact := false
	if s.index != nil {
		ok, err := s.index.Has(ctx, args.VideoID)
		if err != nil {
			log.Printf("⚠️ Processed index lookup failed: %v", err)
		}
		exact = ok
	}
	reportIndex := -1
	if args.Index != nil {
		reportIndex = *args.Index
	}
	loose, err := s.kb.IsProcessed(args.VideoID, reportIndex)
	if err != nil {
		return errorResult("%v", err), nil
	}

	processed := exact || loose
	text := fmt.Sprintf("Video %s is not processed yet.", args.VideoID)
	if processed {
		text = fmt.Sprintf("✅ Video %s is already processed.", args.VideoID)
	}
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		Meta: map[string]interface{}{
			"video_id":  args.VideoID,
			"processed": processed,
			"exact":     exact,
		},
	}, nil
}

func (s *Server) GenerateKB(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[GenerateKBParams]) (*mcp.CallToolResultFor[any], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload()
	path, err := s.kb.GenerateConsolidatedKB()
	if err != nil {
		return errorResult("generate knowledge base: %v", err), nil
	}
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: "✅ Knowledge base written to " + path}},
		Meta:    map[string]interface{}{"path": path, "success": true},
	}, nil
}

func (s *Server) Export(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ExportParams]) (*mcp.CallToolResultFor[any], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload()
	format := params.Arguments.Format
	path, err := s.kb.Export(format)
	if err != nil {
		var fe *personaldata.FormatError
		if errors.As(err, &fe) {
			return errorResult("unknown format %q, use urls or markdown", fe.Format), nil
		}
		return errorResult("export: %v", err), nil
	}
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("✅ Exported %s to %s", format, path)}},
		Meta:    map[string]interface{}{"format": format, "path": path, "success": true},
	}, nil
}
