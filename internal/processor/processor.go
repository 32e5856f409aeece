// Package processor turns recent videos into markdown reports with an LLM and
// records the outcome in the personal data root.
package processor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"personal-kb/internal/llm"
	"personal-kb/internal/personaldata"
	"personal-kb/internal/storage"
	"personal-kb/internal/youtube"
)

const systemPrompt = `You write concise knowledge-base reports about technical videos.
Given a video's title, channel, URL and description, produce a markdown report with:
- a level-1 heading with the video title
- a "Source" line with the channel and URL
- a "Summary" section (3-5 sentences)
- a "Key Takeaways" bullet list
- a "Tags" line with 3-6 lowercase tags
Do not invent details that the description does not support.`

// Reports is the subset of personaldata.Manager the processor needs.
type Reports interface {
	IsProcessed(videoID string, index int) (bool, error)
	SaveReport(videoID string, index int, content string) (string, error)
	LoadStats() (*personaldata.Stats, error)
	UpdateStats(u personaldata.StatsUpdate) (personaldata.Stats, error)
}

// ProcessedIndex is the exact-key processed set.
type ProcessedIndex interface {
	Has(ctx context.Context, videoID string) (bool, error)
	Mark(ctx context.Context, videoID string, index int, reportPath string) error
}

type Options struct {
	MaxConcurrent   int
	FilterPolitical bool
	CostPer1KTokens float64
	// RequestsPerMinute limits LLM calls; 0 disables limiting.
	RequestsPerMinute int
}

type Processor struct {
	reports  Reports
	index    ProcessedIndex
	client   llm.Client
	recorder storage.Recorder
	limiter  *rate.Limiter
	opts     Options
	now      func() time.Time
}

// New builds a processor. index and recorder may be nil.
func New(reports Reports, index ProcessedIndex, client llm.Client, recorder storage.Recorder, opts Options) *Processor {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), 1)
	}
	return &Processor{
		reports:  reports,
		index:    index,
		client:   client,
		recorder: recorder,
		limiter:  limiter,
		opts:     opts,
		now:      time.Now,
	}
}

// Result counts what Run did with each input video.
type Result struct {
	Considered int
	Processed  int
	Skipped    int
	Filtered   int
	Failed     int
	Invalid    int
	Tokens     int
	Cost       float64
	Stats      personaldata.Stats
}

type job struct {
	index int
	id    string
	video youtube.Video
}

// Run processes videos, numbering new reports from startIndex. A failure on
// one video is recorded and does not stop the others; only context
// cancellation aborts the run. Stats are updated once at the end.
func (p *Processor) Run(ctx context.Context, videos []youtube.Video, startIndex int) (Result, error) {
	var res Result
	res.Considered = len(videos)

	var jobs []job
	seen := make(map[string]bool, len(videos))
	next := startIndex
	for _, v := range videos {
		id := v.ID()
		if id == "" {
			res.Invalid++
			log.Printf("⚠️ Skipping video without id: %s", v.URL)
			continue
		}
		if seen[id] {
			res.Skipped++
			p.record(storage.Event{VideoID: id, Title: v.Title, Status: storage.StatusSkipped})
			continue
		}
		seen[id] = true
		if p.opts.FilterPolitical && youtube.IsPolitical(v.Title) {
			res.Filtered++
			p.record(storage.Event{VideoID: id, Title: v.Title, Status: storage.StatusFiltered})
			continue
		}
		done, err := p.alreadyProcessed(ctx, id)
		if err != nil {
			return res, err
		}
		if done {
			res.Skipped++
			p.record(storage.Event{VideoID: id, Title: v.Title, Status: storage.StatusSkipped})
			continue
		}
		jobs = append(jobs, job{index: next, id: id, video: v})
		next++
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.MaxConcurrent)
	for _, j := range jobs {
		g.Go(func() error {
			ev := p.process(gctx, j)
			mu.Lock()
			defer mu.Unlock()
			switch ev.Status {
			case storage.StatusProcessed:
				res.Processed++
				res.Tokens += ev.Tokens
				res.Cost += ev.Cost
			default:
				res.Failed++
			}
			return gctx.Err()
		})
	}
	runErr := g.Wait()

	st, err := p.updateStats(len(jobs), res.Processed, res.Cost)
	if err != nil {
		return res, err
	}
	res.Stats = st
	if runErr != nil {
		return res, runErr
	}
	return res, ctx.Err()
}

func (p *Processor) alreadyProcessed(ctx context.Context, id string) (bool, error) {
	if p.index != nil {
		ok, err := p.index.Has(ctx, id)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	// Only the id half of the file-name heuristic applies here: the index
	// half would match any report that happens to share the new number.
	ok, err := p.reports.IsProcessed(id, -1)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (p *Processor) process(ctx context.Context, j job) storage.Event {
	ev := storage.Event{VideoID: j.id, Index: j.index, Title: j.video.Title}

	fail := func(err error) storage.Event {
		log.Printf("❌ Video %d (%s) failed: %v", j.index, j.id, err)
		ev.Status = storage.StatusFailed
		ev.Error = err.Error()
		p.record(ev)
		return ev
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return fail(err)
	}
	resp, err := p.client.Generate(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: videoPrompt(j.video)},
	})
	if err != nil {
		return fail(err)
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return fail(fmt.Errorf("empty report"))
	}

	path, err := p.reports.SaveReport(j.id, j.index, content+"\n")
	if err != nil {
		return fail(err)
	}
	if p.index != nil {
		if err := p.index.Mark(ctx, j.id, j.index, path); err != nil {
			log.Printf("⚠️ Failed to mark %s in processed index: %v", j.id, err)
		}
	}

	ev.Status = storage.StatusProcessed
	ev.ReportPath = path
	ev.Tokens = resp.TotalTokens
	ev.Cost = float64(resp.TotalTokens) / 1000 * p.opts.CostPer1KTokens
	p.record(ev)
	log.Printf("✅ Video %d (%s) → %s", j.index, j.id, path)
	return ev
}

func (p *Processor) updateStats(seen, processed int, cost float64) (personaldata.Stats, error) {
	cur, err := p.reports.LoadStats()
	if err != nil {
		return personaldata.Stats{}, err
	}
	var st personaldata.Stats
	if cur != nil {
		st = *cur
	}
	total := st.TotalVideos + seen
	done := st.ProcessedVideos + processed
	spent := st.TotalCost + cost
	return p.reports.UpdateStats(personaldata.StatsUpdate{
		TotalVideos:     &total,
		ProcessedVideos: &done,
		TotalCost:       &spent,
	})
}

func (p *Processor) record(ev storage.Event) {
	if p.recorder == nil {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = p.now().UTC()
	}
	if err := p.recorder.AppendEvent(ev); err != nil {
		log.Printf("⚠️ Failed to record processing event: %v", err)
	}
}

func videoPrompt(v youtube.Video) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", v.Title)
	fmt.Fprintf(&b, "Channel: %s\n", v.Channel)
	fmt.Fprintf(&b, "URL: %s\n", v.URL)
	if v.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", v.Description)
	}
	return b.String()
}
