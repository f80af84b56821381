// Package collector drives one pass over an event: resolve the match
// listing, then work through the enabled page fetches one at a time,
// absorbing per-item failures and reporting progress as it goes.
package collector

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
	"github.com/eprasetya/vlrscout/internal/vlr"
	"github.com/eprasetya/vlrscout/internal/vlr/extract"
)

// Config selects which stages a run performs. DetailLimit caps how many
// matches get per-match pages; zero means all of them.
type Config struct {
	Matches     bool
	EventStats  bool
	MapsAgents  bool
	Details     bool
	Economy     bool
	Performance bool
	DetailLimit int
}

func (c Config) anyMatchStage() bool {
	return c.Details || c.Economy || c.Performance
}

type Collector struct {
	fetcher    Fetcher
	resolver   *EventResolver
	logger     *logging.Logger
	onProgress ProgressFunc
	now        func() time.Time
}

func New(fetcher Fetcher, logger *logging.Logger, onProgress ProgressFunc) *Collector {
	if logger == nil {
		logger = logging.Default()
	}
	return &Collector{
		fetcher:    fetcher,
		resolver:   NewEventResolver(fetcher, logger),
		logger:     logger,
		onProgress: onProgress,
		now:        time.Now,
	}
}

type workItem struct {
	name string
	run  func(ctx context.Context, res *Result) error
}

// Run collects everything cfg selects for one event. Failures of the event
// page or the first listing page abort the run; every later failure is
// recorded against its item and the run continues. Cancellation is honored
// only between items, so a partial result is still internally consistent.
func (c *Collector) Run(ctx context.Context, eventID int64, cfg Config) (Result, error) {
	if eventID <= 0 {
		return Result{}, crerr.New("event id must be greater than zero")
	}

	res := Result{StartedAt: c.now()}

	doc, err := c.fetcher.FetchDocument(ctx, vlr.EventPath(eventID))
	if err != nil {
		return Result{}, crerr.Wrapf(err, "fetch event %d", eventID)
	}
	ev, err := extract.EventHeader(doc, eventID)
	if err != nil {
		return Result{}, err
	}
	res.Event = ev

	matches, err := c.resolver.Resolve(ctx, eventID)
	if err != nil {
		return Result{}, err
	}
	res.Event.MatchCount = len(matches)
	selected := selectMatches(matches, cfg.DetailLimit)
	// Per-match rows reference their match row in the store, so a run with
	// any per-match stage carries at least the selected matches.
	if cfg.Matches {
		res.Matches = matches
	} else if cfg.anyMatchStage() {
		res.Matches = selected
	}
	c.logger.InfoContext(ctx, "event resolved",
		"event_id", eventID, "title", ev.Title, "matches", len(matches))

	items := c.planItems(eventID, selected, cfg)
	total := len(items)

	for idx, item := range items {
		if ctx.Err() != nil {
			c.logger.WarnContext(ctx, "run cancelled, returning partial result",
				"event_id", eventID, "completed", idx, "total", total)
			res.Canceled = true
			break
		}

		c.report(Progress{
			Total:       total,
			Completed:   len(res.Succeeded) + len(res.Errors),
			Failed:      len(res.Errors),
			CurrentItem: item.name,
			Elapsed:     c.now().Sub(res.StartedAt),
			ETA:         estimateRemaining(c.now().Sub(res.StartedAt), idx, total),
		})

		if err := item.run(ctx, &res); err != nil {
			c.logger.WarnContext(ctx, "work item failed",
				"event_id", eventID, "item", item.name, "error", err)
			res.Errors = append(res.Errors, ItemError{Item: item.name, Err: err})
			continue
		}
		res.Succeeded = append(res.Succeeded, item.name)
	}

	res.FinishedAt = c.now()
	c.report(Progress{
		Total:     total,
		Completed: len(res.Succeeded) + len(res.Errors),
		Failed:    len(res.Errors),
		Elapsed:   res.FinishedAt.Sub(res.StartedAt),
	})

	c.logger.InfoContext(ctx, "run finished",
		"event_id", eventID,
		"succeeded", len(res.Succeeded),
		"failed", len(res.Errors),
		"cancelled", res.Canceled,
		"elapsed", res.FinishedAt.Sub(res.StartedAt))
	return res, nil
}

// planItems fixes the working set up front so progress totals never move
// during a run. selected is the capped per-match working set.
func (c *Collector) planItems(eventID int64, selected []match.Match, cfg Config) []workItem {
	var items []workItem

	if cfg.EventStats {
		items = append(items, workItem{
			name: "event stats",
			run: func(ctx context.Context, res *Result) error {
				doc, err := c.fetcher.FetchDocument(ctx, vlr.EventStatsPath(eventID))
				if err != nil {
					return err
				}
				stats, err := extract.EventStats(doc, eventID)
				if err != nil {
					return err
				}
				res.EventStats = stats
				return nil
			},
		})
	}

	if cfg.MapsAgents {
		items = append(items, workItem{
			name: "agent usage",
			run: func(ctx context.Context, res *Result) error {
				doc, err := c.fetcher.FetchDocument(ctx, vlr.EventAgentsPath(eventID))
				if err != nil {
					return err
				}
				usage, maps, err := extract.AgentUsage(doc, eventID)
				if err != nil {
					return err
				}
				res.AgentUsage = usage
				res.MapStats = maps
				return nil
			},
		})
	}

	if !cfg.anyMatchStage() {
		return items
	}

	for _, m := range selected {
		m := m
		if cfg.Details {
			items = append(items, workItem{
				name: fmt.Sprintf("match %d overview", m.ID),
				run: func(ctx context.Context, res *Result) error {
					doc, err := c.fetcher.FetchDocument(ctx, m.Path)
					if err != nil {
						return err
					}
					detail, err := extract.MatchDetailPage(doc, m.ID, m.Path)
					if err != nil {
						return err
					}
					res.MapResults = append(res.MapResults, detail.Maps...)
					res.MatchStats = append(res.MatchStats, detail.Stats...)
					return nil
				},
			})
		}
		if cfg.Economy {
			items = append(items, workItem{
				name: fmt.Sprintf("match %d economy", m.ID),
				run: func(ctx context.Context, res *Result) error {
					path := vlr.MatchTab(m.Path, "economy")
					doc, err := c.fetcher.FetchDocument(ctx, path)
					if err != nil {
						return err
					}
					rows, err := extract.Economy(doc, m.ID, path)
					if err != nil {
						return err
					}
					res.Economies = append(res.Economies, rows...)
					return nil
				},
			})
		}
		if cfg.Performance {
			items = append(items, workItem{
				name: fmt.Sprintf("match %d performance", m.ID),
				run: func(ctx context.Context, res *Result) error {
					path := vlr.MatchTab(m.Path, "performance")
					doc, err := c.fetcher.FetchDocument(ctx, path)
					if err != nil {
						return err
					}
					rows, err := extract.Performance(doc, m.ID, path)
					if err != nil {
						return err
					}
					res.Performances = append(res.Performances, rows...)
					return nil
				},
			})
		}
	}

	return items
}

// selectMatches takes the first limit matches in schedule order, whatever
// their status; match pages of unplayed matches degrade to defaults or a
// per-item error downstream. Only references without a path are skipped.
func selectMatches(matches []match.Match, limit int) []match.Match {
	var out []match.Match
	for _, m := range matches {
		if m.Path == "" {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func (c *Collector) report(p Progress) {
	if c.onProgress != nil {
		c.onProgress(p)
	}
}
