package collector

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"

	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
	"github.com/eprasetya/vlrscout/internal/vlr"
	"github.com/eprasetya/vlrscout/internal/vlr/extract"
)

// Fetcher is the one network dependency of this package. *vlr.Fetcher
// satisfies it; tests substitute canned documents.
type Fetcher interface {
	FetchDocument(ctx context.Context, path string) (*goquery.Document, error)
}

// maxListingPages is a guard against a pagination loop that never drains;
// real events stay well under it.
const maxListingPages = 50

// EventResolver walks an event's paginated match listing and returns every
// match it references, deduplicated by match ID in first-seen order.
type EventResolver struct {
	fetcher Fetcher
	logger  *logging.Logger
}

func NewEventResolver(fetcher Fetcher, logger *logging.Logger) *EventResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventResolver{fetcher: fetcher, logger: logger}
}

// Resolve fetches listing pages until one comes back empty or adds nothing
// new. A failed fetch or an unrecognizable page is fatal on page one since
// nothing is known about the event yet; either on a later page ends
// pagination with what was already gathered.
func (r *EventResolver) Resolve(ctx context.Context, eventID int64) ([]match.Match, error) {
	seen := make(map[int64]struct{})
	var out []match.Match

	for page := 1; page <= maxListingPages; page++ {
		doc, err := r.fetcher.FetchDocument(ctx, vlr.EventMatchesPath(eventID, page))
		if err != nil {
			if page == 1 {
				return nil, crerr.Wrapf(err, "resolve event %d", eventID)
			}
			// A 404 past the first page just means the listing ran out.
			if vlr.IsNotFound(err) {
				break
			}
			r.logger.WarnContext(ctx, "match listing page failed, keeping earlier pages",
				"event_id", eventID, "page", page, "error", err)
			return out, nil
		}

		items, err := extract.MatchList(doc, eventID)
		if err != nil {
			// Page one without listing markup means a dead or wrong
			// reference; a later page without it is the end of the listing.
			if page == 1 {
				return nil, crerr.Wrapf(err, "resolve event %d", eventID)
			}
			break
		}

		added := 0
		for _, m := range items {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			out = append(out, m)
			added++
		}
		if added == 0 {
			break
		}
	}

	return out, nil
}
