package collector

import (
	"context"
	"testing"

	"github.com/eprasetya/vlrscout/internal/vlr"
)

func TestResolveWalksPagesAndDeduplicates(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			"/event/matches/2097/?series_id=all": listingPage(
				listingEntry(510219, "SEN", "FNC", "Completed"),
				listingEntry(510230, "DRX", "LOUD", "Completed"),
			),
			"/event/matches/2097/?series_id=all&page=2": listingPage(
				listingEntry(510230, "DRX", "LOUD", "Completed"),
				listingEntry(510241, "EDG", "TH", "Upcoming"),
			),
			"/event/matches/2097/?series_id=all&page=3": listingPage(),
		},
	}

	r := NewEventResolver(fetcher, nil)
	matches, err := r.Resolve(context.Background(), 2097)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3 deduplicated", len(matches))
	}
	wantIDs := []int64{510219, 510230, 510241}
	for i, want := range wantIDs {
		if matches[i].ID != want {
			t.Errorf("matches[%d].ID = %d, want %d", i, matches[i].ID, want)
		}
	}
}

func TestResolveStopsWhenPageAddsNothingNew(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			"/event/matches/2097/?series_id=all": listingPage(
				listingEntry(510219, "SEN", "FNC", "Completed"),
			),
			"/event/matches/2097/?series_id=all&page=2": listingPage(
				listingEntry(510219, "SEN", "FNC", "Completed"),
			),
		},
	}

	r := NewEventResolver(fetcher, nil)
	matches, err := r.Resolve(context.Background(), 2097)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if len(fetcher.calls) != 2 {
		t.Fatalf("fetched %d pages, want 2", len(fetcher.calls))
	}
}

func TestResolveFirstPageFailureIsFatal(t *testing.T) {
	fetcher := &fakeFetcher{
		errs: map[string]error{
			"/event/matches/2097/?series_id=all": &vlr.FetchError{Kind: vlr.FetchStatus, URL: "x", StatusCode: 503},
		},
	}

	r := NewEventResolver(fetcher, nil)
	if _, err := r.Resolve(context.Background(), 2097); err == nil {
		t.Fatal("Resolve() expected error for first page failure")
	}
}

func TestResolveFirstPageWithoutListingIsFatal(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			"/event/matches/2097/?series_id=all": `<div class="col"><h1>Page not found</h1></div>`,
		},
	}

	r := NewEventResolver(fetcher, nil)
	if _, err := r.Resolve(context.Background(), 2097); err == nil {
		t.Fatal("Resolve() expected error for a first page without listing markup")
	}
}

func TestResolveLaterPageNotFoundEndsPagination(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			"/event/matches/2097/?series_id=all": listingPage(
				listingEntry(510219, "SEN", "FNC", "Completed"),
			),
		},
		errs: map[string]error{
			"/event/matches/2097/?series_id=all&page=2": &vlr.FetchError{Kind: vlr.FetchStatus, URL: "x", StatusCode: 404},
		},
	}

	r := NewEventResolver(fetcher, nil)
	matches, err := r.Resolve(context.Background(), 2097)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
}

func TestResolveLaterPageFailureKeepsEarlierPages(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			"/event/matches/2097/?series_id=all": listingPage(
				listingEntry(510219, "SEN", "FNC", "Completed"),
			),
		},
		errs: map[string]error{
			"/event/matches/2097/?series_id=all&page=2": &vlr.FetchError{Kind: vlr.FetchNetwork, URL: "x"},
		},
	}

	r := NewEventResolver(fetcher, nil)
	matches, err := r.Resolve(context.Background(), 2097)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want the first page kept", len(matches))
	}
}
