package extract

import (
	"testing"

	"github.com/eprasetya/vlrscout/internal/vlr"
)

const eventFixture = `
<h1 class="wf-title">
	Valorant Champions 2025
</h1>
<div class="event-desc-item">
	<div class="event-desc-item-label">Dates</div>
	<div class="event-desc-item-value">Sep 12 - Oct 5</div>
</div>
<div class="event-desc-item">
	<div class="event-desc-item-label">Prize pool</div>
	<div class="event-desc-item-value">$2,250,000 USD</div>
</div>
<div class="event-desc-item">
	<div class="event-desc-item-label">Location</div>
	<div class="event-desc-item-value">Paris, France</div>
</div>
`

func TestEventHeader(t *testing.T) {
	ev, err := EventHeader(doc(t, eventFixture), 2097)
	if err != nil {
		t.Fatalf("EventHeader() error = %v", err)
	}
	if ev.ID != 2097 {
		t.Errorf("ID = %d", ev.ID)
	}
	if ev.Title != "Valorant Champions 2025" {
		t.Errorf("Title = %q", ev.Title)
	}
	if ev.DatesLabel != "Sep 12 - Oct 5" {
		t.Errorf("DatesLabel = %q", ev.DatesLabel)
	}
	if ev.PrizePool != "$2,250,000 USD" {
		t.Errorf("PrizePool = %q", ev.PrizePool)
	}
	if ev.Region != "Paris, France" {
		t.Errorf("Region = %q", ev.Region)
	}
}

func TestEventHeaderMissingTitle(t *testing.T) {
	_, err := EventHeader(doc(t, `<div></div>`), 2097)
	if err == nil {
		t.Fatal("EventHeader() expected layout error")
	}
	var layoutErr *vlr.LayoutError
	if !asLayoutError(err, &layoutErr) {
		t.Fatalf("error = %T, want *vlr.LayoutError", err)
	}
}
