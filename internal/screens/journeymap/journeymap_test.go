package journeymap

import (
	"context"
	"strings"
	"testing"

	"github.com/hamid/juzjourney/internal/content"
	"github.com/hamid/juzjourney/internal/progress"
)

type memRepo struct {
	doc []byte
}

func (r *memRepo) LoadDocument(context.Context) ([]byte, error)   { return r.doc, nil }
func (r *memRepo) SaveDocument(_ context.Context, b []byte) error { r.doc = b; return nil }
func (r *memRepo) DeleteDocument(context.Context) error           { r.doc = nil; return nil }

func newTestJourney(t *testing.T) (*JourneyScreen, *progress.Tracker) {
	t.Helper()
	tracker, err := progress.NewTracker(context.Background(), &memRepo{})
	if err != nil {
		t.Fatal(err)
	}
	return New(tracker, nil, nil), tracker
}

func TestOnlyFirstSurahAvailable(t *testing.T) {
	j, _ := newTestJourney(t)

	surahCount := len(content.Surahs())
	for i, item := range j.menu.Items[:surahCount] {
		if i == 0 && item.Disabled {
			t.Error("first surah should be available")
		}
		if i > 0 && !item.Disabled {
			t.Errorf("surah %d should be locked", i)
		}
	}
}

func TestCompletionUnlocksNext(t *testing.T) {
	j, tracker := newTestJourney(t)

	first := content.Surahs()[0]
	if err := tracker.CompleteSurah(context.Background(), first.ID); err != nil {
		t.Fatal(err)
	}
	items := j.buildItems()

	if items[0].Disabled {
		t.Error("completed surah should stay selectable")
	}
	if !strings.Contains(items[0].Note, "completed") {
		t.Errorf("note = %q, want completed marker", items[0].Note)
	}
	if items[1].Disabled {
		t.Error("second surah should unlock after the first completes")
	}
}

func TestCertificateNoteCountsRemaining(t *testing.T) {
	j, tracker := newTestJourney(t)

	items := j.buildItems()
	cert := items[len(items)-1]
	if cert.Label != "Certificate" {
		t.Fatalf("last item = %q, want Certificate", cert.Label)
	}
	if !strings.Contains(cert.Note, "remaining") {
		t.Errorf("note = %q, want remaining count", cert.Note)
	}

	ctx := context.Background()
	for _, s := range content.Surahs() {
		if err := tracker.CompleteSurah(ctx, s.ID); err != nil {
			t.Fatal(err)
		}
	}
	items = j.buildItems()
	cert = items[len(items)-1]
	if cert.Note != "unlocked!" {
		t.Errorf("note = %q, want unlocked!", cert.Note)
	}
}

func TestTitleUsesName(t *testing.T) {
	j, tracker := newTestJourney(t)

	if j.Title() != "Journey" {
		t.Errorf("title = %q, want Journey before onboarding", j.Title())
	}
	if err := tracker.SetName(context.Background(), "Amina"); err != nil {
		t.Fatal(err)
	}
	if j.Title() != "Amina's Journey" {
		t.Errorf("title = %q, want Amina's Journey", j.Title())
	}
}
