package dom

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/ytlist/internal/models"
	"github.com/desertthunder/ytlist/internal/shared"
)

const playlistPage = `<!DOCTYPE html>
<html><body>
<ytmusic-playlist-shelf-renderer>
  <ytmusic-responsive-list-item-renderer>
    <div class="title-column">
      <div class="title"><span class="yt-formatted-string"> Water </span></div>
    </div>
    <div class="secondary-flex-columns">
      <yt-formatted-string class="flex-column"><a class="yt-simple-endpoint" href="channel/1">Tyla</a></yt-formatted-string>
      <yt-formatted-string class="flex-column"><a class="yt-simple-endpoint" href="browse/2">Water (Single)</a></yt-formatted-string>
    </div>
  </ytmusic-responsive-list-item-renderer>
  <ytmusic-responsive-list-item-renderer>
    <div class="title"><span class="yt-formatted-string">Body</span></div>
    <div class="secondary-flex-columns">
      <yt-formatted-string class="flex-column">  MK &amp; Dom Dolla • Single • 2023 </yt-formatted-string>
      <yt-formatted-string class="flex-column">3:12</yt-formatted-string>
    </div>
  </ytmusic-responsive-list-item-renderer>
  <ytmusic-responsive-list-item-renderer>
    <div class="secondary-flex-columns"></div>
  </ytmusic-responsive-list-item-renderer>
</ytmusic-playlist-shelf-renderer>
</body></html>`

func TestLoadHTML(t *testing.T) {
	t.Run("default selectors", func(t *testing.T) {
		records, err := LoadHTML(strings.NewReader(playlistPage), DefaultSelectors())
		if err != nil {
			t.Fatalf("LoadHTML() error = %v", err)
		}

		if len(records) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(records))
		}

		first := records[0]
		if first.Title() != "Water" {
			t.Errorf("row 1 title = %q", first.Title())
		}
		if got := first.ArtistCandidates(); len(got) != 2 || got[0] != "Tyla" {
			t.Errorf("row 1 artist candidates = %v", got)
		}

		second := records[1]
		if second.Title() != "Body" {
			t.Errorf("row 2 title = %q", second.Title())
		}
		if len(second.ArtistCandidates()) != 0 {
			t.Errorf("row 2 should have no links, got %v", second.ArtistCandidates())
		}
		if got := second.CombinedText(); got != "  MK & Dom Dolla • Single • 2023 " {
			t.Errorf("row 2 combined text = %q", got)
		}

		third := records[2]
		if third.Title() != "" || third.CombinedText() != "" || len(third.ArtistCandidates()) != 0 {
			t.Errorf("row 3 should be empty, got %q %q %v", third.Title(), third.CombinedText(), third.ArtistCandidates())
		}
	})

	t.Run("no matching rows", func(t *testing.T) {
		records, err := LoadHTML(strings.NewReader("<html><body><p>loading…</p></body></html>"), DefaultSelectors())
		if err != nil {
			t.Fatalf("LoadHTML() error = %v", err)
		}
		if records == nil || len(records) != 0 {
			t.Errorf("expected empty non-nil rows, got %#v", records)
		}
	})

	t.Run("custom selectors", func(t *testing.T) {
		page := `<ul><li class="row"><b>One</b><i>Someone</i></li><li class="row"><b>Two</b></li></ul>`
		sel := Selectors{Track: "li.row", Title: "b", ArtistLink: "i", DirectText: "em"}

		records, err := LoadHTML(strings.NewReader(page), sel)
		if err != nil {
			t.Fatalf("LoadHTML() error = %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(records))
		}
		if records[0].Title() != "One" || records[0].ArtistCandidates()[0] != "Someone" {
			t.Errorf("unexpected first row")
		}
		if records[1].Title() != "Two" {
			t.Errorf("unexpected second row title %q", records[1].Title())
		}
	})

	t.Run("invalid selector", func(t *testing.T) {
		sel := DefaultSelectors()
		sel.Title = "div[["

		_, err := LoadHTML(strings.NewReader(playlistPage), sel)
		if !errors.Is(err, shared.ErrInvalidSelector) {
			t.Errorf("expected ErrInvalidSelector, got %v", err)
		}
	})
}

func TestLoadJSON(t *testing.T) {
	tt := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "rows", input: `[{"title":"Water","artists":["Tyla"]},{"title":"Body","text":"MK & Dom Dolla • Single"}]`, want: 2},
		{name: "empty array", input: `[]`, want: 0},
		{name: "empty input", input: ``, want: 0},
		{name: "malformed", input: `[{"title":`, wantErr: shared.ErrInvalidInput},
		{name: "wrong shape", input: `{"title":"Water"}`, wantErr: shared.ErrInvalidInput},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			records, err := LoadJSON(strings.NewReader(tc.input))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("LoadJSON() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadJSON() error = %v", err)
			}
			if len(records) != tc.want {
				t.Errorf("LoadJSON() rows = %d, want %d", len(records), tc.want)
			}
		})
	}
}

func TestSelectors(t *testing.T) {
	t.Run("Merge keeps defaults for blanks", func(t *testing.T) {
		got := DefaultSelectors().Merge(Selectors{Track: "li", Title: "  "})
		if got.Track != "li" {
			t.Errorf("track = %q, want li", got.Track)
		}
		if got.Title != DefaultSelectors().Title {
			t.Errorf("title = %q, want default", got.Title)
		}
	})

	t.Run("FromConfig", func(t *testing.T) {
		got := FromConfig(shared.DefaultConfig().Selectors)
		if got != DefaultSelectors() {
			t.Errorf("FromConfig(default) = %+v, want %+v", got, DefaultSelectors())
		}

		got = FromConfig(shared.SelectorsConfig{DirectText: "span.byline"})
		if got.DirectText != "span.byline" || got.Track != DefaultSelectors().Track {
			t.Errorf("unexpected selectors %+v", got)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := DefaultSelectors().Validate(); err != nil {
			t.Errorf("default selectors should validate: %v", err)
		}

		sel := DefaultSelectors()
		sel.Track = ""
		if err := sel.Validate(); !errors.Is(err, shared.ErrInvalidSelector) {
			t.Errorf("expected ErrInvalidSelector for empty selector, got %v", err)
		}
	})
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "playlist.html")
	jsonPath := filepath.Join(dir, "rows.json")

	if err := os.WriteFile(htmlPath, []byte(playlistPage), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := os.WriteFile(jsonPath, []byte(`[{"title":"Water","artists":["Tyla"]}]`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	t.Run("auto html", func(t *testing.T) {
		records, err := Open(htmlPath, FormatAuto, DefaultSelectors())
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if len(records) != 3 {
			t.Errorf("expected 3 rows, got %d", len(records))
		}
	})

	t.Run("auto json", func(t *testing.T) {
		records, err := Open(jsonPath, "", DefaultSelectors())
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 row, got %d", len(records))
		}
		if _, ok := records[0].(models.Row); !ok {
			t.Errorf("expected models.Row, got %T", records[0])
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "nope.html"), FormatHTML, DefaultSelectors())
		if !errors.Is(err, shared.ErrReadInput) {
			t.Errorf("expected ErrReadInput, got %v", err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Open(htmlPath, "xml", DefaultSelectors())
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

func TestDetectFormat(t *testing.T) {
	tt := []struct {
		path, format, want string
	}{
		{"page.html", "auto", FormatHTML},
		{"page.HTM", "", FormatHTML},
		{"rows.JSON", "auto", FormatJSON},
		{"-", "auto", FormatHTML},
		{"rows.json", "HTML", FormatHTML},
		{"page.html", "json", FormatJSON},
	}

	for _, tc := range tt {
		got, err := DetectFormat(tc.path, tc.format)
		if err != nil {
			t.Errorf("DetectFormat(%q, %q) error = %v", tc.path, tc.format, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DetectFormat(%q, %q) = %q, want %q", tc.path, tc.format, got, tc.want)
		}
	}
}
