// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/ytlist/internal/models"
)

// Records converts rows to [models.TrackRecord] values.
func Records(rows ...models.Row) []models.TrackRecord {
	out := make([]models.TrackRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	return out
}

// SamplePlaylist covers each resolution path, in order:
// linked artist, joined links, direct text, no data, title match, year, auto-generated.
func SamplePlaylist() []models.TrackRecord {
	return Records(
		models.Row{TitleText: "Water", Artists: []string{"Tyla"}},
		models.Row{TitleText: "Duet", Artists: []string{"A", "B"}},
		models.Row{TitleText: "Body", DirectText: "MK & Dom Dolla • Single • 2023"},
		models.Row{TitleText: "Lost"},
		models.Row{TitleText: "Rain", DirectText: "Rain • Single"},
		models.Row{TitleText: "Old Song", DirectText: "2021"},
		models.Row{TitleText: "Topic", DirectText: "Someone - Topic • auto-generated by YouTube"},
	)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) *LimitedWriter {
	return &LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
