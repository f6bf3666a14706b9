package normalize

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	md, err := New().Normalize("<html><body><h1>Ta2O5</h1><p>Bright <b>amorphous</b></p></body></html>")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(md, "# Ta2O5") {
		t.Errorf("heading missing: %q", md)
	}
	if !strings.Contains(md, "**amorphous**") {
		t.Errorf("bold missing: %q", md)
	}
}

func TestSnapshot(t *testing.T) {
	got := string(Snapshot("https://x/?a=1&book=Ag", "2026-01-02T03:04:05Z", "\n# Ag\n\n"))
	want := "<!-- source: https://x/?a=1&book=Ag -->\n<!-- fetched_at: 2026-01-02T03:04:05Z -->\n\n# Ag\n"
	if got != want {
		t.Errorf("Snapshot =\n%q\nwant\n%q", got, want)
	}
}
