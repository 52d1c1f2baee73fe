package youtube

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSinkTruncatesOnEveryWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	sink := &FileSink{Path: path}

	if err := sink.Overwrite([]byte("first response, quite long")); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	if err := sink.Overwrite([]byte("second")); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("snapshot = %q, want only the last write", got)
	}
}
