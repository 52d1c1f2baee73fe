package youtube

import "os"

// Sink receives a snapshot of the most recent raw API response. Each
// write fully replaces the previous contents; it is a last-response
// snapshot for post-mortem inspection, not a log.
type Sink interface {
	Overwrite(data []byte) error
}

// FileSink writes snapshots to a file, truncating it on every write.
type FileSink struct {
	// Path is the target file. It is created if missing.
	Path string
}

// Overwrite truncates the file and writes the snapshot.
func (s *FileSink) Overwrite(data []byte) error {
	return os.WriteFile(s.Path, data, 0644)
}
