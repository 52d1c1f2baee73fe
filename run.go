package ytsum

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ytsum/logctx"
	"ytsum/timespan"
	"ytsum/youtube"
)

// Query describes one aggregation run. It is not modified by Run.
type Query struct {
	// Channel is the channel handle, without the "@" prefix.
	Channel string

	// Start excludes videos published strictly before it. Zero means
	// no lower bound.
	Start time.Time

	// End excludes videos published strictly after it. Zero means no
	// upper bound.
	End time.Time

	// Sink, when non-nil, receives the raw bytes of every playlist
	// page as a last-response snapshot.
	Sink youtube.Sink

	// Progress, when non-nil, is called after each video fetch with
	// the number of videos done and the total to do.
	Progress func(done, total int)
}

// Result is a completed aggregation.
type Result struct {
	// Videos holds every resolved video in listing order.
	Videos []youtube.Video

	// Total is the summed duration of all videos.
	Total timespan.Span
}

// Summary renders the run summary: the total second count and, from
// one minute up, the mixed-unit decomposition with a days ceiling.
func (r *Result) Summary() string {
	s := "Total video duration: " + r.Total.Humanize(timespan.Seconds)
	if r.Total.Seconds() >= 60 {
		s += " (" + r.Total.Humanize(timespan.Days) + ")"
	}
	return s
}

// Run executes the whole pipeline: resolve the channel, list its
// public uploads inside the date window, fetch every video's metadata,
// and sum the durations.
//
// An ambiguous channel lookup (zero or multiple results) is a
// successful no-op: Run logs a warning and returns a nil Result with a
// nil error. Every other failure aborts the run immediately.
func Run(ctx context.Context, client *youtube.Client, q Query) (*Result, error) {
	log := logctx.From(ctx).With("run_id", uuid.NewString(), "channel", q.Channel)
	ctx = logctx.Into(ctx, log)

	playlistID, err := client.ResolveUploads(ctx, q.Channel)
	if err != nil {
		var amb *youtube.AmbiguousChannelError
		if errors.As(err, &amb) {
			log.Warn("channel lookup was not unique, nothing to do", "results", amb.Count)
			return nil, nil
		}
		return nil, err
	}
	log.Info("resolved public uploads playlist", "playlist_id", playlistID)

	items, err := client.ListUploads(ctx, playlistID, youtube.ListOptions{
		Start: q.Start,
		End:   q.End,
		Sink:  q.Sink,
	})
	if err != nil {
		return nil, err
	}
	log.Info("collected playlist items", "count", len(items))

	videos := make([]youtube.Video, 0, len(items))
	var total timespan.Span
	for i, it := range items {
		v, err := client.FetchVideo(ctx, it.VideoID)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
		total += v.Span
		if q.Progress != nil {
			q.Progress(i+1, len(items))
		}
	}
	log.Info("aggregation complete", "videos", len(videos), "total_seconds", total.Seconds())

	return &Result{Videos: videos, Total: total}, nil
}
