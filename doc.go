// Package ytsum aggregates the total watch time of a YouTube channel's
// public uploads.
//
// It resolves a channel handle to the channel's public-uploads
// playlist, pages through the playlist with an optional publish-date
// window, fetches each video's duration, and reduces everything to a
// single mixed-unit total.
//
// Quick start:
//
//	client := youtube.NewClient(httpx.New(nil), apiKey)
//	result, err := ytsum.Run(ctx, client, ytsum.Query{Channel: "somechannel"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result != nil {
//		fmt.Println(result.Summary())
//	}
//
// A nil result with a nil error means the channel lookup was not
// unique; the run is a successful no-op.
//
// The pipeline is sequential and fail-fast: there is no retry, no
// backoff and no partial output. When a diagnostic sink is configured
// it always holds the raw bytes of the last API page received, which
// is what you want to look at when a run dies halfway.
package ytsum
