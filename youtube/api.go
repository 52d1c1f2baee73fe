// Package youtube is the YouTube Data API v3 layer: channel handle
// resolution, paginated uploads listing with date filtering, and
// per-video metadata retrieval. Each endpoint is decoded once into a
// typed struct; a missing field is a decode error at this boundary,
// not a lookup failure somewhere downstream.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"ytsum/httpx"
	"ytsum/logctx"
	"ytsum/timespan"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// pageSize is the playlistItems page size, the API maximum.
	pageSize = 50

	// publicUploadsPrefix replaces the conventional "UU" playlist
	// prefix. The "UU" listing mixes shorts, live streams and
	// unlisted items into the uploads; "UULF" restricts it to public
	// long-form uploads.
	publicUploadsPrefix = "UULF"
)

// Client issues YouTube Data API v3 requests. All calls are blocking
// and fail fast: any transport, status or decode failure propagates
// immediately.
type Client struct {
	// BaseURL is the API root. Overridable for tests.
	BaseURL string

	http *httpx.Client
	key  string
}

// NewClient creates an API client that authenticates with the given
// API key.
func NewClient(h *httpx.Client, apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		http:    h,
		key:     apiKey,
	}
}

func (c *Client) endpoint(resource string, q url.Values) string {
	q.Set("key", c.key)
	return c.BaseURL + "/" + resource + "?" + q.Encode()
}

// ResolveUploads resolves a channel handle (without "@") to the ID of
// its public-uploads playlist. A lookup that does not report exactly
// one result returns an *AmbiguousChannelError; callers should treat
// that as a no-op, not a failure.
func (c *Client) ResolveUploads(ctx context.Context, handle string) (string, error) {
	q := url.Values{}
	q.Set("part", "contentDetails")
	q.Set("forHandle", handle)

	resp, err := c.http.Get(ctx, c.endpoint("channels", q))
	if err != nil {
		return "", err
	}

	var doc channelListResponse
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return "", fmt.Errorf("decode channels response: %w", err)
	}

	if doc.PageInfo.TotalResults != 1 {
		return "", &AmbiguousChannelError{Handle: handle, Count: doc.PageInfo.TotalResults}
	}
	if len(doc.Items) == 0 {
		return "", &DecodeError{Field: "items"}
	}

	uploads := doc.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", &DecodeError{Field: "contentDetails.relatedPlaylists.uploads"}
	}

	return PublicUploadsID(uploads), nil
}

// PublicUploadsID swaps the playlist ID's two-character prefix for the
// four-character public-uploads prefix. Pure string transform, no
// network call.
func PublicUploadsID(uploadsID string) string {
	if len(uploadsID) < 2 {
		return uploadsID
	}
	return publicUploadsPrefix + uploadsID[2:]
}

// ListUploads pages through the playlist and returns, in listing
// order, every item whose publish timestamp falls inside the
// configured bounds (inclusive on both ends). Every raw page body is
// forwarded to opts.Sink before anything else happens to it.
//
// An item timestamp that fails to parse aborts the listing; skipping
// items would silently change the total.
func (c *Client) ListUploads(ctx context.Context, playlistID string, opts ListOptions) ([]Item, error) {
	log := logctx.From(ctx)

	var items []Item
	cur := &PageCursor{}

	for {
		q := url.Values{}
		q.Set("part", "contentDetails")
		q.Set("playlistId", playlistID)
		q.Set("maxResults", strconv.Itoa(pageSize))
		if cur.Token != "" {
			q.Set("pageToken", cur.Token)
		}

		resp, err := c.http.Get(ctx, c.endpoint("playlistItems", q))
		if err != nil {
			return nil, err
		}

		if opts.Sink != nil {
			if err := opts.Sink.Overwrite(resp.Body); err != nil {
				return nil, fmt.Errorf("write response snapshot: %w", err)
			}
		}

		var doc playlistItemsResponse
		if err := json.Unmarshal(resp.Body, &doc); err != nil {
			return nil, fmt.Errorf("decode playlistItems response: %w", err)
		}

		for _, it := range doc.Items {
			if it.ContentDetails.VideoID == "" {
				return nil, &DecodeError{Field: "contentDetails.videoId"}
			}
			published, err := time.Parse(time.RFC3339, it.ContentDetails.VideoPublishedAt)
			if err != nil {
				return nil, &TimestampError{
					Field: "contentDetails.videoPublishedAt",
					Value: it.ContentDetails.VideoPublishedAt,
					Err:   err,
				}
			}
			if !opts.Start.IsZero() && published.Before(opts.Start) {
				continue
			}
			if !opts.End.IsZero() && published.After(opts.End) {
				continue
			}
			items = append(items, Item{
				VideoID:     it.ContentDetails.VideoID,
				PublishedAt: published,
			})
		}

		cur.Observe(len(doc.Items), doc.NextPageToken, doc.PageInfo.TotalResults)
		log.Debug("fetched playlist page",
			"page_items", len(doc.Items),
			"kept", len(items),
			"processed", cur.Processed,
			"total", cur.Total,
		)
		if cur.Done() {
			return items, nil
		}
	}
}

// FetchVideo retrieves one video's metadata and parses its duration.
// The returned Video always carries a valid Span; a duration that does
// not parse fails the call with an error naming the offending field.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*Video, error) {
	q := url.Values{}
	q.Set("part", "snippet,contentDetails")
	q.Set("id", videoID)

	resp, err := c.http.Get(ctx, c.endpoint("videos", q))
	if err != nil {
		return nil, err
	}

	var doc videoListResponse
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return nil, fmt.Errorf("decode videos response: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, &DecodeError{Field: "items"}
	}

	it := doc.Items[0]
	published, err := time.Parse(time.RFC3339, it.Snippet.PublishedAt)
	if err != nil {
		return nil, &TimestampError{
			Field: "snippet.publishedAt",
			Value: it.Snippet.PublishedAt,
			Err:   err,
		}
	}

	if it.ContentDetails.Duration == "" {
		return nil, &DecodeError{Field: "contentDetails.duration"}
	}
	span, err := timespan.Parse(it.ContentDetails.Duration)
	if err != nil {
		return nil, fmt.Errorf("video %s: field contentDetails.duration: %w", videoID, err)
	}

	return &Video{
		ID:          videoID,
		PublishedAt: published,
		Title:       it.Snippet.Title,
		Duration:    it.ContentDetails.Duration,
		Span:        span,
	}, nil
}
