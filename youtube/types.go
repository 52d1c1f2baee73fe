package youtube

import (
	"time"

	"ytsum/timespan"
)

// Item is one playlist entry surviving the date filter: the video ID
// to resolve later and the publish timestamp that let it through.
type Item struct {
	VideoID     string
	PublishedAt time.Time
}

// Video is one fully resolved video. A Video only exists with a
// successfully parsed duration; FetchVideo fails instead of returning
// a record whose Span is unset.
type Video struct {
	ID          string
	PublishedAt time.Time
	Title       string
	// Duration is the raw duration string as reported by the API.
	Duration string
	// Span is the parsed duration in seconds.
	Span timespan.Span
}

// ListOptions configures playlist listing.
type ListOptions struct {
	// Start excludes items published strictly before it. Zero means
	// no lower bound.
	Start time.Time

	// End excludes items published strictly after it. Zero means no
	// upper bound.
	End time.Time

	// Sink, when non-nil, receives every raw page response as a
	// last-response snapshot.
	Sink Sink
}

// pageInfo is the pagination envelope shared by list endpoints.
type pageInfo struct {
	TotalResults int64 `json:"totalResults"`
}

// channelListResponse is the subset of channels.list this tool reads.
type channelListResponse struct {
	PageInfo pageInfo `json:"pageInfo"`
	Items    []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// playlistItemsResponse is the subset of playlistItems.list this tool
// reads.
type playlistItemsResponse struct {
	NextPageToken string   `json:"nextPageToken"`
	PageInfo      pageInfo `json:"pageInfo"`
	Items         []struct {
		ContentDetails struct {
			VideoID          string `json:"videoId"`
			VideoPublishedAt string `json:"videoPublishedAt"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// videoListResponse is the subset of videos.list this tool reads.
type videoListResponse struct {
	Items []struct {
		Snippet struct {
			PublishedAt string `json:"publishedAt"`
			Title       string `json:"title"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}
