package ytsum

import (
	"ytsum/httpx"
	"ytsum/timespan"
	"ytsum/youtube"
)

// Error kinds re-exported for library users. All of them support the
// standard errors.As pattern:
//
//	var decErr *ytsum.DecodeError
//	if errors.As(err, &decErr) {
//		fmt.Printf("response missing %s\n", decErr.Field)
//	}
//
// Transport failures from the Data API additionally surface as
// *googleapi.Error carrying the HTTP status and the API's message.
type (
	// DecodeError indicates an API response was missing an expected field.
	DecodeError = youtube.DecodeError
	// AmbiguousChannelError indicates a channel lookup did not return
	// exactly one result. Run converts it into a successful no-op.
	AmbiguousChannelError = youtube.AmbiguousChannelError
	// TimestampError indicates a publish timestamp could not be parsed.
	TimestampError = youtube.TimestampError
	// DurationParseError indicates a video duration string could not be
	// parsed.
	DurationParseError = timespan.ParseError
	// StatusError indicates a non-2xx response with no decodable API
	// error body.
	StatusError = httpx.StatusError
)
