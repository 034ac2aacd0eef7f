package timeutils

import (
	"time"

	"emperror.dev/errors"
)

// GitHub emits RFC 3339 timestamps ("2018-05-12T10:15:30Z"), but offsets
// without a colon or without minutes show up from proxies and older
// Enterprise versions.
var wireLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
}

// DisplayLayout is how timestamps are shown to the user.
const DisplayLayout = "2006-01-02 15:04:05"

// ParseWire parses a timestamp in one of the accepted API wire formats.
func ParseWire(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range wireLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, errors.WrapIff(firstErr, "unparsable timestamp %q", s)
}
