package service

import (
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

// dateFormats are tried in order, first successful parse wins. The registry
// export mixes ISO dates, dotted Russian dates and full timestamps.
var dateFormats = []string{
	"2006-01-02",
	"02.01.2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-0700",
}

// CoerceText returns the trimmed element text, or def when the element is
// absent or its text is empty. Never fails.
func CoerceText(s *string, def string) string {
	if s == nil {
		return def
	}
	text := strings.TrimSpace(*s)
	if text == "" {
		return def
	}
	return text
}

// CoerceDate parses an element's text into a calendar date, dropping any
// time-of-day. A trailing "+hh:mm" style offset is stripped before parsing.
// Returns nil (and logs a warning) when no format matches.
func CoerceDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	text := strings.TrimSpace(*s)
	if i := strings.Index(text, "+"); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}

	for _, layout := range dateFormats {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d
	}

	log.Warnf("Unrecognized date value: %q", *s)
	return nil
}

// CoerceBool maps "1" to true and "0" to false. Anything else, including an
// absent element, is unknown (nil) rather than false.
func CoerceBool(s *string) *bool {
	if s == nil {
		return nil
	}
	switch strings.TrimSpace(*s) {
	case "1":
		v := true
		return &v
	case "0":
		v := false
		return &v
	}
	return nil
}
