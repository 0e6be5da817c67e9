package activity

import (
	"fmt"
	"strings"
	"time"
)

// MaxSummaryEntries bounds how many entries go into one prompt.
const MaxSummaryEntries = 50

const timestampLayout = "1/2/2006, 3:04:05 PM"

// InvalidTimestamp stands in for a created_at that could not be parsed.
const InvalidTimestamp = "Invalid Date"

// Layouts accepted by ParseTimestamp: JSON/ISO first, then Postgres text.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp reads a client-supplied created_at. Values without a zone
// are taken as UTC. It returns the zero time when nothing matches.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

const promptTemplate = `Please provide a concise, natural-language summary of the following activity logs. Focus on key patterns, trends, and notable events. Write in a friendly, professional tone as if explaining to a colleague.

Activity Logs:
%s

Summary:`

// FormatLine renders "[<timestamp>] <actor>: <action>[ - <details>]".
func FormatLine(e Entry, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("[")
	if e.CreatedAt.IsZero() {
		b.WriteString(InvalidTimestamp)
	} else {
		b.WriteString(e.CreatedAt.In(loc).Format(timestampLayout))
	}
	b.WriteString("] ")
	b.WriteString(e.DisplayName())
	b.WriteString(": ")
	b.WriteString(e.Action)
	if e.Details != nil && *e.Details != "" {
		b.WriteString(" - ")
		b.WriteString(*e.Details)
	}
	return b.String()
}

// Truncate keeps the first MaxSummaryEntries entries.
func Truncate(entries []Entry) []Entry {
	if len(entries) > MaxSummaryEntries {
		return entries[:MaxSummaryEntries]
	}
	return entries
}

// BuildPrompt formats entries one per line, in the order given.
func BuildPrompt(entries []Entry, loc *time.Location) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, FormatLine(e, loc))
	}
	return fmt.Sprintf(promptTemplate, strings.Join(lines, "\n"))
}
