package activity

import "time"

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyCounts groups timestamps by calendar day in loc. Days appear in the
// order first seen, so ascending input gives a chronological series.
func DailyCounts(times []time.Time, loc *time.Location) []DayCount {
	index := make(map[string]int)
	out := make([]DayCount, 0)
	for _, t := range times {
		day := t.In(loc).Format("Jan 02")
		if i, ok := index[day]; ok {
			out[i].Count++
			continue
		}
		index[day] = len(out)
		out = append(out, DayCount{Date: day, Count: 1})
	}
	return out
}
