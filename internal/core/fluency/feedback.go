package fluency

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Feedback maps an analysis to ordered coaching messages: overall band, pace,
// fillers, pauses, grammar, then reinforcement. The list is never empty
func Feedback(a Analysis) []string {
	var out []string
	switch s := a.FluencyScore; {
	case s >= 90:
		out = append(out, "Excellent fluency! Your speech is clear and well-paced.")
	case s >= 75:
		out = append(out, "Good fluency with room for minor improvements.")
	case s >= 60:
		out = append(out, "Moderate fluency. Focus on the areas mentioned below.")
	default:
		out = append(out, "Fluency needs improvement. Practice regularly for better results.")
	}

	wpm := strconv.FormatFloat(a.WPM, 'f', -1, 64)
	switch {
	case a.WPM < 80:
		out = append(out, fmt.Sprintf("Your speaking pace is slow (%s WPM). Try to speak at 120-150 WPM for better clarity.", wpm))
	case a.WPM > 180:
		out = append(out, fmt.Sprintf("You're speaking too fast (%s WPM). Slow down to 120-150 WPM for better comprehension.", wpm))
	case a.WPM >= 120 && a.WPM <= 150:
		out = append(out, fmt.Sprintf("Perfect speaking pace (%s WPM)! This is ideal for clear communication.", wpm))
	}

	if f := a.FillerWords; f.TotalCount > 5 {
		out = append(out, fmt.Sprintf("You used %d filler words. Try to eliminate words like 'um', 'uh', and 'like'.", f.TotalCount))
		if len(f.Details) > 0 {
			out = append(out, "Most common fillers: "+topFillers(f.Details, 3))
		}
	}
	if a.Pauses.Count > 3 {
		out = append(out, fmt.Sprintf("Detected %d pauses. Practice smooth transitions between thoughts.", a.Pauses.Count))
	}
	if n := len(a.GrammarErrors); n > 0 {
		out = append(out, fmt.Sprintf("Found %d potential grammar issues. Review your sentence structure.", n))
	}

	if a.FillerWords.TotalCount <= 2 {
		out = append(out, "Great job minimizing filler words!")
	}
	if a.Pauses.Count <= 2 {
		out = append(out, "Excellent speech continuity with minimal pauses!")
	}
	return out
}

// topFillers renders the n most frequent fillers; ties keep lexicon order
func topFillers(details []FillerDetail, n int) string {
	ds := append([]FillerDetail(nil), details...)
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Count > ds[j].Count })
	if len(ds) > n {
		ds = ds[:n]
	}
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = fmt.Sprintf("'%s' (%d)", d.Word, d.Count)
	}
	return strings.Join(parts, ", ")
}
