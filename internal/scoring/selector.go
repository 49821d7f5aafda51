package scoring

import (
	"fmt"
	"strings"

	"github.com/ecoroute/ecoroute/internal/routing"
)

// SelectExtremes returns the route with the lowest pollution index (eco) and
// the route with the highest (polluted). Ties are broken by list order in
// both directions. With a single candidate, eco and polluted are the same
// route; that is expected, not an error.
func SelectExtremes(metrics []RouteMetrics) (eco, polluted *RouteMetrics) {
	if len(metrics) == 0 {
		return nil, nil
	}

	ecoIdx, polIdx := 0, 0
	for i := 1; i < len(metrics); i++ {
		if metrics[i].PollutionIndex < metrics[ecoIdx].PollutionIndex {
			ecoIdx = i
		}
		if metrics[i].PollutionIndex > metrics[polIdx].PollutionIndex {
			polIdx = i
		}
	}
	return &metrics[ecoIdx], &metrics[polIdx]
}

// Instruction renders a human-readable instruction for a maneuver step.
// Unrecognized maneuver types fall back to a generic phrasing; this never
// fails.
func Instruction(st routing.Step) string {
	name := st.Name
	if name == "" {
		name = "road"
	}
	m := st.Maneuver

	switch m.Type {
	case "turn":
		return joinWords("Turn", m.Modifier, "onto", name)
	case "depart":
		return joinWords("Head", m.Modifier, "on", name)
	case "arrive":
		return "Arrive at destination"
	case "roundabout":
		if m.Exit != nil {
			return fmt.Sprintf("At roundabout, take exit %d onto %s", *m.Exit, name)
		}
		return "At roundabout, continue onto " + name
	case "new name", "merge", "continue":
		return "Continue onto " + name
	case "fork":
		return joinWords("Keep", m.Modifier, "onto", name)
	default:
		return "Continue on " + name
	}
}

// joinWords joins the non-empty words with single spaces, so an absent
// modifier does not leave a double space.
func joinWords(words ...string) string {
	parts := words[:0]
	for _, w := range words {
		if w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ")
}
