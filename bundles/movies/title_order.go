package movies

import (
	"regexp"
	"strconv"
	"strings"
)

// OrderLast is the sort key assigned to titles without ordering markers.
// Unordered titles sink to the end of any numeric sort.
const OrderLast = 9999

// DefaultSeason is assumed when a title carries no season marker.
const DefaultSeason = 1

var (
	seasonRegexp     = regexp.MustCompile(`(?i)s(?:eason)?\s*(\d+)`)
	episodeRegexp    = regexp.MustCompile(`(?i)e(?:pisode)?\s*(\d+)`)
	standaloneRegexp = regexp.MustCompile(`\b(\d+)\b`)
	leadingRegexp    = regexp.MustCompile(`^(\d+)\.`)
)

// ExtractEpisodeNumber derives (season, episode) sort keys from a title.
//
// "s2e5", "Season 2 Episode 5" and mixtures of both map to (2, 5). A title
// with a season marker but no episode marker falls back to the first
// standalone number outside the season marker, so "Season 3 - 12" maps to
// (3, 12). Titles without markers get (DefaultSeason, OrderLast).
func ExtractEpisodeNumber(title string) (int, int) {
	season := DefaultSeason
	episode := OrderLast

	seasonMatch := seasonRegexp.FindStringSubmatch(title)
	if seasonMatch != nil {
		if n, err := strconv.Atoi(seasonMatch[1]); err == nil {
			season = n
		}
	}

	if m := episodeRegexp.FindStringSubmatch(title); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			episode = n
		}
		return season, episode
	}

	// No explicit episode marker. If a season marker was present, the first
	// standalone number left after removing the marker text is taken as the
	// episode (eg. "Season 1 - 04").
	if seasonMatch != nil {
		remainder := strings.ReplaceAll(title, seasonMatch[0], "")
		if m := standaloneRegexp.FindStringSubmatch(remainder); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				episode = n
			}
		}
	}

	return season, episode
}

// ExtractOrderNumber derives a playlist ordering key from a leading
// "<number>." title prefix. "10. The Finale" maps to 10; titles without the
// prefix map to OrderLast.
func ExtractOrderNumber(title string) int {
	if m := leadingRegexp.FindStringSubmatch(strings.TrimSpace(title)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return OrderLast
}

// HasExplicitOrder reports whether a title carries a leading numeric prefix.
func HasExplicitOrder(title string) bool {
	return ExtractOrderNumber(title) != OrderLast
}
