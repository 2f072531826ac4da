package algo

import (
	"sort"

	"github.com/huangsam/mktcalc/schema"
)

// levelRanks orders levels from worst (1) to best (4). Unknown levels rank 0.
var levelRanks = map[schema.Level]int{
	schema.PoorLevel:      1,
	schema.FairLevel:      2,
	schema.GoodLevel:      3,
	schema.ExcellentLevel: 4,
}

// LevelRank returns the ordinal of a level, higher is better.
func LevelRank(level schema.Level) int {
	return levelRanks[level]
}

// MeetsLevel reports whether level is at least as good as minLevel.
func MeetsLevel(level, minLevel schema.Level) bool {
	return LevelRank(level) >= LevelRank(minLevel) && LevelRank(level) > 0
}

// RankFailures sorts check failures from the worst level to the best,
// keeping input order for equal levels, and returns the top 'limit' rows.
// A non-positive limit returns every row.
func RankFailures(failures []schema.CheckFailure, limit int) []schema.CheckFailure {
	sort.SliceStable(failures, func(i, j int) bool {
		return LevelRank(failures[i].Level) < LevelRank(failures[j].Level)
	})
	if limit > 0 && len(failures) > limit {
		return failures[:limit]
	}
	return failures
}
