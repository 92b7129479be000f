package levels

import "sort"

// Settings are the generation parameters active for one level.
type Settings struct {
	BasesCount int
	BaseHeight int
	Steps      int
}

// DefaultSettings apply before any schedule threshold is reached.
var DefaultSettings = Settings{BasesCount: 3, BaseHeight: 5, Steps: 5}

// Override partially replaces the active settings once its threshold
// level is reached. Zero fields keep the prior value.
type Override struct {
	BasesCount int
	BaseHeight int
	Steps      int
}

// Schedule maps level numbers (0-based) to cumulative overrides: once a
// threshold's overrides apply they persist for all later levels until
// overridden again.
type Schedule map[int]Override

// At resolves the settings active at level n, applying all thresholds
// up to and including n in ascending order on top of DefaultSettings.
func (s Schedule) At(n int) Settings {
	thresholds := make([]int, 0, len(s))
	for t := range s {
		if t <= n {
			thresholds = append(thresholds, t)
		}
	}
	sort.Ints(thresholds)

	settings := DefaultSettings
	for _, t := range thresholds {
		o := s[t]
		if o.BasesCount > 0 {
			settings.BasesCount = o.BasesCount
		}
		if o.BaseHeight > 0 {
			settings.BaseHeight = o.BaseHeight
		}
		if o.Steps > 0 {
			settings.Steps = o.Steps
		}
	}
	return settings
}

// DefaultLevelCount is the size of the shipped level set.
const DefaultLevelCount = 40

// DefaultSchedule is the shipping difficulty ramp: start with three
// bases and light scrambling, then raise scrambling and add bases as
// the player progresses.
var DefaultSchedule = Schedule{
	0:  {BasesCount: 3, BaseHeight: 5, Steps: 5},
	5:  {Steps: 10},
	10: {BasesCount: 4, Steps: 15},
	20: {BasesCount: 5, Steps: 20},
	30: {BasesCount: 6, Steps: 25},
}
