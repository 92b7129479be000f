package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleDefaults(t *testing.T) {
	var s Schedule
	assert.Equal(t, DefaultSettings, s.At(0))
	assert.Equal(t, DefaultSettings, s.At(100))
}

func TestScheduleCumulativeOverrides(t *testing.T) {
	s := Schedule{
		0:  {BasesCount: 3, BaseHeight: 5, Steps: 5},
		5:  {Steps: 10},
		10: {BasesCount: 4, Steps: 15},
	}

	tests := []struct {
		level int
		want  Settings
	}{
		{0, Settings{BasesCount: 3, BaseHeight: 5, Steps: 5}},
		{4, Settings{BasesCount: 3, BaseHeight: 5, Steps: 5}},
		{5, Settings{BasesCount: 3, BaseHeight: 5, Steps: 10}},
		{9, Settings{BasesCount: 3, BaseHeight: 5, Steps: 10}},
		{10, Settings{BasesCount: 4, BaseHeight: 5, Steps: 15}},
		// overrides persist past their threshold
		{39, Settings{BasesCount: 4, BaseHeight: 5, Steps: 15}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, s.At(test.level), "level %d", test.level)
	}
}

func TestDefaultScheduleRamp(t *testing.T) {
	assert.Equal(t,
		Settings{BasesCount: 3, BaseHeight: 5, Steps: 5},
		DefaultSchedule.At(0),
	)
	assert.Equal(t,
		Settings{BasesCount: 5, BaseHeight: 5, Steps: 20},
		DefaultSchedule.At(25),
	)
	assert.Equal(t,
		Settings{BasesCount: 6, BaseHeight: 5, Steps: 25},
		DefaultSchedule.At(DefaultLevelCount-1),
	)
}
