//go:build unit

package catalog

import (
	"testing"

	"gitee.com/flycash/school-notification/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	c, err := Default()
	require.NoError(t, err)

	// 每种类型都有英文模板
	types := map[domain.NotificationType]bool{}
	for _, tmpl := range c.TemplatesFor(1) {
		assert.Equal(t, int64(1), tmpl.SchoolID)
		assert.NoError(t, tmpl.CheckKey())
		types[tmpl.Type] = true
	}
	assert.Len(t, types, 7)

	for _, r := range c.RulesFor(1) {
		assert.NoError(t, r.Validate(), r.Type)
	}
	assert.True(t, c.IsKnownVariable("studentName"))
	assert.False(t, c.IsKnownVariable("unknown"))
	assert.Contains(t, c.KnownVariables(), "lessonTime")
}

func TestParse(t *testing.T) {
	t.Parallel()
	c, err := Parse([]byte(`
rules:
  - type: lesson_reminder
    enabled: true
    recipients:
      student: true
    reminders:
      - timing:
          value: 2
          unit: days
        channel: both
`))
	require.NoError(t, err)
	require.Len(t, c.Rules, 1)
	assert.Equal(t, domain.Reminder{
		Timing:  domain.Timing{Value: 2, Unit: domain.TimeUnitDays},
		Channel: domain.SelectBoth,
	}, c.Rules[0].Reminders[0])

	_, err = Parse([]byte("rules: ["))
	assert.Error(t, err)
}
