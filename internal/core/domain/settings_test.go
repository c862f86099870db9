package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 4, s.DescriptionLine)
	assert.True(t, s.SkipHidden)
	assert.Empty(t, s.Extensions)
	assert.Equal(t, "project_data.csv", s.OutputPath)
	assert.Empty(t, s.OutputFormat)
	assert.Equal(t, []string{"defaults", "duration", "financing_duration"}, s.Processors)
	assert.Equal(t, 2*time.Second, s.WatchInterval)
}

func TestDefaultSettings_ReturnsFreshSlices(t *testing.T) {
	a := DefaultSettings()
	a.Processors[0] = "changed"

	b := DefaultSettings()
	assert.Equal(t, "defaults", b.Processors[0])
}
