package xsd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabind/vocabind/xsd"
)

func TestParseDuration_Full(t *testing.T) {
	d, err := xsd.ParseDuration("P3Y6M4DT12H30M5S")
	require.NoError(t, err)
	assert.Equal(t, xsd.Duration{Years: 3, Months: 6, Days: 4, Hours: 12, Minutes: 30, Seconds: 5}, d)
	assert.Equal(t, "P3Y6M4DT12H30M5S", d.String())
}

func TestParseDuration_SingleComponents(t *testing.T) {
	cases := map[string]xsd.Duration{
		"P2M":     {Months: 2},
		"P5D":     {Days: 5},
		"PT5S":    {Seconds: 5},
		"PT90M":   {Minutes: 90},
		"P-1DT2H": {Negative: true, Days: 1, Hours: 2},
	}
	for src, want := range cases {
		d, err := xsd.ParseDuration(src)
		require.NoError(t, err, "input %q", src)
		assert.Equal(t, want, d, "input %q", src)
		assert.Equal(t, src, d.String(), "input %q", src)
	}
}

func TestParseDuration_MonthBeforeAndAfterT(t *testing.T) {
	d, err := xsd.ParseDuration("P1MT1M")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), d.Months)
	assert.Equal(t, uint64(1), d.Minutes)
	assert.Equal(t, "P1MT1M", d.String())
}

func TestParseDuration_Zero(t *testing.T) {
	d, err := xsd.ParseDuration("PT0S")
	require.NoError(t, err)
	assert.Equal(t, xsd.Duration{}, d)
	assert.Equal(t, "PT0S", d.String())
	assert.Equal(t, "PT0S", xsd.Duration{}.String())
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, src := range []string{"", "3Y", "P1H", "P1S", "PX", "P1Y2X", "P1Y "} {
		_, err := xsd.ParseDuration(src)
		assert.Error(t, err, "input %q", src)
	}
}
