package loan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1000", "1000", true},
		{"1,000,000", "1000000", true},
		{" 2,500원 ", "2500", true},
		{"₩300", "300", true},
		{"(1,000)", "-1000", true},
		{"12.5", "12.5", true},
		{"-", "0", false},
		{"", "0", false},
		{"없음", "0", false},
		{"1.2.3", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2021-03-15",
		"2021-03-15 00:00:00",
		"2021.03.15",
		"2021. 3. 15.",
		"2021/3/15",
		"20210315",
		"2021년 3월 15일",
		"44270",
	} {
		t.Run(in, func(t *testing.T) {
			got, ok := ParseDate(in)
			require.True(t, ok)
			assert.Equal(t, want, got.UTC())
		})
	}
}

func TestParseDateRejects(t *testing.T) {
	for _, in := range []string{"", "미정", "2021-13-45", "12", "999999"} {
		_, ok := ParseDate(in)
		assert.False(t, ok, in)
	}
}

func TestCoerceDate(t *testing.T) {
	assert.True(t, coerceDate(Null()).IsNull())
	assert.True(t, coerceDate(Text("unknown")).IsNull())

	d := coerceDate(Text("2019-07-01"))
	require.Equal(t, KindDate, d.Kind)
	assert.Equal(t, 2019, d.Time.Year())
}
