package slug

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "Daniela Witten", "daniela-witten"},
		{"accents folded", "José Núñez", "jose-nunez"},
		{"ring and umlaut", "Ångström Müller", "angstrom-muller"},
		{"punctuation dropped", "O'Brien, Jr.", "obrien-jr"},
		{"runs of spaces and hyphens", "  Jane -- Smith  ", "jane-smith"},
		{"underscore kept", "snake_case name", "snake_case-name"},
		{"full width folded", "ＡＢＣ 1", "abc-1"},
		{"only punctuation", "!!! ???", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeTruncates(t *testing.T) {
	long := strings.Repeat("a", 250)
	assert.Equal(t, strings.Repeat("a", MaxLength), Make(long))

	// the cut lands right after the separator
	split := strings.Repeat("a", MaxLength-1) + " bbbb"
	got := Make(split)
	assert.Equal(t, strings.Repeat("a", MaxLength-1), got)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func takenSet(keys ...string) ExistsFunc {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(_ context.Context, candidate string) (bool, error) {
		return set[candidate], nil
	}
}

func TestUnique(t *testing.T) {
	ctx := context.Background()

	got, err := Unique(ctx, "jane-smith", takenSet())
	require.NoError(t, err)
	assert.Equal(t, "jane-smith", got)

	got, err = Unique(ctx, "jane-smith", takenSet("jane-smith", "jane-smith-1"))
	require.NoError(t, err)
	assert.Equal(t, "jane-smith-2", got)

	// a name with no usable characters still gets a unique key
	got, err = Unique(ctx, Make("???"), takenSet(""))
	require.NoError(t, err)
	assert.Equal(t, "-1", got)
}

func TestUniqueLookupError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := Unique(context.Background(), "x", func(context.Context, string) (bool, error) {
		return false, boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `checking slug "x"`)
}

func TestUniqueStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Unique(ctx, "x", func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
