package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/chatarr/internal/media"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		spec *PartsSpec
		want PartsState
	}{
		{name: "nil is unspecified", spec: nil, want: PartsUnspecified},
		{name: "empty spec is entire series", spec: EntireSeries(), want: PartsEntireSeries},
		{
			name: "one season is partial",
			spec: Partial(media.SeasonSelector{Season: 1}),
			want: PartsPartial,
		},
		{
			name: "episodes are partial",
			spec: Partial(media.SeasonSelector{Season: 2, Episodes: []int{1, 2}}),
			want: PartsPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.spec))
		})
	}
}

func TestReady(t *testing.T) {
	assert.False(t, Ready(nil), "unspecified must block execution")
	assert.True(t, Ready(EntireSeries()), "explicit entire series authorizes execution")
	assert.True(t, Ready(Partial(media.SeasonSelector{Season: 3})))
}

// An explicit entire-series scope and an absent scope must stay distinct
// through construction: the former executes, the latter asks.
func TestEntireSeriesIsNotUnspecified(t *testing.T) {
	assert.NotEqual(t, Classify(nil), Classify(EntireSeries()))
}
