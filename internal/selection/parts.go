package selection

import "github.com/vmunix/chatarr/internal/media"

// PartsSpec is the seasons/episodes scope of a series operation. The pointer
// carries meaning: a nil *PartsSpec is "unspecified" (nothing was parsed,
// the user must be asked), while a non-nil spec with zero selectors is an
// explicit "entire series". The two must never be conflated; one blocks
// execution and the other authorizes it.
type PartsSpec struct {
	Selectors []media.SeasonSelector `json:"selectors"`
}

// EntireSeries builds the explicit everything scope.
func EntireSeries() *PartsSpec {
	return &PartsSpec{}
}

// Partial builds a scope over the given selectors.
func Partial(selectors ...media.SeasonSelector) *PartsSpec {
	return &PartsSpec{Selectors: selectors}
}

// PartsState is the three-way classification of a PartsSpec.
type PartsState int

const (
	// PartsUnspecified means no scope was produced; not ready to execute.
	PartsUnspecified PartsState = iota
	// PartsEntireSeries means an explicit empty scope; ready to execute.
	PartsEntireSeries
	// PartsPartial means one or more season/episode selectors; ready.
	PartsPartial
)

// Classify maps a PartsSpec to its three-way state. It is total: every
// input lands in exactly one state.
func Classify(spec *PartsSpec) PartsState {
	switch {
	case spec == nil:
		return PartsUnspecified
	case len(spec.Selectors) == 0:
		return PartsEntireSeries
	default:
		return PartsPartial
	}
}

// Ready reports whether the spec authorizes execution, i.e. it is either
// an explicit entire-series scope or a partial one.
func Ready(spec *PartsSpec) bool {
	return Classify(spec) != PartsUnspecified
}
