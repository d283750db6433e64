// Package selection resolves natural-language selections ("the second one",
// "the 2008 one", "season 1") against candidate lists.
package selection

import "github.com/vmunix/chatarr/internal/media"

// RefKind tags the two valid selection reference forms.
type RefKind string

const (
	// RefOrdinal is a 1-indexed position in the candidate list.
	RefOrdinal RefKind = "ordinal"
	// RefYear selects by release year.
	RefYear RefKind = "year"
)

// Reference is a parsed item selection. A nil *Reference means the message
// carried no recognizable selection; that is not an error, the caller asks
// for clarification instead.
type Reference struct {
	Kind RefKind `json:"kind"`
	N    int     `json:"n,omitempty"` // ordinal position, 1-indexed
	Year int     `json:"year,omitempty"`
}

// Ordinal builds an ordinal reference.
func Ordinal(n int) *Reference {
	return &Reference{Kind: RefOrdinal, N: n}
}

// Year builds a year reference.
func Year(y int) *Reference {
	return &Reference{Kind: RefYear, Year: y}
}

// Resolve picks one item from an ordered candidate list. Out-of-range
// ordinals and unmatched years degrade to the top result rather than
// failing; an empty list resolves to nil. The candidate ordering is the
// ordering that was shown to the user, so it must not be re-sorted between
// turns. Resolve is pure: it depends only on its two inputs.
func Resolve(ref *Reference, candidates []media.Item) *media.Item {
	if len(candidates) == 0 {
		return nil
	}

	switch ref.Kind {
	case RefOrdinal:
		idx := ref.N - 1
		if idx >= 0 && idx < len(candidates) {
			return &candidates[idx]
		}
	case RefYear:
		for i := range candidates {
			if candidates[i].Year == ref.Year {
				return &candidates[i]
			}
		}
	}

	// Out-of-range or unmatched references assume the top result.
	return &candidates[0]
}
