// Package nlu defines the language-model boundary: structured classification
// and parsing of chat messages. Every call is independently fallible; callers
// apply their own documented defaults on failure instead of propagating.
package nlu

import (
	"context"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/selection"
)

// Message is one chat message, also the unit of conversation history.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// SearchIntent is what the user wants done with the search terms.
type SearchIntent string

const (
	IntentLibrary  SearchIntent = "library"
	IntentExternal SearchIntent = "external"
	IntentBoth     SearchIntent = "both"
	IntentDelete   SearchIntent = "delete"
)

// Intent is the structured classification of a fresh message.
type Intent struct {
	Kind   media.Kind   `json:"kind"`
	Intent SearchIntent `json:"intent"`
	Terms  string       `json:"terms"`
}

// DefaultIntent is substituted when classification fails: ambiguous kind,
// library search, no terms. It routes to browse, the safest operation.
func DefaultIntent() *Intent {
	return &Intent{Kind: media.KindEither, Intent: IntentLibrary}
}

// Continuity is the topic-continuity verdict for a message arriving while a
// session is pending.
type Continuity string

const (
	ContinuityContinue Continuity = "continue"
	ContinuitySwitch   Continuity = "switch"
)

// Service is the language-model capability consumed by the chat core.
type Service interface {
	// ClassifyIntent classifies a fresh message into media kind, search
	// intent, and search terms.
	ClassifyIntent(ctx context.Context, message string) (*Intent, error)

	// ClassifyMediaKind disambiguates movie vs series for a message whose
	// first classification came back "either".
	ClassifyMediaKind(ctx context.Context, message string) (media.Kind, error)

	// DetectTopicContinuity decides whether a message continues the
	// pending operation or switches topic.
	DetectTopicContinuity(ctx context.Context, message string, history []Message) (Continuity, error)

	// ExtractSearchQuery pulls the title being asked about out of a
	// message, or returns "" when there is none.
	ExtractSearchQuery(ctx context.Context, message string) (string, error)

	// ParseSelectionReference parses an ordinal or year selection.
	// A message with no recognizable selection returns nil, nil.
	ParseSelectionReference(ctx context.Context, message string) (*selection.Reference, error)

	// ParseParts parses a seasons/episodes scope. No scope mentioned
	// returns nil, nil; an explicit "everything" returns an empty spec.
	ParseParts(ctx context.Context, message string) (*selection.PartsSpec, error)

	// Summarize produces a conversational reply grounded in the given
	// instructions and data, continuing the history.
	Summarize(ctx context.Context, instructions string, history []Message) (string, error)
}
