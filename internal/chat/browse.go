package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/nlu"
	"github.com/vmunix/chatarr/internal/session"
)

const groundingSeparator = "\n---\n"

// Browse answers questions about the library and external catalogs. It is
// stateless: nothing it does ever creates or touches a session.
type Browse struct {
	deps
}

// NewBrowse creates the browse strategy.
func NewBrowse(d deps) *Browse {
	return &Browse{deps: d}
}

// Execute fetches the data the classified intent calls for and summarizes
// it conversationally, grounded only in what was fetched.
func (s *Browse) Execute(ctx context.Context, req Request, _ *session.Session) *Reply {
	intent := req.Intent
	if intent == nil {
		intent = nlu.DefaultIntent()
	}

	kinds := []media.Kind{intent.Kind}
	if intent.Kind == media.KindEither {
		kinds = []media.Kind{media.KindMovie, media.KindSeries}
	}

	var sections []string
	for _, kind := range kinds {
		if intent.Intent == nlu.IntentLibrary || intent.Intent == nlu.IntentBoth {
			items, err := s.media.SearchLibrary(ctx, kind, intent.Terms)
			if err != nil {
				s.logger.Error("library browse failed", "kind", kind, "error", err)
				return serviceUnavailable()
			}
			sections = append(sections, groundingSection(fmt.Sprintf("In the %s library", kind), items))
		}
		if intent.Intent == nlu.IntentExternal || intent.Intent == nlu.IntentBoth {
			items, err := s.media.SearchExternal(ctx, kind, intent.Terms)
			if err != nil {
				s.logger.Error("external browse failed", "kind", kind, "error", err)
				return serviceUnavailable()
			}
			sections = append(sections, groundingSection(fmt.Sprintf("Available %s results", kind), items))
		}
	}

	instructions := "You are a friendly media library assistant. Answer the user's question " +
		"using only the data below; do not invent titles that are not listed.\n\n" +
		strings.Join(sections, groundingSeparator)

	history := append(append([]nlu.Message{}, req.History...), nlu.Message{Role: "user", Content: req.Message})
	text, err := s.nlu.Summarize(ctx, instructions, history)
	if err != nil {
		s.logger.Error("browse summary failed", "error", err)
		return serviceUnavailable()
	}
	return say(text)
}

func groundingSection(heading string, items []media.Item) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString(":")
	if len(items) == 0 {
		b.WriteString(" (nothing)")
		return b.String()
	}
	for _, it := range items {
		fmt.Fprintf(&b, "\n- %s (%d)", it.Title, it.Year)
	}
	return b.String()
}
