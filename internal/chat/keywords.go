package chat

import (
	"strings"

	"github.com/vmunix/chatarr/internal/nlu"
)

// Keyword heuristics that upgrade the classifier's verdict. Matching is
// case-insensitive substring over fixed lists; status keywords win over
// everything else.
var (
	statusKeywords = []string{
		"status",
		"progress",
		"downloading",
		"download speed",
		"how long",
		"time left",
		"eta",
		"queue",
	}

	downloadKeywords = []string{
		"download",
		"grab",
		"fetch",
		"add",
		"get me",
	}
)

type route int

const (
	routeBrowse route = iota
	routeStatus
	routeDownload
	routeDelete
)

// routeFor combines keyword matches with the classified intent. Status
// keywords route to status regardless of the classifier; a download keyword
// together with an external-facing search intent routes to download; a
// delete intent routes to delete; everything else browses.
func routeFor(message string, intent *nlu.Intent) route {
	if matchesAny(message, statusKeywords) {
		return routeStatus
	}
	external := intent.Intent == nlu.IntentExternal || intent.Intent == nlu.IntentBoth
	if external && matchesAny(message, downloadKeywords) {
		return routeDownload
	}
	if intent.Intent == nlu.IntentDelete {
		return routeDelete
	}
	return routeBrowse
}

func matchesAny(message string, keywords []string) bool {
	lower := strings.ToLower(message)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
