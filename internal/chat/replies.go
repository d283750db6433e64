package chat

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/selection"
)

var titleCaser = cases.Title(language.English)

const (
	genericApologyText     = "Sorry, I had trouble processing your selection. Let's start over - what would you like to do?"
	serviceUnavailableText = "Sorry, the media service is currently unavailable. Please try again in a bit."
)

func genericApology() *Reply {
	return say(genericApologyText)
}

func serviceUnavailable() *Reply {
	return say(serviceUnavailableText)
}

func clarifyQuery() *Reply {
	return say("What title would you like me to look for?")
}

func noResults(query string) *Reply {
	return say(fmt.Sprintf("I couldn't find anything for %q. Maybe try a different spelling?", query))
}

func apologyNamed(title, action string) *Reply {
	return say(fmt.Sprintf("Sorry, I wasn't able to %s for %s. Please try again later.", action, title))
}

// pickOne lists the candidates in the order they will be selected from.
// Posters ride along as images so chat frontends can show covers.
func pickOne(items []media.Item, verb string) *Reply {
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d matches. Which one would you like to %s?\n", len(items), verb)
	images := make([]string, 0, len(items))
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s (%d)\n", i+1, it.Title, it.Year)
		if it.Poster != "" {
			images = append(images, it.Poster)
		}
	}
	b.WriteString(`You can answer by position ("the second one") or by year.`)
	return say(b.String()).withImages(images...)
}

func askParts(title string) *Reply {
	return say(fmt.Sprintf("Which seasons or episodes of %s? You can also say \"the entire series\".", title))
}

func successDownload(item media.Item, parts *selection.PartsSpec) *Reply {
	var text string
	switch {
	case item.Kind != media.KindSeries:
		text = fmt.Sprintf("On it! %s (%d) is being downloaded.", item.Title, item.Year)
	case parts == nil || len(parts.Selectors) == 0:
		text = fmt.Sprintf("On it! The entire series %s (%d) is being downloaded.", item.Title, item.Year)
	default:
		text = fmt.Sprintf("On it! %s of %s (%d) is being downloaded.", describeScope(parts), item.Title, item.Year)
	}
	reply := say(text)
	if item.Poster != "" {
		reply = reply.withImages(item.Poster)
	}
	return reply
}

func successDelete(item media.Item, parts *selection.PartsSpec) *Reply {
	switch {
	case item.Kind != media.KindSeries:
		return say(fmt.Sprintf("Done. %s (%d) has been deleted.", item.Title, item.Year))
	case parts == nil || len(parts.Selectors) == 0:
		return say(fmt.Sprintf("Done. The entire series %s (%d) has been deleted.", item.Title, item.Year))
	default:
		return say(fmt.Sprintf("Done. %s of %s (%d) has been deleted.", describeScope(parts), item.Title, item.Year))
	}
}

// describeScope renders a non-empty parts spec for a success message.
func describeScope(parts *selection.PartsSpec) string {
	descs := make([]string, 0, len(parts.Selectors))
	for _, sel := range parts.Selectors {
		if len(sel.Episodes) == 0 {
			descs = append(descs, fmt.Sprintf("season %d", sel.Season))
			continue
		}
		eps := make([]string, 0, len(sel.Episodes))
		for _, e := range sel.Episodes {
			eps = append(eps, fmt.Sprintf("%d", e))
		}
		descs = append(descs, fmt.Sprintf("season %d episode %s", sel.Season, strings.Join(eps, ", ")))
	}
	return titleCaser.String(strings.Join(descs, " and "))
}
