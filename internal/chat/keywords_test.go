package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/nlu"
)

func TestRouteFor(t *testing.T) {
	tests := []struct {
		name    string
		message string
		intent  *nlu.Intent
		want    route
	}{
		{
			name:    "status keyword beats delete intent",
			message: "what's the download status",
			intent:  &nlu.Intent{Kind: media.KindMovie, Intent: nlu.IntentDelete},
			want:    routeStatus,
		},
		{
			name:    "eta counts as status",
			message: "ETA on my stuff?",
			intent:  &nlu.Intent{Kind: media.KindEither, Intent: nlu.IntentLibrary},
			want:    routeStatus,
		},
		{
			name:    "download keyword with external intent",
			message: "please grab the matrix",
			intent:  &nlu.Intent{Kind: media.KindMovie, Intent: nlu.IntentExternal},
			want:    routeDownload,
		},
		{
			name:    "download keyword with both intent",
			message: "get me severance",
			intent:  &nlu.Intent{Kind: media.KindSeries, Intent: nlu.IntentBoth},
			want:    routeDownload,
		},
		{
			name:    "download keyword with library intent stays browse",
			message: "did I download the matrix already?",
			intent:  &nlu.Intent{Kind: media.KindMovie, Intent: nlu.IntentLibrary},
			want:    routeBrowse,
		},
		{
			name:    "delete intent",
			message: "remove the matrix please",
			intent:  &nlu.Intent{Kind: media.KindMovie, Intent: nlu.IntentDelete},
			want:    routeDelete,
		},
		{
			name:    "plain question browses",
			message: "what comedies do I have?",
			intent:  &nlu.Intent{Kind: media.KindMovie, Intent: nlu.IntentLibrary},
			want:    routeBrowse,
		},
		{
			name:    "external intent without download keyword browses",
			message: "is there a new dune movie?",
			intent:  &nlu.Intent{Kind: media.KindMovie, Intent: nlu.IntentExternal},
			want:    routeBrowse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routeFor(tt.message, tt.intent))
		})
	}
}

func TestMatchesAnyIsCaseInsensitive(t *testing.T) {
	assert.True(t, matchesAny("DOWNLOAD this", downloadKeywords))
	assert.True(t, matchesAny("Queue looks busy", statusKeywords))
	assert.False(t, matchesAny("play some music", downloadKeywords))
}
