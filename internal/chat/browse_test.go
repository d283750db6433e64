package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/nlu"
)

func TestBrowseGroundsSummaryInFetchedData(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, store := newTestDeps(t)
	strat := NewBrowse(d)

	mediaSvc.EXPECT().SearchLibrary(gomock.Any(), media.KindMovie, "heist").
		Return([]media.Item{{Title: "Heat", Year: 1995, Kind: media.KindMovie}}, nil)

	var gotInstructions string
	nluSvc.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, instructions string, _ []nlu.Message) (string, error) {
			gotInstructions = instructions
			return "You have Heat (1995).", nil
		})

	req := Request{
		UserID:  "alice",
		Message: "do I have any heist movies?",
		Intent:  &nlu.Intent{Kind: media.KindMovie, Intent: nlu.IntentLibrary, Terms: "heist"},
	}
	reply := strat.Execute(ctx, req, nil)
	assert.Equal(t, "You have Heat (1995).", replyText(t, reply))
	assert.Contains(t, gotInstructions, "Heat (1995)")
	assert.Contains(t, gotInstructions, "do not invent titles")

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists, "browsing never opens a session")
}

func TestBrowseEitherKindQueriesBoth(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, _ := newTestDeps(t)
	strat := NewBrowse(d)

	mediaSvc.EXPECT().SearchLibrary(gomock.Any(), media.KindMovie, "dune").Return(nil, nil)
	mediaSvc.EXPECT().SearchLibrary(gomock.Any(), media.KindSeries, "dune").Return(nil, nil)
	mediaSvc.EXPECT().SearchExternal(gomock.Any(), media.KindMovie, "dune").Return(nil, nil)
	mediaSvc.EXPECT().SearchExternal(gomock.Any(), media.KindSeries, "dune").Return(nil, nil)
	nluSvc.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).Return("Nothing found.", nil)

	req := Request{
		UserID:  "alice",
		Message: "anything dune related?",
		Intent:  &nlu.Intent{Kind: media.KindEither, Intent: nlu.IntentBoth, Terms: "dune"},
	}
	reply := strat.Execute(ctx, req, nil)
	assert.Equal(t, "Nothing found.", replyText(t, reply))
}

func TestBrowseNilIntentUsesDefault(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, _ := newTestDeps(t)
	strat := NewBrowse(d)

	mediaSvc.EXPECT().SearchLibrary(gomock.Any(), media.KindMovie, "").Return(nil, nil)
	mediaSvc.EXPECT().SearchLibrary(gomock.Any(), media.KindSeries, "").Return(nil, nil)
	nluSvc.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).Return("Hello!", nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "hi"}, nil)
	assert.Equal(t, "Hello!", replyText(t, reply))
}

func TestBrowseSearchFailure(t *testing.T) {
	ctx := context.Background()
	d, _, mediaSvc, _ := newTestDeps(t)
	strat := NewBrowse(d)

	mediaSvc.EXPECT().SearchLibrary(gomock.Any(), media.KindMovie, "dune").
		Return(nil, media.ErrUnavailable)

	req := Request{
		UserID:  "alice",
		Message: "do I have dune?",
		Intent:  &nlu.Intent{Kind: media.KindMovie, Intent: nlu.IntentLibrary, Terms: "dune"},
	}
	reply := strat.Execute(ctx, req, nil)
	assert.Equal(t, serviceUnavailableText, replyText(t, reply))
}
