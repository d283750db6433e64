package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/selection"
	"github.com/vmunix/chatarr/internal/session"
)

func spaceShows() []media.Item {
	return []media.Item{
		{RemoteID: 253, Title: "Star Trek", Year: 1966, Kind: media.KindSeries},
		{RemoteID: 314, Title: "Star Trek: The Next Generation", Year: 1987, Kind: media.KindSeries},
		{RemoteID: 418, Title: "Star Trek: Voyager", Year: 1995, Kind: media.KindSeries},
	}
}

func TestSeriesDownloadSoleMatchStillAsksForParts(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, store := newTestDeps(t)
	strat := NewSeriesDownload(d)

	nluSvc.EXPECT().ExtractSearchQuery(gomock.Any(), gomock.Any()).Return("severance", nil)
	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), gomock.Any()).Return(nil, nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), gomock.Any()).Return(nil, nil)

	item := media.Item{RemoteID: 371980, Title: "Severance", Year: 2022, Kind: media.KindSeries}
	mediaSvc.EXPECT().SearchExternal(gomock.Any(), media.KindSeries, "severance").
		Return([]media.Item{item}, nil)
	// No Download expectation: an unspecified scope never executes.

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "download severance"}, nil)
	assert.Contains(t, replyText(t, reply), "Which seasons or episodes of Severance?")

	sc, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, sc)
	assert.Equal(t, session.OpSeriesDownload, sc.Kind)
	assert.Len(t, sc.Candidates, 1)
}

func TestSeriesDownloadInlineScopeExecutesImmediately(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, store := newTestDeps(t)
	strat := NewSeriesDownload(d)

	nluSvc.EXPECT().ExtractSearchQuery(gomock.Any(), gomock.Any()).Return("severance", nil)
	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), gomock.Any()).Return(nil, nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), gomock.Any()).
		Return(selection.Partial(media.SeasonSelector{Season: 1}), nil)

	item := media.Item{RemoteID: 371980, Title: "Severance", Year: 2022, Kind: media.KindSeries}
	mediaSvc.EXPECT().SearchExternal(gomock.Any(), media.KindSeries, "severance").
		Return([]media.Item{item}, nil)
	mediaSvc.EXPECT().Download(gomock.Any(), item, []media.SeasonSelector{{Season: 1}}).
		Return(&media.Result{Success: true}, nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "download severance season 1"}, nil)
	assert.Equal(t, "On it! Season 1 of Severance (2022) is being downloaded.", replyText(t, reply))

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSeriesDownloadEntireSeriesScope(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, _ := newTestDeps(t)
	strat := NewSeriesDownload(d)

	nluSvc.EXPECT().ExtractSearchQuery(gomock.Any(), gomock.Any()).Return("severance", nil)
	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), gomock.Any()).Return(nil, nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), gomock.Any()).Return(selection.EntireSeries(), nil)

	item := media.Item{RemoteID: 371980, Title: "Severance", Year: 2022, Kind: media.KindSeries}
	mediaSvc.EXPECT().SearchExternal(gomock.Any(), media.KindSeries, "severance").
		Return([]media.Item{item}, nil)
	mediaSvc.EXPECT().Download(gomock.Any(), item, gomock.Len(0)).
		Return(&media.Result{Success: true}, nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "download all of severance"}, nil)
	assert.Equal(t, "On it! The entire series Severance (2022) is being downloaded.", replyText(t, reply))
}

func TestSeriesDownloadMultipleMatchesOpenSession(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, store := newTestDeps(t)
	strat := NewSeriesDownload(d)

	nluSvc.EXPECT().ExtractSearchQuery(gomock.Any(), gomock.Any()).Return("star trek", nil)
	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), gomock.Any()).Return(nil, nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), gomock.Any()).Return(nil, nil)
	mediaSvc.EXPECT().SearchExternal(gomock.Any(), media.KindSeries, "star trek").
		Return(spaceShows(), nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "download star trek"}, nil)
	assert.Contains(t, replyText(t, reply), "I found 3 matches")

	sc, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, sc)
	assert.Equal(t, session.OpSeriesDownload, sc.Kind)
	assert.Len(t, sc.Candidates, 3)
}

// A sole candidate banked on turn one needs only the scope on turn two.
func TestSeriesDownloadSoleCandidateResumeEntireSeries(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, store := newTestDeps(t)
	strat := NewSeriesDownload(d)

	item := media.Item{RemoteID: 371980, Title: "Severance", Year: 2022, Kind: media.KindSeries}
	sc := session.New(session.OpSeriesDownload, []media.Item{item}, "severance")
	require.NoError(t, store.Set(ctx, "alice", sc))

	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), "the entire series").Return(nil, nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), "the entire series").
		Return(selection.EntireSeries(), nil)
	mediaSvc.EXPECT().Download(gomock.Any(), item, gomock.Len(0)).
		Return(&media.Result{Success: true}, nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "the entire series"}, sc)
	assert.Equal(t, "On it! The entire series Severance (2022) is being downloaded.",
		replyText(t, reply))

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSeriesDownloadSoleCandidateResumeStillNoScope(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, _, store := newTestDeps(t)
	strat := NewSeriesDownload(d)

	item := media.Item{RemoteID: 371980, Title: "Severance", Year: 2022, Kind: media.KindSeries}
	sc := session.New(session.OpSeriesDownload, []media.Item{item}, "severance")
	require.NoError(t, store.Set(ctx, "alice", sc))

	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), gomock.Any()).Return(nil, nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), gomock.Any()).Return(nil, nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "not sure yet"}, sc)
	text := replyText(t, reply)
	assert.Contains(t, text, "Which seasons or episodes of Severance?")
	assert.NotContains(t, text, "matches")

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists, "the settled pick survives until a scope arrives")
}

// Selection and scope can arrive together on the resumed turn.
func TestSeriesDownloadResumeWithBothAnswers(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, store := newTestDeps(t)
	strat := NewSeriesDownload(d)

	items := spaceShows()
	sc := session.New(session.OpSeriesDownload, items, "star trek")
	require.NoError(t, store.Set(ctx, "alice", sc))

	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), "the 1987 one, just season 3").
		Return(selection.Year(1987), nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), "the 1987 one, just season 3").
		Return(selection.Partial(media.SeasonSelector{Season: 3}), nil)
	mediaSvc.EXPECT().Download(gomock.Any(), items[1], []media.SeasonSelector{{Season: 3}}).
		Return(&media.Result{Success: true}, nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "the 1987 one, just season 3"}, sc)
	assert.Equal(t, "On it! Season 3 of Star Trek: The Next Generation (1987) is being downloaded.",
		replyText(t, reply))

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)
}

// A pick without a scope banks the pick and asks for the scope.
func TestSeriesDownloadResumePickThenParts(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, store := newTestDeps(t)
	strat := NewSeriesDownload(d)

	items := spaceShows()
	sc := session.New(session.OpSeriesDownload, items, "star trek")
	require.NoError(t, store.Set(ctx, "alice", sc))

	// Turn one: pick only.
	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), "the first one").
		Return(selection.Ordinal(1), nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), "the first one").Return(nil, nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "the first one"}, sc)
	assert.Contains(t, replyText(t, reply), "Which seasons or episodes of Star Trek?")

	saved, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.NotNil(t, saved.PendingRef, "pick is banked for the next turn")

	// Turn two: scope only; the banked pick completes the pair.
	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), "seasons 1 and 2").Return(nil, nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), "seasons 1 and 2").
		Return(selection.Partial(media.SeasonSelector{Season: 1}, media.SeasonSelector{Season: 2}), nil)
	mediaSvc.EXPECT().Download(gomock.Any(), items[0], []media.SeasonSelector{{Season: 1}, {Season: 2}}).
		Return(&media.Result{Success: true}, nil)

	reply = strat.Execute(ctx, Request{UserID: "alice", Message: "seasons 1 and 2"}, saved)
	assert.Equal(t, "On it! Season 1 And Season 2 of Star Trek (1966) is being downloaded.",
		replyText(t, reply))

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)
}

// A scope without a pick banks the scope and re-prompts the list.
func TestSeriesDownloadResumePartsBeforePick(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, store := newTestDeps(t)
	strat := NewSeriesDownload(d)

	items := spaceShows()
	sc := session.New(session.OpSeriesDownload, items, "star trek")
	require.NoError(t, store.Set(ctx, "alice", sc))

	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), "just season 2").Return(nil, nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), "just season 2").
		Return(selection.Partial(media.SeasonSelector{Season: 2}), nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "just season 2"}, sc)
	assert.Contains(t, replyText(t, reply), "I found 3 matches")

	saved, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.NotNil(t, saved.PendingParts, "early scope is banked")

	nluSvc.EXPECT().ParseSelectionReference(gomock.Any(), "the voyager one").
		Return(selection.Ordinal(3), nil)
	nluSvc.EXPECT().ParseParts(gomock.Any(), "the voyager one").Return(nil, nil)
	mediaSvc.EXPECT().Download(gomock.Any(), items[2], []media.SeasonSelector{{Season: 2}}).
		Return(&media.Result{Success: true}, nil)

	reply = strat.Execute(ctx, Request{UserID: "alice", Message: "the voyager one"}, saved)
	assert.Equal(t, "On it! Season 2 of Star Trek: Voyager (1995) is being downloaded.",
		replyText(t, reply))
}
