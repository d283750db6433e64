package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/nlu"
	nlumocks "github.com/vmunix/chatarr/internal/nlu/mocks"
	"github.com/vmunix/chatarr/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedSession(t *testing.T, store session.Store, userID string, kind session.OperationKind, items ...media.Item) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), userID, session.New(kind, items, "query")))
}

func TestGateNoSessionSkipsClassifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	nluSvc := nlumocks.NewMockService(ctrl)
	store := session.NewMemoryStore(time.Minute)

	// No DetectTopicContinuity expectation: any call fails the test.
	gate := NewGate(store, nluSvc, testLogger())
	assert.True(t, gate.ShouldContinue(context.Background(), "alice", "hello", nil))
}

func TestGateContinuationKeepsSession(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	nluSvc := nlumocks.NewMockService(ctrl)
	store := session.NewMemoryStore(time.Minute)
	seedSession(t, store, "alice", session.OpMovieDownload, media.Item{Title: "Dune", Year: 2021})

	nluSvc.EXPECT().DetectTopicContinuity(gomock.Any(), "the first one", gomock.Any()).
		Return(nlu.ContinuityContinue, nil)

	gate := NewGate(store, nluSvc, testLogger())
	assert.True(t, gate.ShouldContinue(ctx, "alice", "the first one", nil))

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGateSwitchClearsSession(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	nluSvc := nlumocks.NewMockService(ctrl)
	store := session.NewMemoryStore(time.Minute)
	seedSession(t, store, "alice", session.OpMovieDownload, media.Item{Title: "Dune", Year: 2021})

	nluSvc.EXPECT().DetectTopicContinuity(gomock.Any(), "what's the weather", gomock.Any()).
		Return(nlu.ContinuitySwitch, nil)

	gate := NewGate(store, nluSvc, testLogger())
	assert.False(t, gate.ShouldContinue(ctx, "alice", "what's the weather", nil))

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists, "topic switch clears the pending session")
}

func TestGateFailsOpen(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	nluSvc := nlumocks.NewMockService(ctrl)
	store := session.NewMemoryStore(time.Minute)
	seedSession(t, store, "alice", session.OpSeriesDelete, media.Item{Title: "Lost", Year: 2004, Kind: media.KindSeries})

	nluSvc.EXPECT().DetectTopicContinuity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nlu.Continuity(""), errors.New("model timeout"))

	gate := NewGate(store, nluSvc, testLogger())
	assert.True(t, gate.ShouldContinue(ctx, "alice", "season 2", nil), "classifier failure assumes continuation")

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists, "failure must not drop the session")
}
