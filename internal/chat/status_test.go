package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/nlu"
)

func TestStatusEmptyQueuesUseNothingDownloadingInstruction(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, _ := newTestDeps(t)
	strat := NewStatus(d)

	mediaSvc.EXPECT().ActiveTransfers(gomock.Any()).Return(&media.Transfers{}, nil)
	nluSvc.EXPECT().Summarize(gomock.Any(), nothingDownloadingInstruction, gomock.Any()).
		Return("Nothing is downloading at the moment.", nil)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "anything downloading?"}, nil)
	assert.Equal(t, "Nothing is downloading at the moment.", replyText(t, reply))
}

func TestStatusSnapshotsActiveTransfers(t *testing.T) {
	ctx := context.Background()
	d, nluSvc, mediaSvc, _ := newTestDeps(t)
	strat := NewStatus(d)

	transfers := &media.Transfers{
		Movies: []media.Transfer{
			{Title: "Oppenheimer", Progress: 42, SizeBytes: 8 << 30, TimeLeft: 90 * time.Second},
		},
		Episodes: []media.Transfer{
			{Title: "Severance S01E03", Progress: 99, SizeBytes: 2 << 30},
		},
	}
	mediaSvc.EXPECT().ActiveTransfers(gomock.Any()).Return(transfers, nil)

	var gotInstructions string
	nluSvc.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, instructions string, _ []nlu.Message) (string, error) {
			gotInstructions = instructions
			return "Two downloads in flight.", nil
		})

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "status?"}, nil)
	assert.Equal(t, "Two downloads in flight.", replyText(t, reply))

	assert.Contains(t, gotInstructions, "Oppenheimer: 42%")
	assert.Contains(t, gotInstructions, "1m30s remaining")
	assert.Contains(t, gotInstructions, "Severance S01E03: 99%")
	assert.Contains(t, gotInstructions, "Mention only items present in it")
}

func TestStatusTransferFetchFailure(t *testing.T) {
	ctx := context.Background()
	d, _, mediaSvc, _ := newTestDeps(t)
	strat := NewStatus(d)

	mediaSvc.EXPECT().ActiveTransfers(gomock.Any()).Return(nil, media.ErrUnavailable)

	reply := strat.Execute(ctx, Request{UserID: "alice", Message: "status?"}, nil)
	assert.Equal(t, serviceUnavailableText, replyText(t, reply))
}
