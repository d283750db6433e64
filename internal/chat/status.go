package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/nlu"
	"github.com/vmunix/chatarr/internal/session"
)

// nothingDownloadingInstruction replaces the data snapshot when both queues
// are empty, so the summarizer states that plainly instead of inventing
// activity.
const nothingDownloadingInstruction = "You are a friendly media library assistant. " +
	"Nothing is currently downloading. Tell the user that plainly; do not mention any titles."

// Status reports in-progress downloads from both managers. Stateless.
type Status struct {
	deps
}

// NewStatus creates the status strategy.
func NewStatus(d deps) *Status {
	return &Status{deps: d}
}

// Execute fetches active transfers and summarizes them. With both queues
// empty the summarizer gets the explicit nothing-downloading instruction
// rather than an empty snapshot.
func (s *Status) Execute(ctx context.Context, req Request, _ *session.Session) *Reply {
	transfers, err := s.media.ActiveTransfers(ctx)
	if err != nil {
		s.logger.Error("transfer fetch failed", "error", err)
		return serviceUnavailable()
	}

	instructions := nothingDownloadingInstruction
	if len(transfers.Movies) > 0 || len(transfers.Episodes) > 0 {
		instructions = "You are a friendly media library assistant. Summarize the download " +
			"status below. Mention only items present in it.\n\n" + transferSnapshot(transfers)
	}

	history := append(append([]nlu.Message{}, req.History...), nlu.Message{Role: "user", Content: req.Message})
	text, err := s.nlu.Summarize(ctx, instructions, history)
	if err != nil {
		s.logger.Error("status summary failed", "error", err)
		return serviceUnavailable()
	}
	return say(text)
}

func transferSnapshot(t *media.Transfers) string {
	var b strings.Builder
	b.WriteString("Movies downloading:")
	writeTransfers(&b, t.Movies)
	b.WriteString("\nEpisodes downloading:")
	writeTransfers(&b, t.Episodes)
	return b.String()
}

func writeTransfers(b *strings.Builder, transfers []media.Transfer) {
	if len(transfers) == 0 {
		b.WriteString(" (none)")
		return
	}
	for _, tr := range transfers {
		fmt.Fprintf(b, "\n- %s: %.0f%% of %s", tr.Title, tr.Progress, humanize.Bytes(uint64(tr.SizeBytes)))
		if tr.TimeLeft > 0 {
			fmt.Fprintf(b, ", %s remaining", tr.TimeLeft.Round(time.Second))
		}
	}
}
