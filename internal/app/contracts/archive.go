package contracts

import "context"

// TranscriptArchive stores the raw message lines of one session for audit.
// Best effort: a failed write degrades to a log entry.
type TranscriptArchive interface {
	StoreTranscript(ctx context.Context, sessionID string, lines []string) error
}
