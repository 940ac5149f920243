package sessions

import (
	"context"
	"io"

	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/services/core/records"
)

// scriptedSource replays pre-collected record token lists, for sessions
// delivered in one HTTP request instead of over a live instrument link.
type scriptedSource struct {
	parser *records.Parser
	rows   [][]string
	index  int
}

func NewScriptedSource(parser *records.Parser, rows [][]string) contracts.RecordSource {
	return &scriptedSource{
		parser: parser,
		rows:   rows,
	}
}

func (s *scriptedSource) Next(ctx context.Context) (records.Record, error) {
	if s.index >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.index]
	s.index++
	return s.parser.Parse(row)
}

// Ack is a no-op; there is no live handshake to answer.
func (s *scriptedSource) Ack(ctx context.Context, accepted bool) error {
	return nil
}
