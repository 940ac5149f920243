package records

import (
	"strings"
	"time"

	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/exceptions"
	"lisagent-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RecordType discriminates the session record variants.
type RecordType string

const (
	TypeHeader     RecordType = constvars.RecordTypeHeader
	TypePatient    RecordType = constvars.RecordTypePatient
	TypeOrder      RecordType = constvars.RecordTypeOrder
	TypeComment    RecordType = constvars.RecordTypeComment
	TypeResult     RecordType = constvars.RecordTypeResult
	TypeTerminator RecordType = constvars.RecordTypeTerminator
)

// Record is one typed, already de-framed instrument message.
type Record interface {
	Type() RecordType
	// Raw returns the original field tokens re-joined, kept for audit.
	Raw() string
}

// HeaderRecord opens a session. Fields are nil when the underlying token
// list was too short or the value failed to parse.
type HeaderRecord struct {
	Model     *string
	Serial    *string
	Firmware  *string
	Timestamp *time.Time
	raw       string
}

func (r *HeaderRecord) Type() RecordType { return TypeHeader }
func (r *HeaderRecord) Raw() string      { return r.raw }

type PatientRecord struct {
	PatientID *string
	Location  *string
	raw       string
}

func (r *PatientRecord) Type() RecordType { return TypePatient }
func (r *PatientRecord) Raw() string      { return r.raw }

type OrderRecord struct {
	OrderID    *string
	TestType   *string
	OperatorID *string
	SampleType *string
	raw        string
}

func (r *OrderRecord) Type() RecordType { return TypeOrder }
func (r *OrderRecord) Raw() string      { return r.raw }

type CommentRecord struct {
	SampleComment *string
	raw           string
}

func (r *CommentRecord) Type() RecordType { return TypeComment }
func (r *CommentRecord) Raw() string      { return r.raw }

type ResultRecord struct {
	AnalyteName *string
	TestValue   *string
	TestUnits   *string
	TestRange   *string
	TestFlag    *string
	TestType    *string
	Completion  *time.Time
	raw         string
}

func (r *ResultRecord) Type() RecordType { return TypeResult }
func (r *ResultRecord) Raw() string      { return r.raw }

// TerminatorRecord carries no payload; it seals the session.
type TerminatorRecord struct {
	raw string
}

func (r *TerminatorRecord) Type() RecordType { return TypeTerminator }
func (r *TerminatorRecord) Raw() string      { return r.raw }

// Parser builds Record variants from raw ordered field tokens.
type Parser struct {
	Log *zap.Logger
}

func NewParser(logger *zap.Logger) *Parser {
	return &Parser{Log: logger}
}

// Parse dispatches on the first token. An unknown discriminator is the one
// hard parse error; every field-level problem downgrades to a nil field.
func (p *Parser) Parse(tokens []string) (Record, error) {
	raw := strings.Join(tokens, "|")
	if len(tokens) == 0 {
		return nil, exceptions.ErrMalformedRecord(raw)
	}

	switch RecordType(tokens[0]) {
	case TypeHeader:
		return p.parseHeader(tokens, raw), nil
	case TypePatient:
		return p.parsePatient(tokens, raw), nil
	case TypeOrder:
		return p.parseOrder(tokens, raw), nil
	case TypeComment:
		return p.parseComment(tokens, raw), nil
	case TypeResult:
		return p.parseResult(tokens, raw), nil
	case TypeTerminator:
		return &TerminatorRecord{raw: raw}, nil
	default:
		return nil, exceptions.ErrMalformedRecord(raw)
	}
}

// field returns the token at index i, or nil when the list is too short.
// Out-of-range access must never abort record construction.
func field(tokens []string, i int) *string {
	if i < 0 || i >= len(tokens) {
		return nil
	}
	value := tokens[i]
	return &value
}

// component splits a composite token on '^' and returns component i.
func component(token *string, i int) *string {
	if token == nil {
		return nil
	}
	parts := strings.Split(*token, "^")
	if i < 0 || i >= len(parts) {
		return nil
	}
	value := parts[i]
	return &value
}

func (p *Parser) parseHeader(tokens []string, raw string) *HeaderRecord {
	record := &HeaderRecord{raw: raw}
	if len(tokens) < 14 {
		return record
	}
	record.Model = component(field(tokens, 4), 0)
	record.Serial = component(field(tokens, 4), 1)
	record.Firmware = field(tokens, 12)
	record.Timestamp = p.parseTimestamp(field(tokens, 13))
	return record
}

func (p *Parser) parsePatient(tokens []string, raw string) *PatientRecord {
	record := &PatientRecord{raw: raw}
	if len(tokens) <= 25 {
		return record
	}
	record.PatientID = field(tokens, 2)
	record.Location = field(tokens, 25)
	return record
}

func (p *Parser) parseOrder(tokens []string, raw string) *OrderRecord {
	record := &OrderRecord{raw: raw}
	if len(tokens) <= 15 {
		return record
	}
	record.OrderID = field(tokens, 2)
	record.TestType = field(tokens, 4)
	record.OperatorID = field(tokens, 10)
	record.SampleType = field(tokens, 15)
	return record
}

func (p *Parser) parseComment(tokens []string, raw string) *CommentRecord {
	record := &CommentRecord{raw: raw}
	if len(tokens) <= 3 {
		return record
	}
	record.SampleComment = field(tokens, 3)
	return record
}

func (p *Parser) parseResult(tokens []string, raw string) *ResultRecord {
	record := &ResultRecord{raw: raw}
	if len(tokens) <= 12 {
		return record
	}
	// Analyte name is the fourth component of the composite test ID
	// field, e.g. "^^^SARS".
	record.AnalyteName = component(field(tokens, 2), 3)
	record.TestValue = field(tokens, 3)
	record.TestUnits = field(tokens, 4)
	record.TestRange = field(tokens, 5)
	record.TestFlag = field(tokens, 6)
	record.TestType = field(tokens, 8)
	record.Completion = p.parseTimestamp(field(tokens, 12))
	return record
}

func (p *Parser) parseTimestamp(token *string) *time.Time {
	if token == nil || *token == "" {
		return nil
	}
	parsed, err := utils.ParseLisTimestamp(*token)
	if err != nil {
		p.Log.Error("recordParser.parseTimestamp failed to parse timestamp",
			zap.String(constvars.LoggingRawValueKey, *token),
			zap.Error(err),
		)
		return nil
	}
	return &parsed
}
