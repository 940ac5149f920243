package dispatcher

import (
	"context"
	"fmt"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/models"
	"lisagent-service/internal/app/services/core/records"
	"lisagent-service/internal/app/services/core/routing"
	"lisagent-service/internal/app/services/core/uplink"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the session accumulator lifecycle position.
type State string

const (
	StateAwaitingHeader  State = "awaiting_header"
	StateHeaderAccepted  State = "header_accepted"
	StatePatientPending  State = "patient_pending"
	StatePatientAccepted State = "patient_accepted"
	StateFinalizing      State = "finalizing"
	StateClosed          State = "closed"
)

// Factory builds one Dispatcher per instrument session from the shared
// collaborators. The collaborators must be safe for concurrent use; each
// dispatcher itself is single-session and strictly sequential.
type Factory struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Acceptor       Acceptor
	Uplink         contracts.UplinkClient
	Repository     contracts.DatagramRepository
	Notifier       contracts.NotifierService
	Archive        contracts.TranscriptArchive
}

func NewFactory(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	acceptor Acceptor,
	uplinkClient contracts.UplinkClient,
	datagramRepository contracts.DatagramRepository,
	notifier contracts.NotifierService,
	archive contracts.TranscriptArchive,
) *Factory {
	return &Factory{
		Log:            logger,
		InternalConfig: internalConfig,
		Acceptor:       acceptor,
		Uplink:         uplinkClient,
		Repository:     datagramRepository,
		Notifier:       notifier,
		Archive:        archive,
	}
}

// NewDispatcher starts a fresh session. A dispatcher is never reused once
// closed.
func (f *Factory) NewDispatcher() *Dispatcher {
	return &Dispatcher{
		factory:   f,
		sessionID: uuid.NewString(),
		state:     StateAwaitingHeader,
	}
}

// Dispatcher accumulates one session's records into a single datagram and
// drives classification, upload, archival and persistence when the
// terminator arrives. It exclusively owns its in-progress datagram.
type Dispatcher struct {
	factory   *Factory
	sessionID string
	state     State
	datagram  *models.Datagram
	messages  []string

	route   routing.RouteDecision
	outcome contracts.DeliveryOutcome
}

func (d *Dispatcher) SessionID() string { return d.sessionID }

func (d *Dispatcher) State() State { return d.state }

// Route is valid once the session is closed.
func (d *Dispatcher) Route() routing.RouteDecision { return d.route }

// Outcome is valid once the session is closed; empty for skipped sessions.
func (d *Dispatcher) Outcome() contracts.DeliveryOutcome { return d.outcome }

// Datagram exposes the sealed aggregate after close, for reporting.
func (d *Dispatcher) Datagram() *models.Datagram { return d.datagram }

// Dispatch consumes one record and returns the accept decision the
// transport should answer the handshake with. The only error cases are a
// rejected header (protocol refusal, aborts the session) and a record
// arriving after close.
func (d *Dispatcher) Dispatch(ctx context.Context, record records.Record) (bool, error) {
	if d.state == StateClosed || d.state == StateFinalizing {
		d.factory.Log.Error("dispatcher.Dispatch record after session close",
			zap.String(constvars.LoggingSessionIDKey, d.sessionID),
			zap.String(constvars.LoggingRecordTypeKey, string(record.Type())),
		)
		return false, exceptions.ErrSessionClosed()
	}

	// Stash every raw line before further propagation, accepted or not.
	d.messages = append(d.messages, record.Raw())

	switch rec := record.(type) {
	case *records.HeaderRecord:
		return d.onHeader(ctx, rec)
	case *records.PatientRecord:
		return d.onPatient(ctx, rec)
	case *records.OrderRecord:
		return d.onOrder(rec), nil
	case *records.CommentRecord:
		return d.onComment(rec), nil
	case *records.ResultRecord:
		return d.onResult(rec), nil
	case *records.TerminatorRecord:
		d.finalize(ctx)
		return true, nil
	default:
		d.factory.Log.Error("dispatcher.Dispatch unknown record",
			zap.String(constvars.LoggingSessionIDKey, d.sessionID),
			zap.String(constvars.LoggingRawValueKey, record.Raw()),
		)
		return false, nil
	}
}

func (d *Dispatcher) onHeader(ctx context.Context, record *records.HeaderRecord) (bool, error) {
	if d.state != StateAwaitingHeader {
		d.logOutOfOrder(record)
		return false, nil
	}

	if !d.factory.Acceptor.AcceptHeader(ctx, record) {
		d.state = StateClosed
		return false, exceptions.ErrHeaderRejected()
	}

	d.datagram = &models.Datagram{
		InstrumentModel:        record.Model,
		InstrumentSerialNumber: record.Serial,
		InstrumentFirmware:     record.Firmware,
		InstrumentTimestamp:    record.Timestamp,
		CreatedAt:              time.Now().UTC(),
	}
	d.state = StateHeaderAccepted
	return true, nil
}

func (d *Dispatcher) onPatient(ctx context.Context, record *records.PatientRecord) (bool, error) {
	if d.state != StateHeaderAccepted && d.state != StatePatientAccepted && d.state != StatePatientPending {
		d.logOutOfOrder(record)
		return false, nil
	}

	// Last write wins when the instrument repeats the patient record.
	d.datagram.Patient = &models.Patient{
		PatientID: record.PatientID,
		Location:  record.Location,
	}

	if d.factory.Acceptor.AcceptPatient(ctx, record) {
		d.state = StatePatientAccepted
		return true, nil
	}
	d.state = StatePatientPending
	return false, nil
}

func (d *Dispatcher) onOrder(record *records.OrderRecord) bool {
	if !d.patientGate(record) {
		return d.state == StatePatientPending
	}
	d.datagram.Order = &models.Order{
		OrderID:    record.OrderID,
		TestType:   record.TestType,
		OperatorID: record.OperatorID,
		SampleType: record.SampleType,
	}
	return true
}

func (d *Dispatcher) onComment(record *records.CommentRecord) bool {
	if !d.patientGate(record) {
		return d.state == StatePatientPending
	}
	d.datagram.Comments = append(d.datagram.Comments, models.Comment{
		SampleComment: record.SampleComment,
	})
	return true
}

func (d *Dispatcher) onResult(record *records.ResultRecord) bool {
	if !d.patientGate(record) {
		return d.state == StatePatientPending
	}
	d.datagram.Results = append(d.datagram.Results, models.Result{
		AnalyteName: record.AnalyteName,
		TestValue:   record.TestValue,
		TestUnits:   record.TestUnits,
		TestRange:   record.TestRange,
		TestFlag:    record.TestFlag,
		TestType:    record.TestType,
		Completion:  record.Completion,
	})
	return true
}

// patientGate reports whether order/comment/result records are currently
// applied. While the patient is pending they are acknowledged but ignored;
// before a patient exists they are out of order.
func (d *Dispatcher) patientGate(record records.Record) bool {
	if d.state == StatePatientAccepted {
		return true
	}
	if d.state == StatePatientPending {
		d.factory.Log.Info("dispatcher record ignored, patient not approved",
			zap.String(constvars.LoggingSessionIDKey, d.sessionID),
			zap.String(constvars.LoggingRecordTypeKey, string(record.Type())),
			zap.String(constvars.LoggingRawValueKey, record.Raw()),
		)
		return false
	}
	d.logOutOfOrder(record)
	return false
}

func (d *Dispatcher) logOutOfOrder(record records.Record) {
	d.factory.Log.Error("dispatcher record out of order",
		zap.String(constvars.LoggingSessionIDKey, d.sessionID),
		zap.String(constvars.LoggingStateKey, string(d.state)),
		zap.String(constvars.LoggingRecordTypeKey, string(record.Type())),
		zap.String(constvars.LoggingRawValueKey, record.Raw()),
	)
}

// finalize seals the datagram, classifies the vial ID, drives delivery and
// persists the aggregate in one write. Storage and archive failures are
// logged and never prevent session closure.
func (d *Dispatcher) finalize(ctx context.Context) {
	d.state = StateFinalizing

	if d.datagram == nil {
		// Terminator without an accepted header still closes cleanly.
		d.datagram = &models.Datagram{CreatedAt: time.Now().UTC()}
	}
	d.datagram.Messages = append([]string(nil), d.messages...)

	log := d.factory.Log
	cfg := d.factory.InternalConfig

	payload := uplink.BuildPayload(log, d.datagram)
	d.route = routing.Classify(payload.VialID)

	switch d.route {
	case routing.RoutePrimary:
		d.datagram.MatchesPrimaryRoute = true
		d.datagram.MatchesSecondaryRoute = false
		endpoint := contracts.UplinkEndpoint{
			URL:    cfg.Uplink.PrimaryURL,
			APIKey: cfg.Uplink.PrimaryAPIKey,
		}
		d.outcome = d.factory.Uplink.Deliver(ctx, payload, endpoint, cfg.Uplink.DisableUplink)
		d.applyOutcome()

	case routing.RouteSecondary:
		d.datagram.MatchesPrimaryRoute = false
		d.datagram.MatchesSecondaryRoute = true
		endpoint := contracts.UplinkEndpoint{
			URL:    cfg.Uplink.SecondaryURL,
			APIKey: cfg.Uplink.SecondaryAPIKey,
		}
		d.outcome = d.factory.Uplink.Deliver(ctx, payload, endpoint, cfg.Uplink.DisableUplink)
		d.applyOutcome()
		if d.outcome == contracts.OutcomeUploaded {
			d.factory.Notifier.Notify(ctx, fmt.Sprintf("testid: %s sent!", payload.VialID))
		}

	case routing.RouteSkip:
		log.Info("dispatcher.finalize patient skipped",
			zap.String(constvars.LoggingSessionIDKey, d.sessionID),
			zap.String(constvars.LoggingVialIDKey, payload.VialID),
		)
		d.datagram.MatchesPrimaryRoute = false
		d.datagram.MatchesSecondaryRoute = false
		d.datagram.Uploaded = false
		d.datagram.UploadError = false
		d.datagram.Skipped = true
	}

	if err := d.factory.Archive.StoreTranscript(ctx, d.sessionID, d.datagram.Messages); err != nil {
		log.Error("dispatcher.finalize transcript archive failed",
			zap.String(constvars.LoggingSessionIDKey, d.sessionID),
			zap.Error(err),
		)
	}

	d.saveDatagram(ctx)
	d.state = StateClosed
}

// applyOutcome keeps exactly one of the uploaded/uploadError/skipped flags
// raised.
func (d *Dispatcher) applyOutcome() {
	d.datagram.Uploaded = false
	d.datagram.UploadError = false
	d.datagram.Skipped = false
	switch d.outcome {
	case contracts.OutcomeUploaded:
		d.datagram.Uploaded = true
	case contracts.OutcomeError:
		d.datagram.UploadError = true
	case contracts.OutcomeSkippedByConfig:
		d.datagram.Skipped = true
	}
}

func (d *Dispatcher) saveDatagram(ctx context.Context) {
	if d.factory.InternalConfig.App.DisableDatabase {
		return
	}
	datagramID, err := d.factory.Repository.SaveDatagram(ctx, d.datagram)
	if err != nil {
		// DO NOT BREAK: a lost write degrades to a log entry.
		d.factory.Log.Error("dispatcher.finalize datagram save failed",
			zap.String(constvars.LoggingSessionIDKey, d.sessionID),
			zap.Error(err),
		)
		return
	}
	d.factory.Log.Info("dispatcher.finalize datagram saved",
		zap.String(constvars.LoggingSessionIDKey, d.sessionID),
		zap.String(constvars.LoggingDatagramIDKey, datagramID),
	)
}
