package republish

import (
	"context"
	"testing"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeRepository struct {
	candidates   []models.Datagram
	cutoffSeen   time.Time
	markedIDs    []string
	markUploaded error
}

func (f *fakeRepository) SaveDatagram(ctx context.Context, datagram *models.Datagram) (string, error) {
	return "", nil
}

func (f *fakeRepository) FindCreatedAfter(ctx context.Context, cutoff time.Time) ([]models.Datagram, error) {
	return nil, nil
}

func (f *fakeRepository) FindRepublishCandidates(ctx context.Context, cutoff time.Time) ([]models.Datagram, error) {
	f.cutoffSeen = cutoff
	return f.candidates, nil
}

func (f *fakeRepository) MarkUploaded(ctx context.Context, datagramID string) error {
	if f.markUploaded != nil {
		return f.markUploaded
	}
	f.markedIDs = append(f.markedIDs, datagramID)
	return nil
}

type scriptedUplink struct {
	outcomes []contracts.DeliveryOutcome
	calls    int
	payloads []contracts.UplinkPayload
}

func (f *scriptedUplink) Deliver(ctx context.Context, payload contracts.UplinkPayload, endpoint contracts.UplinkEndpoint, disabled bool) contracts.DeliveryOutcome {
	f.payloads = append(f.payloads, payload)
	outcome := f.outcomes[f.calls%len(f.outcomes)]
	f.calls++
	return outcome
}

func strPtr(s string) *string { return &s }

func candidate(vialID, value string) models.Datagram {
	completion := time.Date(2020, 11, 4, 15, 1, 2, 0, time.UTC)
	return models.Datagram{
		ID:                  primitive.NewObjectID(),
		Patient:             &models.Patient{PatientID: strPtr(vialID)},
		Order:               &models.Order{TestType: strPtr("SARS")},
		Results:             []models.Result{{TestValue: strPtr(value), Completion: &completion}},
		MatchesPrimaryRoute: true,
	}
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Uplink: config.Uplink{
			PrimaryURL:    "http://primary.example/result",
			PrimaryAPIKey: "primary-key",
		},
		Republish: config.Republish{
			Enabled:          true,
			CompletionCutoff: "20201015000000",
		},
	}
}

func TestRepublish(t *testing.T) {
	t.Run("Successful Retry Marks Uploaded", func(t *testing.T) {
		repo := &fakeRepository{candidates: []models.Datagram{
			candidate("UA01-555555", "negative"),
			candidate("UA01-666666", "positive"),
		}}
		uplinkClient := &scriptedUplink{outcomes: []contracts.DeliveryOutcome{contracts.OutcomeUploaded}}

		usecase := NewRepublishUsecase(repo, uplinkClient, testConfig(), zap.NewNop())
		summary, err := usecase.Republish(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, summary.Candidates)
		assert.Equal(t, 2, summary.Republished)
		assert.Equal(t, 0, summary.Failed)
		assert.Len(t, repo.markedIDs, 2)
		assert.Equal(t, time.Date(2020, 10, 15, 0, 0, 0, 0, time.UTC), repo.cutoffSeen)
		require.Len(t, uplinkClient.payloads, 2)
		assert.Equal(t, "negative", uplinkClient.payloads[0].Results)
	})

	t.Run("Failed Retry Stays Eligible", func(t *testing.T) {
		repo := &fakeRepository{candidates: []models.Datagram{candidate("UA01-555555", "negative")}}
		uplinkClient := &scriptedUplink{outcomes: []contracts.DeliveryOutcome{contracts.OutcomeError}}

		usecase := NewRepublishUsecase(repo, uplinkClient, testConfig(), zap.NewNop())
		summary, err := usecase.Republish(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Candidates)
		assert.Equal(t, 0, summary.Republished)
		assert.Equal(t, 1, summary.Failed)
		assert.Empty(t, repo.markedIDs)
	})

	t.Run("Mark Failure Counts As Failed", func(t *testing.T) {
		repo := &fakeRepository{
			candidates:   []models.Datagram{candidate("UA01-555555", "negative")},
			markUploaded: assert.AnError,
		}
		uplinkClient := &scriptedUplink{outcomes: []contracts.DeliveryOutcome{contracts.OutcomeUploaded}}

		usecase := NewRepublishUsecase(repo, uplinkClient, testConfig(), zap.NewNop())
		summary, err := usecase.Republish(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, 0, summary.Republished)
	})

	t.Run("Bad Cutoff Is An Error", func(t *testing.T) {
		cfg := testConfig()
		cfg.Republish.CompletionCutoff = "not-a-time"

		usecase := NewRepublishUsecase(&fakeRepository{}, &scriptedUplink{outcomes: []contracts.DeliveryOutcome{contracts.OutcomeUploaded}}, cfg, zap.NewNop())
		_, err := usecase.Republish(context.Background())
		assert.Error(t, err)
	})
}
