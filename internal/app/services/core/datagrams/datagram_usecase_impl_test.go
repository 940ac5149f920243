package datagrams

import (
	"context"
	"testing"
	"time"

	"lisagent-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRepository struct {
	datagrams  []models.Datagram
	cutoffSeen time.Time
}

func (f *fakeRepository) SaveDatagram(ctx context.Context, datagram *models.Datagram) (string, error) {
	return "", nil
}

func (f *fakeRepository) FindCreatedAfter(ctx context.Context, cutoff time.Time) ([]models.Datagram, error) {
	f.cutoffSeen = cutoff
	return f.datagrams, nil
}

func (f *fakeRepository) FindRepublishCandidates(ctx context.Context, cutoff time.Time) ([]models.Datagram, error) {
	return nil, nil
}

func (f *fakeRepository) MarkUploaded(ctx context.Context, datagramID string) error {
	return nil
}

func strPtr(s string) *string { return &s }

func TestListDatagrams(t *testing.T) {
	t.Run("Maps Model To Listing", func(t *testing.T) {
		completion := time.Date(2020, 11, 4, 15, 1, 2, 0, time.UTC)
		repo := &fakeRepository{datagrams: []models.Datagram{{
			ID:                     primitive.NewObjectID(),
			InstrumentModel:        strPtr("Sofia"),
			InstrumentSerialNumber: strPtr("29000021"),
			Patient:                &models.Patient{PatientID: strPtr("UA01-555555")},
			Order:                  &models.Order{TestType: strPtr("SARS")},
			Results:                []models.Result{{TestValue: strPtr("negative"), Completion: &completion}},
			MatchesPrimaryRoute:    true,
			Uploaded:               true,
			CreatedAt:              time.Date(2020, 11, 4, 15, 2, 0, 0, time.UTC),
		}}}

		usecase := NewDatagramUsecase(repo)
		listing, err := usecase.ListDatagrams(context.Background(), "")
		require.NoError(t, err)

		require.Len(t, listing, 1)
		assert.Equal(t, "Sofia", listing[0].InstrumentModel)
		assert.Equal(t, "29000021", listing[0].InstrumentSerialNumber)
		assert.Equal(t, "UA01-555555", listing[0].VialID)
		assert.Equal(t, "SARS", listing[0].TestType)
		assert.Equal(t, []string{"negative"}, listing[0].ResultValues)
		assert.True(t, listing[0].Uploaded)
		assert.True(t, repo.cutoffSeen.IsZero())
	})

	t.Run("Cutoff Is Parsed", func(t *testing.T) {
		repo := &fakeRepository{}
		usecase := NewDatagramUsecase(repo)

		_, err := usecase.ListDatagrams(context.Background(), "20201104000000")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 11, 4, 0, 0, 0, 0, time.UTC), repo.cutoffSeen)
	})

	t.Run("Bad Cutoff Is An Error", func(t *testing.T) {
		usecase := NewDatagramUsecase(&fakeRepository{})
		_, err := usecase.ListDatagrams(context.Background(), "yesterday")
		assert.Error(t, err)
	})
}
