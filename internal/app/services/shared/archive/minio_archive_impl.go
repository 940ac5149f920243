package archive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioTranscriptArchive struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioTranscriptArchive(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.TranscriptArchive {
	return &minioTranscriptArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

// StoreTranscript writes the raw session lines as one text object, keyed by
// day and session ID so transcripts stay browsable in the console.
func (a *minioTranscriptArchive) StoreTranscript(ctx context.Context, sessionID string, lines []string) error {
	objectName := fmt.Sprintf("transcripts/%s/%s.txt", time.Now().UTC().Format("20060102"), sessionID)
	payload := strings.Join(lines, "\n")

	_, err := a.MinioClient.PutObject(
		ctx,
		a.BucketName,
		objectName,
		strings.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMETextPlain,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, a.BucketName)
	}

	a.Log.Info("minioTranscriptArchive.StoreTranscript succeeded",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingBucketNameKey, a.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return nil
}
