package dbmongo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MediaStorage stores the raw media blobs referenced by file rows in MySQL.
// The file row is the source of truth for type and MIME metadata; GridFS
// only keeps what the blob itself needs.
type MediaStorage struct {
	gridFS *gridfs.Bucket
}

func NewMediaStorage(mongoClient *MongoClient) *MediaStorage {
	return &MediaStorage{
		gridFS: mongoClient.GridFS,
	}
}

// UploadBlob writes content to GridFS and returns the storage key to put on
// the file row.
func (ms *MediaStorage) UploadBlob(ctx context.Context, filename, mimeType string, content io.Reader) (string, error) {
	metadata := bson.M{
		"mime_type":   mimeType,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, content); err != nil {
		return "", fmt.Errorf("blob copy failed: %w", err)
	}

	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

// DownloadBlob streams the blob stored under storageKey.
func (ms *MediaStorage) DownloadBlob(ctx context.Context, storageKey string) (io.Reader, int64, error) {
	objectID, err := primitive.ObjectIDFromHex(storageKey)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid storage key: %w", err)
	}

	var buf bytes.Buffer
	size, err := ms.gridFS.DownloadToStream(objectID, &buf)
	if err != nil {
		return nil, 0, fmt.Errorf("download failed: %w", err)
	}

	return &buf, size, nil
}

// DeleteBlob removes the blob stored under storageKey.
func (ms *MediaStorage) DeleteBlob(ctx context.Context, storageKey string) error {
	objectID, err := primitive.ObjectIDFromHex(storageKey)
	if err != nil {
		return fmt.Errorf("invalid storage key: %w", err)
	}
	return ms.gridFS.Delete(objectID)
}
