package services

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"
)

// B2StorageService stores blobs in a Backblaze B2 bucket.
type B2StorageService struct {
	client     *b2.Client
	bucketName string
	bucket     *b2.Bucket
}

func NewB2StorageService(keyID, applicationKey, bucketName string) (*B2StorageService, error) {
	ctx := context.Background()

	client, err := b2.NewClient(ctx, keyID, applicationKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create B2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket %s: %w", bucketName, err)
	}

	return &B2StorageService{
		client:     client,
		bucketName: bucketName,
		bucket:     bucket,
	}, nil
}

func (s *B2StorageService) Save(ctx context.Context, key string, r io.Reader) (*StoreResult, error) {
	obj := s.bucket.Object(key)
	writer := obj.NewWriter(ctx)

	hasher := sha1.New()
	size, err := io.Copy(io.MultiWriter(writer, hasher), r)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to upload blob to B2: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close B2 writer: %w", err)
	}

	return &StoreResult{
		Size: size,
		SHA1: hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

func (s *B2StorageService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj := s.bucket.Object(key)

	if _, err := obj.Attrs(ctx); err != nil {
		if b2.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to stat B2 object: %w", err)
	}

	return obj.NewReader(ctx), nil
}

func (s *B2StorageService) Delete(ctx context.Context, key string) error {
	obj := s.bucket.Object(key)

	if err := obj.Delete(ctx); err != nil {
		if b2.IsNotExist(err) {
			return ErrBlobNotFound
		}
		return fmt.Errorf("failed to delete blob from B2: %w", err)
	}
	return nil
}
