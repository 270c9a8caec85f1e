package responderRepository

import (
	s3Pkg "ResponderBot/pkg/s3"
	"fmt"
	"strings"
)

type s3Backend struct {
	client s3Pkg.ItfS3
	key    string
}

// NewS3Backend stores the document as a single S3 object. S3 PUTs are
// atomic per object, so readers see either the old or the new document.
func NewS3Backend(client s3Pkg.ItfS3, key string) DocumentBackend {
	return &s3Backend{
		client: client,
		key:    key,
	}
}

func (b *s3Backend) Read() ([]byte, error) {
	exists, err := b.client.ObjectExists(b.key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrDocumentNotFound
	}

	data, err := b.client.GetObject(b.key)
	if err != nil {
		if strings.Contains(err.Error(), "NoSuchKey") {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return data, nil
}

func (b *s3Backend) Write(data []byte) error {
	return b.client.PutObject(b.key, data)
}

func (b *s3Backend) Exists() bool {
	exists, err := b.client.ObjectExists(b.key)
	return err == nil && exists
}

func (b *s3Backend) Location() string {
	return fmt.Sprintf("s3://%s/%s", b.client.BucketName(), b.key)
}
