package mediastore

import (
	"context"
	"fmt"

	"github.com/Backblaze/blazer/b2"

	"github.com/drewhx/portfolio-web/config"
)

type b2Store struct {
	prefix string
	bucket *b2.Bucket
}

func newB2Store(cfg *config.B2Config) (*b2Store, error) {
	client, err := b2.NewClient(context.Background(), cfg.KeyID, cfg.ApplicationKey)
	if err != nil {
		return nil, fmt.Errorf("fail to authorize b2 client: %w", err)
	}

	bucket, err := client.Bucket(context.Background(), cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("fail to open b2 bucket '%s': %w", cfg.BucketName, err)
	}

	return &b2Store{bucket: bucket, prefix: cfg.Prefix}, nil
}

func (s *b2Store) Upload(ctx context.Context, name string, contentType string, data []byte) error {
	obj := s.bucket.Object(s.prefix + name)
	w := obj.NewWriter(ctx, b2.WithAttrsOption(&b2.Attrs{ContentType: contentType}))
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("fail to write %s to b2: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("fail to finish b2 upload of %s: %w", name, err)
	}
	return nil
}
