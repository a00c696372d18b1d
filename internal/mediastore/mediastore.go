// Package mediastore mirrors uploaded media files to an object storage
// bucket. The local uploads directory stays the serving source; the mirror is
// an off-site copy.
package mediastore

import (
	"context"
	"fmt"

	"github.com/drewhx/portfolio-web/config"
)

type Store interface {
	Upload(ctx context.Context, name string, contentType string, data []byte) error
}

// New builds the mirror backend named by the configuration. A type of "none",
// or no type at all, disables mirroring and returns a nil Store.
func New(cfg *config.MirrorConfig) (Store, error) {
	switch cfg.Type {
	case "", "none":
		return nil, nil
	case "b2":
		return newB2Store(&cfg.B2)
	case "s3":
		return newS3Store(&cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported mirror type '%s'", cfg.Type)
	}
}
