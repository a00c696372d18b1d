package mediastore

import (
	"testing"

	"github.com/drewhx/portfolio-web/config"
)

func TestNewDisabledMirror(t *testing.T) {
	for _, typ := range []string{"", "none"} {
		store, err := New(&config.MirrorConfig{Type: typ})
		if err != nil {
			t.Fatalf("type %q: %v", typ, err)
		}
		if store != nil {
			t.Fatalf("type %q should disable the mirror, got %T", typ, store)
		}
	}
}

func TestNewUnknownMirrorType(t *testing.T) {
	if _, err := New(&config.MirrorConfig{Type: "ftp"}); err == nil {
		t.Fatal("expected an error for an unsupported mirror type")
	}
}
