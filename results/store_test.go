package results

import (
	"testing"
	"time"
)

func TestStore_PutGet(t *testing.T) {
	s := NewStore(time.Minute)
	s.Put("sess-1", "<p>hello</p>")

	got, ok := s.Get("sess-1")
	if !ok || got != "<p>hello</p>" {
		t.Fatalf("expected stored fragment, got %q (ok=%v)", got, ok)
	}
}

func TestStore_OverwriteOnNewUpload(t *testing.T) {
	s := NewStore(time.Minute)
	s.Put("sess-1", "<p>old</p>")
	s.Put("sess-1", "<p>new</p>")

	got, _ := s.Get("sess-1")
	if got != "<p>new</p>" {
		t.Fatalf("expected newest result, got %q", got)
	}
}

func TestStore_MissingKey(t *testing.T) {
	s := NewStore(time.Minute)
	if _, ok := s.Get("nope"); ok {
		t.Fatal("expected miss for unknown session")
	}
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(20 * time.Millisecond)
	s.Put("sess-1", "<p>short-lived</p>")

	time.Sleep(60 * time.Millisecond)
	if _, ok := s.Get("sess-1"); ok {
		t.Fatal("expected entry to expire")
	}
}
