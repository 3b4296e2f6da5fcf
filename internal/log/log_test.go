package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFromContext_NoLogger(t *testing.T) {
	t.Parallel()
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext() = nil, want no-op logger")
	}
	// Must not panic writing to the discard logger
	l.Printf("ignored %d", 1)
	l.Println("ignored")
}

func TestWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false, false))

	FromContext(ctx).Println("hello")
	if got := buf.String(); got != "hello\n" {
		t.Errorf("output = %q, want %q", got, "hello\n")
	}
}

func TestCommand_VerboseOnly(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, false, false).Command("git", "fetch")
	if buf.Len() != 0 {
		t.Errorf("non-verbose Command wrote %q, want nothing", buf.String())
	}

	buf.Reset()
	New(&buf, true, false).Command("git", "fetch", "--all")
	if got := buf.String(); got != "$ git fetch --all\n" {
		t.Errorf("verbose Command = %q, want %q", got, "$ git fetch --all\n")
	}
}

func TestQuiet_SuppressesOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf, true, true)
	l.Println("diagnostic")
	l.Warnf("something %s", "odd")
	l.Command("git", "status")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q, want nothing", buf.String())
	}
}

func TestWarnf_Prefix(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, false, false).Warnf("skipping %s", "/tmp/x")
	if got := buf.String(); !strings.HasPrefix(got, "Warning: ") {
		t.Errorf("Warnf output = %q, want Warning: prefix", got)
	}
}
