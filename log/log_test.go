package log

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/op/go-logging"
)

func TestSink(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	logger := New("sink")
	logger.Noticef("frame %v", 1)

	have := buf.String()
	for _, want := range []string{"[sink]", "[NOTICE]", "frame 1"} {
		if !strings.Contains(have, want) {
			t.Fatalf("want %q in output\nhave: %q", want, have)
		}
	}
}

func TestLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetLevel(Notice)
		SetSink(os.Stderr)
	}()

	logger := New("level")

	logger.Debugf("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug written at default level: %q", buf.String())
	}

	SetLevel(Debug)
	logger.Debugf("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug not written at debug level: %q", buf.String())
	}

	buf.Reset()
	SetLevel(Error)
	logger.Warningf("dropped")
	if buf.Len() != 0 {
		t.Fatalf("warning written at error level: %q", buf.String())
	}
}

func TestLevelMatchesBackend(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetLevel(Notice)
		SetSink(os.Stderr)
	}()

	levels := map[Level]logging.Level{
		Critical: logging.CRITICAL,
		Error:    logging.ERROR,
		Warning:  logging.WARNING,
		Notice:   logging.NOTICE,
		Info:     logging.INFO,
		Debug:    logging.DEBUG,
	}
	for lvl, want := range levels {
		SetLevel(lvl)
		if have := backend.GetLevel(""); have != want {
			t.Fatalf("SetLevel(%v)\nwant: %v\nhave: %v", lvl, want, have)
		}
	}

	SetLevel(Level(logging.DEBUG))
	New("raw").Debugf("converted")
	if !strings.Contains(buf.String(), "converted") {
		t.Fatalf("level converted from go-logging not applied: %q", buf.String())
	}
}
