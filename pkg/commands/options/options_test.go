package options

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/session"
	"tableflip.dev/mood/pkg/store"
)

func TestActivityFlag(t *testing.T) {
	o := &ActivityOptions{}
	cmd := &cobra.Command{Use: "x"}
	AddActivityArgs(cmd, o)

	if err := cmd.ParseFlags([]string{"-a", "music,Coffee Break", "--activity", "work"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(o.Activities, ","); got != "music,coffee,work" {
		t.Fatalf("unexpected activities %q", got)
	}

	if err := cmd.ParseFlags([]string{"-a", "skydiving"}); err == nil {
		t.Fatalf("expected unknown activity to be rejected")
	}
}

func TestWindowFlag(t *testing.T) {
	o := &WindowOptions{}
	cmd := &cobra.Command{Use: "x"}
	AddWindowArgs(cmd, o, "1w")

	d, err := o.GetWindow()
	if err != nil || d != 7*24*time.Hour {
		t.Fatalf("unexpected default window %v %v", d, err)
	}
	if err := cmd.ParseFlags([]string{"--window", "all"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d, err := o.GetWindow(); err != nil || d != 0 {
		t.Fatalf("expected unbounded window, got %v %v", d, err)
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("expected error to be swallowed, got %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := o.HandleError(session.ErrNoMood); err != nil {
		t.Fatalf("expected error to be swallowed, got %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"error":"session: no mood selected","kind":"validation"}` {
		t.Fatalf("unexpected output %q", buf.String())
	}

	o = &OutputOptions{}
	if err := o.HandleError(errors.New("boom")); err == nil {
		t.Fatalf("expected error to pass through")
	}
}

func TestErrorKind(t *testing.T) {
	werr := fmt.Errorf("saving: %w", &store.WriteError{Key: "moodEntries", Err: errors.New("disk full")})
	if got := ErrorKind(werr); got != "write" {
		t.Fatalf("expected write, got %q", got)
	}
	if got := ErrorKind(errors.New("other")); got != "" {
		t.Fatalf("expected no kind, got %q", got)
	}
}

func TestStoreOverrides(t *testing.T) {
	t.Setenv("MOOD_CONFIG_PATH", t.TempDir())
	o := &StoreOptions{Path: "/tmp/elsewhere", Backend: "sqlite"}
	cfg, err := o.Config()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BasePath() != "/tmp/elsewhere" || cfg.Backend() != "sqlite" {
		t.Fatalf("unexpected config %s %s", cfg.BasePath(), cfg.Backend())
	}
}

func TestInteractiveFlag(t *testing.T) {
	o := &InteractiveOptions{}
	cmd := &cobra.Command{Use: "x"}
	AddInteractiveArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"-i"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.Interactive {
		t.Fatalf("expected interactive to be set")
	}
}
