package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawrows/pkg/errors"
	"github.com/matzehuels/drawrows/pkg/observability"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecute(t *testing.T) {
	input := writeInput(t, "1 5\n2 3\n6 8\n")
	out := t.TempDir()

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		Input:     input,
		OutputDir: out,
		Formats:   []string{"txt", "svg", "json"},
		Verify:    true,
		Logger:    logger,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := result.Assignment.Rows; len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 1 {
		t.Errorf("Rows = %v, want [1 2 1]", got)
	}
	if result.Stats.Intervals != 3 || result.Stats.Rows != 2 || result.Stats.Segments != 4 {
		t.Errorf("Stats = %+v", result.Stats)
	}
	if len(result.Files) != 4 {
		t.Fatalf("Files = %v, want 4 paths", result.Files)
	}

	rowsData, err := os.ReadFile(filepath.Join(out, "PartA.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(rowsData) != "1\n2\n1\n" {
		t.Errorf("PartA.txt = %q", rowsData)
	}
	segData, err := os.ReadFile(filepath.Join(out, "PartB.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(segData) != "1\t1\t1\n2\t3\t2\n4\t5\t1\n6\t8\t1\n" {
		t.Errorf("PartB.txt = %q", segData)
	}
	for _, name := range []string{"regions.svg", "regions.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	for _, want := range []string{"loaded intervals", "assigned rows", "rendered outputs", "verified assignment"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestExecuteDefaultsOutputDirToInputDir(t *testing.T) {
	input := writeInput(t, "1 2\n")

	result, err := NewRunner(nil).Execute(context.Background(), Options{Input: input})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := filepath.Join(filepath.Dir(input), "PartA.txt")
	if result.Files[0] != want {
		t.Errorf("Files[0] = %q, want %q", result.Files[0], want)
	}
}

func TestExecuteDryRun(t *testing.T) {
	input := writeInput(t, "1 2\n3 4\n")
	out := filepath.Join(t.TempDir(), "out")

	result, err := NewRunner(nil).Execute(context.Background(), Options{
		Input: input, OutputDir: out, DryRun: true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("dry run wrote %v", result.Files)
	}
	if len(result.Artifacts) != 2 {
		t.Errorf("Artifacts = %d, want 2", len(result.Artifacts))
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("dry run created the output directory")
	}
}

func TestExecuteBadRecordWritesNothing(t *testing.T) {
	input := writeInput(t, "1 5\n7 3\n")
	out := t.TempDir()

	_, err := NewRunner(nil).Execute(context.Background(), Options{Input: input, OutputDir: out})
	if !errors.Is(err, errors.ErrCodeInvalidRange) {
		t.Fatalf("err = %v, want INVALID_RANGE", err)
	}
	if errors.LineOf(err) != 2 {
		t.Errorf("line = %d, want 2", errors.LineOf(err))
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Errorf("output dir not empty: %v", entries)
	}
}

func TestExecuteMissingInput(t *testing.T) {
	_, err := NewRunner(nil).Execute(context.Background(), Options{
		Input: filepath.Join(t.TempDir(), "missing.txt"),
	})
	if !errors.Is(err, errors.ErrCodeResourceUnavailable) {
		t.Errorf("err = %v, want RESOURCE_UNAVAILABLE", err)
	}
}

func TestExecuteCancelled(t *testing.T) {
	input := writeInput(t, "1 2\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).Execute(ctx, Options{Input: input, OutputDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestExecuteEmptyInput(t *testing.T) {
	input := writeInput(t, "")
	out := t.TempDir()

	result, err := NewRunner(nil).Execute(context.Background(), Options{Input: input, OutputDir: out})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Stats.Rows != 0 || result.Stats.Segments != 0 {
		t.Errorf("Stats = %+v", result.Stats)
	}
	data, err := os.ReadFile(filepath.Join(out, "PartA.txt"))
	if err != nil || len(data) != 0 {
		t.Errorf("PartA.txt = %q, %v; want empty file", data, err)
	}
}

func TestRenderNameCollision(t *testing.T) {
	input := writeInput(t, "1 2\n")
	runner := NewRunner(nil)
	ivs, err := runner.Load(context.Background(), Options{Input: input})
	if err != nil {
		t.Fatal(err)
	}
	res, err := runner.Assign(context.Background(), ivs, Options{Verify: true})
	if err != nil {
		t.Fatal(err)
	}

	_, err = runner.Render(context.Background(), res, Options{
		Input:    input,
		Formats:  []string{"txt", "svg"},
		RowsFile: "regions.svg",
	})
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("err = %v, want INVALID_PATH", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnLoadStart(context.Context, string) { h.record("load") }
func (h *recordingHooks) OnAssignComplete(context.Context, int, int, time.Duration, error) {
	h.record("assign")
}
func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.record("render")
}
func (h *recordingHooks) OnWrite(context.Context, string, int) { h.record("write") }

func TestExecuteCallsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	input := writeInput(t, "1 2\n")
	if _, err := NewRunner(nil).Execute(context.Background(), Options{Input: input, OutputDir: t.TempDir()}); err != nil {
		t.Fatal(err)
	}

	want := "load,assign,render,write,write"
	if got := strings.Join(hooks.events, ","); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
}
