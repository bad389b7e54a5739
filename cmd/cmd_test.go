package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rubiojr/tagalog/pkg/config"
	"github.com/rubiojr/tagalog/pkg/log"
	"github.com/rubiojr/tagalog/pkg/tagalog"
)

// writeTestConfig saves a config logging to a file inside a temp dir and
// returns the config path and the log path
func writeTestConfig(t *testing.T, mutate func(*config.Config)) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	logPath := filepath.Join(dir, "tagalog.log")

	cfg := config.GetDefaultConfig()
	cfg.LogDestination = logPath
	cfg.MessageFormat = "[$T] $M"
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.SaveConfig(cfgPath); err != nil {
		t.Fatalf("saving config: %v", err)
	}
	return cfgPath, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("reading log: %v", err)
	}
	return string(data)
}

func TestLogMessage(t *testing.T) {
	cfgPath, logPath := writeTestConfig(t, nil)

	var stderr bytes.Buffer
	if err := logMessage(context.Background(), cfgPath, "hello there", []string{"tag_1", "off", "custom"}, &stderr); err != nil {
		t.Fatalf("logMessage: %v", err)
	}
	if err := logMessage(context.Background(), cfgPath, "plain", nil, &stderr); err != nil {
		t.Fatalf("logMessage: %v", err)
	}
	if err := logMessage(context.Background(), cfgPath, []string{"a", "b"}, []string{"tag_2"}, &stderr); err != nil {
		t.Fatalf("logMessage: %v", err)
	}

	want := "[tag_1] hello there\n[custom] hello there\n[untagged] plain\n[tag_2] [a, b]\n"
	if got := readLog(t, logPath); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output %q", stderr.String())
	}
}

func TestLogMessageSkipped(t *testing.T) {
	cfgPath, logPath := writeTestConfig(t, nil)

	var stderr bytes.Buffer
	if err := logMessage(context.Background(), cfgPath, "nope", []string{"off"}, &stderr); err != nil {
		t.Fatalf("logMessage: %v", err)
	}
	if strings.TrimSpace(stderr.String()) != "skipped" {
		t.Errorf("expected skipped notice, got %q", stderr.String())
	}
	if got := readLog(t, logPath); got != "" {
		t.Errorf("expected empty log, got %q", got)
	}
}

func TestLogMessageKillSwitch(t *testing.T) {
	cfgPath, logPath := writeTestConfig(t, nil)
	if err := setKillSwitch(cfgPath, "on"); err != nil {
		t.Fatalf("setKillSwitch: %v", err)
	}

	var stderr bytes.Buffer
	if err := logMessage(context.Background(), cfgPath, "hello", []string{"force"}, &stderr); err != nil {
		t.Fatalf("logMessage: %v", err)
	}
	if got := readLog(t, logPath); got != "" {
		t.Errorf("expected nothing logged with the kill switch on, got %q", got)
	}

	if err := setKillSwitch(cfgPath, "maybe"); err == nil {
		t.Error("expected an error for an invalid state")
	}
}

func TestLogMessageStderrSink(t *testing.T) {
	cfgPath, logPath := writeTestConfig(t, func(c *config.Config) {
		c.Sink.Type = "stderr"
	})

	var stderr bytes.Buffer
	if err := logMessage(context.Background(), cfgPath, "elsewhere", nil, &stderr); err != nil {
		t.Fatalf("logMessage: %v", err)
	}
	if got := readLog(t, logPath); got != "" {
		t.Errorf("the file should be untouched with a custom sink, got %q", got)
	}
}

func TestLogMessageUnknownSink(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, func(c *config.Config) {
		c.Sink.Type = "pigeon"
	})
	if err := logMessage(context.Background(), cfgPath, "x", nil, &bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown sink")
	}
}

func TestSetTagPersists(t *testing.T) {
	cfgPath, logPath := writeTestConfig(t, nil)

	if err := setTag(cfgPath, "force", false); err != nil {
		t.Fatalf("setTag: %v", err)
	}
	if err := setTag(cfgPath, "off", true); err != nil {
		t.Fatalf("setTag: %v", err)
	}
	if err := setTag(cfgPath, "", true); err == nil {
		t.Error("expected an error for an empty tag")
	}

	var stderr bytes.Buffer
	for _, tag := range []string{"force", "off"} {
		if err := logMessage(context.Background(), cfgPath, "m", []string{tag}, &stderr); err != nil {
			t.Fatalf("logMessage: %v", err)
		}
	}
	if got := readLog(t, logPath); got != "[off] m\n" {
		t.Errorf("unexpected log %q", got)
	}
}

func TestListTags(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := listTags(cfgPath, &out); err != nil {
		t.Fatalf("listTags: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Tags", "tag_1", "untagged", "off", "Enabled", "Disabled", "not listed"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestPipe(t *testing.T) {
	cfgPath, logPath := writeTestConfig(t, nil)

	in := strings.NewReader("first\nsecond\n")
	if err := pipe(context.Background(), cfgPath, []string{"tag_3"}, false, in); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	want := "[tag_3] first\n[tag_3] second\n"
	if got := readLog(t, logPath); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPipeWatchWithoutChanges(t *testing.T) {
	cfgPath, logPath := writeTestConfig(t, nil)

	if err := pipe(context.Background(), cfgPath, nil, true, strings.NewReader("watched\n")); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	if got := readLog(t, logPath); got != "[untagged] watched\n" {
		t.Errorf("unexpected log %q", got)
	}
}

func TestReloadConfig(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, nil)
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	logger := tagalog.New(cfg.LoggerConfig())

	if err := setTag(cfgPath, "tag_1", false); err != nil {
		t.Fatalf("setTag: %v", err)
	}
	if err := reloadConfig(cfgPath, logger, cfg.Sink); err != nil {
		t.Fatalf("reloadConfig: %v", err)
	}
	if logger.Config().Enabled("tag_1") {
		t.Error("expected tag_1 to be disabled after reload")
	}
}

func TestInitConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := initConfig(cfgPath, "/tmp/elsewhere.log"); err != nil {
		t.Fatalf("initConfig: %v", err)
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogDestination != "/tmp/elsewhere.log" {
		t.Errorf("unexpected destination %q", cfg.LogDestination)
	}
}

func TestPipeWriteFailureStopsReader(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, func(c *config.Config) {
		c.LogDestination = filepath.Join(t.TempDir(), "missing", "tagalog.log")
	})

	before := runtime.NumGoroutine()
	in := strings.NewReader(strings.Repeat("line\n", 100))
	if err := pipe(context.Background(), cfgPath, nil, false, in); err == nil {
		t.Fatal("expected an error for an unwritable destination")
	}

	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before {
		if time.Now().After(deadline) {
			t.Fatalf("input reader still running: %d goroutines, started with %d", runtime.NumGoroutine(), before)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestOpenLoggerFileSinkDebug(t *testing.T) {
	cfgPath, logPath := writeTestConfig(t, nil)
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)
	log.SetGlobalDebug(false)
	log.DisableDebugFor("cli")

	if _, closeSink, err := openLogger(context.Background(), cfg); err != nil {
		t.Fatalf("openLogger: %v", err)
	} else {
		closeSink()
	}
	if buf.Len() != 0 {
		t.Errorf("expected no diagnostics with debug off, got %q", buf.String())
	}

	log.EnableDebugFor("cli")
	defer log.DisableDebugFor("cli")
	if _, closeSink, err := openLogger(context.Background(), cfg); err != nil {
		t.Fatalf("openLogger: %v", err)
	} else {
		closeSink()
	}
	if !strings.Contains(buf.String(), "using file sink "+logPath) {
		t.Errorf("expected the resolved destination in debug output, got %q", buf.String())
	}
}
