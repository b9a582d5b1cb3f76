package state

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"masterlist/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Out != os.Stdout {
		t.Error("Environment output should default to stdout")
	}
	if env.Cfg != nil || env.Rpt != nil || env.Log != nil {
		t.Error("Configuration, report and log are set by the program later")
	}
	if EnvFromContext(ctx) != env {
		t.Error("Same environment expected for the same context")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Second)}
	if uptime := env.Uptime(); uptime < time.Second || uptime > time.Minute {
		t.Errorf("Uptime() = %v, expected a bit more than 1s", uptime)
	}
}

func TestLocalEnv_Printf(t *testing.T) {
	var out bytes.Buffer
	env := &LocalEnv{Out: &out}
	env.Printf("Done. Generated %d page(s) into: %s\n", 2, "/tmp/out")

	if got, want := out.String(), "Done. Generated 2 page(s) into: /tmp/out\n"; got != want {
		t.Errorf("Printf() wrote %q, want %q", got, want)
	}

	// no output configured
	(&LocalEnv{}).Printf("ignored")
}

func TestLocalEnv_StdLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	env := &LocalEnv{Log: zap.New(core)}
	env.RedirectStdLog()
	if env.restoreStdLog == nil {
		t.Fatal("Expected restoreStdLog to be set")
	}
	log.Print("from standard logger")
	env.RestoreStdLog()

	entries := logs.All()
	if len(entries) != 1 || !strings.Contains(entries[0].Message, "from standard logger") {
		t.Errorf("standard log output must be redirected, got %v", entries)
	}

	t.Run("repeated", func(t *testing.T) {
		env := &LocalEnv{Log: zaptest.NewLogger(t)}
		for i := range 3 {
			env.RedirectStdLog()
			if env.restoreStdLog == nil {
				t.Errorf("Iteration %d: restoreStdLog not set", i)
			}
			env.RestoreStdLog()
		}
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		// Should not panic
		env.RestoreStdLog()
	})
}

func TestLocalEnv_Integration(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	var out bytes.Buffer
	env.Out = &out

	env.RedirectStdLog()
	env.Printf("%s\n", env.Cfg.Output.Prefix)
	env.RestoreStdLog()

	if out.String() != "masterlist\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}
