package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	// Swap the base logger to capture output
	var buf bytes.Buffer
	saved := baseLogger
	savedLevel := GetLogLevel()
	baseLogger = newLogger(&buf)
	defer func() { baseLogger = saved; SetLogLevel(savedLevel.String()) }()

	SetLogLevel("info")

	msg := "rendering memory figure: swap peaked at 100.0% of limit (4 panels)"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "100.0% of limit") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "%!o(MISSING)") || strings.Contains(out, "%!f(MISSING)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Fatalf("expected level in output: %s", out)
	}
}

func TestSetLogLevel_FiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	savedLevel := GetLogLevel()
	baseLogger = newLogger(&buf)
	defer func() { baseLogger = saved; SetLogLevel(savedLevel.String()) }()

	SetLogLevel("warn")
	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("messages below warn leaked: %s", out)
	}
	if !strings.Contains(out, "warn 3") {
		t.Fatalf("warn message missing: %s", out)
	}

	SetLogLevel("bogus")
	if GetLogLevel() != LevelWarn {
		t.Fatalf("unknown level name changed the level to %v", GetLogLevel())
	}
}
