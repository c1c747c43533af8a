package crczerolog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gocrc/crc"
	"github.com/rs/zerolog"
)

const logLineEnding = "%%%\n%%%"

func TestCRCZeroLog(t *testing.T) {
	b := &bytes.Buffer{}
	output := zerolog.ConsoleWriter{Out: b}
	output.NoColor = true
	output.FormatExtra = func(m map[string]interface{}, buffer *bytes.Buffer) error {
		buffer.WriteString(logLineEnding)
		return nil
	}
	logger := zerolog.New(output)
	_, err := crc.New(nil,
		crc.WithLogger(NewZerologLogger(logger)),
		crc.WithLogLevel(crc.LogLevelDebug))
	if err == nil {
		t.Fatal("expected error creating calculator")
	}
	logOutput := strings.Split(b.String(), logLineEnding+"\n")
	found := false
	for _, logEntry := range logOutput {
		if len(logEntry) == 0 {
			continue
		}
		if strings.Contains(logEntry, "crc: unable to create calculator: %v.") &&
			strings.Contains(logEntry, "logger=crc") &&
			strings.Contains(logEntry, "unsupported configuration") {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("log output didn't match expectations: ", strings.Join(logOutput, "\n"))
	}
}

func TestCRCZeroLogUnnamed(t *testing.T) {
	b := &bytes.Buffer{}
	logger := NewUnnamedZerologLogger(zerolog.New(b))
	logger.Info("table built", crc.NewLogField("bits", 32))
	out := b.String()
	if strings.Contains(out, DefaultNameField) || !strings.Contains(out, "\"bits\":32") {
		t.Fatal("unexpected log output: ", out)
	}
}
