package crczap

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/gocrc/crc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logLineEnding = "%%%\n%%%"

func NewCustomLogger(pipeTo io.Writer) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.LineEnding = logLineEnding
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(pipeTo),
		zapcore.DebugLevel,
	)
}

func TestCRCZapLog(t *testing.T) {
	b := &bytes.Buffer{}
	logger := zap.New(NewCustomLogger(b))
	_, err := crc.New(crc.CRC32,
		crc.WithLogger(NewZapLogger(logger, Options{LogLevel: zapcore.DebugLevel})),
		crc.WithLogLevel(crc.LogLevelDebug),
		crc.WithTableCache(crc.NewTableCache(0)))
	if err != nil {
		t.Fatal("unexpected error creating calculator: ", err)
	}
	if err := logger.Sync(); err != nil {
		t.Fatal("logger sync failed")
	}
	logOutput := strings.Split(b.String(), logLineEnding)
	found := false
	for _, logEntry := range logOutput {
		if len(logEntry) == 0 {
			continue
		}
		if strings.Contains(logEntry, "debug\tcrc\tcrc: built lookup table for %s (bits=%d, polynomial=%#x).") &&
			strings.Contains(logEntry, "\"name\": \"CRC-32\", \"bits\": 32") {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("log output didn't match expectations: ", strings.Join(logOutput, "\n"))
	}
}

func TestCRCZapLevelFilter(t *testing.T) {
	b := &bytes.Buffer{}
	logger := NewZapLogger(zap.New(NewCustomLogger(b)), Options{LogLevel: zapcore.WarnLevel})
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warning("kept", crc.NewLogField("bits", 16))
	if out := b.String(); strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Fatal("unexpected log output: ", out)
	}
	if logger.Name() != DefaultName {
		t.Fatalf("expected logger name %q, got %q", DefaultName, logger.Name())
	}
	if NewUnnamedZapLogger(zap.NewNop()).Name() != "" {
		t.Fatal("expected unnamed logger")
	}
}
