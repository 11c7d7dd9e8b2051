package logging

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

type cellSummary struct {
	X, Y  int
	Total float64
	bins  []float64
}

// assertLogMatches fuzzy matches the first line in `actual`. The timestamp is checked by its
// format only and the line number of the caller is ignored.
func assertLogMatches(t *testing.T, actual *bytes.Buffer, expected string) {
	t.Helper()
	output, err := actual.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	output = strings.TrimSuffix(output, "\n")

	timeRe := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}(Z|[+-]\d{4})\t`)
	test.That(t, timeRe.MatchString(output), test.ShouldBeTrue)
	output = timeRe.ReplaceAllString(output, "")

	lineRe := regexp.MustCompile(`\.go:\d+\t`)
	output = lineRe.ReplaceAllString(output, ".go:N\t")
	test.That(t, output, test.ShouldEqual, expected)
}

func TestConsoleOutputFormat(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := NewBlankLogger("hog")
	logger.AddAppender(NewWriterAppender(notStdout))

	logger.Info("grid built")
	assertLogMatches(t, notStdout, "INFO\thog\tlogging/impl_test.go:N\tgrid built")

	logger.Infof("grid %dx%d", 4, 3)
	assertLogMatches(t, notStdout, "INFO\thog\tlogging/impl_test.go:N\tgrid 4x3")

	logger.Debugw("cell", "x", 1, "y", 2)
	assertLogMatches(t, notStdout, "DEBUG\thog\tlogging/impl_test.go:N\tcell\t{\"x\":1,\"y\":2}")

	// Only public fields of structs are serialized.
	logger.Infow("summary", "cell", cellSummary{X: 1, Y: 2, Total: 0.5, bins: []float64{1}})
	assertLogMatches(t, notStdout,
		"INFO\thog\tlogging/impl_test.go:N\tsummary\t{\"cell\":{\"X\":1,\"Y\":2,\"Total\":0.5}}")

	logger.Warnw("unpaired", "key")
	assertLogMatches(t, notStdout, "WARN\thog\tlogging/impl_test.go:N\tunpaired\t{\"key\":\"unpaired log key\"}")
}

func TestLevels(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := NewBlankLogger("levels")
	logger.AddAppender(NewWriterAppender(notStdout))
	logger.SetLevel(WARN)
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)

	logger.Debug("hidden")
	logger.Info("hidden")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	logger.Error("shown")
	assertLogMatches(t, notStdout, "ERROR\tlevels\tlogging/impl_test.go:N\tshown")

	sub := logger.Sublogger("grid")
	test.That(t, sub.GetLevel(), test.ShouldEqual, WARN)
	sub.Warn("sub")
	assertLogMatches(t, notStdout, "WARN\tlevels.grid\tlogging/impl_test.go:N\tsub")

	// Changing the sublogger level leaves the parent untouched.
	sub.SetLevel(DEBUG)
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)
}

func TestLevelFromString(t *testing.T) {
	for input, expected := range map[string]Level{
		"debug": DEBUG, "INFO": INFO, "": INFO, "Warn": WARN, "warning": WARN, "error": ERROR,
	} {
		level, err := LevelFromString(input)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, expected)
	}
	_, err := LevelFromString("verbose")
	test.That(t, err, test.ShouldNotBeNil)

	test.That(t, DEBUG.AsZap(), test.ShouldEqual, zapcore.DebugLevel)
	test.That(t, ERROR.String(), test.ShouldEqual, "Error")
}

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Debugw("accumulated", "cells", 12)
	logger.Sublogger("glyph").Info("rendered")

	test.That(t, logs.Len(), test.ShouldEqual, 2)
	test.That(t, logs.FilterMessage("accumulated").Len(), test.ShouldEqual, 1)
	test.That(t, logs.All()[0].ContextMap()["cells"], test.ShouldEqual, int64(12))
	test.That(t, logs.All()[1].LoggerName, test.ShouldEqual, "glyph")
}

func TestGlobal(t *testing.T) {
	orig := Global()
	defer ReplaceGlobal(orig)

	logger := NewBlankLogger("replaced")
	ReplaceGlobal(logger)
	test.That(t, Global(), test.ShouldEqual, logger)
}

func TestAsZap(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.AsZap().Infow("through zap", "bins", 9)

	test.That(t, logs.FilterMessage("through zap").Len(), test.ShouldEqual, 1)
	test.That(t, logs.FilterMessage("through zap").All()[0].ContextMap()["bins"], test.ShouldEqual, int64(9))
}
