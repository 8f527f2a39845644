package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct{}

func (stubEngine) Name() string { return "stub" }

func (stubEngine) Recognize(context.Context, []byte) (string, error) { return "stub", nil }

func withDefaultEngine(t *testing.T, e Engine) {
	t.Helper()
	prev := DefaultEngine()
	SetDefaultEngine(e)
	t.Cleanup(func() { SetDefaultEngine(prev) })
}

func TestSelectAutoFallsBackToCLI(t *testing.T) {
	withDefaultEngine(t, nil)

	e, err := Select(EngineAuto, "/usr/bin/tesseract", nil)
	require.NoError(t, err)
	cli, ok := e.(*CLIEngine)
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/tesseract", cli.Path())
}

func TestSelectAutoPrefersRegisteredEngine(t *testing.T) {
	withDefaultEngine(t, stubEngine{})

	e, err := Select("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "stub", e.Name())
}

func TestSelectCLIIgnoresRegisteredEngine(t *testing.T) {
	withDefaultEngine(t, stubEngine{})

	e, err := Select(EngineCLI, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "tesseract-cli", e.Name())
}

func TestSelectLibrary(t *testing.T) {
	withDefaultEngine(t, nil)

	_, err := Select(EngineLibrary, "", nil)
	assert.ErrorContains(t, err, "-tags tesseract")

	SetDefaultEngine(stubEngine{})
	e, err := Select(EngineLibrary, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "stub", e.Name())
}

func TestSelectUnknown(t *testing.T) {
	_, err := Select("paddle", "", nil)
	assert.EqualError(t, err, `unknown ocr engine "paddle"`)
}
