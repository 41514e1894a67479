package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GabrielNunesIT/openapi-table/internal/config"
	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warningf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

const userSpec = `
openapi: 3.0.3
servers:
  - url: https://api.tripgen.com/users
paths:
  /users/{id}:
    get:
      summary: Get user
      parameters:
        - name: id
          in: path
          schema:
            type: string
      responses:
        '200':
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/User'
    options:
      summary: preflight
components:
  schemas:
    User:
      type: object
      properties:
        id:
          type: string
        name:
          type: string
`

const tripSpec = `
openapi: 3.0.3
paths:
  /trips:
    post:
      summary: Create trip
    get:
      summary: List trips
`

var fixedTime = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
}

func newConfig(inputDir, output, format string) *config.Config {
	cfg := config.Defaults()
	cfg.InputDir = inputDir
	cfg.OutputFile = output
	cfg.Format = format

	return &cfg
}

func TestRun_Flat(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"user-service-api.yaml": userSpec,
		"trip-service-api.yml":  tripSpec,
		"broken-api.yaml":       "paths: [unclosed",
		"notes.txt":             "ignored",
	})

	output := filepath.Join(t.TempDir(), "report.txt")
	log := &recordingLogger{}

	result, err := New(newConfig(dir, output, "flat"), log, WithClock(func() time.Time { return fixedTime })).Run()
	require.NoError(t, err)

	assert.Equal(t, output, result.OutputFile)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 2, result.Files)

	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "broken-api.yaml")

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	assert.Equal(t, strings.Join(domain.Headers(), "|"), lines[0])

	// files are processed in name order: trip-service-api.yml, user-service-api.yaml
	assert.Equal(t,
		"여행 서비스|trip-service-api||Create trip||Create trip|POST||/trips||||false|||false|",
		lines[1])
	assert.Equal(t,
		"여행 서비스|trip-service-api||List trips||List trips|GET||/trips||||false|||false|",
		lines[2])
	assert.Equal(t,
		"사용자 서비스|user-service-api||Get user||Get user|GET|/users|/users/{id}|string id|||false||User|true|id:string, name:string",
		lines[3])

	assert.Contains(t, string(data), "- 생성일시: 2026-10-15T09:30:00Z\n")
	assert.Contains(t, string(data), "- 총 API 수: 3개\n")
}

func TestRun_TransposedIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"user-service-api.yaml": userSpec,
		"trip-service-api.yaml": tripSpec,
	})

	outDir := t.TempDir()
	clock := WithClock(func() time.Time { return fixedTime })

	first := filepath.Join(outDir, "first.md")
	_, err := New(newConfig(dir, first, "transposed"), &recordingLogger{}, clock).Run()
	require.NoError(t, err)

	second := filepath.Join(outDir, "second.md")
	_, err = New(newConfig(dir, second, "transposed"), &recordingLogger{}, clock).Run()
	require.NoError(t, err)

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
	assert.Contains(t, string(a), "### 여행 서비스\n")
	assert.Contains(t, string(a), "API Method|POST|GET\n")
}

func TestRun_NoYAMLFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"readme.md": "# nothing"})

	output := filepath.Join(t.TempDir(), "report.md")

	_, err := New(newConfig(dir, output, "transposed"), &recordingLogger{}).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoInputFiles))

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_NoOperations(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"empty-api.yaml":  "openapi: 3.0.3\npaths: {}\n",
		"broken-api.yaml": "paths: [unclosed",
	})

	output := filepath.Join(t.TempDir(), "report.md")
	log := &recordingLogger{}

	_, err := New(newConfig(dir, output, "transposed"), log).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoOperations))
	assert.Len(t, log.errors, 1)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_UnsupportedFormat(t *testing.T) {
	_, err := New(newConfig(t.TempDir(), "", "html"), &recordingLogger{}).Run()
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
}

func TestOutputPath_Default(t *testing.T) {
	g := New(newConfig(".", "", "flat"), &recordingLogger{})

	path, err := g.OutputPath()
	require.NoError(t, err)
	assert.Equal(t, "API설계서.txt", filepath.Base(path))
	assert.True(t, filepath.IsAbs(path))
}

func TestRun_PDFWithoutFontWarns(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"trip-service-api.yaml": tripSpec})

	output := filepath.Join(t.TempDir(), "report.pdf")
	log := &recordingLogger{}

	_, err := New(newConfig(dir, output, "pdf"), log).Run()
	require.NoError(t, err)

	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "--pdf-font")
}

func TestRun_NonPDFDoesNotWarn(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"trip-service-api.yaml": tripSpec})

	log := &recordingLogger{}

	_, err := New(newConfig(dir, filepath.Join(t.TempDir(), "report.md"), "transposed"), log).Run()
	require.NoError(t, err)
	assert.Empty(t, log.warnings)
}
