package commands

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"divination/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("LIFE_NUMBER_MASTER_MODE", "raw")
	t.Setenv("DEFAULT_BIRTH_TIME", "12:00")

	var stdout, stderr bytes.Buffer
	root, e := newRootCmd(&stdout, &stderr)
	defer e.close()
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestSignCommand(t *testing.T) {
	out, err := run(t, "sign", "2000-03-21")
	require.NoError(t, err)

	var sign domain.ZodiacSign
	require.NoError(t, json.Unmarshal([]byte(out), &sign))
	assert.Equal(t, domain.SignID("aries"), sign.ID)

	_, err = run(t, "sign", "2000-02-30")
	assert.Error(t, err)
}

func TestChartCommandWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.png")
	out, err := run(t, "chart", "1990-07-15", "--time", "08:30", "--place", "Kyoto", "--png", path)
	require.NoError(t, err)

	var chart domain.BirthChart
	require.NoError(t, json.Unmarshal([]byte(out), &chart))
	assert.Equal(t, "Kyoto", chart.Place)
	assert.Len(t, chart.Placements, 10)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
}

func TestCompatCommand(t *testing.T) {
	out, err := run(t, "compat", "aries", "leo")
	require.NoError(t, err)
	var plain struct {
		Score int `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &plain))
	assert.Equal(t, 79, plain.Score)

	out, err = run(t, "compat", "aries", "cancer", "--detailed")
	require.NoError(t, err)
	var detailed domain.SignCompatibility
	require.NoError(t, json.Unmarshal([]byte(out), &detailed))
	assert.Equal(t, 52, detailed.Score)
	assert.NotEmpty(t, detailed.Challenges)

	_, err = run(t, "compat", "aries")
	assert.Error(t, err)
}

func TestNumerologyCommands(t *testing.T) {
	out, err := run(t, "numerology", "ABC", "--date", "1990-07-15", "--year", "2024")
	require.NoError(t, err)
	var report domain.NumerologyReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 5, report.LifeNumber)
	assert.Equal(t, 6, report.ExpressionNumber)
	assert.Equal(t, 2024, report.PersonalYearFor)

	out, err = run(t, "life-number", "11")
	require.NoError(t, err)
	var profile domain.LifeNumberProfile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.True(t, profile.IsMaster())

	_, err = run(t, "life-number", "10")
	assert.Error(t, err)
	_, err = run(t, "numerology", "1234")
	assert.Error(t, err)
}

func TestFiveGridAndProfileCommands(t *testing.T) {
	out, err := run(t, "five-grid", "王", "小明")
	require.NoError(t, err)
	var analysis domain.NameAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Equal(t, 15, analysis.TotalStrokes)
	assert.Equal(t, domain.BandFair, analysis.Fortune.Overall.Band)

	out, err = run(t, "profile", "1990-07-15", "--name", "ABC", "--surname", "王", "--given", "小明")
	require.NoError(t, err)
	var profile domain.DivinationProfile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	require.NotNil(t, profile.Chart)
	require.NotNil(t, profile.FiveGrid)
	assert.Equal(t, profile.Chart.SunSign, profile.Sun.ID)
}
