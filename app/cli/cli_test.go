package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"logo-banner/models"
	"logo-banner/service"
	"logo-banner/utils"
)

const testSVG = `<svg viewBox="0 0 1 1"></svg>`

func testCatalog(t *testing.T) *service.CatalogStore {
	t.Helper()
	catalog, err := service.NewCatalogStore([]models.LogoItem{
		{ID: "react", Title: "React", Category: models.Categories{"Library"}, Path: "/react.svg", SVGContent: testSVG},
		{ID: "vue", Title: "Vue", Category: models.Categories{"Framework"}, Path: "/vue.svg", SVGContent: testSVG},
		{ID: "acme", Title: "Acme", Category: models.Categories{"Software"}, Path: "/acme.svg", SVGContent: testSVG},
	})
	require.NoError(t, err)
	return catalog
}

func TestPrintCatalog(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	err := printCatalog(&out, testCatalog(t), service.NewPresetProvider(nil), "", nil, 2)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Catalog: 3 items")
	assert.Contains(t, text, "Matching: 3 items")
	assert.Contains(t, text, "* react")
	assert.Contains(t, text, "... 1 more")
	assert.NotContains(t, text, "acme ")
}

func TestPrintCatalog_UnknownCategory(t *testing.T) {
	var out bytes.Buffer
	err := printCatalog(&out, testCatalog(t), service.NewPresetProvider(nil), "", []string{"music"}, 0)
	assert.ErrorIs(t, err, models.ErrInvalidCategory)
}

func TestComposeSession(t *testing.T) {
	newSession := func() *service.Session {
		s := service.NewSession("cli", testCatalog(t), service.NewPresetProvider(nil), service.SessionOptions{})
		t.Cleanup(s.Close)
		return s
	}

	session := newSession()
	require.NoError(t, composeSession(session, exportOptions{all: true, sort: "desc", width: 70, gradient: 1}))
	snapshot := session.Snapshot()
	assert.Equal(t, []string{"vue", "react", "acme"}, snapshot.SelectedItems)
	assert.Equal(t, 70, snapshot.Width)
	assert.Equal(t, service.Gradients[1], snapshot.Background)

	session = newSession()
	require.NoError(t, composeSession(session, exportOptions{preset: true, search: "library", width: 100, gradient: -1}))
	assert.Equal(t, []string{"react"}, session.Snapshot().SelectedItems)
	assert.Equal(t, service.DefaultBackground, session.Snapshot().Background)

	session = newSession()
	err := composeSession(session, exportOptions{preset: true, width: 3, gradient: -1})
	assert.ErrorIs(t, err, models.ErrInvalidWidth)

	session = newSession()
	err = composeSession(session, exportOptions{preset: true, width: 50, background: "nope", gradient: -1})
	assert.ErrorIs(t, err, models.ErrInvalidBackground)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "catalog", "export"})
}

func TestRun_FlushesLoggerOnFailure(t *testing.T) {
	var logs bytes.Buffer
	ws := &zapcore.BufferedWriteSyncer{WS: zapcore.AddSync(&logs)}
	t.Cleanup(func() {
		_ = ws.Stop()
		utils.SetLogger(zap.NewNop())
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, zap.InfoLevel)
	utils.SetLogger(zap.New(core))

	var stderr bytes.Buffer
	cmd := &cobra.Command{
		Use:           "failing",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.Log().Error("export failed before exit")
			return errors.New("boom")
		},
	}
	cmd.SetArgs([]string{})
	cmd.SetErr(&stderr)

	assert.Equal(t, 1, run(cmd))
	assert.Contains(t, stderr.String(), "boom")
	assert.Contains(t, logs.String(), "export failed before exit")
}
