package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/StinkyLord/metacompose/internal/model"
	"github.com/StinkyLord/metacompose/internal/result"
)

func makeResults(t *testing.T) []*result.Result {
	t.Helper()

	pkg := result.New()
	pkg.SetBundleKind(model.BundleKindPackage)
	pkg.SetBundleID("example-app")
	require.NoError(t, pkg.AddComponent(&model.Component{
		ID:      "org.example.App",
		Kind:    model.ComponentKindDesktopApp,
		Name:    "Example App",
		Summary: "An example application",
	}, "metainfo-data"))
	pkg.AddHint("org.example.App", "desktop-file-missing",
		"desktop_id", "org.example.App.desktop")

	flatpak := result.New()
	flatpak.SetBundleKind(model.BundleKindFlatpak)
	flatpak.SetBundleID("org.example.Tool/x86_64/stable")
	require.NoError(t, flatpak.AddComponent(&model.Component{
		ID:   "org.example.Tool",
		Kind: model.ComponentKindConsoleApp,
		Name: "Tool",
	}, "tool-data"))

	ignored := result.New()

	return []*result.Result{pkg, flatpak, ignored}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(makeResults(t), "test-origin")

	assert.Equal(t, "test-origin", doc.Origin)
	assert.Equal(t, "1.0", doc.Version)
	assert.NotEmpty(t, doc.Generated)

	require.Len(t, doc.Components, 2, "ignored results must not contribute")
	// sorted by ID
	assert.Equal(t, "org.example.App", doc.Components[0].ID)
	assert.Equal(t, "org.example.Tool", doc.Components[1].ID)

	app := doc.Components[0]
	assert.Equal(t, "desktop-application", app.Kind)
	assert.Equal(t, []string{"example-app"}, app.PkgNames)
	assert.NotEmpty(t, app.GlobalID)

	tool := doc.Components[1]
	require.Len(t, tool.Bundles, 1)
	assert.Equal(t, "flatpak", tool.Bundles[0].Kind)
	assert.Equal(t, "org.example.Tool/x86_64/stable", tool.Bundles[0].ID)

	require.Len(t, doc.Hints, 1)
	assert.Equal(t, "example-app", doc.Hints[0].Unit)
	require.Len(t, doc.Hints[0].Hints, 1)
	h := doc.Hints[0].Hints[0]
	assert.Equal(t, "desktop-file-missing", h.Tag)
	assert.Equal(t, "warning", h.Severity)
	assert.Contains(t, h.Explanation, "org.example.App.desktop")
}

func TestWriteCatalogJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, WriteCatalog(makeResults(t), "test-origin", path, "json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "test-origin", doc.Origin)
	assert.Len(t, doc.Components, 2)
}

func TestWriteCatalogYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, WriteCatalog(makeResults(t), "test-origin", path, "yaml"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "test-origin", doc.Origin)
	assert.Len(t, doc.Components, 2)
}

func TestWriteCatalogUnsupportedFormat(t *testing.T) {
	err := WriteCatalog(nil, "o", filepath.Join(t.TempDir(), "x"), "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
