package unit

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/StinkyLord/metacompose/internal/model"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewDirUnit(t *testing.T) {
	dir := t.TempDir()
	u, err := NewDirUnit(dir, model.BundleKindPackage)
	if err != nil {
		t.Fatalf("NewDirUnit: %v", err)
	}
	if u.ID() != filepath.Base(dir) {
		t.Errorf("ID() = %q, want directory base name %q", u.ID(), filepath.Base(dir))
	}
	if u.BundleKind() != model.BundleKindPackage {
		t.Errorf("BundleKind() = %v", u.BundleKind())
	}
}

func TestNewDirUnit_Missing(t *testing.T) {
	if _, err := NewDirUnit(filepath.Join(t.TempDir(), "nope"), model.BundleKindPackage); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestNewDirUnit_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "afile", "x")
	if _, err := NewDirUnit(filepath.Join(dir, "afile"), model.BundleKindPackage); err == nil {
		t.Error("expected error for non-directory")
	}
}

func TestListFilesSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "usr/share/metainfo/org.example.App.metainfo.xml", "<component/>")
	writeFile(t, dir, "usr/share/applications/org.example.App.desktop", "[Desktop Entry]")
	writeFile(t, dir, "README", "readme")

	u, err := NewDirUnit(dir, model.BundleKindPackage)
	if err != nil {
		t.Fatal(err)
	}
	files, err := u.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []string{
		"README",
		"usr/share/applications/org.example.App.desktop",
		"usr/share/metainfo/org.example.App.metainfo.xml",
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("ListFiles() = %v, want %v", files, want)
	}
}

func TestReadData(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "usr/share/metainfo/a.metainfo.xml", "<component/>")

	u, _ := NewDirUnit(dir, model.BundleKindPackage)
	data, err := u.ReadData("usr/share/metainfo/a.metainfo.xml")
	if err != nil {
		t.Fatalf("ReadData: %v", err)
	}
	if string(data) != "<component/>" {
		t.Errorf("ReadData = %q", data)
	}
}

func TestReadData_RejectsEscapingPaths(t *testing.T) {
	dir := t.TempDir()
	u, _ := NewDirUnit(dir, model.BundleKindPackage)

	for _, p := range []string{"../outside", "/etc/passwd", "a/../../outside"} {
		if _, err := u.ReadData(p); err == nil {
			t.Errorf("ReadData(%q) must be rejected", p)
		}
	}
}
