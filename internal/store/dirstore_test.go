package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("<OfficeApp/>"), 0644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}

func TestDirStore_AddListRemove(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	src := writeManifest(t, t.TempDir(), "manifest.xml")
	s := NewDirStore()

	if err := s.Add("excel", src); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	entries, err := s.List("excel")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List returned %d entries, want 1", len(entries))
	}
	if entries[0].App != "excel" {
		t.Errorf("entry app = %q, want excel", entries[0].App)
	}
	if filepath.Base(entries[0].Path) != "manifest.xml" {
		t.Errorf("entry path = %q, want basename manifest.xml", entries[0].Path)
	}

	// Removing by the original source path matches the hard link via
	// device+inode identity even though the registered name differs in
	// directory.
	if err := s.Remove("excel", src); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	entries, err = s.List("excel")
	if err != nil {
		t.Fatalf("List after remove error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("List after remove returned %d entries, want 0", len(entries))
	}
}

func TestDirStore_AddIdempotent(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	src := writeManifest(t, t.TempDir(), "manifest.xml")
	s := NewDirStore()

	if err := s.Add("excel", src); err != nil {
		t.Fatalf("first Add error: %v", err)
	}
	if err := s.Add("excel", src); err != nil {
		t.Fatalf("second Add of the same file should succeed, got: %v", err)
	}

	entries, err := s.List("excel")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List returned %d entries, want exactly 1", len(entries))
	}
}

func TestDirStore_AddConflict(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	s := NewDirStore()

	first := writeManifest(t, t.TempDir(), "manifest.xml")
	second := writeManifest(t, t.TempDir(), "manifest.xml")

	if err := s.Add("excel", first); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	err := s.Add("excel", second)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Add of a different file with the same name = %v, want ErrConflict", err)
	}
}

func TestDirStore_HardLinkReflectsEdits(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	src := writeManifest(t, t.TempDir(), "manifest.xml")
	s := NewDirStore()

	if err := s.Add("word", src); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := os.WriteFile(src, []byte("<OfficeApp updated=\"yes\"/>"), 0644); err != nil {
		t.Fatalf("editing source: %v", err)
	}

	entries, err := s.List("word")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List returned %d entries, want 1", len(entries))
	}
	data, err := os.ReadFile(entries[0].Path)
	if err != nil {
		t.Fatalf("reading registered entry: %v", err)
	}
	if string(data) != "<OfficeApp updated=\"yes\"/>" {
		t.Errorf("registered entry did not reflect source edit: %q", data)
	}
}

func TestDirStore_ListAllTagsApplications(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	s := NewDirStore()

	excelSrc := writeManifest(t, t.TempDir(), "excel-addin.xml")
	wordSrc := writeManifest(t, t.TempDir(), "word-addin.xml")
	if err := s.Add("excel", excelSrc); err != nil {
		t.Fatalf("Add excel error: %v", err)
	}
	if err := s.Add("word", wordSrc); err != nil {
		t.Fatalf("Add word error: %v", err)
	}

	entries, err := s.List("")
	if err != nil {
		t.Fatalf("List all error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List all returned %d entries, want 2", len(entries))
	}
	byApp := map[string]string{}
	for _, e := range entries {
		byApp[string(e.App)] = filepath.Base(e.Path)
	}
	if byApp["excel"] != "excel-addin.xml" || byApp["word"] != "word-addin.xml" {
		t.Errorf("entries not tagged with owning application: %v", byApp)
	}
}

func TestDirStore_ListSkipsJunk(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ADDIN_SIDELOAD_DIR", root)
	s := NewDirStore()

	src := writeManifest(t, t.TempDir(), "manifest.xml")
	if err := s.Add("excel", src); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	for _, junk := range []string{".DS_Store", "~$manifest.xml", "Thumbs.db"} {
		writeManifest(t, filepath.Join(root, "excel"), junk)
	}

	entries, err := s.List("excel")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List returned %d entries, want 1 after junk filtering", len(entries))
	}
}

func TestDirStore_RemoveStoreWideMiss(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	s := NewDirStore()

	err := s.Remove("", filepath.Join(t.TempDir(), "never-registered.xml"))
	if !errors.Is(err, ErrNothingRemoved) {
		t.Fatalf("store-wide Remove with no match = %v, want ErrNothingRemoved", err)
	}
}

func TestDirStore_RemoveScopedMissIsSilent(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	s := NewDirStore()

	if err := s.Remove("excel", filepath.Join(t.TempDir(), "never-registered.xml")); err != nil {
		t.Fatalf("scoped Remove with no match should succeed, got: %v", err)
	}
}

func TestDirStore_RemoveTwice(t *testing.T) {
	t.Setenv("ADDIN_SIDELOAD_DIR", t.TempDir())
	src := writeManifest(t, t.TempDir(), "manifest.xml")
	s := NewDirStore()

	if err := s.Add("excel", src); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := s.Remove("", src); err != nil {
		t.Fatalf("first Remove error: %v", err)
	}
	err := s.Remove("", src)
	if !errors.Is(err, ErrNothingRemoved) {
		t.Fatalf("second store-wide Remove = %v, want ErrNothingRemoved", err)
	}
}
