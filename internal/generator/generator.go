package generator

import (
	"archive/zip"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/addin-tools/addin/internal/profiles"
	"github.com/klauspost/compress/flate"
)

//go:embed templates
var templatesFS embed.FS

// Placeholder tokens embedded in every bundled template.
const (
	PlaceholderGUID    = "00000000-0000-0000-0000-000000000000"
	PlaceholderVersion = "1.0.0.0"
)

var (
	// ErrUnsupportedCombination reports an (application, kind) pair with
	// no bundled template.
	ErrUnsupportedCombination = errors.New("no template document for this application and add-in kind")

	// ErrTemplatePartMissing reports a bundled template whose configured
	// web-extension part is absent, which is a packaging defect.
	ErrTemplatePartMissing = errors.New("template archive is missing its web-extension part")
)

// Generate writes a fresh document for the given combination into dir,
// with the add-in id and version substituted for the placeholders, and
// returns the path written. Existing files are never overwritten: the
// destination name gains an incrementing numeric suffix until free.
func Generate(app profiles.Application, kind profiles.Kind, id, version, dir string) (string, error) {
	comb, ok := profiles.ForCombination(app, kind)
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedCombination, app, kind)
	}

	data, err := templatesFS.ReadFile("templates/" + comb.Template)
	if err != nil {
		return "", fmt.Errorf("loading bundled template %s: %w", comb.Template, err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening bundled template %s: %w", comb.Template, err)
	}

	dest, err := nextFreePath(dir, comb.Template)
	if err != nil {
		return "", err
	}

	if err := rewrite(zr, comb.Part, id, version, dest); err != nil {
		os.Remove(dest)
		return "", err
	}
	return dest, nil
}

// rewrite copies every archive entry to dest, substituting the
// placeholder tokens inside the named part.
func rewrite(zr *zip.Reader, part, id, version, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	found := false
	for _, entry := range zr.File {
		rc, err := entry.Open()
		if err != nil {
			return fmt.Errorf("reading archive entry %s: %w", entry.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("reading archive entry %s: %w", entry.Name, err)
		}

		if entry.Name == part {
			found = true
			text := string(content)
			text = strings.ReplaceAll(text, PlaceholderGUID, id)
			text = strings.ReplaceAll(text, PlaceholderVersion, version)
			content = []byte(text)
		}

		header := entry.FileHeader
		w, err := zw.CreateHeader(&header)
		if err != nil {
			return fmt.Errorf("writing archive entry %s: %w", entry.Name, err)
		}
		if _, err := w.Write(content); err != nil {
			return fmt.Errorf("writing archive entry %s: %w", entry.Name, err)
		}
	}

	if !found {
		zw.Close()
		return fmt.Errorf("%w: %s", ErrTemplatePartMissing, part)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", dest, err)
	}
	return f.Close()
}

// nextFreePath returns dir/Name.ext, or the first of dir/Name0.ext,
// dir/Name1.ext, ... that does not exist yet.
func nextFreePath(dir, template string) (string, error) {
	ext := filepath.Ext(template)
	base := strings.TrimSuffix(template, ext)

	candidate := filepath.Join(dir, template)
	for i := 0; ; i++ {
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil {
			return "", fmt.Errorf("checking destination %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, base+strconv.Itoa(i)+ext)
	}
}
