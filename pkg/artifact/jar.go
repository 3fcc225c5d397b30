package artifact

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/matzehuels/mavenpub/pkg/errors"
)

const manifestPath = "META-INF/MANIFEST.MF"

// jarEpoch is the fixed modification time of every entry so that
// rebuilding from the same tree yields identical bytes.
var jarEpoch = time.Date(1980, time.February, 1, 0, 0, 0, 0, time.UTC)

// WriteJar packs srcDir into a jar at dst and returns the number of files
// added (excluding the manifest). A missing or empty srcDir produces a jar
// that only contains the manifest, which repositories accept as an empty
// javadoc or sources archive.
func WriteJar(dst, srcDir string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "create jar directory")
	}
	f, err := os.Create(dst)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "create jar %s", dst)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	if err := writeEntry(zw, manifestPath, manifestBody()); err != nil {
		return 0, err
	}

	count := 0
	if srcDir != "" {
		count, err = addTree(zw, srcDir)
		if err != nil {
			return 0, err
		}
	}

	if err := zw.Close(); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "finish jar %s", dst)
	}
	return count, f.Close()
}

func addTree(zw *zip.Writer, root string) (int, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "stat %s", root)
	}
	if !info.IsDir() {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s is not a directory", root)
	}

	count := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == manifestPath {
			return nil
		}
		if err := copyEntry(zw, rel, path); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "pack %s", root)
	}
	return count, nil
}

func copyEntry(zw *zip.Writer, name, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := zw.CreateHeader(header(name))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(header(name))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
	}
	return nil
}

func header(name string) *zip.FileHeader {
	return &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: jarEpoch,
	}
}

func manifestBody() []byte {
	return []byte("Manifest-Version: 1.0\r\nCreated-By: mavenpub\r\n\r\n")
}
