package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/shopgrep"
)

// ExportFile writes products to path atomically: the writer renders into a
// temporary file in the same directory, which is renamed over the target
// only after a successful write. A failed export never leaves a truncated
// file behind.
func ExportFile(path string, writer shopgrep.ProductWriter, products []*shopgrep.Product) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := writer.WriteProducts(tmp, products); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
