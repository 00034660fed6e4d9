package genomepull

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// makeOutDirs creates the per-genus output directory and the shared
// failures directory beneath out. Both calls are idempotent.
func makeOutDirs(out, genus string) (genusDir, failDir string, err error) {
	genusDir = filepath.Join(out, genus)
	failDir = filepath.Join(out, "failures")

	if err = os.MkdirAll(genusDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", genusDir, err)
	}
	if err = os.MkdirAll(failDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", failDir, err)
	}

	return genusDir, failDir, nil
}

// writeLabelFiles writes labels.txt and classes.txt: one
// tab-separated line per assembly, in the order assemblies are
// passed (sorted assembly id order). Existing files are truncated so
// re-runs produce identical output.
func writeLabelFiles(genusDir string, assemblies []*Assembly) error {
	labels := func(asm *Assembly) string { return asm.Label }
	if err := writeColumns(filepath.Join(genusDir, "labels.txt"), assemblies, labels); err != nil {
		return err
	}

	classes := func(asm *Assembly) string { return asm.Organism }
	return writeColumns(filepath.Join(genusDir, "classes.txt"), assemblies, classes)
}

// writeColumns writes "<gname>\t<column>" lines to path.
func writeColumns(path string, assemblies []*Assembly, column func(*Assembly) string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, asm := range assemblies {
		fmt.Fprintf(w, "%s\t%s\n", asm.Gname, column(asm))
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
