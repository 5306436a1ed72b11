// Package bundle packs rendered stylesheets together with the sources they
// were produced from into a single zip artifact. Every archive starts with a
// MANIFEST listing entry names, their timestamps and origins.
package bundle

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"

	"csskit/misc"
)

type entry struct {
	origin string
	stamp  time.Time
	data   []byte
	path   string
}

// Writer accumulates named entries and packs them into the destination
// archive when closed.
// NOTE: presently not to be used concurrently!
type Writer struct {
	dest    string
	fixZip  bool
	log     *zap.Logger
	entries map[string]entry
}

// NewWriter prepares a bundle writer for the given destination path. When
// fixZip is set the final archive is rewritten without zip data descriptors,
// some consumers cannot handle them.
func NewWriter(dest string, fixZip bool, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{
		dest:    dest,
		fixZip:  fixZip,
		log:     log.Named("bundle"),
		entries: make(map[string]entry),
	}
}

// Add stores binary data to be packed under the requested name.
func (w *Writer) Add(name string, data []byte) error {
	if _, exists := w.entries[name]; exists {
		return fmt.Errorf("bundle already has entry named %q", name)
	}
	w.entries[name] = entry{
		origin: "generated",
		stamp:  time.Now(),
		data:   data,
	}
	return nil
}

// AddFile stores a reference to a file to be packed under the requested name.
// File content is read when the bundle is finalized.
func (w *Writer) AddFile(name, path string) error {
	if _, exists := w.entries[name]; exists {
		return fmt.Errorf("bundle already has entry named %q", name)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("unable to access bundle entry %q: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("bundle entry %q is not a regular file: %s", name, path)
	}

	e := entry{
		origin: path,
		stamp:  info.ModTime(),
		path:   path,
	}
	if p, err := filepath.Abs(path); err == nil {
		e.origin = p
	}
	w.entries[name] = e
	return nil
}

// Close packs everything accumulated so far into the destination archive.
func (w *Writer) Close() error {
	w.log.Debug("Packing bundle", zap.String("to", w.dest), zap.Int("entries", len(w.entries)))

	f, err := os.CreateTemp("", misc.GetAppName()+"-bundle.*.zip")
	if err != nil {
		return fmt.Errorf("unable to create bundle scratch file: %w", err)
	}
	defer f.Close()
	tmpName := f.Name()

	arc := zip.NewWriter(f)
	defer arc.Close()

	names, manifest := prepareManifest(w.entries)
	if err := saveFile(arc, "MANIFEST", time.Now(), manifest); err != nil {
		return err
	}

	// in the same order as in manifest
	for _, name := range names {
		e := w.entries[name]
		if e.path == "" {
			if err := saveFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}

		r, err := os.Open(e.path)
		if err != nil {
			return fmt.Errorf("unable to read bundle entry %q: %w", name, err)
		}
		if err := saveFile(arc, name, e.stamp, r); err != nil {
			r.Close()
			return err
		}
		r.Close()
	}

	// make sure buffers are flushed before continuing
	if err := arc.Close(); err != nil {
		return fmt.Errorf("unable to close bundle archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize bundle scratch file: %w", err)
	}
	// clean temporary file
	defer os.Remove(tmpName)

	if w.fixZip {
		return copyZipWithoutDataDescriptors(tmpName, w.dest)
	}
	return copyFile(tmpName, w.dest)
}

func prepareManifest(entries map[string]entry) ([]string, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	if len(entries) == 0 {
		return nil, buf
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		e := entries[k]
		buf.WriteString(fmt.Sprintf("%s\t%s : %s\n", e.stamp.UTC().Format(time.UnixDate), k, e.origin))
	}
	return keys, buf
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	return nil
}

func copyZipWithoutDataDescriptors(from, to string) error {
	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err = destinationFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}
	return nil
}
