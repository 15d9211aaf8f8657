// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"encoding/xml"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/jtheisen/server-settings/internal/try"
)

// FileSource resolves settings from an XML settings file.
//
// The file is loaded at most once, on the first Lookup, and the outcome is
// cached for the lifetime of the instance. Every failure mode (path not
// resolvable, file absent, unreadable file, malformed document) is logged
// and degrades to "no values"; a FileSource never fails a Lookup.
type FileSource struct {
	pathFn func() (string, error)
	fsys   fs.FS
	log    *slog.Logger

	loadOnce sync.Once
	table    map[string]string
}

// FileOption are used to configure a FileSource.
type FileOption func(*FileSource)

// WithFS configures the FileSource to open its file through the given
// fs.FS instead of the host file system.
func WithFS(fsys fs.FS) FileOption {
	return func(src *FileSource) {
		src.fsys = fsys
	}
}

// WithPathFunc overrides how the FileSource resolves the path of its
// settings file.
func WithPathFunc(fn func() (string, error)) FileOption {
	return func(src *FileSource) {
		src.pathFn = fn
	}
}

// WithLogger configures the logger the FileSource reports its load
// outcome to. Defaults to slog.Default.
func WithLogger(log *slog.Logger) FileOption {
	return func(src *FileSource) {
		src.log = log
	}
}

// FileInHome returns a FileSource backed by the file
// "<user home>/settings/<program>.xml". The program name ties the file to
// the identity of the overall running program, not to this library; see
// ProgramName for the conventional value.
func FileInHome(program string, opts ...FileOption) *FileSource {
	return newFileSource(func() (string, error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "settings", program+".xml"), nil
	}, opts)
}

// FileNextToBinary returns a FileSource backed by the file "settings.xml"
// in the directory containing the running binary.
func FileNextToBinary(opts ...FileOption) *FileSource {
	return newFileSource(func() (string, error) {
		exe, err := os.Executable()
		if err != nil {
			return "", err
		}
		return filepath.Join(filepath.Dir(exe), "settings.xml"), nil
	}, opts)
}

func newFileSource(pathFn func() (string, error), opts []FileOption) *FileSource {
	src := &FileSource{
		pathFn: pathFn,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(src)
	}
	return src
}

// Lookup implements the Source interface. The first call triggers the
// one-time load; all calls after that are pure map access.
func (src *FileSource) Lookup(name string) (string, bool) {
	src.loadOnce.Do(src.load)
	v, ok := src.table[name]
	return v, ok
}

func (src *FileSource) load() {
	path, err := src.pathFn()
	if err != nil {
		src.log.Warn("unable to resolve settings file path", slog.Any("error", err))
		return
	}

	b, err := src.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			src.log.Debug("settings file does not exist", slog.String("path", path))
			return
		}
		src.log.Error("failed to read settings file", slog.String("path", path), slog.Any("error", err))
		return
	}

	table, err := parseSettingsXML(b)
	if err != nil {
		src.log.Error("failed to parse settings file", slog.String("path", path), slog.Any("error", err))
		return
	}

	src.table = table
	src.log.Info("loaded settings file", slog.String("path", path), slog.Int("settings", len(table)))
}

func (src *FileSource) readFile(path string) (_ []byte, err error) {
	var f fs.File
	if src.fsys == nil {
		f, err = os.Open(path)
	} else {
		f, err = src.fsys.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer try.Close(&err, f)

	return io.ReadAll(f)
}

type settingsDoc struct {
	XMLName  xml.Name `xml:"settings"`
	Settings []struct {
		Name  string `xml:"name,attr"`
		Value string `xml:"value,attr"`
	} `xml:"setting"`
}

func parseSettingsXML(b []byte) (map[string]string, error) {
	var doc settingsDoc
	err := xml.Unmarshal(b, &doc)
	if err != nil {
		return nil, err
	}

	table := make(map[string]string, len(doc.Settings))
	for _, s := range doc.Settings {
		// on duplicate names the first in document order wins
		_, ok := table[s.Name]
		if ok {
			continue
		}
		table[s.Name] = s.Value
	}
	return table, nil
}
