// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

type fsFunc func(string) (fs.File, error)

func (f fsFunc) Open(path string) (fs.File, error) {
	return f(path)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func settingsFS(doc string) fstest.MapFS {
	return fstest.MapFS{
		"settings.xml": &fstest.MapFile{
			Data: []byte(doc),
		},
	}
}

func fixedPath(path string) FileOption {
	return WithPathFunc(func() (string, error) {
		return path, nil
	})
}

func TestFileSource_Lookup(t *testing.T) {
	t.Run("will return the value from the file", func(t *testing.T) {
		t.Run("if the file contains a setting with the name", func(t *testing.T) {
			src := FileNextToBinary(
				WithFS(settingsFS(`<settings>
					<setting name="ApiKey" value="abc123"/>
					<setting name="Retries" value="3"/>
				</settings>`)),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			v, ok := src.Lookup("ApiKey")
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, "abc123", v) {
				return
			}
		})

		t.Run("if the file contains duplicate names the first in document order wins", func(t *testing.T) {
			src := FileNextToBinary(
				WithFS(settingsFS(`<settings>
					<setting name="Port" value="8080"/>
					<setting name="Port" value="9090"/>
				</settings>`)),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			v, ok := src.Lookup("Port")
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, "8080", v) {
				return
			}
		})

		t.Run("if the file contains a setting with an empty value", func(t *testing.T) {
			src := FileNextToBinary(
				WithFS(settingsFS(`<settings><setting name="Flag" value=""/></settings>`)),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			v, ok := src.Lookup("Flag")
			if !assert.True(t, ok) {
				return
			}
			if !assert.Empty(t, v) {
				return
			}
		})
	})

	t.Run("will report all values as absent", func(t *testing.T) {
		t.Run("if the file does not contain a setting with the name", func(t *testing.T) {
			src := FileNextToBinary(
				WithFS(settingsFS(`<settings><setting name="ApiKey" value="abc123"/></settings>`)),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			_, ok := src.Lookup("Port")
			if !assert.False(t, ok) {
				return
			}
		})

		t.Run("if the file does not exist", func(t *testing.T) {
			src := FileNextToBinary(
				WithFS(fstest.MapFS{}),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			_, ok := src.Lookup("ApiKey")
			if !assert.False(t, ok) {
				return
			}
		})

		t.Run("if the file is not valid XML", func(t *testing.T) {
			src := FileNextToBinary(
				WithFS(settingsFS(`<settings><setting name=`)),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			_, ok := src.Lookup("ApiKey")
			if !assert.False(t, ok) {
				return
			}
		})

		t.Run("if the root element is not named settings", func(t *testing.T) {
			src := FileNextToBinary(
				WithFS(settingsFS(`<config><setting name="ApiKey" value="abc123"/></config>`)),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			_, ok := src.Lookup("ApiKey")
			if !assert.False(t, ok) {
				return
			}
		})

		t.Run("if reading the file fails", func(t *testing.T) {
			readErr := errors.New("failed to read")
			fsys := fsFunc(func(path string) (fs.File, error) {
				return nil, readErr
			})

			src := FileNextToBinary(
				WithFS(fsys),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			_, ok := src.Lookup("ApiKey")
			if !assert.False(t, ok) {
				return
			}
		})
	})

	t.Run("will not attempt any file access", func(t *testing.T) {
		t.Run("if the path can not be resolved", func(t *testing.T) {
			var opens atomic.Int64
			fsys := fsFunc(func(path string) (fs.File, error) {
				opens.Add(1)
				return nil, fs.ErrNotExist
			})

			src := FileNextToBinary(
				WithFS(fsys),
				WithPathFunc(func() (string, error) {
					return "", errors.New("no home directory")
				}),
				WithLogger(discardLogger()),
			)

			_, ok := src.Lookup("ApiKey")
			if !assert.False(t, ok) {
				return
			}
			if !assert.Zero(t, opens.Load()) {
				return
			}
		})
	})

	t.Run("will open the file at most once", func(t *testing.T) {
		t.Run("if Lookup is called repeatedly", func(t *testing.T) {
			mfs := settingsFS(`<settings><setting name="ApiKey" value="abc123"/></settings>`)

			var opens atomic.Int64
			fsys := fsFunc(func(path string) (fs.File, error) {
				opens.Add(1)
				return mfs.Open(path)
			})

			src := FileNextToBinary(
				WithFS(fsys),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			for i := 0; i < 10; i++ {
				v, ok := src.Lookup("ApiKey")
				if !assert.True(t, ok) {
					return
				}
				if !assert.Equal(t, "abc123", v) {
					return
				}
			}
			if !assert.Equal(t, int64(1), opens.Load()) {
				return
			}
		})

		t.Run("if the load attempt failed", func(t *testing.T) {
			var opens atomic.Int64
			fsys := fsFunc(func(path string) (fs.File, error) {
				opens.Add(1)
				return nil, fs.ErrNotExist
			})

			src := FileNextToBinary(
				WithFS(fsys),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			for i := 0; i < 10; i++ {
				_, ok := src.Lookup("ApiKey")
				if !assert.False(t, ok) {
					return
				}
			}
			if !assert.Equal(t, int64(1), opens.Load()) {
				return
			}
		})

		t.Run("if the first Lookups race", func(t *testing.T) {
			mfs := settingsFS(`<settings><setting name="ApiKey" value="abc123"/></settings>`)

			var opens atomic.Int64
			fsys := fsFunc(func(path string) (fs.File, error) {
				opens.Add(1)
				return mfs.Open(path)
			})

			src := FileNextToBinary(
				WithFS(fsys),
				fixedPath("settings.xml"),
				WithLogger(discardLogger()),
			)

			var g errgroup.Group
			for i := 0; i < 10; i++ {
				g.Go(func() error {
					v, ok := src.Lookup("ApiKey")
					if !ok {
						return errors.New("expected a value")
					}
					if v != "abc123" {
						return errors.New("unexpected value: " + v)
					}
					return nil
				})
			}

			err := g.Wait()
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, int64(1), opens.Load()) {
				return
			}
		})
	})
}

func TestFileInHome(t *testing.T) {
	t.Run("will resolve the file relative to the home directory", func(t *testing.T) {
		t.Run("if the program name is provided", func(t *testing.T) {
			src := FileInHome("myservice", WithLogger(discardLogger()))

			path, err := src.pathFn()
			if err != nil {
				// no home directory in this environment
				t.Skip(err)
			}
			if !assert.Contains(t, path, "settings") {
				return
			}
			if !assert.Contains(t, path, "myservice.xml") {
				return
			}
		})
	})
}
