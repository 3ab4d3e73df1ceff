package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/cv-builder/internal/logging"
	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
)

// Persisted file names inside the data directory.
const (
	cvFileName       = "cvData.json"
	templateFileName = "selectedTemplate"
)

// PersistError represents a failure writing state to disk.
type PersistError struct {
	Path    string
	Message string
	Cause   error
}

func (e *PersistError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persistence failed at %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("persistence failed at %s: %s", e.Path, e.Message)
}

func (e *PersistError) Unwrap() error {
	return e.Cause
}

// FileStore reads and writes snapshots under a single data directory.
type FileStore struct {
	dir    string
	logger *logging.Logger
}

// NewFileStore creates the data directory when absent and returns a file
// store rooted there.
func NewFileStore(dir string, logger *logging.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &PersistError{Path: dir, Message: "failed to create data directory", Cause: err}
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the data directory this store persists into.
func (f *FileStore) Dir() string { return f.dir }

// CVPath returns the path of the persisted CV document.
func (f *FileStore) CVPath() string { return filepath.Join(f.dir, cvFileName) }

// Load reads persisted state. It never fails: missing files yield the empty
// aggregate and default template, malformed content is logged and discarded,
// and a partial document keeps whichever fields it carries with defaults for
// the rest.
func (f *FileStore) Load() Snapshot {
	return Snapshot{
		CV:       f.loadCV(),
		Template: f.loadTemplate(),
	}
}

func (f *FileStore) loadCV() types.CVData {
	path := f.CVPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.logger.Warn("could not read saved CV, starting empty", "path", path, "err", err)
		}
		return types.Empty()
	}

	// Schema problems are diagnostics only; the decode below keeps whatever
	// fields it can.
	if err := schemas.ValidateCV(data); err != nil {
		f.logger.Warn("saved CV does not match schema", "path", path, "err", err)
	}

	var cv types.CVData
	if err := json.Unmarshal(data, &cv); err != nil {
		f.logger.Warn("could not decode saved CV, starting empty", "path", path, "err", err)
		return types.Empty()
	}
	return normalize(cv)
}

func (f *FileStore) loadTemplate() types.TemplateID {
	path := filepath.Join(f.dir, templateFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return types.DefaultTemplate
	}

	id := types.TemplateID(strings.TrimSpace(string(data)))
	if !types.KnownTemplate(id) {
		f.logger.Warn("saved template is unknown, using default", "template", string(id))
		return types.DefaultTemplate
	}
	return id
}

// Save writes the snapshot to disk. The CV document is written atomically via
// a temp file rename so a crash mid-write never corrupts the saved state.
func (f *FileStore) Save(snap Snapshot) error {
	data, err := json.MarshalIndent(snap.CV, "", "  ")
	if err != nil {
		return &PersistError{Path: f.CVPath(), Message: "failed to encode CV", Cause: err}
	}
	if err := writeAtomic(f.CVPath(), data); err != nil {
		return err
	}

	templatePath := filepath.Join(f.dir, templateFileName)
	if err := writeAtomic(templatePath, []byte(snap.Template)); err != nil {
		return err
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &PersistError{Path: path, Message: "failed to create temp file", Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistError{Path: path, Message: "failed to write temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistError{Path: path, Message: "failed to close temp file", Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &PersistError{Path: path, Message: "failed to replace file", Cause: err}
	}
	return nil
}

// normalize replaces nil sequences left by a partial decode with empty ones,
// keeping the aggregate's "lists are never nil" invariant.
func normalize(cv types.CVData) types.CVData {
	if cv.WorkExperience == nil {
		cv.WorkExperience = []types.WorkExperience{}
	}
	if cv.Education == nil {
		cv.Education = []types.Education{}
	}
	if cv.Volunteering == nil {
		cv.Volunteering = []types.Volunteering{}
	}
	if cv.Skills == nil {
		cv.Skills = []types.Skill{}
	}
	if cv.Languages == nil {
		cv.Languages = []types.Language{}
	}
	if cv.References == nil {
		cv.References = []types.Reference{}
	}
	if cv.SocialMedia == nil {
		cv.SocialMedia = []types.SocialMedia{}
	}
	if cv.Hobbies == nil {
		cv.Hobbies = []string{}
	}
	if cv.Projects == nil {
		cv.Projects = []types.Project{}
	}
	return cv
}

// AutoSaver persists store snapshots after a quiet period, so bursts of edits
// collapse into a single disk write.
type AutoSaver struct {
	store  *Store
	files  *FileStore
	deb    *Debouncer
	logger *logging.Logger
}

// NewAutoSaver subscribes to the store and schedules a debounced save on
// every mutation.
func NewAutoSaver(s *Store, files *FileStore, delay time.Duration, logger *logging.Logger) *AutoSaver {
	a := &AutoSaver{store: s, files: files, logger: logger}
	a.deb = NewDebouncer(delay, a.save)
	s.Subscribe(func(Snapshot) { a.deb.Trigger() })
	return a
}

func (a *AutoSaver) save() {
	if err := a.files.Save(a.store.Snapshot()); err != nil {
		a.logger.Error("auto-save failed", "err", err)
		return
	}
	a.logger.Debug("auto-save complete", "path", a.files.CVPath())
}

// Flush writes any pending save immediately.
func (a *AutoSaver) Flush() {
	a.deb.Flush()
}

// Close flushes pending work and stops the saver.
func (a *AutoSaver) Close() {
	a.deb.Flush()
	a.deb.Stop()
}
