package distribute

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/nao1215/reportgen/internal/model"
)

// DefaultFileMode is the permission of written report files.
const DefaultFileMode os.FileMode = 0o644

// FileDistributor writes each report as a text file under a base directory.
//
// The base directory is injected rather than derived from the report so
// the same outputs can be written to a scratch directory in tests. Writes
// go to a temporary file that is renamed over the target, so a reader
// never sees a half-written report, and writes to the same file name are
// serialized.
type FileDistributor struct {
	// baseDir is the directory reports are written to.
	baseDir string

	// fileMode is the permission of created files.
	fileMode os.FileMode

	// logger for structured logging.
	logger *slog.Logger

	// locks maps file names to *sync.Mutex.
	locks sync.Map
}

// FileOption configures a FileDistributor.
type FileOption func(*FileDistributor)

// WithFileMode sets the permission of written report files.
func WithFileMode(mode os.FileMode) FileOption {
	return func(d *FileDistributor) {
		d.fileMode = mode
	}
}

// WithFileLogger sets a custom logger for the distributor.
func WithFileLogger(logger *slog.Logger) FileOption {
	return func(d *FileDistributor) {
		d.logger = logger
	}
}

// NewFileDistributor creates a FileDistributor writing under baseDir.
// The directory is created on first write if it does not exist.
func NewFileDistributor(baseDir string, opts ...FileOption) *FileDistributor {
	d := &FileDistributor{
		baseDir:  baseDir,
		fileMode: DefaultFileMode,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// BaseDir returns the directory reports are written to.
func (d *FileDistributor) BaseDir() string {
	return d.baseDir
}

// Path returns the path a report with the given file name is written to.
func (d *FileDistributor) Path(fileName string) string {
	return filepath.Join(d.baseDir, fileName)
}

// Distribute writes every line of out to <baseDir>/<out.FileName>, one
// line per text line, overwriting any existing file of that name.
func (d *FileDistributor) Distribute(out *model.ReportOutput) model.DistributionResult {
	if res, ok := checkOutput(out); !ok {
		return res
	}

	err := d.write(out.FileName, func(w io.Writer) error {
		return writeLines(w, out.OutputLines)
	})
	if err != nil {
		d.logger.Error("failed to write report", "file", out.FileName, "error", err)
		return model.NotCreated(fmt.Sprintf("failed to write report %s: %v", out.FileName, err))
	}

	d.logger.Debug("report written", "path", d.Path(out.FileName), "lines", len(out.OutputLines))
	return model.Created()
}

// write holds the per-name lock while writing name atomically.
func (d *FileDistributor) write(name string, fill func(io.Writer) error) error {
	mu, _ := d.locks.LoadOrStore(name, &sync.Mutex{})
	lock := mu.(*sync.Mutex) //nolint:forcetypeassert // only *sync.Mutex values are stored
	lock.Lock()
	defer lock.Unlock()

	return writeAtomic(d.baseDir, name, d.fileMode, fill)
}

// writeLines writes each line followed by the platform line terminator.
func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if _, err := bw.WriteString(lineTerminator); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeAtomic creates dir if needed, lets fill write a temporary file in
// dir and renames it to name.
func writeAtomic(dir, name string, mode os.FileMode, fill func(io.Writer) error) (err error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".reportgen-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := fill(tmp); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
