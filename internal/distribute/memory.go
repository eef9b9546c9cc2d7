package distribute

import (
	"slices"
	"sync"

	"github.com/nao1215/reportgen/internal/model"
)

// MemoryDistributor keeps reports in memory instead of writing files.
// The latest output for a name replaces any earlier one, matching the
// overwrite behavior of FileDistributor.
type MemoryDistributor struct {
	mu     sync.Mutex
	files  map[string][]string
	writes int
}

// NewMemoryDistributor creates an empty MemoryDistributor.
func NewMemoryDistributor() *MemoryDistributor {
	return &MemoryDistributor{files: make(map[string][]string)}
}

// Distribute stores a copy of out's lines under out.FileName.
func (m *MemoryDistributor) Distribute(out *model.ReportOutput) model.DistributionResult {
	if res, ok := checkOutput(out); !ok {
		return res
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[out.FileName] = slices.Clone(out.OutputLines)
	m.writes++
	return model.Created()
}

// Lines returns the stored lines for name.
func (m *MemoryDistributor) Lines(name string) ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines, ok := m.files[name]
	return slices.Clone(lines), ok
}

// Names returns the stored file names in sorted order.
func (m *MemoryDistributor) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Writes returns how many reports were stored, counting overwrites.
func (m *MemoryDistributor) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.writes
}
