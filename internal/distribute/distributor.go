package distribute

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/nao1215/reportgen/internal/model"
)

// ErrNilOutput is the panic value used when a Distributor receives a nil
// report output.
var ErrNilOutput = errors.New("distribute: report output is nil")

// Failure messages relayed to operators verbatim.
const (
	msgNoLines         = "No output lines in report"
	msgNoFileName      = "No filename for report"
	msgInvalidFileName = "Invalid filename for report"
)

// Distributor persists a rendered report.
type Distributor interface {
	// Distribute writes every output line, in order, to the artifact named
	// by out.FileName and reports whether it was created.
	Distribute(out *model.ReportOutput) model.DistributionResult
}

// checkOutput applies the preconditions shared by all distributors.
// It panics on a nil output.
func checkOutput(out *model.ReportOutput) (model.DistributionResult, bool) {
	if out == nil {
		panic(ErrNilOutput)
	}
	if len(out.OutputLines) == 0 {
		return model.NotCreated(msgNoLines), false
	}
	if out.FileName == "" {
		return model.NotCreated(msgNoFileName), false
	}
	if !isPlainFileName(out.FileName) {
		return model.NotCreated(msgInvalidFileName), false
	}
	return model.Created(), true
}

// isPlainFileName reports whether name is a single path element.
// Subject names come from the record store, so a name such as
// "../../etc/passwd" must not escape the output directory.
func isPlainFileName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}

// MultiDistributor writes each report to several Distributors in order.
// The first failure stops the fan-out and is returned.
type MultiDistributor struct {
	distributors []Distributor
}

// NewMultiDistributor creates a Distributor that writes to all given Distributors.
func NewMultiDistributor(distributors ...Distributor) *MultiDistributor {
	return &MultiDistributor{distributors: distributors}
}

// Distribute writes out to every configured Distributor.
func (m *MultiDistributor) Distribute(out *model.ReportOutput) model.DistributionResult {
	if res, ok := checkOutput(out); !ok {
		return res
	}
	for _, d := range m.distributors {
		if res := d.Distribute(out); !res.Created {
			return res
		}
	}
	return model.Created()
}
