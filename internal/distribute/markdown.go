package distribute

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/reportgen/internal/model"
)

// MarkdownDistributor writes a Markdown rendition of each report, suitable
// for attaching to tickets or publishing on a wiki. The report title is an
// H1 and the fixed-layout lines are kept verbatim inside a fenced block so
// the column alignment survives rendering.
//
// The file name is the report's file name with its extension replaced by
// ".md", e.g. "Alex Burbank.txt" becomes "Alex Burbank.md".
type MarkdownDistributor struct {
	files  *FileDistributor
	logger *slog.Logger
}

// NewMarkdownDistributor creates a MarkdownDistributor writing under baseDir.
func NewMarkdownDistributor(baseDir string, opts ...FileOption) *MarkdownDistributor {
	files := NewFileDistributor(baseDir, opts...)
	return &MarkdownDistributor{files: files, logger: files.logger}
}

// MarkdownName returns the Markdown file name for a report file name.
func MarkdownName(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".md"
}

// Distribute writes out as <baseDir>/<stem>.md.
func (d *MarkdownDistributor) Distribute(out *model.ReportOutput) model.DistributionResult {
	if res, ok := checkOutput(out); !ok {
		return res
	}

	name := MarkdownName(out.FileName)
	title := strings.TrimSuffix(out.FileName, filepath.Ext(out.FileName))

	err := d.files.write(name, func(w io.Writer) error {
		md := markdown.NewMarkdown(w)
		md.H1(title)
		md.PlainText("")
		md.CodeBlocks(markdown.SyntaxHighlight("text"), strings.Join(out.OutputLines, "\n"))
		return md.Build()
	})
	if err != nil {
		d.logger.Error("failed to write markdown report", "file", name, "error", err)
		return model.NotCreated(fmt.Sprintf("failed to write report %s: %v", name, err))
	}

	d.logger.Debug("markdown report written", "path", d.files.Path(name))
	return model.Created()
}
