package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sciplot/internal/errors"

	"github.com/gomarkdown/markdown"
)

// WriteReport writes the run summary as report.md and report.html under the
// output directory. The HTML rendition is what the preview server serves.
func WriteReport(summary *Summary, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	md := buildMarkdown(summary)
	mdPath := filepath.Join(outputDir, "report.md")
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", mdPath)
	}

	html := markdown.ToHTML([]byte(md), nil, nil)
	htmlPath := filepath.Join(outputDir, "report.html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", htmlPath)
	}
	return nil
}

func buildMarkdown(summary *Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Plot Batch Report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", summary.RunID)
	fmt.Fprintf(&b, "- Started: %s\n", summary.Started.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Duration: %s\n", summary.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "- Charts: %d succeeded, %d failed\n\n", summary.Succeeded(), summary.Failed())

	b.WriteString("| Family | Variant | Output | Status |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, r := range summary.Results {
		status := "ok"
		if r.Err != nil {
			status = "failed"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.Family, r.Variant, r.Output, status)
	}

	if summary.Failed() > 0 {
		b.WriteString("\n## Failures\n\n")
		for _, r := range summary.Results {
			if r.Err == nil {
				continue
			}
			fmt.Fprintf(&b, "### %s/%s\n\n```\n%v\n```\n\n", r.Family, r.Variant, r.Err)
		}
	}
	return b.String()
}
