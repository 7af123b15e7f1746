package reportPrinter

import (
	"fmt"
	"io"

	"inviteCrawler/domain/model"
)

type Logger interface {
	Printf(format string, args ...interface{})
}

type ReportPrinter struct {
	logger Logger
}

func New(logger Logger) *ReportPrinter {
	return &ReportPrinter{logger: logger}
}

func (p *ReportPrinter) Print(report model.Report) {
	for _, job := range report.Jobs {
		switch job.Status {
		case model.Found:
			p.logger.Printf("Site: %s Status: %s Link: %s Pages: %d", job.BaseURL, job.Status, job.Target, job.Visited)
		default:
			p.logger.Printf("Site: %s Status: %s Pages: %d", job.BaseURL, job.Status, job.Visited)
		}
	}
	p.logger.Printf("----------------------------------------------------")
	p.logger.Printf("Found: %d Exhausted: %d Failed: %d", report.Found, report.Exhausted, report.Failed)
	for _, f := range report.Failures {
		p.logger.Printf("Failed: %s Cause: %v", f.Site, f.Cause)
	}
}

// WriteFailedSites writes the failed site urls one per line, ready to be used as a seed file.
func WriteFailedSites(w io.Writer, report model.Report) error {
	for _, f := range report.Failures {
		if _, err := fmt.Fprintln(w, f.Site); err != nil {
			return err
		}
	}
	return nil
}
