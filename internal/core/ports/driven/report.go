package driven

import (
	"io"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// ReportWriter serialises a run summary with its document outcomes.
type ReportWriter interface {
	Write(w io.Writer, run *domain.Run, outcomes []domain.DocumentOutcome) error
}
