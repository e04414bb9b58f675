package ui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"angket/domain/analytics"
)

// handleReport renders a plain-figures report page for one questionnaire:
// the same summary numbers the JSON API returns, composed as markdown and
// served as HTML.
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	summary, err := a.service.Summary(r.Context(), q)
	if err != nil {
		a.writeError(w, err)
		return
	}

	md := reportMarkdown(q.QuestionnaireID.String(), summary)
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(markdown.ToHTML([]byte(md), p, renderer))
}

// reportMarkdown composes the report body. No narrative generation, only
// the aggregated figures.
func reportMarkdown(questionnaireID string, s analytics.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Laporan Kuesioner %s\n\n", questionnaireID)
	fmt.Fprintf(&b, "- Skor rata-rata keseluruhan: **%.2f**\n", s.AvgScaleOverall)
	fmt.Fprintf(&b, "- Pertanyaan skala: %d\n", s.TotalScaleQuestions)
	fmt.Fprintf(&b, "- Jawaban pilihan: %d\n", s.TotalChoiceAnswers)
	fmt.Fprintf(&b, "- Jawaban teks: %d\n\n", s.TotalTextAnswers)

	if len(s.CriteriaSummary) > 0 {
		b.WriteString("## Skor per Kriteria\n\n")
		b.WriteString("| Kriteria | Skor | Pertanyaan | Jawaban Skala |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, c := range s.CriteriaSummary {
			fmt.Fprintf(&b, "| %s | %.2f | %d | %d |\n",
				c.Criterion, c.AvgScale, c.TotalQuestions, c.TotalScaleAnswered)
		}
		b.WriteString("\n")
	}

	if len(s.QuestionAverages) > 0 {
		b.WriteString("## Rata-rata per Pertanyaan\n\n")
		for _, qa := range s.QuestionAverages {
			fmt.Fprintf(&b, "- **%s** %s: %.2f (%d jawaban)\n",
				qa.DisplayCode, qa.Label, qa.Average, qa.TotalAnswered)
		}
		b.WriteString("\n")
	}

	if len(s.SegmentSummary) > 0 {
		b.WriteString("## Dimensi Segmentasi\n\n")
		for _, dim := range s.SegmentSummary {
			fmt.Fprintf(&b, "- %s (%d kelompok)\n", dim.Label, len(dim.Buckets))
		}
	}

	return b.String()
}
