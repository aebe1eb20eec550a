package ui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gobayes/domain/core"
	"gobayes/internal/errors"
	"gobayes/models"
)

func (a *App) handleAnalysisReport(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseAnalysisID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.CodeInvalidInput, err.Error())
		return
	}

	analysis, err := a.service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(reportMarkdown(analysis)))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(markdown.Render(doc, renderer))
}

// reportMarkdown builds the markdown source for an analysis report
func reportMarkdown(analysis *models.Analysis) string {
	var b strings.Builder

	title := analysis.Label
	if title == "" {
		title = analysis.ID.String()
	}
	fmt.Fprintf(&b, "# Bayes Factor Analysis: %s\n\n", title)
	fmt.Fprintf(&b, "%s\n\n", analysis.Summary())

	b.WriteString("## Data\n\n")
	fmt.Fprintf(&b, "| Mean | SE | H0 |\n|---|---|---|\n| %g | %g | %g |\n\n",
		analysis.DataMean, analysis.DataSE, analysis.H0Value)

	b.WriteString("## Alternative hypothesis\n\n")
	fmt.Fprintf(&b, "- Distribution: %s\n", analysis.Prior.Kind)
	if analysis.Prior.Min != nil {
		fmt.Fprintf(&b, "- Min: %g\n", *analysis.Prior.Min)
	}
	if analysis.Prior.Max != nil {
		fmt.Fprintf(&b, "- Max: %g\n", *analysis.Prior.Max)
	}
	if analysis.Prior.Mode != nil {
		fmt.Fprintf(&b, "- Mode: %g\n", *analysis.Prior.Mode)
	}
	if analysis.Prior.SD != nil {
		fmt.Fprintf(&b, "- SD: %g\n", *analysis.Prior.SD)
	}
	if analysis.Prior.Half != "" {
		fmt.Fprintf(&b, "- Half: %s\n", analysis.Prior.Half)
	}

	b.WriteString("\n## Result\n\n")
	fmt.Fprintf(&b, "| BF | P(data given H0) | P(data given H1) | Strength | Favors |\n|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %.4g | %.4g | %.4g | %s | %s |\n\n",
		analysis.BF, analysis.LikelihoodH0, analysis.MarginalH1, analysis.Strength, analysis.Supported)

	fmt.Fprintf(&b, "Computed at %s. Fingerprint `%s`.\n", analysis.CreatedAt, analysis.Fingerprint)
	return b.String()
}
