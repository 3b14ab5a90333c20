package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/kacperborowieckb/sql-chat/shared/contracts"
	"github.com/kacperborowieckb/sql-chat/shared/sqlgen"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/index.html
var indexTemplate string

type pageData struct {
	Form    contracts.GenerateRequest
	Outcome *sqlgen.Outcome
	History []sqlgen.HistoryEntry
	Dialect string
	Fields  formFields
}

type formFields struct {
	APIKey          string
	DatabaseContext string
	Question        string
}

var fields = formFields{
	APIKey:          contracts.FormAPIKey,
	DatabaseContext: contracts.FormDatabaseContext,
	Question:        contracts.FormQuestion,
}

type pageRenderer struct {
	tmpl     *template.Template
	markdown goldmark.Markdown
}

func newPageRenderer() (*pageRenderer, error) {
	p := &pageRenderer{
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}

	tmpl, err := template.New("index").Funcs(template.FuncMap{
		"markdown": p.renderMarkdown,
	}).Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	p.tmpl = tmpl

	return p, nil
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind.
func (p *pageRenderer) render(w http.ResponseWriter, status int, data pageData) error {
	data.Dialect = sqlgen.Dialect
	data.Fields = fields

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute index template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)

	return err
}

// renderMarkdown converts model-written markdown to HTML. Raw HTML in the
// source is dropped by goldmark's default renderer.
func (p *pageRenderer) renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := p.markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}

	return template.HTML(buf.String())
}

// newestFirst reverses history for display.
func newestFirst(entries []sqlgen.HistoryEntry) []sqlgen.HistoryEntry {
	out := make([]sqlgen.HistoryEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}

	return out
}
