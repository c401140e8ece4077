// Package tui implements an interactive renderer that collects values for
// unbound placeholders from terminal prompts before rendering the document.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/unifiedai/go-reportgen/pkg/binding"
	"github.com/unifiedai/go-reportgen/pkg/render"
	"github.com/unifiedai/go-reportgen/pkg/renderers/markdown"
	"github.com/unifiedai/go-reportgen/pkg/template"
)

// Renderer implements render.Renderer for terminal-driven sessions. Tokens
// already present in the document bindings are never prompted for.
type Renderer struct {
	driver  PromptDriver
	output  *markdown.Renderer
	confirm bool
}

// New constructs a TUI renderer with the survey-backed prompt driver.
func New(options ...Option) (render.Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver: driver,
		output: markdown.New(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Render prompts for every unbound placeholder in document order, then
// renders the completed document as markdown.
func (r *Renderer) Render(ctx context.Context, doc render.Document, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	collected := doc.Bindings.Clone()
	if collected == nil {
		collected = binding.Set{}
	}

	blocks := blockTokens(doc.Template)
	for _, name := range doc.Template.TokenNames() {
		if _, bound := collected[name]; bound {
			continue
		}

		value, err := r.prompt(ctx, doc.Template.Name(), name, blocks[name])
		if err != nil {
			return nil, err
		}
		collected[name] = value
	}

	if r.confirm {
		if err := r.confirmValues(ctx, doc.Template, collected); err != nil {
			return nil, err
		}
	}

	doc.Bindings = collected
	return r.output.Render(ctx, doc, opts)
}

func (r *Renderer) prompt(ctx context.Context, templateName, token string, block bool) (string, error) {
	message := promptMessage(token)
	help := fmt.Sprintf("Value for {%s} in template %q.", token, templateName)

	if block {
		return r.driver.TextArea(ctx, TextAreaConfig{Message: message, Help: help})
	}
	return r.driver.Input(ctx, InputConfig{Message: message, Help: help})
}

func (r *Renderer) confirmValues(ctx context.Context, tpl template.Template, values binding.Set) error {
	var summary strings.Builder
	summary.WriteString("Collected values:")
	for _, name := range tpl.TokenNames() {
		fmt.Fprintf(&summary, "\n  %s: %s", name, previewValue(values[name]))
	}
	if err := r.driver.Info(ctx, summary.String()); err != nil {
		return err
	}

	ok, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Render %q with these values?", tpl.Name()),
		Default: true,
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

// blockTokens reports which tokens occupy a whole line somewhere in the
// template. Those collect multi-line prose (section bodies); tokens that
// appear inline (titles, dates) take single-line input.
func blockTokens(tpl template.Template) map[string]bool {
	body := tpl.Body()
	out := make(map[string]bool)

	for _, ph := range tpl.Placeholders() {
		startsLine := ph.Start == 0 || body[ph.Start-1] == '\n'
		endsLine := ph.End == len(body) || body[ph.End] == '\n' ||
			(body[ph.End] == '\r' && ph.End+1 < len(body) && body[ph.End+1] == '\n')
		if startsLine && endsLine {
			out[ph.Name] = true
		}
	}
	return out
}

func promptMessage(token string) string {
	words := strings.Split(strings.ToLower(token), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func previewValue(value string) string {
	flattened := strings.Join(strings.Fields(value), " ")
	if len(flattened) > 60 {
		return flattened[:57] + "..."
	}
	if flattened == "" {
		return "(empty)"
	}
	return flattened
}
