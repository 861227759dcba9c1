package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/kinpuzzle/internal/domain/entities"
)

type renderer struct {
	format string
	color  bool
	output string
}

func (r *renderer) render(p *entities.Puzzle) (err error) {
	var w io.Writer
	var f *os.File

	if r.output != "" {
		f, err = os.OpenFile(r.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	if err := r.formatPuzzle(w, p); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func (r *renderer) formatPuzzle(w io.Writer, p *entities.Puzzle) error {
	switch r.format {
	case FormatJSON:
		return formatJSON(w, p)
	case FormatYAML:
		return formatYAML(w, p)
	case FormatText:
		return formatText(w, p, newPalette(r.color))
	default:
		return fmt.Errorf("unknown format: %s", r.format)
	}
}

func formatJSON(w io.Writer, p *entities.Puzzle) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(p)
}

func formatYAML(w io.Writer, p *entities.Puzzle) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(p); err != nil {
		return err
	}
	return encoder.Close()
}

// palette colours relation labels by category.
type palette struct {
	social  *color.Color
	spatial *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		social:  color.New(color.FgBlue),
		spatial: color.New(color.FgYellow),
	}
	if !enabled {
		p.social.DisableColor()
		p.spatial.DisableColor()
	}
	return p
}

func (p palette) relation(rel entities.Relation) string {
	return p.colorize(rel, string(rel))
}

// colorize paints text in the colour of rel's category.
func (p palette) colorize(rel entities.Relation, text string) string {
	if rel.IsSpatial() {
		return p.spatial.Sprint(text)
	}
	return p.social.Sprint(text)
}

// line colours the relation of a "subject:relation -> object" line.
func (p palette) line(s string) string {
	subject, rest, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	rel, object, ok := strings.Cut(rest, " -> ")
	if !ok {
		return s
	}
	return subject + ":" + p.relation(entities.Relation(rel)) + " -> " + object
}

// textWriter keeps the first write error so the text layout reads linearly.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func formatText(w io.Writer, p *entities.Puzzle, pal palette) error {
	t := &textWriter{w: w}

	positions := p.Seating.Positions()
	if p.Dense {
		seats := make([]string, 0, len(positions))
		for _, pos := range positions {
			seats = append(seats, fmt.Sprintf("%d:%s", pos, p.Seating.Seats[pos]))
		}
		t.printf("Seating (%s): %s\n", p.Seating.Kind, strings.Join(seats, " "))
	} else {
		t.printf("Seating (%s):\n", p.Seating.Kind)
		for _, pos := range positions {
			t.printf("  %d. %s\n", pos, p.Seating.Seats[pos])
		}

		t.printf("\nFacts (%d):\n", len(p.Facts))
		for _, f := range p.Facts {
			t.printf("  [%s] %s %s %s\n", f.ID, f.Subject, pal.relation(f.Relation), f.Object)
		}
	}

	t.printf("\nRelations:\n")
	for _, line := range p.Graph {
		t.printf("  %s\n", pal.line(line))
	}

	t.printf("\nSolution path: %s\n", strings.Join(p.SolutionPath, " -> "))
	for i, step := range p.SolutionSummary {
		t.printf("  %d. %s\n", i+1, pal.line(step.String()))
	}

	t.printf("\nSeed: %d\n", p.Seed)

	return t.err
}
