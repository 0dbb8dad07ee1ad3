// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package projector

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-rank/ballot"
	"github.com/danielhkuo/quickly-rank/editor"
	"github.com/danielhkuo/quickly-rank/models"
)

const (
	labelWidth   = 6
	newRankLabel = "(new rank)"
)

// View converts an editor snapshot into the view model shared by every
// projector. Rows follow rank order and end with one empty row.
func View(s editor.Snapshot) models.BallotView {
	view := models.BallotView{Rows: make([]models.RowView, 0, len(s.Groups)+1)}

	for r, group := range s.Groups {
		row := models.RowView{
			Rank:       r,
			Label:      humanize.Ordinal(r + 1),
			DropTarget: s.Drag.Dragging() && s.Drag.DragTarget == r,
			Candidates: make([]models.CandidateView, 0, len(group)),
		}
		for _, c := range group {
			row.Candidates = append(row.Candidates, models.CandidateView{
				Candidate: int(c),
				Name:      name(s.Names, c),
				Focused:   c == s.Focused,
				Dragged:   s.Drag.Dragging() && c == s.Drag.DraggedChoice,
			})
		}
		view.Rows = append(view.Rows, row)
	}

	trailing := len(s.Groups)
	view.Rows = append(view.Rows, models.RowView{
		Rank:       trailing,
		Label:      humanize.Ordinal(trailing + 1),
		Empty:      true,
		DropTarget: s.Drag.Dragging() && s.Drag.DragTarget == trailing,
		Candidates: []models.CandidateView{},
	})

	if s.Focused != ballot.NoCandidate {
		focused := int(s.Focused)
		view.Focused = &focused
	}
	if s.Drag.Dragging() {
		view.Drag = &models.DragView{
			Candidate: int(s.Drag.DraggedChoice),
			Target:    s.Drag.DragTarget,
			X:         s.Drag.DragPos.X,
			Y:         s.Drag.DragPos.Y,
		}
	}
	return view
}

func name(names []string, c ballot.Candidate) string {
	if int(c) >= 0 && int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("#%d", int(c))
}

// Segment is a run of text on a rendered line. Candidate is NoCandidate for
// labels and padding.
type Segment struct {
	Text      string
	Candidate ballot.Candidate
	Focused   bool
	Dragged   bool
}

// Line is one rendered rank row.
type Line struct {
	Rank       int
	DropTarget bool
	Empty      bool
	Segments   []Segment
}

// String returns the line without styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, seg := range l.Segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Lines lays view out as text lines starting at line top of the output.
// Columns are terminal cells, so wide names take two per character.
// Every styled renderer must keep segment widths unchanged for the returned
// Layout to stay valid.
func Lines(view models.BallotView, top int) ([]Line, Layout) {
	lines := make([]Line, 0, len(view.Rows))
	layout := Layout{Top: top, rows: make([]rowSpan, 0, len(view.Rows))}

	for _, row := range view.Rows {
		marker := " "
		if row.DropTarget {
			marker = ">"
		}
		label := marker + fmt.Sprintf("%-*s", labelWidth, row.Label)
		line := Line{
			Rank:       row.Rank,
			DropTarget: row.DropTarget,
			Empty:      row.Empty,
			Segments:   []Segment{{Text: label, Candidate: ballot.NoCandidate}},
		}
		span := rowSpan{rank: row.Rank}
		col := lipgloss.Width(label)

		if row.Empty {
			line.Segments = append(line.Segments, Segment{Text: newRankLabel, Candidate: ballot.NoCandidate})
		}
		for _, cv := range row.Candidates {
			text := candidateText(cv)
			c := ballot.Candidate(cv.Candidate)
			line.Segments = append(line.Segments, Segment{
				Text:      text,
				Candidate: c,
				Focused:   cv.Focused,
				Dragged:   cv.Dragged,
			})
			width := lipgloss.Width(text)
			span.cells = append(span.cells, cellSpan{start: col, end: col + width, candidate: c})
			col += width
		}

		lines = append(lines, line)
		layout.rows = append(layout.rows, span)
	}
	return lines, layout
}

func candidateText(cv models.CandidateView) string {
	switch {
	case cv.Dragged:
		return "<" + cv.Name + "> "
	case cv.Focused:
		return "[" + cv.Name + "] "
	default:
		return " " + cv.Name + "  "
	}
}

// Render writes view as plain text, one rank per line.
func Render(w io.Writer, view models.BallotView) error {
	lines, _ := Lines(view, 0)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(l.String(), " ")); err != nil {
			return fmt.Errorf("failed to render ballot: %w", err)
		}
	}
	return nil
}

type cellSpan struct {
	start, end int
	candidate  ballot.Candidate
}

type rowSpan struct {
	rank  int
	cells []cellSpan
}

// Layout maps screen cells of a rendering back to ranks and candidates.
// X is the column and Y the line, both zero based.
type Layout struct {
	Top  int
	rows []rowSpan
}

var _ editor.HitTester = Layout{}

func (l Layout) row(p editor.Point) (rowSpan, bool) {
	y := int(p.Y) - l.Top
	if p.Y < 0 || y < 0 || y >= len(l.rows) {
		return rowSpan{}, false
	}
	return l.rows[y], true
}

// RankAt returns the rank row under p.
func (l Layout) RankAt(p editor.Point) (int, bool) {
	r, ok := l.row(p)
	if !ok {
		return 0, false
	}
	return r.rank, true
}

// CandidateAt returns the candidate drawn under p.
func (l Layout) CandidateAt(p editor.Point) (ballot.Candidate, bool) {
	r, ok := l.row(p)
	if !ok {
		return ballot.NoCandidate, false
	}
	x := int(p.X)
	for _, cell := range r.cells {
		if x >= cell.start && x < cell.end {
			return cell.candidate, true
		}
	}
	return ballot.NoCandidate, false
}

// Rows returns the number of laid out rank rows.
func (l Layout) Rows() int { return len(l.rows) }
