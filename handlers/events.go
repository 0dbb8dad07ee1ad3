package handlers

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-rank/ballot"
	"github.com/danielhkuo/quickly-rank/editor"
	"github.com/danielhkuo/quickly-rank/models"
)

var ErrInvalidEvent = errors.New("invalid event")

func eventCandidate(ev models.EventRequest) (ballot.Candidate, error) {
	if ev.Candidate == nil {
		return ballot.NoCandidate, fmt.Errorf("%w: %s requires candidate", ErrInvalidEvent, ev.Type)
	}
	return ballot.Candidate(*ev.Candidate), nil
}

func eventRank(ev models.EventRequest) (int, error) {
	if ev.Rank == nil {
		return 0, fmt.Errorf("%w: %s requires rank", ErrInvalidEvent, ev.Type)
	}
	return *ev.Rank, nil
}

func eventKey(ev models.EventRequest) (editor.Key, error) {
	if ev.Key == "" {
		return "", fmt.Errorf("%w: %s requires key", ErrInvalidEvent, ev.Type)
	}
	// Keys the editor has no binding for are accepted and ignored.
	k, _ := editor.ParseKey(ev.Key)
	return k, nil
}

// remoteHit trusts the client's own hit test: target_rank is the row under
// the finger, or absent when the finger is over something else.
func remoteHit(ev models.EventRequest) editor.HitTester {
	return editor.HitFunc(func(editor.Point) (int, bool) {
		if ev.TargetRank == nil {
			return 0, false
		}
		return *ev.TargetRank, true
	})
}

// applyEvent feeds one client event into ed and reports whether the ballot
// changed.
func applyEvent(ed *editor.Editor, ev models.EventRequest) (bool, error) {
	pos := editor.Point{X: ev.X, Y: ev.Y}

	switch ev.Type {
	case models.EventBlur:
		ed.Blur()
	case models.EventDragEnd:
		ed.DragEnd()
	case models.EventTouchMove:
		ed.TouchMove(pos, remoteHit(ev))
	case models.EventTouchEnd:
		return ed.TouchEnd(), nil
	case models.EventTouchCancel:
		ed.TouchCancel()
	case models.EventPointerDown:
		ed.PointerDown()
	case models.EventRendered:
		ed.Rendered()

	case models.EventFocus, models.EventClickCandidate, models.EventDragStart,
		models.EventTouchStart, models.EventContextClick:
		c, err := eventCandidate(ev)
		if err != nil {
			return false, err
		}
		switch ev.Type {
		case models.EventFocus:
			ed.Focus(c)
		case models.EventClickCandidate:
			ed.ClickCandidate(c)
		case models.EventDragStart:
			ed.DragStart(c)
		case models.EventTouchStart:
			ed.TouchStart(c, pos)
		case models.EventContextClick:
			return ed.ContextClick(c), nil
		}

	case models.EventClickRow, models.EventDragOver, models.EventDrop:
		rank, err := eventRank(ev)
		if err != nil {
			return false, err
		}
		switch ev.Type {
		case models.EventClickRow:
			return ed.ClickRow(rank), nil
		case models.EventDragOver:
			ed.DragOver(rank)
		case models.EventDrop:
			return ed.Drop(rank), nil
		}

	case models.EventKey:
		k, err := eventKey(ev)
		if err != nil {
			return false, err
		}
		return ed.KeyDown(k), nil

	case models.EventKeyRow:
		k, err := eventKey(ev)
		if err != nil {
			return false, err
		}
		rank, err := eventRank(ev)
		if err != nil {
			return false, err
		}
		return ed.KeyDownOnRow(k, rank), nil

	default:
		return false, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, ev.Type)
	}
	return false, nil
}
