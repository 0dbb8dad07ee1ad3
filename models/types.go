package models

import "time"

// Event type constants for POST /sessions/{id}/events
const (
	EventFocus          = "focus"
	EventBlur           = "blur"
	EventClickCandidate = "click_candidate"
	EventClickRow       = "click_row"
	EventDragStart      = "drag_start"
	EventDragOver       = "drag_over"
	EventDrop           = "drop"
	EventDragEnd        = "drag_end"
	EventTouchStart     = "touch_start"
	EventTouchMove      = "touch_move"
	EventTouchEnd       = "touch_end"
	EventTouchCancel    = "touch_cancel"
	EventKey            = "key"
	EventKeyRow         = "key_row"
	EventContextClick   = "context_click"
	EventPointerDown    = "pointer_down"

	// Sent by the client once it has painted the last view it received.
	EventRendered = "rendered"
)

// Wire types

// VoteItem places one candidate at one rank. Lower rank is better.
type VoteItem struct {
	Candidate int `json:"candidate" yaml:"candidate"`
	Rank      int `json:"rank" yaml:"rank"`
}

// FlatSelection is the transmitted form of a ballot, one item per candidate.
// Ranks need not be contiguous or sorted.
type FlatSelection []VoteItem

// Request types

type CreateSessionRequest struct {
	Candidates     []string      `json:"candidates"`
	InitialRanking FlatSelection `json:"initial_ranking"`
}

// Only the fields relevant to Type are read.
type EventRequest struct {
	Type       string  `json:"type"`
	Candidate  *int    `json:"candidate,omitempty"`
	Rank       *int    `json:"rank,omitempty"`
	Key        string  `json:"key,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	TargetRank *int    `json:"target_rank,omitempty"`
}

// Response types

type CreateSessionResponse struct {
	SessionID  string     `json:"session_id"`
	SessionKey string     `json:"session_key"`
	View       BallotView `json:"view"`
	CreatedAt  time.Time  `json:"created_at"`
}

type EventResponse struct {
	Changed bool       `json:"changed"`
	View    BallotView `json:"view"`
}

type SelectionsResponse struct {
	Selections  FlatSelection `json:"selections"`
	Description string        `json:"description"`
}

// View types

type CandidateView struct {
	Candidate int    `json:"candidate"`
	Name      string `json:"name"`
	Focused   bool   `json:"focused,omitempty"`
	Dragged   bool   `json:"dragged,omitempty"`
}

// RowView is one rank row. The trailing empty row has Empty set and no
// candidates.
type RowView struct {
	Rank       int             `json:"rank"`
	Label      string          `json:"label"`
	Empty      bool            `json:"empty,omitempty"`
	DropTarget bool            `json:"drop_target,omitempty"`
	Candidates []CandidateView `json:"candidates"`
}

type DragView struct {
	Candidate int     `json:"candidate"`
	Target    int     `json:"target"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

type BallotView struct {
	Rows    []RowView `json:"rows"`
	Focused *int      `json:"focused,omitempty"`
	Drag    *DragView `json:"drag,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
