// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package editor routes ballot-editing input onto a single ballot.

	e := editor.New(names, prior)
	...
	flat := e.GetSelections()

# Protocols

Five input protocols share one held (focused) candidate and one drag
context, and all of them end in the same two mutations:

  - Click: ClickCandidate picks a candidate up, ClickRow places it
  - Pointer drag: DragStart, DragOver, Drop, DragEnd
  - Touch drag: TouchStart, TouchMove (hit tested), TouchEnd, TouchCancel
  - Keyboard: KeyDown on the focused candidate, KeyDownOnRow on a row
  - Context click: ContextClick splits a tie

The row at TrailingRank() is always empty; targeting it creates a new lowest
rank.

# Rendering

A mutation re-renders the moved candidate, so focus is dropped. Keyboard
moves queue a continuation that restores focus once the projector calls
Rendered():

	e.KeyDown(editor.KeyArrowUp)
	redraw(e.Snapshot())
	e.Rendered() // focus is back on the moved candidate

# Stranded Drags

A touch drag interrupted by the platform may never see touchend. The next
PointerDown or TouchStart clears it.
*/
package editor
