// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tui is a full-screen terminal projector for the ballot editor, built
on bubbletea and lipgloss.

Terminal events are translated into editor protocols:

  - Left press on a candidate picks it up; on a row it places the held
    candidate there
  - Moving with the left button held starts a drag, hit tested against the
    rendered layout; release drops
  - Right press splits a candidate out of its tie
  - Arrows move the focused candidate (up/down) or focus its ties
    (left/right); tab cycles focus; 1-9 and n place the focused candidate;
    s splits; esc drops focus

Every mouse press is reported as editor.PointerDown, so a stranded drag
never survives a new gesture. After each update the model lays out the new
rows and calls Editor.Rendered.

Enter with nothing focused submits the ballot. q quits without submitting.
*/
package tui
