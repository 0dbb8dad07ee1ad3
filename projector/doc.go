/*
Package projector turns editor snapshots into something drawable.

View builds the models.BallotView served over HTTP. Lines and Render lay the
same view out as text, one rank per line, with ordinal labels and a trailing
"(new rank)" row:

	 1st    A  [B]
	 2nd    C
	 3rd   (new rank)

Focused candidates are bracketed, the dragged one is drawn as <C>, and the
current drop target row is marked with ">".

Layout maps cells of that text back to ranks and candidates. It implements
editor.HitTester so touch drags can be resolved against what is on screen.
*/
package projector
