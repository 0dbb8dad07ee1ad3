/*
Package session holds editors in memory for remote projectors.

A browser or other remote client cannot own an editor.Editor directly, so
the HTTP gateway keeps one per session here, keyed by a random UUID. Each
Session serializes access to its editor with Do; the Store guards the map.

Sessions unused for longer than the idle timeout are removed by Sweep,
which RunSweeper calls on a ticker. Deleting or sweeping a session tears its
editor down.
*/
package session
