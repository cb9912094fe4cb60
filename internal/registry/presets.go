package registry

import "github.com/vovakirdan/foresight/internal/engine"

func off(dx, dy int) engine.Offset {
	return engine.Offset{DX: dx, DY: dy}
}

func init() {
	Register("single", "Single tile", engine.MustPattern(off(0, 0)))
	Register("domino", "Domino", engine.MustPattern(off(0, 0), off(1, 0)))
	Register("line3", "Line of three", engine.MustPattern(off(0, 0), off(1, 0), off(2, 0)))
	Register("line4", "Line of four", engine.MustPattern(off(0, 0), off(1, 0), off(2, 0), off(3, 0)))
	Register("l-tromino", "L tromino", engine.MustPattern(off(0, 0), off(1, 0), off(0, 1)))
	Register("square", "Square", engine.MustPattern(off(0, 0), off(1, 0), off(0, 1), off(1, 1)))
	Register("t-tetromino", "T tetromino", engine.MustPattern(off(0, 0), off(-1, 0), off(1, 0), off(0, 1)))
	Register("s-tetromino", "S tetromino", engine.MustPattern(off(0, 0), off(1, 0), off(1, 1), off(2, 1)))
	// Anchor in the corner of a 3x3 L.
	Register("corner5", "Corner of five", engine.MustPattern(off(0, 0), off(1, 0), off(2, 0), off(0, 1), off(0, 2)))
}
