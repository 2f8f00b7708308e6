package entity

// ResolveShapes picks the edge/corner variant of every ground tile from
// its neighbours and turns off collision for tiles buried at least two
// tiles deep. Run it once after the level is populated.
func (l *Level) ResolveShapes() {
	l.EachSolid(func(_ SolidID, s *Solid) {
		if s.Material != MaterialGround {
			return
		}
		s.Shape = l.shapeOf(s.Tile)
		if s.Shape == ShapeMid && l.buried(s.Tile) {
			s.Collidable = false
		}
	})
}

func (l *Level) shapeOf(c TileCoord) TileShape {
	top := l.IsSolid(TileCoord{c.X, c.Y - 1})
	bottom := l.IsSolid(TileCoord{c.X, c.Y + 1})
	left := l.IsSolid(TileCoord{c.X - 1, c.Y})
	right := l.IsSolid(TileCoord{c.X + 1, c.Y})

	switch {
	case top && bottom && left && right:
		return ShapeMid
	case top && bottom && !left:
		return ShapeMidLeft
	case top && bottom && !right:
		return ShapeMidRight
	case top && left && !bottom && !right:
		return ShapeBotRight
	case top && right && !bottom && !left:
		return ShapeBotLeft
	case bottom && left && !top && !right:
		return ShapeTopRight
	case bottom && right && !top && !left:
		return ShapeTopLeft
	case top && left && right && !bottom:
		return ShapeBot
	default:
		return ShapeTop
	}
}

// buried reports whether the 5×5 block centered on c is entirely solid.
// Breakable blocks can be smashed open later, so they do not bury.
func (l *Level) buried(c TileCoord) bool {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if !l.permanent(TileCoord{c.X + dx, c.Y + dy}) {
				return false
			}
		}
	}
	return true
}

// permanent reports whether c holds a solid that can never be removed.
func (l *Level) permanent(c TileCoord) bool {
	if !l.IsSolid(c) {
		return false
	}
	id, ok := l.grid[c]
	return !ok || !l.solids[id].Breakable
}
