package entity

import (
	"slices"

	"github.com/solarlune/resolv"

	"github.com/younwookim/pufferdive/internal/domain/geom"
)

const (
	solidTag = "solid"
	probeTag = "probe"

	// resolv trims one unit off the far edges when mapping a rectangle to
	// cells, so queries are widened to keep sub-unit overlaps visible.
	probeMargin = 2
)

// SolidID is a stable slot index into the level's solid arena.
type SolidID int

// NoSolid is returned by queries that found nothing.
const NoSolid SolidID = -1

// TileCoord addresses a cell of the level grid.
type TileCoord struct {
	X, Y int
}

// Material is what a solid was decoded from.
type Material int

const (
	MaterialGround Material = iota // shape-resolved basic tile
	MaterialBrick                  // plain block, keeps its look
	MaterialBreakable
)

// TileShape is the edge/corner variant picked for a ground tile.
type TileShape int

const (
	ShapeTop TileShape = iota
	ShapeMid
	ShapeMidLeft
	ShapeMidRight
	ShapeTopLeft
	ShapeTopRight
	ShapeBotLeft
	ShapeBotRight
	ShapeBot
)

// Solid is an axis-aligned block of the level.
type Solid struct {
	Tile       TileCoord
	Rect       geom.Rect
	Material   Material
	Shape      TileShape
	Collidable bool
	Breakable  bool

	// Moving solids oscillate vertically around Origin.
	Moving bool
	Origin geom.Vec
	Vel    geom.Vec
	RemX   float64
	RemY   float64
}

// EnemySpawn places an enemy at level load.
type EnemySpawn struct {
	Kind     Kind
	Pos      geom.Vec
	Inverted bool // shrimp hanging from the ceiling
}

// DecorSpawn places an ambient decoration.
type DecorSpawn struct {
	Name string
	Pos  geom.Vec
	Size geom.Vec
}

// DiagonalDir is the corner a sloped deflector faces.
type DiagonalDir int

const (
	DiagonalTopLeft DiagonalDir = iota
	DiagonalTopRight
	DiagonalBotLeft
	DiagonalBotRight
)

// DiagonalSpawn places a sloped deflector.
type DiagonalSpawn struct {
	Dir DiagonalDir
	Pos geom.Vec
}

// ButtonSpawn places a floor or ceiling button.
type ButtonSpawn struct {
	Inverted bool
	Pos      geom.Vec
}

// Spawn is an optional single-point spawn.
type Spawn struct {
	Pos geom.Vec
	Set bool
}

// Level owns the solid arena and the spawn layout of one stage.
// Solids live in stable slots; a removed slot goes on the free list and
// the coordinate index never points at a dead slot.
type Level struct {
	Name     string
	Index    int
	TileSize float64
	Cols     int
	Rows     int
	Width    float64
	Height   float64

	PlayerSpawn geom.Vec
	Key         Spawn
	Door        Spawn
	Heart       Spawn
	Grampa      Spawn
	Enemies     []EnemySpawn
	Decors      []DecorSpawn
	Diagonals   []DiagonalSpawn
	Buttons     []ButtonSpawn
	Dialogue    []string

	// BossTriggerX is the x past which the boss encounter begins; zero
	// disables the trigger. ArenaWall lists the bricks raised once it fires.
	BossTriggerX float64
	ArenaWall    [][]TileCoord

	HeartTaken bool

	solids  []Solid
	live    []bool
	free    []SolidID
	grid    map[TileCoord]SolidID
	space   *resolv.Space
	objects []*resolv.Object
	owner   map[*resolv.Object]SolidID
	probe   *resolv.Object
	scratch []SolidID
}

// NewLevel creates an empty level of cols×rows tiles.
func NewLevel(cols, rows int, tileSize float64) *Level {
	w := float64(cols) * tileSize
	h := float64(rows) * tileSize
	cell := int(tileSize)
	if cell < 1 {
		cell = 1
	}

	l := &Level{
		TileSize: tileSize,
		Cols:     cols,
		Rows:     rows,
		Width:    w,
		Height:   h,
		grid:     make(map[TileCoord]SolidID),
		space:    resolv.NewSpace(int(w), int(h), cell, cell),
		owner:    make(map[*resolv.Object]SolidID),
		probe:    resolv.NewObject(0, 0, 1, 1, probeTag),
	}
	l.space.Add(l.probe)
	return l
}

// TileAt returns the world position of a tile's top-left corner.
func (l *Level) TileAt(c TileCoord) geom.Vec {
	return geom.V(float64(c.X)*l.TileSize, float64(c.Y)*l.TileSize)
}

// Bounds returns the level rectangle.
func (l *Level) Bounds() geom.Rect {
	return geom.R(0, 0, l.Width, l.Height)
}

// NewTileSolid builds a one-tile solid at c.
func (l *Level) NewTileSolid(c TileCoord, m Material) Solid {
	pos := l.TileAt(c)
	return Solid{
		Tile:       c,
		Rect:       geom.R(pos.X, pos.Y, l.TileSize, l.TileSize),
		Material:   m,
		Collidable: true,
		Breakable:  m == MaterialBreakable,
		Origin:     pos,
	}
}

// AddSolid stores s in a free slot (or a new one) and indexes it by its
// tile coordinate.
func (l *Level) AddSolid(s Solid) SolidID {
	var id SolidID
	if n := len(l.free); n > 0 {
		id = l.free[n-1]
		l.free = l.free[:n-1]
		l.solids[id] = s
		l.live[id] = true
	} else {
		id = SolidID(len(l.solids))
		l.solids = append(l.solids, s)
		l.live = append(l.live, true)
		l.objects = append(l.objects, nil)
	}

	obj := resolv.NewObject(s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H, solidTag)
	l.space.Add(obj)
	l.objects[id] = obj
	l.owner[obj] = id
	l.grid[s.Tile] = id
	return id
}

// RemoveSolid frees the slot of id. It reports false when the slot was
// already free, so a solid is only ever removed once.
func (l *Level) RemoveSolid(id SolidID) bool {
	if !l.alive(id) {
		return false
	}
	s := &l.solids[id]
	if cur, ok := l.grid[s.Tile]; ok && cur == id {
		delete(l.grid, s.Tile)
	}
	obj := l.objects[id]
	l.space.Remove(obj)
	delete(l.owner, obj)
	l.objects[id] = nil
	l.live[id] = false
	l.free = append(l.free, id)
	return true
}

func (l *Level) alive(id SolidID) bool {
	return id >= 0 && int(id) < len(l.solids) && l.live[id]
}

// Solid returns the solid in slot id, or nil if the slot is free.
func (l *Level) Solid(id SolidID) *Solid {
	if !l.alive(id) {
		return nil
	}
	return &l.solids[id]
}

// SolidCount returns the number of live solids.
func (l *Level) SolidCount() int {
	return len(l.solids) - len(l.free)
}

// EachSolid calls fn for every live solid in slot order. Removing the
// solid being visited is allowed.
func (l *Level) EachSolid(fn func(id SolidID, s *Solid)) {
	for i := range l.solids {
		if l.live[i] {
			fn(SolidID(i), &l.solids[i])
		}
	}
}

// SolidAt returns the solid indexed at grid coordinate c.
func (l *Level) SolidAt(c TileCoord) (SolidID, bool) {
	id, ok := l.grid[c]
	return id, ok
}

// IsSolid reports whether grid coordinate c holds a solid. Coordinates
// outside the grid count as solid.
func (l *Level) IsSolid(c TileCoord) bool {
	if c.X < 0 || c.Y < 0 || c.X >= l.Cols || c.Y >= l.Rows {
		return true
	}
	_, ok := l.grid[c]
	return ok
}

// SetSolidRect moves a solid and keeps the spatial index in sync.
func (l *Level) SetSolidRect(id SolidID, r geom.Rect) {
	if !l.alive(id) {
		return
	}
	l.solids[id].Rect = r
	obj := l.objects[id]
	obj.X, obj.Y = r.X, r.Y
	obj.Update()
}

// InBounds reports whether r lies fully inside the level.
func (l *Level) InBounds(r geom.Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= l.Width && r.Y+r.H <= l.Height
}

// candidates returns the ids of solids whose cells touch r, ascending.
func (l *Level) candidates(r geom.Rect) []SolidID {
	p := l.probe
	p.X = r.X - probeMargin
	p.Y = r.Y - probeMargin
	p.W = r.W + 2*probeMargin
	p.H = r.H + 2*probeMargin

	ids := l.scratch[:0]
	if c := p.Check(0, 0, solidTag); c != nil {
		for _, o := range c.Objects {
			if id, ok := l.owner[o]; ok {
				ids = append(ids, id)
			}
		}
	}
	slices.Sort(ids)
	l.scratch = ids
	return ids
}

// Blocking returns the lowest-slot collidable solid overlapping r.
func (l *Level) Blocking(r geom.Rect) SolidID {
	for _, id := range l.candidates(r) {
		s := &l.solids[id]
		if s.Collidable && s.Rect.Collides(r) {
			return id
		}
	}
	return NoSolid
}

// Penetration returns how far r must move to leave the level edge or the
// first collidable solid it overlaps. Zero means r is clear.
func (l *Level) Penetration(r geom.Rect) geom.Vec {
	switch {
	case r.X < 0:
		return geom.V(-r.X, 0)
	case r.X+r.W > l.Width:
		return geom.V(l.Width-r.X-r.W, 0)
	case r.Y < 0:
		return geom.V(0, -r.Y)
	case r.Y+r.H > l.Height:
		return geom.V(0, l.Height-r.Y-r.H)
	}

	if id := l.Blocking(r); id != NoSolid {
		return r.Depth(l.solids[id].Rect)
	}
	return geom.Vec{}
}
