// Package ecs owns every live actor of a session. Actors are addressed by
// EntityID handles that are never recycled, so a handle to a removed actor
// simply resolves to nil instead of aliasing a newer one.
package ecs

import "github.com/younwookim/pufferdive/internal/domain/entity"

// EntityID is re-exported for callers that only deal with the world.
type EntityID = entity.EntityID

// World holds the actor arena, the per-kind iteration views and the queue
// of actors spawned during the current tick.
type World struct {
	nextID EntityID

	actors map[EntityID]*entity.Actor
	order  []EntityID

	// Per-kind views in creation order
	Enemies   []EntityID
	Decors    []EntityID
	Diagonals []EntityID
	Buttons   []EntityID

	// Singleton references (0 when absent)
	PlayerID EntityID
	KeyID    EntityID
	DoorID   EntityID
	HeartID  EntityID
	GrampaID EntityID
	BossID   EntityID

	pending []*entity.Actor
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID: 1, // 0 is "nil"
		actors: make(map[EntityID]*entity.Actor),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Spawn assigns an ID to a and makes it live immediately. Use it while
// building a level; mid-tick spawns go through Enqueue.
func (w *World) Spawn(a *entity.Actor) EntityID {
	a.ID = w.NewEntity()
	w.register(a)
	return a.ID
}

// Enqueue assigns an ID to a but keeps it out of every view until Flush.
func (w *World) Enqueue(a *entity.Actor) EntityID {
	a.ID = w.NewEntity()
	w.pending = append(w.pending, a)
	return a.ID
}

// Pending returns the number of queued actors.
func (w *World) Pending() int {
	return len(w.pending)
}

// Flush moves every queued actor into the live set, in queue order.
func (w *World) Flush() {
	for _, a := range w.pending {
		w.register(a)
	}
	clear(w.pending)
	w.pending = w.pending[:0]
}

func (w *World) register(a *entity.Actor) {
	w.actors[a.ID] = a
	w.order = append(w.order, a.ID)

	switch a.Kind {
	case entity.KindPlayer:
		w.PlayerID = a.ID
	case entity.KindKey:
		w.KeyID = a.ID
	case entity.KindDoor:
		w.DoorID = a.ID
	case entity.KindHeart:
		w.HeartID = a.ID
	case entity.KindGrampa:
		w.GrampaID = a.ID
	case entity.KindDecor:
		w.Decors = append(w.Decors, a.ID)
	case entity.KindDiagonal:
		w.Diagonals = append(w.Diagonals, a.ID)
	case entity.KindButton:
		w.Buttons = append(w.Buttons, a.ID)
	default:
		if a.Kind.IsEnemy() {
			w.Enemies = append(w.Enemies, a.ID)
			if a.Kind == entity.KindBoss {
				w.BossID = a.ID
			}
		}
	}
}

// Get returns the actor for id, or nil if it does not exist (anymore).
func (w *World) Get(id EntityID) *entity.Actor {
	return w.actors[id]
}

// Exists checks if an entity is live
func (w *World) Exists(id EntityID) bool {
	_, ok := w.actors[id]
	return ok
}

// Player returns the player actor.
func (w *World) Player() *entity.Actor {
	return w.actors[w.PlayerID]
}

// Boss returns the boss actor, or nil on stages without one.
func (w *World) Boss() *entity.Actor {
	return w.actors[w.BossID]
}

// DestroyEntity removes an actor from the arena and from every view.
func (w *World) DestroyEntity(id EntityID) {
	a, ok := w.actors[id]
	if !ok {
		return
	}
	delete(w.actors, id)
	w.order = removeID(w.order, id)

	switch {
	case a.Kind.IsEnemy():
		w.Enemies = removeID(w.Enemies, id)
	case a.Kind == entity.KindDecor:
		w.Decors = removeID(w.Decors, id)
	case a.Kind == entity.KindDiagonal:
		w.Diagonals = removeID(w.Diagonals, id)
	case a.Kind == entity.KindButton:
		w.Buttons = removeID(w.Buttons, id)
	}
}

// PruneDeadEnemies destroys every enemy whose death has resolved and
// returns how many were removed.
func (w *World) PruneDeadEnemies() int {
	kept := w.Enemies[:0]
	removed := 0
	for _, id := range w.Enemies {
		a := w.actors[id]
		if a != nil && !a.Dead {
			kept = append(kept, id)
			continue
		}
		delete(w.actors, id)
		w.order = removeID(w.order, id)
		removed++
	}
	clear(w.Enemies[len(kept):])
	w.Enemies = kept
	return removed
}

// Each calls fn for every live actor in creation order.
func (w *World) Each(fn func(a *entity.Actor)) {
	for _, id := range w.order {
		if a := w.actors[id]; a != nil {
			fn(a)
		}
	}
}

// CountEnemies returns the number of live enemies
func (w *World) CountEnemies() int {
	return len(w.Enemies)
}

// CountKind returns the number of live actors of kind k.
func (w *World) CountKind(k entity.Kind) int {
	n := 0
	for _, a := range w.actors {
		if a.Kind == k {
			n++
		}
	}
	return n
}

func removeID(ids []EntityID, id EntityID) []EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
