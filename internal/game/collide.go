package game

import (
	"sort"

	"github.com/solarlune/resolv"
)

// collideMargin shifts every shape into positive space so boxes poking past
// the field edge still land in a grid cell.
const (
	collideMargin = 64
	collideCell   = 32
)

var (
	tagEnemy = resolv.NewTag("enemy")
	tagQuery = resolv.NewTag("query")
)

// indexedEnemy is one enemy box held in the space.
type indexedEnemy struct {
	handle EnemyHandle
	bounds Rect
}

// CollisionSpace is the broad-phase index of enemy boxes for one resolution
// pass. It is rebuilt from the enemy store before use, so enemies that moved
// or died since the last pass never leave stale shapes behind.
type CollisionSpace struct {
	space  *resolv.Space
	shapes map[resolv.IShape]indexedEnemy
}

// NewCollisionSpace builds an empty index covering field plus a margin.
func NewCollisionSpace(field Rect) *CollisionSpace {
	w := int(field.X+field.W) + 2*collideMargin
	h := int(field.Y+field.H) + 2*collideMargin
	return &CollisionSpace{
		space:  resolv.NewSpace(w, h, collideCell, collideCell),
		shapes: make(map[resolv.IShape]indexedEnemy),
	}
}

func shapeFor(r Rect) resolv.IShape {
	return resolv.NewRectangleTopLeft(r.X+collideMargin, r.Y+collideMargin, r.W, r.H)
}

// Rebuild replaces the indexed shapes with the current live enemies.
func (cs *CollisionSpace) Rebuild(store *EnemyStore) {
	for sh := range cs.shapes {
		cs.space.Remove(sh)
	}
	clear(cs.shapes)
	store.Each(func(h EnemyHandle, e *Enemy) {
		b := e.Bounds()
		sh := shapeFor(b)
		sh.Tags().Set(tagEnemy)
		cs.space.Add(sh)
		cs.shapes[sh] = indexedEnemy{handle: h, bounds: b}
	})
}

// Overlapping returns the handles of every indexed enemy sharing area with
// r, containment included, ordered by arena index so callers see a stable
// order. The space only narrows the candidates to nearby cells; each one is
// confirmed against its box.
func (cs *CollisionSpace) Overlapping(r Rect) []EnemyHandle {
	query := shapeFor(r)
	query.Tags().Set(tagQuery)
	cs.space.Add(query)
	defer cs.space.Remove(query)

	var out []EnemyHandle
	seen := make(map[resolv.IShape]bool)
	query.SelectTouchingCells(0).FilterShapes().ByTags(tagEnemy).ForEach(func(sh resolv.IShape) bool {
		if seen[sh] {
			return true
		}
		seen[sh] = true
		if ie, ok := cs.shapes[sh]; ok && ie.bounds.Overlaps(r) {
			out = append(out, ie.handle)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// First returns the lowest-indexed enemy intersecting r.
func (cs *CollisionSpace) First(r Rect) (EnemyHandle, bool) {
	hits := cs.Overlapping(r)
	if len(hits) == 0 {
		return EnemyHandle{}, false
	}
	return hits[0], true
}

// Len returns the number of indexed enemies.
func (cs *CollisionSpace) Len() int { return len(cs.shapes) }
