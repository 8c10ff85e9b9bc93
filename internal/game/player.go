package game

// Player is the avatar the enemies chase.
type Player struct {
	Pos  Vec2 // centre
	Size float64
}

// NewPlayer places the player at pos.
func NewPlayer(pos Vec2) Player {
	return Player{Pos: pos, Size: playerSize}
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() Rect { return RectAround(p.Pos, p.Size) }

// Move shifts the player by dir scaled by playerSpeed on each axis and keeps
// it inside field. dir components are expected in [-1, 1].
func (p *Player) Move(dir Vec2, field Rect) {
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	p.Pos = p.Pos.Add(dir.Scale(playerSpeed))
	p.Pos = p.Bounds().Clamp(field).Center()
}

// Projectile is the auto-fired shot. It dies on its first hit or when it
// leaves the field.
type Projectile struct {
	Pos  Vec2 // centre
	Dir  Vec2 // unit vector
	dead bool
}

// NewProjectile fires from pos toward target. A target on top of pos gives
// a stationary shot that is cleaned up by its first hit.
func NewProjectile(pos, target Vec2) Projectile {
	return Projectile{Pos: pos, Dir: Normalize(target.Sub(pos))}
}

func (pr *Projectile) Bounds() Rect { return RectAround(pr.Pos, projectileSize) }

// Step moves the projectile and marks it dead once it no longer overlaps
// field.
func (pr *Projectile) Step(field Rect) {
	pr.Pos = pr.Pos.Add(pr.Dir.Scale(projectileSpeed))
	if !pr.Bounds().Overlaps(field) {
		pr.dead = true
	}
}
