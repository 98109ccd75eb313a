// Package paratrooper implements the turret-defense game: helicopters
// cross the sky dropping paratroopers, and the player sweeps a fixed
// turret to shoot both down before a trooper reaches the ground line.
package paratrooper

import "math"

// Helicopter crosses the sky at a fixed altitude, dropping troopers on a
// timer. Positions are float cells; direction is +1 rightward, -1 leftward.
type Helicopter struct {
	X, Y      float64
	Direction int
	DropTimer int
	Alive     bool
}

// update advances the helicopter and counts down its drop timer.
func (h *Helicopter) update(speed float64) {
	h.X += speed * float64(h.Direction)
	h.DropTimer--
}

// shouldDrop reports whether the drop timer has run out.
func (h *Helicopter) shouldDrop() bool {
	return h.DropTimer <= 0
}

// Trooper falls straight down; after chuteOpenTicks the parachute opens
// and the fall slows.
type Trooper struct {
	X, Y       float64
	ChuteOpen  bool
	ChuteTimer int
	Alive      bool
}

// update advances the fall and opens the chute when its timer expires.
func (t *Trooper) update(fallSpeed, chuteFallSpeed float64) {
	if !t.ChuteOpen {
		t.ChuteTimer--
		if t.ChuteTimer <= 0 {
			t.ChuteOpen = true
		}
	}
	if t.ChuteOpen {
		t.Y += chuteFallSpeed
	} else {
		t.Y += fallSpeed
	}
}

// Bullet is a turret shot on a straight ray.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Alive  bool
}

// newBullet spawns a shot at the barrel tip heading along angle.
func newBullet(x, y, angle, speed float64) Bullet {
	return Bullet{
		X:     x,
		Y:     y,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle) * speed,
		Alive: true,
	}
}

// update advances the bullet.
func (b *Bullet) update() {
	b.X += b.VX
	b.Y += b.VY
}

// Hit thresholds in cells. Helicopters are wide and flat, troopers are
// narrow and tall.
const (
	heliHitX    = 2.0
	heliHitY    = 1.0
	trooperHitX = 1.0
	trooperHitY = 1.5
)

// hitsHeli reports whether the bullet is inside the helicopter's box.
func (b *Bullet) hitsHeli(h *Helicopter) bool {
	return math.Abs(b.X-h.X) < heliHitX && math.Abs(b.Y-h.Y) < heliHitY
}

// hitsTrooper reports whether the bullet is inside the trooper's box.
func (b *Bullet) hitsTrooper(t *Trooper) bool {
	return math.Abs(b.X-t.X) < trooperHitX && math.Abs(b.Y-t.Y) < trooperHitY
}
