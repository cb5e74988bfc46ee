package snake

import "math/rand"

// Particle tuning.
const (
	particleDecay   = 0.02
	particleDamping = 0.98
	particleSpeed   = 4.0
	particleMinSize = 2.0
	particleMaxSize = 6.0
)

// Particle is a short-lived cosmetic spark in canvas pixel space.
// Particles carry no gameplay meaning.
type Particle struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
	Life float64 `json:"life"` // 1.0 when spawned, removed at 0
	Size float64 `json:"size"`
}

// spawnParticles appends n particles bursting from (x, y).
func spawnParticles(dst []Particle, n int, x, y float64, rng *rand.Rand) []Particle {
	for range n {
		dst = append(dst, Particle{
			X:    x,
			Y:    y,
			VX:   (rng.Float64() - 0.5) * particleSpeed,
			VY:   (rng.Float64() - 0.5) * particleSpeed,
			Life: 1.0,
			Size: particleMinSize + rng.Float64()*(particleMaxSize-particleMinSize),
		})
	}
	return dst
}

// updateParticles moves, slows and ages every particle in place, dropping the
// ones whose life ran out.
func updateParticles(ps []Particle) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleDamping
		p.VY *= particleDamping
		p.Life -= particleDecay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	return live
}
