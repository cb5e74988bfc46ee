package snake

import (
	"math/rand"
	"testing"
)

func TestSpawnParticles(t *testing.T) {
	ps := spawnParticles(nil, 8, 210, 210, rand.New(rand.NewSource(3)))
	if len(ps) != 8 {
		t.Fatalf("spawned %d particles, expected 8", len(ps))
	}
	for i, p := range ps {
		if p.X != 210 || p.Y != 210 {
			t.Errorf("particle %d at (%v, %v), expected (210, 210)", i, p.X, p.Y)
		}
		if p.Life != 1.0 {
			t.Errorf("particle %d life = %v, expected 1", i, p.Life)
		}
		if p.VX < -2 || p.VX >= 2 || p.VY < -2 || p.VY >= 2 {
			t.Errorf("particle %d velocity (%v, %v) out of range", i, p.VX, p.VY)
		}
		if p.Size < 2 || p.Size >= 6 {
			t.Errorf("particle %d size %v out of range", i, p.Size)
		}
	}
}

func TestUpdateParticlesExpire(t *testing.T) {
	ps := []Particle{{X: 0, Y: 0, VX: 1, VY: -1, Life: 1.0, Size: 3}}

	ps = updateParticles(ps)
	if len(ps) != 1 {
		t.Fatalf("particle expired too early")
	}
	if ps[0].X != 1 || ps[0].Y != -1 {
		t.Errorf("position = (%v, %v), expected (1, -1)", ps[0].X, ps[0].Y)
	}
	if ps[0].VX != 0.98 {
		t.Errorf("VX = %v, expected damping to 0.98", ps[0].VX)
	}

	// Life 1.0 decays by 0.02 per update: gone after at most 50 updates.
	for range 50 {
		ps = updateParticles(ps)
	}
	if len(ps) != 0 {
		t.Errorf("expected all particles to expire, %d left", len(ps))
	}
}
