package intercept

import "testing"

func TestPoolRemoveWhileWalkingBackwards(t *testing.T) {
	var p Pool
	for i := 0; i < 6; i++ {
		p.Add(Entity{X: float64(i)})
	}

	// Drop every even X; each entity must be visited exactly once.
	visited := map[float64]int{}
	for i := p.Len() - 1; i >= 0; i-- {
		e := p.At(i)
		visited[e.X]++
		if int(e.X)%2 == 0 {
			p.RemoveAt(i)
		}
	}

	for x := 0; x < 6; x++ {
		if visited[float64(x)] != 1 {
			t.Errorf("entity %d visited %d times", x, visited[float64(x)])
		}
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", p.Len())
	}
	for _, e := range p.Items() {
		if int(e.X)%2 == 0 {
			t.Errorf("even entity %v survived", e.X)
		}
	}
}

func TestPoolReset(t *testing.T) {
	var p Pool
	p.Add(Entity{})
	p.Add(Entity{})
	p.Reset()

	if p.Len() != 0 {
		t.Errorf("Len() after Reset = %d", p.Len())
	}
}

func TestEntityRect(t *testing.T) {
	r := Entity{X: 1, Y: 2, W: 3, H: 0.5}.Rect()
	if r.X != 1 || r.Y != 2 || r.W != 3 || r.H != 0.5 {
		t.Errorf("Rect() = %+v", r)
	}
}

func TestSpawnerAdvance(t *testing.T) {
	var s Spawner
	if s.Advance(1, 1) {
		t.Error("timer equal to the interval should not fire")
	}
	if !s.Advance(0.001, 1) {
		t.Error("timer past the interval should fire")
	}
	if s.Timer != 0 {
		t.Errorf("Timer = %f after firing, expected 0", s.Timer)
	}
}
