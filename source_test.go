package catrom

import (
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

// waypoint is a vertex fixture carrying more than just a position.
type waypoint struct {
	name string
	pos  Point3
}

func (w waypoint) Position() Point3 { return w.pos }

func TestSourcesAgree(t *testing.T) {
	pts := helix(7)

	verts := make(VertexPoints[waypoint], len(pts))
	for i, pt := range pts {
		verts[i] = waypoint{name: "wp", pos: pt}
	}

	raw := make(Vec3Points, len(pts))
	for i, pt := range pts {
		raw[i] = vec3.T{pt.X, pt.Y, pt.Z}
	}

	want := Path{Source: pts}
	for _, src := range []PointSource{verts, raw} {
		p := Path{Source: src}
		if got := src.Len(); got != len(pts) {
			t.Fatalf("got length %d, want %d", got, len(pts))
		}
		const n = 20
		for i := 0; i <= n; i++ {
			ts := float64(i) / float64(n)
			wantPos, err := want.Interp(ts)
			if err != nil {
				t.Fatalf("Interp(%v): %v", ts, err)
			}
			gotPos, err := p.Interp(ts)
			if err != nil {
				t.Fatalf("Interp(%v): %v", ts, err)
			}
			diff(t, wantPos, gotPos)
		}
	}
}
