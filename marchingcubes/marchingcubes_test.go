package marchingcubes

import "testing"

func uniformVolume(nx, ny, nz int, v uint16) *Volume {
	data := make([]uint16, nx*ny*nz)
	for i := range data {
		data[i] = v
	}
	return &Volume{NX: nx, NY: ny, NZ: nz, Data: data}
}

func TestTriangulateEmptyVolumeHasNoSurface(t *testing.T) {
	v := uniformVolume(4, 4, 4, 0)
	tris := Triangulate(v, 100)
	if len(tris) != 0 {
		t.Errorf("expected no triangles for an all-outside volume, got %d", len(tris))
	}
}

func TestTriangulateFullVolumeHasNoSurface(t *testing.T) {
	v := uniformVolume(4, 4, 4, 200)
	tris := Triangulate(v, 100)
	if len(tris) != 0 {
		t.Errorf("expected no triangles for an all-inside volume, got %d", len(tris))
	}
}

func TestTriangulateSingleInsideCornerProducesSurface(t *testing.T) {
	v := uniformVolume(2, 2, 2, 0)
	v.Data[(1*2+1)*2+1] = 200 // corner (1,1,1) inside
	tris := Triangulate(v, 100)
	if len(tris) == 0 {
		t.Fatalf("expected at least one triangle around the single inside corner")
	}
	for _, tri := range tris {
		for _, vert := range tri.Vertices {
			for _, c := range vert {
				if c < 0 || c > 1 {
					t.Errorf("vertex coordinate %v outside the unit cube", vert)
				}
			}
		}
	}
}

func TestTriangulateIsBoundedByLevel(t *testing.T) {
	v := uniformVolume(3, 3, 3, 0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				if i < 2 {
					v.Data[(i*3+j)*3+k] = 150
				}
			}
		}
	}
	tris := Triangulate(v, 100)
	if len(tris) == 0 {
		t.Fatalf("expected a surface separating the two half-volumes")
	}
}
