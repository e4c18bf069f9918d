package obj

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/objmesh/pkg/dataarray"
)

// Scene is the result of a parse. It owns every face and group below it and
// must be released with Dispose.
type Scene struct {
	Vertices  *dataarray.Array[Vertex]
	TexCoords *dataarray.Array[TexCoord]
	Normals   *dataarray.Array[Normal]
	Faces     *dataarray.Array[*Face]
	Groups    *dataarray.Array[Group]

	// Diagnostics holds non-fatal problems, collected only when
	// Options.Diagnostics is set.
	Diagnostics []error

	tracker  dataarray.Tracker
	disposed bool
}

func newScene(capacity int, t dataarray.Tracker) *Scene {
	return &Scene{
		Vertices:  dataarray.NewTracked[Vertex](capacity, t, KindVertices),
		TexCoords: dataarray.NewTracked[TexCoord](capacity, t, KindTexCoords),
		Normals:   dataarray.NewTracked[Normal](capacity, t, KindNormals),
		Faces:     dataarray.NewTracked[*Face](capacity, t, KindFaces),
		Groups:    dataarray.NewTracked[Group](capacity, t, KindGroups),
		tracker:   t,
	}
}

// Dispose releases every face, every group name and the top-level arrays.
// Calling it more than once is a no-op.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	for _, f := range s.Faces.Values() {
		f.dispose()
	}
	for range s.Groups.Values() {
		s.releaseName()
	}

	s.Vertices.Dispose()
	s.TexCoords.Dispose()
	s.Normals.Dispose()
	s.Faces.Dispose()
	s.Groups.Dispose()
	s.Diagnostics = nil
}

func (s *Scene) acquireName() {
	if s.tracker != nil {
		s.tracker.Acquire(KindGroupName)
	}
}

func (s *Scene) releaseName() {
	if s.tracker != nil {
		s.tracker.Release(KindGroupName)
	}
}

// Vertex returns the vertex referenced by a 1-based index.
func (s *Scene) Vertex(index int) (Vertex, error) {
	return resolve(s.Vertices, index, "vertex")
}

// TexCoord returns the texture coordinate referenced by a 1-based index.
func (s *Scene) TexCoord(index int) (TexCoord, error) {
	return resolve(s.TexCoords, index, "texcoord")
}

// Normal returns the normal referenced by a 1-based index.
func (s *Scene) Normal(index int) (Normal, error) {
	return resolve(s.Normals, index, "normal")
}

// Face returns the face at a 0-based position.
func (s *Scene) Face(i int) (*Face, error) {
	return s.Faces.At(i)
}

func resolve[T any](a *dataarray.Array[T], index int, what string) (T, error) {
	if index == Absent {
		var zero T
		return zero, fmt.Errorf("%s: %w", what, ErrAbsentIndex)
	}
	v, err := a.At(index - 1)
	if err != nil {
		return v, fmt.Errorf("%s index %d: %w", what, index, err)
	}
	return v, nil
}

// Group returns the first group with the given name.
func (s *Scene) Group(name string) (Group, bool) {
	for _, g := range s.Groups.Values() {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// SetGroupRender sets the render flag on every group named name and reports
// whether any matched.
func (s *Scene) SetGroupRender(name string, render bool) bool {
	found := false
	for i := 0; i < s.Groups.Len(); i++ {
		g, _ := s.Groups.Ptr(i)
		if g.Name == name {
			g.Render = render
			found = true
		}
	}
	return found
}

// Stats summarizes a scene.
type Stats struct {
	Vertices   int
	TexCoords  int
	Normals    int
	Faces      int
	Groups     int
	Components int
}

// Stats returns element counts.
func (s *Scene) Stats() Stats {
	st := Stats{
		Vertices:  s.Vertices.Len(),
		TexCoords: s.TexCoords.Len(),
		Normals:   s.Normals.Len(),
		Faces:     s.Faces.Len(),
		Groups:    s.Groups.Len(),
	}
	for _, f := range s.Faces.Values() {
		st.Components += f.Len()
	}
	return st
}

// Bounds returns the axis-aligned bounding box of all vertices. ok is false
// for a scene without vertices.
func (s *Scene) Bounds() (lo, hi mgl64.Vec3, ok bool) {
	verts := s.Vertices.Values()
	if len(verts) == 0 {
		return lo, hi, false
	}

	lo = mgl64.Vec3{verts[0].X, verts[0].Y, verts[0].Z}
	hi = lo
	for _, v := range verts[1:] {
		p := mgl64.Vec3{v.X, v.Y, v.Z}
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	return lo, hi, true
}
