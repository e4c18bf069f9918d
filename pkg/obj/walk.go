package obj

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ResolvedVertex is a face corner with its indices looked up.
type ResolvedVertex struct {
	Position    mgl64.Vec4
	TexCoord    mgl64.Vec3
	Normal      mgl64.Vec3
	Color       mgl64.Vec3
	HasTexCoord bool
	HasNormal   bool
	HasColor    bool
}

// Visitor receives faces in draw order from Walk.
type Visitor interface {
	BeginFace(group Group, face int)
	Vertex(v ResolvedVertex)
	EndFace()
}

// Walk visits every face of every group whose Render flag is set, in group
// order, resolving each component against the scene's arrays.
func (s *Scene) Walk(v Visitor) error {
	for _, g := range s.Groups.Values() {
		if !g.Render {
			continue
		}
		for fi := g.StartFace; fi < g.EndFace; fi++ {
			face, err := s.Faces.At(fi)
			if err != nil {
				return fmt.Errorf("group %q: %w", g.Name, err)
			}
			v.BeginFace(g, fi)
			for _, c := range face.Components() {
				rv, err := s.ResolveComponent(c)
				if err != nil {
					return fmt.Errorf("group %q face %d: %w", g.Name, fi, err)
				}
				v.Vertex(rv)
			}
			v.EndFace()
		}
	}
	return nil
}

// ResolveComponent looks up the vertex, texture coordinate and normal a
// component references. Absent indices leave the matching field unset.
func (s *Scene) ResolveComponent(c FaceComponent) (ResolvedVertex, error) {
	var rv ResolvedVertex

	vert, err := s.Vertex(c.VertexIndex)
	if err != nil {
		return rv, err
	}
	rv.Position = mgl64.Vec4{vert.X, vert.Y, vert.Z, vert.W}
	if vert.HasColor() {
		rv.Color = mgl64.Vec3{vert.R, vert.G, vert.B}
		rv.HasColor = true
	}

	if c.HasNormal() {
		n, err := s.Normal(c.NormalIndex)
		if err != nil {
			return rv, err
		}
		rv.Normal = mgl64.Vec3{n.X, n.Y, n.Z}
		rv.HasNormal = true
	}

	if c.HasTexCoord() {
		tc, err := s.TexCoord(c.TexCoordIndex)
		if err != nil {
			return rv, err
		}
		rv.TexCoord = mgl64.Vec3{tc.U, tc.V, tc.W}
		rv.HasTexCoord = true
	}

	return rv, nil
}
