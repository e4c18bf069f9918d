// Package obj parses a subset of the Wavefront OBJ format into an indexed
// scene. Supported records are vertices (v), texture coordinates (vt),
// vertex normals (vn), faces (f) and named groups (g). Materials, smoothing
// groups, free-form geometry and negative (relative) indices are not
// supported.
package obj

import "github.com/Faultbox/objmesh/pkg/dataarray"

// Absent marks an optional face index or vertex color that was not given.
const Absent = -1

// Record tags.
const (
	tagComment  = "#"
	tagVertex   = "v"
	tagNormal   = "vn"
	tagTexCoord = "vt"
	tagFace     = "f"
	tagGroup    = "g"
)

// Allocation tracking kinds reported to a dataarray.Tracker.
const (
	KindVertices  = "vertices"
	KindTexCoords = "texcoords"
	KindNormals   = "normals"
	KindFaces     = "faces"
	KindGroups    = "groups"
	KindFace      = "face"
	KindGroupName = "group.name"
)

// Vertex is a geometric vertex. W defaults to 1. R, G and B are either all
// Absent or all non-negative.
type Vertex struct {
	X, Y, Z, W float64
	R, G, B    float64
}

// HasColor reports whether the vertex carries a color triple.
func (v Vertex) HasColor() bool {
	return v.R != Absent
}

// TexCoord is a texture coordinate. W defaults to 0.
type TexCoord struct {
	U, V, W float64
}

// Normal is a vertex normal.
type Normal struct {
	X, Y, Z float64
}

// FaceComponent references one corner of a face. Indices are 1-based as
// written in the file; TexCoordIndex and NormalIndex may be Absent.
type FaceComponent struct {
	VertexIndex   int
	TexCoordIndex int
	NormalIndex   int
}

// HasTexCoord reports whether a texture coordinate index was given.
func (c FaceComponent) HasTexCoord() bool {
	return c.TexCoordIndex != Absent
}

// HasNormal reports whether a normal index was given.
func (c FaceComponent) HasNormal() bool {
	return c.NormalIndex != Absent
}

// Face is an ordered list of face components. It owns its own storage.
type Face struct {
	components *dataarray.Array[FaceComponent]
}

// newFace allocates a face. Most faces have at most four corners.
func newFace(t dataarray.Tracker) *Face {
	return &Face{components: dataarray.NewTracked[FaceComponent](4, t, KindFace)}
}

// Len returns the number of components.
func (f *Face) Len() int {
	return f.components.Len()
}

// Component returns the i-th component (0-based).
func (f *Face) Component(i int) (FaceComponent, error) {
	return f.components.At(i)
}

// Components returns the face's components. The slice aliases the face's
// storage.
func (f *Face) Components() []FaceComponent {
	return f.components.Values()
}

func (f *Face) dispose() {
	f.components.Dispose()
}

// Group is a named half-open range [StartFace, EndFace) of faces.
type Group struct {
	Name      string
	StartFace int
	EndFace   int
	Render    bool
}

// Len returns the number of faces in the group.
func (g Group) Len() int {
	return g.EndFace - g.StartFace
}
