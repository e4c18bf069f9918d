package obj

import "strings"

// DecodeFaceComponent decodes one face token: "v", "v/t", "v//n" or "v/t/n".
// Indices must be positive; relative (negative) indices are not supported.
func DecodeFaceComponent(token string) (FaceComponent, error) {
	// "v/t" and "v//n" both scan to two integers, so the "//" form has to
	// be detected before slashes are normalized away.
	normalOnly := strings.Contains(token, "//")

	var buf [3]int
	vals := scanInts(token, buf[:]).Values()
	n := len(vals)
	if n < 1 || n > 3 {
		return FaceComponent{}, malformed("face token %q has %d indices, want 1 to 3", token, n)
	}
	if normalOnly && n != 2 {
		return FaceComponent{}, malformed("face token %q: expected v//n", token)
	}

	for _, idx := range vals {
		if idx <= 0 {
			return FaceComponent{}, malformed("face token %q: index %d is not a positive 1-based index", token, idx)
		}
	}

	c := FaceComponent{
		VertexIndex:   vals[0],
		TexCoordIndex: Absent,
		NormalIndex:   Absent,
	}
	switch {
	case normalOnly:
		c.NormalIndex = vals[1]
	case n == 2:
		c.TexCoordIndex = vals[1]
	case n == 3:
		c.TexCoordIndex = vals[1]
		c.NormalIndex = vals[2]
	}
	return c, nil
}
