package obj

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/pkg/dataarray"
)

// DefaultGroupName names the implicit group open before the first line.
const DefaultGroupName = "Default"

// Options controls parsing.
type Options struct {
	// DefaultGroup names the implicit first group.
	DefaultGroup string
	// Diagnostics reports unrecognized records in Scene.Diagnostics and the log.
	Diagnostics bool
	// MaxLineBytes limits line length for reader-based sources.
	MaxLineBytes int
	// InitialCapacity sizes the scene's top-level arrays.
	InitialCapacity int
	// Logger receives diagnostics and a load summary. Nil disables logging.
	Logger *zap.Logger
	// Tracker observes ownership of scene storage. Nil disables tracking.
	Tracker dataarray.Tracker
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		DefaultGroup:    DefaultGroupName,
		MaxLineBytes:    DefaultMaxLineBytes,
		InitialCapacity: 100,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DefaultGroup == "" {
		o.DefaultGroup = d.DefaultGroup
	}
	if o.MaxLineBytes <= 0 {
		o.MaxLineBytes = d.MaxLineBytes
	}
	if o.InitialCapacity <= 0 {
		o.InitialCapacity = d.InitialCapacity
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// ParseFile opens and parses an OBJ file.
func ParseFile(path string, opts Options) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrResourceOpen, path, err)
	}
	defer f.Close()

	scene, err := ParseReader(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return scene, nil
}

// ParseReader parses OBJ text from r.
func ParseReader(r io.Reader, opts Options) (*Scene, error) {
	opts = opts.withDefaults()
	return Parse(NewScannerSource(r, opts.MaxLineBytes), opts)
}

// Parse reads every line from src and builds a scene. On error no scene is
// returned and everything allocated so far is released.
func Parse(src LineSource, opts Options) (*Scene, error) {
	opts = opts.withDefaults()

	p := &parser{
		scene: newScene(opts.InitialCapacity, opts.Tracker),
		opts:  opts,
		log:   opts.Logger,
	}
	p.groups.scene = p.scene
	p.groups.begin(opts.DefaultGroup)

	if err := p.run(src); err != nil {
		p.groups.discard()
		p.scene.Dispose()
		return nil, err
	}

	st := p.scene.Stats()
	p.log.Debug("loaded obj",
		zap.Int("vertices", st.Vertices),
		zap.Int("texcoords", st.TexCoords),
		zap.Int("normals", st.Normals),
		zap.Int("faces", st.Faces),
		zap.Int("groups", st.Groups),
	)
	return p.scene, nil
}

type parser struct {
	scene  *Scene
	groups groupTracker
	opts   Options
	log    *zap.Logger
}

func (p *parser) run(src LineSource) error {
	lineNo := 0
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		lineNo++

		rec := splitRecord(line)
		p.flushGroupIfApplicable(rec, !src.HasNext())
		if err := p.dispatch(rec, lineNo); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("reading line %d: %w", lineNo+1, err)
	}

	// Only reached with an open group when the input was empty or ended on
	// a group line; either way the group holds no faces.
	p.groups.flush(0)
	return nil
}

type record struct {
	tag  string
	rest string
}

// splitRecord splits a line into its tag and the remainder.
func splitRecord(line string) record {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return record{tag: line}
	}
	return record{tag: line[:i], rest: strings.TrimSpace(line[i:])}
}

func (r record) junk() bool {
	return r.tag == "" || r.rest == ""
}

func (r record) is(tag string) bool {
	return !r.junk() && r.tag == tag
}

// flushGroupIfApplicable closes the open group on a group line or on the
// last line of input, then opens the new group named by a group line. A
// face on the last line is counted into the closed group.
func (p *parser) flushGroupIfApplicable(rec record, last bool) {
	isGroup := rec.is(tagGroup)
	if !isGroup && !last {
		return
	}

	pending := 0
	if last && rec.is(tagFace) {
		pending = 1
	}
	p.groups.flush(pending)

	if isGroup {
		p.groups.begin(rec.rest)
	}
}

func (p *parser) dispatch(rec record, lineNo int) error {
	if rec.junk() {
		return nil
	}

	var err error
	switch rec.tag {
	case tagComment, tagGroup:
	case tagVertex:
		err = p.parseVertex(rec.rest)
	case tagNormal:
		err = p.parseNormal(rec.rest)
	case tagTexCoord:
		err = p.parseTexCoord(rec.rest)
	case tagFace:
		err = p.parseFace(rec.rest)
	default:
		p.unrecognized(rec, lineNo)
	}
	if err != nil {
		return &RecordError{Line: lineNo, Tag: rec.tag, Err: err}
	}
	return nil
}

func (p *parser) unrecognized(rec record, lineNo int) {
	if !p.opts.Diagnostics {
		return
	}
	err := &RecordError{Line: lineNo, Tag: rec.tag, Err: ErrUnrecognizedRecord}
	p.scene.Diagnostics = append(p.scene.Diagnostics, err)
	p.log.Warn("unknown line type", zap.Int("line", lineNo), zap.String("tag", rec.tag))
}

func (p *parser) parseVertex(rest string) error {
	var buf [6]float64
	vals := scanFloats(rest, buf[:]).Values()

	v := Vertex{W: 1, R: Absent, G: Absent, B: Absent}
	switch len(vals) {
	case 3:
	case 4:
		v.W = vals[3]
	case 6:
		if !(vals[3] >= 0 && vals[4] >= 0 && vals[5] >= 0) {
			return malformed("vertex color (%g, %g, %g) has a negative or NaN component", vals[3], vals[4], vals[5])
		}
		v.R, v.G, v.B = vals[3], vals[4], vals[5]
	default:
		return malformed("vertex has %d values, want 3, 4 or 6", len(vals))
	}
	v.X, v.Y, v.Z = vals[0], vals[1], vals[2]

	p.scene.Vertices.Append(v)
	return nil
}

func (p *parser) parseNormal(rest string) error {
	var buf [3]float64
	vals := scanFloats(rest, buf[:]).Values()
	if len(vals) != 3 {
		return malformed("normal has %d values, want 3", len(vals))
	}
	p.scene.Normals.Append(Normal{X: vals[0], Y: vals[1], Z: vals[2]})
	return nil
}

func (p *parser) parseTexCoord(rest string) error {
	var buf [3]float64
	vals := scanFloats(rest, buf[:]).Values()

	tc := TexCoord{}
	switch len(vals) {
	case 3:
		tc.W = vals[2]
	case 2:
	default:
		return malformed("texture coordinate has %d values, want 2 or 3", len(vals))
	}
	tc.U, tc.V = vals[0], vals[1]

	p.scene.TexCoords.Append(tc)
	return nil
}

func (p *parser) parseFace(rest string) error {
	face := newFace(p.opts.Tracker)
	for _, tok := range strings.Fields(rest) {
		c, err := DecodeFaceComponent(tok)
		if err != nil {
			face.dispose()
			return err
		}
		face.components.Append(c)
	}
	if face.Len() == 0 {
		face.dispose()
		return malformed("face has no components")
	}

	p.scene.Faces.Append(face)
	return nil
}
