package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/objmesh/pkg/obj"
)

var (
	facesGroup string
	facesLimit int
)

var facesCmd = &cobra.Command{
	Use:   "faces [file]",
	Short: "Print faces with their resolved vertex positions",
	Long: `Walks the groups in file order and prints every face with the
positions its corners resolve to. Use --group to restrict output to
one group.`,
	Args: cobra.ExactArgs(1),
	RunE: runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)

	facesCmd.Flags().StringVarP(&facesGroup, "group", "g", "", "Only print faces of this group")
	facesCmd.Flags().IntVarP(&facesLimit, "limit", "n", 0, "Limit output to N faces (0 = all)")
}

// facePrinter writes each visited face on one line.
type facePrinter struct {
	out     io.Writer
	limit   int
	printed int
	line    strings.Builder
	skip    bool
}

func (p *facePrinter) BeginFace(g obj.Group, face int) {
	p.skip = p.limit > 0 && p.printed >= p.limit
	if p.skip {
		return
	}
	p.line.Reset()
	fmt.Fprintf(&p.line, "%s #%d:", g.Name, face)
}

func (p *facePrinter) Vertex(v obj.ResolvedVertex) {
	if p.skip {
		return
	}
	fmt.Fprintf(&p.line, " (%g %g %g)", v.Position.X(), v.Position.Y(), v.Position.Z())
}

func (p *facePrinter) EndFace() {
	if p.skip {
		return
	}
	fmt.Fprintln(p.out, p.line.String())
	p.printed++
}

func runFaces(cmd *cobra.Command, args []string) error {
	p := &facePrinter{out: cmd.OutOrStdout(), limit: facesLimit}

	return withScene(args[0], func(scene *obj.Scene) error {
		if facesGroup != "" {
			if _, ok := scene.Group(facesGroup); !ok {
				return fmt.Errorf("group %q not found", facesGroup)
			}
			for _, g := range scene.Groups.Values() {
				scene.SetGroupRender(g.Name, g.Name == facesGroup)
			}
		}
		return scene.Walk(p)
	})
}
