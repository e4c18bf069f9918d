package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/objmesh/pkg/obj"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display element counts, bounds and groups of an OBJ file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	return withScene(args[0], func(scene *obj.Scene) error {
		st := scene.Stats()

		fmt.Fprintf(out, "File:       %s\n", args[0])
		fmt.Fprintf(out, "Vertices:   %d\n", st.Vertices)
		fmt.Fprintf(out, "TexCoords:  %d\n", st.TexCoords)
		fmt.Fprintf(out, "Normals:    %d\n", st.Normals)
		fmt.Fprintf(out, "Faces:      %d (%d corners)\n", st.Faces, st.Components)
		fmt.Fprintf(out, "Groups:     %d\n", st.Groups)

		if lo, hi, ok := scene.Bounds(); ok {
			size := hi.Sub(lo)
			fmt.Fprintf(out, "Bounds:     (%.4f, %.4f, %.4f) - (%.4f, %.4f, %.4f)\n",
				lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())
			fmt.Fprintf(out, "Diagonal:   %.4f\n", size.Len())
		}

		if len(scene.Diagnostics) > 0 {
			fmt.Fprintf(out, "Skipped:    %d unrecognized records\n", len(scene.Diagnostics))
		}
		return nil
	})
}
