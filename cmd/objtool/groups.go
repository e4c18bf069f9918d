package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/objmesh/pkg/obj"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [file]",
	Short: "List the face groups of an OBJ file",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroups,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	return withScene(args[0], func(scene *obj.Scene) error {
		for _, g := range scene.Groups.Values() {
			fmt.Fprintf(out, "%-24s faces [%d, %d) count %d\n", g.Name, g.StartFace, g.EndFace, g.Len())
		}
		return nil
	})
}
