package obj

// groupTracker holds the currently open group and commits or discards it.
type groupTracker struct {
	scene   *Scene
	open    Group
	hasOpen bool
}

func (g *groupTracker) begin(name string) {
	g.scene.acquireName()
	start := g.scene.Faces.Len()
	g.open = Group{Name: name, StartFace: start, EndFace: start, Render: true}
	g.hasOpen = true
}

// flush closes the open group. pending counts faces that belong to the group
// but have not been appended yet. A group spanning no faces is discarded.
func (g *groupTracker) flush(pending int) {
	if !g.hasOpen {
		return
	}
	g.hasOpen = false

	end := g.scene.Faces.Len() + pending
	if end-g.open.StartFace > 0 {
		g.open.EndFace = end
		g.scene.Groups.Append(g.open)
		return
	}
	g.scene.releaseName()
}

// discard drops the open group without committing it.
func (g *groupTracker) discard() {
	if !g.hasOpen {
		return
	}
	g.hasOpen = false
	g.scene.releaseName()
}
