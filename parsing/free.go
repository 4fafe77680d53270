package parsing

// FreeIdentifiers returns every identifier prog's assignments reference
// that isn't itself an assignment target, in first-occurrence order. A
// caller that wants to run Build against a freshly formed Circuit (one
// with no inputs wired yet) uses this to know which identifiers it must
// declare as inputs first; Build itself never declares inputs, it only
// resolves against ones that already exist.
func FreeIdentifiers(prog *Program) []string {
	assigned := make(map[string]bool, len(prog.Assignments))
	for _, a := range prog.Assignments {
		assigned[a.Name] = true
	}

	seen := make(map[string]bool)
	var free []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Type == NodeIdent && !assigned[n.Value] && !seen[n.Value] {
			seen[n.Value] = true
			free = append(free, n.Value)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, a := range prog.Assignments {
		walk(a.Expr)
	}
	return free
}
