package formula

import (
	"sort"

	"github.com/cellgraph/engine/internal/position"
)

// References returns the sorted, de-duplicated set of positions e reads.
func References(e Expr) []position.Position {
	seen := make(map[position.Position]struct{})
	collectRefs(e, seen)
	out := make([]position.Position, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func collectRefs(e Expr, seen map[position.Position]struct{}) {
	switch e := e.(type) {
	case RefExpr:
		seen[e.Pos] = struct{}{}
	case UnaryExpr:
		collectRefs(e.X, seen)
	case BinaryExpr:
		collectRefs(e.X, seen)
		collectRefs(e.Y, seen)
	}
}
