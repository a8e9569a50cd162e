package core

import "fmt"

// Cell is a 1-indexed grid coordinate
type Cell struct {
	Col, Row int
}

// InBounds reports whether both coordinates lie in [1, n]
func (c Cell) InBounds(n int) bool {
	return c.Col >= 1 && c.Col <= n && c.Row >= 1 && c.Row <= n
}

func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}
