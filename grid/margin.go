package grid

// Margin is the space printed around the whole grid.
type Margin struct {
	Top, Bottom, Left, Right Indent
}
