package geom

// Alignment positions a label's text relative to its anchor point.
type Alignment int

// Label alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Label is a piece of text anchored at a point.
type Label struct {
	At    Point
	Text  string
	Align Alignment
}

// NewLabel returns a left-aligned label with the given text at (x, y).
func NewLabel(x, y float64, text string) Label {
	return Label{At: Point{x, y}, Text: text, Align: AlignLeft}
}

// Equal implements Shape.
func (l Label) Equal(other Shape) bool {
	m, ok := other.(Label)
	return ok && l == m
}

func (Label) shape() {}
