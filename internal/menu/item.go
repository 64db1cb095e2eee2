package menu

// SimpleItem is a fixed-price leaf such as a side or a drink. It is never
// mutated after creation.
type SimpleItem struct {
	leafNode
	name  string
	price float64
}

// NewSimpleItem creates a leaf item with a fixed price.
func NewSimpleItem(name string, price float64) *SimpleItem {
	return &SimpleItem{name: name, price: price}
}

func (s *SimpleItem) Name() string {
	return s.name
}

func (s *SimpleItem) Price() float64 {
	return s.price
}

func (s *SimpleItem) Render(depth int) string {
	return renderLine(depth, s.name, s.price)
}
