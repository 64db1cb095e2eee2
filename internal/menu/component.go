package menu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedOperation is returned when a child mutation is attempted on a
// node that cannot hold children.
var ErrUnsupportedOperation = errors.New("unsupported operation on leaf node")

// Component is the uniform capability shared by every node of the order tree:
// simple items, foods, decorated foods and composite containers.
type Component interface {
	Name() string
	Price() float64
	Render(depth int) string

	// Add and Remove are only honored by composite nodes. Leaf nodes and
	// decorators return ErrUnsupportedOperation.
	Add(child Component) error
	Remove(child Component) error
}

// Preparer is implemented by components that carry a kitchen preparation
// routine. The fulfillment flow runs it once payment has cleared.
type Preparer interface {
	Prepare() []string
}

// leafNode supplies the Add/Remove rejection shared by all non-composite nodes.
type leafNode struct{}

func (leafNode) Add(Component) error    { return ErrUnsupportedOperation }
func (leafNode) Remove(Component) error { return ErrUnsupportedOperation }

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func renderLine(depth int, name string, price float64) string {
	return fmt.Sprintf("%s└─ %s - $%.2f", indent(depth), name, price)
}
