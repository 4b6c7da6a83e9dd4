package entities

// Container is a node of a configuration tree (spatial containers, event
// groups and everything nested below them).
type Container interface {
	Subject
	Children() []Container
}

// ContainerNode is a plain named container. The richer tree nodes embed it.
type ContainerNode struct {
	name     string
	children []Container
}

// NewContainer creates a plain container with the given children.
func NewContainer(name string, children ...Container) *ContainerNode {
	c := &ContainerNode{name: name}
	c.Add(children...)
	return c
}

func (c *ContainerNode) Name() string       { return c.name }
func (c *ContainerNode) ObjectType() string { return "Container" }

// Children returns the direct children.
func (c *ContainerNode) Children() []Container {
	out := make([]Container, len(c.children))
	copy(out, c.children)
	return out
}

// Add appends children, skipping nils.
func (c *ContainerNode) Add(children ...Container) {
	for _, child := range children {
		if child != nil {
			c.children = append(c.children, child)
		}
	}
}

// AllContainersAndSelf returns every node of type T in the tree rooted at root,
// root included, in depth-first pre-order.
func AllContainersAndSelf[T Container](root Container) []T {
	var out []T
	var walk func(Container)
	walk = func(c Container) {
		if c == nil {
			return
		}
		if match, ok := c.(T); ok {
			out = append(out, match)
		}
		for _, child := range c.Children() {
			walk(child)
		}
	}
	walk(root)
	return out
}

// EventGroupBuilder groups events and applications that share a trigger.
// Event groups nest.
type EventGroupBuilder struct {
	ContainerNode
	EventGroupType string
}

// NewEventGroupBuilder creates an event group.
func NewEventGroupBuilder(name string, children ...Container) *EventGroupBuilder {
	g := &EventGroupBuilder{ContainerNode: ContainerNode{name: name}}
	g.Add(children...)
	return g
}

func (g *EventGroupBuilder) ObjectType() string { return "EventGroupBuilder" }

// EventBuilder fires when its condition formula becomes true.
type EventBuilder struct {
	ContainerNode
	ConditionFormula string
	OneTime          bool
}

// NewEventBuilder creates an event with the given condition formula name.
func NewEventBuilder(name, conditionFormula string) *EventBuilder {
	return &EventBuilder{
		ContainerNode:    ContainerNode{name: name},
		ConditionFormula: conditionFormula,
	}
}

func (e *EventBuilder) ObjectType() string { return "EventBuilder" }

// ApplicationBuilder describes the application of a molecule (e.g. a dose)
// inside an event group.
type ApplicationBuilder struct {
	ContainerNode
	moleculeName string
}

// NewApplicationBuilder creates an application of the named molecule.
func NewApplicationBuilder(name, moleculeName string, children ...Container) *ApplicationBuilder {
	a := &ApplicationBuilder{
		ContainerNode: ContainerNode{name: name},
		moleculeName:  moleculeName,
	}
	a.Add(children...)
	return a
}

func (a *ApplicationBuilder) ObjectType() string { return "ApplicationBuilder" }

// MoleculeName returns the name of the applied molecule.
func (a *ApplicationBuilder) MoleculeName() string { return a.moleculeName }
