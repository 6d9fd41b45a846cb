package di

import (
	"fmt"
	"io"
	"sync"
)

// Dependency is a collaborator that Client needs.
type Dependency struct {
	Name string
}

// NewDependency builds a dependency.
func NewDependency() *Dependency {
	return &Dependency{Name: "dependency"}
}

// Client receives its dependency through the constructor.
type Client struct {
	Dependency *Dependency
}

// NewClient wires dep into a client.
func NewClient(dep *Dependency) *Client {
	return &Client{Dependency: dep}
}

// Container holds providers for the application graph. Dependency is a
// single instance built on first request.
type Container struct {
	depOnce sync.Once
	dep     *Dependency
	newDep  func() *Dependency
}

// NewContainer registers the default providers.
func NewContainer() *Container {
	return &Container{newDep: NewDependency}
}

// Dependency returns the container's single Dependency.
func (c *Container) Dependency() *Dependency {
	c.depOnce.Do(func() {
		c.dep = c.newDep()
	})
	return c.dep
}

// Client builds a client wired to the shared Dependency.
func (c *Container) Client() *Client {
	return NewClient(c.Dependency())
}

// Demo contrasts manual wiring with container wiring.
func Demo(w io.Writer) error {
	manualA := NewClient(NewDependency())
	manualB := NewClient(NewDependency())
	if _, err := fmt.Fprintf(w, "manual injection shares dependency: %t\n", manualA.Dependency == manualB.Dependency); err != nil {
		return err
	}

	container := NewContainer()
	a, b := container.Client(), container.Client()
	_, err := fmt.Fprintf(w, "container injection shares dependency: %t\n", a.Dependency == b.Dependency)
	return err
}
