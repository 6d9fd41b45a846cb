package composite_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designpatterns/src/composite"
)

func TestComputerPrice(t *testing.T) {
	computer := composite.NewComputer("Computer")
	assert.Equal(t, "Computer", computer.Name())
	assert.InDelta(t, 3750.0, computer.Price(), 1e-9)
}

func TestCompositePriceIsSumOfChildren(t *testing.T) {
	group := composite.NewComposite("group")
	assert.Zero(t, group.Price())

	group.Add(composite.MustLeaf("a", 10)).Add(composite.MustLeaf("b", 2.5))
	var sum float64
	for _, child := range group.Children() {
		sum += child.Price()
	}
	assert.InDelta(t, sum, group.Price(), 1e-9)
	assert.InDelta(t, 12.5, group.Price(), 1e-9)
}

func TestAddPropagatesToAncestors(t *testing.T) {
	memory := composite.NewMemory()
	computer := composite.NewComposite("pc").Add(memory)
	before := computer.Price()

	memory.Add(composite.MustLeaf("Cache", 75))
	assert.InDelta(t, before+75, computer.Price(), 1e-9)

	memory.Add(composite.MustLeaf("Free sticker", 0))
	assert.InDelta(t, before+75, computer.Price(), 1e-9)
}

func TestAddIsFluentAndOrdered(t *testing.T) {
	group := composite.NewComposite("g")
	a := composite.MustLeaf("a", 1)
	b := composite.MustLeaf("b", 2)
	assert.Same(t, group, group.Add(a))
	group.Add(b).Add(nil)

	children := group.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].Name())
	assert.Equal(t, "b", children[1].Name())

	children[0] = b
	assert.Equal(t, "a", group.Children()[0].Name(), "Children must return a copy")
}

func TestAddIgnoresTypedNil(t *testing.T) {
	var leaf *composite.Leaf
	var group *composite.Composite
	c := composite.NewComposite("c").Add(leaf).Add(group).Add(composite.MustLeaf("x", 4))

	assert.Len(t, c.Children(), 1)
	assert.NotPanics(t, func() {
		assert.Equal(t, 4.0, c.Price())
	})
}

func TestLeafPriceIsFixed(t *testing.T) {
	leaf := composite.MustLeaf("GPU", 1250)
	group := composite.NewComposite("g").Add(leaf).Add(composite.MustLeaf("x", 1))
	_ = group.Price()
	assert.Equal(t, 1250.0, leaf.Price())
	assert.Equal(t, "GPU", leaf.Name())
}

func TestNewLeafRejectsInvalidPrices(t *testing.T) {
	for _, price := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := composite.NewLeaf("bad", price)
		require.ErrorIs(t, err, composite.ErrInvalidPrice, "price %v", price)
	}
	assert.Panics(t, func() { composite.MustLeaf("bad", -5) })

	leaf, err := composite.NewLeaf("free", 0)
	require.NoError(t, err)
	assert.Zero(t, leaf.Price())
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "3750.0", composite.FormatPrice(3750))
	assert.Equal(t, "4.2", composite.FormatPrice(4.2))
	assert.Equal(t, "0.0", composite.FormatPrice(0))
}

func TestRender(t *testing.T) {
	tree := composite.Render(composite.NewComputer("PC"))
	lines := strings.Split(tree, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "PC ($3750.0)", lines[0])
	assert.Equal(t, "├── Memory ($500.0)", lines[1])
	assert.Equal(t, "│   ├── Random Access Memory ($300.0)", lines[2])
	assert.Equal(t, "│   └── Read Only Memory ($200.0)", lines[3])
	assert.Equal(t, "└── GPU ($1250.0)", lines[6])

	assert.Empty(t, composite.Render(nil))
	assert.Equal(t, "solo ($1.0)", composite.Render(composite.MustLeaf("solo", 1)))
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, composite.Demo(&out))
	assert.True(t, strings.HasPrefix(out.String(), "Price of Bachi's Macbook Pro is $3750.0\n"))
}
