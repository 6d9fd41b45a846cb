package decorator

import (
	"fmt"
	"io"
)

// CoffeeShop takes coffee orders.
type CoffeeShop interface {
	OrderSmallCoffee()
	OrderLargeCoffee()
}

// SmallCoffeeShop is the plain shop every decorator wraps.
type SmallCoffeeShop struct {
	out io.Writer
}

// NewSmallCoffeeShop writes order receipts to out.
func NewSmallCoffeeShop(out io.Writer) *SmallCoffeeShop {
	return &SmallCoffeeShop{out: out}
}

// OrderSmallCoffee takes a small order.
func (s *SmallCoffeeShop) OrderSmallCoffee() {
	fmt.Fprintln(s.out, "Received an order of Small coffee!")
}

// OrderLargeCoffee takes a large order.
func (s *SmallCoffeeShop) OrderLargeCoffee() {
	fmt.Fprintln(s.out, "Received an order of Large coffee!")
}

// BigCoffeeShop forwards to the wrapped shop and adds milk orders.
type BigCoffeeShop struct {
	CoffeeShop
	out io.Writer
}

// NewBigCoffeeShop decorates shop.
func NewBigCoffeeShop(shop CoffeeShop, out io.Writer) *BigCoffeeShop {
	return &BigCoffeeShop{CoffeeShop: shop, out: out}
}

// OrderSmallCoffeeWithMilk orders a small coffee, then adds milk.
func (b *BigCoffeeShop) OrderSmallCoffeeWithMilk() {
	b.OrderSmallCoffee()
	fmt.Fprintln(b.out, "Adding milk to Small coffee!")
}

// Starbucks forwards to the wrapped shop and adds frappuccinos.
type Starbucks struct {
	CoffeeShop
	out io.Writer
}

// NewStarbucks decorates shop.
func NewStarbucks(shop CoffeeShop, out io.Writer) *Starbucks {
	return &Starbucks{CoffeeShop: shop, out: out}
}

// OrderBigFrappuccino orders a large coffee, then ices it.
func (s *Starbucks) OrderBigFrappuccino() {
	s.OrderLargeCoffee()
	fmt.Fprintln(s.out, "Added ice to Large coffee")
}

// Demo decorates one small shop two ways.
func Demo(w io.Writer) error {
	small := NewSmallCoffeeShop(w)
	big := NewBigCoffeeShop(small, w)
	starbucks := NewStarbucks(small, w)

	starbucks.OrderLargeCoffee()
	starbucks.OrderBigFrappuccino()
	if _, err := fmt.Fprint(w, "---------\n\n"); err != nil {
		return err
	}
	big.OrderSmallCoffeeWithMilk()
	return nil
}
