// Package main walks through the group law on a small curve over F_97
package main

import (
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/Caqil/ecgroup/pkg/crypto/curve"
	"github.com/Caqil/ecgroup/pkg/logger"
)

func main() {
	fmt.Printf("=== Curve Explorer: y^2 = x^3 + 2x + 3 (mod 97) ===\n\n")

	// warnings go to stdout so the off-curve example is visible
	diag := logger.New(&logger.Config{Level: "warn", Output: os.Stdout, Pretty: true})

	field, err := curve.NewSubGroup(big.NewInt(97), big.NewInt(3), big.NewInt(6), big.NewInt(5), big.NewInt(1))
	if err != nil {
		log.Fatal(err)
	}
	c, err := curve.NewCurve(big.NewInt(2), big.NewInt(3), field, &curve.Config{Name: "toy", Logger: diag})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(c)
	fmt.Println(c.Field())
	fmt.Printf("Singular: %t\n", c.IsSingular())

	// Addition
	fmt.Println("\nAddition:")
	p := mustPoint(c, 22, 5)
	q := mustPoint(c, 95, 31)
	show("P + Q", must(p.Add(q)))
	show("P + P", must(p.Add(p)))
	show("P - P", must(p.Sub(p)))
	show("P + inf", must(p.Add(c.Infinity())))

	// Multiples of the generator
	fmt.Println("\nMultiples of G:")
	g := c.Generator()
	for k := int64(-2); k <= 6; k++ {
		show(fmt.Sprintf("%2d * G", k), must(g.Mul(k)))
	}

	// Vertical tangent
	fmt.Println("\nDoubling a point with y = 0:")
	if _, err := mustPoint(c, 96, 0).Add(mustPoint(c, 96, 0)); err != nil {
		fmt.Printf("  error: %v\n", err)
	}

	// Off-curve points are usable but flagged
	fmt.Println("\nOff-curve point:")
	off := mustPoint(c, 94, 31)
	fmt.Printf("  %s (validate: %v)\n", off, off.Validate())

	// Type errors
	fmt.Println("\nType errors:")
	if _, err := p.Mul(5.6); err != nil {
		fmt.Printf("  error: %v\n", err)
	}
	if _, err := p.Mul(q); err != nil {
		fmt.Printf("  error: %v\n", err)
	}
}

func mustPoint(c *curve.Curve, x, y int64) *curve.Point {
	p, err := curve.NewPoint(c, big.NewInt(x), big.NewInt(y))
	if err != nil {
		log.Fatal(err)
	}
	return p
}

func must(e curve.Element, err error) curve.Element {
	if err != nil {
		log.Fatal(err)
	}
	return e
}

func show(label string, e curve.Element) {
	fmt.Printf("  %s = %s\n", label, e)
}
