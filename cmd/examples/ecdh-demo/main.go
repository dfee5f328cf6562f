// Package main demonstrates Diffie-Hellman key agreement on a named curve
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Caqil/ecgroup/pkg/crypto/curve"
	"github.com/Caqil/ecgroup/pkg/ecdh"
	"github.com/Caqil/ecgroup/pkg/keygen"
	"github.com/Caqil/ecgroup/pkg/logger"
)

func main() {
	curveName := flag.String("curve", "secp256k1", "registry curve name")
	logLevel := flag.String("log-level", "warn", "diagnostic log level")
	flag.Parse()

	logger.SetGlobalLogger(logger.New(&logger.Config{Level: *logLevel, Pretty: true}))

	fmt.Printf("=== ECDH Key Agreement on %s ===\n\n", *curveName)

	// Phase 1: Load curve
	fmt.Println("Phase 1: Loading curve from registry...")
	c, err := curve.GetCurve(*curveName)
	if err != nil {
		log.Fatalf("❌ %v (known curves: %v)", err, curve.Names())
	}
	fmt.Printf("  ✓ %s\n", c)
	fmt.Printf("  ✓ Order: %x\n", c.Order())

	// Phase 2: Generate keypairs
	fmt.Println("\nPhase 2: Generating keypairs...")
	alice, err := keygen.Generate(c, nil)
	if err != nil {
		log.Fatalf("❌ Alice keygen failed: %v", err)
	}
	bob, err := keygen.Generate(c, nil)
	if err != nil {
		log.Fatalf("❌ Bob keygen failed: %v", err)
	}
	fmt.Printf("  Alice: %s\n", alice)
	fmt.Printf("  Bob:   %s\n", bob)

	// Phase 3: Exchange public keys only
	fmt.Println("\nPhase 3: Exchanging public keys...")
	bobPublic, err := keygen.NewKeypair(c, nil, bob.Public())
	if err != nil {
		log.Fatal(err)
	}
	alicePublic, err := keygen.NewKeypair(c, nil, alice.Public())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("  ✓ Each side holds the other's public key")

	// Phase 4: Compute shared secret on both sides
	fmt.Println("\nPhase 4: Computing shared secrets...")
	aliceSession, err := ecdh.New(alice)
	if err != nil {
		log.Fatal(err)
	}
	bobSession, err := ecdh.New(bob)
	if err != nil {
		log.Fatal(err)
	}

	aliceSecret, err := aliceSession.Secret(bobPublic)
	if err != nil {
		log.Fatalf("❌ Alice secret failed: %v", err)
	}
	bobSecret, err := bobSession.Secret(alicePublic)
	if err != nil {
		log.Fatalf("❌ Bob secret failed: %v", err)
	}

	if !aliceSecret.Equal(bobSecret) {
		log.Fatal("❌ Shared secrets differ!")
	}
	fmt.Printf("  ✓ Shared point x: %x\n", aliceSecret.X())

	// Phase 5: Derive symmetric keys
	fmt.Println("\nPhase 5: Deriving session keys (HKDF-SHA256)...")
	info := []byte("ecdh-demo session")
	aliceKey, err := aliceSession.SharedKey(bobPublic, nil, info, 32)
	if err != nil {
		log.Fatal(err)
	}
	bobKey, err := bobSession.SharedKey(alicePublic, nil, info, 32)
	if err != nil {
		log.Fatal(err)
	}
	if string(aliceKey) != string(bobKey) {
		log.Fatal("❌ Derived keys differ!")
	}
	fmt.Printf("  ✓ Session key: %x\n", aliceKey)

	fmt.Println("\n=== Key Agreement Complete! ===")
}
