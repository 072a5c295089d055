//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/markkurossi/mpi/keygen"
	"github.com/markkurossi/mpi/mpi"
	"github.com/markkurossi/mpi/mpilog"
)

func main() {
	bits := flag.Int("bits", 2048, "RSA modulus size in bits")
	fVerbose := flag.Bool("v", false, "verbose output")
	message := flag.String("msg", "", "message to sign as a smoke test, its bytes read as a big-endian integer")
	flag.Parse()

	log.SetFlags(0)

	if *fVerbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		mpilog.SetLogger(logger.Sugar())
	}

	fmt.Printf("mpikeygen: generating a %d-bit RSA key\n", *bits)

	key, err := keygen.GenerateKey(*bits, cryptoRandBytes)
	if err != nil {
		log.Fatal(err)
	}
	defer key.Destroy()

	fmt.Printf("N = %s\n", key.N.Hex())
	fmt.Printf("E = %s\n", key.E.Hex())
	fmt.Printf("D = %s\n", key.D.Hex())
	fmt.Printf("P = %s\n", key.P.Hex())
	fmt.Printf("Q = %s\n", key.Q.Hex())

	if *message == "" {
		return
	}

	var m mpi.Int
	m.SetBytes([]byte(*message))
	sig, err := key.Sign(&m)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Sign(%q) = %s\n", *message, sig.Hex())
}

// cryptoRandBytes adapts crypto/rand to the prime.RandBytes /
// keygen callback contract (the rand_bytes).
func cryptoRandBytes(out []byte) error {
	_, err := rand.Read(out)
	return err
}
