// Command drbg_stream expands hex-encoded seed material into a deterministic pseudo-random byte stream on stdout.
package main

import (
	"encoding/hex"
	"flag"
	"log/slog"
	"os"

	"github.com/codahale/hmacdrbg"
)

func main() {
	log := slog.New(slog.Default().Handler())

	hashName := flag.String("hash", "sha256", "the hash variant (sha256, sha384, sha512, sha3-256, blake2b-256)")
	entropyHex := flag.String("entropy", "", "the hex-encoded entropy input")
	nonceHex := flag.String("nonce", "", "the hex-encoded nonce")
	personalizationHex := flag.String("personalization", "", "the hex-encoded personalization string")
	n := flag.Int("n", 32, "the number of bytes to generate")
	raw := flag.Bool("raw", false, "write raw bytes instead of hex")
	flag.Parse()

	h, err := hmacdrbg.ParseHash(*hashName)
	if err != nil {
		log.Error("unknown hash variant", "hash", *hashName, "err", err)
		os.Exit(1)
	}

	entropy := mustHex(log, "entropy", *entropyHex)
	nonce := mustHex(log, "nonce", *nonceHex)
	personalization := mustHex(log, "personalization", *personalizationHex)

	g, err := hmacdrbg.New(h, entropy, nonce, personalization)
	if err != nil {
		log.Error("failed to instantiate generator", "err", err)
		os.Exit(1)
	}
	defer g.Wipe()

	out, err := g.Generate(nil, *n, nil)
	if err != nil {
		log.Error("failed to generate output", "err", err)
		os.Exit(1)
	}

	if *raw {
		if _, err := os.Stdout.Write(out); err != nil {
			log.Error("error writing output", "err", err)
			os.Exit(1)
		}
		return
	}

	if _, err := os.Stdout.WriteString(hex.EncodeToString(out) + "\n"); err != nil {
		log.Error("error writing output", "err", err)
		os.Exit(1)
	}
}

func mustHex(log *slog.Logger, name, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		log.Error("invalid hex value", "flag", name, "err", err)
		os.Exit(1)
	}
	return b
}
