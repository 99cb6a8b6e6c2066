package hmacdrbg

import "encoding/hex"

// GenerateWithState is Generate plus the post-call working state as hex, for verification against published test
// vectors. Production callers never need the working state; it is exported for tests only.
func (g *Generator) GenerateWithState(dst []byte, n int, additional []byte) (out []byte, k, v string, err error) {
	out, err = g.Generate(dst, n, additional)
	if err != nil {
		return nil, "", "", err
	}
	k, v = g.State()
	return out, k, v, nil
}

// State returns the generator's working state as hex.
func (g *Generator) State() (k, v string) {
	return hex.EncodeToString(g.k), hex.EncodeToString(g.v)
}

// Update exposes the update function.
func (g *Generator) Update(providedData []byte) {
	g.update(providedData)
}

// ReseedCounter returns the number of remaining Generate calls.
func (g *Generator) ReseedCounter() uint64 {
	return g.reseedCounter
}

// SetReseedCounter overrides the number of remaining Generate calls.
func (g *Generator) SetReseedCounter(n uint64) {
	g.reseedCounter = n
}
