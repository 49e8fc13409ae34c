package crypto

import (
	"crypto/rand"
	"math"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	idSize   = 22 // 22 * 6 = 132 bits of entropy, slightly more than a uuid
	bitmask  = 63 // alphabet is exactly 64 characters
)

// NanoIDGenerator produces URL-safe random identifiers for identities and
// jobs. The alphabet is fixed, so generation cannot fail for configuration
// reasons; only an exhausted entropy source surfaces as an error.
type NanoIDGenerator struct{}

func NewNanoID() *NanoIDGenerator {
	return &NanoIDGenerator{}
}

func (n *NanoIDGenerator) Generate() (string, error) {
	// Oversample so one rand.Read usually covers the whole id even when
	// some bytes are rejected by the mask.
	step := int(math.Ceil(1.6 * float64(bitmask*idSize) / float64(len(alphabet))))

	id := make([]byte, idSize)
	buffer := make([]byte, step)

	for position := 0; position < idSize; {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}

		for i := 0; i < step && position < idSize; i++ {
			index := buffer[i] & bitmask
			if int(index) < len(alphabet) {
				id[position] = alphabet[index]
				position++
			}
		}
	}

	return string(id), nil
}
