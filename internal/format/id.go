package format

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const idLen = 7

// NewID returns a short random identifier such as "id-k3j9x0a".
func NewID() string {
	u := uuid.New()
	s := new(big.Int).SetBytes(u[:]).Text(36)
	if len(s) < idLen {
		s = strings.Repeat("0", idLen-len(s)) + s
	}
	return "id-" + s[:idLen]
}
