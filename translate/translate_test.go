package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage("en-US")
	assert.Equal("register index 9 out of bounds", From("register index %v out of bounds", 9))
	assert.Equal("halted", From("halted"))

	// Unknown languages fall back to the untranslated format.
	SetLanguage("xx-XX")
	assert.Equal("step 3 halted", From("step %v %v", 3, "halted"))
}
