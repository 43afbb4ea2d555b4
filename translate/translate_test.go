package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 7 bad", From("line %d %v", 7, "bad"))
	assert.Equal("no phases", From("no phases"))
}
