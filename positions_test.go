package zedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmpPos(t *testing.T) {
	a := CharPos{Line: 1, Column: 4}
	assert.Equal(t, 0, CmpPos(a, a))
	assert.Equal(t, -1, CmpPos(CharPos{Line: 0, Column: 9}, a))
	assert.Equal(t, 1, CmpPos(CharPos{Line: 2}, a))
	assert.Equal(t, -1, CmpPos(CharPos{Line: 1, Column: 3}, a))
	assert.Equal(t, 1, CmpPos(CharPos{Line: 1, Column: 5}, a))
	assert.Equal(t, a, MaxPos(a, CharPos{}))
	assert.Equal(t, CharPos{}, MinPos(a, CharPos{}))
}
