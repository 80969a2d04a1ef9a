package fraxlend

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestBlockAt(t *testing.T) {
	block, e := BlockAt(1603366002+150, 1603366002, 15)
	assert.Equal(t, nil, e)
	assert.Equal(t, int64(10), block)

	block, e = BlockAt(1603366002+14, 1603366002, 15)
	assert.Equal(t, nil, e)
	assert.Equal(t, int64(0), block)

	_, e = BlockAt(1603366002, 1603366002, 0)
	assert.T(t, e != nil)

	_, e = BlockAt(1603366001, 1603366002, 15)
	assert.T(t, e != nil)
}

func TestBlockClock(t *testing.T) {
	c := BlockClock{Genesis: 100, SecondsPerBlock: 2}
	assert.Equal(t, int64(5), c.Block(110))
	assert.Equal(t, int64(0), c.Block(50))
	assert.Equal(t, int64(0), BlockClock{}.Block(50))
}
