package iterator_test

import (
	"testing"

	"github.com/on-the-ground/tail_ive_go/iterator"
	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	it := iterator.Of(1, 2)
	assert.True(t, it.HasNext())
	assert.Equal(t, 1, it.Next())
	assert.Equal(t, 2, it.Next())
	assert.False(t, it.HasNext())
	assert.PanicsWithError(t, iterator.ErrExhausted.Error(), func() {
		it.Next()
	})
}

func TestAll_StopsEarly(t *testing.T) {
	it := iterator.Of(1, 2, 3, 4)
	for v := range iterator.All(it) {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{3, 4}, iterator.Collect(it), "break leaves the rest unpulled")
}

func TestCollect_Empty(t *testing.T) {
	assert.Empty(t, iterator.Collect(iterator.Of[int]()))
}
