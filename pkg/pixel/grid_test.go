package pixel

import (
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredEntropy(t *testing.T) {
	// ceil(size/2)*size + 8, hand-computed.
	want := map[int]int{
		1:  9,
		2:  10,
		3:  14,
		4:  16,
		5:  23,
		6:  26,
		7:  36,
		8:  40,
		9:  53,
		10: 58,
	}
	for size, entropy := range want {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			g := New(Config{Size: size})
			assert.Equal(t, entropy, g.RequiredEntropy())
		})
	}
}

func TestBuildGridSymmetry(t *testing.T) {
	inputs := []string{"test@example.com", "127.0.0.1", "someone@else.org", "x"}
	for size := 1; size <= 10; size++ {
		for _, input := range inputs {
			t.Run(fmt.Sprintf("size=%d/%s", size, input), func(t *testing.T) {
				// SHA-1 carries 160 bits, enough for every size under test.
				digest := sha1.Sum([]byte(input))
				grid := buildGrid(digest[:], size)

				require.Len(t, grid, size)
				for r := 0; r < size; r++ {
					require.Len(t, grid[r], size)
					for c := 0; c < size; c++ {
						assert.Equal(t, grid[r][size-1-c], grid[r][c],
							"row %d column %d must mirror its reflection", r, c)
					}
				}
			})
		}
	}
}

func TestBuildGridKnownVectors(t *testing.T) {
	t.Run("all bits set", func(t *testing.T) {
		grid := buildGrid([]byte{0x00, 0xff, 0xff}, 3)
		for r := range grid {
			for c := range grid[r] {
				assert.True(t, grid[r][c])
			}
		}
	})

	t.Run("single leading bit", func(t *testing.T) {
		// Cell 0 maps to row 0, column 0 and mirrors to column 2.
		grid := buildGrid([]byte{0x00, 0x80}, 3)
		want := Grid{
			{true, false, true},
			{false, false, false},
			{false, false, false},
		}
		assert.Equal(t, want, grid)
	})

	t.Run("first byte reserved for color", func(t *testing.T) {
		// Identical bodies with different leading bytes build the same grid.
		a := buildGrid([]byte{0x00, 0xa5, 0x3c}, 4)
		b := buildGrid([]byte{0xff, 0xa5, 0x3c}, 4)
		assert.Equal(t, a, b)
	})
}

func TestBuildGridDeterministic(t *testing.T) {
	digest := md5.Sum([]byte("test@example.com"))
	first := buildGrid(digest[:], 5)
	second := buildGrid(digest[:], 5)
	assert.Equal(t, first, second)
}

func TestGetBit(t *testing.T) {
	// 0xA5 = 1010 0101, MSB first.
	data := []byte{0xa5, 0x01}
	want := []bool{true, false, true, false, false, true, false, true,
		false, false, false, false, false, false, false, true}
	for n, bit := range want {
		assert.Equal(t, bit, getBit(data, n), "bit %d", n)
	}
}
