package iterx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNaturals_StopsWhenConsumerStops(t *testing.T) {
	var out []int
	for n := range Naturals() {
		if n == 4 {
			break
		}
		out = append(out, n)
	}

	require.Equal(t, []int{0, 1, 2, 3}, out)
}

func TestCounting(t *testing.T) {
	pulled := 0
	seq := Counting(FromSlice([]string{"a", "b", "c"}), &pulled)

	for v := range seq {
		if v == "b" {
			break
		}
	}

	require.Equal(t, 2, pulled)
}
