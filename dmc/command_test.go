package dmc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAxisListCommand(t *testing.T) {
	m, err := BuildAxisMapping([]int{0, 2, 3})
	require.NoError(t, err)
	require.Equal(t, "BG ACD", AxisListCommand(CmdBegin, m.Axes()))
	require.Equal(t, "SH ACD", AxisListCommand(CmdEnablePower, m.Axes()))
}

func TestSparseValueListCommand(t *testing.T) {
	// Каналы A и C заняты, B пропущен: его слот остается пустым.
	cmd := SparseValueListCommand(CmdSpeed, []int32{1000, 0, 500}, []bool{true, false, true}, 3)
	require.Equal(t, "SP 1000,,500", cmd)

	// Все каналы заняты.
	cmd = SparseValueListCommand(CmdMoveAbsolute, []int32{-20, 0, 7}, []bool{true, true, true}, 3)
	require.Equal(t, "PA -20,0,7", cmd)

	// Единственная ось на канале D: три пустых слота впереди.
	cmd = SparseValueListCommand(CmdJog, []int32{0, 0, 0, -500}, []bool{false, false, false, true}, 4)
	require.Equal(t, "JG ,,,-500", cmd)
}

func TestSparseValueListCommandSlotCount(t *testing.T) {
	// Инвариант: ровно channelCount слотов, разделенных channelCount-1 запятыми.
	for n := 1; n <= MaxChannels; n++ {
		valid := make([]bool, n)
		values := make([]int32, n)
		for i := range valid {
			valid[i] = true
			values[i] = int32(i)
		}
		cmd := SparseValueListCommand(CmdAccel, values, valid, n)
		require.Equal(t, n-1, strings.Count(cmd, ","), "channelCount=%d", n)
		require.Len(t, strings.Split(strings.TrimPrefix(cmd, CmdAccel), ","), n)
	}
}
