package dmc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildAxisMappingBijection(t *testing.T) {
	m, err := BuildAxisMapping([]int{1, 4, 0})
	require.NoError(t, err)

	require.Equal(t, 3, m.NumAxes())
	require.Equal(t, 5, m.ChannelCount())

	for axis := 0; axis < m.NumAxes(); axis++ {
		back, ok := m.ToLogical(m.ToHardware(axis))
		require.True(t, ok)
		require.Equal(t, axis, back)
	}

	_, ok := m.ToLogical(2)
	require.False(t, ok)
	_, ok = m.ToLogical(3)
	require.False(t, ok)
	_, ok = m.ToLogical(7)
	require.False(t, ok)
}

func TestBuildAxisMappingRejectsDuplicateChannel(t *testing.T) {
	_, err := BuildAxisMapping([]int{0, 2, 0})
	require.ErrorIs(t, err, ErrDuplicateChannel)
}

func TestBuildAxisMappingRejectsOutOfRange(t *testing.T) {
	_, err := BuildAxisMapping([]int{0, 8})
	require.ErrorIs(t, err, ErrChannelOutOfRange)

	_, err = BuildAxisMapping([]int{-1})
	require.ErrorIs(t, err, ErrChannelOutOfRange)
}

func TestAxisMappingLetters(t *testing.T) {
	m, err := BuildAxisMapping([]int{0, 2, 3})
	require.NoError(t, err)

	require.Equal(t, "ACD", m.Axes())
	require.Equal(t, byte('C'), m.AxisLetter(1))
	require.Equal(t, byte('H'), ChannelLetter(7))
}

func TestAxisMappingQueryTemplate(t *testing.T) {
	// Пропущенный канал B сохраняет позицию пустым слотом.
	m, err := BuildAxisMapping([]int{0, 2})
	require.NoError(t, err)
	require.Equal(t, "?,,?", m.QueryTemplate())

	m, err = BuildAxisMapping([]int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, "?,?,?", m.QueryTemplate())

	m, err = BuildAxisMapping([]int{3})
	require.NoError(t, err)
	require.Equal(t, ",,,?", m.QueryTemplate())
	require.Equal(t, []bool{false, false, false, true}, m.ValidMask())
}
