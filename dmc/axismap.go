package dmc

import (
	"fmt"
	"strings"
)

// MaxChannels - максимальное число аппаратных каналов контроллера (оси A..H).
const MaxChannels = 8

// invalidAxis помечает аппаратный канал, не занятый ни одной логической осью.
const invalidAxis = -1

// AxisMapping - двунаправленное соответствие между логическими осями
// (плотный индекс 0..numAxes-1 из конфигурации) и аппаратными каналами
// контроллера. Строится один раз и дальше только читается.
type AxisMapping struct {
	logicalToHW  []int
	hwToLogical  [MaxChannels]int
	channelCount int // на единицу больше старшего занятого канала
	axes         string
	query        string
	validMask    [MaxChannels]bool
}

// BuildAxisMapping строит отображение по упорядоченному списку аппаратных
// каналов, занятых логическими осями. Отображение является биекцией на
// сконфигурированном подмножестве каналов.
func BuildAxisMapping(channels []int) (*AxisMapping, error) {
	m := &AxisMapping{
		logicalToHW: make([]int, len(channels)),
	}
	for i := range m.hwToLogical {
		m.hwToLogical[i] = invalidAxis
	}
	for axis, hw := range channels {
		if hw < 0 || hw >= MaxChannels {
			return nil, fmt.Errorf("%w: axis %d uses channel %d", ErrChannelOutOfRange, axis, hw)
		}
		if m.hwToLogical[hw] != invalidAxis {
			return nil, fmt.Errorf("%w: axes %d and %d both use channel %d", ErrDuplicateChannel, m.hwToLogical[hw], axis, hw)
		}
		m.logicalToHW[axis] = hw
		m.hwToLogical[hw] = axis
		m.validMask[hw] = true
		if hw+1 > m.channelCount {
			m.channelCount = hw + 1
		}
	}

	// Буква канала для командных списков ("BG ABC") и шаблон позиционного
	// запроса ("?,?" с пустыми слотами для пропущенных каналов).
	var axes, query strings.Builder
	for hw := 0; hw < m.channelCount; hw++ {
		if m.validMask[hw] {
			axes.WriteByte(ChannelLetter(hw))
			query.WriteByte('?')
		}
		query.WriteByte(',')
	}
	m.axes = axes.String()
	m.query = strings.TrimSuffix(query.String(), ",")
	return m, nil
}

// NumAxes возвращает число логических осей.
func (m *AxisMapping) NumAxes() int { return len(m.logicalToHW) }

// ChannelCount возвращает границу итерации по аппаратным каналам:
// на единицу больше старшего занятого канала.
func (m *AxisMapping) ChannelCount() int { return m.channelCount }

// ToHardware возвращает аппаратный канал логической оси.
func (m *AxisMapping) ToHardware(axis int) int { return m.logicalToHW[axis] }

// ToLogical возвращает логическую ось аппаратного канала, если канал занят.
func (m *AxisMapping) ToLogical(hw int) (int, bool) {
	if hw < 0 || hw >= MaxChannels || m.hwToLogical[hw] == invalidAxis {
		return 0, false
	}
	return m.hwToLogical[hw], true
}

// Axes возвращает буквы занятых каналов в порядке возрастания ("ABC").
func (m *AxisMapping) Axes() string { return m.axes }

// QueryTemplate возвращает позиционный шаблон запроса ("?,,?"), по одному
// слоту на канал; пропущенные каналы сохраняют свою позицию пустым слотом.
func (m *AxisMapping) QueryTemplate() string { return m.query }

// ValidMask возвращает копию маски занятости аппаратных каналов
// до ChannelCount.
func (m *AxisMapping) ValidMask() []bool {
	out := make([]bool, m.channelCount)
	copy(out, m.validMask[:m.channelCount])
	return out
}

// AxisLetter возвращает букву канала логической оси.
func (m *AxisMapping) AxisLetter(axis int) byte {
	return ChannelLetter(m.logicalToHW[axis])
}

// ChannelLetter возвращает букву аппаратного канала: 0 -> 'A', 7 -> 'H'.
func ChannelLetter(hw int) byte { return byte('A' + hw) }
