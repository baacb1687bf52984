package dmc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwtcode/galilAdapter/dmc/model"
)

// rawAxis - поля осевой записи для сборки тестового буфера DR.
type rawAxis struct {
	status   uint16
	switches uint8
	stop     uint8
	refPos   int32
	pos      int32
	posErr   int32
	auxPos   int32
	vel      int32
	torque   int32
	analog   uint16
	userVar  int32
}

// buildRecord собирает бинарную запись DR по профилю модели.
func buildRecord(p *model.Profile, channelCount int, axes map[int]rawAxis, sample uint16, errCode uint8, ampStatus uint32) []byte {
	buf := make([]byte, p.MinRecordSize(channelCount))
	if p.HasHeader {
		binary.LittleEndian.PutUint32(buf, 0x0087_0000)
	}
	binary.LittleEndian.PutUint16(buf[p.SampleOffset:], sample)
	buf[p.ErrorCodeOffset] = errCode
	if p.HasAmpStatus() {
		binary.LittleEndian.PutUint32(buf[p.AmpStatusOffset:], ampStatus)
	}
	for hw, ax := range axes {
		base := p.AxisDataOffset + hw*p.AxisRecordSize
		binary.LittleEndian.PutUint16(buf[base:], ax.status)
		buf[base+2] = ax.switches
		buf[base+3] = ax.stop
		binary.LittleEndian.PutUint32(buf[base+4:], uint32(ax.refPos))
		binary.LittleEndian.PutUint32(buf[base+8:], uint32(ax.pos))
		binary.LittleEndian.PutUint32(buf[base+12:], uint32(ax.posErr))
		binary.LittleEndian.PutUint32(buf[base+16:], uint32(ax.auxPos))
		binary.LittleEndian.PutUint32(buf[base+20:], uint32(ax.vel))
		if p.AxisRecordSize == model.AxisRecordOld {
			binary.LittleEndian.PutUint16(buf[base+24:], uint16(int16(ax.torque)))
			binary.LittleEndian.PutUint16(buf[base+26:], ax.analog)
		} else {
			binary.LittleEndian.PutUint32(buf[base+24:], uint32(ax.torque))
			binary.LittleEndian.PutUint16(buf[base+28:], ax.analog)
		}
		if p.AxisRecordSize == model.AxisRecordMax {
			binary.LittleEndian.PutUint32(buf[base+32:], uint32(ax.userVar))
		}
	}
	return buf
}

func TestDecodeRecordRejectsShortBuffer(t *testing.T) {
	mapping, err := BuildAxisMapping([]int{0, 1})
	require.NoError(t, err)

	for _, m := range model.Models() {
		p, err := model.Lookup(m)
		require.NoError(t, err)

		need := p.MinRecordSize(mapping.ChannelCount())
		_, err = DecodeRecord(make([]byte, need-1), p, mapping)
		require.ErrorIs(t, err, ErrMalformedPacket, "model %d", m)

		_, err = DecodeRecord(make([]byte, need), p, mapping)
		require.NoError(t, err, "model %d", m)
	}
}

func TestDecodeRecordFields(t *testing.T) {
	p, err := model.Lookup(model.DMC4000)
	require.NoError(t, err)
	// Логические оси 0 и 1 на каналах A и C; канал B пропущен.
	mapping, err := BuildAxisMapping([]int{0, 2})
	require.NoError(t, err)

	buf := buildRecord(p, mapping.ChannelCount(), map[int]rawAxis{
		0: {status: StatusMotorMoving, switches: SwitchHome, stop: SCRunning,
			refPos: 1200, pos: 1000, posErr: 200, auxPos: 7, vel: -640, torque: 5000, analog: 321, userVar: 1},
		2: {status: StatusMotorOff, stop: SCStopped, pos: -2500, torque: -5000, analog: 5},
	}, 42, 3, AmpEloLower)

	rec, err := DecodeRecord(buf, p, mapping)
	require.NoError(t, err)

	require.Equal(t, uint16(42), rec.SampleNumber)
	require.Equal(t, uint8(3), rec.ErrorCode)
	require.True(t, rec.HasAmpStatus)
	require.Equal(t, AmpEloLower, rec.AmpStatus)
	require.Len(t, rec.Axes, 2)

	a := rec.Axes[0]
	require.Equal(t, StatusMotorMoving, a.Status)
	require.Equal(t, SwitchHome, a.Switches)
	require.Equal(t, SCRunning, a.StopCode)
	require.Equal(t, int32(1200), a.RefPos)
	require.Equal(t, int32(1000), a.Pos)
	require.Equal(t, int32(200), a.PosError)
	require.Equal(t, int32(7), a.AuxPos)
	require.Equal(t, int32(-640), a.Vel)
	require.Equal(t, int32(5000), a.Torque)
	require.Equal(t, uint16(321), a.AnalogIn)
	require.Equal(t, int32(1), a.UserVar)

	b := rec.Axes[1]
	require.Equal(t, SCStopped, b.StopCode)
	require.Equal(t, int32(-2500), b.Pos)
	require.Equal(t, int32(-5000), b.Torque)
}

func TestDecodeRecordNarrowTorqueSignExtension(t *testing.T) {
	p, err := model.Lookup(model.DMC2103)
	require.NoError(t, err)
	mapping, err := BuildAxisMapping([]int{0})
	require.NoError(t, err)

	buf := buildRecord(p, mapping.ChannelCount(), map[int]rawAxis{
		0: {torque: -1234, analog: 99},
	}, 0, 0, 0)

	rec, err := DecodeRecord(buf, p, mapping)
	require.NoError(t, err)
	// 16-битный момент знаково расширяется; величина не нормализуется.
	require.Equal(t, int32(-1234), rec.Axes[0].Torque)
	require.Equal(t, uint16(99), rec.Axes[0].AnalogIn)
}

func TestDecodeRecordNoAnalogOn1802(t *testing.T) {
	p, err := model.Lookup(model.DMC1802)
	require.NoError(t, err)
	mapping, err := BuildAxisMapping([]int{0})
	require.NoError(t, err)

	buf := buildRecord(p, mapping.ChannelCount(), map[int]rawAxis{0: {}}, 0, 0, 0)
	// Зарезервированное поле заполнено мусором: декодер его не читает.
	buf[p.AxisDataOffset+26] = 0xFF
	buf[p.AxisDataOffset+27] = 0xFF

	rec, err := DecodeRecord(buf, p, mapping)
	require.NoError(t, err)
	require.Equal(t, uint16(0), rec.Axes[0].AnalogIn)
	require.False(t, rec.HasAmpStatus)
}
