package dmc

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/galilAdapter/dmc/model"
)

// fakeConn - транспорт для тестов: фиксирует отправленные команды,
// отдает заранее заготовленные записи и ответы.
type fakeConn struct {
	sent      []string
	records   [][]byte
	responses map[string]string
	rate      int
}

func (f *fakeConn) ReadRecord(buf []byte) (int, error) {
	if len(f.records) == 0 {
		return 0, fmt.Errorf("no data record queued")
	}
	rec := f.records[0]
	f.records = f.records[1:]
	copy(buf, rec)
	return len(rec), nil
}

func (f *fakeConn) Send(cmd string) error {
	f.sent = append(f.sent, cmd)
	return nil
}

func (f *fakeConn) SendResponse(cmd string) (string, error) {
	f.sent = append(f.sent, cmd)
	if r, ok := f.responses[cmd]; ok {
		return r, nil
	}
	return "", nil
}

func (f *fakeConn) SetRecordRate(periodMs int) error {
	f.rate = periodMs
	return nil
}

func (f *fakeConn) Close() error { return nil }

// mark запоминает позицию в журнале команд; sentSince возвращает хвост.
func (f *fakeConn) mark() int                { return len(f.sent) }
func (f *fakeConn) sentSince(m int) []string { return f.sent[m:] }

func countPrefix(cmds []string, prefix string) int {
	n := 0
	for _, c := range cmds {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func testConfig(modelNumber uint32, channels []int) *Config {
	axes := make([]AxisConfig, len(channels))
	for i, ch := range channels {
		axes[i] = AxisConfig{
			Index:            ch,
			Type:             "prismatic",
			PositionBitsToSI: Conversion{Scale: 1000},
			PositionLimits:   PositionLimits{Lower: -1, Upper: 1},
		}
	}
	return &Config{
		Model:      modelNumber,
		DRPeriodMs: 2,
		Robot:      RobotConfig{Name: "test", Axes: axes, HomedTracking: HomedTrackingManual},
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestController(t *testing.T, cfg *Config, responses map[string]string) (*Controller, *fakeConn) {
	t.Helper()
	fc := &fakeConn{responses: responses}
	c, err := NewController(cfg, fc, testLogger())
	require.NoError(t, err)
	require.NoError(t, c.Startup())
	return c, fc
}

// queueRecord ставит в очередь запись с моторами под питанием и заданными
// кодами останова по логическим осям.
func queueRecord(t *testing.T, fc *fakeConn, c *Controller, stopCodes map[int]uint8, motorOff map[int]bool) {
	t.Helper()
	p := c.Profile()
	axes := make(map[int]rawAxis, c.Mapping().NumAxes())
	for i := 0; i < c.Mapping().NumAxes(); i++ {
		ax := rawAxis{stop: stopCodes[i]}
		if motorOff[i] {
			ax.status |= StatusMotorOff
		}
		axes[c.Mapping().ToHardware(i)] = ax
	}
	fc.records = append(fc.records, buildRecord(p, c.Mapping().ChannelCount(), axes, 0, 0, 0))
}

func TestStartupDetectsModelFromRevision(t *testing.T) {
	cfg := testConfig(0, []int{0, 1})
	c, fc := newTestController(t, cfg, map[string]string{
		"\x12\x16": "DMC4020 Rev 1.3a",
	})
	require.Equal(t, model.DMC4000, c.Profile().Model)
	require.Equal(t, cfg.DRPeriodMs, fc.rate)
}

func TestStartupFailsWithoutModel(t *testing.T) {
	c, err := NewController(testConfig(0, []int{0}), &fakeConn{}, testLogger())
	require.NoError(t, err)
	require.Error(t, c.Startup())
}

func TestStartupRejectsRecordTrackingWithoutUserVar(t *testing.T) {
	cfg := testConfig(model.DMC2103, []int{0})
	cfg.Robot.HomedTracking = HomedTrackingRecord
	c, err := NewController(cfg, &fakeConn{}, testLogger())
	require.NoError(t, err)
	require.Error(t, c.Startup())
}

func TestMotorPowerConsistencyDebounce(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)

	// Оба мотора под питанием: монитор молчит.
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())
	require.True(t, c.motorPowerOn)

	c.timeout = 2
	mark := fc.mark()

	// Первый цикл со смешанным состоянием: дебаунс еще не истек.
	queueRecord(t, fc, c, nil, map[int]bool{1: true})
	require.NoError(t, c.RunCycle())
	require.Equal(t, 0, countPrefix(fc.sentSince(mark), CmdDisablePower))

	// Второй цикл: счетчик дошел до нуля, питание снимается ровно один раз.
	queueRecord(t, fc, c, nil, map[int]bool{1: true})
	require.NoError(t, c.RunCycle())
	require.Equal(t, 1, countPrefix(fc.sentSince(mark), CmdDisablePower))
	require.Equal(t, StateDisabled.String(), c.Snapshot().State)

	// Дебаунс перезаряжен выключением: немедленного повтора нет.
	queueRecord(t, fc, c, nil, map[int]bool{1: true})
	require.NoError(t, c.RunCycle())
	require.Equal(t, 1, countPrefix(fc.sentSince(mark), CmdDisablePower))
}

func TestServoRejectedWithoutPower(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	mark := fc.mark()

	err := c.ServoJP([]float64{1, 2})
	require.ErrorIs(t, err, ErrOperationRejected)
	err = c.ServoJV([]float64{0.1, 0.1})
	require.ErrorIs(t, err, ErrOperationRejected)
	require.Empty(t, fc.sentSince(mark))
}

func TestServoJPEncodesSparsePositions(t *testing.T) {
	cfg := testConfig(model.DMC4000, []int{0, 2})
	cfg.Robot.Axes[1].PositionBitsToSI.Offset = 100
	c, fc := newTestController(t, cfg, nil)

	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	mark := fc.mark()
	require.NoError(t, c.ServoJP([]float64{1.0, -0.5}))
	// Абсолютная позиция учитывает смещение нуля; канал B остается пустым.
	require.Equal(t, []string{"PA 1000,,-400", "BG AC"}, fc.sentSince(mark))
}

func TestServoJPWrongSizeRejected(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	err := c.ServoJP([]float64{1})
	require.ErrorIs(t, err, ErrOperationRejected)
}

func TestServoJRIgnoresOffset(t *testing.T) {
	cfg := testConfig(model.DMC4000, []int{0})
	cfg.Robot.Axes[0].PositionBitsToSI.Offset = 100
	c, fc := newTestController(t, cfg, nil)

	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	mark := fc.mark()
	require.NoError(t, c.ServoJR([]float64{0.5}))
	// Относительное перемещение смещение нуля не учитывает.
	require.Equal(t, []string{"PR 500", "BG A"}, fc.sentSince(mark))
}

func TestEnableMotorPowerArmsDebounce(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	mark := fc.mark()

	require.NoError(t, c.EnableMotorPower())
	require.Equal(t, []string{"SH AB"}, fc.sentSince(mark))
	require.Equal(t, powerDebounceCycles, c.timeout)
}

func TestFaultCycleOnDecodeError(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)

	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())
	require.Equal(t, StateEnabled.String(), c.Snapshot().State)

	// Усеченная запись переводит цикл в состояние fault.
	fc.records = append(fc.records, make([]byte, 10))
	err := c.RunCycle()
	require.ErrorIs(t, err, ErrMalformedPacket)
	require.Equal(t, StateFault.String(), c.Snapshot().State)

	// Следующая корректная запись восстанавливает состояние.
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())
	require.Equal(t, StateEnabled.String(), c.Snapshot().State)
}

func TestSnapshotProjectsPositions(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)

	p := c.Profile()
	fc.records = append(fc.records, buildRecord(p, 2, map[int]rawAxis{
		0: {pos: 2500, vel: 1000},
		1: {pos: -500, status: StatusMotorMoving},
	}, 5, 0, 0))
	require.NoError(t, c.RunCycle())

	snap := c.Snapshot()
	require.Equal(t, uint16(5), snap.SampleNumber)
	require.Len(t, snap.Axes, 2)
	require.InDelta(t, 2.5, snap.Axes[0].Position, 1e-9)
	require.InDelta(t, 1.0, snap.Axes[0].Velocity, 1e-9)
	require.InDelta(t, -0.5, snap.Axes[1].Position, 1e-9)
	require.True(t, snap.Axes[1].Moving)
	require.True(t, snap.Busy)
}
