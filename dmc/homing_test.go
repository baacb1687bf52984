package dmc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwtcode/galilAdapter/dmc/model"
)

func TestHomeRejectedWithoutPower(t *testing.T) {
	c, _ := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	err := c.Home([]bool{true, true})
	require.ErrorIs(t, err, ErrOperationRejected)
	require.False(t, c.HomingActive())
}

func TestHomeMaskSizeMismatch(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	err := c.Home([]bool{true})
	require.ErrorIs(t, err, ErrOperationRejected)
	require.False(t, c.HomingActive())
}

func TestHomeFiltersAbsoluteAxes(t *testing.T) {
	cfg := testConfig(model.DMC4000, []int{0, 1, 2})
	cfg.Robot.Axes[1].IsAbsolute = true
	c, fc := newTestController(t, cfg, nil)

	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	mark := fc.mark()
	require.NoError(t, c.Home([]bool{true, true, true}))
	require.True(t, c.HomingActive())

	// Ось с абсолютным энкодером исключена: команды идут только осям A и C.
	sent := fc.sentSince(mark)
	require.Contains(t, sent, "HM AC")
	require.Contains(t, sent, "BG AC")
	require.Equal(t, 0, countPrefix(sent, CmdFindEdge))

	// Повторный запрос во время активного хоуминга отклоняется.
	err := c.Home([]bool{true, false, false})
	require.ErrorIs(t, err, ErrOperationRejected)
	err = c.UnHome([]bool{true, false, false})
	require.ErrorIs(t, err, ErrOperationRejected)
}

func TestHomeRejectsAllAbsoluteSelection(t *testing.T) {
	cfg := testConfig(model.DMC4000, []int{0, 1})
	cfg.Robot.Axes[0].IsAbsolute = true
	c, fc := newTestController(t, cfg, nil)
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	err := c.Home([]bool{true, false})
	require.ErrorIs(t, err, ErrOperationRejected)
}

func TestHomeCompletesPerAxis(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())
	require.NoError(t, c.Home([]bool{true, true}))

	// Первая ось дошла до дома, вторая еще движется.
	mark := fc.mark()
	queueRecord(t, fc, c, map[int]uint8{0: SCHoming}, nil)
	require.NoError(t, c.RunCycle())
	require.True(t, c.HomingActive())

	sent := fc.sentSince(mark)
	require.Contains(t, sent, "AM A")
	require.Contains(t, sent, "DPA=0")
	require.True(t, c.Snapshot().Axes[0].Homed)
	require.False(t, c.Snapshot().Axes[1].Homed)

	// Вторая ось завершает хоуминг: машина возвращается в Idle и
	// восстанавливает настройку концевиков.
	mark = fc.mark()
	queueRecord(t, fc, c, map[int]uint8{0: SCHoming, 1: SCHoming}, nil)
	require.NoError(t, c.RunCycle())
	require.False(t, c.HomingActive())

	sent = fc.sentSince(mark)
	require.Contains(t, sent, "DPB=0")
	require.Equal(t, 1, countPrefix(sent, CmdLimitDisable))
	require.True(t, c.Snapshot().Homed)
}

func TestHomeAbortsOnUnexpectedStop(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0}), nil)
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())
	require.NoError(t, c.Home([]bool{true}))

	// Останов по команде ST прекращает хоуминг оси без повторной попытки.
	queueRecord(t, fc, c, map[int]uint8{0: SCStopCmd}, nil)
	require.NoError(t, c.RunCycle())
	require.False(t, c.HomingActive())
	require.False(t, c.Snapshot().Axes[0].Homed)
}

func TestCustomHomingFallback(t *testing.T) {
	// Контроллер без команды LD, ось хоумится в верхний предел:
	// вместо HM используется последовательность FE + FI.
	cfg := testConfig(model.DMC2103, []int{0})
	cfg.Robot.Axes[0].HomePos = 1.0
	c, fc := newTestController(t, cfg, nil)

	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	mark := fc.mark()
	require.NoError(t, c.Home([]bool{true}))
	sent := fc.sentSince(mark)
	require.Contains(t, sent, "FE A")
	require.Contains(t, sent, "BG A")
	require.Equal(t, 0, countPrefix(sent, CmdHome))
	require.Equal(t, 0, countPrefix(sent, CmdLimitDisable))

	// Ось встала на переднем концевике: доискиваем индекс на малой скорости.
	mark = fc.mark()
	queueRecord(t, fc, c, map[int]uint8{0: SCFwdLim}, nil)
	require.NoError(t, c.RunCycle())
	require.True(t, c.HomingActive())
	require.Equal(t, []string{"AM A", "JGA=-500", "FI A", "BG A"}, fc.sentSince(mark))

	// Повторный цикл с тем же кодом останова ничего не перезапускает.
	mark = fc.mark()
	queueRecord(t, fc, c, map[int]uint8{0: SCFwdLim}, nil)
	require.NoError(t, c.RunCycle())
	require.Empty(t, fc.sentSince(mark))

	// Индекс найден: позиция дома фиксируется командой DP.
	mark = fc.mark()
	queueRecord(t, fc, c, map[int]uint8{0: SCHoming}, nil)
	require.NoError(t, c.RunCycle())
	require.False(t, c.HomingActive())

	sent = fc.sentSince(mark)
	require.Contains(t, sent, "DPA=1000")
	require.True(t, c.Snapshot().Axes[0].Homed)
}

func TestUnHomeClearsFlag(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())
	require.NoError(t, c.Home([]bool{true, true}))
	queueRecord(t, fc, c, map[int]uint8{0: SCHoming, 1: SCHoming}, nil)
	require.NoError(t, c.RunCycle())
	require.True(t, c.Snapshot().Axes[0].Homed)

	mark := fc.mark()
	require.NoError(t, c.UnHome([]bool{true, false}))
	require.False(t, c.Snapshot().Axes[0].Homed)
	require.True(t, c.Snapshot().Axes[1].Homed)
	// Пользовательское поле записи обнуляется только выбранной оси.
	require.Contains(t, fc.sentSince(mark), "ZA 0,")
}

func TestFindEdgePrimitive(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	mark := fc.mark()
	require.NoError(t, c.FindEdge([]bool{true, false}))
	sent := fc.sentSince(mark)
	require.Contains(t, sent, "FE A")
	require.Contains(t, sent, "BG A")
	// Примитив не запускает протокол завершения хоуминга.
	require.False(t, c.HomingActive())
}

func TestFindEdgeThenHomeCompletes(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	require.NoError(t, c.FindEdge([]bool{true, false}))
	require.False(t, c.HomingActive())

	// Последующий Home по оси B не наследует фазу примитива оси A:
	// завершение выбранной оси возвращает машину в Idle.
	require.NoError(t, c.Home([]bool{false, true}))
	require.True(t, c.HomingActive())

	mark := fc.mark()
	queueRecord(t, fc, c, map[int]uint8{1: SCHoming}, nil)
	require.NoError(t, c.RunCycle())
	require.False(t, c.HomingActive())
	require.True(t, c.Snapshot().Axes[1].Homed)

	sent := fc.sentSince(mark)
	require.Contains(t, sent, "DPB=0")
	require.Equal(t, 1, countPrefix(sent, CmdLimitDisable))

	// После возврата в Idle команды семейства снова принимаются.
	require.NoError(t, c.UnHome([]bool{false, true}))
}

func TestFindIndexThenHomeLeavesUnselectedAxisAlone(t *testing.T) {
	c, fc := newTestController(t, testConfig(model.DMC4000, []int{0, 1}), nil)
	queueRecord(t, fc, c, nil, nil)
	require.NoError(t, c.RunCycle())

	require.NoError(t, c.FindIndex([]bool{true, false}))

	mark := fc.mark()
	require.NoError(t, c.Home([]bool{false, true}))

	// Ось A доискала индекс (код 10), но в текущем запуске не выбрана:
	// ей не должны уходить AM/DP, и признак приведения не выставляется.
	queueRecord(t, fc, c, map[int]uint8{0: SCHoming}, nil)
	require.NoError(t, c.RunCycle())
	require.True(t, c.HomingActive())

	sent := fc.sentSince(mark)
	require.NotContains(t, sent, "AM A")
	require.Equal(t, 0, countPrefix(sent, "DPA="))
	require.False(t, c.Snapshot().Axes[0].Homed)
}
