package dmc

import "fmt"

// HomingPhase - явное поосевое подсостояние машины хоуминга.
type HomingPhase int

const (
	// PhaseIdle - ось не участвует в хоуминге.
	PhaseIdle HomingPhase = iota
	// PhaseAwaitingEdge - ось движется к фронту датчика дома или к
	// концевику (последовательность FE без отключения концевиков).
	PhaseAwaitingEdge
	// PhaseAwaitingIndex - ось движется к индексной метке энкодера (FI).
	PhaseAwaitingIndex
	// PhaseAwaitingStop - ось выполняет штатную команду HM.
	PhaseAwaitingStop
	// PhaseDone - хоуминг оси завершен.
	PhaseDone
	// PhaseAborted - хоуминг оси прерван неожиданным кодом останова.
	PhaseAborted
)

func (p HomingPhase) active() bool {
	return p == PhaseAwaitingEdge || p == PhaseAwaitingIndex || p == PhaseAwaitingStop
}

// checkHomingMask валидирует маску осей для операций семейства хоуминга:
// размер должен совпадать с числом осей, операция отклоняется во время
// активного хоуминга, оси с абсолютным энкодером исключаются (их признак
// приведения снять нельзя).
func (c *Controller) checkHomingMask(op string, mask []bool) ([]bool, error) {
	if len(mask) != c.mapping.NumAxes() {
		return nil, fmt.Errorf("%w: %s: expected %d axes, got %d",
			ErrOperationRejected, op, c.mapping.NumAxes(), len(mask))
	}
	if c.homing {
		return nil, fmt.Errorf("%w: %s ignored because homing is in progress", ErrOperationRejected, op)
	}
	out := make([]bool, len(mask))
	any := false
	for i, m := range mask {
		out[i] = m && !c.cal[i].Absolute
		if out[i] != m {
			c.log.Warnf("%s: axis %d has an absolute encoder, skipping", op, i)
		}
		any = any || out[i]
	}
	if !any {
		return nil, fmt.Errorf("%w: %s: no valid axes", ErrOperationRejected, op)
	}
	return out, nil
}

// resetPhasesLocked очищает поосевые фазы. Маска хоуминга создается
// заново при каждой принятой команде семейства: фазы незавершенных
// примитивов FE/FI не переносятся в новый запуск.
func (c *Controller) resetPhasesLocked() {
	for i := range c.phases {
		c.phases[i] = PhaseIdle
	}
}

// selectedChannels возвращает маску занятых аппаратных каналов и строку
// букв для подмножества логических осей.
func (c *Controller) selectedChannels(mask []bool) ([]bool, string) {
	valid := make([]bool, c.mapping.ChannelCount())
	letters := make([]byte, 0, len(mask))
	for i, m := range mask {
		if m {
			valid[c.mapping.ToHardware(i)] = true
		}
	}
	for hw := 0; hw < c.mapping.ChannelCount(); hw++ {
		if valid[hw] {
			letters = append(letters, ChannelLetter(hw))
		}
	}
	return valid, string(letters)
}

// Home запускает хоуминг выбранных осей. Ошибки валидации не меняют
// состояние машины; повторный запрос во время активного хоуминга
// отклоняется.
func (c *Controller) Home(mask []bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	selected, err := c.checkHomingMask("Home", mask)
	if err != nil {
		return err
	}
	if err := c.requirePowerLocked("Home"); err != nil {
		return err
	}

	_, letters := c.selectedChannels(selected)

	c.resetPhasesLocked()
	c.unHomeLocked(selected)
	if c.motionActive {
		c.send(AxisListCommand(CmdStop, letters))
	}

	// Хоуминг в предел: временно отключаем нужные концевики, если
	// контроллер это умеет.
	if c.profile.HasLimitDisable && anyNonZero(c.homeLimitDisable) && !equalInt32(c.homeLimitDisable, c.limitDisable) {
		if err := c.sendValuesInt("Home (LD)", CmdLimitDisable, c.homeLimitDisable); err != nil {
			return fmt.Errorf("failed to disable limits for homing: %w", err)
		}
	}

	if c.homeCustom {
		// Контроллер не поддерживает LD, а часть осей хоумится в предел:
		// команда HM была бы прервана концевиком, поэтому фронт ищется
		// явно (FE), а индекс доискивается после останова.
		if err := c.send(AxisListCommand(CmdFindEdge, letters)); err != nil {
			return err
		}
		if err := c.send(AxisListCommand(CmdBegin, letters)); err != nil {
			return err
		}
		for i, m := range selected {
			if m {
				c.phases[i] = PhaseAwaitingEdge
			}
		}
		c.log.Info("starting home (FE)")
	} else {
		if err := c.send(AxisListCommand(CmdHome, letters)); err != nil {
			return err
		}
		if err := c.send(AxisListCommand(CmdBegin, letters)); err != nil {
			return err
		}
		for i, m := range selected {
			if m {
				c.phases[i] = PhaseAwaitingStop
			}
		}
		c.log.Info("starting home (HM)")
	}
	c.homing = true
	return nil
}

// UnHome снимает признак приведения с выбранных осей без движения.
func (c *Controller) UnHome(mask []bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	selected, err := c.checkHomingMask("UnHome", mask)
	if err != nil {
		return err
	}
	c.unHomeLocked(selected)
	return nil
}

func (c *Controller) unHomeLocked(selected []bool) {
	for i, m := range selected {
		if m {
			c.axes[i].Homed = false
		}
	}
	if c.profile.HasUserData {
		valid, _ := c.selectedChannels(selected)
		zeros := make([]int32, MaxChannels)
		c.send(SparseValueListCommand(CmdUserData, zeros, valid, c.mapping.ChannelCount()))
	}
	c.device.AllHomed = false
}

// FindEdge выполняет поиск фронта датчика дома для выбранных осей.
// Это примитив: он не запускает полный протокол завершения хоуминга.
func (c *Controller) FindEdge(mask []bool) error {
	return c.motionPrimitive("FindEdge", CmdFindEdge, PhaseAwaitingEdge, mask)
}

// FindIndex выполняет поиск индексной метки энкодера для выбранных осей.
// Это примитив: он не запускает полный протокол завершения хоуминга.
func (c *Controller) FindIndex(mask []bool) error {
	return c.motionPrimitive("FindIndex", CmdFindIndex, PhaseAwaitingIndex, mask)
}

func (c *Controller) motionPrimitive(op, verb string, phase HomingPhase, mask []bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	selected, err := c.checkHomingMask(op, mask)
	if err != nil {
		return err
	}
	if err := c.requirePowerLocked(op); err != nil {
		return err
	}
	_, letters := c.selectedChannels(selected)
	if c.motionActive {
		c.send(AxisListCommand(CmdStop, letters))
	}
	if err := c.send(AxisListCommand(verb, letters)); err != nil {
		return err
	}
	if err := c.send(AxisListCommand(CmdBegin, letters)); err != nil {
		return err
	}
	c.resetPhasesLocked()
	for i, m := range selected {
		if m {
			c.phases[i] = phase
		}
	}
	return nil
}

// updateHomingLocked продвигает машину хоуминга на один цикл. Реакция на
// коды останова срабатывает по фронту их изменения; завершение оси
// фиксируется командой DP с пересчитанной позицией дома.
func (c *Controller) updateHomingLocked() {
	if !c.homing {
		return
	}
	for i := range c.axes {
		if !c.phases[i].active() {
			continue
		}
		ax := &c.axes[i]
		letter := c.mapping.AxisLetter(i)
		switch {
		case ax.StopCode == SCFindEdge || (c.homeCustom && (ax.StopCode == SCFwdLim || ax.StopCode == SCRevLim)):
			if !ax.StopCodeDelta {
				break
			}
			switch ax.StopCode {
			case SCFwdLim:
				c.log.Infof("found forward limit on axis %d", i)
			case SCRevLim:
				c.log.Infof("found reverse limit on axis %d", i)
			default:
				c.log.Infof("found homing edge on axis %d", i)
			}
			if c.homeCustom && c.phases[i] == PhaseAwaitingEdge {
				// Продолжение последовательности FE: дождаться останова,
				// задать пониженную скорость и доискать индекс.
				c.send(fmt.Sprintf("%s%c", CmdAfterMotion, letter))
				c.send(fmt.Sprintf("%s%c=%d", "JG", letter, findIndexJogSpeed))
				c.send(fmt.Sprintf("%s%c", CmdFindIndex, letter))
				c.send(fmt.Sprintf("%s%c", CmdBegin, letter))
				c.phases[i] = PhaseAwaitingIndex
			}

		case ax.StopCode == SCHoming:
			c.phases[i] = PhaseDone
			ax.Homed = true
			hpos := UnitsToCounts(c.homePos[i], c.cal[i])
			c.send(fmt.Sprintf("%s%c", CmdAfterMotion, letter))
			c.send(fmt.Sprintf("%s%c=%d", "DP", letter, hpos))
			if c.trackFromRecord {
				// Синхронизируем поле ZA с признаком приведения, иначе
				// следующая запись его сбросила бы.
				one := make([]int32, MaxChannels)
				one[c.mapping.ToHardware(i)] = 1
				valid := make([]bool, c.mapping.ChannelCount())
				valid[c.mapping.ToHardware(i)] = true
				c.send(SparseValueListCommand(CmdUserData, one, valid, c.mapping.ChannelCount()))
			}
			c.setSpeedLocked(c.speed)
			c.log.Infof("finished homing on axis %d", i)

		case ax.StopCode != SCRunning && ax.StopCodeDelta:
			// Неожиданный останов: хоуминг этой оси прекращается без
			// повторной попытки.
			c.log.Warnf("unexpected stop code %d while homing axis %d", ax.StopCode, i)
			c.phases[i] = PhaseAborted
		}
	}

	for i := range c.phases {
		if c.phases[i].active() {
			return
		}
	}
	// Хоуминг всех осей завершен: восстанавливаем сохраненную настройку
	// концевиков. Неудача восстановления не блокирует переход в Idle.
	if c.profile.HasLimitDisable {
		if err := c.sendValuesInt("Home (LD-restore)", CmdLimitDisable, c.limitDisable); err != nil {
			c.log.Errorf("failed to restore limit configuration: %v", err)
		}
	}
	c.log.Info("finished homing all axes")
	c.homing = false
}

// HomingActive сообщает, выполняется ли хоуминг.
func (c *Controller) HomingActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.homing
}

func equalInt32(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
