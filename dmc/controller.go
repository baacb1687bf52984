package dmc

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iwtcode/galilAdapter/dmc/model"
)

// powerDebounceCycles - число циклов, в течение которых монитор питания
// игнорирует смешанное состояние моторов после намеренного включения или
// выключения: усилители переходят в новое состояние не одновременно.
const powerDebounceCycles = 20

// findIndexJogSpeed - скорость (отсчеты/с) для поиска индекса в
// многошаговой последовательности хоуминга без отключения концевиков.
const findIndexJogSpeed = -500

const recordBufferSize = 512

// Controller управляет одним контроллером DMC: читает записи данных,
// проецирует их в состояние осей и исполняет команды. Все операции
// сериализуются внутренним мьютексом; цикл обработки один, внешние
// запросы вклиниваются между циклами.
type Controller struct {
	mu      sync.Mutex
	cfg     *Config
	profile *model.Profile
	mapping *AxisMapping
	conn    Conn
	log     *logrus.Logger

	buf []byte

	axes   []AxisState
	device DeviceState

	cal        []Calibration
	pol        Polarity
	analogBits []float64 // вольт на отсчет аналогового входа, по осям

	speed, accel, decel                      []float64
	speedDefault, accelDefault, decelDefault []float64

	homePos          []float64
	homeLimitDisable []int32 // биты LD, нужные для хоуминга в пределе
	limitDisable     []int32 // сохраненная настройка LD контроллера
	homeCustom       bool    // стратегия FE+FI вместо HM
	trackFromRecord  bool    // признак хоуминга читается из поля ZA

	homing bool // состояние машины хоуминга: Idle / Homing
	phases []HomingPhase

	timeout      int // дебаунс монитора питания
	motorPowerOn bool
	motionActive bool
}

// NewController создает контроллер по валидированной конфигурации.
// Соединение уже должно быть установлено; модель окончательно
// разрешается в Startup по строке ревизии.
func NewController(cfg *Config, conn Conn, log *logrus.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	mapping, err := BuildAxisMapping(cfg.Channels())
	if err != nil {
		return nil, err
	}
	n := mapping.NumAxes()

	c := &Controller{
		cfg:              cfg,
		mapping:          mapping,
		conn:             conn,
		log:              log,
		buf:              make([]byte, recordBufferSize),
		axes:             make([]AxisState, n),
		cal:              make([]Calibration, n),
		analogBits:       make([]float64, n),
		speed:            make([]float64, n),
		accel:            make([]float64, n),
		decel:            make([]float64, n),
		homePos:          make([]float64, n),
		homeLimitDisable: make([]int32, n),
		limitDisable:     make([]int32, n),
		phases:           make([]HomingPhase, n),
	}

	for i, ax := range cfg.Robot.Axes {
		c.cal[i] = Calibration{
			CountsPerUnit: ax.PositionBitsToSI.Scale,
			Offset:        int64(ax.PositionBitsToSI.Offset),
			Absolute:      ax.IsAbsolute,
		}
		c.axes[i].Homed = ax.IsAbsolute
		c.homePos[i] = ax.HomePos
		// Хоуминг в сконфигурированный предел требует временного
		// отключения соответствующего концевика.
		if ax.HomePos <= ax.PositionLimits.Lower {
			c.homeLimitDisable[i] |= 2 // задний концевик
		} else if ax.HomePos >= ax.PositionLimits.Upper {
			c.homeLimitDisable[i] |= 1 // передний концевик
		}
	}

	c.speedDefault = defaultVector(cfg.SpeedDefault, n, 0.025)
	c.accelDefault = defaultVector(cfg.AccelDefault, n, 0.256)
	c.decelDefault = defaultVector(cfg.DecelDefault, n, 0.256)
	copy(c.speed, c.speedDefault)
	copy(c.accel, c.accelDefault)
	copy(c.decel, c.decelDefault)

	if cfg.Model != 0 {
		c.profile, err = model.Lookup(cfg.Model)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func defaultVector(v []float64, n int, fallback float64) []float64 {
	out := make([]float64, n)
	if len(v) == n {
		copy(out, v)
		return out
	}
	for i := range out {
		out[i] = fallback
	}
	return out
}

// Mapping возвращает раскладку осей контроллера.
func (c *Controller) Mapping() *AxisMapping { return c.mapping }

// Profile возвращает профиль модели (nil до завершения Startup при
// автоопределении).
func (c *Controller) Profile() *model.Profile { return c.profile }

// Startup выполняет стартовую последовательность: разрешает модель по
// строке ревизии, применяет значения по умолчанию, опрашивает полярность
// переключателей, масштаб аналоговых входов и текущую настройку LD,
// выбирает стратегию хоуминга и задает период записей данных.
func (c *Controller) Startup() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Строка ревизии (^R^V), например "DMC4020 Rev 1.3a".
	revision, err := c.conn.SendResponse("\x12\x16")
	if err != nil {
		c.log.Warnf("failed to read controller revision: %v", err)
	} else {
		c.log.Infof("controller revision: %s", revision)
	}
	detected := model.DetectFromRevision(revision)

	switch {
	case c.profile == nil && detected == 0:
		return fmt.Errorf("could not detect controller model, please specify it in the configuration")
	case c.profile == nil:
		c.profile, err = model.Lookup(detected)
		if err != nil {
			return err
		}
		c.log.Infof("detected controller model DMC%d", detected)
	case detected != 0 && detected != c.profile.Model:
		// Конфигурация имеет приоритет над автоопределением.
		c.log.Warnf("configured model DMC%d differs from detected DMC%d", c.profile.Model, detected)
	}

	if err := c.resolveHomedTracking(); err != nil {
		return err
	}

	if err := c.setSpeedLocked(c.speedDefault); err != nil {
		return err
	}
	if err := c.setAccelLocked(c.accelDefault); err != nil {
		return err
	}
	if err := c.setDecelLocked(c.decelDefault); err != nil {
		return err
	}

	c.queryPolarity()
	c.queryAnalogScale()

	if c.profile.HasLimitDisable {
		if err := c.queryCmdValues(CmdLimitDisable, c.limitDisable); err != nil {
			c.log.Errorf("could not query limit disable (LD): %v", err)
		}
		for i := range c.homeLimitDisable {
			c.homeLimitDisable[i] |= c.limitDisable[i]
		}
	}

	// Без команды LD хоуминг в предел прерывался бы срабатыванием
	// концевика, поэтому используется последовательность FE+FI.
	c.homeCustom = !c.profile.HasLimitDisable && anyNonZero(c.homeLimitDisable)

	if err := c.conn.SetRecordRate(c.cfg.DRPeriodMs); err != nil {
		return fmt.Errorf("set record rate to %d ms: %w", c.cfg.DRPeriodMs, err)
	}
	return nil
}

func (c *Controller) resolveHomedTracking() error {
	switch c.cfg.Robot.HomedTracking {
	case HomedTrackingRecord:
		if !c.profile.HasUserVar() {
			return fmt.Errorf("homed_tracking %q is not supported by model DMC%d", HomedTrackingRecord, c.profile.Model)
		}
		c.trackFromRecord = true
	case HomedTrackingManual:
		c.trackFromRecord = false
	default:
		c.trackFromRecord = c.profile.HasUserVar()
	}
	return nil
}

// queryPolarity опрашивает настройку CN: полярность концевиков (_CN0) и
// датчика дома (_CN1). Значения кэшируются на весь запуск.
func (c *Controller) queryPolarity() {
	c.pol.LimitActiveLow = true // активный низкий уровень (по умолчанию)
	if v, err := c.queryValueFloat("MG _CN0"); err != nil {
		c.log.Warnf("failed to query limit switch polarity (_CN0): %v", err)
	} else if v == 1.0 {
		c.pol.LimitActiveLow = false
	} else if v != -1.0 {
		c.log.Warnf("unexpected limit switch polarity value (_CN0): %v", v)
	}

	c.pol.HomeInverted = false // по входному напряжению (по умолчанию)
	if v, err := c.queryValueFloat("MG _CN1"); err != nil {
		c.log.Warnf("failed to query home switch polarity (_CN1): %v", err)
	} else if v == 1.0 {
		c.pol.HomeInverted = true
	} else if v != -1.0 {
		c.log.Warnf("unexpected home switch polarity value (_CN1): %v", v)
	}
}

// queryAnalogScale опрашивает настройку AQ каждого канала и вычисляет
// масштаб отсчетов аналогового входа. Запись DR всегда содержит полный
// 16-битный отсчет, даже на 12-битных АЦП.
func (c *Controller) queryAnalogScale() {
	if !c.profile.HasAnalogIn() {
		return
	}
	for i := 0; i < c.mapping.NumAxes(); i++ {
		v, err := c.queryValueFloat(fmt.Sprintf("MG _AQ%d", c.mapping.ToHardware(i)))
		if err != nil {
			c.log.Warnf("failed to query analog scale for axis %d: %v", i, err)
			continue
		}
		switch {
		case v == 1: // -5В..+5В
			c.analogBits[i] = 10.0 / 65535
		case v == 2: // -10В..+10В
			c.analogBits[i] = 20.0 / 65535
		case v == 3: // 0В..+5В
			c.analogBits[i] = 5.0 / 65535
		case v == 4: // 0В..+10В
			c.analogBits[i] = 10.0 / 65535
		case v < 0:
			c.log.Warnf("differential analog input is not supported (axis %d, _AQ = %v)", i, v)
		default:
			c.log.Warnf("invalid analog input setting (axis %d, _AQ = %v)", i, v)
		}
	}
}

// Run крутит цикл обработки до отмены контекста. Ошибка чтения или разбора
// записи переводит цикл в состояние fault и не останавливает обработку.
func (c *Controller) Run(ctx context.Context) {
	period := time.Duration(c.cfg.DRPeriodMs) * time.Millisecond
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if err := c.RunCycle(); err != nil {
			c.log.Errorf("cycle fault: %v", err)
			// Пауза перед повторной попыткой, чтобы не молотить транспорт.
			time.Sleep(period)
		}
	}
}

// RunCycle выполняет ровно один цикл: блокирующее чтение записи, разбор,
// проекция состояния, проверка согласованности питания и шаг машины
// хоуминга. Возвращенная ошибка означает цикл-fault; следующий цикл
// повторит чтение.
func (c *Controller) RunCycle() error {
	n, err := c.conn.ReadRecord(c.buf)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.faultCycleLocked()
		return err
	}
	rec, err := DecodeRecord(c.buf[:n], c.profile, c.mapping)
	if err != nil {
		c.faultCycleLocked()
		return err
	}

	for i := range c.axes {
		var conv Conversion
		if i < len(c.cfg.Robot.Axes) {
			conv = c.cfg.Robot.Axes[i].VoltsToSI
		}
		c.axes[i] = projectAxis(&rec.Axes[i], &c.axes[i], c.cal[i], c.pol,
			c.profile.HasUserVar(), c.trackFromRecord, c.analogBits[i], conv)
	}
	// Машина хоуминга продвигается до агрегации, чтобы выставленный в этом
	// цикле признак приведения сразу попал в агрегаты.
	c.updateHomingLocked()

	prevState := c.device.State
	c.device = aggregate(c.axes, rec)

	// Монитор согласованности питания: устойчивое смешанное состояние
	// моторов принудительно сводится к "все выключены".
	if c.timeout > 0 {
		c.timeout--
	}
	if !c.device.AllMotorsOn && !c.device.AllMotorsOff && c.timeout == 0 {
		c.log.Warn("inconsistent motor power state, turning all motors off")
		c.disableMotorPowerLocked()
		c.device.AllMotorsOn = false
		c.device.AllMotorsOff = true
		c.device.State = StateDisabled
	}
	c.motionActive = c.device.AnyMoving
	c.motorPowerOn = c.device.AllMotorsOn

	if c.device.State != prevState {
		c.log.Infof("operating state: %s", c.device.State)
	}
	return nil
}

func (c *Controller) faultCycleLocked() {
	c.motionActive = false
	c.motorPowerOn = false
	c.device.State = StateFault
	c.device.AnyMoving = false
}

// --- Команды движения и питания ---

// EnableMotorPower включает усилители всех сконфигурированных осей.
func (c *Controller) EnableMotorPower() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.send(AxisListCommand(CmdEnablePower, c.mapping.Axes())); err != nil {
		return err
	}
	c.timeout = powerDebounceCycles
	return nil
}

// DisableMotorPower останавливает движение и выключает усилители.
func (c *Controller) DisableMotorPower() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disableMotorPowerLocked()
}

func (c *Controller) disableMotorPowerLocked() error {
	if c.motionActive {
		c.send(AxisListCommand(CmdStop, c.mapping.Axes()))
		c.send(AxisListCommand(CmdAfterMotion, c.mapping.Axes()))
		// Предыдущей командой мог быть JG; восстанавливаем скорость.
		c.setSpeedLocked(c.speed)
	}
	if err := c.send(AxisListCommand(CmdDisablePower, c.mapping.Axes())); err != nil {
		return err
	}
	c.timeout = powerDebounceCycles
	return nil
}

// ServoJP задает абсолютную целевую позицию всех осей и начинает движение.
func (c *Controller) ServoJP(goal []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requirePowerLocked("servo_jp"); err != nil {
		return err
	}
	if c.motionActive {
		c.send(AxisListCommand(CmdStop, c.mapping.Axes()))
	}
	if err := c.sendValuesFloat("servo_jp", CmdMoveAbsolute, goal, true); err != nil {
		return err
	}
	return c.send(AxisListCommand(CmdBegin, c.mapping.Axes()))
}

// ServoJR задает относительное перемещение всех осей и начинает движение.
func (c *Controller) ServoJR(goal []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requirePowerLocked("servo_jr"); err != nil {
		return err
	}
	if c.motionActive {
		c.send(AxisListCommand(CmdStop, c.mapping.Axes()))
	}
	if err := c.sendValuesFloat("servo_jr", CmdMoveRelative, goal, false); err != nil {
		return err
	}
	return c.send(AxisListCommand(CmdBegin, c.mapping.Axes()))
}

// ServoJV задает скорость джоггинга всех осей и начинает движение.
// Значение SP на контроллере при этом не трогается, чтобы после останова
// можно было восстановить прежнюю скорость.
func (c *Controller) ServoJV(goal []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requirePowerLocked("servo_jv"); err != nil {
		return err
	}
	if err := c.sendValuesFloat("servo_jv", CmdJog, goal, false); err != nil {
		return err
	}
	return c.send(AxisListCommand(CmdBegin, c.mapping.Axes()))
}

// Hold останавливает движение всех осей без снятия питания.
func (c *Controller) Hold() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requirePowerLocked("hold"); err != nil {
		return err
	}
	if err := c.send(AxisListCommand(CmdStop, c.mapping.Axes())); err != nil {
		return err
	}
	return c.setSpeedLocked(c.speed)
}

// SetSpeed задает скорость движения по осям.
func (c *Controller) SetSpeed(spd []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setSpeedLocked(spd)
}

func (c *Controller) setSpeedLocked(spd []float64) error {
	if err := c.sendValuesFloat("SetSpeed", CmdSpeed, spd, false); err != nil {
		return err
	}
	copy(c.speed, spd)
	return nil
}

// SetAccel задает ускорение по осям.
func (c *Controller) SetAccel(accel []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setAccelLocked(accel)
}

func (c *Controller) setAccelLocked(accel []float64) error {
	if err := c.sendValuesFloat("SetAccel", CmdAccel, accel, false); err != nil {
		return err
	}
	copy(c.accel, accel)
	return nil
}

// SetDecel задает замедление по осям.
func (c *Controller) SetDecel(decel []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setDecelLocked(decel)
}

func (c *Controller) setDecelLocked(decel []float64) error {
	if err := c.sendValuesFloat("SetDecel", CmdDecel, decel, false); err != nil {
		return err
	}
	copy(c.decel, decel)
	return nil
}

// SetHomePosition переопределяет текущую позицию осей (DP) и, если модель
// поддерживает поле ZA, помечает оси как приведенные.
func (c *Controller) SetHomePosition(pos []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.sendValuesFloat("SetHomePosition", CmdDefinePos, pos, true); err != nil {
		return err
	}
	if c.profile.HasUserData {
		ones := make([]int32, MaxChannels)
		for i := range ones {
			ones[i] = 1
		}
		return c.send(SparseValueListCommand(CmdUserData, ones, c.mapping.ValidMask(), c.mapping.ChannelCount()))
	}
	return nil
}

// AbortProgram прерывает выполнение программы контроллера.
func (c *Controller) AbortProgram() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.send(CmdAbortProgram)
}

// AbortMotion прерывает движение, не прерывая программу.
func (c *Controller) AbortMotion() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.send(CmdAbortMotion)
}

// SendCommand отправляет произвольную команду без захвата ответа.
func (c *Controller) SendCommand(cmd string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.send(cmd)
}

// SendCommandRet отправляет произвольную команду и возвращает текст ответа.
func (c *Controller) SendCommandRet(cmd string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.SendResponse(cmd)
}

// Snapshot возвращает копию опубликованного состояния контроллера.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// --- Внутренние помощники ---

func (c *Controller) requirePowerLocked(op string) error {
	if !c.motorPowerOn {
		return fmt.Errorf("%w: %s: motor power is off", ErrOperationRejected, op)
	}
	return nil
}

// sendValuesFloat строит и отправляет команду с позиционным списком
// значений, пересчитав физические единицы в отсчеты. useOffset добавляет
// смещение нуля энкодера (абсолютные позиции).
func (c *Controller) sendValuesFloat(op, verb string, data []float64, useOffset bool) error {
	if len(data) != c.mapping.NumAxes() {
		return fmt.Errorf("%w: %s: expected %d values, got %d",
			ErrOperationRejected, op, c.mapping.NumAxes(), len(data))
	}
	values := make([]int32, MaxChannels)
	for i, v := range data {
		cal := c.cal[i]
		if !useOffset {
			cal.Offset = 0
		}
		values[c.mapping.ToHardware(i)] = int32(UnitsToCounts(v, cal))
	}
	return c.send(SparseValueListCommand(verb, values, c.mapping.ValidMask(), c.mapping.ChannelCount()))
}

// sendValuesInt отправляет команду с позиционным списком сырых значений.
func (c *Controller) sendValuesInt(op, verb string, data []int32) error {
	if len(data) != c.mapping.NumAxes() {
		return fmt.Errorf("%w: %s: expected %d values, got %d",
			ErrOperationRejected, op, c.mapping.NumAxes(), len(data))
	}
	values := make([]int32, MaxChannels)
	for i, v := range data {
		values[c.mapping.ToHardware(i)] = v
	}
	return c.send(SparseValueListCommand(verb, values, c.mapping.ValidMask(), c.mapping.ChannelCount()))
}

func (c *Controller) send(cmd string) error {
	if err := c.conn.Send(cmd); err != nil {
		c.log.Errorf("send %q: %v", cmd, err)
		return err
	}
	return nil
}

func (c *Controller) queryValueFloat(cmd string) (float64, error) {
	resp, err := c.conn.SendResponse(cmd)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(resp), 64)
}

// queryCmdValues выполняет позиционный запрос (например "LD ?,?") и
// раскладывает ответ по логическим осям. Значения в ответе идут в порядке
// возрастания аппаратных каналов; пустые слоты пропущенных каналов
// игнорируются.
func (c *Controller) queryCmdValues(verb string, out []int32) error {
	resp, err := c.conn.SendResponse(verb + c.mapping.QueryTemplate())
	if err != nil {
		return err
	}
	values := make([]int32, 0, len(out))
	for _, f := range strings.Split(resp, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return fmt.Errorf("query %q: bad field %q: %w", verb, f, err)
		}
		values = append(values, int32(v))
	}
	if len(values) != len(out) {
		return fmt.Errorf("query %q returned %d values, expected %d", verb, len(values), len(out))
	}
	k := 0
	for hw := 0; hw < c.mapping.ChannelCount(); hw++ {
		if axis, ok := c.mapping.ToLogical(hw); ok {
			out[axis] = values[k]
			k++
		}
	}
	return nil
}

func anyNonZero(v []int32) bool {
	for _, x := range v {
		if x != 0 {
			return true
		}
	}
	return false
}
