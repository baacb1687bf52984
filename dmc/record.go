package dmc

import (
	"encoding/binary"
	"fmt"

	"github.com/iwtcode/galilAdapter/dmc/model"
)

// Битовые маски поля status осевой записи (см. Galil User Manual).
const (
	StatusMotorMoving    uint16 = 0x8000
	StatusFindEdgeActive uint16 = 0x1000
	StatusHomeActive     uint16 = 0x0800
	StatusHome1Done      uint16 = 0x0400
	StatusHome2DoneFI    uint16 = 0x0200
	StatusHome3Active    uint16 = 0x0002
	StatusMotorOff       uint16 = 0x0001
)

// Битовые маски поля switches осевой записи.
const (
	SwitchFwdLimit uint8 = 0x08
	SwitchRevLimit uint8 = 0x04
	SwitchHome     uint8 = 0x02
)

// Битовые маски статуса усилителя.
const (
	AmpEloUpper          uint32 = 0x02000000 // ELO активен (оси E-H)
	AmpEloLower          uint32 = 0x01000000 // ELO активен (оси A-D)
	AmpPeakCurrentA      uint32 = 0x00010000 // пиковый ток оси A (сдвиг влево для B-H)
	AmpHallErrorA        uint32 = 0x00000100 // ошибка датчиков Холла оси A (сдвиг влево для B-H)
	AmpUnderVoltageUpper uint32 = 0x00000080
	AmpOverTempUpper     uint32 = 0x00000040
	AmpOverVoltageUpper  uint32 = 0x00000020
	AmpOverCurrentUpper  uint32 = 0x00000010
	AmpUnderVoltageLower uint32 = 0x00000008
	AmpOverTempLower     uint32 = 0x00000004
	AmpOverVoltageLower  uint32 = 0x00000002
	AmpOverCurrentLower  uint32 = 0x00000001
)

// Коды останова (команда SC; полный список в документации Galil).
const (
	SCRunning  uint8 = 0  // моторы движутся
	SCStopped  uint8 = 1  // торможение или останов в позиции
	SCFwdLim   uint8 = 2  // останов на переднем концевике (или FL)
	SCRevLim   uint8 = 3  // останов на заднем концевике (или BL)
	SCStopCmd  uint8 = 4  // останов по команде ST
	SCOnError  uint8 = 8  // останов по Off-on-Error (OE)
	SCFindEdge uint8 = 9  // останов после поиска фронта (FE)
	SCHoming   uint8 = 10 // останов после хоуминга (HM) или поиска индекса (FI)
)

// RawAxisSample - сырые поля одной оси, извлеченные из записи DR за один
// цикл. Значения в единицах устройства; пересчет в физические единицы
// выполняется проектором состояния.
type RawAxisSample struct {
	Status   uint16
	Switches uint8
	StopCode uint8
	RefPos   int32
	Pos      int32
	PosError int32
	AuxPos   int32
	Vel      int32
	// Torque знаково расширен до 32 бит независимо от ширины поля в записи;
	// масштаб узкого и широкого формата применяется ниже по конвейеру.
	Torque   int32
	AnalogIn uint16
	// UserVar - пользовательское поле (ZA), признак выполненного хоуминга.
	// Валидно только если профиль содержит расширенную запись.
	UserVar int32
}

// Record - разобранная запись данных контроллера за один цикл.
// Осевые записи индексированы логической осью.
type Record struct {
	Header       uint32
	SampleNumber uint16
	ErrorCode    uint8
	AmpStatus    uint32
	HasAmpStatus bool
	Axes         []RawAxisSample
}

// DecodeRecord разбирает буфер записи DR согласно профилю модели.
// Границы проверяются заранее по заявленным профилем смещениям; доступ к
// полям идет только через явные смещения, запись никогда не
// интерпретируется как структура другой модели.
func DecodeRecord(buf []byte, p *model.Profile, m *AxisMapping) (*Record, error) {
	need := p.MinRecordSize(m.ChannelCount())
	if len(buf) < need {
		return nil, fmt.Errorf("%w: got %d bytes, model %d with %d channels needs %d",
			ErrMalformedPacket, len(buf), p.Model, m.ChannelCount(), need)
	}

	rec := &Record{
		ErrorCode:    buf[p.ErrorCodeOffset],
		SampleNumber: binary.LittleEndian.Uint16(buf[p.SampleOffset:]),
		Axes:         make([]RawAxisSample, m.NumAxes()),
	}
	if p.HasHeader {
		rec.Header = binary.LittleEndian.Uint32(buf)
	}
	if p.HasAmpStatus() {
		rec.AmpStatus = binary.LittleEndian.Uint32(buf[p.AmpStatusOffset:])
		rec.HasAmpStatus = true
	}

	for axis := range rec.Axes {
		base := p.AxisDataOffset + m.ToHardware(axis)*p.AxisRecordSize
		ax := buf[base : base+p.AxisRecordSize]
		s := &rec.Axes[axis]

		// Минимальный набор полей, общий для всех моделей.
		s.Status = binary.LittleEndian.Uint16(ax[0:])
		s.Switches = ax[2]
		s.StopCode = ax[3]
		s.RefPos = int32(binary.LittleEndian.Uint32(ax[4:]))
		s.Pos = int32(binary.LittleEndian.Uint32(ax[8:]))
		s.PosError = int32(binary.LittleEndian.Uint32(ax[12:]))
		s.AuxPos = int32(binary.LittleEndian.Uint32(ax[16:]))
		s.Vel = int32(binary.LittleEndian.Uint32(ax[20:]))

		// Момент и аналоговый вход зависят от размера записи.
		if p.AxisRecordSize == model.AxisRecordOld {
			s.Torque = int32(int16(binary.LittleEndian.Uint16(ax[24:])))
			if p.HasAnalogIn() {
				s.AnalogIn = binary.LittleEndian.Uint16(ax[26:])
			}
		} else {
			s.Torque = int32(binary.LittleEndian.Uint32(ax[24:]))
			s.AnalogIn = binary.LittleEndian.Uint16(ax[28:])
		}
		if p.HasUserVar() {
			s.UserVar = int32(binary.LittleEndian.Uint32(ax[32:]))
		}
	}
	return rec, nil
}
