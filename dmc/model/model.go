package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel - номер модели отсутствует в таблице профилей.
var ErrUnknownModel = errors.New("unknown DMC model")

// Размеры осевой записи в данных DR. Все контроллеры поддерживают минимальный
// набор полей (24 байта); дальше запись расширяется в зависимости от модели:
// 16-битный момент, 32-битный момент, либо 32-битный момент плюс резервные
// поля и пользовательская переменная (ZA).
const (
	AxisRecordOld = 28 // torque int16 + analog_in uint16 (DMC 2103, 1802)
	AxisRecordNew = 30 // torque int32 + analog_in uint16 (DMC 1806)
	AxisRecordMax = 36 // + hall, reserved, user var    (DMC 4000, 52000, 30000)
)

// Известные номера моделей DMC.
const (
	DMC4000  uint32 = 4000 // также 4200, 4103 и 500x0
	DMC52000 uint32 = 52000
	DMC1806  uint32 = 1806
	DMC2103  uint32 = 2103 // также 2102
	DMC1802  uint32 = 1802
	DMC30000 uint32 = 30000 // DMC 30010
)

// Profile описывает бинарную раскладку записи данных (DR) и возможности
// конкретной серии контроллеров. Экземпляры неизменяемы и определяются
// только здесь; несовпадение с прошивкой означает неверную конфигурацию.
type Profile struct {
	Model           uint32 // номер серии DMC
	AxisDataOffset  int    // смещение блока осевых данных от начала записи
	AxisRecordSize  int    // размер записи одной оси в байтах
	HasHeader       bool   // первые 4 байта записи содержат заголовок
	SampleOffset    int    // смещение номера выборки (uint16)
	ErrorCodeOffset int    // смещение кода ошибки (uint8)
	AmpStatusOffset int    // смещение статуса усилителя (uint32), -1 если нет
	HasLimitDisable bool   // поддерживается команда LD (отключение концевиков)
	HasUserData     bool   // поддерживается команда ZA (пользовательское поле)
}

// profiles indexed by model number. Смещения воспроизводят формат DR
// контроллеров Galil бит-в-бит и не подлежат изменению.
var profiles = map[uint32]*Profile{
	DMC4000:  {Model: DMC4000, AxisDataOffset: 82, AxisRecordSize: AxisRecordMax, HasHeader: true, SampleOffset: 4, ErrorCodeOffset: 50, AmpStatusOffset: 52, HasLimitDisable: true, HasUserData: true},
	DMC52000: {Model: DMC52000, AxisDataOffset: 82, AxisRecordSize: AxisRecordMax, HasHeader: true, SampleOffset: 4, ErrorCodeOffset: 50, AmpStatusOffset: 52, HasLimitDisable: true, HasUserData: true},
	DMC1806:  {Model: DMC1806, AxisDataOffset: 78, AxisRecordSize: AxisRecordNew, HasHeader: false, SampleOffset: 0, ErrorCodeOffset: 46, AmpStatusOffset: -1, HasLimitDisable: true, HasUserData: true},
	DMC2103:  {Model: DMC2103, AxisDataOffset: 44, AxisRecordSize: AxisRecordOld, HasHeader: true, SampleOffset: 4, ErrorCodeOffset: 26, AmpStatusOffset: -1, HasLimitDisable: false, HasUserData: false},
	DMC1802:  {Model: DMC1802, AxisDataOffset: 40, AxisRecordSize: AxisRecordOld, HasHeader: false, SampleOffset: 0, ErrorCodeOffset: 22, AmpStatusOffset: -1, HasLimitDisable: false, HasUserData: false},
	DMC30000: {Model: DMC30000, AxisDataOffset: 38, AxisRecordSize: AxisRecordMax, HasHeader: true, SampleOffset: 4, ErrorCodeOffset: 10, AmpStatusOffset: 18, HasLimitDisable: true, HasUserData: true},
}

// Lookup возвращает профиль для известного номера модели.
func Lookup(modelNumber uint32) (*Profile, error) {
	p, ok := profiles[modelNumber]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, modelNumber)
	}
	return p, nil
}

// Models возвращает номера всех известных моделей.
func Models() []uint32 {
	out := make([]uint32, 0, len(profiles))
	for m := range profiles {
		out = append(out, m)
	}
	return out
}

// HasAmpStatus сообщает, присутствует ли в записи статус усилителя.
func (p *Profile) HasAmpStatus() bool {
	return p.AmpStatusOffset >= 0
}

// HasUserVar сообщает, содержит ли осевая запись пользовательскую
// переменную (поле ZA), используемую как признак выполненного хоуминга.
func (p *Profile) HasUserVar() bool {
	return p.AxisRecordSize == AxisRecordMax
}

// HasAnalogIn сообщает, есть ли у модели аналоговый вход в осевой записи.
// У DMC 1802 соответствующее поле зарезервировано и читается как ноль.
func (p *Profile) HasAnalogIn() bool {
	return p.Model != DMC1802
}

// MinRecordSize возвращает минимальную длину буфера DR, необходимую для
// чтения осевых данных каналов 0..channelCount-1.
func (p *Profile) MinRecordSize(channelCount int) int {
	return p.AxisDataOffset + channelCount*p.AxisRecordSize
}

// DetectFromRevision определяет модель по строке ревизии контроллера
// (ответ на ^R^V, например "DMC4020 Rev 1.2c"). Возвращает 0, если строка
// не распознана. Сконфигурированная модель всегда имеет приоритет над
// автоопределением.
func DetectFromRevision(revision string) uint32 {
	idx := strings.Index(revision, "DMC")
	if idx < 0 {
		return 0
	}
	s := revision[idx+3:]
	switch {
	case strings.HasPrefix(s, "4"), strings.HasPrefix(s, "50"):
		return DMC4000 // 4000, 4200, 4103 и 500x0
	case strings.HasPrefix(s, "52"):
		return DMC52000
	case strings.HasPrefix(s, "3"):
		return DMC30000
	case strings.HasPrefix(s, "2"):
		return DMC2103
	case strings.HasPrefix(s, "1806"):
		return DMC1806
	case strings.HasPrefix(s, "1802"):
		return DMC1802
	}
	return 0
}
