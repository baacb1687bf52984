package dmc

import "errors"

// Классификация ошибок адаптера. Ошибки конфигурации фатальны при старте;
// транспортные ошибки и битые записи обрабатываются на каждом цикле и не
// останавливают контроллер.
var (
	// ErrMalformedPacket - буфер записи DR короче, чем требует профиль модели.
	ErrMalformedPacket = errors.New("malformed data record")
	// ErrOperationRejected - запрошенная операция отклонена без изменения состояния.
	ErrOperationRejected = errors.New("operation rejected")
	// ErrDuplicateChannel - два логических канала назначены на один аппаратный.
	ErrDuplicateChannel = errors.New("duplicate hardware channel")
	// ErrChannelOutOfRange - индекс аппаратного канала вне диапазона 0..7.
	ErrChannelOutOfRange = errors.New("hardware channel out of range")
	// ErrNotConnected - транспорт не открыт.
	ErrNotConnected = errors.New("controller is not connected")
)
