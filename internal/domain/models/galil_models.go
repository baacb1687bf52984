package models

import (
	"time"

	"github.com/iwtcode/galilAdapter/dmc"
)

// ControllerDataKafka - агрегированная структура для отправки в Kafka:
// сводка состояния контроллера за один цикл плюс атрибуты сессии.
type ControllerDataKafka struct {
	SessionID string    `json:"session_id"`
	Endpoint  string    `json:"endpoint"`
	Timestamp time.Time `json:"timestamp"`
	dmc.Snapshot
}

// MoveRequest содержит целевые значения по осям для операций движения.
type MoveRequest struct {
	SessionID string    `json:"session_id" binding:"required"`
	Goal      []float64 `json:"goal" binding:"required"`
}

// AxisMaskRequest выбирает подмножество осей для операций хоуминга.
type AxisMaskRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Axes      []bool `json:"axes" binding:"required"`
}

// CommandRequest содержит произвольную ASCII-команду контроллеру.
type CommandRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Command   string `json:"command" binding:"required"`
}
