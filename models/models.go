package models

import (
	"time"

	"github.com/iwtcode/galilAdapter/dmc"
)

// ControllerData содержит полную сводку состояния контроллера за один цикл.
type ControllerData struct {
	ControllerID string    `json:"controller_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	dmc.Snapshot
}

// MoveRequest содержит целевые значения по осям для операций движения.
type MoveRequest struct {
	Goal []float64 `json:"goal"`
}

// AxisMaskRequest выбирает подмножество осей для операций хоуминга.
type AxisMaskRequest struct {
	Axes []bool `json:"axes"`
}

// CommandRequest содержит произвольную ASCII-команду контроллеру.
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandResponse содержит текст ответа контроллера на команду.
type CommandResponse struct {
	Response string `json:"response"`
}
