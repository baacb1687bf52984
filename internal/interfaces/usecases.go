package interfaces

import (
	"time"

	"github.com/iwtcode/galilAdapter/internal/domain/entities"
	"github.com/iwtcode/galilAdapter/internal/domain/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	CreateConnection(req models.ConnectionRequest) (*models.ConnectionInfo, error)
	RestoreConnection(controller entities.GalilController) (*models.ConnectionInfo, error)
	GetAllConnections() []*models.ConnectionInfo
	DeleteConnection(sessionID string) error
	CheckConnection(sessionID string) (*models.ConnectionInfo, error)
	StartPolling(sessionID string, interval time.Duration) error
	StopPolling(sessionID string) error

	// Операции движения и питания, адресованные контроллеру сессии.
	GetState(sessionID string) (*models.ControllerDataKafka, error)
	EnableMotorPower(sessionID string) error
	DisableMotorPower(sessionID string) error
	MoveAbsolute(sessionID string, goal []float64) error
	MoveRelative(sessionID string, goal []float64) error
	Jog(sessionID string, goal []float64) error
	Hold(sessionID string) error
	SetSpeed(sessionID string, values []float64) error
	SetAccel(sessionID string, values []float64) error
	SetDecel(sessionID string, values []float64) error
	SetHomePosition(sessionID string, pos []float64) error
	Home(sessionID string, axes []bool) error
	UnHome(sessionID string, axes []bool) error
	FindEdge(sessionID string, axes []bool) error
	FindIndex(sessionID string, axes []bool) error
	AbortMotion(sessionID string) error
	SendCommand(sessionID, command string) (string, error)
}
