package interfaces

import (
	"time"

	galil "github.com/iwtcode/galilAdapter"
	"github.com/iwtcode/galilAdapter/internal/domain/entities"
	"github.com/iwtcode/galilAdapter/internal/domain/models"
)

// GalilService - это агрегирующий интерфейс для всей бизнес-логики.
type GalilService interface {
	ConnectionManager
	PollingManager
}

// ConnectionManager определяет контракт для управления пулом подключений.
// Пул хранит живые клиенты контроллеров: канал записей данных остается
// открытым на все время жизни сессии.
type ConnectionManager interface {
	CreateConnection(req models.ConnectionRequest) (*models.ConnectionInfo, error)
	RestoreConnection(controller entities.GalilController) (*models.ConnectionInfo, error)
	GetConnection(sessionID string) (*models.ConnectionInfo, bool)
	GetClient(sessionID string) (*galil.Client, error)
	GetAllConnections() []*models.ConnectionInfo
	DeleteConnection(sessionID string) error
	CheckConnection(sessionID string) (*models.ConnectionInfo, error)
}

// PollingManager определяет контракт для сервиса, публикующего сводки
// состояния контроллеров.
type PollingManager interface {
	StartPolling(conn *models.ConnectionInfo, interval time.Duration) error
	StopPolling(sessionID string) error
	IsPollingActive(sessionID string) bool
}
