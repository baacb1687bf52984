package interfaces

import (
	"github.com/iwtcode/galilAdapter/internal/domain/entities"
)

// GalilControllerRepository определяет контракт для работы с сохраненными контроллерами в БД
type GalilControllerRepository interface {
	Create(controller *entities.GalilController) error
	GetByEndpoint(endpointURL string) (*entities.GalilController, error)
	UpdatePollingState(sessionID, status string, interval int) error
	Delete(sessionID string) error
	GetBySessionID(sessionID string) (*entities.GalilController, error)
	GetAll() ([]entities.GalilController, error)
}
