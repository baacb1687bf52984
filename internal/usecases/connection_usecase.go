package usecases

import (
	"fmt"
	"time"

	"github.com/iwtcode/galilAdapter/internal/domain/entities"
	"github.com/iwtcode/galilAdapter/internal/domain/models"
	"github.com/iwtcode/galilAdapter/internal/interfaces"
)

type Usecase struct {
	galilSvc interfaces.GalilService
}

func NewUsecase(galilSvc interfaces.GalilService) interfaces.Usecases {
	return &Usecase{
		galilSvc: galilSvc,
	}
}

func (u *Usecase) CreateConnection(req models.ConnectionRequest) (*models.ConnectionInfo, error) {
	return u.galilSvc.CreateConnection(req)
}

func (u *Usecase) RestoreConnection(controller entities.GalilController) (*models.ConnectionInfo, error) {
	return u.galilSvc.RestoreConnection(controller)
}

func (u *Usecase) GetAllConnections() []*models.ConnectionInfo {
	return u.galilSvc.GetAllConnections()
}

func (u *Usecase) DeleteConnection(sessionID string) error {
	return u.galilSvc.DeleteConnection(sessionID)
}

func (u *Usecase) CheckConnection(sessionID string) (*models.ConnectionInfo, error) {
	return u.galilSvc.CheckConnection(sessionID)
}

func (u *Usecase) StartPolling(sessionID string, interval time.Duration) error {
	conn, found := u.galilSvc.GetConnection(sessionID)
	if !found {
		return fmt.Errorf("не удалось запустить опрос: сессия '%s' не найдена в активном пуле", sessionID)
	}
	return u.galilSvc.StartPolling(conn, interval)
}

func (u *Usecase) StopPolling(sessionID string) error {
	return u.galilSvc.StopPolling(sessionID)
}
