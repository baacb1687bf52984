package galil_controller

import (
	"github.com/iwtcode/galilAdapter/internal/domain/entities"
	"gorm.io/gorm"
)

func (r *GalilControllerRepositoryImpl) Create(controller *entities.GalilController) error {
	return r.db.Create(controller).Error
}

func (r *GalilControllerRepositoryImpl) GetByEndpoint(endpointURL string) (*entities.GalilController, error) {
	var controller entities.GalilController
	err := r.db.Where("endpoint_url = ?", endpointURL).First(&controller).Error
	if err != nil {
		return nil, err
	}
	return &controller, nil
}

// UpdatePollingState обновляет статус и интервал опроса
func (r *GalilControllerRepositoryImpl) UpdatePollingState(sessionID, status string, interval int) error {
	updates := map[string]interface{}{
		"status":   status,
		"interval": interval,
	}
	result := r.db.Model(&entities.GalilController{}).Where("session_id = ?", sessionID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GalilControllerRepositoryImpl) Delete(sessionID string) error {
	result := r.db.Where("session_id = ?", sessionID).Delete(&entities.GalilController{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GalilControllerRepositoryImpl) GetBySessionID(sessionID string) (*entities.GalilController, error) {
	var controller entities.GalilController
	err := r.db.Where("session_id = ?", sessionID).First(&controller).Error
	if err != nil {
		return nil, err
	}
	return &controller, nil
}

// GetAll возвращает все сохраненные контроллеры
func (r *GalilControllerRepositoryImpl) GetAll() ([]entities.GalilController, error) {
	var controllers []entities.GalilController
	if err := r.db.Find(&controllers).Error; err != nil {
		return nil, err
	}
	return controllers, nil
}
