package galil_controller

import (
	"github.com/iwtcode/galilAdapter/internal/interfaces"
	"gorm.io/gorm"
)

type GalilControllerRepositoryImpl struct {
	db *gorm.DB
}

func NewGalilControllerRepository(db *gorm.DB) interfaces.GalilControllerRepository {
	return &GalilControllerRepositoryImpl{db: db}
}
