package usecases

import "github.com/iwtcode/galilAdapter/internal/interfaces"

// UseCases - агрегатор всех use case интерфейсов
type UseCases struct {
	interfaces.Usecases
}

// NewUsecases - конструктор для UseCases
func NewUsecases(
	galilSvc interfaces.GalilService,
) interfaces.Usecases {
	return NewUsecase(galilSvc)
}
