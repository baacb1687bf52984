package usecases

import (
	"github.com/iwtcode/galilAdapter/internal/domain/models"
)

// GetState возвращает сводку состояния контроллера за последний цикл.
func (u *Usecase) GetState(sessionID string) (*models.ControllerDataKafka, error) {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return nil, err
	}
	conn, _ := u.galilSvc.GetConnection(sessionID)
	data := client.GetCurrentData()
	payload := &models.ControllerDataKafka{
		SessionID: sessionID,
		Timestamp: data.Timestamp,
		Snapshot:  data.Snapshot,
	}
	if conn != nil {
		payload.Endpoint = conn.Endpoint
	}
	return payload, nil
}

// EnableMotorPower включает усилители всех осей контроллера сессии.
func (u *Usecase) EnableMotorPower(sessionID string) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.EnableMotorPower()
}

// DisableMotorPower останавливает движение и выключает усилители.
func (u *Usecase) DisableMotorPower(sessionID string) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.DisableMotorPower()
}

// MoveAbsolute задает абсолютные целевые позиции осей и начинает движение.
func (u *Usecase) MoveAbsolute(sessionID string, goal []float64) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.MoveAbsolute(goal)
}

// MoveRelative задает относительные перемещения осей и начинает движение.
func (u *Usecase) MoveRelative(sessionID string, goal []float64) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.MoveRelative(goal)
}

// Jog задает скорости джоггинга осей и начинает движение.
func (u *Usecase) Jog(sessionID string, goal []float64) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.Jog(goal)
}

// Hold останавливает движение без снятия питания.
func (u *Usecase) Hold(sessionID string) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.Hold()
}

// SetSpeed задает скорость движения по осям.
func (u *Usecase) SetSpeed(sessionID string, values []float64) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.SetSpeed(values)
}

// SetAccel задает ускорение по осям.
func (u *Usecase) SetAccel(sessionID string, values []float64) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.SetAccel(values)
}

// SetDecel задает замедление по осям.
func (u *Usecase) SetDecel(sessionID string, values []float64) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.SetDecel(values)
}

// SetHomePosition переопределяет текущую позицию осей без движения.
func (u *Usecase) SetHomePosition(sessionID string, pos []float64) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.SetHomePosition(pos)
}

// Home запускает хоуминг выбранных осей.
func (u *Usecase) Home(sessionID string, axes []bool) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.Home(axes)
}

// UnHome снимает признак приведения с выбранных осей.
func (u *Usecase) UnHome(sessionID string, axes []bool) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.UnHome(axes)
}

// FindEdge выполняет поиск фронта датчика дома для выбранных осей.
func (u *Usecase) FindEdge(sessionID string, axes []bool) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.FindEdge(axes)
}

// FindIndex выполняет поиск индексной метки энкодера для выбранных осей.
func (u *Usecase) FindIndex(sessionID string, axes []bool) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.FindIndex(axes)
}

// AbortMotion прерывает движение всех осей контроллера.
func (u *Usecase) AbortMotion(sessionID string) error {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return err
	}
	return client.AbortMotion()
}

// SendCommand отправляет произвольную ASCII-команду и возвращает ответ.
func (u *Usecase) SendCommand(sessionID, command string) (string, error) {
	client, err := u.galilSvc.GetClient(sessionID)
	if err != nil {
		return "", err
	}
	return client.SendCommandRet(command)
}
