package handlers

import (
	"net/http"

	"github.com/iwtcode/galilAdapter/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GetState возвращает сводку состояния контроллера за последний цикл.
// @Summary Получить состояние осей
// @Description Возвращает позиции, скорости, флаги и агрегаты по осям контроллера сессии.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии"
// @Success 200 {object} models.StateResponse "Сводка состояния контроллера"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Router /axes/state [post]
func (h *Handler) GetState(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	data, err := h.usecase.GetState(req.SessionID)
	if err != nil {
		h.NotFound(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": data})
}

// EnableMotorPower включает усилители всех осей контроллера.
// @Summary Включить питание моторов
// @Description Включает усилители всех осей и снимает групповое прерывание.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии"
// @Success 200 {object} models.MessageResponse "Сообщение об успешном включении"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/power/enable [post]
func (h *Handler) EnableMotorPower(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	h.logger.Info("Enabling motor power", "sessionID", req.SessionID)

	if err := h.usecase.EnableMotorPower(req.SessionID); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Motor power enabled"})
}

// DisableMotorPower останавливает движение и выключает усилители.
// @Summary Выключить питание моторов
// @Description Останавливает движение всех осей и выключает усилители.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии"
// @Success 200 {object} models.MessageResponse "Сообщение об успешном выключении"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/power/disable [post]
func (h *Handler) DisableMotorPower(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	h.logger.Info("Disabling motor power", "sessionID", req.SessionID)

	if err := h.usecase.DisableMotorPower(req.SessionID); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Motor power disabled"})
}

// MoveAbsolute запускает движение осей в абсолютные позиции.
// @Summary Абсолютное перемещение
// @Description Задает абсолютные целевые позиции в инженерных единицах и начинает движение. Значение NaN пропускает ось.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.MoveRequest true "Целевые позиции по осям"
// @Success 200 {object} models.MessageResponse "Движение запущено"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/move [post]
func (h *Handler) MoveAbsolute(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Absolute move requested", "sessionID", req.SessionID, "goal", req.Goal)

	if err := h.usecase.MoveAbsolute(req.SessionID, req.Goal); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Absolute move started"})
}

// MoveRelative запускает относительное перемещение осей.
// @Summary Относительное перемещение
// @Description Задает относительные смещения в инженерных единицах и начинает движение. Значение NaN пропускает ось.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.MoveRequest true "Смещения по осям"
// @Success 200 {object} models.MessageResponse "Движение запущено"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/move/relative [post]
func (h *Handler) MoveRelative(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Relative move requested", "sessionID", req.SessionID, "goal", req.Goal)

	if err := h.usecase.MoveRelative(req.SessionID, req.Goal); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Relative move started"})
}

// Jog запускает движение осей с заданными скоростями.
// @Summary Джоггинг
// @Description Задает скорости движения в инженерных единицах в секунду и начинает движение. Значение NaN пропускает ось.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.MoveRequest true "Скорости по осям"
// @Success 200 {object} models.MessageResponse "Движение запущено"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/jog [post]
func (h *Handler) Jog(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Jog requested", "sessionID", req.SessionID, "goal", req.Goal)

	if err := h.usecase.Jog(req.SessionID, req.Goal); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Jog started"})
}

// Hold останавливает движение без снятия питания.
// @Summary Остановить движение
// @Description Плавно останавливает все оси, оставляя усилители включенными.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии"
// @Success 200 {object} models.MessageResponse "Движение остановлено"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/hold [post]
func (h *Handler) Hold(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	if err := h.usecase.Hold(req.SessionID); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Motion hold issued"})
}

// SetSpeed задает скорость движения по осям.
// @Summary Задать скорость
// @Description Задает скорость позиционных перемещений в инженерных единицах в секунду. Значение NaN пропускает ось.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.MoveRequest true "Скорости по осям"
// @Success 200 {object} models.MessageResponse "Скорость задана"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/speed [post]
func (h *Handler) SetSpeed(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	if err := h.usecase.SetSpeed(req.SessionID, req.Goal); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Speed set"})
}

// SetAccel задает ускорение по осям.
// @Summary Задать ускорение
// @Description Задает ускорение в инженерных единицах в секунду за секунду. Значение NaN пропускает ось.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.MoveRequest true "Ускорения по осям"
// @Success 200 {object} models.MessageResponse "Ускорение задано"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/accel [post]
func (h *Handler) SetAccel(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	if err := h.usecase.SetAccel(req.SessionID, req.Goal); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Acceleration set"})
}

// SetDecel задает замедление по осям.
// @Summary Задать замедление
// @Description Задает замедление в инженерных единицах в секунду за секунду. Значение NaN пропускает ось.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.MoveRequest true "Замедления по осям"
// @Success 200 {object} models.MessageResponse "Замедление задано"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/decel [post]
func (h *Handler) SetDecel(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	if err := h.usecase.SetDecel(req.SessionID, req.Goal); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Deceleration set"})
}

// Home запускает хоуминг выбранных осей.
// @Summary Запустить хоуминг
// @Description Запускает процедуру приведения выбранных осей к дому. Абсолютные оси из выбора исключаются.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.AxisMaskRequest true "Маска осей для хоуминга"
// @Success 200 {object} models.MessageResponse "Хоуминг запущен"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/home [post]
func (h *Handler) Home(c *gin.Context) {
	var req models.AxisMaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Homing requested", "sessionID", req.SessionID, "axes", req.Axes)

	if err := h.usecase.Home(req.SessionID, req.Axes); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Homing started"})
}

// UnHome снимает признак приведения с выбранных осей.
// @Summary Сбросить признак приведения
// @Description Снимает флаг homed с выбранных осей.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.AxisMaskRequest true "Маска осей"
// @Success 200 {object} models.MessageResponse "Признак приведения сброшен"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/unhome [post]
func (h *Handler) UnHome(c *gin.Context) {
	var req models.AxisMaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	if err := h.usecase.UnHome(req.SessionID, req.Axes); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Axes unhomed"})
}

// FindEdge запускает поиск фронта датчика дома.
// @Summary Поиск фронта датчика дома
// @Description Запускает движение выбранных осей до смены состояния датчика дома.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.AxisMaskRequest true "Маска осей"
// @Success 200 {object} models.MessageResponse "Поиск запущен"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/find-edge [post]
func (h *Handler) FindEdge(c *gin.Context) {
	var req models.AxisMaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	if err := h.usecase.FindEdge(req.SessionID, req.Axes); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Find edge started"})
}

// FindIndex запускает поиск индексной метки энкодера.
// @Summary Поиск индексной метки
// @Description Запускает движение выбранных осей до индексной метки энкодера.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.AxisMaskRequest true "Маска осей"
// @Success 200 {object} models.MessageResponse "Поиск запущен"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/find-index [post]
func (h *Handler) FindIndex(c *gin.Context) {
	var req models.AxisMaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	if err := h.usecase.FindIndex(req.SessionID, req.Axes); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Find index started"})
}

// SetHomePosition переопределяет текущую позицию осей без движения.
// @Summary Переопределить позицию
// @Description Объявляет текущее положение осей равным указанным значениям без движения. Значение NaN пропускает ось.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.MoveRequest true "Новые позиции по осям"
// @Success 200 {object} models.MessageResponse "Позиция переопределена"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/position [post]
func (h *Handler) SetHomePosition(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	if err := h.usecase.SetHomePosition(req.SessionID, req.Goal); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Position redefined"})
}

// AbortMotion прерывает движение всех осей.
// @Summary Прервать движение
// @Description Немедленно прерывает движение всех осей контроллера.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии"
// @Success 200 {object} models.MessageResponse "Движение прервано"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/abort [post]
func (h *Handler) AbortMotion(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	h.logger.Info("Abort requested", "sessionID", req.SessionID)

	if err := h.usecase.AbortMotion(req.SessionID); err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Motion aborted"})
}

// SendCommand отправляет произвольную ASCII-команду контроллеру.
// @Summary Отправить команду
// @Description Отправляет произвольную ASCII-команду языка DMC и возвращает ответ контроллера.
// @Tags Axes
// @Accept json
// @Produce json
// @Param input body models.CommandRequest true "Команда контроллеру"
// @Success 200 {object} models.CommandResponse "Ответ контроллера"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Контроллер отклонил команду"
// @Router /axes/command [post]
func (h *Handler) SendCommand(c *gin.Context) {
	var req models.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Raw command requested", "sessionID", req.SessionID, "command", req.Command)

	resp, err := h.usecase.SendCommand(req.SessionID, req.Command)
	if err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "response": resp})
}
