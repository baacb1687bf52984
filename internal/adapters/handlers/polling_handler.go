package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/iwtcode/galilAdapter/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// StartPolling запускает периодическую публикацию снимков состояния
// контроллера Galil в Kafka для указанного подключения.
// @Summary Запустить опрос контроллера
// @Description Запускает периодическую отправку снимков состояния осей контроллера по SessionID с заданным интервалом.
// @Tags Polling
// @Accept json
// @Produce json
// @Param input body models.PollingRequest true "Параметры для запуска опроса"
// @Success 200 {object} models.MessageResponse "Сообщение об успешном запуске"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /polling/start [post]
func (h *Handler) StartPolling(c *gin.Context) {
	var req models.PollingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	duration := time.Duration(req.Interval) * time.Millisecond
	h.logger.Info("Starting controller state polling", "sessionID", req.SessionID, "interval", duration)

	if err := h.usecase.StartPolling(req.SessionID, duration); err != nil {
		h.InternalError(c, err)
		return
	}

	h.logger.Info("Controller state polling started", "sessionID", req.SessionID)
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": fmt.Sprintf("Polling started for session %s", req.SessionID),
	})
}

// StopPolling останавливает публикацию снимков состояния контроллера
// для указанного подключения.
// @Summary Остановить опрос контроллера
// @Description Останавливает отправку снимков состояния осей для подключения по SessionID.
// @Tags Polling
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии для остановки опроса"
// @Success 200 {object} models.MessageResponse "Сообщение об успешной остановке"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /polling/stop [post]
func (h *Handler) StopPolling(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	h.logger.Info("Stopping controller state polling", "sessionID", req.SessionID)

	if err := h.usecase.StopPolling(req.SessionID); err != nil {
		h.InternalError(c, err)
		return
	}

	h.logger.Info("Controller state polling stopped", "sessionID", req.SessionID)
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": fmt.Sprintf("Polling stopped for session %s", req.SessionID),
	})
}
