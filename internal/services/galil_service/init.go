package galil_service

import (
	"time"

	galil "github.com/iwtcode/galilAdapter"
	"github.com/iwtcode/galilAdapter/internal/domain/entities"
	"github.com/iwtcode/galilAdapter/internal/domain/models"
	"github.com/iwtcode/galilAdapter/internal/interfaces"
	"github.com/iwtcode/galilAdapter/internal/middleware/logging"
)

type galilService struct {
	connMgr *ConnectionManager
	pollMgr *PollingManager
}

func NewGalilService(cfg ServiceConfig, repo interfaces.GalilControllerRepository, producer interfaces.KafkaService, logger *logging.Logger) interfaces.GalilService {
	pollingManager := NewPollingManager(repo, producer, logger)
	connectionManager := NewConnectionManager(cfg, pollingManager, repo, logger)
	pollingManager.clients = connectionManager

	return &galilService{
		connMgr: connectionManager,
		pollMgr: pollingManager,
	}
}

// --- Реализация методов интерфейса GalilService ---

func (s *galilService) CreateConnection(req models.ConnectionRequest) (*models.ConnectionInfo, error) {
	return s.connMgr.CreateConnection(req)
}

func (s *galilService) RestoreConnection(controller entities.GalilController) (*models.ConnectionInfo, error) {
	return s.connMgr.RestoreConnection(controller)
}

func (s *galilService) GetConnection(sessionID string) (*models.ConnectionInfo, bool) {
	return s.connMgr.GetConnection(sessionID)
}

func (s *galilService) GetClient(sessionID string) (*galil.Client, error) {
	return s.connMgr.GetClient(sessionID)
}

func (s *galilService) GetAllConnections() []*models.ConnectionInfo {
	return s.connMgr.GetAllConnections()
}

func (s *galilService) DeleteConnection(sessionID string) error {
	return s.connMgr.DeleteConnection(sessionID)
}

func (s *galilService) CheckConnection(sessionID string) (*models.ConnectionInfo, error) {
	return s.connMgr.CheckConnection(sessionID)
}

func (s *galilService) StartPolling(conn *models.ConnectionInfo, interval time.Duration) error {
	return s.pollMgr.StartPolling(conn, interval)
}

func (s *galilService) StopPolling(sessionID string) error {
	return s.pollMgr.StopPolling(sessionID)
}

func (s *galilService) IsPollingActive(sessionID string) bool {
	return s.pollMgr.IsPollingActive(sessionID)
}
