package galil_service

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	galil "github.com/iwtcode/galilAdapter"
	"github.com/iwtcode/galilAdapter/internal/domain/entities"
	"github.com/iwtcode/galilAdapter/internal/domain/models"
	"github.com/iwtcode/galilAdapter/internal/interfaces"
	"github.com/iwtcode/galilAdapter/internal/middleware/logging"
)

// ServiceConfig содержит настройки сервиса, влияющие на подключения.
type ServiceConfig struct {
	// DefaultConfigPath - JSON-файл описания робота, если запрос не
	// указал свой.
	DefaultConfigPath string
	// LogLevel передается клиентам контроллеров.
	LogLevel string
}

// PollingStarter определяет методы, которые ConnectionManager может вызывать у PollingManager.
type PollingStarter interface {
	StopPollingForMachine(sessionID string)
}

type ConnectionManager struct {
	mu         sync.RWMutex
	cfg        ServiceConfig
	pool       map[string]*models.ConnectionInfo
	clients    map[string]*galil.Client
	pollingMgr PollingStarter // Используем интерфейс
	dbRepo     interfaces.GalilControllerRepository
	logger     *logging.Logger
}

func NewConnectionManager(cfg ServiceConfig, pollingMgr PollingStarter, dbRepo interfaces.GalilControllerRepository, logger *logging.Logger) *ConnectionManager {
	return &ConnectionManager{
		cfg:        cfg,
		pool:       make(map[string]*models.ConnectionInfo),
		clients:    make(map[string]*galil.Client),
		pollingMgr: pollingMgr,
		dbRepo:     dbRepo,
		logger:     logger.WithPrefix("CONNECTOR"),
	}
}

func (cm *ConnectionManager) CreateConnection(req models.ConnectionRequest) (*models.ConnectionInfo, error) {
	_, _, err := net.SplitHostPort(req.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("неверный формат endpoint_url. Ожидается 'IP:PORT', получено '%s'", req.EndpointURL)
	}

	existingDB, err := cm.dbRepo.GetByEndpoint(req.EndpointURL)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("ошибка при проверке контроллера в БД: %w", err)
	}
	if existingDB != nil {
		cm.mu.RLock()
		_, exists := cm.pool[existingDB.SessionID]
		cm.mu.RUnlock()
		if exists {
			return nil, fmt.Errorf("подключение для '%s' уже активно с SessionID: %s", req.EndpointURL, existingDB.SessionID)
		}
		cm.logger.Warn("Connection for endpoint exists in DB but not in pool. Deleting old DB record and creating a new session.", "endpoint", req.EndpointURL)
		_ = cm.dbRepo.Delete(existingDB.SessionID)
	}

	configPath := req.ConfigPath
	if configPath == "" {
		configPath = cm.cfg.DefaultConfigPath
	}

	client, err := cm.openClient(req.EndpointURL, configPath, req.Model)
	if err != nil {
		return nil, fmt.Errorf("первичное подключение к контроллеру провалено: %w", err)
	}

	sessionID := uuid.New().String()
	controllerToSave := &entities.GalilController{
		SessionID:   sessionID,
		EndpointURL: req.EndpointURL,
		ConfigPath:  configPath,
		Model:       req.Model,
		Status:      entities.StatusConnected,
	}
	if err := cm.dbRepo.Create(controllerToSave); err != nil {
		client.Close()
		return nil, fmt.Errorf("не удалось сохранить новое подключение %s в БД: %w", sessionID, err)
	}

	connInfo := &models.ConnectionInfo{
		SessionID: sessionID,
		Endpoint:  req.EndpointURL,
		CreatedAt: time.Now(),
		LastUsed:  time.Now(),
		UseCount:  1,
		IsHealthy: true,
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.pool[sessionID] = connInfo
	cm.clients[sessionID] = client

	cm.logger.Info("Connection created successfully", "sessionID", sessionID, "endpoint", req.EndpointURL)
	return connInfo, nil
}

func (cm *ConnectionManager) RestoreConnection(controller entities.GalilController) (*models.ConnectionInfo, error) {
	connInfo := &models.ConnectionInfo{
		SessionID: controller.SessionID,
		Endpoint:  controller.EndpointURL,
		CreatedAt: controller.CreatedAt,
		LastUsed:  time.Now(),
		IsHealthy: false, // По умолчанию нездоровое, пока не проверим
	}

	client, err := cm.openClient(controller.EndpointURL, controller.ConfigPath, controller.Model)
	connInfo.IsHealthy = (err == nil)

	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.pool[controller.SessionID] = connInfo
	if client != nil {
		cm.clients[controller.SessionID] = client
	}

	return connInfo, nil
}

func (cm *ConnectionManager) GetConnection(sessionID string) (*models.ConnectionInfo, bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	conn, found := cm.pool[sessionID]
	return conn, found
}

// GetClient возвращает живого клиента контроллера по сессии.
func (cm *ConnectionManager) GetClient(sessionID string) (*galil.Client, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	client, found := cm.clients[sessionID]
	if !found {
		return nil, fmt.Errorf("сессия '%s' не найдена в активном пуле", sessionID)
	}
	return client, nil
}

func (cm *ConnectionManager) GetAllConnections() []*models.ConnectionInfo {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	conns := make([]*models.ConnectionInfo, 0, len(cm.pool))
	for _, conn := range cm.pool {
		conns = append(conns, conn)
	}
	return conns
}

func (cm *ConnectionManager) DeleteConnection(sessionID string) error {
	// Сначала останавливаем опрос, если он был
	cm.pollingMgr.StopPollingForMachine(sessionID)

	cm.mu.Lock()
	defer cm.mu.Unlock()

	if _, exists := cm.pool[sessionID]; !exists {
		err := cm.dbRepo.Delete(sessionID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return fmt.Errorf("ошибка удаления сессии '%s' из БД: %w", sessionID, err)
		}
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("сессия '%s' не найдена ни в активном пуле, ни в БД", sessionID)
		}
		cm.logger.Info("Session (not in pool) successfully deleted from DB.", "sessionID", sessionID)
		return nil
	}

	if client, ok := cm.clients[sessionID]; ok {
		client.Close()
		delete(cm.clients, sessionID)
	}
	delete(cm.pool, sessionID)

	if err := cm.dbRepo.Delete(sessionID); err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("ошибка удаления сессии '%s' из БД: %w", sessionID, err)
	}

	cm.logger.Info("Session deleted successfully.", "sessionID", sessionID)
	return nil
}

func (cm *ConnectionManager) CheckConnection(sessionID string) (*models.ConnectionInfo, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	conn, exists := cm.pool[sessionID]
	if !exists {
		return nil, fmt.Errorf("сессия '%s' не найдена", sessionID)
	}

	previousHealth := conn.IsHealthy
	err := cm.checkControllerConnection(sessionID)
	conn.IsHealthy = (err == nil)
	conn.LastUsed = time.Now()
	conn.UseCount++

	if previousHealth != conn.IsHealthy {
		cm.logger.Info("Session health status changed", "sessionID", sessionID, "from", previousHealth, "to", conn.IsHealthy)
	}

	return conn, err
}

// openClient устанавливает соединение с контроллером и запускает цикл
// обработки записей данных.
func (cm *ConnectionManager) openClient(endpoint, configPath string, model uint32) (*galil.Client, error) {
	client, err := galil.New(&galil.Config{
		Address:    endpoint,
		TimeoutMs:  5000,
		Model:      model,
		ConfigPath: configPath,
		LogLevel:   cm.cfg.LogLevel,
	})
	if err != nil {
		return nil, err
	}
	client.Start()
	return client, nil
}

// checkControllerConnection опрашивает контроллер тривиальной командой.
func (cm *ConnectionManager) checkControllerConnection(sessionID string) error {
	client, ok := cm.clients[sessionID]
	if !ok {
		return fmt.Errorf("клиент для сессии '%s' отсутствует", sessionID)
	}
	_, err := client.SendCommandRet("MG TIME")
	return err
}
