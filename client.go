package galil

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iwtcode/galilAdapter/dmc"
	"github.com/iwtcode/galilAdapter/dmc/model"
	"github.com/iwtcode/galilAdapter/models"
)

// Client является основной точкой входа для взаимодействия с библиотекой.
// Он устанавливает соединение с контроллером, выполняет стартовую
// последовательность и владеет циклом обработки записей данных.
type Client struct {
	controller *dmc.Controller
	conn       dmc.Conn
	config     *Config
	logger     *logrus.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New создает и возвращает новый экземпляр клиента.
// Эта функция устанавливает соединение и выполняет стартовую
// последовательность контроллера.
func New(cfg *Config) (*Client, error) {
	logger := logrus.New()

	if cfg.LogLevel == "off" || cfg.LogLevel == "none" {
		logger.SetOutput(io.Discard)
	} else {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)
		logger.SetOutput(os.Stdout)
	}

	// Настраиваем форматтер с понятным форматом времени
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	dmcCfg, err := dmc.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load controller configuration: %w", err)
	}
	if cfg.Model != 0 {
		dmcCfg.Model = cfg.Model
	}
	if cfg.DRPeriodMs != 0 {
		dmcCfg.DRPeriodMs = cfg.DRPeriodMs
	}

	conn, err := dial(cfg, dmcCfg)
	if err != nil {
		return nil, err
	}

	controller, err := dmc.NewController(dmcCfg, conn, logger)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}
	if err := controller.Startup(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("controller startup failed: %w", err)
	}

	return &Client{
		controller: controller,
		conn:       conn,
		config:     cfg,
		logger:     logger,
	}, nil
}

// dial выбирает транспорт: Ethernet, если задан адрес, иначе RS-232.
func dial(cfg *Config, dmcCfg *dmc.Config) (dmc.Conn, error) {
	if cfg.Address != "" {
		conn, err := dmc.DialTCP(cfg.Address, time.Duration(cfg.TimeoutMs)*time.Millisecond)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Address, err)
		}
		return conn, nil
	}
	if cfg.SerialPort == "" {
		return nil, fmt.Errorf("neither GALIL_ADDRESS nor GALIL_SERIAL_PORT is set")
	}
	// Последовательный транспорт читает записи фиксированной длины,
	// поэтому автоопределение модели здесь недоступно.
	if dmcCfg.Model == 0 {
		return nil, fmt.Errorf("model must be configured for a serial connection")
	}
	p, err := model.Lookup(dmcCfg.Model)
	if err != nil {
		return nil, err
	}
	mapping, err := dmc.BuildAxisMapping(dmcCfg.Channels())
	if err != nil {
		return nil, err
	}
	conn, err := dmc.DialSerial(cfg.SerialPort, cfg.Baud, p.MinRecordSize(mapping.ChannelCount()))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.SerialPort, err)
	}
	return conn, nil
}

// Start запускает цикл обработки записей данных в отдельной горутине.
func (c *Client) Start() {
	if c.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	go func() {
		defer close(c.done)
		c.controller.Run(ctx)
	}()
}

// Close останавливает цикл обработки и закрывает соединение с контроллером.
func (c *Client) Close() {
	if c.cancel != nil {
		c.cancel()
		<-c.done
		c.cancel = nil
	}
	if c.conn != nil {
		c.conn.Close()
	}
}

// GetLogger возвращает используемый логгер.
func (c *Client) GetLogger() *logrus.Logger {
	return c.logger
}

// Controller возвращает низкоуровневый контроллер.
func (c *Client) Controller() *dmc.Controller {
	return c.controller
}

// GetCurrentData возвращает сводку состояния контроллера за последний цикл.
func (c *Client) GetCurrentData() *models.ControllerData {
	return &models.ControllerData{
		Timestamp: time.Now().UTC(),
		Snapshot:  c.controller.Snapshot(),
	}
}

// EnableMotorPower включает усилители всех осей.
func (c *Client) EnableMotorPower() error { return c.controller.EnableMotorPower() }

// DisableMotorPower останавливает движение и выключает усилители.
func (c *Client) DisableMotorPower() error { return c.controller.DisableMotorPower() }

// MoveAbsolute задает абсолютные целевые позиции осей и начинает движение.
func (c *Client) MoveAbsolute(goal []float64) error { return c.controller.ServoJP(goal) }

// MoveRelative задает относительные перемещения осей и начинает движение.
func (c *Client) MoveRelative(goal []float64) error { return c.controller.ServoJR(goal) }

// Jog задает скорости джоггинга осей и начинает движение.
func (c *Client) Jog(goal []float64) error { return c.controller.ServoJV(goal) }

// Hold останавливает движение без снятия питания.
func (c *Client) Hold() error { return c.controller.Hold() }

// SetSpeed задает скорость движения по осям.
func (c *Client) SetSpeed(spd []float64) error { return c.controller.SetSpeed(spd) }

// SetAccel задает ускорение по осям.
func (c *Client) SetAccel(accel []float64) error { return c.controller.SetAccel(accel) }

// SetDecel задает замедление по осям.
func (c *Client) SetDecel(decel []float64) error { return c.controller.SetDecel(decel) }

// Home запускает хоуминг выбранных осей.
func (c *Client) Home(mask []bool) error { return c.controller.Home(mask) }

// UnHome снимает признак приведения с выбранных осей.
func (c *Client) UnHome(mask []bool) error { return c.controller.UnHome(mask) }

// FindEdge выполняет поиск фронта датчика дома для выбранных осей.
func (c *Client) FindEdge(mask []bool) error { return c.controller.FindEdge(mask) }

// FindIndex выполняет поиск индексной метки энкодера для выбранных осей.
func (c *Client) FindIndex(mask []bool) error { return c.controller.FindIndex(mask) }

// SetHomePosition переопределяет текущую позицию осей без движения.
func (c *Client) SetHomePosition(pos []float64) error { return c.controller.SetHomePosition(pos) }

// AbortProgram прерывает выполнение программы контроллера.
func (c *Client) AbortProgram() error { return c.controller.AbortProgram() }

// AbortMotion прерывает движение, не прерывая программу.
func (c *Client) AbortMotion() error { return c.controller.AbortMotion() }

// SendCommand отправляет произвольную ASCII-команду контроллеру.
func (c *Client) SendCommand(cmd string) error { return c.controller.SendCommand(cmd) }

// SendCommandRet отправляет произвольную команду и возвращает текст ответа.
func (c *Client) SendCommandRet(cmd string) (string, error) {
	return c.controller.SendCommandRet(cmd)
}
