package galil

import (
	"os"
	"strconv"
)

// Config хранит модель конфигурации библиотеки
type Config struct {
	// Address - адрес командного канала контроллера ("IP:PORT").
	Address string
	// SerialPort и Baud используются, когда Ethernet-адрес не задан.
	SerialPort string
	Baud       int
	TimeoutMs  int32
	// Model - номер модели DMC; 0 означает автоопределение.
	Model uint32
	// DRPeriodMs переопределяет период записи данных из файла конфигурации.
	DRPeriodMs int
	// ConfigPath - путь к JSON-файлу с описанием робота и осей.
	ConfigPath string
	LogLevel   string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	address := os.Getenv("GALIL_ADDRESS")

	serialPort := os.Getenv("GALIL_SERIAL_PORT")
	baudStr := os.Getenv("GALIL_BAUD")
	baud, err := strconv.Atoi(baudStr)
	if err != nil || baud == 0 {
		baud = 115200
	}

	timeoutStr := os.Getenv("GALIL_TIMEOUT")
	timeout, err := strconv.ParseInt(timeoutStr, 10, 32)
	if err != nil || timeout == 0 {
		timeout = 5000
	}

	modelStr := os.Getenv("GALIL_MODEL")
	model, err := strconv.ParseUint(modelStr, 10, 32)
	if err != nil {
		model = 0
	}

	periodStr := os.Getenv("GALIL_DR_PERIOD_MS")
	period, err := strconv.Atoi(periodStr)
	if err != nil || period < 0 {
		period = 0
	}

	configPath := os.Getenv("GALIL_CONFIG")
	if configPath == "" {
		configPath = "galil.json"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Address:    address,
		SerialPort: serialPort,
		Baud:       baud,
		TimeoutMs:  int32(timeout),
		Model:      uint32(model),
		DRPeriodMs: period,
		ConfigPath: configPath,
		LogLevel:   logLevel,
	}
}
