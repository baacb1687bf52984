package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	galil "github.com/iwtcode/galilAdapter"
	"github.com/joho/godotenv"
)

// runStep - обертка вокруг одной операции демонстрационного сценария.
// Подключение здесь не переоткрывается: поток записей данных контроллера
// живет все время работы клиента.
func runStep(name string, fn func() error) {
	log.Printf("--- Запуск шага: %s ---", name)

	if err := fn(); err != nil {
		log.Fatalf("Ошибка выполнения на шаге %s: %v", name, err)
	}

	log.Printf("--- Шаг %s выполнен успешно ---", name)
	fmt.Println("==================================================")
}

func main() {
	// 1) Загрузка конфигурации
	err := godotenv.Load("./.env")
	if err != nil {
		log.Printf("Warning: Could not load .env file. Using default values or environment variables: %v", err)
	}

	cfg := galil.Load()
	log.Printf("Конфигурация загружена: Address=%s, Model=%d, Timeout=%dms", cfg.Address, cfg.Model, cfg.TimeoutMs)

	// 2) Подключение и запуск фонового цикла чтения записей данных
	client, err := galil.New(cfg)
	if err != nil {
		log.Fatalf("Ошибка подключения к контроллеру: %v", err)
	}
	defer client.Close()

	client.Start()
	log.Println("Клиент запущен, поток записей данных активен.")

	// Даем контроллеру прислать первые записи
	time.Sleep(200 * time.Millisecond)

	// 3) Чтение текущего состояния осей
	runStep("ReadState", func() error {
		printAsJSON("ControllerData", client.GetCurrentData())
		return nil
	})

	// 4) Включение питания моторов
	runStep("EnableMotorPower", func() error {
		return client.EnableMotorPower()
	})

	// 5) Задание скорости и небольшое относительное перемещение первой оси
	runStep("MoveRelative", func() error {
		axisCount := len(client.GetCurrentData().Axes)
		if axisCount == 0 {
			return fmt.Errorf("контроллер не сообщил ни одной оси")
		}

		speed := make([]float64, axisCount)
		goal := make([]float64, axisCount)
		for i := range speed {
			speed[i] = 5.0
		}
		goal[0] = 1.0
		if err := client.SetSpeed(speed); err != nil {
			return err
		}
		if err := client.MoveRelative(goal); err != nil {
			return err
		}

		// Ждем завершения движения по сводке состояния
		deadline := time.Now().Add(30 * time.Second)
		for time.Now().Before(deadline) {
			data := client.GetCurrentData()
			if !data.Busy {
				return nil
			}
			time.Sleep(100 * time.Millisecond)
		}
		return fmt.Errorf("движение не завершилось за отведенное время")
	})

	// 6) Чтение состояния после перемещения
	runStep("ReadStateAfterMove", func() error {
		printAsJSON("ControllerData", client.GetCurrentData())
		return nil
	})

	// 7) Произвольная команда контроллеру
	runStep("QueryFirmware", func() error {
		resp, err := client.SendCommandRet("\x12\x16")
		if err != nil {
			log.Printf("Предупреждение: Не удалось прочитать версию прошивки: %v", err)
			return nil // Не считаем это фатальной ошибкой
		}
		log.Printf("Версия прошивки: %s", resp)
		return nil
	})

	// 8) Выключение питания моторов
	runStep("DisableMotorPower", func() error {
		return client.DisableMotorPower()
	})

	log.Println("Демонстрационный сценарий завершен.")
}

// printAsJSON форматирует данные в JSON и выводит в лог
func printAsJSON(name string, data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Printf("Ошибка маршалинга JSON для %s: %v", name, err)
		return
	}
	fmt.Printf("--- %s ---\n%s\n", name, string(jsonData))
}
