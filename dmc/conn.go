package dmc

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"time"

	"go.bug.st/serial"
)

// Conn - транспортная граница контроллера. Установка и восстановление
// соединения - ответственность вызывающей стороны; контроллер лишь
// читает записи и отправляет команды.
//
// Команды идут fire-and-forget: контроллер подтверждает принятую команду
// символом ':' и отвергает символом '?'; завершение операции выводится
// только из последующих записей данных.
type Conn interface {
	// ReadRecord блокируется до прихода следующей записи данных и
	// возвращает число прочитанных байт.
	ReadRecord(buf []byte) (int, error)
	// Send отправляет ASCII-команду и проверяет подтверждение.
	Send(cmd string) error
	// SendResponse отправляет команду и возвращает текст ответа до ':'.
	SendResponse(cmd string) (string, error)
	// SetRecordRate задает период записи данных в миллисекундах.
	SetRecordRate(periodMs int) error
	Close() error
}

// TCPConn - транспорт по Ethernet: командный канал TCP (порт 23) и
// приём записей DR по UDP.
type TCPConn struct {
	cmd    net.Conn
	cmdRd  *bufio.Reader
	rec    *net.UDPConn
	closed bool
}

// DialTCP открывает командный канал к контроллеру и UDP-сокет для записей
// DR. address - "IP:PORT" командного канала.
func DialTCP(address string, timeout time.Duration) (*TCPConn, error) {
	cmd, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}
	rec, err := net.ListenUDP("udp", &net.UDPAddr{})
	if err != nil {
		cmd.Close()
		return nil, fmt.Errorf("listen for data records: %w", err)
	}
	c := &TCPConn{cmd: cmd, cmdRd: bufio.NewReader(cmd), rec: rec}

	// Подписка на записи DR: контроллеру сообщается UDP-порт приёмника,
	// на который направляется поток записей.
	port := rec.LocalAddr().(*net.UDPAddr).Port
	if err := c.Send(fmt.Sprintf("IHC=>%d<255>2", port)); err != nil {
		c.Close()
		return nil, fmt.Errorf("subscribe to data records: %w", err)
	}
	return c, nil
}

// ReadRecord принимает одну UDP-датаграмму с записью данных.
func (c *TCPConn) ReadRecord(buf []byte) (int, error) {
	n, _, err := c.rec.ReadFromUDP(buf)
	if err != nil {
		return 0, fmt.Errorf("read data record: %w", err)
	}
	return n, nil
}

// Send отправляет команду и ждет подтверждения ':'.
func (c *TCPConn) Send(cmd string) error {
	_, err := c.readReply(cmd)
	return err
}

// SendResponse отправляет команду и возвращает текст ответа.
func (c *TCPConn) SendResponse(cmd string) (string, error) {
	return c.readReply(cmd)
}

// SetRecordRate задает период записей DR.
func (c *TCPConn) SetRecordRate(periodMs int) error {
	return c.Send(fmt.Sprintf("DR %d", periodMs))
}

func (c *TCPConn) readReply(cmd string) (string, error) {
	if c.closed {
		return "", ErrNotConnected
	}
	if _, err := c.cmd.Write([]byte(cmd + "\r")); err != nil {
		return "", fmt.Errorf("send %q: %w", cmd, err)
	}
	var b strings.Builder
	for {
		ch, err := c.cmdRd.ReadByte()
		if err != nil {
			return "", fmt.Errorf("reply to %q: %w", cmd, err)
		}
		switch ch {
		case ':':
			return strings.TrimSpace(b.String()), nil
		case '?':
			return "", fmt.Errorf("command %q rejected by controller", cmd)
		default:
			b.WriteByte(ch)
		}
	}
}

func (c *TCPConn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.rec.Close()
	return c.cmd.Close()
}

// SerialConn - транспорт по RS-232. Записи данных по последовательному
// каналу не рассылаются самим контроллером; вместо этого каждая запись
// запрашивается командой QR и читается фиксированной длины.
type SerialConn struct {
	port       serial.Port
	rd         *bufio.Reader
	recordSize int
}

// DialSerial открывает последовательный порт. recordSize - полная длина
// записи данных для сконфигурированной модели (профиль + число каналов).
func DialSerial(device string, baud int, recordSize int) (*SerialConn, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	return &SerialConn{port: port, rd: bufio.NewReader(port), recordSize: recordSize}, nil
}

// ReadRecord запрашивает очередную запись командой QR и читает её целиком.
func (c *SerialConn) ReadRecord(buf []byte) (int, error) {
	if len(buf) < c.recordSize {
		return 0, fmt.Errorf("record buffer too small: %d < %d", len(buf), c.recordSize)
	}
	if _, err := c.port.Write([]byte("QR\r")); err != nil {
		return 0, fmt.Errorf("request data record: %w", err)
	}
	read := 0
	for read < c.recordSize {
		n, err := c.rd.Read(buf[read:c.recordSize])
		if err != nil {
			return read, fmt.Errorf("read data record: %w", err)
		}
		read += n
	}
	return read, nil
}

func (c *SerialConn) Send(cmd string) error {
	_, err := c.readReply(cmd)
	return err
}

func (c *SerialConn) SendResponse(cmd string) (string, error) {
	return c.readReply(cmd)
}

// SetRecordRate для последовательного канала не требуется: темп задает
// сам опрос командой QR.
func (c *SerialConn) SetRecordRate(periodMs int) error { return nil }

func (c *SerialConn) readReply(cmd string) (string, error) {
	if _, err := c.port.Write([]byte(cmd + "\r")); err != nil {
		return "", fmt.Errorf("send %q: %w", cmd, err)
	}
	var b strings.Builder
	for {
		ch, err := c.rd.ReadByte()
		if err != nil {
			return "", fmt.Errorf("reply to %q: %w", cmd, err)
		}
		switch ch {
		case ':':
			return strings.TrimSpace(b.String()), nil
		case '?':
			return "", fmt.Errorf("command %q rejected by controller", cmd)
		default:
			b.WriteByte(ch)
		}
	}
}

func (c *SerialConn) Close() error { return c.port.Close() }
