package dmc

import (
	"strconv"
	"strings"
)

// Командные мнемоники Galil. Каждая дополняется либо списком букв осей
// ("BG ABC"), либо позиционным списком значений ("SP 1000,,500").
const (
	CmdEnablePower  = "SH "
	CmdDisablePower = "MO "
	CmdStop         = "ST "
	CmdBegin        = "BG "
	CmdAfterMotion  = "AM "
	CmdMoveAbsolute = "PA "
	CmdMoveRelative = "PR "
	CmdJog          = "JG "
	CmdSpeed        = "SP "
	CmdAccel        = "AC "
	CmdDecel        = "DC "
	CmdHome         = "HM "
	CmdFindEdge     = "FE "
	CmdFindIndex    = "FI "
	CmdDefinePos    = "DP "
	CmdLimitDisable = "LD "
	CmdUserData     = "ZA "
	CmdAbortProgram = "AB"
	CmdAbortMotion  = "AB 1"
)

// AxisListCommand строит команду со списком осей, например "BG ABC".
func AxisListCommand(cmd string, axes string) string {
	return cmd + axes
}

// SparseValueListCommand строит команду с позиционным списком значений:
// по одному слоту на аппаратный канал 0..channelCount-1, через запятую.
// Для каналов с valid[k]=false слот остается пустым, чтобы не сдвигать
// позиции последующих каналов: синтаксис Galil привязывает значения к
// каналам по позиции, а не по имени. Значения уже в единицах устройства.
func SparseValueListCommand(cmd string, values []int32, valid []bool, channelCount int) string {
	var b strings.Builder
	b.WriteString(cmd)
	for hw := 0; hw < channelCount; hw++ {
		if hw > 0 {
			b.WriteByte(',')
		}
		if hw < len(valid) && valid[hw] {
			b.WriteString(strconv.FormatInt(int64(values[hw]), 10))
		}
	}
	return b.String()
}
