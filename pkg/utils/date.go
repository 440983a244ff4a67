package utils

import "time"

// StartOfDay trunca o horário para meia-noite no fuso informado
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// Yesterday devolve o dia alvo das rotinas diárias: ontem, à meia-noite
func Yesterday(now time.Time, loc *time.Location) time.Time {
	return StartOfDay(now, loc).AddDate(0, 0, -1)
}

// TrailingWindow devolve o início de uma janela de `days` dias que termina em `day` (inclusive)
func TrailingWindow(day time.Time, days int) (time.Time, time.Time) {
	if days < 1 {
		days = 1
	}
	return day.AddDate(0, 0, -(days - 1)), day
}
