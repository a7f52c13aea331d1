package utils

import "time"

// MonthLayout é o formato usado para agrupar metas, bônus e receitas por mês
const MonthLayout = "2006-01"

// MonthKey retorna o mês de t no formato YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// SameMonth indica se a e b pertencem ao mesmo mês civil no fuso de ref
func SameMonth(a, ref time.Time) bool {
	a = a.In(ref.Location())
	return a.Year() == ref.Year() && a.Month() == ref.Month()
}

// SameYear indica se a pertence ao mesmo ano civil de ref
func SameYear(a, ref time.Time) bool {
	return a.In(ref.Location()).Year() == ref.Year()
}

// NormalizeMonth aceita YYYY-MM ou YYYY-MM-DD e devolve YYYY-MM; vazio se inválido
func NormalizeMonth(s string) string {
	if t, err := time.Parse(MonthLayout, s); err == nil {
		return MonthKey(t)
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return MonthKey(t)
	}
	return ""
}
