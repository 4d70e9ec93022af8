// Package cli contém a formatação e a renderização da saída do simulador no terminal
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adiciona separadores de milhar a um inteiro.
// Ex.: 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCount formata contagens fracionárias do funil (clientes podem ser 79.5)
func FormatCount(v float64) string {
	if v == math.Trunc(v) || math.Abs(v) >= 1000 {
		return FormatNumber(int64(math.Round(v)))
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatDollars formata um valor em dólares
func FormatDollars(v float64) string {
	if v < 0 {
		return "-" + FormatDollars(-v)
	}
	if v >= 100 {
		return "$" + FormatNumber(int64(math.Round(v)))
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatMillions formata um valor já expresso em milhões de dólares
func FormatMillions(v float64) string {
	if v < 0 {
		return "-" + FormatMillions(-v)
	}
	if v >= 1000 {
		return fmt.Sprintf("$%.2fB", v/1000)
	}
	return fmt.Sprintf("$%.1fM", v)
}

// FormatFraction formata uma fração 0-1 como porcentagem
func FormatFraction(f float64) string {
	return FormatPercent(f * 100)
}

// FormatPercent formata um valor já em pontos percentuais
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatMultiple formata múltiplos e razões. Ex.: 3.24 -> "3.2x"
func FormatMultiple(v float64) string {
	return fmt.Sprintf("%.1fx", v)
}
