package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrEmptyDate = errors.New("data vazia")

// Formatos aceitos em datas digitadas, na ordem de tentativa
var inputDateLayouts = []string{
	"2006-1-2",
	"2.1.2006",
	"2006/1/2",
	"2/1/2006",
}

var dashReplacer = strings.NewReplacer(
	"‐", "-", // hífen
	"‑", "-", // hífen inseparável
	"‒", "-",
	"–", "-", // meia-risca
	"—", "-",
	"―", "-",
	"−", "-", // sinal de menos
)

// ParseDate lê uma data digitada pelo usuário. Só o primeiro termo separado por
// espaço conta, então "2025-03-01 10:00" vira 2025-03-01. O resultado é meia-noite UTC.
func ParseDate(dateStr string) (time.Time, error) {
	fields := strings.Fields(dashReplacer.Replace(dateStr))
	if len(fields) == 0 {
		return time.Time{}, ErrEmptyDate
	}

	for _, layout := range inputDateLayouts {
		if date, err := time.Parse(layout, fields[0]); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("data em formato não reconhecido: %q", fields[0])
}
