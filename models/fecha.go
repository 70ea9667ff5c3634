package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LayoutFecha es el formato de fecha usado en JSON y en los documentos
const LayoutFecha = "2006-01-02"

// Fecha representa una fecha de calendario sin hora (columna DATE)
type Fecha struct {
	time.Time
}

// NuevaFecha trunca t al día
func NuevaFecha(t time.Time) Fecha {
	y, m, d := t.Date()
	return Fecha{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseFecha interpreta una fecha en formato YYYY-MM-DD
func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse(LayoutFecha, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return Fecha{t}, nil
}

func (f Fecha) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Format(LayoutFecha)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(LayoutFecha) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}
	// El cliente puede enviar fecha-hora completa
	if len(s) > len(LayoutFecha) {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("fecha inválida %q: %w", s, err)
		}
		*f = NuevaFecha(t)
		return nil
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Scan implementa sql.Scanner para columnas DATE
func (f *Fecha) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		f.Time = time.Time{}
		return nil
	case time.Time:
		*f = NuevaFecha(v)
		return nil
	case string:
		parsed, err := ParseFecha(v)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	default:
		return fmt.Errorf("no se puede convertir %T a Fecha", src)
	}
}

// Value implementa driver.Valuer; la fecha vacía se guarda como NULL
func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}
