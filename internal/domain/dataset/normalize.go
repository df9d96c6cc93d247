package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Layouts de fecha aceptados, en orden de preferencia.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// Value celda ya coercida al tipo de su columna. Para fechas, HasTime=false
// marca un valor faltante o no parseable: la fila queda siempre fuera de
// cualquier filtro por rango de fechas, nunca rompe la carga.
type Value struct {
	Str     string
	Int     int64
	Dec     decimal.Decimal
	Time    time.Time
	HasTime bool
}

// Table tabla normalizada: garantiza todas las columnas del esquema con
// tipos correctos. La degradación de esquema (columna ausente, celda
// malformada) se resuelve con defaults y nunca es fatal.
type Table struct {
	schema Schema
	index  map[string]int
	rows   [][]Value
}

// Normalize aplica el descriptor a una grilla cruda:
//   - columnas del esquema ausentes en la fuente se inyectan con su default;
//   - celdas numéricas no coercibles degradan al default de la columna;
//   - fechas no parseables quedan marcadas como faltantes.
//
// El match de encabezados es insensible a mayúsculas y espacios.
func Normalize(g Grid, s Schema) Table {
	srcIdx := make(map[string]int, len(g.Header))
	for i, h := range g.Header {
		srcIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	index := make(map[string]int, len(s.Columns))
	for i, c := range s.Columns {
		index[c.Name] = i
	}

	rows := make([][]Value, 0, len(g.Rows))
	for _, raw := range g.Rows {
		row := make([]Value, len(s.Columns))
		for ci, col := range s.Columns {
			cell := col.Default
			if si, ok := srcIdx[col.Name]; ok {
				if si < len(raw) {
					cell = raw[si]
				} else {
					cell = "" // fila corta: celda vacía, degrada al default abajo
				}
			}
			row[ci] = coerce(cell, col)
		}
		rows = append(rows, row)
	}

	return Table{schema: s, index: index, rows: rows}
}

func coerce(cell string, col Column) Value {
	cell = strings.TrimSpace(cell)
	switch col.Kind {
	case Int:
		if n, ok := parseInt(cell); ok {
			return Value{Int: n}
		}
		n, _ := parseInt(col.Default)
		return Value{Int: n}
	case Decimal:
		if d, ok := parseDecimal(cell); ok {
			return Value{Dec: d}
		}
		d, _ := parseDecimal(col.Default)
		return Value{Dec: d}
	case Date:
		if t, ok := parseDate(cell); ok {
			return Value{Time: t, HasTime: true}
		}
		return Value{}
	default:
		return Value{Str: cell}
	}
}

func parseInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	// Fuentes de planilla suelen traer enteros como "3.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d, true
	}
	// Separador decimal con coma
	if d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1)); err == nil {
		return d, true
	}
	return decimal.Zero, false
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Len cantidad de filas.
func (t Table) Len() int { return len(t.rows) }

// Row acceso tipado a la fila i.
func (t Table) Row(i int) Row { return Row{t: t, cells: t.rows[i]} }

// Row una fila normalizada con accessors por columna.
type Row struct {
	t     Table
	cells []Value
}

// String valor de una columna de texto.
func (r Row) String(col string) string { return r.cell(col).Str }

// Int valor de una columna entera.
func (r Row) Int(col string) int64 { return r.cell(col).Int }

// Decimal valor de una columna monetaria.
func (r Row) Decimal(col string) decimal.Decimal { return r.cell(col).Dec }

// Date valor de una columna de fecha; ok=false si el valor era faltante o
// no parseable.
func (r Row) Date(col string) (time.Time, bool) {
	v := r.cell(col)
	return v.Time, v.HasTime
}

func (r Row) cell(col string) Value {
	if i, ok := r.t.index[col]; ok {
		return r.cells[i]
	}
	return Value{}
}
