package dataset

// Grid es una tabla cruda: encabezado + celdas de texto, tal como sale de un
// CSV o de la grilla de una hoja de cálculo. Es el único contrato entre los
// lectores de archivos y la normalización.
type Grid struct {
	Header []string
	Rows   [][]string
}

// Kind tipo semántico de una columna.
type Kind int

const (
	String Kind = iota
	Int
	Decimal
	Date
)

// Column describe una columna requerida: nombre, tipo y valor por defecto
// textual. El default se usa en dos casos: la columna no existe en la fuente
// (se inyecta completa) o una celda numérica no es coercible.
type Column struct {
	Name    string
	Kind    Kind
	Default string
}

// Schema descriptor declarativo de un dataset: la lista de columnas que la
// tabla normalizada garantiza tener, con tipos correctos. Reemplaza el
// parcheo ad hoc por dataset: la rutina de normalización es genérica.
type Schema struct {
	Columns []Column
}

// Col busca la columna por nombre; ok=false si el esquema no la declara.
func (s Schema) Col(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
