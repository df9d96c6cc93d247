package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/vision360/internal/domain"
	"github.com/tu-usuario/vision360/internal/domain/dataset"
)

// Reader lee fuentes tabulares (texto delimitado o planilla XLSX) hacia una
// grilla cruda. Implementa ingest.GridReader. La única falla posible es
// estructural: una fuente que no puede interpretarse como tabla.
type Reader struct{}

// NewReader construye el lector.
func NewReader() *Reader { return &Reader{} }

// Read despacha por extensión: .xlsx va al lector de planillas, todo lo
// demás se intenta como texto delimitado.
func (Reader) Read(filename string, r io.Reader) (dataset.Grid, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return ReadXLSX(r)
	}
	return ReadCSV(r)
}

// ReadCSV lee texto delimitado. Detecta el delimitador (coma o punto y
// coma) a partir del encabezado y tolera filas con distinta cantidad de
// campos; las celdas faltantes degradan después, en la normalización.
func ReadCSV(r io.Reader) (dataset.Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return dataset.Grid{}, fmt.Errorf("%w: %v", domain.ErrSourceNotTabular, err)
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) // BOM UTF-8

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	if d := sniffDelimiter(raw); d != 0 {
		cr.Comma = d
	}

	records, err := cr.ReadAll()
	if err != nil {
		return dataset.Grid{}, fmt.Errorf("%w: %v", domain.ErrSourceNotTabular, err)
	}
	if len(records) == 0 {
		return dataset.Grid{}, fmt.Errorf("%w: fuente vacía", domain.ErrSourceNotTabular)
	}

	return dataset.Grid{Header: records[0], Rows: records[1:]}, nil
}

// sniffDelimiter inspecciona la primera línea: si no hay comas pero sí
// punto y coma, la fuente usa ';' como separador.
func sniffDelimiter(raw []byte) rune {
	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}
	if !bytes.ContainsRune(line, ',') && bytes.ContainsRune(line, ';') {
		return ';'
	}
	return 0
}

// ReadXLSX lee la primera hoja de una planilla como grilla de celdas.
func ReadXLSX(r io.Reader) (dataset.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return dataset.Grid{}, fmt.Errorf("%w: %v", domain.ErrSourceNotTabular, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dataset.Grid{}, fmt.Errorf("%w: planilla sin hojas", domain.ErrSourceNotTabular)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return dataset.Grid{}, fmt.Errorf("%w: %v", domain.ErrSourceNotTabular, err)
	}
	if len(rows) == 0 {
		return dataset.Grid{}, fmt.Errorf("%w: hoja vacía", domain.ErrSourceNotTabular)
	}

	return dataset.Grid{Header: rows[0], Rows: rows[1:]}, nil
}
