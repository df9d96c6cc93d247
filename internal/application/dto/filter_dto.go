package dto

import (
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/vision360/internal/domain"
	"github.com/tu-usuario/vision360/internal/domain/consolidation"
)

// FilterRequest configuración de filtros enviada por la capa de
// presentación en cada cambio de selección.
//
// Semántica de cada dimensión (products, categories, stores):
//   - campo ausente o null  -> sentinela "todos" (sin restricción);
//   - lista vacía           -> excluir todo (el usuario deseleccionó cada
//     valor y debe ver resultados vacíos, no todos).
//
// start_date y end_date ("YYYY-MM-DD") van juntos o no van: un rango a
// medias es entrada inválida.
type FilterRequest struct {
	Products   *[]string `json:"products"`
	Categories *[]string `json:"categories"`
	Stores     *[]string `json:"stores"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
}

// ToSelection traduce la petición al modelo de dominio.
func (f FilterRequest) ToSelection() (consolidation.Selection, error) {
	sel := consolidation.Selection{
		Products:   toFilter(f.Products),
		Categories: toFilter(f.Categories),
		Stores:     toFilter(f.Stores),
	}

	switch {
	case f.StartDate == "" && f.EndDate == "":
		// sin restricción temporal
	case f.StartDate == "" || f.EndDate == "":
		return consolidation.Selection{}, domain.ErrInvalidInput
	default:
		start, err := time.Parse("2006-01-02", f.StartDate)
		if err != nil {
			return consolidation.Selection{}, domain.ErrInvalidInput
		}
		end, err := time.Parse("2006-01-02", f.EndDate)
		if err != nil {
			return consolidation.Selection{}, domain.ErrInvalidInput
		}
		if start.After(end) {
			return consolidation.Selection{}, domain.ErrInvalidInput
		}
		sel.Period = &consolidation.DateRange{Start: start, End: end}
	}

	return sel, nil
}

// CanonicalKey representación estable de la petición para la capa de
// memoización: dos peticiones equivalentes (mismos valores en cualquier
// orden) producen la misma llave.
func (f FilterRequest) CanonicalKey() string {
	var b strings.Builder
	writeDim := func(name string, vs *[]string) {
		b.WriteString(name)
		b.WriteByte('=')
		if vs == nil {
			b.WriteByte('*')
		} else {
			sorted := append([]string(nil), *vs...)
			sort.Strings(sorted)
			b.WriteString(strings.Join(sorted, ","))
		}
		b.WriteByte(';')
	}
	writeDim("p", f.Products)
	writeDim("c", f.Categories)
	writeDim("s", f.Stores)
	b.WriteString("d=")
	b.WriteString(f.StartDate)
	b.WriteString("..")
	b.WriteString(f.EndDate)
	return b.String()
}

func toFilter(vs *[]string) consolidation.StringFilter {
	if vs == nil {
		return consolidation.AllOf()
	}
	return consolidation.OnlyOf(*vs...)
}
