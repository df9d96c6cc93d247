package entity

// RecommendationKind tipo de sugerencia estratégica.
type RecommendationKind string

const (
	// RecReplenishment hay productos bajo el mínimo: priorizar reposición.
	RecReplenishment RecommendationKind = "replenishment_priority"
	// RecCostOptimization proveedor con mejor precio medio.
	RecCostOptimization RecommendationKind = "cost_optimization"
	// RecSalesOpportunity producto con mayor lucratividad positiva.
	RecSalesOpportunity RecommendationKind = "sales_opportunity"
)

// Recommendation hecho advisorio derivado de la tabla consolidada.
// Puramente informativo: nunca altera el modelo de datos.
type Recommendation struct {
	Kind    RecommendationKind
	Subject string // producto o proveedor al que refiere (vacío para reposición)
	Count   int    // productos afectados (solo reposición)
	Message string
}
