package entity

import "time"

// LowStockThreshold define el umbral de alerta para un tipo de producto.
// Un tipo sin fila no tiene umbral definido: sus productos quedan fuera de las
// alertas (no se puede evaluar "bajo" sin cota), nunca provoca error.
type LowStockThreshold struct {
	ProductType string
	Threshold   int64
	UpdatedAt   time.Time
}
