package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// ThresholdUseCase administración de umbrales de stock bajo por tipo de producto.
// Un tipo sin umbral simplemente no participa en las alertas.
type ThresholdUseCase struct {
	repo repository.ThresholdRepository
}

// NewThresholdUseCase construye el caso de uso.
func NewThresholdUseCase(repo repository.ThresholdRepository) *ThresholdUseCase {
	return &ThresholdUseCase{repo: repo}
}

// Set crea o actualiza el umbral de un tipo de producto.
func (uc *ThresholdUseCase) Set(productType string, threshold int64) (*dto.ThresholdResponse, error) {
	productType = strings.TrimSpace(productType)
	if productType == "" || threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.LowStockThreshold{
		ProductType: productType,
		Threshold:   threshold,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Upsert(t); err != nil {
		return nil, err
	}
	return &dto.ThresholdResponse{ProductType: t.ProductType, Threshold: t.Threshold}, nil
}

// List lista todos los umbrales configurados.
func (uc *ThresholdUseCase) List() ([]dto.ThresholdResponse, error) {
	thresholds, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ThresholdResponse, 0, len(thresholds))
	for _, t := range thresholds {
		out = append(out, dto.ThresholdResponse{ProductType: t.ProductType, Threshold: t.Threshold})
	}
	return out, nil
}
