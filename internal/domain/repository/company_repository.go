package repository

import "github.com/tu-usuario/stock-sentinel/internal/domain/entity"

// CompanyRepository puerto de persistencia para empresas.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
