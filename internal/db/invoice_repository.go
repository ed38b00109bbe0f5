package db

import (
	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	database *gorm.DB
}

func NewInvoiceRepository(database *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{database: database}
}

func (repo *InvoiceRepository) ListByMechanic(mechanicID uint) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0)
	if err := repo.database.
		Where("mechanic_id = ?", mechanicID).
		Order("issued_date DESC, id DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (repo *InvoiceRepository) Create(invoice *models.Invoice) error {
	return repo.database.Create(invoice).Error
}
