package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/pkg/apperror"
	domainRepo "github.com/techgrove/repairdesk/internal/domain/repository"
)

type backupRepository struct {
	db *gorm.DB
}

// NewBackupRepository creates a new backup repository
func NewBackupRepository(db *gorm.DB) domainRepo.BackupRepository {
	return &backupRepository{db: db}
}

func (r *backupRepository) ExportAll(ctx context.Context) (*domainRepo.BackupData, error) {
	data := &domainRepo.BackupData{Timestamp: time.Now().UTC()}
	db := r.db.WithContext(ctx)

	if err := db.Order("id ASC").Find(&data.Customers).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&data.Tickets).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&data.History).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&data.Inventory).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&data.Invoices).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&data.Items).Error; err != nil {
		return nil, err
	}
	if err := db.Order("key ASC").Find(&data.Settings).Error; err != nil {
		return nil, err
	}

	return data, nil
}

// RestoreAll wipes and reloads the store inside one transaction. Deletes run
// child-first (line items, invoices, history, tickets, inventory,
// customers); inserts run parent-first with ids regenerated and foreign
// keys remapped through old-to-new id maps.
func (r *backupRepository) RestoreAll(ctx context.Context, data *domainRepo.BackupData) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entity.InvoiceItem{},
			&entity.Invoice{},
			&entity.TicketHistory{},
			&entity.Ticket{},
			&entity.InventoryItem{},
			&entity.Customer{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		customerIDs := make(map[uint]uint, len(data.Customers))
		for _, c := range data.Customers {
			oldID := c.ID
			c.ID = 0
			c.Tickets = nil
			c.Invoices = nil
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			customerIDs[oldID] = c.ID
		}

		ticketIDs := make(map[uint]uint, len(data.Tickets))
		for _, t := range data.Tickets {
			oldID := t.ID
			t.ID = 0
			t.Customer = nil
			t.History = nil
			newCustomerID, ok := customerIDs[t.CustomerID]
			if !ok {
				return apperror.NewConstraintError("Backup ticket references unknown customer")
			}
			t.CustomerID = newCustomerID
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			ticketIDs[oldID] = t.ID
		}

		for _, h := range data.History {
			h.ID = 0
			h.Ticket = entity.Ticket{}
			newTicketID, ok := ticketIDs[h.TicketID]
			if !ok {
				return apperror.NewConstraintError("Backup history entry references unknown ticket")
			}
			h.TicketID = newTicketID
			if err := tx.Create(&h).Error; err != nil {
				return err
			}
		}

		for _, item := range data.Inventory {
			item.ID = 0
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		invoiceIDs := make(map[uint]uint, len(data.Invoices))
		for _, inv := range data.Invoices {
			oldID := inv.ID
			inv.ID = 0
			inv.Customer = nil
			inv.Ticket = nil
			inv.Items = nil
			newCustomerID, ok := customerIDs[inv.CustomerID]
			if !ok {
				return apperror.NewConstraintError("Backup invoice references unknown customer")
			}
			inv.CustomerID = newCustomerID
			if inv.TicketID != nil {
				newID, ok := ticketIDs[*inv.TicketID]
				if !ok {
					return apperror.NewConstraintError("Backup invoice references unknown ticket")
				}
				inv.TicketID = &newID
			}
			if err := tx.Create(&inv).Error; err != nil {
				return err
			}
			invoiceIDs[oldID] = inv.ID
		}

		for _, item := range data.Items {
			item.ID = 0
			item.Invoice = entity.Invoice{}
			newInvoiceID, ok := invoiceIDs[item.InvoiceID]
			if !ok {
				return apperror.NewConstraintError("Backup line item references unknown invoice")
			}
			item.InvoiceID = newInvoiceID
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		for _, s := range data.Settings {
			setting := entity.Setting{Key: s.Key, Value: s.Value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&setting).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
