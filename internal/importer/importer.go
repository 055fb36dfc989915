// Package importer implements the XML bulk import: two XML documents are
// parsed into eleven entity collections which are upserted by primary key
// in dependency order, inside a single transaction when the backend
// supports one.
package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// Importer runs the bulk import pipeline against a gorm handle.
type Importer struct {
	db             *gorm.DB
	useTransaction bool
}

// Option configures an Importer.
type Option func(*Importer)

// WithoutTransaction disables the transaction wrapper for backends that
// lack transaction support. Partial application on failure is accepted in
// that mode.
func WithoutTransaction() Option {
	return func(i *Importer) { i.useTransaction = false }
}

// New creates an Importer. Transactional by default.
func New(db *gorm.DB, opts ...Option) *Importer {
	imp := &Importer{db: db, useTransaction: true}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// Run parses both XML documents and upserts every extracted record,
// parents before dependents. In transactional mode any stage failure rolls
// back the whole import and is re-raised.
func (i *Importer) Run(ctx context.Context, xml1, xml2 string) error {
	batchID := uuid.New()

	var doc document
	if err := parseDocument(xml1, &doc); err != nil {
		return err
	}
	if err := parseDocument(xml2, &doc); err != nil {
		return err
	}

	log.Info().
		Str("batch_id", batchID.String()).
		Int("customers", len(doc.Customers)).
		Int("employees", len(doc.Employees)).
		Int("warehouses", len(doc.Warehouses)).
		Int("products", len(doc.Products)).
		Int("vehicles", len(doc.Vehicles)).
		Int("orders", len(doc.Orders)).
		Int("order_lines", len(doc.OrderLines)).
		Int("shipments", len(doc.Shipments)).
		Int("shipment_orders", len(doc.ShipmentOrders)).
		Int("inventories", len(doc.Inventories)).
		Int("inventory_transactions", len(doc.InventoryTransactions)).
		Msg("Starting XML import")

	run := func(tx *gorm.DB) error {
		return importStages(tx, &doc)
	}

	var err error
	if i.useTransaction {
		err = i.db.WithContext(ctx).Transaction(run)
	} else {
		err = run(i.db.WithContext(ctx))
	}
	if err != nil {
		log.Error().Err(err).Str("batch_id", batchID.String()).Msg("XML import failed")
		return err
	}

	log.Info().Str("batch_id", batchID.String()).Msg("XML import complete")
	return nil
}

// importStages upserts the eleven collections parents-first so foreign
// keys resolve.
func importStages(tx *gorm.DB, doc *document) error {
	if err := upsertCustomers(tx, doc.Customers); err != nil {
		return err
	}
	if err := upsertEmployees(tx, doc.Employees); err != nil {
		return err
	}
	if err := upsertWarehouses(tx, doc.Warehouses); err != nil {
		return err
	}
	if err := upsertProducts(tx, doc.Products); err != nil {
		return err
	}
	if err := upsertVehicles(tx, doc.Vehicles); err != nil {
		return err
	}
	if err := upsertOrders(tx, doc.Orders); err != nil {
		return err
	}
	if err := upsertOrderLines(tx, doc.OrderLines); err != nil {
		return err
	}
	if err := upsertShipments(tx, doc.Shipments); err != nil {
		return err
	}
	if err := upsertShipmentOrders(tx, doc.ShipmentOrders); err != nil {
		return err
	}
	if err := upsertInventories(tx, doc.Inventories); err != nil {
		return err
	}
	return upsertInventoryTransactions(tx, doc.InventoryTransactions)
}

func upsertCustomers(tx *gorm.DB, incoming []models.Customer) error {
	var existing []models.Customer
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load customers")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Save(&rec).Error
		} else {
			err = tx.Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert customer")
		}
	}
	return nil
}

func upsertEmployees(tx *gorm.DB, incoming []models.Employee) error {
	var existing []models.Employee
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load employees")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Save(&rec).Error
		} else {
			err = tx.Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert employee")
		}
	}
	return nil
}

func upsertWarehouses(tx *gorm.DB, incoming []models.Warehouse) error {
	var existing []models.Warehouse
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load warehouses")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Save(&rec).Error
		} else {
			err = tx.Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert warehouse")
		}
	}
	return nil
}

func upsertProducts(tx *gorm.DB, incoming []models.Product) error {
	var existing []models.Product
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load products")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Save(&rec).Error
		} else {
			err = tx.Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert product")
		}
	}
	return nil
}

func upsertVehicles(tx *gorm.DB, incoming []models.Vehicle) error {
	var existing []models.Vehicle
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load vehicles")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Save(&rec).Error
		} else {
			err = tx.Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert vehicle")
		}
	}
	return nil
}

func upsertOrders(tx *gorm.DB, incoming []models.Order) error {
	var existing []models.Order
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load orders")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Omit("Lines", "ShipmentOrders").Save(&rec).Error
		} else {
			err = tx.Omit("Lines", "ShipmentOrders").Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert order")
		}
	}
	return nil
}

func upsertOrderLines(tx *gorm.DB, incoming []models.OrderLine) error {
	var existing []models.OrderLine
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load order lines")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Save(&rec).Error
		} else {
			err = tx.Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert order line")
		}
	}
	return nil
}

func upsertShipments(tx *gorm.DB, incoming []models.Shipment) error {
	var existing []models.Shipment
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load shipments")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Omit("ShipmentOrders").Save(&rec).Error
		} else {
			err = tx.Omit("ShipmentOrders").Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert shipment")
		}
	}
	return nil
}

// upsertShipmentOrders keys on the (ShipmentId, OrderId) pair and silently
// skips pairs that already exist.
func upsertShipmentOrders(tx *gorm.DB, incoming []models.ShipmentOrder) error {
	var existing []models.ShipmentOrder
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load shipment orders")
	}
	type pair struct{ shipmentID, orderID uint }
	known := make(map[pair]bool, len(existing))
	for _, row := range existing {
		known[pair{row.ShipmentID, row.OrderID}] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		key := pair{rec.ShipmentID, rec.OrderID}
		if known[key] {
			continue
		}
		if err := tx.Create(&rec).Error; err != nil {
			return errors.Wrap(err, "failed to insert shipment order")
		}
		known[key] = true
	}
	return nil
}

func upsertInventories(tx *gorm.DB, incoming []models.Inventory) error {
	var existing []models.Inventory
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load inventories")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Save(&rec).Error
		} else {
			err = tx.Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert inventory")
		}
	}
	return nil
}

func upsertInventoryTransactions(tx *gorm.DB, incoming []models.InventoryTransaction) error {
	var existing []models.InventoryTransaction
	if err := tx.Find(&existing).Error; err != nil {
		return errors.Wrap(err, "failed to load inventory transactions")
	}
	known := make(map[uint]bool, len(existing))
	for _, row := range existing {
		known[row.ID] = true
	}
	for idx := range incoming {
		rec := incoming[idx]
		var err error
		if known[rec.ID] {
			err = tx.Save(&rec).Error
		} else {
			err = tx.Create(&rec).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to upsert inventory transaction")
		}
	}
	return nil
}
