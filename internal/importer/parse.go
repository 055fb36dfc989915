package importer

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// Raw record shapes decoded from XML. Every field is a string; coercion to
// typed values is permissive and falls back to the type default so a bad
// field never rejects its record.

type customerXML struct {
	ID            string `xml:"Id"`
	CompanyName   string `xml:"CompanyName"`
	ContactPerson string `xml:"ContactPerson"`
	Email         string `xml:"Email"`
	Phone         string `xml:"Phone"`
	Address       string `xml:"Address"`
	IsDeleted     string `xml:"IsDeleted"`
}

type employeeXML struct {
	ID        string `xml:"Id"`
	Name      string `xml:"Name"`
	Role      string `xml:"Role"`
	Email     string `xml:"Email"`
	IsDeleted string `xml:"IsDeleted"`
}

type warehouseXML struct {
	ID            string `xml:"Id"`
	Name          string `xml:"Name"`
	Location      string `xml:"Location"`
	ContactPerson string `xml:"ContactPerson"`
	Phone         string `xml:"Phone"`
	IsDeleted     string `xml:"IsDeleted"`
}

type productXML struct {
	ID             string `xml:"Id"`
	Name           string `xml:"Name"`
	SKU            string `xml:"Sku"`
	WeightKg       string `xml:"WeightKg"`
	Material       string `xml:"Material"`
	BatchNumber    string `xml:"BatchNumber"`
	Price          string `xml:"Price"`
	Category       string `xml:"Category"`
	ExpirationDate string `xml:"ExpirationDate"`
	IsDeleted      string `xml:"IsDeleted"`
}

type vehicleXML struct {
	ID           string `xml:"Id"`
	LicensePlate string `xml:"LicensePlate"`
	CapacityKg   string `xml:"CapacityKg"`
	Type         string `xml:"Type"`
	Status       string `xml:"Status"`
	IsDeleted    string `xml:"IsDeleted"`
}

type orderXML struct {
	ID                   string `xml:"Id"`
	CustomerID           string `xml:"CustomerId"`
	OrderDate            string `xml:"OrderDate"`
	ExpectedDeliveryDate string `xml:"ExpectedDeliveryDate"`
	ActualDeliveryDate   string `xml:"ActualDeliveryDate"`
	DeliveryAddress      string `xml:"DeliveryAddress"`
	Status               string `xml:"Status"`
	IsDeleted            string `xml:"IsDeleted"`
}

type orderLineXML struct {
	ID        string `xml:"Id"`
	OrderID   string `xml:"OrderId"`
	ProductID string `xml:"ProductId"`
	Quantity  string `xml:"Quantity"`
	IsDeleted string `xml:"IsDeleted"`
}

type shipmentXML struct {
	ID                   string `xml:"Id"`
	VehicleID            string `xml:"VehicleId"`
	DriverID             string `xml:"DriverId"`
	Status               string `xml:"Status"`
	DepartureDate        string `xml:"DepartureDate"`
	ExpectedDeliveryDate string `xml:"ExpectedDeliveryDate"`
	ActualDeliveryDate   string `xml:"ActualDeliveryDate"`
	IsDeleted            string `xml:"IsDeleted"`
}

type shipmentOrderXML struct {
	ShipmentID string `xml:"ShipmentId"`
	OrderID    string `xml:"OrderId"`
}

type inventoryXML struct {
	ID             string `xml:"Id"`
	ProductID      string `xml:"ProductId"`
	WarehouseID    string `xml:"WarehouseId"`
	QuantityOnHand string `xml:"QuantityOnHand"`
	LastUpdated    string `xml:"LastUpdated"`
	IsDeleted      string `xml:"IsDeleted"`
}

type inventoryTransactionXML struct {
	ID          string `xml:"Id"`
	ProductID   string `xml:"ProductId"`
	EmployeeID  string `xml:"EmployeeId"`
	Quantity    string `xml:"Quantity"`
	Type        string `xml:"Type"`
	Timestamp   string `xml:"Timestamp"`
	Source      string `xml:"Source"`
	Destination string `xml:"Destination"`
	IsDeleted   string `xml:"IsDeleted"`
}

// document holds everything extracted from one or more XML inputs.
type document struct {
	Customers             []models.Customer
	Employees             []models.Employee
	Warehouses            []models.Warehouse
	Products              []models.Product
	Vehicles              []models.Vehicle
	Orders                []models.Order
	OrderLines            []models.OrderLine
	Shipments             []models.Shipment
	ShipmentOrders        []models.ShipmentOrder
	Inventories           []models.Inventory
	InventoryTransactions []models.InventoryTransaction
}

// parseDocument scans an XML document for known entity elements wherever
// they appear and accumulates their coerced records into doc. A malformed
// document fails as a whole; a malformed field inside a record does not.
func parseDocument(data string, doc *document) error {
	decoder := xml.NewDecoder(strings.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "malformed XML document")
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "Customer":
			var rec customerXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode Customer element")
			}
			doc.Customers = append(doc.Customers, models.Customer{
				ID:            uintOrZero(rec.ID, "Customer.Id"),
				CompanyName:   rec.CompanyName,
				ContactPerson: rec.ContactPerson,
				Email:         rec.Email,
				Phone:         rec.Phone,
				Address:       rec.Address,
				IsDeleted:     boolOrFalse(rec.IsDeleted, "Customer.IsDeleted"),
			})
		case "Employee":
			var rec employeeXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode Employee element")
			}
			doc.Employees = append(doc.Employees, models.Employee{
				ID:        uintOrZero(rec.ID, "Employee.Id"),
				Name:      rec.Name,
				Role:      rec.Role,
				Email:     rec.Email,
				IsDeleted: boolOrFalse(rec.IsDeleted, "Employee.IsDeleted"),
			})
		case "Warehouse":
			var rec warehouseXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode Warehouse element")
			}
			doc.Warehouses = append(doc.Warehouses, models.Warehouse{
				ID:            uintOrZero(rec.ID, "Warehouse.Id"),
				Name:          rec.Name,
				Location:      rec.Location,
				ContactPerson: rec.ContactPerson,
				Phone:         rec.Phone,
				IsDeleted:     boolOrFalse(rec.IsDeleted, "Warehouse.IsDeleted"),
			})
		case "Product":
			var rec productXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode Product element")
			}
			doc.Products = append(doc.Products, models.Product{
				ID:             uintOrZero(rec.ID, "Product.Id"),
				Name:           rec.Name,
				SKU:            rec.SKU,
				WeightKg:       floatOrZero(rec.WeightKg, "Product.WeightKg"),
				Material:       rec.Material,
				BatchNumber:    rec.BatchNumber,
				Price:          floatOrZero(rec.Price, "Product.Price"),
				Category:       rec.Category,
				ExpirationDate: datePtrOrNil(rec.ExpirationDate, "Product.ExpirationDate"),
				IsDeleted:      boolOrFalse(rec.IsDeleted, "Product.IsDeleted"),
			})
		case "Vehicle":
			var rec vehicleXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode Vehicle element")
			}
			doc.Vehicles = append(doc.Vehicles, models.Vehicle{
				ID:           uintOrZero(rec.ID, "Vehicle.Id"),
				LicensePlate: rec.LicensePlate,
				CapacityKg:   floatOrZero(rec.CapacityKg, "Vehicle.CapacityKg"),
				Type:         models.VehicleTypeFromString(rec.Type),
				Status:       models.VehicleStatusFromString(rec.Status),
				IsDeleted:    boolOrFalse(rec.IsDeleted, "Vehicle.IsDeleted"),
			})
		case "Order":
			var rec orderXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode Order element")
			}
			doc.Orders = append(doc.Orders, models.Order{
				ID:                   uintOrZero(rec.ID, "Order.Id"),
				CustomerID:           uintOrZero(rec.CustomerID, "Order.CustomerId"),
				OrderDate:            dateOrZero(rec.OrderDate, "Order.OrderDate"),
				ExpectedDeliveryDate: dateOrZero(rec.ExpectedDeliveryDate, "Order.ExpectedDeliveryDate"),
				ActualDeliveryDate:   datePtrOrNil(rec.ActualDeliveryDate, "Order.ActualDeliveryDate"),
				DeliveryAddress:      rec.DeliveryAddress,
				Status:               models.OrderStatusFromString(rec.Status),
				IsDeleted:            boolOrFalse(rec.IsDeleted, "Order.IsDeleted"),
			})
		case "OrderLine":
			var rec orderLineXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode OrderLine element")
			}
			doc.OrderLines = append(doc.OrderLines, models.OrderLine{
				ID:        uintOrZero(rec.ID, "OrderLine.Id"),
				OrderID:   uintOrZero(rec.OrderID, "OrderLine.OrderId"),
				ProductID: uintOrZero(rec.ProductID, "OrderLine.ProductId"),
				Quantity:  intOrZero(rec.Quantity, "OrderLine.Quantity"),
				IsDeleted: boolOrFalse(rec.IsDeleted, "OrderLine.IsDeleted"),
			})
		case "Shipment":
			var rec shipmentXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode Shipment element")
			}
			doc.Shipments = append(doc.Shipments, models.Shipment{
				ID:                   uintOrZero(rec.ID, "Shipment.Id"),
				VehicleID:            uintOrZero(rec.VehicleID, "Shipment.VehicleId"),
				DriverID:             uintOrZero(rec.DriverID, "Shipment.DriverId"),
				Status:               models.ShipmentStatusFromString(rec.Status),
				DepartureDate:        dateOrZero(rec.DepartureDate, "Shipment.DepartureDate"),
				ExpectedDeliveryDate: dateOrZero(rec.ExpectedDeliveryDate, "Shipment.ExpectedDeliveryDate"),
				ActualDeliveryDate:   datePtrOrNil(rec.ActualDeliveryDate, "Shipment.ActualDeliveryDate"),
				IsDeleted:            boolOrFalse(rec.IsDeleted, "Shipment.IsDeleted"),
			})
		case "ShipmentOrder":
			var rec shipmentOrderXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode ShipmentOrder element")
			}
			doc.ShipmentOrders = append(doc.ShipmentOrders, models.ShipmentOrder{
				ShipmentID: uintOrZero(rec.ShipmentID, "ShipmentOrder.ShipmentId"),
				OrderID:    uintOrZero(rec.OrderID, "ShipmentOrder.OrderId"),
			})
		case "Inventory":
			var rec inventoryXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode Inventory element")
			}
			doc.Inventories = append(doc.Inventories, models.Inventory{
				ID:             uintOrZero(rec.ID, "Inventory.Id"),
				ProductID:      uintOrZero(rec.ProductID, "Inventory.ProductId"),
				WarehouseID:    uintOrZero(rec.WarehouseID, "Inventory.WarehouseId"),
				QuantityOnHand: intOrZero(rec.QuantityOnHand, "Inventory.QuantityOnHand"),
				LastUpdated:    dateOrZero(rec.LastUpdated, "Inventory.LastUpdated"),
				IsDeleted:      boolOrFalse(rec.IsDeleted, "Inventory.IsDeleted"),
			})
		case "InventoryTransaction":
			var rec inventoryTransactionXML
			if err := decoder.DecodeElement(&rec, &start); err != nil {
				return errors.Wrap(err, "failed to decode InventoryTransaction element")
			}
			doc.InventoryTransactions = append(doc.InventoryTransactions, models.InventoryTransaction{
				ID:          uintOrZero(rec.ID, "InventoryTransaction.Id"),
				ProductID:   uintOrZero(rec.ProductID, "InventoryTransaction.ProductId"),
				EmployeeID:  uintOrZero(rec.EmployeeID, "InventoryTransaction.EmployeeId"),
				Quantity:    intOrZero(rec.Quantity, "InventoryTransaction.Quantity"),
				Type:        models.TransactionTypeFromString(rec.Type),
				Timestamp:   dateOrZero(rec.Timestamp, "InventoryTransaction.Timestamp"),
				Source:      rec.Source,
				Destination: rec.Destination,
				IsDeleted:   boolOrFalse(rec.IsDeleted, "InventoryTransaction.IsDeleted"),
			})
		}
	}
}

// Accepted date layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006 15:04",
	"02-01-2006",
}

func coercionFailed(field, value string) {
	log.Warn().Str("field", field).Str("value", value).Msg("Unparseable import field, using default")
}

func intOrZero(s, field string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		coercionFailed(field, s)
		return 0
	}
	return n
}

func uintOrZero(s, field string) uint {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		coercionFailed(field, s)
		return 0
	}
	return uint(n)
}

func floatOrZero(s, field string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		coercionFailed(field, s)
		return 0
	}
	return f
}

func boolOrFalse(s, field string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		coercionFailed(field, s)
		return false
	}
	return b
}

func dateOrZero(s, field string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	coercionFailed(field, s)
	return time.Time{}
}

func datePtrOrNil(s, field string) *time.Time {
	t := dateOrZero(s, field)
	if t.IsZero() {
		return nil
	}
	return &t
}
