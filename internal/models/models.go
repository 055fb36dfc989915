package models

import (
	"time"
)

// Customer is a company that places orders.
type Customer struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	IsDeleted     bool   `json:"isDeleted" gorm:"default:false"`
}

// Employee is a member of staff. Role is free text; "Driver" is the
// convention used when assigning shipments.
type Employee struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	IsDeleted bool   `json:"isDeleted" gorm:"default:false"`
}

// Product is a sellable item kept in stock.
type Product struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name"`
	SKU            string     `json:"sku" gorm:"column:sku"`
	WeightKg       float64    `json:"weightKg"`
	Material       string     `json:"material"`
	BatchNumber    string     `json:"batchNumber"`
	Price          float64    `json:"price" validate:"gte=0"`
	Category       string     `json:"category"`
	ExpirationDate *time.Time `json:"expirationDate"`
	IsDeleted      bool       `json:"isDeleted" gorm:"default:false"`
}

// Warehouse is a physical storage location.
type Warehouse struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	IsDeleted     bool   `json:"isDeleted" gorm:"default:false"`
}

// Inventory links a product to a warehouse with a stock count. It is the
// row order creation deducts from, oldest LastUpdated first.
type Inventory struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	ProductID      uint       `json:"productId"`
	Product        *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	WarehouseID    uint       `json:"warehouseId"`
	Warehouse      *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID"`
	QuantityOnHand int        `json:"quantityOnHand"`
	LastUpdated    time.Time  `json:"lastUpdated"`
	IsDeleted      bool       `json:"isDeleted" gorm:"default:false"`
}

// TransactionType classifies an inventory transaction.
type TransactionType string

const (
	TransactionInbound    TransactionType = "Inbound"
	TransactionOutbound   TransactionType = "Outbound"
	TransactionAdjustment TransactionType = "Adjustment"
)

// TransactionTypeFromString converts a string to a TransactionType,
// falling back to Inbound.
func TransactionTypeFromString(s string) TransactionType {
	switch s {
	case "Inbound":
		return TransactionInbound
	case "Outbound":
		return TransactionOutbound
	case "Adjustment":
		return TransactionAdjustment
	default:
		return TransactionInbound
	}
}

// InventoryTransaction is a ledger entry recorded independently of the
// Inventory table; nothing reconciles the two.
type InventoryTransaction struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	ProductID   uint            `json:"productId"`
	Product     *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	EmployeeID  uint            `json:"employeeId"`
	Employee    *Employee       `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Quantity    int             `json:"quantity"`
	Type        TransactionType `json:"type"`
	Timestamp   time.Time       `json:"timestamp"`
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
	IsDeleted   bool            `json:"isDeleted" gorm:"default:false"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// OrderStatusFromString converts a string to an OrderStatus, falling back
// to Pending.
func OrderStatusFromString(s string) OrderStatus {
	switch s {
	case "Pending":
		return OrderPending
	case "Processing":
		return OrderProcessing
	case "Shipped":
		return OrderShipped
	case "Delivered":
		return OrderDelivered
	case "Cancelled":
		return OrderCancelled
	default:
		return OrderPending
	}
}

// Order is a customer order owning a set of order lines.
type Order struct {
	ID                   uint            `json:"id" gorm:"primaryKey"`
	CustomerID           uint            `json:"customerId"`
	Customer             *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	OrderDate            time.Time       `json:"orderDate"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate"`
	ActualDeliveryDate   *time.Time      `json:"actualDeliveryDate"`
	DeliveryAddress      string          `json:"deliveryAddress"`
	Status               OrderStatus     `json:"status"`
	Lines                []OrderLine     `json:"lines" gorm:"foreignKey:OrderID"`
	ShipmentOrders       []ShipmentOrder `json:"-" gorm:"foreignKey:OrderID"`
	IsDeleted            bool            `json:"isDeleted" gorm:"default:false"`
}

// TotalWeight is the summed weight of the order in kilograms. Lines whose
// product is not loaded contribute nothing.
func (o *Order) TotalWeight() float64 {
	var total float64
	for _, line := range o.Lines {
		if line.Product != nil {
			total += line.Product.WeightKg * float64(line.Quantity)
		}
	}
	return total
}

// OrderLine is a single product/quantity entry on an order.
type OrderLine struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	OrderID   uint     `json:"orderId"`
	Order     *Order   `json:"-" gorm:"foreignKey:OrderID"`
	ProductID uint     `json:"productId"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity"`
	IsDeleted bool     `json:"isDeleted" gorm:"default:false"`
}

// LineTotal is the line price: product price times quantity. Zero when the
// product is not loaded.
func (l *OrderLine) LineTotal() float64 {
	if l.Product == nil {
		return 0
	}
	return l.Product.Price * float64(l.Quantity)
}

// VehicleType classifies a delivery vehicle.
type VehicleType string

const (
	VehicleFlatbedTrailer VehicleType = "FlatbedTrailer"
	VehicleLowbedTrailer  VehicleType = "LowbedTrailer"
	VehicleKipper         VehicleType = "Kipper"
)

// VehicleTypeFromString converts a string to a VehicleType, falling back
// to FlatbedTrailer.
func VehicleTypeFromString(s string) VehicleType {
	switch s {
	case "FlatbedTrailer":
		return VehicleFlatbedTrailer
	case "LowbedTrailer":
		return VehicleLowbedTrailer
	case "Kipper":
		return VehicleKipper
	default:
		return VehicleFlatbedTrailer
	}
}

// VehicleStatus is the availability state of a vehicle.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "Available"
	VehicleInUse       VehicleStatus = "InUse"
	VehicleMaintenance VehicleStatus = "Maintenance"
)

// VehicleStatusFromString converts a string to a VehicleStatus, falling
// back to Available.
func VehicleStatusFromString(s string) VehicleStatus {
	switch s {
	case "Available":
		return VehicleAvailable
	case "InUse":
		return VehicleInUse
	case "Maintenance":
		return VehicleMaintenance
	default:
		return VehicleAvailable
	}
}

// Vehicle is a delivery vehicle.
type Vehicle struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	LicensePlate string        `json:"licensePlate"`
	CapacityKg   float64       `json:"capacityKg"`
	Type         VehicleType   `json:"type"`
	Status       VehicleStatus `json:"status"`
	IsDeleted    bool          `json:"isDeleted" gorm:"default:false"`
}

// ShipmentStatus is the lifecycle state of a shipment.
type ShipmentStatus string

const (
	ShipmentPreparing      ShipmentStatus = "Preparing"
	ShipmentOutForDelivery ShipmentStatus = "OutForDelivery"
	ShipmentDelivered      ShipmentStatus = "Delivered"
)

// ShipmentStatusFromString converts a string to a ShipmentStatus, falling
// back to Preparing.
func ShipmentStatusFromString(s string) ShipmentStatus {
	switch s {
	case "Preparing":
		return ShipmentPreparing
	case "OutForDelivery":
		return ShipmentOutForDelivery
	case "Delivered":
		return ShipmentDelivered
	default:
		return ShipmentPreparing
	}
}

// Shipment is a vehicle/driver assignment delivering one or more orders.
type Shipment struct {
	ID                   uint            `json:"id" gorm:"primaryKey"`
	VehicleID            uint            `json:"vehicleId"`
	Vehicle              *Vehicle        `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	DriverID             uint            `json:"driverId"`
	Driver               *Employee       `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Status               ShipmentStatus  `json:"status"`
	DepartureDate        time.Time       `json:"departureDate"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate"`
	ActualDeliveryDate   *time.Time      `json:"actualDeliveryDate"`
	ShipmentOrders       []ShipmentOrder `json:"shipmentOrders" gorm:"foreignKey:ShipmentID"`
	IsDeleted            bool            `json:"isDeleted" gorm:"default:false"`
}

// ShipmentOrder joins a shipment to an order. Composite primary key, no
// surrogate id.
type ShipmentOrder struct {
	ShipmentID uint      `json:"shipmentId" gorm:"primaryKey;autoIncrement:false"`
	Shipment   *Shipment `json:"-" gorm:"foreignKey:ShipmentID"`
	OrderID    uint      `json:"orderId" gorm:"primaryKey;autoIncrement:false"`
	Order      *Order    `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}

// StickyNote is a singleton free-text note; only the first row is ever
// used.
type StickyNote struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
}
