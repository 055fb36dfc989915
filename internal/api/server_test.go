package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mayrii101/Project-D-Lafeber-sub000/config"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	server := NewServer(config.Config{Environment: "test"}, db, nil)
	return server.Router(), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/customer", map[string]interface{}{
		"companyName": "Lafeber BV",
		"email":       "info@lafeber.example",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.Equal(t, fmt.Sprintf("/api/customer/%d", created.ID), rec.Header().Get("Location"))

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/customer/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/customer/%d", created.ID), map[string]interface{}{
		"companyName": "Lafeber Logistics BV",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/customer/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Second delete and subsequent reads see nothing.
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/customer/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/customer/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomerGetUnknownIDReturns404(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/customer/9999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/customer/not-a-number", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderInsufficientStockReturns422(t *testing.T) {
	router, db := newTestServer(t)

	customer := models.Customer{CompanyName: "Lafeber BV"}
	require.NoError(t, db.Create(&customer).Error)
	product := models.Product{Name: "Pallet", SKU: "PLT-1", Price: 12.5}
	require.NoError(t, db.Create(&product).Error)
	warehouse := models.Warehouse{Name: "Rotterdam"}
	require.NoError(t, db.Create(&warehouse).Error)
	require.NoError(t, db.Create(&models.Inventory{
		ProductID: product.ID, WarehouseID: warehouse.ID, QuantityOnHand: 2, LastUpdated: time.Now(),
	}).Error)

	rec := doJSON(t, router, http.MethodPost, "/api/order", map[string]interface{}{
		"customerId":           customer.ID,
		"orderDate":            "15-03-2025",
		"orderTime":            "09:30",
		"deliveryAddress":      "Dock 7, Rotterdam",
		"expectedDeliveryDate": "18-03-2025",
		"expectedDeliveryTime": "14:00",
		"lines": []map[string]interface{}{
			{"productId": product.ID, "quantity": 5},
		},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.Zero(t, orderCount)
}

func TestCreateOrderSucceedsWithLocationHeader(t *testing.T) {
	router, db := newTestServer(t)

	customer := models.Customer{CompanyName: "Lafeber BV"}
	require.NoError(t, db.Create(&customer).Error)
	product := models.Product{Name: "Pallet", SKU: "PLT-1", Price: 12.5}
	require.NoError(t, db.Create(&product).Error)
	warehouse := models.Warehouse{Name: "Rotterdam"}
	require.NoError(t, db.Create(&warehouse).Error)
	require.NoError(t, db.Create(&models.Inventory{
		ProductID: product.ID, WarehouseID: warehouse.ID, QuantityOnHand: 10, LastUpdated: time.Now(),
	}).Error)

	rec := doJSON(t, router, http.MethodPost, "/api/order", map[string]interface{}{
		"customerId":           customer.ID,
		"orderDate":            "15-03-2025",
		"orderTime":            "09:30",
		"deliveryAddress":      "Dock 7, Rotterdam",
		"expectedDeliveryDate": "18-03-2025",
		"expectedDeliveryTime": "14:00",
		"status":               "Pending",
		"lines": []map[string]interface{}{
			{"productId": product.ID, "quantity": 4},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID             uint         `json:"id"`
		Message        string       `json:"message"`
		RemainingStock map[uint]int `json:"remainingStock"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.ID)
	require.NotEmpty(t, resp.Message)
	require.Equal(t, 6, resp.RemainingStock[product.ID])
	require.Equal(t, fmt.Sprintf("/api/order/%d", resp.ID), rec.Header().Get("Location"))
}

func TestCreateOrderMalformedDateReturns400(t *testing.T) {
	router, db := newTestServer(t)

	customer := models.Customer{CompanyName: "Lafeber BV"}
	require.NoError(t, db.Create(&customer).Error)

	rec := doJSON(t, router, http.MethodPost, "/api/order", map[string]interface{}{
		"customerId":           customer.ID,
		"orderDate":            "2025-03-15",
		"orderTime":            "09:30",
		"deliveryAddress":      "Dock 7, Rotterdam",
		"expectedDeliveryDate": "18-03-2025",
		"expectedDeliveryTime": "14:00",
		"lines": []map[string]interface{}{
			{"productId": 1, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStickyNoteRoundTrip(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/stickynote", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/stickynote", map[string]interface{}{
		"content": "call carrier about friday slots",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/stickynote", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var note models.StickyNote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	require.Equal(t, "call carrier about friday slots", note.Content)
}

func TestXMLImportUpload(t *testing.T) {
	router, db := newTestServer(t)

	xml1 := `<Export><Customer><Id>1</Id><CompanyName>Lafeber BV</CompanyName></Customer></Export>`
	xml2 := `<Export><Warehouse><Id>3</Id><Name>Rotterdam</Name></Warehouse></Export>`

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part1, err := writer.CreateFormFile("file1", "export1.xml")
	require.NoError(t, err)
	_, err = part1.Write([]byte(xml1))
	require.NoError(t, err)
	part2, err := writer.CreateFormFile("file2", "export2.xml")
	require.NoError(t, err)
	_, err = part2.Write([]byte(xml2))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/XmlImport/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var customers, warehouses int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&models.Warehouse{}).Count(&warehouses).Error)
	require.EqualValues(t, 1, customers)
	require.EqualValues(t, 1, warehouses)
}

func TestXMLImportUploadMissingFileReturns400(t *testing.T) {
	router, _ := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file1", "export1.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte(`<Export></Export>`))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/XmlImport/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
