package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

func TestCoercionHelpersFallBackToDefaults(t *testing.T) {
	require.Equal(t, 0, intOrZero("not-a-number", "test"))
	require.Equal(t, 0, intOrZero("", "test"))
	require.Equal(t, 42, intOrZero(" 42 ", "test"))

	require.Equal(t, uint(0), uintOrZero("-5", "test"))
	require.Equal(t, uint(7), uintOrZero("7", "test"))

	require.Equal(t, 0.0, floatOrZero("12,50", "test"))
	require.Equal(t, 12.5, floatOrZero("12.50", "test"))

	require.False(t, boolOrFalse("maybe", "test"))
	require.False(t, boolOrFalse("", "test"))
	require.True(t, boolOrFalse("True", "test"))
	require.True(t, boolOrFalse("1", "test"))
}

func TestDateCoercionAcceptsKnownLayouts(t *testing.T) {
	for _, s := range []string{
		"2025-03-15T09:30:00Z",
		"2025-03-15T09:30:00",
		"2025-03-15 09:30:00",
		"2025-03-15",
		"15-03-2025 09:30",
		"15-03-2025",
	} {
		parsed := dateOrZero(s, "test")
		require.False(t, parsed.IsZero(), "layout not accepted: %s", s)
		require.Equal(t, 2025, parsed.Year())
		require.Equal(t, time.March, parsed.Month())
		require.Equal(t, 15, parsed.Day())
	}

	require.True(t, dateOrZero("tomorrow", "test").IsZero())
	require.True(t, dateOrZero("", "test").IsZero())

	require.Nil(t, datePtrOrNil("", "test"))
	require.Nil(t, datePtrOrNil("garbage", "test"))
	require.NotNil(t, datePtrOrNil("2025-03-15", "test"))
}

func TestParseDocumentKeepsRecordsWithBadFields(t *testing.T) {
	data := `<Export>
  <Product>
    <Id>7</Id>
    <Name>Pallet</Name>
    <Sku>PLT-1</Sku>
    <WeightKg>heavy</WeightKg>
    <Price>free</Price>
    <ExpirationDate>someday</ExpirationDate>
    <IsDeleted>nope</IsDeleted>
  </Product>
  <Vehicle>
    <Id>4</Id>
    <LicensePlate>AB-12-CD</LicensePlate>
    <Type>Hovercraft</Type>
    <Status>Sideways</Status>
  </Vehicle>
</Export>`

	var doc document
	require.NoError(t, parseDocument(data, &doc))

	require.Len(t, doc.Products, 1)
	product := doc.Products[0]
	require.Equal(t, uint(7), product.ID)
	require.Equal(t, "Pallet", product.Name)
	require.Equal(t, 0.0, product.WeightKg)
	require.Equal(t, 0.0, product.Price)
	require.Nil(t, product.ExpirationDate)
	require.False(t, product.IsDeleted)

	// Unknown enum values fall back to their defaults.
	require.Len(t, doc.Vehicles, 1)
	require.Equal(t, models.VehicleFlatbedTrailer, doc.Vehicles[0].Type)
	require.Equal(t, models.VehicleAvailable, doc.Vehicles[0].Status)
}

func TestParseDocumentIgnoresUnknownElements(t *testing.T) {
	data := `<Export>
  <Metadata><Generated>2025-03-15</Generated></Metadata>
  <Customer><Id>1</Id><CompanyName>Lafeber BV</CompanyName></Customer>
  <FutureEntity><Id>9</Id></FutureEntity>
</Export>`

	var doc document
	require.NoError(t, parseDocument(data, &doc))
	require.Len(t, doc.Customers, 1)
	require.Equal(t, "Lafeber BV", doc.Customers[0].CompanyName)
}

func TestParseDocumentRejectsMalformedXML(t *testing.T) {
	var doc document
	require.Error(t, parseDocument("<Export><Customer>", &doc))
}
