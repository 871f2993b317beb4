package adminapi

import (
	"net/http"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
)

// productExportRow flattens a record for CSV: features joined with '|',
// image reduced to its URL.
type productExportRow struct {
	Id              int64  `csv:"id"`
	Name            string `csv:"name"`
	Category        string `csv:"category"`
	Tagline         string `csv:"tagline"`
	Range           string `csv:"range"`
	TopSpeed        string `csv:"top_speed"`
	Payload         string `csv:"payload"`
	Price           string `csv:"price"`
	BatteryCapacity string `csv:"battery_capacity"`
	BatteryType     string `csv:"battery_type"`
	ChargingTime    string `csv:"charging_time"`
	ChargingType    string `csv:"charging_type"`
	MotorPower      string `csv:"motor_power"`
	Torque          string `csv:"torque"`
	Acceleration    string `csv:"acceleration"`
	DriveType       string `csv:"drive_type"`
	BatteryWarranty string `csv:"battery_warranty"`
	MotorWarranty   string `csv:"motor_warranty"`
	ChargerWarranty string `csv:"charger_warranty"`
	Colors          string `csv:"colors"`
	Features        string `csv:"features"`
	ImageUrl        string `csv:"image_url"`
}

func exportRow(p domain.VehicleProduct) productExportRow {
	return productExportRow{
		Id:              p.Id,
		Name:            p.Name,
		Category:        p.Category,
		Tagline:         p.Tagline,
		Range:           p.Range,
		TopSpeed:        p.TopSpeed,
		Payload:         p.Payload,
		Price:           p.Price,
		BatteryCapacity: p.BatteryCapacity,
		BatteryType:     p.BatteryType,
		ChargingTime:    p.ChargingTime,
		ChargingType:    p.ChargingType,
		MotorPower:      p.MotorPower,
		Torque:          p.Torque,
		Acceleration:    p.Acceleration,
		DriveType:       p.DriveType,
		BatteryWarranty: p.BatteryWarranty,
		MotorWarranty:   p.MotorWarranty,
		ChargerWarranty: p.ChargerWarranty,
		Colors:          p.Colors,
		Features:        strings.Join(p.Features, "|"),
		ImageUrl:        p.Image.Url,
	}
}

// exportProducts streams the product records as CSV, optionally filtered by
// category.
func exportProducts(c echo.Context) error {
	store := GetApp(c).Store()

	var products []domain.VehicleProduct
	if category, okc := categoryParam(c); okc {
		products = store.Products(category)
	} else {
		products = append(store.Products(domain.CategoryTwoWheeler),
			store.Products(domain.CategoryThreeWheeler)...)
	}

	rows := make([]productExportRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, exportRow(p))
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export products", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(out))
}
