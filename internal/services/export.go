package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"superstore-dashboard/internal/models"
)

// ExportFilename is the attachment name offered for the filtered download.
const ExportFilename = "filtered_superstore_data.csv"

// ExportHeader is the column set of the CSV artifact, matching the in-memory
// schema including derived columns. LoadFromCSV reads the same layout back.
var ExportHeader = []string{
	"Order_Date", "Category", "Sub_Category", "Segment", "State", "City",
	"Sales", "Quantity", "Discount", "Profit", "Ship_Mode",
	"Year", "Month", "Profit_Margin",
}

// WriteCSV serializes the rows as UTF-8 CSV, header first.
func WriteCSV(w io.Writer, orders []models.Order) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, o := range orders {
		record := []string{
			o.OrderDate.Format("2006-01-02"),
			o.Category,
			o.SubCategory,
			o.Segment,
			o.State,
			o.City,
			strconv.FormatFloat(o.Sales, 'f', -1, 64),
			strconv.Itoa(o.Quantity),
			strconv.FormatFloat(o.Discount, 'f', -1, 64),
			strconv.FormatFloat(o.Profit, 'f', -1, 64),
			o.ShipMode,
			strconv.Itoa(o.Year),
			strconv.Itoa(o.Month),
			strconv.FormatFloat(o.ProfitMargin, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
