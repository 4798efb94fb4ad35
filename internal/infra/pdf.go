package infra

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"storefront/internal/model"
)

var oneHundred = decimal.NewFromInt(100)

// OrderReceipt renders a PDF receipt for an order. The order must be
// loaded with Items, Items.Product, Status and User.
func OrderReceipt(o *model.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Order #%d", o.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", o.CreatedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	if o.Status != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", o.Status.Name), "", 1, "L", false, 0, "")
	}
	if o.User != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Customer: %s %s (%s)", o.User.Name, o.User.Surname, o.User.Email), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Line items table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range o.Items {
		name := fmt.Sprintf("product %d", item.ProductID)
		unit := decimal.Zero
		if item.Product != nil {
			name = item.Product.Name
			unit = item.Product.Price.Mul(oneHundred.Sub(item.Product.Discount)).Div(oneHundred)
		}
		subtotal := unit.Mul(decimal.NewFromInt(int64(item.Quantity)))
		pdf.CellFormat(90, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, "$"+unit.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, "$"+subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(145, 10, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 10, "$"+o.Total.StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
