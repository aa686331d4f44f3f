package utils

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/flavourhaven/hotel-restaurant-app/models"
)

const gstRate = 0.05

// WriteInvoicePDF renders a printable invoice for a payment and its
// order. The payment must be loaded with Order, Order.Items and
// Order.Customer.
func WriteInvoicePDF(w io.Writer, payment *models.Payment) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "FLAVOUR HAVEN", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Premium Restaurant & Fine Dining", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "123 Gourmet Street, Food City - 400001", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Phone: +91 98765 43210 | GST: 27AABCU9603R1ZM", "", 1, "C", false, 0, "")
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(4)

	// Bill details
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 7, "INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 9)
	billDate := payment.CreatedAt
	if payment.PaidAt != nil {
		billDate = *payment.PaidAt
	}
	pdf.CellFormat(0, 5, fmt.Sprintf("Bill No: %08d", payment.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Date: "+billDate.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Payment Method: "+strings.ToUpper(payment.Method), "", 1, "L", false, 0, "")
	if payment.TransactionID != "" {
		pdf.CellFormat(0, 5, "Transaction ID: "+payment.TransactionID, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// Customer
	if payment.Order.Customer.ID != 0 {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, "Customer Details:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, "Name: "+payment.Order.Customer.Name, "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, "Email: "+payment.Order.Customer.Email, "", 1, "L", false, 0, "")
		if payment.Order.Customer.Phone != "" {
			pdf.CellFormat(0, 5, "Phone: "+payment.Order.Customer.Phone, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	// Items table
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(80, 6, "Item", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, "Qty", "", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Price", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, "Total", "", 1, "R", false, 0, "")
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range payment.Order.Items {
		pdf.CellFormat(80, 6, item.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, strconv.Itoa(item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, FormatINR(item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, FormatINR(item.Price*float64(item.Quantity)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(1)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(2)

	// Totals
	subtotal := payment.Amount
	tax := subtotal * gstRate
	grandTotal := subtotal + tax

	pdf.CellFormat(140, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, FormatINR(subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(140, 6, "GST (5%):", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, FormatINR(tax), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 7, "Grand Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, FormatINR(grandTotal), "", 1, "R", false, 0, "")

	// Footer
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Thank you for dining with us!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Visit again soon - Flavour Haven", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

// InvoiceFilename names the attachment for a payment invoice download.
func InvoiceFilename(paymentID uint) string {
	return fmt.Sprintf("bill-%d.pdf", paymentID)
}
