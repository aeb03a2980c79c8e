package services

import (
	"bytes"
	"context"
	"fmt"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReceiptService renders payment receipts as PDFs and hands them to the
// archive in the background.
type ReceiptService struct {
	PaymentRepo *repositories.PaymentRepository
	TenantRepo  *repositories.TenantRepository
	HouseRepo   *repositories.HouseRepository
	PlotRepo    *repositories.PlotRepository
	Archive     *ArchiveService
}

func NewReceiptService(
	paymentRepo *repositories.PaymentRepository,
	tenantRepo *repositories.TenantRepository,
	houseRepo *repositories.HouseRepository,
	plotRepo *repositories.PlotRepository,
	archive *ArchiveService,
) *ReceiptService {
	return &ReceiptService{
		PaymentRepo: paymentRepo,
		TenantRepo:  tenantRepo,
		HouseRepo:   houseRepo,
		PlotRepo:    plotRepo,
		Archive:     archive,
	}
}

// GenerateReceipt builds the PDF receipt for a recorded payment.
func (s *ReceiptService) GenerateReceipt(ctx context.Context, paymentID int) ([]byte, error) {
	payment, err := s.PaymentRepo.Get(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment %d: %w", paymentID, err)
	}
	tenant, err := s.TenantRepo.Get(ctx, payment.TenantID)
	if err != nil {
		return nil, fmt.Errorf("tenant %d: %w", payment.TenantID, err)
	}
	house, err := s.HouseRepo.Get(ctx, tenant.HouseID)
	if err != nil {
		return nil, fmt.Errorf("house %d: %w", tenant.HouseID, err)
	}
	plot, err := s.PlotRepo.Get(ctx, house.PlotID)
	if err != nil {
		return nil, fmt.Errorf("plot %d: %w", house.PlotID, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Rent Payment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.FormatEAT(timeutil.Now(), timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Tenant Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Tenant Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", tenant.TenantName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Contact: %s", tenant.ContactInfo), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Plot: %s", plot.PlotName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("House: %s", house.HouseNumber), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Payment Details
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(50, 7, "Receipt No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "For Month", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Amount (KSh)", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	monthLabel := payment.Month
	if monthLabel != models.DepositMonthLabel {
		monthLabel = fmt.Sprintf("%s %d", payment.Month, payment.Year)
	}
	pdf.CellFormat(50, 6, fmt.Sprintf("RCPT-%06d", payment.ID), "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, monthLabel, "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, timeutil.FormatEAT(payment.TransactionDate, timeutil.DateLayout), "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, fmt.Sprintf("%d", payment.Amount), "1", 1, "R", false, 0, "")
	pdf.Ln(5)

	// Balance Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Outstanding Balances", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Deposit Owed: KSh %d", tenant.DepositOwed), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Rent Owed: KSh %d", tenant.RentOwed), "RB", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	data := buf.Bytes()
	s.Archive.StoreReceipt(ctx, tenant.ID, payment.ID, data)
	return data, nil
}
