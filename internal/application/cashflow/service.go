package cashflow

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/cashflow"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/partner"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/export"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/notify"
)

// Service provides application-level cash-flow operations: the month
// projection, thin mutations on day records and payments, settings and the
// base-cash singleton, and the spreadsheet export.
type Service struct {
	settingsRepo cashflow.SettingsRepository
	baseCashRepo cashflow.BaseCashRepository
	dayRepo      cashflow.DayRecordRepository
	paymentRepo  cashflow.PaymentRepository
	supplierRepo partner.SupplierRepository
	noteRepo     partner.CashflowNoteRepository
	notifier     notify.Notifier
	logger       *zap.Logger
}

// NewService creates a new cash-flow Service
func NewService(
	settingsRepo cashflow.SettingsRepository,
	baseCashRepo cashflow.BaseCashRepository,
	dayRepo cashflow.DayRecordRepository,
	paymentRepo cashflow.PaymentRepository,
	supplierRepo partner.SupplierRepository,
	noteRepo partner.CashflowNoteRepository,
	notifier notify.Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		baseCashRepo: baseCashRepo,
		dayRepo:      dayRepo,
		paymentRepo:  paymentRepo,
		supplierRepo: supplierRepo,
		noteRepo:     noteRepo,
		notifier:     notifier,
		logger:       logger.Named("cashflow"),
	}
}

// UpdateSettingsRequest represents a partial settings update
type UpdateSettingsRequest struct {
	DefaultDailySales *decimal.Decimal `json:"default_daily_sales"`
	SafetyThreshold   *decimal.Decimal `json:"safety_threshold"`
}

// SetOpeningCashRequest pins a day's opening cash
type SetOpeningCashRequest struct {
	Date   string          `json:"date" binding:"required,datestr"`
	Amount decimal.Decimal `json:"amount"`
}

// SetSalesRequest overrides a day's sales figure
type SetSalesRequest struct {
	Date   string          `json:"date" binding:"required,datestr"`
	Amount decimal.Decimal `json:"amount"`
}

// AddPaymentRequest records a payment on a day
type AddPaymentRequest struct {
	Date          string          `json:"date" binding:"required,datestr"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	RecipientName string          `json:"recipient_name" binding:"required"`
	Description   string          `json:"description"`
}

// UpdateDayRequest represents a partial day-policy update
type UpdateDayRequest struct {
	DeductSameDay *bool            `json:"deduct_same_day"`
	Sales         *decimal.Decimal `json:"sales"`
}

// UpdateBaseCashRequest updates the base-cash singleton
type UpdateBaseCashRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Notes  *string         `json:"notes"`
}

// GetSettings returns the settings singleton, creating defaults on first access
func (s *Service) GetSettings(ctx context.Context) (*cashflow.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettings applies a partial settings update
func (s *Service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*cashflow.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := settings.Update(req.DefaultDailySales, req.SafetyThreshold); err != nil {
		return nil, err
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ProjectMonth reconstructs the month day by day
func (s *Service) ProjectMonth(ctx context.Context, monthToken string) ([]cashflow.DayEntry, error) {
	month, err := cashflow.ParseMonth(monthToken)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.dayRepo.FindRange(ctx, month.Start(), month.End())
	if err != nil {
		return nil, err
	}
	return cashflow.ProjectMonth(month, settings, records), nil
}

// getOrCreateDay loads the day record for a date, creating one with defaults
// on its first write.
func (s *Service) getOrCreateDay(ctx context.Context, date string) (*cashflow.DayRecord, error) {
	day, err := s.dayRepo.FindByDate(ctx, date)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	day, err = s.dayRepo.GetOrCreate(ctx, cashflow.NewDayRecord(date, settings))
	if err != nil {
		return nil, err
	}
	return day, nil
}

// SetOpeningCash pins a day's opening cash so carry-forward never overwrites it
func (s *Service) SetOpeningCash(ctx context.Context, req SetOpeningCashRequest) (*cashflow.DayRecord, error) {
	date, err := cashflow.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	day, err := s.getOrCreateDay(ctx, date)
	if err != nil {
		return nil, err
	}
	day.PinOpeningCash(req.Amount)
	if err := s.dayRepo.Save(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// SetSales overrides a day's sales figure
func (s *Service) SetSales(ctx context.Context, req SetSalesRequest) (*cashflow.DayRecord, error) {
	date, err := cashflow.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	day, err := s.getOrCreateDay(ctx, date)
	if err != nil {
		return nil, err
	}
	if err := day.SetSales(req.Amount); err != nil {
		return nil, err
	}
	if err := s.dayRepo.Save(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// AddPayment records a payment on a day. When the recipient matches a
// supplier name the payment is echoed as a supplier cash-flow note, and a
// WhatsApp dispatch is fired best-effort.
func (s *Service) AddPayment(ctx context.Context, req AddPaymentRequest) (*cashflow.Payment, error) {
	date, err := cashflow.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	day, err := s.getOrCreateDay(ctx, date)
	if err != nil {
		return nil, err
	}

	payment, err := cashflow.NewPayment(day.ID, date, req.Amount, req.RecipientName, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.echoToSupplier(ctx, payment)

	go func() {
		msg := fmt.Sprintf("New payment: %s to %s on %s", payment.Amount, payment.RecipientName, payment.Date)
		if err := s.notifier.Send(context.Background(), msg); err != nil {
			s.logger.Warn("WhatsApp dispatch failed", zap.Error(err))
		}
	}()

	return payment, nil
}

// echoToSupplier writes a supplier cash-flow note when the recipient name
// matches a supplier. Failures are logged and swallowed; the payment itself
// is already committed.
func (s *Service) echoToSupplier(ctx context.Context, payment *cashflow.Payment) {
	supplier, err := s.supplierRepo.FindByName(ctx, payment.RecipientName)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("supplier lookup failed", zap.Error(err))
		}
		return
	}

	note := partner.NewCashflowNote(supplier.ID, payment.ID, payment.Amount,
		payment.RecipientName, payment.Date, payment.Description)
	if err := s.noteRepo.Save(ctx, note); err != nil {
		s.logger.Warn("supplier cash-flow note failed",
			zap.String("supplier", supplier.Name), zap.Error(err))
	}
}

// UpdateDay applies a partial policy update to a day record
func (s *Service) UpdateDay(ctx context.Context, dateToken string, req UpdateDayRequest) (*cashflow.DayRecord, error) {
	date, err := cashflow.ParseDate(dateToken)
	if err != nil {
		return nil, err
	}
	day, err := s.getOrCreateDay(ctx, date)
	if err != nil {
		return nil, err
	}
	if err := day.UpdatePolicy(req.DeductSameDay, req.Sales); err != nil {
		return nil, err
	}
	if err := s.dayRepo.Save(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// DeletePayment hard-deletes a payment. Nothing else is touched; the next
// projection simply no longer sees it.
func (s *Service) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return s.paymentRepo.Delete(ctx, id)
}

// ListAllPayments returns every payment, newest date first
func (s *Service) ListAllPayments(ctx context.Context) ([]cashflow.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

// ResetMonth deletes a month's payments and then its day records. Settings
// survive the reset.
func (s *Service) ResetMonth(ctx context.Context, monthToken string) error {
	month, err := cashflow.ParseMonth(monthToken)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.DeleteRange(ctx, month.Start(), month.End()); err != nil {
		return err
	}
	return s.dayRepo.DeleteRange(ctx, month.Start(), month.End())
}

// ExportMonth renders the projected month as an xlsx workbook
func (s *Service) ExportMonth(ctx context.Context, monthToken string) (*bytes.Buffer, string, error) {
	month, err := cashflow.ParseMonth(monthToken)
	if err != nil {
		return nil, "", err
	}
	entries, err := s.ProjectMonth(ctx, monthToken)
	if err != nil {
		return nil, "", err
	}
	buf, err := export.MonthWorkbook(month, entries)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("cashflow-%s.xlsx", month)
	return buf, filename, nil
}

// GetBaseCash returns the base-cash singleton, creating zeros on first access
func (s *Service) GetBaseCash(ctx context.Context) (*cashflow.BaseCash, error) {
	return s.baseCashRepo.Get(ctx)
}

// UpdateBaseCash updates the base-cash singleton
func (s *Service) UpdateBaseCash(ctx context.Context, req UpdateBaseCashRequest) (*cashflow.BaseCash, error) {
	cash, err := s.baseCashRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	cash.Update(req.Amount, req.Notes)
	if err := s.baseCashRepo.Save(ctx, cash); err != nil {
		return nil, err
	}
	return cash, nil
}
