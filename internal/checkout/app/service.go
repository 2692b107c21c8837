package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/metrics"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoMethod  = errors.New("no payment method selected")
)

const defaultProcessingLabel = "Processing"

type Service struct {
	presenter Presenter
	metrics   *metrics.CheckoutMetrics
	log       *slog.Logger

	now   func() time.Time
	newID func() string
}

func NewService(presenter Presenter, m *metrics.CheckoutMetrics, log *slog.Logger) *Service {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		presenter: presenter,
		metrics:   m,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// ProcessCheckout charges the cart total to method exactly once. An empty
// cart is rejected before the method is touched. A decline is reported in
// the Result, not as an error, and leaves the cart as it was.
func (s *Service) ProcessCheckout(ctx context.Context, cart CartReader, method PaymentMethod) (domain.Result, error) {
	if method == nil {
		return domain.Result{}, ErrNoMethod
	}

	name := method.DisplayName()

	if cart.IsEmpty() {
		s.metrics.Observe(name, metrics.OutcomeEmptyCart, cart.Total())
		s.log.Warn("checkout rejected", slog.String("method", name), slog.Any("err", ErrEmptyCart))
		return domain.Result{}, ErrEmptyCart
	}

	total := cart.Total()
	s.presenter.CheckoutStarted(name, total)

	label := defaultProcessingLabel
	if l, ok := method.(processingLabeler); ok {
		label = l.ProcessingLabel()
	}
	s.presenter.Processing(ctx, label)
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	approved := method.Authorize(total)

	var message string
	if m, ok := method.(outcomeMessenger); ok {
		message = m.OutcomeMessage(approved)
	}

	if !approved {
		decline := domain.Decline{Method: name, Amount: total, Reason: message}
		s.metrics.Observe(name, metrics.OutcomeDeclined, total)
		s.log.Info("checkout declined", slog.String("method", name), slog.String("total", total.StringFixed(2)))
		s.presenter.Declined(decline)
		return domain.Result{Decline: decline}, nil
	}

	receipt := domain.Receipt{
		ID:       s.newID(),
		Lines:    receiptLines(cart),
		Total:    total,
		Method:   name,
		Status:   domain.StatusPaid,
		Message:  message,
		IssuedAt: s.now(),
	}
	if r, ok := method.(referenceIssuer); ok {
		receipt.Reference = r.Reference()
	}

	s.metrics.Observe(name, metrics.OutcomeApproved, total)
	s.log.Info("checkout approved",
		slog.String("receipt_id", receipt.ID),
		slog.String("method", name),
		slog.String("total", total.StringFixed(2)),
		slog.Int("lines", len(receipt.Lines)),
	)
	s.presenter.Approved(receipt)

	return domain.Result{Approved: true, Receipt: receipt}, nil
}

func receiptLines(cart CartReader) []domain.ReceiptLine {
	lines := cart.Lines()
	out := make([]domain.ReceiptLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, domain.ReceiptLine{
			Name:      l.Product().Name(),
			Quantity:  l.Quantity(),
			UnitPrice: l.Product().UnitPrice(),
			Subtotal:  l.Subtotal(),
		})
	}
	return out
}
