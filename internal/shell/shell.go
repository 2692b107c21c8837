package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	cart "github.com/dwikikusuma/shoping-checkout/internal/cart/domain"
	catalog "github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/shoping-checkout/internal/checkout/app"
	checkout "github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	paymentapp "github.com/dwikikusuma/shoping-checkout/internal/payment/app"
	payment "github.com/dwikikusuma/shoping-checkout/internal/payment/domain"
)

type Checkouter interface {
	ProcessCheckout(ctx context.Context, cart checkoutapp.CartReader, method checkoutapp.PaymentMethod) (checkout.Result, error)
}

type Deps struct {
	In       io.Reader
	Terminal *Terminal
	Products []catalog.Product
	Checkout Checkouter
	Payments *paymentapp.Factory
	Log      *slog.Logger
}

// Shell owns the session cart and maps each menu choice to one operation.
type Shell struct {
	in       io.Reader
	ui       *Terminal
	products []catalog.Product
	cart     *cart.Cart
	checkout Checkouter
	payments *paymentapp.Factory
	log      *slog.Logger

	lines   chan string
	readErr error
}

func New(d Deps) *Shell {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}
	return &Shell{
		in:       d.In,
		ui:       d.Terminal,
		products: d.Products,
		cart:     cart.New(),
		checkout: d.Checkout,
		payments: d.Payments,
		log:      log,
	}
}

// Cart exposes the session cart for inspection.
func (s *Shell) Cart() *cart.Cart {
	return s.cart
}

// Run loops until the user exits, input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	s.lines = make(chan string)
	go s.scan()

	for {
		s.ui.Menu("==== SHOP ====", s.mainOptions())
		line, ok := s.readLine(ctx)
		if !ok {
			if ctx.Err() != nil {
				return nil
			}
			s.ui.Plain("Goodbye!")
			return s.readErr
		}

		done, err := s.handle(ctx, line)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// scan feeds input lines to Run. It blocks on the reader and may outlive a
// cancelled Run; the process exits shortly after anyway.
func (s *Shell) scan() {
	defer close(s.lines)
	sc := bufio.NewScanner(s.in)
	for sc.Scan() {
		s.lines <- strings.TrimSpace(sc.Text())
	}
	s.readErr = sc.Err()
}

func (s *Shell) readLine(ctx context.Context) (string, bool) {
	s.ui.Prompt()
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		return line, ok
	}
}

func (s *Shell) viewOption() int     { return len(s.products) + 1 }
func (s *Shell) checkoutOption() int { return len(s.products) + 2 }

func (s *Shell) mainOptions() []string {
	opts := make([]string, 0, len(s.products)+3)
	for i, p := range s.products {
		opts = append(opts, fmt.Sprintf("%d) Add %s (%s)", i+1, p.Name(), money(p.UnitPrice())))
	}
	opts = append(opts,
		fmt.Sprintf("%d) View cart", s.viewOption()),
		fmt.Sprintf("%d) Checkout", s.checkoutOption()),
		"0) Exit",
	)
	return opts
}

func (s *Shell) handle(ctx context.Context, line string) (bool, error) {
	choice, err := strconv.Atoi(line)
	if err != nil || choice < 0 || choice > s.checkoutOption() {
		s.invalid(line)
		return false, nil
	}

	switch {
	case choice == 0:
		s.ui.Plain("Goodbye!")
		return true, nil
	case choice <= len(s.products):
		return false, s.addProduct(s.products[choice-1])
	case choice == s.viewOption():
		s.viewCart()
	case choice == s.checkoutOption():
		return false, s.finalize(ctx)
	}
	return false, nil
}

func (s *Shell) invalid(line string) {
	s.log.Debug("invalid selection", slog.String("input", line))
	s.ui.Failure("Invalid option.")
}

func (s *Shell) addProduct(p catalog.Product) error {
	if err := s.cart.AddItem(p, 1); err != nil {
		return err
	}
	s.log.Debug("item added", slog.String("product", p.Name()), slog.Int("lines", s.cart.Len()))
	s.ui.Success("+ " + p.Name() + " added")
	return nil
}

func (s *Shell) viewCart() {
	if s.cart.IsEmpty() {
		s.ui.Failure("Cart is empty.")
		return
	}
	s.ui.Cart(s.cart)
}

func (s *Shell) finalize(ctx context.Context) error {
	if s.cart.IsEmpty() {
		s.ui.Failure("Add items before paying.")
		return nil
	}

	kinds := payment.Kinds()
	opts := make([]string, 0, len(kinds))
	for i, k := range kinds {
		opts = append(opts, fmt.Sprintf("%d) %s", i+1, s.paymentLabel(k)))
	}
	s.ui.Plain("")
	s.ui.Plain("Choose a payment method:")
	for _, o := range opts {
		s.ui.Plain(o)
	}

	line, ok := s.readLine(ctx)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(kinds) {
		s.invalid(line)
		return nil
	}

	method, err := s.payments.New(kinds[n-1])
	if err != nil {
		return err
	}

	_, err = s.checkout.ProcessCheckout(ctx, s.cart, method)
	switch {
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		s.ui.Failure("Add items before paying.")
		return nil
	case ctx.Err() != nil:
		return nil
	}
	return err
}

func (s *Shell) paymentLabel(k payment.Kind) string {
	m, err := s.payments.New(k)
	if err != nil {
		return k.String()
	}

	switch v := m.(type) {
	case *payment.InstantTransfer:
		return fmt.Sprintf("%s (balance %s)", v.DisplayName(), money(v.Balance()))
	case *payment.CreditLine:
		return fmt.Sprintf("%s (limit %s)", v.DisplayName(), money(v.Limit()))
	default:
		return m.DisplayName()
	}
}
