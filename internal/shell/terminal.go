package shell

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	cart "github.com/dwikikusuma/shoping-checkout/internal/cart/domain"
	"github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	"github.com/shopspring/decimal"
)

const (
	green  = "32"
	red    = "31"
	yellow = "33"
	cyan   = "36"
)

const progressDots = 6

// Terminal writes the shop UI and implements the checkout presenter.
type Terminal struct {
	out   io.Writer
	color bool
	delay time.Duration
}

func NewTerminal(out io.Writer, color bool, delay time.Duration) *Terminal {
	return &Terminal{out: out, color: color, delay: delay}
}

func (t *Terminal) paint(txt, code string) string {
	if !t.color {
		return txt
	}
	return "\033[" + code + "m" + txt + "\033[0m"
}

func (t *Terminal) println(a ...any) {
	fmt.Fprintln(t.out, a...)
}

func (t *Terminal) printf(format string, a ...any) {
	fmt.Fprintf(t.out, format, a...)
}

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

func (t *Terminal) Success(msg string) { t.println(t.paint(msg, green)) }
func (t *Terminal) Failure(msg string) { t.println(t.paint(msg, red)) }
func (t *Terminal) Plain(msg string)   { t.println(msg) }

func (t *Terminal) Prompt() {
	t.printf("> ")
}

func (t *Terminal) Menu(title string, options []string) {
	t.println()
	t.println(strings.Repeat("-", 44))
	t.println(t.paint(title, cyan))
	for _, o := range options {
		t.println(o)
	}
}

func (t *Terminal) Cart(c *cart.Cart) {
	t.println()
	t.println("=== Your cart ===")
	for _, l := range c.Lines() {
		t.line(l.Quantity(), l.Product().Name(), l.Product().UnitPrice(), l.Subtotal())
	}
	t.printf("Total: %s\n", t.paint(money(c.Total()), yellow))
}

func (t *Terminal) line(qty int, name string, unit, subtotal decimal.Decimal) {
	t.printf(" - %dx %s  @ %s  =  %s\n", qty, name, money(unit), money(subtotal))
}

func (t *Terminal) CheckoutStarted(method string, total decimal.Decimal) {
	t.println()
	t.printf("=== Checking out with %s ===\n", t.paint(method, cyan))
	t.printf("Amount due: %s\n", t.paint(money(total), yellow))
}

// Processing prints label followed by dots spread over the configured delay.
func (t *Terminal) Processing(ctx context.Context, label string) {
	t.printf("%s", t.paint(label, cyan))
	defer t.println()

	step := t.delay / progressDots
	for i := 0; i < progressDots; i++ {
		if step > 0 {
			timer := time.NewTimer(step)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			return
		}
		t.printf(".")
	}
}

func (t *Terminal) Approved(r domain.Receipt) {
	if r.Message != "" {
		code := green
		if r.Reference != "" {
			code = yellow
		}
		t.println(t.paint(r.Message, code))
	}
	if r.Reference != "" {
		t.printf("Payment line: %s\n", r.Reference)
	}

	t.println(t.paint("✅ Receipt", green))
	t.println("-------------------------------")
	t.printf("Receipt: %s\n", r.ID)
	for _, l := range r.Lines {
		t.line(l.Quantity, l.Name, l.UnitPrice, l.Subtotal)
	}
	t.printf("Total: %s\n", t.paint(money(r.Total), yellow))
	t.printf("Method: %s\n", r.Method)
	t.println(t.paint("Status: "+r.Status, green))
}

func (t *Terminal) Declined(d domain.Decline) {
	if d.Reason != "" {
		t.println(t.paint(d.Reason, red))
	}
	t.println(t.paint("❌ Payment declined", red))
}
