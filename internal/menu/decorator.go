package menu

import "fmt"

const (
	maxDiscountPercent = 50.0
	expressDeliveryFee = 5.00
	messageCardFee     = 1.50
)

// decorator holds the wrapped component and supplies delegation defaults.
// Each wrapper exclusively owns its inner value; chains are finite and
// evaluated strictly inside-out with no memoized pre-chain price.
type decorator struct {
	leafNode
	inner Component
}

func (d *decorator) Name() string {
	return d.inner.Name()
}

func (d *decorator) Price() float64 {
	return d.inner.Price()
}

func (d *decorator) Render(depth int) string {
	return d.inner.Render(depth)
}

// Inner exposes the wrapped component.
func (d *decorator) Inner() Component {
	return d.inner
}

func (d *decorator) prepareInner() []string {
	if p, ok := d.inner.(Preparer); ok {
		return p.Prepare()
	}
	return nil
}

// DiscountCoupon applies a percentage discount to whatever it wraps. Because
// it reads the wrapped price, the discount also covers fees added by earlier
// decorators, and stacked discounts compound multiplicatively. That matches
// the modeled behavior and must not be corrected here.
type DiscountCoupon struct {
	decorator
	percent float64
}

// NewDiscountCoupon wraps inner with a discount. The percentage is clamped
// to the range [0, 50].
func NewDiscountCoupon(inner Component, percent float64) *DiscountCoupon {
	if percent > maxDiscountPercent {
		percent = maxDiscountPercent
	}
	if percent < 0 {
		percent = 0
	}
	return &DiscountCoupon{decorator: decorator{inner: inner}, percent: percent}
}

func (d *DiscountCoupon) Name() string {
	return fmt.Sprintf("%s [%d%% OFF]", d.inner.Name(), int(d.percent))
}

func (d *DiscountCoupon) Price() float64 {
	original := d.inner.Price()
	return original - original*(d.percent/100.0)
}

func (d *DiscountCoupon) Render(depth int) string {
	return renderLine(depth, d.Name(), d.Price())
}

// SavedAmount reports how much the coupon takes off the wrapped price.
func (d *DiscountCoupon) SavedAmount() float64 {
	return d.inner.Price() * (d.percent / 100.0)
}

// Percent reports the effective, clamped percentage.
func (d *DiscountCoupon) Percent() float64 {
	return d.percent
}

func (d *DiscountCoupon) Prepare() []string {
	return append(d.prepareInner(), fmt.Sprintf("Discount coupon applied: %d%% OFF", int(d.percent)))
}

// ExpressDelivery adds a fixed priority-processing fee.
type ExpressDelivery struct {
	decorator
}

// NewExpressDelivery wraps inner with express delivery handling.
func NewExpressDelivery(inner Component) *ExpressDelivery {
	return &ExpressDelivery{decorator: decorator{inner: inner}}
}

func (d *ExpressDelivery) Name() string {
	return d.inner.Name() + " [Express Delivery]"
}

func (d *ExpressDelivery) Price() float64 {
	return d.inner.Price() + expressDeliveryFee
}

func (d *ExpressDelivery) Render(depth int) string {
	return renderLine(depth, d.Name(), d.Price())
}

// DeliveryInfo describes the express service level.
func (d *ExpressDelivery) DeliveryInfo() string {
	return "Express delivery in 30 minutes or less"
}

func (d *ExpressDelivery) Prepare() []string {
	return append(d.prepareInner(), "Express delivery added - priority processing")
}

// LoyaltyPoints grants bonus points without changing the price. The bonus is
// computed from the price seen at construction time and never recomputed,
// even if further decorators change the price afterwards.
type LoyaltyPoints struct {
	decorator
	bonusPoints int
}

// NewLoyaltyPoints wraps inner and freezes the bonus at 10 points per dollar.
func NewLoyaltyPoints(inner Component) *LoyaltyPoints {
	return &LoyaltyPoints{
		decorator:   decorator{inner: inner},
		bonusPoints: int(inner.Price() * 10),
	}
}

func (d *LoyaltyPoints) Name() string {
	return fmt.Sprintf("%s [+%d Loyalty Points]", d.inner.Name(), d.bonusPoints)
}

func (d *LoyaltyPoints) Render(depth int) string {
	return renderLine(depth, d.Name(), d.Price())
}

// BonusPoints reports the snapshot taken at construction time.
func (d *LoyaltyPoints) BonusPoints() int {
	return d.bonusPoints
}

func (d *LoyaltyPoints) Prepare() []string {
	return append(d.prepareInner(), fmt.Sprintf("Bonus loyalty points earned: %d points", d.bonusPoints))
}

// SpecialOccasion adds a message card for a fixed fee. The message is not
// validated here; callers must reject empty messages before wrapping.
type SpecialOccasion struct {
	decorator
	message string
}

// NewSpecialOccasion wraps inner with an occasion card carrying message.
func NewSpecialOccasion(inner Component, message string) *SpecialOccasion {
	return &SpecialOccasion{decorator: decorator{inner: inner}, message: message}
}

func (d *SpecialOccasion) Name() string {
	return d.inner.Name() + " [Special Occasion]"
}

func (d *SpecialOccasion) Price() float64 {
	return d.inner.Price() + messageCardFee
}

func (d *SpecialOccasion) Render(depth int) string {
	return renderLine(depth, d.Name(), d.Price())
}

// OccasionMessage returns the caller-supplied card message.
func (d *SpecialOccasion) OccasionMessage() string {
	return d.message
}

func (d *SpecialOccasion) Prepare() []string {
	steps := append(d.prepareInner(), "Special occasion card included")
	return append(steps, fmt.Sprintf("Message: %q", d.message))
}
