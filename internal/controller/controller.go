package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/orderpad/orderpad/internal/api"
	"github.com/orderpad/orderpad/internal/models"
	"github.com/orderpad/orderpad/internal/order"
	"github.com/orderpad/orderpad/internal/view"
)

// User-facing notices. The originals were alert() dialogs on the host page.
const (
	noticeInvalidInput = "Please select a product and enter a valid quantity"
	noticeEmptyOrder   = "Your order is empty. Please add items before saving"
	noticeSaveFailed   = "Failed to save the order. Please try again"
	noticeSaveBusy     = "A submission is already in progress"
)

// Catalog is the read side of the remote API.
type Catalog interface {
	FetchProducts(ctx context.Context) []models.Product
}

// Submitter is the write side of the remote API.
type Submitter interface {
	SubmitOrder(ctx context.Context, items []models.OrderItem) (*api.Confirmation, error)
}

// Presenter applies derived view output to the UI surface.
type Presenter interface {
	ShowSelector(catalog []models.Product)
	ShowOrder(snap view.Snapshot)
}

// Notifier surfaces blocking user notices.
type Notifier interface {
	Notify(msg string)
	NotifyError(msg string)
}

// Controller wires user events to the order state, the remote API and the
// view. Lifecycle per order: empty, building, submitting, then back to empty
// on confirmation or building on failure. The widget is reusable for
// consecutive orders within one session.
type Controller struct {
	catalog   Catalog
	submitter Submitter
	state     *order.State
	presenter Presenter
	notifier  Notifier
	log       *slog.Logger

	selector map[int64]models.Product // products offered by the last selector fill
	saving   bool
}

// New creates a controller over the given collaborators.
func New(catalog Catalog, submitter Submitter, state *order.State, presenter Presenter, notifier Notifier, log *slog.Logger) *Controller {
	return &Controller{
		catalog:   catalog,
		submitter: submitter,
		state:     state,
		presenter: presenter,
		notifier:  notifier,
		log:       log,
		selector:  make(map[int64]models.Product),
	}
}

// Start populates the product selector — the page-load step of the widget.
func (c *Controller) Start(ctx context.Context) {
	products := c.catalog.FetchProducts(ctx)

	c.selector = make(map[int64]models.Product, len(products))
	for _, p := range products {
		c.selector[p.ID] = p
	}

	c.log.Debug("selector populated", "products", len(products))
	c.presenter.ShowSelector(products)
}

// Add handles an add-item action. Both arguments are raw user input; on any
// validation failure a blocking notice is surfaced and the order is unchanged.
func (c *Controller) Add(ctx context.Context, productText, quantityText string) {
	productID, err := strconv.ParseInt(strings.TrimSpace(productText), 10, 64)
	if err != nil {
		c.rejectAdd(productText, quantityText)
		return
	}
	if _, ok := c.selector[productID]; !ok {
		c.rejectAdd(productText, quantityText)
		return
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(quantityText))
	if err != nil || quantity <= 0 {
		c.rejectAdd(productText, quantityText)
		return
	}

	if err := c.state.Add(productID, quantity); err != nil {
		c.rejectAdd(productText, quantityText)
		return
	}

	c.Refresh(ctx)
}

func (c *Controller) rejectAdd(productText, quantityText string) {
	c.log.Warn("add rejected", "product", productText, "quantity", quantityText)
	c.notifier.NotifyError(noticeInvalidInput)
}

// Refresh re-fetches the catalog and redraws the order table and total.
// The table always reflects the latest successful fetch; a failed fetch
// renders an empty catalog and therefore an empty table.
func (c *Controller) Refresh(ctx context.Context) {
	products := c.catalog.FetchProducts(ctx)
	c.presenter.ShowOrder(view.Render(c.state.Items(), products))
}

// Save submits the pending order. A second save while one is outstanding is
// rejected rather than interleaved. On confirmation the order is cleared and
// the table re-rendered; on failure the items are retained.
func (c *Controller) Save(ctx context.Context) {
	if c.saving {
		c.log.Warn("save rejected, submission outstanding")
		c.notifier.NotifyError(noticeSaveBusy)
		return
	}
	if c.state.Len() == 0 {
		c.notifier.NotifyError(noticeEmptyOrder)
		return
	}

	c.saving = true
	defer func() { c.saving = false }()

	conf, err := c.submitter.SubmitOrder(ctx, c.state.Items())
	if err != nil {
		c.notifier.NotifyError(noticeSaveFailed)
		return
	}

	c.notifier.Notify(fmt.Sprintf("Order saved. Confirmation code: %s", conf.Code))
	c.state.Clear()
	c.Refresh(ctx)
}
