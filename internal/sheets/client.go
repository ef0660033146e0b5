// Package sheets talks to the spreadsheet-backed order/menu web app. The
// contract is HTTP form/query parameters in, JSON out; the web app owns all
// order and menu persistence.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sivanaveen080/biryani-for-lunch/pkg/config"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
)

// Service is the surface consumed by checkout, catalog and the admin console.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (int64, error)
	ListOrders(ctx context.Context) ([]Order, error)
	ListMenu(ctx context.Context) ([]MenuItem, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
	UpdateMenu(ctx context.Context, itemName string, available bool) error
}

// CreateOrderInput carries the order row appended by the web app. Items is a
// human-readable itemized text block, one line per cart line.
type CreateOrderInput struct {
	Name         string
	Mobile       string
	Items        string
	ItemsTotal   int
	PayableTotal int
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements Service over the configured web app URL.
type Client struct {
	baseURL string
	http    httpDoer
}

// NewClient builds a sheets client from deployment configuration.
func NewClient(cfg config.SheetsConfig) (*Client, error) {
	if strings.TrimSpace(cfg.WebAppURL) == "" {
		return nil, fmt.Errorf("sheets web app url required")
	}
	return &Client{
		baseURL: cfg.WebAppURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// CreateOrder appends an order row and returns the identifier the sheet
// assigned. The create call carries no action parameter.
func (c *Client) CreateOrder(ctx context.Context, input CreateOrderInput) (int64, error) {
	form := url.Values{}
	form.Set("name", input.Name)
	form.Set("mobile", input.Mobile)
	form.Set("items", input.Items)
	form.Set("itemsTotal", strconv.Itoa(input.ItemsTotal))
	form.Set("payableTotal", strconv.Itoa(input.PayableTotal))

	var out createOrderResponse
	if err := c.postForm(ctx, form, &out); err != nil {
		return 0, err
	}
	if !out.Success {
		return 0, pkgerrors.New(pkgerrors.CodeDependency, "order service did not accept the order")
	}
	return out.OrderID, nil
}

// ListOrders returns every order row.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out listOrdersResponse
	if err := c.get(ctx, "listOrders", &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "order service rejected listOrders")
	}
	return out.Orders, nil
}

// ListMenu returns every menu row with its availability flag.
func (c *Client) ListMenu(ctx context.Context) ([]MenuItem, error) {
	var out listMenuResponse
	if err := c.get(ctx, "listMenu", &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "order service rejected listMenu")
	}
	return out.Menu, nil
}

// UpdateOrderStatus sets the status cell for one order.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	form := url.Values{}
	form.Set("action", "updateOrderStatus")
	form.Set("orderId", strconv.FormatInt(orderID, 10))
	form.Set("status", status)

	var out ackResponse
	if err := c.postForm(ctx, form, &out); err != nil {
		return err
	}
	if !out.Success {
		return pkgerrors.New(pkgerrors.CodeDependency, "order service rejected status update")
	}
	return nil
}

// UpdateMenu flips the availability flag for one menu item.
func (c *Client) UpdateMenu(ctx context.Context, itemName string, available bool) error {
	form := url.Values{}
	form.Set("action", "updateMenu")
	form.Set("itemName", itemName)
	form.Set("available", strconv.FormatBool(available))

	var out ackResponse
	if err := c.postForm(ctx, form, &out); err != nil {
		return err
	}
	if !out.Success {
		return pkgerrors.New(pkgerrors.CodeDependency, "order service rejected menu update")
	}
	return nil
}

func (c *Client) get(ctx context.Context, action string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?action="+url.QueryEscape(action), nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building sheets request")
	}
	return c.do(req, dest)
}

func (c *Client) postForm(ctx context.Context, form url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building sheets request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reaching order service")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("order service returned status %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding order service response")
	}
	return nil
}
