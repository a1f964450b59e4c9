package server

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orderpad/orderpad/internal/api"
	"github.com/orderpad/orderpad/internal/config"
	"github.com/orderpad/orderpad/internal/controller"
	"github.com/orderpad/orderpad/internal/order"
	"github.com/orderpad/orderpad/internal/tui"
	"github.com/orderpad/orderpad/pkg/logger"
)

func newTestBackend(t *testing.T, cfg config.ServerConfig) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(cfg, logger.New("error")))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientAgainstLocalAPI(t *testing.T) {
	srv := newTestBackend(t, config.ServerConfig{})
	client := api.New(srv.URL, "/products.php", "/save.php", 5*time.Second, logger.New("error"))
	ctx := context.Background()

	products := client.FetchProducts(ctx)
	if len(products) == 0 {
		t.Fatal("FetchProducts() returned empty catalog from local API")
	}

	items := []struct {
		id  int64
		qty int
	}{
		{products[0].ID, 2},
		{products[1].ID, 1},
	}
	state := order.NewState()
	for _, it := range items {
		if err := state.Add(it.id, it.qty); err != nil {
			t.Fatalf("Add(%d, %d) unexpected error: %v", it.id, it.qty, err)
		}
	}

	conf, err := client.SubmitOrder(ctx, state.Items())
	if err != nil {
		t.Fatalf("SubmitOrder() unexpected error: %v", err)
	}
	if conf.Code == "" {
		t.Error("SubmitOrder() returned empty confirmation code")
	}
}

func TestSubmitOrderRequiresAPIKeyWhenConfigured(t *testing.T) {
	srv := newTestBackend(t, config.ServerConfig{APIKeys: []string{"apitest"}})
	client := api.New(srv.URL, "/products.php", "/save.php", 5*time.Second, logger.New("error"))
	ctx := context.Background()

	products := client.FetchProducts(ctx)
	if len(products) == 0 {
		t.Fatal("FetchProducts() returned empty catalog; the catalog endpoint stays open")
	}

	// The widget carries no credentials, so the guarded save endpoint rejects
	// it and the client maps that to the uniform failure signal.
	state := order.NewState()
	if err := state.Add(products[0].ID, 1); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if _, err := client.SubmitOrder(ctx, state.Items()); err != api.ErrSubmitFailed {
		t.Errorf("SubmitOrder() error = %v, want %v", err, api.ErrSubmitFailed)
	}
}

func TestWidgetFlowEndToEnd(t *testing.T) {
	srv := newTestBackend(t, config.ServerConfig{})
	log := logger.New("error")
	client := api.New(srv.URL, "/products.php", "/save.php", 5*time.Second, log)

	var buf bytes.Buffer
	term := tui.NewTerminal(&buf)
	state := order.NewState()
	ctrl := controller.New(client, client, state, term, term, log)
	ctx := context.Background()

	ctrl.Start(ctx)
	ctrl.Add(ctx, "1", "2")
	ctrl.Add(ctx, "2", "1")
	ctrl.Save(ctx)

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("Order saved. Confirmation code: A-")) {
		t.Errorf("terminal output missing confirmation notice:\n%s", out)
	}
	if state.Len() != 0 {
		t.Errorf("state len = %d after confirmed save, want 0", state.Len())
	}

	// A follow-up save on the now-empty order is blocked before the network.
	ctrl.Save(ctx)
	if !bytes.Contains(buf.Bytes(), []byte("Your order is empty")) {
		t.Error("terminal output missing empty-order notice")
	}
}
