package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orderpad/orderpad/internal/models"
	"github.com/orderpad/orderpad/pkg/logger"
)

func newTestClient(baseURL string) *Client {
	return New(baseURL, "/products.php", "/save.php", 5*time.Second, logger.New("error"))
}

func TestClient_FetchProducts(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    int // expected product count
	}{
		{
			name: "successful fetch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(models.CatalogResponse{
					Success: true,
					Products: []models.Product{
						{ID: 1, Title: "Хлеб", Price: 50},
						{ID: 2, Title: "Молоко", Price: 80},
					},
				})
			},
			want: 2,
		},
		{
			name: "API reports failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(models.CatalogResponse{Success: false})
			},
			want: 0,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: 0,
		},
		{
			name: "malformed response body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte("{not json"))
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := newTestClient(srv.URL)
			products := client.FetchProducts(context.Background())

			if len(products) != tt.want {
				t.Errorf("FetchProducts() len = %d, want %d", len(products), tt.want)
			}
		})
	}
}

func TestClient_FetchProducts_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	client := newTestClient(srv.URL)
	products := client.FetchProducts(context.Background())

	if len(products) != 0 {
		t.Errorf("FetchProducts() len = %d, want 0 on transport failure", len(products))
	}
}

func TestClient_SubmitOrder(t *testing.T) {
	items := []models.OrderItem{{ProductID: 1, Quantity: 2}}

	t.Run("confirmed submission", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}

			var req models.OrderRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decoding request body: %v", err)
			}
			if len(req.Products) != 1 || req.Products[0].ProductID != 1 || req.Products[0].Quantity != 2 {
				t.Errorf("request body = %+v", req)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.SaveResponse{Success: true, Code: "A-100"})
		}))
		defer srv.Close()

		conf, err := newTestClient(srv.URL).SubmitOrder(context.Background(), items)
		if err != nil {
			t.Fatalf("SubmitOrder() unexpected error: %v", err)
		}
		if conf.Code != "A-100" {
			t.Errorf("SubmitOrder() code = %q, want %q", conf.Code, "A-100")
		}
	})

	t.Run("API reports failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.SaveResponse{Success: false})
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).SubmitOrder(context.Background(), items)
		if err != ErrSubmitFailed {
			t.Errorf("SubmitOrder() error = %v, want %v", err, ErrSubmitFailed)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := newTestClient(srv.URL).SubmitOrder(context.Background(), items)
		if err != ErrSubmitFailed {
			t.Errorf("SubmitOrder() error = %v, want %v", err, ErrSubmitFailed)
		}
	})

	t.Run("empty order makes no network call", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).SubmitOrder(context.Background(), nil)
		if err != ErrEmptyOrder {
			t.Errorf("SubmitOrder() error = %v, want %v", err, ErrEmptyOrder)
		}
		if n := atomic.LoadInt32(&calls); n != 0 {
			t.Errorf("SubmitOrder() issued %d requests, want 0", n)
		}
	})
}
