package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productPage = `<html>
<head><meta property="og:image" content="https://cdn.example.com/s24.jpg"></head>
<body>
	<h1>  Samsung Galaxy S24 5G </h1>
	<div class="status">Available</div>
	<span itemprop="price" content="74999">₹74,999</span>
	<ul class="features"><li>AI Photo Editing</li><li> 120Hz </li></ul>
	<table>
		<tr><th>Brand</th><td>Samsung</td></tr>
		<tr><th>Display</th><td>6.2 inches, Dynamic AMOLED 2X</td></tr>
		<tr><th>Front Camera</th><td>12 MP</td></tr>
		<tr><th>Rear Camera</th><td>50 MP + 12 MP + 10 MP</td></tr>
		<tr><th>Battery</th><td>4000 mAh</td></tr>
		<tr><th>Internal Memory</th><td>256 GB</td></tr>
		<tr><th>RAM</th><td>8 GB</td></tr>
		<tr><th>Chipset</th><td>Exynos 2400</td></tr>
		<tr><th>Operating System</th><td>Android v14</td></tr>
		<tr><th>Launch Date</th><td>January 17, 2024</td></tr>
		<tr><th>Colors</th><td>Onyx Black, Marble Grey</td></tr>
	</table>
</body></html>`

func newTestScraper() *SmartprixScraper {
	return NewSmartprixScraper(slog.New(slog.NewTextHandler(io.Discard, nil)), time.Second, 0, decimal.RequireFromString("0.0037"))
}

func TestSmartprixScraper_Scrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(productPage))
	}))
	defer srv.Close()

	phone, err := newTestScraper().Scrape(context.Background(), srv.URL+"/mobiles/samsung-galaxy-s24")
	require.NoError(t, err)

	assert.Equal(t, "samsung-galaxy-s24-5g", phone.ID)
	assert.Equal(t, "Samsung Galaxy S24 5G", phone.Name)
	assert.Equal(t, "Samsung", phone.Brand)
	assert.Equal(t, "https://cdn.example.com/s24.jpg", phone.ImageURL)
	assert.Equal(t, "50 MP + 12 MP + 10 MP", phone.Specs.Camera)
	assert.Equal(t, "Exynos 2400", phone.Specs.Processor)
	assert.Equal(t, "Android v14", phone.Specs.OS)
	assert.Equal(t, "256 GB", phone.Specs.Storage)
	assert.Equal(t, "January 17, 2024", phone.ReleaseDate)
	assert.Equal(t, []string{"Onyx Black", "Marble Grey"}, phone.Colors)
	assert.Equal(t, []string{"AI Photo Editing", "120Hz"}, phone.Features)
	assert.True(t, phone.Available)
	require.NotNil(t, phone.Price)
	assert.Equal(t, "277.496", money.Format(*phone.Price))
	assert.Equal(t, srv.URL+"/mobiles/samsung-galaxy-s24", phone.SourceURL)
}

func TestSmartprixScraper_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: entities.ErrPhoneNotFound},
		{name: "server error", status: http.StatusServiceUnavailable, wantErr: entities.ErrSourceUnavailable},
		{name: "no title", status: http.StatusOK, body: "<html><body>captcha</body></html>", wantErr: entities.ErrPhoneNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newTestScraper().Scrape(context.Background(), srv.URL)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
