package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (compatible; catalog-importer/1.0)"

var priceDigits = regexp.MustCompile(`[0-9][0-9,]*(\.[0-9]+)?`)

// SmartprixScraper extracts phone data from Smartprix product pages.
// Requests are spaced by a rate limiter shared by all callers.
type SmartprixScraper struct {
	http     *http.Client
	limiter  *rate.Limiter
	inrToKWD decimal.Decimal
	logger   *slog.Logger
}

func NewSmartprixScraper(logger *slog.Logger, timeout, interval time.Duration, inrToKWD decimal.Decimal) *SmartprixScraper {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &SmartprixScraper{
		http:     &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(limit, 1),
		inrToKWD: inrToKWD,
		logger:   logger.With(slog.String("source", "smartprix")),
	}
}

func (s *SmartprixScraper) Scrape(ctx context.Context, pageURL string) (entities.Phone, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return entities.Phone{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return entities.Phone{}, fmt.Errorf("invalid page url %q: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return entities.Phone{}, fmt.Errorf("%w: %w", entities.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.Phone{}, fmt.Errorf("%w: %s", entities.ErrPhoneNotFound, pageURL)
	}
	if resp.StatusCode != http.StatusOK {
		return entities.Phone{}, fmt.Errorf("%w: %s returned %d", entities.ErrSourceUnavailable, pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return entities.Phone{}, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	phone, err := s.parse(doc)
	if err != nil {
		return entities.Phone{}, fmt.Errorf("%s: %w", pageURL, err)
	}
	phone.SourceURL = pageURL
	s.logger.DebugContext(ctx, "page scraped", slog.String("url", pageURL), slog.String("id", phone.ID))
	return phone, nil
}

func (s *SmartprixScraper) parse(doc *goquery.Document) (entities.Phone, error) {
	name := collapseSpaces(doc.Find("h1").First().Text())
	if name == "" {
		return entities.Phone{}, fmt.Errorf("%w: page has no product title", entities.ErrPhoneNotFound)
	}

	var specs []specRow
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < 2 {
			return
		}
		label := strings.ToLower(collapseSpaces(cells.First().Text()))
		value := collapseSpaces(cells.Last().Text())
		if label != "" && value != "" {
			specs = append(specs, specRow{label: label, value: value})
		}
	})

	brand := lookup(specs, "brand")
	if brand == "" {
		brand, _, _ = strings.Cut(name, " ")
	}

	image, _ := doc.Find(`meta[property="og:image"]`).Attr("content")

	var features []string
	doc.Find("ul.features li").Each(func(_ int, li *goquery.Selection) {
		if f := collapseSpaces(li.Text()); f != "" {
			features = append(features, f)
		}
	})

	status := strings.ToLower(collapseSpaces(doc.Find(".status").First().Text()))
	available := !strings.Contains(status, "upcoming") && !strings.Contains(status, "discontinued")

	return entities.Phone{
		ID:       PhoneID(brand, name),
		Name:     name,
		Brand:    brand,
		ImageURL: image,
		Price:    s.price(doc),
		Specs: entities.PhoneSpecs{
			Display:   lookup(specs, "display", "screen"),
			Camera:    lookup(specs, "rear camera", "camera"),
			Battery:   lookup(specs, "battery"),
			Storage:   lookup(specs, "internal memory", "storage"),
			RAM:       lookup(specs, "ram"),
			Processor: lookup(specs, "chipset", "processor"),
			OS:        lookup(specs, "operating system", "os"),
		},
		Features:    features,
		ReleaseDate: lookup(specs, "launch date", "release date"),
		Colors:      splitList(lookup(specs, "colors", "colours")),
		Available:   available,
	}, nil
}

// price reads the INR price and converts it to KWD. Pages without a
// parseable price yield nil.
func (s *SmartprixScraper) price(doc *goquery.Document) *decimal.Decimal {
	raw, ok := doc.Find(`[itemprop="price"]`).First().Attr("content")
	if !ok {
		raw = doc.Find(".price").First().Text()
	}
	digits := priceDigits.FindString(raw)
	if digits == "" {
		return nil
	}
	inr, err := decimal.NewFromString(strings.ReplaceAll(digits, ",", ""))
	if err != nil || !inr.IsPositive() || !s.inrToKWD.IsPositive() {
		return nil
	}
	kwd := money.Round(inr.Mul(s.inrToKWD))
	return &kwd
}

type specRow struct {
	label string
	value string
}

// lookup returns the first spec whose label equals one of keys, falling
// back to the first label that contains one.
func lookup(specs []specRow, keys ...string) string {
	for _, k := range keys {
		for _, row := range specs {
			if row.label == k {
				return row.value
			}
		}
	}
	for _, k := range keys {
		for _, row := range specs {
			if strings.Contains(row.label, k) {
				return row.value
			}
		}
	}
	return ""
}
