package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/SergeyBogomolovv/knet-checkout/internal/catalog"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"golang.org/x/sync/errgroup"
)

type PhoneRepo interface {
	// SavePhones upserts by phone id.
	SavePhones(ctx context.Context, phones []entities.Phone) error
}

type PhoneSource interface {
	Search(ctx context.Context, query string) ([]catalog.GSMArenaSearchResult, error)
	Phone(ctx context.Context, id string) (entities.Phone, error)
}

type PageScraper interface {
	Scrape(ctx context.Context, pageURL string) (entities.Phone, error)
}

type ImportError struct {
	// Row is set for spreadsheet imports.
	Row     int
	Source  string
	Message string
}

type ImportReport struct {
	Imported int
	Errors   []ImportError
}

type catalogService struct {
	logger  *slog.Logger
	repo    PhoneRepo
	source  PhoneSource
	scraper PageScraper
	workers int
}

func NewCatalogService(logger *slog.Logger, repo PhoneRepo, source PhoneSource, scraper PageScraper, workers int) *catalogService {
	if workers < 1 {
		workers = 1
	}
	return &catalogService{
		logger:  logger.With(slog.String("service", "catalog")),
		repo:    repo,
		source:  source,
		scraper: scraper,
		workers: workers,
	}
}

// ImportFile imports a .csv or .xlsx upload. Rejected rows are reported,
// the rest are stored.
func (s *catalogService) ImportFile(ctx context.Context, filename string, r io.Reader) (ImportReport, error) {
	var (
		phones  []entities.Phone
		rowErrs []catalog.RowError
		err     error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		phones, rowErrs, err = catalog.ParseCSV(r)
	case ".xlsx":
		phones, rowErrs, err = catalog.ParseExcel(r)
	default:
		return ImportReport{}, fmt.Errorf("%w: %q", entities.ErrUnsupportedFile, filename)
	}
	if err != nil {
		return ImportReport{}, err
	}

	report := ImportReport{}
	for _, re := range rowErrs {
		report.Errors = append(report.Errors, ImportError{Row: re.Row, Source: filename, Message: re.Message})
	}
	imported, err := s.save(ctx, phones)
	if err != nil {
		return report, err
	}
	report.Imported = imported

	s.logger.Info("catalog file imported",
		slog.String("file", filename),
		slog.Int("imported", report.Imported),
		slog.Int("rejected", len(report.Errors)),
	)
	return report, nil
}

// ImportGSMArena searches the API and imports up to limit results. Detail
// pages are fetched concurrently.
func (s *catalogService) ImportGSMArena(ctx context.Context, query string, limit int) (ImportReport, error) {
	results, err := s.source.Search(ctx, query)
	if err != nil {
		return ImportReport{}, fmt.Errorf("failed to search %q: %w", query, err)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	fetched := make([]*entities.Phone, len(results))
	var (
		mu     sync.Mutex
		report ImportReport
		down   bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, res := range results {
		g.Go(func() error {
			phone, err := s.source.Phone(gctx, res.ID)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				mu.Lock()
				defer mu.Unlock()
				down = down || errors.Is(err, entities.ErrSourceUnavailable)
				report.Errors = append(report.Errors, ImportError{Source: res.ID, Message: err.Error()})
				return nil
			}
			fetched[i] = &phone
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ImportReport{}, err
	}

	phones := make([]entities.Phone, 0, len(fetched))
	for _, p := range fetched {
		if p != nil {
			phones = append(phones, *p)
		}
	}
	if len(phones) == 0 && down {
		return report, entities.ErrSourceUnavailable
	}

	imported, err := s.save(ctx, phones)
	if err != nil {
		return report, err
	}
	report.Imported = imported

	s.logger.Info("gsmarena import finished",
		slog.String("query", query),
		slog.Int("imported", report.Imported),
		slog.Int("failed", len(report.Errors)),
	)
	return report, nil
}

// ImportSmartprix scrapes the given product pages one by one; the scraper
// paces the requests.
func (s *catalogService) ImportSmartprix(ctx context.Context, urls []string) (ImportReport, error) {
	report := ImportReport{}
	phones := make([]entities.Phone, 0, len(urls))
	for _, u := range urls {
		phone, err := s.scraper.Scrape(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			report.Errors = append(report.Errors, ImportError{Source: u, Message: err.Error()})
			continue
		}
		phones = append(phones, phone)
	}

	imported, err := s.save(ctx, phones)
	if err != nil {
		return report, err
	}
	report.Imported = imported

	s.logger.Info("smartprix import finished", slog.Int("imported", report.Imported), slog.Int("failed", len(report.Errors)))
	return report, nil
}

// ImportPhones stores already parsed records, e.g. from the catalog feed.
func (s *catalogService) ImportPhones(ctx context.Context, phones []entities.Phone) error {
	for i := range phones {
		p := &phones[i]
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Brand) == "" {
			return entities.NewValidationError("Phone name and brand are required", "name", "brand")
		}
		if p.ID == "" {
			p.ID = catalog.PhoneID(p.Brand, p.Name)
		}
	}
	_, err := s.save(ctx, phones)
	return err
}

// save stores phones and returns how many distinct ids were written. The
// repository keeps the first record of a repeated id.
func (s *catalogService) save(ctx context.Context, phones []entities.Phone) (int, error) {
	if len(phones) == 0 {
		return 0, nil
	}
	if err := s.repo.SavePhones(ctx, phones); err != nil {
		return 0, fmt.Errorf("failed to save phones: %w", err)
	}
	return distinctIDs(phones), nil
}

func distinctIDs(phones []entities.Phone) int {
	seen := make(map[string]struct{}, len(phones))
	for _, p := range phones {
		seen[p.ID] = struct{}{}
	}
	return len(seen)
}
