package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront-api/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
}

// CSVImporter reads catalog CSV exports and inserts products, creating
// referenced categories on the fly.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryStore

	categoryIDs map[string]string
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryStore) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		products:   products,
		categories: categories,
	}
}

type csvRow struct {
	Name     string
	Desc     string
	Cents    int64
	Stock    int
	ImageURL string
	Category string
}

// Run parses CSV rows and inserts one product per row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	if err := i.loadCategories(ctx); err != nil {
		return 0, err
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}
		if err := i.save(ctx, row); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.Name == "" || row.Category == "" {
		return fmt.Errorf("invalid product row (missing name or category) for %q", row.Name)
	}
	if row.Cents < 0 || row.Stock < 0 {
		return fmt.Errorf("negative price or stock for %q", row.Name)
	}

	categoryID, err := i.ensureCategory(ctx, row.Category)
	if err != nil {
		return fmt.Errorf("ensure category %q: %w", row.Category, err)
	}

	_, err = i.products.Create(ctx, domain.Product{
		Name:        row.Name,
		Description: row.Desc,
		PriceCents:  row.Cents,
		Stock:       row.Stock,
		ImageURL:    row.ImageURL,
		CategoryID:  categoryID,
	})
	if err != nil {
		return fmt.Errorf("insert product %q: %w", row.Name, err)
	}
	return nil
}

func (i *CSVImporter) loadCategories(ctx context.Context) error {
	existing, err := i.categories.List(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	i.categoryIDs = make(map[string]string, len(existing))
	for _, c := range existing {
		i.categoryIDs[strings.ToLower(c.Name)] = c.ID
	}
	return nil
}

func (i *CSVImporter) ensureCategory(ctx context.Context, name string) (string, error) {
	key := strings.ToLower(name)
	if id, ok := i.categoryIDs[key]; ok {
		return id, nil
	}
	created, err := i.categories.Create(ctx, domain.Category{Name: name})
	if err != nil {
		return "", err
	}
	i.categoryIDs[key] = created.ID
	return created.ID, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	row := csvRow{
		Name:     field("name"),
		Desc:     field("description"),
		ImageURL: field("image_url"),
		Category: field("category"),
	}
	if row.Name == "" && row.Category == "" {
		return nil
	}
	if v := field("price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			row.Cents = cents
		}
	}
	if v := field("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err == nil {
			row.Stock = stock
		}
	}
	return &row
}
