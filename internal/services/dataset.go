package services

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"superstore-dashboard/internal/models"
)

const (
	batchSize  = 10000
	maxWorkers = 10

	DefaultSeed = 42
	DefaultRows = 10000
)

// Value pools for the synthetic dataset. Same pools and distributions as the
// historical superstore sample the dashboard was built around.
var (
	categoryPool    = []string{"Furniture", "Office Supplies", "Technology"}
	subCategoryPool = []string{"Chairs", "Tables", "Paper", "Binders", "Phones", "Accessories"}
	segmentPool     = []string{"Consumer", "Corporate", "Home Office"}
	statePool       = []string{"California", "New York", "Texas", "Florida", "Pennsylvania"}
	cityPool        = []string{"Los Angeles", "New York City", "Houston", "Philadelphia", "San Francisco"}
	discountPool    = []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5}
	shipModePool    = []string{"Standard Class", "Second Class", "First Class", "Same Day"}
)

// Analytics holds the order dataset and answers every report of the dashboard.
// The dataset is produced once and read-only afterwards; SetData swaps the
// whole snapshot under the write lock.
type Analytics struct {
	mu       sync.RWMutex
	orders   []models.Order
	loadedAt time.Time
	logger   *slog.Logger
}

func NewAnalytics() *Analytics {
	return &Analytics{logger: slog.Default()}
}

func (a *Analytics) SetData(orders []models.Order) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.orders = orders
	a.loadedAt = time.Now()
}

// Orders returns the current snapshot. Callers must not mutate it.
func (a *Analytics) Orders() []models.Order {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.orders
}

// GenerateOrders synthesizes n rows with order dates drawn from [start, end].
// The same seed always yields the same dataset.
func GenerateOrders(seed int64, n int, start, end time.Time) []models.Order {
	rng := rand.New(rand.NewSource(seed))
	days := int(end.Sub(start).Hours()/24) + 1

	orders := make([]models.Order, n)
	for i := range orders {
		o := models.Order{
			OrderDate:   start.AddDate(0, 0, rng.Intn(days)),
			Category:    categoryPool[rng.Intn(len(categoryPool))],
			SubCategory: subCategoryPool[rng.Intn(len(subCategoryPool))],
			Segment:     segmentPool[rng.Intn(len(segmentPool))],
			State:       statePool[rng.Intn(len(statePool))],
			City:        cityPool[rng.Intn(len(cityPool))],
			Sales:       10 + rng.Float64()*(5000-10),
			Quantity:    1 + rng.Intn(9),
			Discount:    discountPool[rng.Intn(len(discountPool))],
			Profit:      -1000 + rng.Float64()*3000,
			ShipMode:    shipModePool[rng.Intn(len(shipModePool))],
		}
		deriveFields(&o)
		orders[i] = o
	}
	return orders
}

// DefaultDateRange is the span the synthetic order dates are drawn from.
func DefaultDateRange() (time.Time, time.Time) {
	return time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 12, 31, 0, 0, 0, 0, time.UTC)
}

func deriveFields(o *models.Order) {
	o.Year = o.OrderDate.Year()
	o.Month = int(o.OrderDate.Month())
	if o.Sales != 0 {
		o.ProfitMargin = round2(o.Profit / o.Sales * 100)
	} else {
		o.ProfitMargin = 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LoadFromCSV stream-loads a dataset in the export schema. Rows that fail to
// parse are skipped; a file with no valid rows is an error.
func (a *Analytics) LoadFromCSV(ctx context.Context, filename string) error {
	start := time.Now()
	a.logger.Info("processing CSV file", "filename", filename)

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024) // 10MB buffer

	// Skip header
	if !scanner.Scan() {
		return fmt.Errorf("empty file")
	}

	var orders []models.Order
	batch := make([]string, 0, batchSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch = append(batch, scanner.Text())

		if len(batch) >= batchSize {
			parsed, err := parseBatch(ctx, batch)
			if err != nil {
				return err
			}
			orders = append(orders, parsed...)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		parsed, err := parseBatch(ctx, batch)
		if err != nil {
			return err
		}
		orders = append(orders, parsed...)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if len(orders) == 0 {
		return fmt.Errorf("no valid records found")
	}

	a.SetData(orders)

	duration := time.Since(start)
	a.logger.Info("csv processing complete",
		"records", len(orders),
		"duration", duration,
		"rate", fmt.Sprintf("%.0f records/sec", float64(len(orders))/duration.Seconds()))

	return nil
}

func parseBatch(ctx context.Context, batch []string) ([]models.Order, error) {
	results := make([]*models.Order, len(batch))

	var wg errgroup.Group
	wg.SetLimit(maxWorkers)

	for i, line := range batch {
		wg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			record := strings.Split(line, ",")
			o, err := parseOrderFast(record)
			if err != nil {
				return nil // skip invalid records
			}
			results[i] = &o
			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(batch))
	for _, o := range results {
		if o != nil {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func parseOrderFast(record []string) (models.Order, error) {
	if len(record) < 11 {
		return models.Order{}, fmt.Errorf("insufficient columns")
	}

	orderDate, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
	if err != nil {
		return models.Order{}, err
	}

	sales, err := strconv.ParseFloat(strings.TrimSpace(record[6]), 64)
	if err != nil {
		return models.Order{}, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(record[7]))
	if err != nil {
		return models.Order{}, err
	}

	discount, err := strconv.ParseFloat(strings.TrimSpace(record[8]), 64)
	if err != nil {
		return models.Order{}, err
	}

	profit, err := strconv.ParseFloat(strings.TrimSpace(record[9]), 64)
	if err != nil {
		return models.Order{}, err
	}

	o := models.Order{
		OrderDate:   orderDate,
		Category:    strings.TrimSpace(record[1]),
		SubCategory: strings.TrimSpace(record[2]),
		Segment:     strings.TrimSpace(record[3]),
		State:       strings.TrimSpace(record[4]),
		City:        strings.TrimSpace(record[5]),
		Sales:       sales,
		Quantity:    quantity,
		Discount:    discount,
		Profit:      profit,
		ShipMode:    strings.TrimSpace(record[10]),
	}
	deriveFields(&o)
	return o, nil
}

// Stats reports dataset shape for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	categories := make(map[string]struct{})
	states := make(map[string]struct{})
	for _, o := range a.orders {
		categories[o.Category] = struct{}{}
		states[o.State] = struct{}{}
	}

	return map[string]any{
		"record_count": len(a.orders),
		"loaded_at":    a.loadedAt,
		"categories":   len(categories),
		"states":       len(states),
	}
}
