package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/migrations"
	"github.com/ghuser/orderdesk/pkg/audit"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/migrator"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// Runs against a real PostgreSQL when TEST_DATABASE_URL is set.
func TestOrderRepository_ConcurrentCreatesGetDistinctNumbers(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	log := logger.Discard()

	sqlDB, err := migrator.Open(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, migrator.Up(ctx, sqlDB, migrations.FS(), log))

	var personID, itemID int64
	require.NoError(t, sqlDB.QueryRowContext(ctx,
		`INSERT INTO person.persons (first_name, last_name, email) VALUES ('Ana', 'Gomez', $1) RETURNING id`,
		"numbering-"+time.Now().Format("150405.000000")+"@x.com",
	).Scan(&personID))
	require.NoError(t, sqlDB.QueryRowContext(ctx,
		`INSERT INTO item.items (name, price, created_by) VALUES ('Widget', 10.00, 'test') RETURNING id`,
	).Scan(&itemID))

	repo := NewOrderRepository(database.New(sqlDB, log), nil, database.RetryPolicy{MaxRetries: 5})

	const workers = 16
	numbers := make([]int64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stamp := audit.New("test", time.Now())
			price := decimal.RequireFromString("10.00")
			o := &models.Order{
				PersonID: personID,
				Total:    price,
				Stamp:    stamp,
				Details:  []models.OrderDetail{{ItemID: itemID, Quantity: 1, Price: price, Total: price, Stamp: stamp}},
			}
			errs[i] = repo.Create(ctx, o)
			numbers[i] = o.OrderNumber
		}()
	}
	wg.Wait()

	seen := make(map[int64]bool, workers)
	for i := range workers {
		require.NoError(t, errs[i])
		assert.False(t, seen[numbers[i]], "order number %d handed out twice", numbers[i])
		seen[numbers[i]] = true
	}
}
