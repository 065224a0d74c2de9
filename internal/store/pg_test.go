package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the schema and seed the split rules
	if err := Migrate(testDB); err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// initPGTestDB initializes a test database for each test.
// Each test runs inside a transaction that is rolled back on cleanup.
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	RunStoreTests(t, initPGTestDB)
}

// TestConcurrentCertificateIssuance races several issuers for the same
// content over separate pooled connections. The content_id unique index must
// let exactly one through; the rest see the duplicate error. This cannot run
// inside the rollback harness, so it commits and cleans up after itself.
func TestConcurrentCertificateIssuance(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	ctx := context.Background()
	s := NewPGStore(testDB)

	record := newContentRecord("creator-1")
	_, err := s.CreateContentRecord(ctx, record)
	require.NoError(t, err)
	t.Cleanup(func() {
		testDB.Where("content_id = ?", record.ContentID).Delete(&schema.Certificate{})
		testDB.Where("content_id = ?", record.ContentID).Delete(&schema.ContentRecord{})
	})

	const issuers = 8
	errs := make([]error, issuers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < issuers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = s.CreateCertificate(ctx, newCertificate(record.ContentID, "creator-1"))
		}(i)
	}
	close(start)
	wg.Wait()

	issued := 0
	for _, err := range errs {
		if err == nil {
			issued++
			continue
		}
		require.ErrorIs(t, err, domain.ErrDuplicateCertificate)
	}
	assert.Equal(t, 1, issued)

	var count int64
	require.NoError(t, testDB.Model(&schema.Certificate{}).
		Where("content_id = ?", record.ContentID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestConcurrentWithdrawals races several reservations against one balance
// over separate pooled connections. The row lock must serialize the
// sufficiency checks so only one request can reserve the funds.
func TestConcurrentWithdrawals(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	ctx := context.Background()
	s := NewPGStore(testDB)
	creatorID := "creator-" + uuid.NewString()
	now := time.Now().UTC()

	balance := &schema.CreatorBalance{
		CreatorID:      creatorID,
		AvailableTotal: 1000,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, testDB.Create(balance).Error)
	t.Cleanup(func() {
		testDB.Where("creator_id = ?", creatorID).Delete(&schema.Withdrawal{})
		testDB.Where("creator_id = ?", creatorID).Delete(&schema.CreatorBalance{})
	})

	const requests = 4
	errs := make([]error, requests)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = s.CreateWithdrawal(ctx, &schema.Withdrawal{
				WithdrawalID: uuid.NewString(),
				CreatorID:    creatorID,
				Amount:       600,
				Method:       domain.WithdrawalMethodAlipay,
				Status:       domain.WithdrawalStatusRequested,
				RequestedAt:  now,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
		}(i)
	}
	close(start)
	wg.Wait()

	reserved := 0
	for _, err := range errs {
		if err == nil {
			reserved++
			continue
		}
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	}
	assert.Equal(t, 1, reserved)

	final, err := s.GetCreatorBalance(ctx, creatorID)
	require.NoError(t, err)
	require.NotNil(t, final)
	assert.Equal(t, int64(400), final.AvailableTotal)
}
