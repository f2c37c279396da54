package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appclient "github.com/lumiere-beauty/storefront-api/internal/client"
	"github.com/lumiere-beauty/storefront-api/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared in-memory database so every pooled connection sees
	// the same tables.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := appclient.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price string, stock int) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:     name,
		Category: "skincare",
		Price:    mustDecimal(t, price),
		Stock:    stock,
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		Email:    email,
		Password: "x",
		Phone:    "555-0100",
		Role:     model.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// fakeCheckoutClient stands in for the hosted payment provider.
type fakeCheckoutClient struct {
	sessions  map[string]*appclient.CheckoutSession
	createErr error
	nextID    int
}

func newFakeCheckoutClient() *fakeCheckoutClient {
	return &fakeCheckoutClient{sessions: map[string]*appclient.CheckoutSession{}}
}

func (f *fakeCheckoutClient) CreateSession(_ context.Context, params *appclient.CreateSessionParams) (*appclient.CheckoutSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	session := &appclient.CheckoutSession{
		ID:            fmt.Sprintf("cs_test_%d", f.nextID),
		URL:           fmt.Sprintf("https://pay.example.com/cs_test_%d", f.nextID),
		PaymentStatus: "unpaid",
		Metadata:      params.Metadata,
	}
	f.sessions[session.ID] = session
	return session, nil
}

func (f *fakeCheckoutClient) RetrieveSession(_ context.Context, sessionID string) (*appclient.CheckoutSession, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, appclient.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeCheckoutClient) complete(sessionID, paymentIntentID string) {
	session := f.sessions[sessionID]
	session.PaymentStatus = "paid"
	session.PaymentIntentID = paymentIntentID
}
