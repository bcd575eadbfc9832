package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// In-memory repository fakes shared by the service tests.

type mockCounterRepo struct {
	mu   sync.Mutex
	seqs map[string]int64

	nextError error
}

func newMockCounterRepo() *mockCounterRepo {
	return &mockCounterRepo{seqs: make(map[string]int64)}
}

func (m *mockCounterRepo) Next(ctx context.Context, orderType string) (int64, error) {
	if m.nextError != nil {
		return 0, m.nextError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seqs[orderType]++
	return m.seqs[orderType], nil
}

type mockItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Item
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (m *mockItemRepo) Create(ctx context.Context, item *entity.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()
	m.items[item.ID] = item
	return nil
}

func (m *mockItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (m *mockItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []entity.Item
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (m *mockItemRepo) Update(ctx context.Context, item *entity.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
	return nil
}

func (m *mockItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *mockItemRepo) List(ctx context.Context, search string, params *pagination.PaginationParams) ([]entity.Item, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []entity.Item{}
	for _, item := range m.items {
		if search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(search)) {
			continue
		}
		result = append(result, *item)
	}
	return result, int64(len(result)), nil
}

type mockShopOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.ShopOrder

	createError error
}

func newMockShopOrderRepo() *mockShopOrderRepo {
	return &mockShopOrderRepo{orders: make(map[uuid.UUID]*entity.ShopOrder)}
}

func (m *mockShopOrderRepo) Create(ctx context.Context, order *entity.ShopOrder) error {
	if m.createError != nil {
		return m.createError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	m.orders[order.ID] = order
	return nil
}

func (m *mockShopOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ShopOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (m *mockShopOrderRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.ShopOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, order := range m.orders {
		if order.InvoiceNo == invoiceNo {
			copied := *order
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockShopOrderRepo) List(ctx context.Context, params *repository.ShopOrderFilterParams) ([]entity.ShopOrder, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []entity.ShopOrder{}
	for _, order := range m.orders {
		if params.RangeApplies() {
			if order.CreatedAt.Before(*params.From) || order.CreatedAt.After(*params.To) {
				continue
			}
		}
		result = append(result, *order)
	}
	return result, int64(len(result)), nil
}

func (m *mockShopOrderRepo) DeleteWithItems(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, id)
	return nil
}

type mockSupplierRepo struct {
	mu        sync.Mutex
	suppliers map[uuid.UUID]*entity.Supplier
}

func newMockSupplierRepo() *mockSupplierRepo {
	return &mockSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
}

func (m *mockSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *mockSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	supplier, ok := m.suppliers[id]
	if !ok {
		return nil, nil
	}
	copied := *supplier
	return &copied, nil
}

func (m *mockSupplierRepo) GetByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, supplier := range m.suppliers {
		if supplier.Email != nil && *supplier.Email == email {
			copied := *supplier
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *mockSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.suppliers, id)
	return nil
}

func (m *mockSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Supplier, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []entity.Supplier{}
	for _, supplier := range m.suppliers {
		result = append(result, *supplier)
	}
	return result, int64(len(result)), nil
}

type mockPurchaseOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.PurchaseOrder
}

func newMockPurchaseOrderRepo() *mockPurchaseOrderRepo {
	return &mockPurchaseOrderRepo{orders: make(map[uuid.UUID]*entity.PurchaseOrder)}
}

func (m *mockPurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	m.orders[order.ID] = order
	return nil
}

func (m *mockPurchaseOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (m *mockPurchaseOrderRepo) Update(ctx context.Context, order *entity.PurchaseOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *mockPurchaseOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, id)
	return nil
}

func (m *mockPurchaseOrderRepo) List(ctx context.Context, params *repository.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []entity.PurchaseOrder{}
	for _, order := range m.orders {
		if params.SupplierID != nil && order.SupplierID != *params.SupplierID {
			continue
		}
		result = append(result, *order)
	}
	return result, int64(len(result)), nil
}

type mockReceiveOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.ReceiveOrder
}

func newMockReceiveOrderRepo() *mockReceiveOrderRepo {
	return &mockReceiveOrderRepo{orders: make(map[uuid.UUID]*entity.ReceiveOrder)}
}

func (m *mockReceiveOrderRepo) Create(ctx context.Context, order *entity.ReceiveOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockReceiveOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiveOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (m *mockReceiveOrderRepo) GetByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) (*entity.ReceiveOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, order := range m.orders {
		if order.PurchaseOrderID == purchaseOrderID {
			copied := *order
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockReceiveOrderRepo) Update(ctx context.Context, order *entity.ReceiveOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *mockReceiveOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, id)
	return nil
}

func (m *mockReceiveOrderRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.ReceiveOrder, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []entity.ReceiveOrder{}
	for _, order := range m.orders {
		result = append(result, *order)
	}
	return result, int64(len(result)), nil
}

type mockAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (m *mockAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (m *mockAccountRepo) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *mockAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
	return nil
}

func (m *mockAccountRepo) List(ctx context.Context) ([]entity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []entity.Account{}
	for _, account := range m.accounts {
		result = append(result, *account)
	}
	return result, nil
}

type mockFinanceRepo struct {
	revenue []repository.DailyRevenueRow
	expense []repository.DailyExpenseRow
	counts  repository.DashboardCounts
	total   decimal.Decimal

	lastRange *repository.DateRange
}

func (m *mockFinanceRepo) DailyRevenue(ctx context.Context, rng *repository.DateRange) ([]repository.DailyRevenueRow, error) {
	m.lastRange = rng
	return m.revenue, nil
}

func (m *mockFinanceRepo) DailyExpense(ctx context.Context, rng *repository.DateRange) ([]repository.DailyExpenseRow, error) {
	return m.expense, nil
}

func (m *mockFinanceRepo) Counts(ctx context.Context) (*repository.DashboardCounts, error) {
	counts := m.counts
	return &counts, nil
}

func (m *mockFinanceRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return m.total, nil
}
