package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/domain/pricing"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testActor() entity.Account {
	return entity.Account{
		ID:          uuid.New(),
		Username:    "sokha",
		DisplayName: "Sokha",
		Kind:        enum.AccountKindEmployee,
	}
}

func seedItem(t *testing.T, repo *mockItemRepo, name, price string) *entity.Item {
	t.Helper()
	item := &entity.Item{Name: name, Price: dec(price)}
	require.NoError(t, repo.Create(context.Background(), item))
	return item
}

func newOrderService() (*OrderService, *mockShopOrderRepo, *mockItemRepo, *mockCounterRepo) {
	orderRepo := newMockShopOrderRepo()
	itemRepo := newMockItemRepo()
	counterRepo := newMockCounterRepo()
	return NewOrderService(orderRepo, itemRepo, counterRepo), orderRepo, itemRepo, counterRepo
}

func TestCreateOrderComputesTotal(t *testing.T) {
	svc, _, itemRepo, _ := newOrderService()
	coffee := seedItem(t, itemRepo, "Iced Latte", "2.50")
	tea := seedItem(t, itemRepo, "Green Tea", "1.75")

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Actor:         testActor(),
		PaymentMethod: enum.PaymentMethodCash,
		Items: []OrderLineInput{
			{ItemID: coffee.ID, Quantity: dec("2"), Price: dec("2.50"), Discount: dec("10")},
			{ItemID: tea.ID, Quantity: dec("1"), Price: dec("1.75"), Discount: decimal.Zero},
		},
	})
	require.NoError(t, err)

	// 2*2.50*0.9 = 4.50, plus 1.75
	assert.Equal(t, "6.25", order.TotalPay.StringFixed(2))
	assert.Equal(t, "INV-0001", order.InvoiceNo)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Sokha", order.PaidBy)
}

func TestCreateOrderSumsBeforeRounding(t *testing.T) {
	svc, _, itemRepo, _ := newOrderService()
	item := seedItem(t, itemRepo, "Sticker", "0.33")

	// Three lines of 1 * 0.33 with a 49.5% discount each:
	// per-line 0.166650, rounded per line would give 0.17*3 = 0.51,
	// summing first gives 0.499950 -> 0.50.
	lines := make([]OrderLineInput, 3)
	for i := range lines {
		lines[i] = OrderLineInput{
			ItemID:   item.ID,
			Quantity: dec("1"),
			Price:    dec("0.33"),
			Discount: dec("49.5"),
		}
	}

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Actor:         testActor(),
		PaymentMethod: enum.PaymentMethodKHQR,
		Items:         lines,
	})
	require.NoError(t, err)
	assert.Equal(t, "0.50", order.TotalPay.StringFixed(2))
}

func TestCreateOrderFractionalQuantity(t *testing.T) {
	svc, _, itemRepo, _ := newOrderService()
	item := seedItem(t, itemRepo, "Beans", "4.00")

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Actor:         testActor(),
		PaymentMethod: enum.PaymentMethodCash,
		Items: []OrderLineInput{
			{ItemID: item.ID, Quantity: dec("0.25"), Price: dec("4.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "1.00", order.TotalPay.StringFixed(2))
}

func TestCreateOrderSequentialInvoiceNumbers(t *testing.T) {
	svc, _, itemRepo, _ := newOrderService()
	item := seedItem(t, itemRepo, "Water", "0.50")

	for i := 1; i <= 3; i++ {
		order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
			Actor:         testActor(),
			PaymentMethod: enum.PaymentMethodCash,
			Items: []OrderLineInput{
				{ItemID: item.ID, Quantity: dec("1"), Price: dec("0.50")},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV-%04d", i), order.InvoiceNo)
	}
}

func TestCreateOrderConcurrentInvoicesDistinct(t *testing.T) {
	svc, orderRepo, itemRepo, _ := newOrderService()
	item := seedItem(t, itemRepo, "Espresso", "1.50")
	actor := testActor()

	const n = 50
	var wg sync.WaitGroup
	errs := make([]error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateOrder(context.Background(), &CreateOrderInput{
				Actor:         actor,
				PaymentMethod: enum.PaymentMethodCash,
				Items: []OrderLineInput{
					{ItemID: item.ID, Quantity: dec("1"), Price: dec("1.50")},
				},
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, order := range orderRepo.orders {
		assert.False(t, seen[order.InvoiceNo], "invoice %s assigned twice", order.InvoiceNo)
		seen[order.InvoiceNo] = true
	}
	assert.Len(t, seen, n)
}

func TestCreateOrderValidationRejectsBeforePersistence(t *testing.T) {
	svc, orderRepo, itemRepo, counterRepo := newOrderService()
	item := seedItem(t, itemRepo, "Latte", "3.00")

	cases := []struct {
		name  string
		input *CreateOrderInput
	}{
		{
			name: "empty items",
			input: &CreateOrderInput{
				Actor:         testActor(),
				PaymentMethod: enum.PaymentMethodCash,
			},
		},
		{
			name: "bad payment method",
			input: &CreateOrderInput{
				Actor:         testActor(),
				PaymentMethod: "credit_card",
				Items: []OrderLineInput{
					{ItemID: item.ID, Quantity: dec("1"), Price: dec("3.00")},
				},
			},
		},
		{
			name: "zero quantity",
			input: &CreateOrderInput{
				Actor:         testActor(),
				PaymentMethod: enum.PaymentMethodCash,
				Items: []OrderLineInput{
					{ItemID: item.ID, Quantity: decimal.Zero, Price: dec("3.00")},
				},
			},
		},
		{
			name: "negative quantity",
			input: &CreateOrderInput{
				Actor:         testActor(),
				PaymentMethod: enum.PaymentMethodCash,
				Items: []OrderLineInput{
					{ItemID: item.ID, Quantity: dec("-1"), Price: dec("3.00")},
				},
			},
		},
		{
			name: "too fine quantity",
			input: &CreateOrderInput{
				Actor:         testActor(),
				PaymentMethod: enum.PaymentMethodCash,
				Items: []OrderLineInput{
					{ItemID: item.ID, Quantity: dec("0.125"), Price: dec("3.00")},
				},
			},
		},
		{
			name: "negative price",
			input: &CreateOrderInput{
				Actor:         testActor(),
				PaymentMethod: enum.PaymentMethodCash,
				Items: []OrderLineInput{
					{ItemID: item.ID, Quantity: dec("1"), Price: dec("-3.00")},
				},
			},
		},
		{
			name: "discount above 100",
			input: &CreateOrderInput{
				Actor:         testActor(),
				PaymentMethod: enum.PaymentMethodCash,
				Items: []OrderLineInput{
					{ItemID: item.ID, Quantity: dec("1"), Price: dec("3.00"), Discount: dec("101")},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateOrder(context.Background(), tc.input)
			require.Error(t, err)

			appErr := apperror.GetAppError(err)
			assert.Equal(t, 422, appErr.Code)
			assert.NotEmpty(t, appErr.Errors)
		})
	}

	// Nothing was stored and no sequence value was consumed
	assert.Empty(t, orderRepo.orders)
	assert.Zero(t, counterRepo.seqs[entity.OrderTypeShop])
}

func TestCreateOrderUnknownItem(t *testing.T) {
	svc, orderRepo, _, _ := newOrderService()

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Actor:         testActor(),
		PaymentMethod: enum.PaymentMethodCash,
		Items: []OrderLineInput{
			{ItemID: uuid.New(), Quantity: dec("1"), Price: dec("3.00")},
		},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	assert.Empty(t, orderRepo.orders)
}

func TestCreateOrderOptionsDoNotAffectTotal(t *testing.T) {
	svc, _, itemRepo, _ := newOrderService()
	item := seedItem(t, itemRepo, "Milk Tea", "2.00")

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Actor:         testActor(),
		PaymentMethod: enum.PaymentMethodCash,
		Items: []OrderLineInput{
			{
				ItemID:   item.ID,
				Quantity: dec("1"),
				Price:    dec("2.00"),
				Options: []pricing.Option{
					{Name: "Sugar", Values: []string{"50%"}},
					{Name: "Topping", Values: []string{"Pearl", "Jelly"}},
				},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2.00", order.TotalPay.StringFixed(2))
	require.Len(t, order.Items, 1)
	assert.Len(t, order.Items[0].Options, 2)
}

func TestDeleteOrderRemovesOrder(t *testing.T) {
	svc, orderRepo, itemRepo, _ := newOrderService()
	item := seedItem(t, itemRepo, "Mocha", "3.50")

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Actor:         testActor(),
		PaymentMethod: enum.PaymentMethodCash,
		Items: []OrderLineInput{
			{ItemID: item.ID, Quantity: dec("1"), Price: dec("3.50")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), order.ID))
	assert.Empty(t, orderRepo.orders)

	err = svc.DeleteOrder(context.Background(), order.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeletedInvoiceNumberNeverReused(t *testing.T) {
	svc, _, itemRepo, _ := newOrderService()
	item := seedItem(t, itemRepo, "Cappuccino", "2.75")

	create := func() *entity.ShopOrder {
		order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
			Actor:         testActor(),
			PaymentMethod: enum.PaymentMethodCash,
			Items: []OrderLineInput{
				{ItemID: item.ID, Quantity: dec("1"), Price: dec("2.75")},
			},
		})
		require.NoError(t, err)
		return order
	}

	first := create()
	require.NoError(t, svc.DeleteOrder(context.Background(), first.ID))

	second := create()
	assert.Equal(t, "INV-0001", first.InvoiceNo)
	assert.Equal(t, "INV-0002", second.InvoiceNo)
}

func TestGetOrderNotFound(t *testing.T) {
	svc, _, _, _ := newOrderService()

	_, err := svc.GetOrder(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
