package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/pkg/apperror"
)

func setupReceiveOrderTest(t *testing.T) (*ReceiveOrderService, *mockPurchaseOrderRepo, *entity.PurchaseOrder) {
	t.Helper()
	receiveRepo := newMockReceiveOrderRepo()
	purchaseRepo := newMockPurchaseOrderRepo()

	purchase := &entity.PurchaseOrder{
		InvoiceNo:  "PO-0001",
		SupplierID: uuid.New(),
		AccountID:  uuid.New(),
		Status:     enum.PurchaseStatusPending,
		TotalPrice: dec("50.00"),
	}
	require.NoError(t, purchaseRepo.Create(context.Background(), purchase))

	return NewReceiveOrderService(receiveRepo, purchaseRepo), purchaseRepo, purchase
}

func TestCreateReceiveOrder(t *testing.T) {
	svc, purchaseRepo, purchase := setupReceiveOrderTest(t)

	order, err := svc.CreateReceiveOrder(context.Background(), &CreateReceiveOrderInput{
		Actor:           testActor(),
		PurchaseOrderID: purchase.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusPending, order.Status)

	// Pending delivery leaves the purchase order untouched
	stored, err := purchaseRepo.GetByID(context.Background(), purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusPending, stored.Status)
}

func TestCreateReceiveOrderCompleteMarksPurchaseOrder(t *testing.T) {
	svc, purchaseRepo, purchase := setupReceiveOrderTest(t)

	_, err := svc.CreateReceiveOrder(context.Background(), &CreateReceiveOrderInput{
		Actor:           testActor(),
		PurchaseOrderID: purchase.ID,
		Status:          enum.PurchaseStatusComplete,
	})
	require.NoError(t, err)

	stored, err := purchaseRepo.GetByID(context.Background(), purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusComplete, stored.Status)
}

func TestCreateReceiveOrderDuplicate(t *testing.T) {
	svc, _, purchase := setupReceiveOrderTest(t)

	_, err := svc.CreateReceiveOrder(context.Background(), &CreateReceiveOrderInput{
		Actor:           testActor(),
		PurchaseOrderID: purchase.ID,
	})
	require.NoError(t, err)

	_, err = svc.CreateReceiveOrder(context.Background(), &CreateReceiveOrderInput{
		Actor:           testActor(),
		PurchaseOrderID: purchase.ID,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateReceiveOrderUnknownPurchaseOrder(t *testing.T) {
	svc, _, _ := setupReceiveOrderTest(t)

	_, err := svc.CreateReceiveOrder(context.Background(), &CreateReceiveOrderInput{
		Actor:           testActor(),
		PurchaseOrderID: uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateReceiveOrderToComplete(t *testing.T) {
	svc, purchaseRepo, purchase := setupReceiveOrderTest(t)

	order, err := svc.CreateReceiveOrder(context.Background(), &CreateReceiveOrderInput{
		Actor:           testActor(),
		PurchaseOrderID: purchase.ID,
	})
	require.NoError(t, err)

	status := enum.PurchaseStatusComplete
	updated, err := svc.UpdateReceiveOrder(context.Background(), order.ID, &UpdateReceiveOrderInput{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusComplete, updated.Status)
	assert.NotNil(t, updated.ReceiveAt)

	stored, err := purchaseRepo.GetByID(context.Background(), purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusComplete, stored.Status)
}

func TestDeleteReceiveOrderKeepsPurchaseStatus(t *testing.T) {
	svc, purchaseRepo, purchase := setupReceiveOrderTest(t)

	order, err := svc.CreateReceiveOrder(context.Background(), &CreateReceiveOrderInput{
		Actor:           testActor(),
		PurchaseOrderID: purchase.ID,
		Status:          enum.PurchaseStatusComplete,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReceiveOrder(context.Background(), order.ID))

	stored, err := purchaseRepo.GetByID(context.Background(), purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusComplete, stored.Status)
}
