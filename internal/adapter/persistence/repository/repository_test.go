package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"construction_console/internal/adapter/persistence/outbox"
	"construction_console/internal/adapter/persistence/store"
	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
	mock_interfaces "construction_console/internal/usecase/interfaces/mocks"
)

// directWrites applies every write before returning.
type directWrites struct {
	store interfaces.IRemoteStore
}

func (d directWrites) Dispatch(ctx context.Context, op interfaces.WriteOp) error {
	return outbox.Apply(ctx, d.store, op)
}

func TestLayout(t *testing.T) {
	l := NewLayout("pixar-pro-default-user")
	assert.Equal(t, "users/pixar-pro-default-user", l.Root())
	assert.Equal(t, "users/pixar-pro-default-user/items", l.Items())
	assert.Equal(t, "users/pixar-pro-default-user/estimates", l.Estimates())
	assert.Equal(t, "users/pixar-pro-default-user/customers", l.Customers())
	assert.Equal(t, "users/pixar-pro-default-user/followups", l.FollowUps())
	assert.Equal(t, "users/pixar-pro-default-user/info", l.Info())
	assert.Equal(t, "users/pixar-pro-default-user/logo", l.Logo())
}

func TestEstimateStoreRepository_WriteKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	writes := mock_interfaces.NewMockIWriteDispatcher(ctrl)
	repo := NewEstimateStoreRepository(store.NewMemoryStore(), writes, NewLayout("t"))

	e := entities.Estimate{ID: "e1", EstimateNumber: "EST-000001", Version: 1, Status: entities.EstimateStatusPending}

	var ops []interfaces.WriteOp
	writes.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, op interfaces.WriteOp) error {
		ops = append(ops, op)
		return nil
	}).Times(3)

	require.NoError(t, repo.Create(context.Background(), e))
	require.NoError(t, repo.Update(context.Background(), e))
	require.NoError(t, repo.Delete(context.Background(), "e1"))

	require.Len(t, ops, 3)
	assert.Equal(t, interfaces.WriteSet, ops[0].Kind)
	assert.Equal(t, "users/t/estimates/e1", ops[0].Path)
	assert.Equal(t, interfaces.WriteSet, ops[1].Kind)
	assert.Equal(t, interfaces.WriteDelete, ops[2].Kind)
	assert.Nil(t, ops[2].Value)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(ops[0].Value, &stored))
	assert.Equal(t, "e1", stored["id"])
	assert.Equal(t, "EST-000001", stored["estimateNumber"])
	_, hasParent := stored["parentId"]
	assert.False(t, hasParent)
}

func TestStoreCollection_RejectsMissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	writes := mock_interfaces.NewMockIWriteDispatcher(ctrl)
	repo := NewItemStoreRepository(store.NewMemoryStore(), writes, NewLayout("t"))

	assert.ErrorIs(t, repo.Create(context.Background(), entities.Item{Name: "Cement"}), ErrMissingID)
	assert.ErrorIs(t, repo.Delete(context.Background(), "a/b"), ErrMissingID)
}

func TestItemStoreRepository_ListAndSync(t *testing.T) {
	s := store.NewMemoryStore()
	repo := NewItemStoreRepository(s, directWrites{store: s}, NewLayout("t"))
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, repo.Create(ctx, entities.Item{ID: "b", Name: "Sand", Type: entities.ItemTypeGoods, GSTRate: 5}))
	require.NoError(t, repo.Create(ctx, entities.Item{ID: "a", Name: "Cement", Type: entities.ItemTypeGoods, GSTRate: 18}))
	// A child stored without an embedded id takes its key.
	require.NoError(t, s.Write(ctx, "users/t/items/c", json.RawMessage(`{"name":"Labour","type":"Service"}`)))

	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})

	var snapshots [][]entities.Item
	stop := repo.Sync(func(list []entities.Item) { snapshots = append(snapshots, list) }, nil)
	defer stop()
	require.Len(t, snapshots, 3)

	require.NoError(t, repo.Update(ctx, entities.Item{ID: "a", Name: "Cement OPC", Type: entities.ItemTypeGoods, GSTRate: 18}))
	require.NoError(t, repo.Delete(ctx, "b"))
	require.Len(t, snapshots, 5)

	last := snapshots[len(snapshots)-1]
	require.Len(t, last, 2)
	assert.Equal(t, "Cement OPC", last[0].Name)
	assert.Equal(t, "c", last[1].ID)
}

func TestCustomerAndFollowUpRepositories(t *testing.T) {
	s := store.NewMemoryStore()
	w := directWrites{store: s}
	ctx := context.Background()
	customers := NewCustomerStoreRepository(s, w, NewLayout("t"))
	followUps := NewFollowUpStoreRepository(s, w, NewLayout("t"))

	created := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, customers.Create(ctx, entities.Customer{ID: "CUST-1", Name: "Asha", Phone: "9876543210", CreatedAt: created}))
	require.NoError(t, customers.Update(ctx, entities.Customer{ID: "CUST-1", Name: "Asha", Phone: "9876543210", Email: "asha@example.com", CreatedAt: created}))
	require.NoError(t, followUps.Create(ctx, entities.FollowUp{ID: "FLW-1", CustomerID: "CUST-1", Date: "2025-03-08", Time: "10:00", Status: entities.FollowUpStatusPending}))

	cs, err := customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "asha@example.com", cs[0].Email)
	assert.True(t, cs[0].CreatedAt.Equal(created))

	fs, err := followUps.List(ctx)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, "CUST-1", fs[0].CustomerID)

	require.NoError(t, followUps.Delete(ctx, "FLW-1"))
	fs, err = followUps.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, fs)
}

func TestCompanyStoreRepository(t *testing.T) {
	s := store.NewMemoryStore()
	repo := NewCompanyStoreRepository(s, directWrites{store: s}, NewLayout("t"))
	ctx := context.Background()

	_, found, err := repo.GetInfo(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	type infoEvent struct {
		info  entities.CompanyInfo
		found bool
	}
	var infos []infoEvent
	var logos []string
	stopInfo := repo.WatchInfo(func(info entities.CompanyInfo, found bool) { infos = append(infos, infoEvent{info, found}) }, nil)
	defer stopInfo()
	stopLogo := repo.WatchLogo(func(logo string, found bool) {
		if found {
			logos = append(logos, logo)
		} else {
			logos = append(logos, "<none>")
		}
	}, nil)
	defer stopLogo()

	info := entities.CompanyInfo{Name: "Pixar Pro", Email: "hello@example.com", Phone: "+91 98765 43210", Address: "Pune"}
	require.NoError(t, repo.SaveInfo(ctx, info))
	require.NoError(t, repo.SaveLogo(ctx, "data:image/png;base64,AAAA"))
	require.NoError(t, repo.DeleteLogo(ctx))

	got, found, err := repo.GetInfo(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, info, got)

	_, found, err = repo.GetLogo(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.Len(t, infos, 2)
	assert.False(t, infos[0].found)
	assert.Equal(t, info, infos[1].info)
	assert.Equal(t, []string{"<none>", "data:image/png;base64,AAAA", "<none>"}, logos)
}

func TestCompanyStoreRepository_DecodeError(t *testing.T) {
	s := store.NewMemoryStore()
	repo := NewCompanyStoreRepository(s, directWrites{store: s}, NewLayout("t"))
	require.NoError(t, s.Write(context.Background(), "users/t/logo", json.RawMessage(`{"not":"a string"}`)))

	var errs []error
	stop := repo.WatchLogo(func(string, bool) { t.Fatal("unexpected logo") }, func(err error) { errs = append(errs, err) })
	defer stop()
	assert.Len(t, errs, 1)
}
