package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

// CompanyStoreRepository keeps the letterhead document and the logo data URL, both leaves of
// the tenant root.
type CompanyStoreRepository struct {
	store  interfaces.IRemoteStore
	writes interfaces.IWriteDispatcher
	layout Layout
}

var _ interfaces.ICompanyRepository = (*CompanyStoreRepository)(nil)

func NewCompanyStoreRepository(store interfaces.IRemoteStore, writes interfaces.IWriteDispatcher, layout Layout) *CompanyStoreRepository {
	return &CompanyStoreRepository{store: store, writes: writes, layout: layout}
}

func (r *CompanyStoreRepository) GetInfo(ctx context.Context) (entities.CompanyInfo, bool, error) {
	raw, err := r.store.Get(ctx, r.layout.Info())
	if err != nil {
		return entities.CompanyInfo{}, false, err
	}
	return decodeInfo(raw)
}

func (r *CompanyStoreRepository) GetLogo(ctx context.Context) (string, bool, error) {
	raw, err := r.store.Get(ctx, r.layout.Logo())
	if err != nil {
		return "", false, err
	}
	return decodeLogo(raw)
}

func (r *CompanyStoreRepository) SaveInfo(ctx context.Context, info entities.CompanyInfo) error {
	raw, err := encode(info)
	if err != nil {
		return err
	}
	return r.writes.Dispatch(ctx, interfaces.WriteOp{Kind: interfaces.WriteSet, Path: r.layout.Info(), Value: raw})
}

func (r *CompanyStoreRepository) SaveLogo(ctx context.Context, dataURL string) error {
	raw, err := encode(dataURL)
	if err != nil {
		return err
	}
	return r.writes.Dispatch(ctx, interfaces.WriteOp{Kind: interfaces.WriteSet, Path: r.layout.Logo(), Value: raw})
}

func (r *CompanyStoreRepository) DeleteLogo(ctx context.Context) error {
	return r.writes.Dispatch(ctx, interfaces.WriteOp{Kind: interfaces.WriteDelete, Path: r.layout.Logo()})
}

func (r *CompanyStoreRepository) WatchInfo(onValue func(entities.CompanyInfo, bool), onError func(error)) func() {
	return r.store.Watch(r.layout.Info(), func(raw json.RawMessage) {
		info, found, err := decodeInfo(raw)
		if err != nil {
			report(onError, err)
			return
		}
		onValue(info, found)
	}, onError)
}

func (r *CompanyStoreRepository) WatchLogo(onValue func(string, bool), onError func(error)) func() {
	return r.store.Watch(r.layout.Logo(), func(raw json.RawMessage) {
		logo, found, err := decodeLogo(raw)
		if err != nil {
			report(onError, err)
			return
		}
		onValue(logo, found)
	}, onError)
}

func decodeInfo(raw json.RawMessage) (entities.CompanyInfo, bool, error) {
	if empty(raw) {
		return entities.CompanyInfo{}, false, nil
	}
	var info entities.CompanyInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return entities.CompanyInfo{}, false, fmt.Errorf("decode company info: %w", err)
	}
	return info, true, nil
}

func decodeLogo(raw json.RawMessage) (string, bool, error) {
	if empty(raw) {
		return "", false, nil
	}
	var logo string
	if err := json.Unmarshal(raw, &logo); err != nil {
		return "", false, fmt.Errorf("decode logo: %w", err)
	}
	return logo, logo != "", nil
}

func empty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func report(onError func(error), err error) {
	if onError != nil {
		onError(err)
	}
}
