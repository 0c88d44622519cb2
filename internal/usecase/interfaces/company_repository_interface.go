package interfaces

import (
	"context"

	"construction_console/internal/domain/entities"
)

// ICompanyRepository stores the letterhead at /info and the logo data URL at /logo.
// Watch callbacks receive found=false when nothing is stored yet.
type ICompanyRepository interface {
	GetInfo(ctx context.Context) (info entities.CompanyInfo, found bool, err error)
	GetLogo(ctx context.Context) (dataURL string, found bool, err error)
	SaveInfo(ctx context.Context, info entities.CompanyInfo) error
	SaveLogo(ctx context.Context, dataURL string) error
	DeleteLogo(ctx context.Context) error
	WatchInfo(onValue func(info entities.CompanyInfo, found bool), onError func(error)) (unsubscribe func())
	WatchLogo(onValue func(dataURL string, found bool), onError func(error)) (unsubscribe func())
}
