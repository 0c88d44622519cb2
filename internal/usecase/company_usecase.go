package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

var (
	ErrInvalidLogo  = errors.New("logo must be a base64 image data URL")
	ErrLogoTooLarge = fmt.Errorf("logo exceeds %d bytes", entities.MaxLogoBytes)
	ErrLogoNotFound = errors.New("logo not found")
)

type ICompanyUseCase interface {
	GetInfo(ctx context.Context) entities.CompanyInfo
	UpdateInfo(ctx context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error)
	GetLogo(ctx context.Context) (string, error)
	UpdateLogo(ctx context.Context, dataURL string) error
	DeleteLogo(ctx context.Context) error
}

type CompanyUseCase struct {
	ws   *Workspace
	repo interfaces.ICompanyRepository
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(ws *Workspace, repo interfaces.ICompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{ws: ws, repo: repo}
}

func (u *CompanyUseCase) GetInfo(_ context.Context) entities.CompanyInfo {
	return u.ws.CompanyInfo()
}

func (u *CompanyUseCase) UpdateInfo(ctx context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error) {
	info = entities.CompanyInfo{
		Name:    strings.TrimSpace(info.Name),
		Email:   strings.TrimSpace(info.Email),
		Phone:   strings.TrimSpace(info.Phone),
		Address: strings.TrimSpace(info.Address),
	}
	u.ws.setInfo(info, true)
	if err := u.repo.SaveInfo(ctx, info); err != nil {
		return info.WithDefaults(), err
	}
	return info.WithDefaults(), nil
}

func (u *CompanyUseCase) GetLogo(_ context.Context) (string, error) {
	logo, ok := u.ws.Logo()
	if !ok {
		return "", ErrLogoNotFound
	}
	return logo, nil
}

// UpdateLogo replaces the logo. dataURL must be a base64 image data URL whose decoded
// payload fits in entities.MaxLogoBytes.
func (u *CompanyUseCase) UpdateLogo(ctx context.Context, dataURL string) error {
	dataURL = strings.TrimSpace(dataURL)
	if err := ValidateLogo(dataURL); err != nil {
		return err
	}
	u.ws.setLogo(dataURL, true)
	return u.repo.SaveLogo(ctx, dataURL)
}

func (u *CompanyUseCase) DeleteLogo(ctx context.Context) error {
	u.ws.setLogo("", false)
	return u.repo.DeleteLogo(ctx)
}

func ValidateLogo(dataURL string) error {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return ErrInvalidLogo
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > entities.MaxLogoBytes+2 {
		return ErrLogoTooLarge
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ErrInvalidLogo
	}
	if len(raw) > entities.MaxLogoBytes {
		return ErrLogoTooLarge
	}
	return nil
}
