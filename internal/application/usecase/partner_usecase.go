package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/qlkp/reciclaje-api/internal/application/dto"
	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

// PartnerUseCase casos de uso CRUD para socios comerciales. Los acumulados
// TotalVolume/TotalValue solo cambian vía transacciones del libro.
type PartnerUseCase struct {
	repo repository.PartnerRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(repo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{repo: repo}
}

func validPartnerType(t string) bool {
	return t == entity.PartnerTypeSupplier || t == entity.PartnerTypeCustomer
}

// Create crea un socio con acumulados en cero. El nombre se normaliza (NFC)
// para que coincida con las búsquedas del libro.
func (uc *PartnerUseCase) Create(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	name := strings.TrimSpace(norm.NFC.String(in.Name))
	if name == "" || !validPartnerType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	partner := &entity.Partner{
		ID:          uuid.New().String(),
		Name:        name,
		Type:        in.Type,
		Phone:       in.Phone,
		Address:     in.Address,
		TotalVolume: decimal.Zero,
		TotalValue:  decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// GetByID obtiene un socio por ID.
func (uc *PartnerUseCase) GetByID(id string) (*dto.PartnerResponse, error) {
	partner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// List devuelve todos los socios.
func (uc *PartnerUseCase) List() ([]dto.PartnerResponse, error) {
	partners, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		out = append(out, *toPartnerResponse(p))
	}
	return out, nil
}

// Update actualiza los datos de contacto del socio. Los acumulados no se
// pueden editar por esta ruta.
func (uc *PartnerUseCase) Update(id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(norm.NFC.String(*in.Name))
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		partner.Name = name
	}
	if in.Type != nil {
		if !validPartnerType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		partner.Type = *in.Type
	}
	if in.Phone != nil {
		partner.Phone = *in.Phone
	}
	if in.Address != nil {
		partner.Address = *in.Address
	}
	partner.UpdatedAt = time.Now()
	if err := uc.repo.Update(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// Delete elimina un socio. Las transacciones que lo referencian quedan con
// partner_id en NULL (histórico conservado con el nombre denormalizado perdido).
func (uc *PartnerUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toPartnerResponse(p *entity.Partner) *dto.PartnerResponse {
	if p == nil {
		return nil
	}
	return &dto.PartnerResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Phone:       p.Phone,
		Address:     p.Address,
		TotalVolume: p.TotalVolume,
		TotalValue:  p.TotalValue,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
