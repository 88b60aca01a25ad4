package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ContractorUseCase casos de uso CRUD para contratistas.
type ContractorUseCase struct {
	repo      repository.ContractorRepository
	groupRepo repository.ContractorGroupRepository
}

// NewContractorUseCase construye el caso de uso.
func NewContractorUseCase(repo repository.ContractorRepository, groupRepo repository.ContractorGroupRepository) *ContractorUseCase {
	return &ContractorUseCase{repo: repo, groupRepo: groupRepo}
}

// Create crea un contratista; el grupo (si viene) debe existir.
func (uc *ContractorUseCase) Create(in dto.CreateContractorRequest) (*dto.ContractorResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	groupName := ""
	if in.GroupID != "" {
		group, err := uc.groupRepo.GetByID(in.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, domain.ErrNotFound
		}
		groupName = group.Name
	}
	now := time.Now()
	c := &entity.Contractor{
		ID:        uuid.New().String(),
		Name:      name,
		GroupID:   in.GroupID,
		GroupName: groupName,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toContractorResponse(c), nil
}

// GetByID obtiene un contratista por ID.
func (uc *ContractorUseCase) GetByID(id string) (*dto.ContractorResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toContractorResponse(c), nil
}

// Update actualiza un contratista. GroupID con string vacío lo saca del grupo.
func (uc *ContractorUseCase) Update(id string, in dto.UpdateContractorRequest) (*dto.ContractorResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if existing, _ := uc.repo.GetByName(name); existing != nil && existing.ID != c.ID {
			return nil, domain.ErrDuplicate
		}
		c.Name = name
	}
	if in.GroupID != nil {
		if *in.GroupID == "" {
			c.GroupID = ""
			c.GroupName = ""
		} else {
			group, err := uc.groupRepo.GetByID(*in.GroupID)
			if err != nil {
				return nil, err
			}
			if group == nil {
				return nil, domain.ErrNotFound
			}
			c.GroupID = group.ID
			c.GroupName = group.Name
		}
	}
	if in.TaxID != nil {
		c.TaxID = *in.TaxID
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toContractorResponse(c), nil
}

// List lista contratistas ordenados por nombre; con groupID filtra por grupo.
func (uc *ContractorUseCase) List(groupID string, limit, offset int) (*dto.ContractorListResponse, error) {
	var list []*entity.Contractor
	var err error
	if groupID != "" {
		list, err = uc.repo.ListByGroup(groupID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractorResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContractorResponse(c))
	}
	return &dto.ContractorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un contratista. ErrConflict si tiene documentos (PROTECT).
func (uc *ContractorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toContractorResponse(c *entity.Contractor) *dto.ContractorResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractorResponse{
		ID:        c.ID,
		Name:      c.Name,
		GroupID:   c.GroupID,
		GroupName: c.GroupName,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
