package usecase

import (
	"context"
	"errors"
	"strings"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"
	"tractus/pkg/ptbr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrClienteNotFound           = errors.New("cliente not found")
	ErrInvalidClienteID          = errors.New("invalid cliente id")
	ErrInvalidClienteNome        = errors.New("invalid nome")
	ErrInvalidClienteStatus      = errors.New("invalid cliente status")
	ErrInvalidClienteUF          = errors.New("uf must have 2 letters")
	ErrInvalidClienteDocumento   = errors.New("documento must be a CPF (11 digits) or CNPJ (14 digits)")
	ErrClienteDocumentoDuplicado = errors.New("documento already registered")
	ErrClienteHasPropostas       = errors.New("cliente has propostas")
)

type IClienteUseCase interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	List(ctx context.Context, filter entities.ClienteFilter) ([]entities.Cliente, error)
	Update(ctx context.Context, id string, c entities.Cliente) (entities.Cliente, error)
	Delete(ctx context.Context, id string) error
}

type ClienteUseCase struct {
	repo         interfaces.IClienteRepository
	vendedorRepo interfaces.IVendedorRepository
	anotacaoRepo interfaces.IClienteAnotacaoRepository
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(repo interfaces.IClienteRepository, vendedorRepo interfaces.IVendedorRepository, anotacaoRepo interfaces.IClienteAnotacaoRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, vendedorRepo: vendedorRepo, anotacaoRepo: anotacaoRepo}
}

func (u *ClienteUseCase) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	if c.Status == "" {
		c.Status = entities.ClienteStatusProspect
	}
	if err := u.validate(ctx, &c, ""); err != nil {
		return entities.Cliente{}, err
	}
	c.ID = uuid.NewString()

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Cliente{}, err
	}
	zap.L().Info("cliente created", zap.String("scope", "cliente"), zap.String("cliente_id", created.ID))
	return created, nil
}

func (u *ClienteUseCase) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	return getCliente(ctx, u.repo, id)
}

func (u *ClienteUseCase) List(ctx context.Context, filter entities.ClienteFilter) ([]entities.Cliente, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidClienteStatus
	}
	filter.Busca = ptbr.Fold(filter.Busca)
	filter.VendedorID = strings.TrimSpace(filter.VendedorID)
	return u.repo.List(ctx, filter)
}

func (u *ClienteUseCase) Update(ctx context.Context, id string, c entities.Cliente) (entities.Cliente, error) {
	existing, err := getCliente(ctx, u.repo, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.Status == "" {
		c.Status = existing.Status
	}
	if err := u.validate(ctx, &c, existing.ID); err != nil {
		return entities.Cliente{}, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	return u.repo.Update(ctx, c)
}

// Delete refuses clients that already have proposals; their notes go with them.
func (u *ClienteUseCase) Delete(ctx context.Context, id string) error {
	existing, err := getCliente(ctx, u.repo, id)
	if err != nil {
		return err
	}
	n, err := u.repo.CountPropostas(ctx, existing.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrClienteHasPropostas
	}

	if u.anotacaoRepo != nil {
		notas, err := u.anotacaoRepo.ListByClienteID(ctx, existing.ID)
		if err != nil {
			return err
		}
		for _, nota := range notas {
			if err := u.anotacaoRepo.Delete(ctx, nota.ID); err != nil {
				return err
			}
		}
	}
	return u.repo.Delete(ctx, existing.ID)
}

// validate normalizes c in place. selfID skips the duplicate check against the row being edited.
func (u *ClienteUseCase) validate(ctx context.Context, c *entities.Cliente, selfID string) error {
	c.Nome = strings.TrimSpace(c.Nome)
	if c.Nome == "" {
		return ErrInvalidClienteNome
	}
	if !c.Status.Valid() {
		return ErrInvalidClienteStatus
	}
	c.UF = strings.ToUpper(strings.TrimSpace(c.UF))
	if c.UF != "" && len(c.UF) != 2 {
		return ErrInvalidClienteUF
	}
	c.NomeBusca = ptbr.Fold(c.Nome)
	c.Email = normalizeEmail(c.Email)
	c.Telefone = strings.TrimSpace(c.Telefone)
	c.Cidade = strings.TrimSpace(c.Cidade)
	c.Endereco = strings.TrimSpace(c.Endereco)
	c.Segmento = strings.TrimSpace(c.Segmento)

	c.Documento = ptbr.OnlyDigits(c.Documento)
	if c.Documento != "" {
		if len(c.Documento) != 11 && len(c.Documento) != 14 {
			return ErrInvalidClienteDocumento
		}
		dup, err := u.repo.GetByDocumento(ctx, c.Documento)
		if err != nil {
			return err
		}
		if dup.ID != "" && dup.ID != selfID {
			return ErrClienteDocumentoDuplicado
		}
	}

	c.VendedorID = strings.TrimSpace(c.VendedorID)
	if c.VendedorID != "" {
		if _, err := getVendedor(ctx, u.vendedorRepo, c.VendedorID); err != nil {
			return err
		}
	}
	return nil
}

func getCliente(ctx context.Context, repo interfaces.IClienteRepository, id string) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return c, nil
}
