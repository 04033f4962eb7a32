package repository

import (
	"context"
	"fmt"

	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/repository/dao"
)

var ErrItemNotFound = dao.ErrItemNotFound

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (dao.Item, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (dao.Item, error)
	FindPage(ctx context.Context, query dao.ItemQuery) ([]dao.Item, int64, error)
	FindAll(ctx context.Context) ([]dao.Item, error)
	SetStock(ctx context.Context, id string, stock int) (dao.Item, error)
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) domainToDao(item domain.Item) dao.Item {
	return dao.Item{
		ID:          item.ID,
		Name:        item.Name,
		Category:    string(item.Category),
		Description: item.Description,
		Material:    item.Material,
		Stock:       item.Stock,
		Image:       item.Image,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (r *ItemRepository) daoToDomain(item dao.Item) domain.Item {
	return domain.Item{
		ID:          item.ID,
		Name:        item.Name,
		Category:    domain.ItemCategory(item.Category),
		Description: item.Description,
		Material:    item.Material,
		Stock:       item.Stock,
		Image:       item.Image,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (r *ItemRepository) daosToDomain(items []dao.Item) []domain.Item {
	domainItems := make([]domain.Item, len(items))
	for i, item := range items {
		domainItems[i] = r.daoToDomain(item)
	}
	return domainItems
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) Update(ctx context.Context, id string, upd domain.ItemUpdate) (domain.Item, error) {
	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Category != nil {
		fields["category"] = string(*upd.Category)
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Material != nil {
		fields["material"] = *upd.Material
	}
	if upd.Stock != nil {
		fields["stock"] = *upd.Stock
	}
	if upd.Image != nil {
		fields["image"] = *upd.Image
	}

	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (domain.Item, error) {
	item, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(item), nil
}

func (r *ItemRepository) FindPage(ctx context.Context, filter domain.ItemFilter) (domain.ItemPage, error) {
	query := dao.ItemQuery{
		Category:    string(filter.Category),
		Materials:   filter.Materials,
		StockStatus: string(filter.StockStatus),
	}
	if filter.PageSize > 0 {
		query.Offset = (filter.Page - 1) * filter.PageSize
		query.Limit = filter.PageSize
	}

	items, count, err := r.dao.FindPage(ctx, query)
	if err != nil {
		return domain.ItemPage{}, fmt.Errorf("r.dao.FindPage -> %w", err)
	}

	return domain.ItemPage{
		Items:      r.daosToDomain(items),
		TotalCount: count,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	items, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(items), nil
}

func (r *ItemRepository) SetStock(ctx context.Context, id string, stock int) (domain.Item, error) {
	item, err := r.dao.SetStock(ctx, id, stock)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.SetStock -> %w", err)
	}

	return r.daoToDomain(item), nil
}
