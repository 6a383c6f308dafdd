package usecase

import (
	"context"

	"github.com/priyanka7rc/laya/internal/grocery"
	"github.com/priyanka7rc/laya/internal/grocery/repository"
	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/pkg/weekdate"
)

// List returns the grocery list for the week containing input.Week.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input grocery.ListInput) (grocery.ListOutput, error) {
	anchor, err := weekdate.Parse(input.Week)
	if err != nil {
		return grocery.ListOutput{}, grocery.ErrInvalidDate
	}
	mondayStr := weekdate.Format(weekdate.Monday(anchor))

	items, err := uc.repo.ListItems(ctx, repository.ListItemsOptions{
		UserID: sc.UserID,
		Week:   mondayStr,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return grocery.ListOutput{}, err
	}

	return grocery.ListOutput{Week: mondayStr, Items: items}, nil
}

// SetChecked marks one item as checked or unchecked.
func (uc *implUseCase) SetChecked(ctx context.Context, sc model.Scope, input grocery.SetCheckedInput) (grocery.SetCheckedOutput, error) {
	item, err := uc.repo.SetItemChecked(ctx, repository.SetItemCheckedOptions{
		UserID:  sc.UserID,
		ID:      input.ID,
		Checked: input.Checked,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetChecked SetItemChecked: %v", err)
		return grocery.SetCheckedOutput{}, err
	}
	if item.ID == "" {
		return grocery.SetCheckedOutput{}, grocery.ErrItemNotFound
	}

	return grocery.SetCheckedOutput{Item: item}, nil
}

// DeleteItem removes one item by hand.
func (uc *implUseCase) DeleteItem(ctx context.Context, sc model.Scope, id string) error {
	item, err := uc.repo.GetOneItem(ctx, repository.GetOneItemOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteItem GetOneItem: %v", err)
		return err
	}
	if item.ID == "" {
		return grocery.ErrItemNotFound
	}

	if err := uc.repo.DeleteItem(ctx, repository.DeleteItemOptions{UserID: sc.UserID, ID: id}); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteItem DeleteItem: %v", err)
		return err
	}
	return nil
}
