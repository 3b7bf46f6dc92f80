package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/repository"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

type stubMenuRepo struct {
	repository.MenuRepository
	ownedBy map[string]string // menuID -> userID
	updated bool
}

func (s *stubMenuRepo) IsOwnedBy(ctx context.Context, menuID, userID string) (bool, error) {
	return s.ownedBy[menuID] == userID, nil
}

func (s *stubMenuRepo) Update(ctx context.Context, menuID string, patch repository.MenuPatch) (*domain.Menu, error) {
	s.updated = true
	return &domain.Menu{ID: menuID}, nil
}

type stubMenuItemRepo struct {
	repository.MenuItemRepository
	updated bool
}

func (s *stubMenuItemRepo) Update(ctx context.Context, menuID, itemID string, patch repository.MenuItemPatch) (*domain.MenuItem, error) {
	s.updated = true
	return &domain.MenuItem{ID: itemID, MenuID: menuID}, nil
}

func TestUpdateItemRejectsForeignMenu(t *testing.T) {
	menus := &stubMenuRepo{ownedBy: map[string]string{"menu-1": "owner"}}
	items := &stubMenuItemRepo{}
	svc := NewMenuService(nil, menus, items)

	name := "new name"
	_, err := svc.UpdateItem(context.Background(), "intruder", "menu-1", "item-1", repository.MenuItemPatch{Name: &name})
	if err == nil {
		t.Fatal("expected error for non-owner update")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.HTTPStatus != 401 {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if items.updated {
		t.Fatal("item row must not be touched for a non-owner")
	}
}

func TestUpdateItemAllowsOwner(t *testing.T) {
	menus := &stubMenuRepo{ownedBy: map[string]string{"menu-1": "owner"}}
	items := &stubMenuItemRepo{}
	svc := NewMenuService(nil, menus, items)

	name := "new name"
	item, err := svc.UpdateItem(context.Background(), "owner", "menu-1", "item-1", repository.MenuItemPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "item-1" || !items.updated {
		t.Fatalf("expected item update to reach the repository")
	}
}

func TestUpdateMenuRejectsForeignMenu(t *testing.T) {
	menus := &stubMenuRepo{ownedBy: map[string]string{"menu-1": "owner"}}
	svc := NewMenuService(nil, menus, &stubMenuItemRepo{})

	active := false
	_, err := svc.UpdateMenu(context.Background(), "intruder", "menu-1", repository.MenuPatch{IsActive: &active})
	if err == nil {
		t.Fatal("expected error for non-owner update")
	}
	if menus.updated {
		t.Fatal("menu row must not be touched for a non-owner")
	}
}
