package usecase

import (
	"context"
	"testing"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/logger"
	mock_interfaces "workshop_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_Create(t *testing.T) {
	t.Run("invalid entry", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, logger.NewNop())
		_, err := uc.Create(context.Background(), entities.CatalogEntry{Name: " ", Category: entities.CategoryService})
		if !errs.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.NewNop())

		repo.EXPECT().FindByName(gomock.Any(), "Engine Oil").Return(engineOil, nil)

		_, err := uc.Create(context.Background(), entities.CatalogEntry{Name: "Engine Oil", Category: entities.CategoryConsumable})
		if !errs.IsDuplicateCatalogName(err) {
			t.Fatalf("expected duplicate name, got %v", err)
		}
	})

	t.Run("legacy category and generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.NewNop())

		repo.EXPECT().FindByName(gomock.Any(), "Gear Oil").Return(entities.CatalogEntry{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
			return e, nil
		})

		got, err := uc.Create(context.Background(), entities.CatalogEntry{Name: " Gear Oil ", Category: "Lubricant", Price: decimal.NewFromInt(950)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Name != "Gear Oil" || got.Category != entities.CategoryConsumable {
			t.Fatalf("unexpected entry %+v", got)
		}
	})
}

func TestCatalogUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewCatalogUseCase(repo, logger.NewNop())

	repo.EXPECT().List(gomock.Any()).Return([]entities.CatalogEntry{engineTune, engineOil}, nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Name != "Engine Oil" || got[1].Name != "Engine Tune" {
		t.Fatalf("expected name order, got %+v", got)
	}
}

func TestCatalogUseCase_Delete(t *testing.T) {
	t.Run("operator is denied", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, logger.NewNop())
		if err := uc.Delete(context.Background(), "c1"); !errs.IsPermissionDenied(err) {
			t.Fatalf("expected permission denied, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.NewNop())

		repo.EXPECT().Delete(gomock.Any(), "nope").Return(false, nil)

		if err := uc.Delete(adminCtx(), "nope"); !errs.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("admin deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.NewNop())

		repo.EXPECT().Delete(gomock.Any(), "c1").Return(true, nil)

		if err := uc.Delete(adminCtx(), "c1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
