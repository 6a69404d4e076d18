package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"armory/internal/logger"
	"armory/internal/models"
	"armory/internal/pagination"
)

// SeedServices bundles the services the demo seed writes through.
type SeedServices struct {
	Users  UserServicer
	Bases  BaseServicer
	Assets AssetServicer
}

// SeedDemoData populates an empty store with three bases, an admin user
// and two assets, one of them with a PURCHASE entry. It does nothing when
// any base already exists.
func SeedDemoData(ctx context.Context, svc SeedServices, adminPassword string) error {
	existing, err := svc.Bases.ListBases(ctx, pagination.PageRequest{Page: 1, PageSize: 1})
	if err != nil {
		return fmt.Errorf("failed to check existing bases: %w", err)
	}
	if existing.TotalItems > 0 {
		logger.Get().Info("Seed skipped: bases already present")
		return nil
	}

	seedBases := []BaseInput{
		{Name: "Alpha Base", Location: "Sector 1", Commander: "Col. Smith", Budget: decimal.NewFromInt(1000000)},
		{Name: "Bravo Base", Location: "Sector 2", Commander: "Maj. Jones", Budget: decimal.NewFromInt(500000)},
		{Name: "HQ", Location: "Capital", Commander: "Gen. Doe", Budget: decimal.NewFromInt(5000000)},
	}
	var alpha *models.Base
	for i, input := range seedBases {
		base, err := svc.Bases.CreateBase(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to seed base %q: %w", input.Name, err)
		}
		if i == 0 {
			alpha = base
		}
	}

	admin, err := svc.Users.CreateUser("admin", adminPassword, models.RoleAdmin, nil)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	tankSerial := "TK-7782"
	if _, err := svc.Assets.PurchaseAsset(ctx, admin.ID, AssetInput{
		Name:         "M1 Abrams Tank",
		SerialNumber: &tankSerial,
		Type:         models.AssetTypeVehicle,
		Status:       models.AssetStatusAvailable,
		BaseID:       &alpha.ID,
		Condition:    models.AssetConditionExcellent,
		Value:        decimal.NewFromInt(6000000),
		Notes:        "Initial deployment",
	}); err != nil {
		return fmt.Errorf("failed to seed tank: %w", err)
	}

	carbineSerial := "WP-0012"
	if _, err := svc.Assets.CreateAsset(ctx, AssetInput{
		Name:         "M4 Carbine",
		SerialNumber: &carbineSerial,
		Type:         models.AssetTypeWeapon,
		Status:       models.AssetStatusAvailable,
		BaseID:       &alpha.ID,
		Condition:    models.AssetConditionGood,
		Value:        decimal.NewFromInt(1200),
	}); err != nil {
		return fmt.Errorf("failed to seed carbine: %w", err)
	}

	logger.Get().Infow("Demo data seeded", "bases", len(seedBases), "admin", admin.Username)
	return nil
}
