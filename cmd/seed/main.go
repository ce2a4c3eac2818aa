package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reward-ops.backend/internal/config"
	"reward-ops.backend/internal/domain/entities"
	"reward-ops.backend/internal/infrastructure/models"
)

var openSeedDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
	})
}

type zoneSeed struct {
	name   string
	cities map[string][]string // city -> districts
}

var zones = []zoneSeed{
	{name: "Central", cities: map[string][]string{
		"Riyadh": {"Al Olaya", "Al Malaz", "Al Murabba"},
		"Qassim": {"Buraidah", "Unaizah"},
	}},
	{name: "Western", cities: map[string][]string{
		"Jeddah": {"Al Balad", "Al Hamra", "Al Rawdah"},
		"Makkah": {"Al Aziziyah", "Al Shawqiyah"},
	}},
	{name: "Eastern", cities: map[string][]string{
		"Dammam": {"Al Faisaliyah", "Al Shati"},
		"Khobar": {"Al Aqrabiyah", "Al Thuqbah"},
	}},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := openSeedDB(cfg.Database.URL())
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Zone{},
		&models.City{},
		&models.District{},
		&models.Account{},
		&models.Shop{},
		&models.SellerProfile{},
		&models.TechnicianProfile{},
		&models.ApprovalRecord{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("✅ Seed complete")
}

func seed(db *gorm.DB) error {
	// Deterministic staff phone numbers so re-runs upsert instead of
	// duplicating.
	phoneCounter := 0
	nextPhone := func() string {
		phoneCounter++
		return fmt.Sprintf("05009%05d", phoneCounter)
	}

	for _, z := range zones {
		zone := models.Zone{Name: z.name}
		if err := db.Where(models.Zone{Name: z.name}).FirstOrCreate(&zone).Error; err != nil {
			return fmt.Errorf("zone %s: %w", z.name, err)
		}

		manager, err := upsertStaff(db, "Manager "+z.name, nextPhone(), entities.AccountKindZoneManager, zone.ID)
		if err != nil {
			return err
		}
		log.Printf("zone %s manager %s", z.name, manager.ID)

		for cityName, districts := range z.cities {
			city := models.City{ZoneID: zone.ID, Name: cityName}
			if err := db.Where(models.City{ZoneID: zone.ID, Name: cityName}).FirstOrCreate(&city).Error; err != nil {
				return fmt.Errorf("city %s: %w", cityName, err)
			}

			for _, districtName := range districts {
				sales, err := upsertStaff(db, "Sales "+districtName, nextPhone(), entities.AccountKindSalesPerson, zone.ID)
				if err != nil {
					return err
				}

				district := models.District{CityID: city.ID, Name: districtName, AssignedSalesID: &sales.ID}
				if err := db.Where(models.District{CityID: city.ID, Name: districtName}).
					Attrs(models.District{AssignedSalesID: &sales.ID}).
					FirstOrCreate(&district).Error; err != nil {
					return fmt.Errorf("district %s: %w", districtName, err)
				}
			}
		}
	}
	return nil
}

func upsertStaff(db *gorm.DB, name, phone string, kind entities.AccountKind, zoneID uuid.UUID) (*models.Account, error) {
	account := models.Account{
		Name:   name,
		Phone:  phone,
		Kind:   string(kind),
		Status: string(entities.StatusApproved),
		ZoneID: &zoneID,
	}
	if err := db.Where(models.Account{Phone: phone}).
		Attrs(account).
		FirstOrCreate(&account).Error; err != nil {
		return nil, fmt.Errorf("staff %s: %w", name, err)
	}
	return &account, nil
}
