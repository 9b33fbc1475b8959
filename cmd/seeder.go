package cmd

import (
	"fmt"
	"log"
	"time"

	itemDatamodel "github.com/cims/inventory-management/internal/core/datamodel/item"
	userDatamodel "github.com/cims/inventory-management/internal/core/datamodel/user"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a demo staff account and sample inventory items.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if seedClear {
			db.Exec("DELETE FROM items")
			db.Exec("DELETE FROM users")
			fmt.Println("Cleared existing data")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("staff1234"), cfg.Security.BcryptCost)

		staff := &userDatamodel.User{
			Name:         "Demo Staff",
			Email:        "staff@example.com",
			PasswordHash: string(hash),
		}

		var count int64
		db.Model(&userDatamodel.User{}).Where("email = ?", staff.Email).Count(&count)
		if count > 0 {
			fmt.Println("demo staff user already exists")
			db.Where("email = ?", staff.Email).First(staff)
		} else {
			if err := db.Create(staff).Error; err != nil {
				log.Fatalf("failed to seed staff user: %v", err)
			}
			fmt.Println("Seeded staff user:", staff.Email)
		}

		nextMonth := time.Now().AddDate(0, 1, 0)
		samples := []*itemDatamodel.Item{
			{Name: "Milk", Category: "Dairy", Quantity: 24, ExpiryDate: &nextMonth, Supplier: "Hillside Farms", ReorderLevel: 10, CreatedBy: staff.ID},
			{Name: "Rice", Category: "General", Quantity: 80, Supplier: "", ReorderLevel: 20, CreatedBy: staff.ID},
		}

		for _, s := range samples {
			db.Model(&itemDatamodel.Item{}).Where("name = ? AND created_by = ?", s.Name, staff.ID).Count(&count)
			if count > 0 {
				continue
			}
			if err := db.Create(s).Error; err != nil {
				log.Fatalf("failed to seed item %s: %v", s.Name, err)
			}
			fmt.Println("Seeded item:", s.Name)
		}
	},
}
