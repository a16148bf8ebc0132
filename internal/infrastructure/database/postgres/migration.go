// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/freshmo/storefront-backend/internal/domain/catalog"
	"github.com/freshmo/storefront-backend/internal/domain/contact"
	"github.com/freshmo/storefront-backend/internal/domain/order"
	"github.com/freshmo/storefront-backend/internal/domain/review"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		// Catalog domain - base tables
		&catalog.Category{},
		&catalog.Product{},

		// Order domain - dependent tables
		&order.Order{},
		&order.Item{},

		// Review and contact domains
		&review.Review{},
		&contact.Message{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_sort_rank ON products(category, sort_rank)",

		// Category indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_sort_order ON categories(sort_order)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_customer_phone ON orders(customer_phone)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",

		// Order items indexes
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_sku ON order_items(sku)",

		// Review indexes
		"CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews(created_at DESC)",

		// Contact message indexes
		"CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at DESC)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCategories creates the storefront categories
func (m *Migration) seedCategories() error {
	log.Println("🏷️ Seeding categories...")

	categories := []catalog.Category{
		{
			Name:        "Mouthwash Sachets",
			Description: "Alcohol-free mouthwash in single-use 10ml sachets, sold singly or in boxes of 30",
			SortOrder:   1,
		},
		{
			Name:        "Oral Care Accessories",
			Description: "Toothbrushes, bottled mouthwash and other oral care essentials",
			SortOrder:   2,
		},
		{
			Name:        "Guest Amenities",
			Description: "Amenity kits for hotels, guesthouses and hospitality",
			SortOrder:   3,
		},
	}

	for _, category := range categories {
		var existing catalog.Category
		result := m.db.Where("name = ?", category.Name).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&category).Error; err != nil {
				return err
			}
			log.Printf("✅ Created category: %s", category.Name)
		} else {
			log.Printf("⏭️ Category already exists: %s", category.Name)
		}
	}

	return nil
}

// seedProducts creates the Freshmo product range
func (m *Migration) seedProducts() error {
	log.Println("🛍️ Seeding products...")

	products := []catalog.Product{
		{
			SKU:          "FM-PEP-BOX30",
			Name:         "Freshmo Mouthwash - Peppermint (Box of 30)",
			Description:  "Our signature alcohol-free peppermint mouthwash in a convenient box of 30 single-use sachets. Perfect for daily freshness and combating bad breath on the go.",
			Category:     "Mouthwash Sachets",
			PriceExclVAT: decimal.NewFromFloat(150.00),
			SortRank:     1,
			IsActive:     true,
		},
		{
			SKU:          "FM-SPE-BOX30",
			Name:         "Freshmo Mouthwash - Spearmint (Box of 30)",
			Description:  "Experience the cool, refreshing taste of spearmint with our alcohol-free mouthwash. This box of 30 sachets ensures you always have freshness at hand.",
			Category:     "Mouthwash Sachets",
			PriceExclVAT: decimal.NewFromFloat(150.00),
			SortRank:     2,
			IsActive:     true,
		},
		{
			SKU:          "FM-PEP-SINGLE",
			Name:         "Freshmo Mouthwash - Peppermint (Single Sachet)",
			Description:  "A single 10ml sachet of our invigorating peppermint mouthwash. Perfect for trying out or for ultimate portability.",
			Category:     "Mouthwash Sachets",
			PriceExclVAT: decimal.NewFromFloat(6.99),
			SortRank:     3,
			IsActive:     true,
		},
		{
			SKU:          "FM-SPE-SINGLE",
			Name:         "Freshmo Mouthwash - Spearmint (Single Sachet)",
			Description:  "A single 10ml sachet of our cool spearmint mouthwash, providing instant freshness wherever you are.",
			Category:     "Mouthwash Sachets",
			PriceExclVAT: decimal.NewFromFloat(6.99),
			SortRank:     4,
			IsActive:     true,
		},
		{
			SKU:          "FM-STRAW-BOX30",
			Name:         "Freshmo Mouthwash - Strawberry Mint (Box of 30)",
			Description:  "Coming Soon! A delightful blend of sweet strawberry and refreshing mint in our alcohol-free mouthwash sachets.",
			Category:     "Mouthwash Sachets",
			PriceExclVAT: decimal.NewFromFloat(160.00),
			SortRank:     5,
			IsActive:     false,
		},
		{
			SKU:          "FM-APPLE-BOX30",
			Name:         "Freshmo Mouthwash - Apple (Box of 30)",
			Description:  "Coming Soon! A crisp and refreshing apple-flavored mouthwash in our convenient sachet format.",
			Category:     "Mouthwash Sachets",
			PriceExclVAT: decimal.NewFromFloat(160.00),
			SortRank:     6,
			IsActive:     false,
		},
		{
			SKU:          "FM-TOOTHBRUSH",
			Name:         "Freshmo Biodegradable Toothbrush",
			Description:  "An eco-friendly biodegradable toothbrush, perfect for sustainable oral care.",
			Category:     "Oral Care Accessories",
			PriceExclVAT: decimal.NewFromFloat(35.00),
			Variants:     "blue,green,natural",
			IsActive:     true,
		},
		{
			SKU:          "FM-ORGANIC-250",
			Name:         "Freshmo Organic Mouthwash (Bottle)",
			Description:  "Our organic mouthwash in a convenient 250ml bottle, made with natural ingredients for a gentle yet effective clean.",
			Category:     "Oral Care Accessories",
			PriceExclVAT: decimal.NewFromFloat(80.00),
			IsActive:     true,
		},
		{
			SKU:          "FM-KIT-BASIC",
			Name:         "Freshmo Guest Amenity Kit (Basic)",
			Description:  "A basic guest amenity kit including a Freshmo mouthwash sachet and a toothbrush. Ideal for hotels and guesthouses.",
			Category:     "Guest Amenities",
			PriceExclVAT: decimal.NewFromFloat(45.00),
			IsActive:     true,
		},
		{
			SKU:          "FM-KIT-PREMIUM",
			Name:         "Freshmo Guest Amenity Kit (Premium)",
			Description:  "A premium guest amenity kit featuring Freshmo mouthwash sachets, a toothbrush, and other toiletries. Perfect for a luxurious stay.",
			Category:     "Guest Amenities",
			PriceExclVAT: decimal.NewFromFloat(75.00),
			IsActive:     true,
		},
	}

	for _, prod := range products {
		var existing catalog.Product
		result := m.db.Where("sku = ?", prod.SKU).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&prod).Error; err != nil {
				log.Printf("⚠️ Failed to create product %s: %v", prod.SKU, err)
			} else {
				log.Printf("✅ Created product: %s", prod.Name)
			}
		} else {
			log.Printf("⏭️ Product already exists: %s", prod.Name)
		}
	}

	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"contact_messages",
		"reviews",
		"order_items",
		"orders",
		"products",
		"categories",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}

// GetTableInfo returns information about database tables
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
