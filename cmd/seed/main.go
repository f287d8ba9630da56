package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"campshop/pkg/config"
	"campshop/pkg/database"
	"campshop/pkg/logger"
	"campshop/pkg/models"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var (
		importData  bool
		destroyData bool
		dataDir     string
	)
	flag.BoolVar(&importData, "i", false, "Import fixtures into the database")
	flag.BoolVar(&destroyData, "d", false, "Delete all catalog data")
	flag.StringVar(&dataDir, "data", "./_data", "Directory holding the JSON fixtures")
	flag.Parse()

	if importData == destroyData {
		fmt.Fprintln(os.Stderr, "usage: seed -i [-data dir] | seed -d")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel})
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if destroyData {
		if err := destroy(db); err != nil {
			log.Error("Failed to destroy data: %v", err)
			panic(err)
		}
		log.Info("Data destroyed")
		return
	}

	if err := seedDatabase(db, dataDir, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}
	log.Info("Database seeded successfully!")
}

type fixtures struct {
	users      []models.User
	bootcamps  []models.Bootcamp
	courses    []models.Course
	categories []models.Category
	products   []models.Product
	reviews    []models.Review
}

func loadFixtures(dir string) (*fixtures, error) {
	f := &fixtures{}
	files := []struct {
		name string
		dst  interface{}
	}{
		{"users.json", &f.users},
		{"bootcamps.json", &f.bootcamps},
		{"courses.json", &f.courses},
		{"categories.json", &f.categories},
		{"products.json", &f.products},
		{"reviews.json", &f.reviews},
	}
	for _, file := range files {
		raw, err := os.ReadFile(filepath.Join(dir, file.name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file.name, err)
		}
		if err := json.Unmarshal(raw, file.dst); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file.name, err)
		}
	}
	return f, nil
}

// prepare fills in what the API would have derived on create.
func (f *fixtures) prepare() error {
	for i := range f.users {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.users[i].Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", f.users[i].Email, err)
		}
		f.users[i].Password = string(hash)
		if f.users[i].Role == "" {
			f.users[i].Role = "user"
		}
	}
	for i := range f.bootcamps {
		f.bootcamps[i].Slug = slug.Make(f.bootcamps[i].Name)
		if f.bootcamps[i].Photo == "" {
			f.bootcamps[i].Photo = models.DefaultPhoto
		}
	}
	for i := range f.categories {
		f.categories[i].Slug = slug.Make(f.categories[i].Name)
		if f.categories[i].Photo == "" {
			f.categories[i].Photo = models.DefaultPhoto
		}
	}
	for i := range f.products {
		f.products[i].Slug = slug.Make(f.products[i].Name)
		if f.products[i].Photo == "" {
			f.products[i].Photo = models.DefaultPhoto
		}
	}
	return nil
}

func seedDatabase(db *gorm.DB, dataDir string, log *logger.Logger) error {
	f, err := loadFixtures(dataDir)
	if err != nil {
		return err
	}
	if err := f.prepare(); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		batches := []struct {
			table string
			rows  interface{}
			count int
		}{
			{"users", &f.users, len(f.users)},
			{"bootcamps", &f.bootcamps, len(f.bootcamps)},
			{"courses", &f.courses, len(f.courses)},
			{"categories", &f.categories, len(f.categories)},
			{"products", &f.products, len(f.products)},
			{"reviews", &f.reviews, len(f.reviews)},
		}
		for _, b := range batches {
			if b.count == 0 {
				continue
			}
			if err := tx.Omit("Courses", "Bootcamp", "Category").Create(b.rows).Error; err != nil {
				return fmt.Errorf("insert %s: %w", b.table, err)
			}
			log.Info("Imported %d %s", b.count, b.table)
		}
		return refreshAverages(tx)
	})
}

// refreshAverages recomputes the per-bootcamp aggregates the API keeps up to
// date on course and review writes.
func refreshAverages(tx *gorm.DB) error {
	if err := tx.Exec(`UPDATE bootcamps SET average_cost = (
		SELECT CEIL(AVG(tuition) / 10) * 10 FROM courses WHERE courses.bootcamp_id = bootcamps.id)`).Error; err != nil {
		return fmt.Errorf("refresh average cost: %w", err)
	}
	if err := tx.Exec(`UPDATE bootcamps SET average_rating = (
		SELECT AVG(rating) FROM reviews WHERE reviews.bootcamp_id = bootcamps.id)`).Error; err != nil {
		return fmt.Errorf("refresh average rating: %w", err)
	}
	return nil
}

func destroy(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// children first
		for _, m := range []interface{}{
			&models.Review{}, &models.Product{}, &models.Course{},
			&models.Category{}, &models.Bootcamp{}, &models.User{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
