package university

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&University{}, &Course{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository()

	u := University{Name: "University of Leeds", Country: "UK", City: "Leeds"}
	if err := repo.Create(db, &u); err != nil {
		t.Fatal(err)
	}
	if err := repo.AddCourse(db, &Course{UniversityID: u.ID, Name: "MSc Data Science", YearlyFee: "24000", Currency: "GBP"}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindByID(db, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "University of Leeds" {
		t.Errorf("name = %q", got.Name)
	}
	if len(got.Courses) != 1 || got.Courses[0].Name != "MSc Data Science" {
		t.Errorf("courses = %+v, want the added course preloaded", got.Courses)
	}
}

func TestRepositoryListFiltersByCountry(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository()

	seed := []University{
		{Name: "University of Leeds", Country: "UK"},
		{Name: "Monash University", Country: "Australia"},
		{Name: "University of Glasgow", Country: "UK"},
	}
	for i := range seed {
		if err := repo.Create(db, &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	uk, err := repo.List(db, "UK")
	if err != nil {
		t.Fatal(err)
	}
	if len(uk) != 2 {
		t.Errorf("UK universities = %d, want 2", len(uk))
	}

	all, err := repo.List(db, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("all universities = %d, want 3", len(all))
	}
}

func TestRepositoryDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository()

	u := University{Name: "Monash University", Country: "Australia"}
	if err := repo.Create(db, &u); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(db, u.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.FindByID(db, u.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
