package commission

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/edulink/api-agency/internal/agent"
	"github.com/edulink/api-agency/internal/application"
	"github.com/edulink/api-agency/internal/config"
	"github.com/edulink/api-agency/internal/student"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&student.Student{},
		&agent.Agent{},
		&application.Application{},
		&Commission{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedCase creates one student referred by one agent with one application
// sitting just before the visa decision.
func seedCase(t *testing.T, db *gorm.DB) *application.Application {
	t.Helper()

	ag := agent.Agent{Name: "Global Reach", CommissionRate: 10}
	if err := db.Create(&ag).Error; err != nil {
		t.Fatal(err)
	}
	stu := student.Student{Name: "Asha Verma", ReferringAgent: "Global Reach"}
	if err := db.Create(&stu).Error; err != nil {
		t.Fatal(err)
	}
	app := application.Application{
		StudentID:          stu.ID,
		UniversityName:     "University of Leeds",
		Program:            "MSc Data Science",
		Country:            "United Kingdom",
		Currency:           "GBP",
		Status:             "Visa Applied",
		YearlyFee:          "10000",
		ScholarshipPercent: "50",
	}
	if err := db.Create(&app).Error; err != nil {
		t.Fatal(err)
	}
	return &app
}

func commissionCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&Commission{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func TestVisaGrantedCreatesCommission(t *testing.T) {
	db := openTestDB(t)
	app := seedCase(t, db)
	trig := NewTrigger(db, config.CommissionDefaults{TDSPercent: 5, GSTPercent: 5})

	if err := trig.OnStatusChange(app.ID, application.StatusVisaGranted); err != nil {
		t.Fatalf("OnStatusChange: %v", err)
	}

	var c Commission
	if err := db.Where("application_id = ?", app.ID).First(&c).Error; err != nil {
		t.Fatalf("commission not created: %v", err)
	}
	if c.Paid != StatusPending {
		t.Errorf("paid = %d, want pending", c.Paid)
	}
	if c.PayableFee != "5000" {
		t.Errorf("payableFee = %q, want 5000", c.PayableFee)
	}
	if !almostEqual(c.FinalAmount, 4500) {
		t.Errorf("finalAmount = %v, want 4500", c.FinalAmount)
	}
	if c.ExchangeRate != 0 {
		t.Errorf("exchangeRate = %v, want 0 until settlement", c.ExchangeRate)
	}
	if c.TDSPercent != 5 || c.GSTPercent != 5 {
		t.Errorf("defaults not applied: tds=%v gst=%v", c.TDSPercent, c.GSTPercent)
	}
	if c.AgentName != "Global Reach" || c.StudentName != "Asha Verma" {
		t.Errorf("snapshot fields wrong: %q / %q", c.AgentName, c.StudentName)
	}

	var refreshed application.Application
	if err := db.First(&refreshed, app.ID).Error; err != nil {
		t.Fatal(err)
	}
	if refreshed.Status != application.StatusVisaGranted {
		t.Errorf("status = %q, want %q", refreshed.Status, application.StatusVisaGranted)
	}
}

func TestReversalDeletesCommission(t *testing.T) {
	db := openTestDB(t)
	app := seedCase(t, db)
	trig := NewTrigger(db, config.CommissionDefaults{})

	if err := trig.OnStatusChange(app.ID, application.StatusVisaGranted); err != nil {
		t.Fatal(err)
	}
	if err := trig.OnStatusChange(app.ID, "Visa Refused"); err != nil {
		t.Fatal(err)
	}

	if n := commissionCount(t, db); n != 0 {
		t.Errorf("commission count = %d, want 0 after reversal", n)
	}
	var refreshed application.Application
	if err := db.First(&refreshed, app.ID).Error; err != nil {
		t.Fatal(err)
	}
	if refreshed.Status != "Visa Refused" {
		t.Errorf("status = %q, want Visa Refused", refreshed.Status)
	}
}

func TestReplayVisaGrantedKeepsOneCommission(t *testing.T) {
	db := openTestDB(t)
	app := seedCase(t, db)
	trig := NewTrigger(db, config.CommissionDefaults{})

	for i := 0; i < 2; i++ {
		if err := trig.OnStatusChange(app.ID, application.StatusVisaGranted); err != nil {
			t.Fatalf("replay %d: %v", i, err)
		}
	}
	if n := commissionCount(t, db); n != 1 {
		t.Errorf("commission count = %d, want exactly 1", n)
	}
}

func TestAgentLookupFailureLeavesNoPartialWrite(t *testing.T) {
	db := openTestDB(t)
	app := seedCase(t, db)
	if err := db.Model(&student.Student{}).Where("id = ?", app.StudentID).
		Update("referring_agent", "No Such Agency").Error; err != nil {
		t.Fatal(err)
	}
	trig := NewTrigger(db, config.CommissionDefaults{})

	err := trig.OnStatusChange(app.ID, application.StatusVisaGranted)
	if !errors.Is(err, agent.ErrNotFound) {
		t.Fatalf("err = %v, want agent.ErrNotFound", err)
	}

	if n := commissionCount(t, db); n != 0 {
		t.Errorf("commission count = %d, want 0 after failed lookup", n)
	}
	var refreshed application.Application
	if err := db.First(&refreshed, app.ID).Error; err != nil {
		t.Fatal(err)
	}
	if refreshed.Status != "Visa Applied" {
		t.Errorf("status mutated to %q despite aborted transaction", refreshed.Status)
	}
}

func TestAmbiguousAgentRejected(t *testing.T) {
	db := openTestDB(t)
	app := seedCase(t, db)
	if err := db.Create(&agent.Agent{Name: "  global reach ", CommissionRate: 15}).Error; err != nil {
		t.Fatal(err)
	}
	trig := NewTrigger(db, config.CommissionDefaults{})

	err := trig.OnStatusChange(app.ID, application.StatusVisaGranted)
	if !errors.Is(err, agent.ErrAmbiguous) {
		t.Fatalf("err = %v, want agent.ErrAmbiguous", err)
	}
	if n := commissionCount(t, db); n != 0 {
		t.Errorf("commission count = %d, want 0", n)
	}
}

func TestUnknownApplication(t *testing.T) {
	db := openTestDB(t)
	trig := NewTrigger(db, config.CommissionDefaults{})

	err := trig.OnStatusChange(9999, application.StatusVisaGranted)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
