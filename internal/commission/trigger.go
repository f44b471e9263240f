package commission

import (
	"gorm.io/gorm"

	"github.com/edulink/api-agency/internal/agent"
	"github.com/edulink/api-agency/internal/application"
	"github.com/edulink/api-agency/internal/config"
	"github.com/edulink/api-agency/internal/student"
)

// Trigger keeps the commission ledger in sync with application status.
// Reaching "Visa Granted" derives a pending commission from the student's
// referring agent; leaving it retracts the commission. Everything runs in
// one transaction so a failed agent lookup leaves no partial row behind.
type Trigger struct {
	DB           *gorm.DB
	Repository   Repository
	Agents       agent.Repository
	Applications application.Repository
	Students     student.Repository
	Defaults     config.CommissionDefaults
}

func NewTrigger(db *gorm.DB, defaults config.CommissionDefaults) *Trigger {
	return &Trigger{
		DB:           db,
		Repository:   NewRepository(),
		Agents:       agent.NewRepository(),
		Applications: application.NewRepository(),
		Students:     student.NewRepository(),
		Defaults:     defaults,
	}
}

// OnStatusChange applies a status label to an application and maintains
// the at-most-one-commission invariant for it.
func (t *Trigger) OnStatusChange(applicationID uint, newStatus string) error {
	return t.DB.Transaction(func(tx *gorm.DB) error {
		app, err := t.Applications.FindByID(tx, applicationID)
		if err != nil {
			return err
		}

		if newStatus == application.StatusVisaGranted {
			if err := t.createCommission(tx, app); err != nil {
				return err
			}
		} else {
			// Reversal retracts the commission regardless of paid state.
			if err := t.Repository.DeleteByApplication(tx, app.ID); err != nil {
				return err
			}
		}

		return t.Applications.UpdateStatus(tx, app.ID, newStatus)
	})
}

func (t *Trigger) createCommission(tx *gorm.DB, app *application.Application) error {
	stu, err := t.Students.FindByID(tx, app.StudentID)
	if err != nil {
		return err
	}

	ag, err := t.Agents.LookupByName(tx, stu.ReferringAgent)
	if err != nil {
		return err
	}

	discounted, err := DiscountedFee(app.YearlyFee, app.ScholarshipPercent)
	if err != nil {
		return err
	}
	net := AgencyNet(discounted, ag.CommissionRate)

	// Replaying "Visa Granted" refreshes the record instead of tripping
	// the unique index on application_id.
	if err := t.Repository.DeleteByApplication(tx, app.ID); err != nil {
		return err
	}

	c := &Commission{
		ApplicationID:      app.ID,
		StudentName:        stu.Name,
		AgentID:            ag.ID,
		AgentName:          ag.Name,
		Currency:           app.Currency,
		YearlyFee:          app.YearlyFee,
		ScholarshipPercent: app.ScholarshipPercent,
		PayableFee:         discounted.String(),
		Charges:            0,
		TDSPercent:         t.Defaults.TDSPercent,
		GSTPercent:         t.Defaults.GSTPercent,
		ExchangeRate:       0, // unset until settlement
		CommissionRate:     ag.CommissionRate,
		FinalAmount:        net.InexactFloat64(),
		Paid:               StatusPending,
		Version:            1,
	}
	return t.Repository.Create(tx, c)
}
