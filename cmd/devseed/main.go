// Development seeding tool: creates admin accounts (the API has no
// registration endpoint), rotates passwords, toggles the active flag and
// optionally loads sample bookings and caregiver applications.
package main

import (
	"context"
	"flag"
	"time"

	"NeoNestAdminAPI/internal/config"
	"NeoNestAdminAPI/internal/db"
	"NeoNestAdminAPI/internal/model"
	"NeoNestAdminAPI/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	var (
		email      = flag.String("email", "", "admin email")
		name       = flag.String("name", "Admin", "admin display name")
		password   = flag.String("password", "", "admin password (creates the account, or rotates with -rotate)")
		role       = flag.String("role", model.RoleSuperAdmin, "admin role")
		rotate     = flag.Bool("rotate", false, "rotate the password of an existing admin")
		deactivate = flag.Bool("deactivate", false, "deactivate the admin account")
		reactivate = flag.Bool("reactivate", false, "reactivate the admin account")
		sample     = flag.Bool("sample", false, "seed sample bookings and caregiver applications")
	)
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	admins := repository.NewAdminRepository(pool)
	bookings := repository.NewBookingRepository(pool)
	caregivers := repository.NewCaregiverRepository(pool)

	switch {
	case *deactivate || *reactivate:
		a, err := admins.GetByEmailWithPassword(ctx, *email)
		if err != nil {
			logrus.WithError(err).WithField("email", *email).Fatal("admin lookup failed")
		}
		if err := admins.SetActive(ctx, a.ID, *reactivate); err != nil {
			logrus.WithError(err).Fatal("update active flag failed")
		}
		logrus.WithFields(logrus.Fields{"email": *email, "active": *reactivate}).Info("admin updated")

	case *rotate:
		a, err := admins.GetByEmailWithPassword(ctx, *email)
		if err != nil {
			logrus.WithError(err).WithField("email", *email).Fatal("admin lookup failed")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Fatal("hash password failed")
		}
		if err := admins.SetPassword(ctx, a.ID, string(hash)); err != nil {
			logrus.WithError(err).Fatal("rotate password failed")
		}
		logrus.WithField("email", *email).Info("password rotated")

	case *email != "" && *password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Fatal("hash password failed")
		}
		id, err := admins.Create(ctx, *name, *email, string(hash), *role)
		if err != nil {
			logrus.WithError(err).Fatal("create admin failed")
		}
		logrus.WithFields(logrus.Fields{"email": *email, "id": id}).Info("admin created")
	}

	if *sample {
		seedSample(ctx, bookings, caregivers)
	}
}

func seedSample(ctx context.Context, bookings *repository.BookingRepository, caregivers *repository.CaregiverRepository) {
	sampleBookings := []model.Booking{
		{
			MotherID: "M001", MotherName: "Meera Patel",
			OrganizationID: "O001", OrganizationName: "Care Plus Foundation",
			CaregiverID: "C001", CaregiverName: "Lakshmi Nair",
			Status: model.BookingStatusConfirmed,
			Date:   time.Now().AddDate(0, 0, 2), ServiceType: "Neonatal Care",
		},
		{
			MotherID: "M002", MotherName: "Riya Kumar",
			OrganizationID: "O002", OrganizationName: "Mother Care Services",
			CaregiverID: "C002", CaregiverName: "Sunita Rao",
			Status: model.BookingStatusPending,
			Date:   time.Now().AddDate(0, 0, 3), ServiceType: "Postnatal Support",
		},
		{
			MotherID: "M003", MotherName: "Kavya Singh",
			OrganizationID: "O001", OrganizationName: "Care Plus Foundation",
			CaregiverID: "C003", CaregiverName: "Asha Reddy",
			Status: model.BookingStatusInProgress,
			Date:   time.Now().AddDate(0, 0, 1), ServiceType: "Full-time Care",
		},
	}
	for i := range sampleBookings {
		if _, err := bookings.Create(ctx, &sampleBookings[i]); err != nil {
			logrus.WithError(err).Fatal("seed booking failed")
		}
	}

	sampleCaregivers := []model.Caregiver{
		{Name: "Lakshmi Nair", Email: "lakshmi.nair@example.com", City: "Chennai", Phone: "+91 98765 43213", Status: model.CaregiverStatusApproved},
		{Name: "Sunita Rao", Email: "sunita.rao@example.com", City: "Pune", Phone: "+91 98765 43214", Status: model.CaregiverStatusPending},
		{Name: "Asha Reddy", Email: "asha.reddy@example.com", City: "Hyderabad", Phone: "+91 98765 43215", Status: model.CaregiverStatusPending},
	}
	for i := range sampleCaregivers {
		if _, err := caregivers.Create(ctx, &sampleCaregivers[i]); err != nil {
			logrus.WithError(err).Fatal("seed caregiver failed")
		}
	}

	logrus.WithFields(logrus.Fields{
		"bookings":   len(sampleBookings),
		"caregivers": len(sampleCaregivers),
	}).Info("sample data seeded")
}
