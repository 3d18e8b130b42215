// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/boat"
	"github.com/fisherfans/backend/internal/booking"
	"github.com/fisherfans/backend/internal/config"
	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/logentry"
	"github.com/fisherfans/backend/internal/migrations"
	"github.com/fisherfans/backend/internal/occurrence"
	"github.com/fisherfans/backend/internal/trip"
	"github.com/fisherfans/backend/internal/user"
)

const seedPassword = "FisherFans123!"

type services struct {
	users       *user.Service
	boats       *boat.Service
	trips       *trip.Service
	occurrences *occurrence.Service
	bookings    *booking.Service
	logEntries  *logentry.Service
}

func main() {
	configPath := flag.String("config", "", "path to optional YAML config file")
	reset := flag.Bool("reset", false, "drop and recreate the schema before seeding")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := run(*configPath, *reset); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, reset bool) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	if reset {
		if err := migrations.Down(db.DB.DB); err != nil {
			return err
		}
		slog.Info("schema dropped")
	}
	if err := migrations.Apply(ctx, db.DB.DB); err != nil {
		return err
	}

	hasher, err := core.NewPasswordHasher(core.PasswordParamsFromConfig(cfg.Security))
	if err != nil {
		return err
	}

	userSvc := user.NewService(user.NewRepository(db.DB), hasher)
	boatSvc := boat.NewService(boat.NewRepository(db.DB), userSvc)
	tripSvc := trip.NewService(trip.NewRepository(db.DB), userSvc, boatSvc)
	occurrenceSvc := occurrence.NewService(occurrence.NewRepository(db.DB), tripSvc)

	svc := services{
		users:       userSvc,
		boats:       boatSvc,
		trips:       tripSvc,
		occurrences: occurrenceSvc,
		bookings: booking.NewService(
			booking.NewRepository(db.DB),
			userSvc,
			tripSvc,
			occurrenceSvc,
			nil,
			nil,
		),
		logEntries: logentry.NewService(logentry.NewRepository(db.DB), userSvc),
	}

	err = seed(ctx, svc)
	if errors.Is(err, core.ErrDuplicateEmail) {
		slog.Info("database already seeded, use -reset to start over")
		return nil
	}
	return err
}

func ptr[T any](v T) *T { return &v }

func as(u *user.User) *auth.Identity {
	return &auth.Identity{UserID: u.ID, Email: u.Email}
}

//nolint:funlen // fixture data
func seed(ctx context.Context, svc services) error {
	skipper, err := svc.users.Create(ctx, user.CreateUserInput{
		Nom:           "Le Gall",
		Prenom:        "Yann",
		DateNaissance: time.Date(1978, 5, 14, 0, 0, 0, 0, time.UTC),
		Email:         "yann.legall@fisherfans.test",
		Password:      seedPassword,
		Telephone:     "0298000001",
		Adresse:       "12 quai de la Douane",
		CodePostal:    "29200",
		Ville:         "Brest",
		Langues:       []string{"fr", "br", "en"},
		Statut:        user.StatusProfessional,
		Societe:       ptr("Iroise Peche Sportive"),
		TypeActivite:  ptr(user.ActivityGuide),
		Siret:         ptr("81234567800019"),
		RC:            ptr("RC-IROISE-2024"),
		PermisBateau:  ptr("BR123456"),
		Assurance:     ptr("Mutuelle du Large"),
	})
	if err != nil {
		return fmt.Errorf("create skipper: %w", err)
	}

	renter, err := svc.users.Create(ctx, user.CreateUserInput{
		Nom:           "Durand",
		Prenom:        "Claire",
		DateNaissance: time.Date(1985, 9, 2, 0, 0, 0, 0, time.UTC),
		Email:         "claire.durand@fisherfans.test",
		Password:      seedPassword,
		Telephone:     "0556000002",
		Adresse:       "4 rue du Port",
		CodePostal:    "33120",
		Ville:         "Arcachon",
		Langues:       []string{"fr", "es"},
		Statut:        user.StatusProfessional,
		Societe:       ptr("Bassin Location"),
		TypeActivite:  ptr(user.ActivityRental),
		Siret:         ptr("82345678900021"),
		RC:            ptr("RC-BASSIN-88"),
		PermisBateau:  ptr("AR654321"),
	})
	if err != nil {
		return fmt.Errorf("create renter: %w", err)
	}

	angler, err := svc.users.Create(ctx, user.CreateUserInput{
		Nom:           "Martin",
		Prenom:        "Lucas",
		DateNaissance: time.Date(1996, 1, 21, 0, 0, 0, 0, time.UTC),
		Email:         "lucas.martin@fisherfans.test",
		Password:      seedPassword,
		Telephone:     "0600000003",
		Adresse:       "8 avenue Jean Jaures",
		CodePostal:    "69007",
		Ville:         "Lyon",
		Langues:       []string{"fr"},
		Statut:        user.StatusIndividual,
	})
	if err != nil {
		return fmt.Errorf("create angler: %w", err)
	}
	slog.Info("users created", "count", 3)

	arVag, err := svc.boats.Create(ctx, as(skipper), skipper.ID, boat.CreateBoatInput{
		Nom:              "Ar Vag",
		Description:      ptr("Pecheur promenade equipe pour le bar et la dorade."),
		Marque:           "Beneteau",
		Annee:            2019,
		PermisRequis:     boat.PermitCoastal,
		Type:             boat.TypeCabin,
		Equipements:      []string{"sondeur", "gps", "vivier", "radio vhf"},
		CautionEur:       1500,
		CapaciteMax:      8,
		Couchages:        2,
		PortAttacheVille: "Brest",
		Lat:              48.3809,
		Lon:              -4.4886,
		Motorisation:     "inboard diesel",
		PuissanceCV:      220,
	})
	if err != nil {
		return fmt.Errorf("create boat: %w", err)
	}

	pinasse, err := svc.boats.Create(ctx, as(renter), renter.ID, boat.CreateBoatInput{
		Nom:              "La Pinasse",
		Marque:           "Quicksilver",
		Annee:            2021,
		PermisRequis:     boat.PermitCoastal,
		Type:             boat.TypeOpen,
		Equipements:      []string{"sondeur", "bimini"},
		CautionEur:       800,
		CapaciteMax:      6,
		PortAttacheVille: "Arcachon",
		Lat:              44.6586,
		Lon:              -1.1689,
		Motorisation:     "hors-bord",
		PuissanceCV:      115,
	})
	if err != nil {
		return fmt.Errorf("create boat: %w", err)
	}
	slog.Info("boats created", "count", 2)

	barTrip, err := svc.trips.Create(ctx, as(skipper), skipper.ID, trip.CreateTripInput{
		BoatID:         arVag.ID,
		Titre:          "Bar en mer d'Iroise",
		InfosPratiques: ptr("Depart du port de commerce, materiel fourni."),
		TypeSortie:     trip.OutingRecurring,
		TypeTarif:      trip.PricingPerPerson,
		NbPassagers:    6,
		PrixEur:        95,
	})
	if err != nil {
		return fmt.Errorf("create trip: %w", err)
	}

	bassinTrip, err := svc.trips.Create(ctx, as(renter), renter.ID, trip.CreateTripInput{
		BoatID:      pinasse.ID,
		Titre:       "Journee daurade sur le Bassin",
		TypeSortie:  trip.OutingDaily,
		TypeTarif:   trip.PricingGlobal,
		NbPassagers: 4,
		PrixEur:     420,
	})
	if err != nil {
		return fmt.Errorf("create trip: %w", err)
	}
	slog.Info("trips created", "count", 2)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	at := func(day time.Time, h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	var barDates []*occurrence.Occurrence
	for week := 1; week <= 3; week++ {
		day := today.AddDate(0, 0, 7*week)
		occ, err := svc.occurrences.Create(ctx, occurrence.CreateOccurrenceInput{
			TripID:      barTrip.ID,
			DateDebut:   at(day, 6, 30),
			DateFin:     at(day, 12, 0),
			HeureDepart: at(day, 6, 30),
			HeureFin:    at(day, 12, 0),
		})
		if err != nil {
			return fmt.Errorf("create occurrence: %w", err)
		}
		barDates = append(barDates, occ)
	}

	bassinDay := today.AddDate(0, 0, 10)
	bassinDate, err := svc.occurrences.Create(ctx, occurrence.CreateOccurrenceInput{
		TripID:      bassinTrip.ID,
		DateDebut:   at(bassinDay, 8, 0),
		DateFin:     at(bassinDay, 17, 30),
		HeureDepart: at(bassinDay, 8, 0),
		HeureFin:    at(bassinDay, 17, 30),
	})
	if err != nil {
		return fmt.Errorf("create occurrence: %w", err)
	}
	slog.Info("occurrences created", "count", len(barDates)+1)

	reservations := []struct {
		who    *user.User
		trip   string
		occ    string
		places int
	}{
		{who: angler, trip: barTrip.ID, occ: barDates[0].ID, places: 2},
		{who: renter, trip: barTrip.ID, occ: barDates[0].ID, places: 3},
		{who: angler, trip: bassinTrip.ID, occ: bassinDate.ID, places: 4},
	}
	for _, res := range reservations {
		_, err := svc.bookings.Create(ctx, as(res.who), res.who.ID, booking.CreateBookingInput{
			TripID:       res.trip,
			OccurrenceID: res.occ,
			NbPlaces:     res.places,
		})
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
	}
	slog.Info("bookings created", "count", len(reservations))

	catches := []logentry.CreateLogEntryInput{
		{
			PoissonNom:  "Bar",
			Commentaire: ptr("Pris au leurre souple a la pointe Saint-Mathieu."),
			TailleCm:    62,
			PoidsKg:     2.8,
			Lieu:        "Pointe Saint-Mathieu",
			DatePeche:   today.AddDate(0, 0, -12),
			Relache:     true,
		},
		{
			PoissonNom: "Dorade royale",
			TailleCm:   38,
			PoidsKg:    1.1,
			Lieu:       "Bassin d'Arcachon",
			DatePeche:  today.AddDate(0, -1, 0),
		},
	}
	for _, c := range catches {
		if _, err := svc.logEntries.Create(ctx, as(angler), angler.ID, c); err != nil {
			return fmt.Errorf("create log entry: %w", err)
		}
	}
	slog.Info("log entries created", "count", len(catches))

	slog.Info("seed complete",
		"password", seedPassword,
		"skipper", skipper.Email,
		"renter", renter.Email,
		"angler", angler.Email,
	)
	return nil
}
