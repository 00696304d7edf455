// Command seed loads a development dataset: the studio's opening catalog,
// a small team with weekly schedules, and a batch of fake clients.
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/lucasmrqs/EAS-BookingService/internal/config"
	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/client"
)

const clientCount = 50

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.Load("config.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	services := catalogRepo.NewServiceRepository(db)
	professionals := catalogRepo.NewProfessionalRepository(db)
	clients := clientRepo.NewRepository(db)

	serviceIDs, err := seedServices(ctx, services)
	if err != nil {
		log.Fatalf("seed services: %v", err)
	}
	if err := seedProfessionals(ctx, professionals, serviceIDs); err != nil {
		log.Fatalf("seed professionals: %v", err)
	}
	if err := seedClients(ctx, clients); err != nil {
		log.Fatalf("seed clients: %v", err)
	}

	log.Println("seed complete")
}

func seedServices(ctx context.Context, repo *catalogRepo.ServiceRepository) ([]uuid.UUID, error) {
	// The studio's opening catalog.
	catalog := []*domain.Service{
		{Name: "Estética Auricular", Category: domain.CategoryAuricularAesthetics, DurationMinutes: 60, Price: 250},
		{Name: "Reconstrução Auricular", Category: domain.CategoryAuricularAesthetics, DurationMinutes: 90, Price: 450},
		{Name: "Primeiro Furo de Bebês (Humanizado)", Category: domain.CategoryPediatric, DurationMinutes: 30, Price: 150},
		{Name: "Aplicação de Piercing (Atendimento Humanizado)", Category: domain.CategoryPiercing, DurationMinutes: 30, Price: 120},
		{Name: "Tratamento com Jato de Plasma", Category: domain.CategoryPlasmaTreatment, DurationMinutes: 45, Price: 350},
	}

	log.Printf("seeding %d services", len(catalog))

	ids := make([]uuid.UUID, 0, len(catalog))
	for _, svc := range catalog {
		svc.ID = uuid.New()
		if _, err := repo.Create(ctx, svc); err != nil {
			return nil, err
		}
		ids = append(ids, svc.ID)
	}

	log.Println("services seeded")
	return ids, nil
}

func seedProfessionals(ctx context.Context, repo *catalogRepo.ProfessionalRepository, serviceIDs []uuid.UUID) error {
	// Tuesday to Friday 10:00-19:00 plus Saturday mornings.
	var schedule domain.WeeklySchedule
	for day := time.Tuesday; day <= time.Friday; day++ {
		schedule[day] = domain.Window("10:00", "19:00")
	}
	schedule[time.Saturday] = domain.Window("09:00", "14:00")

	team := []*domain.Professional{
		{
			Name:              "Tainá Batista",
			Role:              "Especialista em Estética Auricular",
			OfferedServiceIDs: serviceIDs,
			WeeklySchedule:    schedule,
		},
	}

	log.Printf("seeding %d professionals", len(team))

	for _, p := range team {
		p.ID = uuid.New()
		if _, err := repo.Create(ctx, p); err != nil {
			return err
		}
	}

	log.Println("professionals seeded")
	return nil
}

func seedClients(ctx context.Context, repo *clientRepo.Repository) error {
	log.Printf("seeding %d clients", clientCount)

	for i := 0; i < clientCount; i++ {
		c := &domain.Client{
			ID:    uuid.New(),
			Name:  gofakeit.Name(),
			Email: gofakeit.Email(),
			Phone: gofakeit.Phone(),
		}
		if _, err := repo.Create(ctx, c); err != nil {
			return err
		}
	}

	log.Println("clients seeded")
	return nil
}
