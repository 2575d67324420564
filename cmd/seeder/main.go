package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/patriotech/marketing-intel/internal/config"
	"github.com/patriotech/marketing-intel/internal/db"
	"github.com/patriotech/marketing-intel/internal/demo"
	"github.com/patriotech/marketing-intel/internal/repository"
)

func main() {
	orgName := flag.String("org", "", "organization name (random when empty)")
	seed := flag.Int64("seed", 0, "random seed for reproducible data")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database error: %v", err)
	}
	defer database.Close()

	orgRepo := &repository.OrganizationRepository{DB: database}
	campaignRepo := &repository.CampaignRepository{DB: database}
	channelRepo := &repository.ChannelRepository{DB: database}
	contentRepo := &repository.ContentRepository{DB: database}
	metricsRepo := &repository.MetricsRepository{DB: database}

	dataset := demo.NewGenerator(*seed).FullDataset(*orgName)

	if err := orgRepo.Create(&dataset.Organization); err != nil {
		log.Fatalf("❌ Failed to create organization: %v", err)
	}
	log.Printf("✅ Created organization %s (%s)\n", dataset.Organization.Name, dataset.Organization.ID)

	for i := range dataset.Channels {
		if err := channelRepo.Create(&dataset.Channels[i]); err != nil {
			log.Fatalf("❌ Failed to create channel %s: %v", dataset.Channels[i].Name, err)
		}
	}
	log.Printf("✅ Created %d channels\n", len(dataset.Channels))

	for i := range dataset.Campaigns {
		if err := campaignRepo.Create(&dataset.Campaigns[i]); err != nil {
			log.Fatalf("❌ Failed to create campaign %s: %v", dataset.Campaigns[i].Name, err)
		}
	}
	log.Printf("✅ Created %d campaigns\n", len(dataset.Campaigns))

	for i := range dataset.Content {
		if err := contentRepo.Create(&dataset.Content[i]); err != nil {
			log.Fatalf("❌ Failed to create content %s: %v", dataset.Content[i].Title, err)
		}
	}
	log.Printf("✅ Created %d content pieces\n", len(dataset.Content))

	if err := metricsRepo.Create(&dataset.Metrics); err != nil {
		log.Fatalf("❌ Failed to create metrics snapshot: %v", err)
	}
	log.Println("✅ Created metrics snapshot")

	log.Printf("🚀 Demo data ready for organization %s\n", dataset.Organization.ID)
}
