package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/patriotech/marketing-intel/internal/ai"
	"github.com/patriotech/marketing-intel/internal/config"
	"github.com/patriotech/marketing-intel/internal/db"
	"github.com/patriotech/marketing-intel/internal/handler"
	"github.com/patriotech/marketing-intel/internal/queue"
	"github.com/patriotech/marketing-intel/internal/repository"
	"github.com/patriotech/marketing-intel/internal/service"
)

func main() {
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
	benchmarkRepo := &repository.BenchmarkRepository{DB: database}
	chatRepo := &repository.ChatRepository{DB: database}

	// Benchmark runs go through RabbitMQ when available, otherwise the
	// in-memory queue keeps the async path working in dev.
	var q queue.Queue
	publisher, err := queue.NewAMQPPublisher(cfg.AMQPURL)
	if err != nil {
		log.Printf("⚠️ RabbitMQ unavailable (%v), using in-memory queue\n", err)
		mem := queue.NewInMemoryQueue()
		benchmarkService := service.NewBenchmarkService(benchmarkRepo, metricsRepo, nil)
		mem.Subscribe(queue.BenchmarkQueueName, func(payload any) error {
			job, ok := payload.(queue.BenchmarkJob)
			if !ok {
				return nil
			}
			_, err := benchmarkService.Run(job.OrganizationID, job.BenchmarkType, job.Metrics)
			return err
		})
		q = mem
	} else {
		defer publisher.Close()
		q = publisher
	}

	client := ai.NewClient(ai.ClientConfig{
		APIKey:    cfg.AnthropicAPIKey,
		Model:     cfg.ClaudeModel,
		MaxTokens: cfg.ClaudeMaxTokens,
	})
	if client.Configured() {
		log.Printf("✅ AI consultant enabled (%s)\n", client.Model())
	} else {
		log.Println("⚠️ ANTHROPIC_API_KEY not set, chat endpoints disabled")
	}

	chatService := service.NewChatService(
		chatRepo, orgRepo, campaignRepo, channelRepo, metricsRepo, benchmarkRepo,
		ai.NewChatEngine(client),
	)

	r := handler.NewRouter(handler.Handlers{
		Organizations: &handler.OrganizationHandler{Repo: orgRepo},
		Campaigns:     &handler.CampaignHandler{Service: service.NewCampaignService(campaignRepo)},
		Channels:      &handler.ChannelHandler{Service: service.NewChannelService(channelRepo)},
		Content:       &handler.ContentHandler{Service: service.NewContentService(contentRepo)},
		Metrics:       &handler.MetricsHandler{Repo: metricsRepo},
		Benchmarks:    &handler.BenchmarkHandler{Service: service.NewBenchmarkService(benchmarkRepo, metricsRepo, q)},
		Analysis:      handler.NewAnalysisHandler(service.NewDashboardService(channelRepo, campaignRepo, metricsRepo)),
		Chat:          &handler.ChatHandler{Service: chatService},
	})

	log.Printf("🚀 Server running on %s\n", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
