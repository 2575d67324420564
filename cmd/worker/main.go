package main

import (
	"encoding/json"
	"log"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"github.com/patriotech/marketing-intel/internal/config"
	"github.com/patriotech/marketing-intel/internal/db"
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

	benchmarkService := service.NewBenchmarkService(
		&repository.BenchmarkRepository{DB: database},
		&repository.MetricsRepository{DB: database},
		nil,
	)

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to RabbitMQ: %v", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("❌ Failed to open channel: %v", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queue.BenchmarkQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatalf("❌ Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatalf("❌ Failed to register consumer: %v", err)
	}

	go func() {
		for d := range msgs {
			var job queue.BenchmarkJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Printf("⚠️ Invalid job payload: %v\n", err)
				d.Ack(false)
				continue
			}

			log.Printf("📩 Benchmark job for org %s (%s)\n", job.OrganizationID, job.BenchmarkType)

			if _, err := benchmarkService.Run(job.OrganizationID, job.BenchmarkType, job.Metrics); err != nil {
				log.Printf("⚠️ Benchmark run failed: %v\n", err)

				retryCount := 0
				if v, ok := d.Headers["x-retry-count"]; ok {
					if n, ok := v.(int); ok {
						retryCount = n
					}
				}
				if retryCount < 3 {
					d.Nack(false, true) // requeue
					continue
				}
				log.Printf("❌ Dropping job for org %s after retries\n", job.OrganizationID)
			}

			d.Ack(false)
		}
	}()

	log.Println("Worker running, waiting for messages...")
	forever := make(chan bool)
	<-forever
}
