// Command seed populates the posts collection with demo data for local
// development: the four-post CRUD walkthrough dataset plus optional filler.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"chronicle/internal/config"
	"chronicle/internal/database"
	"chronicle/internal/repository"
	"chronicle/internal/seed"
)

func main() {
	count := flag.Int("count", 0, "number of additional fake posts to insert")
	demo := flag.Bool("demo", true, "insert the Create/Read/Update/Delete demo posts")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Disconnect(ctx, client); err != nil {
			log.Printf("disconnect error: %v", err)
		}
	}()

	repo := repository.NewPostRepository(database.Posts(client, cfg))
	factory := seed.NewFactory(repo)
	ctx := context.Background()

	if *demo {
		ids, err := factory.CRUDDemo(ctx)
		if err != nil {
			log.Fatalf("Failed to seed demo posts: %v", err)
		}
		log.Printf("Seeded %d demo posts: %v", len(ids), ids)
	}

	if *count > 0 {
		ids, err := factory.CreatePosts(ctx, *count)
		if err != nil {
			log.Fatalf("Failed to seed posts: %v", err)
		}
		log.Printf("Seeded %d fake posts", len(ids))
	}
}
