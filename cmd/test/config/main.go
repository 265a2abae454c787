package main

import (
	"fmt"
	"log"

	"leadscout/internal/config"
	"leadscout/internal/search"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Recipient: %s\n", cfg.RecipientEmail)
	fmt.Printf("   SMTP: %s:%d\n", cfg.SMTPHost, cfg.SMTPPort)
	fmt.Printf("   Telegram enabled: %t\n", cfg.TelegramEnabled())
	fmt.Printf("   Queries: %d\n", len(cfg.Queries))
	fmt.Printf("   Personas: %d\n", len(cfg.Personas))
	fmt.Printf("   Feeds: %d\n", len(cfg.Feeds))
	fmt.Printf("   Cookies Path: %s\n", cfg.CookiesPath)
	fmt.Printf("   Cache Path: %s\n", cfg.CachePath)

	for i := range cfg.Queries {
		v := search.Variant{Index: i, Text: cfg.Queries[i]}
		fmt.Printf("   Query #%d: %s\n", i+1, v.Label())
	}
}
