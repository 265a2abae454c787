package main

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"leadscout/internal/browser"
)

func main() {
	fmt.Println("🌐 Testing Browser Manager...")

	//create playwright manager
	pm, err := browser.NewManager(true)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	//load cookies, a missing file just means a fresh session
	cookies, err := browser.LoadCookies(".cookies/linkedin.json")
	if err != nil {
		log.Printf("⚠️ No cookies: %v", err)
	} else {
		fmt.Printf("✅ Loaded %d cookies\n", len(cookies))
	}

	//create context with cookies
	browserCtx, err := pm.NewContext(cookies)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer browserCtx.Close()

	fmt.Println("✅ Browser context created")

	//create page and navigate
	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	fmt.Println("🔍 Navigating to LinkedIn feed...")
	_, err = page.Goto("https://www.linkedin.com/feed/")
	if err != nil {
		log.Fatalf("Failed to navigate: %v", err)
	}

	//Check if logged in
	title, _ := page.Title()
	fmt.Printf("✅ Page title: %s\n", title)

	count, _ := page.Locator("#global-nav").Count()
	if count > 0 {
		fmt.Println("✅ Signed-in nav bar found, cookie session is alive")
	} else {
		fmt.Println("⚠️ No signed-in nav bar, session expired or no cookies")
	}

	//take screenshot
	_, err = page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String("linkedin-test.png"),
	})
	if err != nil {
		log.Printf("Failed to take screenshot: %v", err)
	} else {
		fmt.Println("📸 Screenshot saved: linkedin-test.png")
	}
	fmt.Println("✨ Test complete!")
}
