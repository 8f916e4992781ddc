// Smoke test hitting a running server over HTTP. Exits non-zero on the
// first failing endpoint.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const baseURL = "http://localhost:8080"

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test...")

	steps := []struct {
		name     string
		method   string
		endpoint string
	}{
		{"Health", "GET", "/"},
		{"Dashboard stats", "GET", "/api/stats"},
		{"Tender listing", "GET", "/api/tenders?sort_by=risk&limit=10"},
		{"High-risk filter", "GET", "/api/tenders?risk_level=HIGH"},
		{"Tender detail", "GET", "/api/tenders/tender-002"},
		{"Tender subgraph", "GET", "/api/tenders/tender-001/graph?depth=2"},
		{"Full graph", "GET", "/api/graph/explore"},
		{"Cartel clusters", "GET", "/api/graph/cartels"},
		{"Company detail", "GET", "/api/companies/comp-001"},
		{"Refresh", "POST", "/api/refresh"},
	}

	for i, step := range steps {
		fmt.Printf("%d. %s...\n", i+1, step.name)
		if !sendRequest(step.method, step.endpoint) {
			fmt.Printf("FAILED: %s\n", step.name)
			os.Exit(1)
		}
		fmt.Printf("PASSED: %s\n", step.name)
	}
}

func sendRequest(method, endpoint string) bool {
	req, err := http.NewRequest(method, baseURL+endpoint, nil)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(body))
		return false
	}

	// Responses must at least be valid JSON.
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		fmt.Printf("Invalid JSON response: %v\n", err)
		return false
	}

	return true
}
