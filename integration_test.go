//go:build integration

package odp

import (
	"context"
	"os"
	"testing"
	"time"
)

func integrationClient(t *testing.T) *Client {
	t.Helper()
	if os.Getenv(EnvAPIKey) == "" {
		t.Skip(EnvAPIKey + " environment variable required for integration tests")
	}
	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

// TestIntegration_SearchProducts tests product search with the real API
func TestIntegration_SearchProducts(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.SearchProducts(ctx, ProductSearchOptions{Limit: 5})
	if err != nil {
		t.Fatalf("SearchProducts failed: %v", err)
	}
	if resp.Len() == 0 {
		t.Fatal("Expected at least one product")
	}
	t.Logf("Found %d products, first: %s", resp.Count, resp.At(0).ProductIdentifier)

	if resp.HasNextPage() {
		next, err := resp.NextPage(ctx)
		if err != nil {
			t.Fatalf("NextPage failed: %v", err)
		}
		info, _ := next.Info()
		if info.Offset != 5 {
			t.Errorf("Expected offset 5, got %d", info.Offset)
		}
	}
}

// TestIntegration_GetProductByID tests fetching one product with its files
func TestIntegration_GetProductByID(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	file, err := client.GetLatestFile(ctx, "PTGRXML")
	if err != nil {
		t.Fatalf("GetLatestFile failed: %v", err)
	}
	t.Logf("Latest file: %s (%d bytes)", file.FileName, file.FileSize)
	if file.ProductIdentifier != "PTGRXML" {
		t.Errorf("Expected product identifier PTGRXML, got %q", file.ProductIdentifier)
	}
}

// TestIntegration_Application tests the application lookups
func TestIntegration_Application(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	const number = "16123456"
	wrapper, err := client.GetApplication(ctx, number)
	if err != nil {
		if IsNotFound(err) {
			t.Skipf("application %s not available: %v", number, err)
		}
		t.Fatalf("GetApplication failed: %v", err)
	}
	if wrapper.ApplicationNumber() != number {
		t.Errorf("Expected %s, got %s", number, wrapper.ApplicationNumber())
	}

	docs, err := client.GetApplicationDocuments(ctx, number)
	if err != nil {
		t.Fatalf("GetApplicationDocuments failed: %v", err)
	}
	t.Logf("Application %s has %d documents", number, docs.Documents.Len())
}

// TestIntegration_PaginateApplications walks a few pages of search results
func TestIntegration_PaginateApplications(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	seen := 0
	for w, err := range client.PaginateApplications(ctx, ApplicationSearchOptions{Query: "widget", Limit: 10}) {
		if err != nil {
			t.Fatalf("pagination failed after %d records: %v", seen, err)
		}
		if w.ApplicationNumber() == "" {
			t.Error("record without application number")
		}
		seen++
		if seen == 25 {
			break
		}
	}
	t.Logf("Iterated %d applications", seen)
}

// TestIntegration_StatusCodes tests the status code list
func TestIntegration_StatusCodes(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.GetStatusCodes(ctx, StatusCodeOptions{Limit: 200})
	if err != nil {
		t.Fatalf("GetStatusCodes failed: %v", err)
	}
	if code, ok := FindStatusCode(resp.Items, 150); ok {
		t.Logf("Status 150: %s", code)
	}
}

// TestIntegration_DownloadDocument downloads the first document of an application
func TestIntegration_DownloadDocument(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	docs, err := client.GetApplicationDocuments(ctx, "16123456")
	if err != nil || docs.Documents.Len() == 0 {
		t.Skipf("no documents available: %v", err)
	}
	format, ok := docs.Documents.At(0).Format("PDF")
	if !ok {
		t.Skip("first document has no PDF rendition")
	}

	path, err := client.DownloadDocument(ctx, format, DownloadOptions{Destination: t.TempDir()})
	if err != nil {
		t.Fatalf("DownloadDocument failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Downloaded file missing: %v", err)
	}
	t.Logf("Downloaded %s (%d bytes)", path, info.Size())
}

// TestIntegration_PTAB searches trials and interference decisions
func TestIntegration_PTAB(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	trials, err := client.SearchPTABTrialProceedings(ctx, PTABProceedingSearchOptions{
		PTABQuery:      PTABQuery{Limit: 2},
		TrialTypeCodeQ: "IPR",
	})
	if err != nil {
		t.Fatalf("SearchPTABTrialProceedings failed: %v", err)
	}
	t.Logf("Found %d IPR trials", trials.Count)
	for trial := range trials.All() {
		if trial.TrialNumber == nil {
			t.Error("trial without a trial number")
		}
	}

	decisions, err := client.SearchPTABInterferenceDecisions(ctx, PTABInterferenceSearchOptions{PTABQuery: PTABQuery{Limit: 2}})
	if err != nil {
		t.Fatalf("SearchPTABInterferenceDecisions failed: %v", err)
	}
	t.Logf("Found %d interference decisions", decisions.Count)
}
