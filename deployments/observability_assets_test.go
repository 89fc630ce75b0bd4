package deployments

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestPrometheusRulesContainExpectedAlerts(t *testing.T) {
	root := repoRoot(t)
	path := filepath.Join(root, "deployments", "observability", "prometheus", "campaignchat_rules.yaml")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rules file: %v", err)
	}
	text := string(content)

	requiredAlerts := []string{
		"CampaignChatHTTPErrorRateHigh",
		"CampaignChatWarehouseErrorsDetected",
		"CampaignChatWarehouseLatencyP95High",
		"CampaignChatCredentialsMissing",
	}
	for _, alertName := range requiredAlerts {
		if !strings.Contains(text, "alert: "+alertName) {
			t.Fatalf("rules missing alert %q", alertName)
		}
	}

	requiredMetrics := []string{
		"campaignchat_http_requests_total",
		"campaignchat_warehouse_query_errors_total",
		"campaignchat_warehouse_query_duration_seconds_bucket",
		"campaignchat_chat_requests_total",
	}
	for _, metricName := range requiredMetrics {
		if !strings.Contains(text, metricName) {
			t.Fatalf("rules missing metric reference %q", metricName)
		}
	}
}

func TestPrometheusScrapeExampleContainsMetricsPathAndRules(t *testing.T) {
	root := repoRoot(t)
	path := filepath.Join(root, "deployments", "observability", "prometheus", "prometheus-scrape.example.yaml")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read scrape example: %v", err)
	}
	text := string(content)

	if !strings.Contains(text, "metrics_path: /v1/metrics") {
		t.Fatal("scrape example missing the service metrics path")
	}
	if !strings.Contains(text, "campaignchat_rules.yaml") {
		t.Fatal("scrape example missing the rule file reference")
	}
	if !strings.Contains(text, "job_name: campaignchat-api") {
		t.Fatal("scrape example missing the campaignchat-api job")
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), ".."))
}
