package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL   string
	authToken string
	timeout   time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "studioops-cli",
		Short: "StudioOps CLI tool",
		Long:  `A command line interface for interacting with the StudioOps API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the StudioOps API")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "Bearer token for authenticated endpoints")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly report operations",
	}
	reportCmd.AddCommand(exportReportCmd())
	reportCmd.AddCommand(salaryCmd())
	rootCmd.AddCommand(reportCmd)

	breakdownCmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Financial breakdown operations",
	}
	breakdownCmd.AddCommand(validateBreakdownCmd())
	rootCmd.AddCommand(breakdownCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func exportReportCmd() *cobra.Command {
	var month, year int
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the monthly report workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := periodQuery(month, year)
			body, err := apiGet("/api/v1/reports/monthly/export", query)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = fmt.Sprintf("report_%04d_%02d.xlsx", year, month)
			}
			if err := os.WriteFile(outPath, body, 0o644); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}

			fmt.Printf("Report written to %s (%d bytes)\n", outPath, len(body))
			return nil
		},
	}

	now := time.Now().UTC()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Report month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Report year")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file path")

	return cmd
}

func salaryCmd() *cobra.Command {
	var month, year int
	var staff string

	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Show a staff member's salary statement for one month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if staff == "" {
				return fmt.Errorf("--staff is required")
			}

			query := periodQuery(month, year)
			query.Set("staff", staff)

			body, err := apiGet("/api/v1/reports/salary", query)
			if err != nil {
				return err
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(result)
			return nil
		},
	}

	now := time.Now().UTC()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Statement month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Statement year")
	cmd.Flags().StringVar(&staff, "staff", "", "Staff member name")

	return cmd
}

func validateBreakdownCmd() *cobra.Command {
	var inPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a breakdown balances without saving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload []byte
			var err error
			if inPath == "" || inPath == "-" {
				payload, err = io.ReadAll(cmd.InOrStdin())
			} else {
				payload, err = os.ReadFile(inPath)
			}
			if err != nil {
				return fmt.Errorf("failed to read breakdown: %w", err)
			}

			body, err := apiPost("/api/v1/finance/validate", payload)
			if err != nil {
				return err
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if balanced, ok := result["is_balanced"].(bool); ok && balanced {
				fmt.Println("Breakdown BALANCED")
			} else {
				fmt.Println("Breakdown UNBALANCED")
			}
			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "file", "-", "Breakdown JSON file ('-' for stdin)")

	return cmd
}

func periodQuery(month, year int) url.Values {
	query := url.Values{}
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))
	return query
}

func apiGet(path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return doRequest(req)
}

func apiPost(path string, payload []byte) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return doRequest(req)
}

func doRequest(req *http.Request) ([]byte, error) {
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return body, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to format response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
