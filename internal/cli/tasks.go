package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewTasksCommand groups task inspection subcommands that talk to the
// backend directly, without a running console server.
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Inspect and resume delivery tasks",
	}

	cmd.AddCommand(newTaskStatusCommand())
	cmd.AddCommand(newTaskResumeCommand())
	return cmd
}

type taskCommandOptions struct {
	backendURL string
	token      string
	timeout    time.Duration
	jsonOutput bool
}

func defaultTaskOptions() *taskCommandOptions {
	return &taskCommandOptions{
		backendURL: os.Getenv("CONSOLE_BACKEND_URL"),
		token:      os.Getenv("CONSOLE_BACKEND_TOKEN"),
		timeout:    15 * time.Second,
	}
}

func (o *taskCommandOptions) resolveBackend() string {
	server := strings.TrimSpace(o.backendURL)
	if server == "" {
		server = "http://localhost:8080"
	}
	return strings.TrimSuffix(server, "/")
}

func (o *taskCommandOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.backendURL, "backend", o.backendURL, "Backend URL (default: http://localhost:8080 or $CONSOLE_BACKEND_URL)")
	cmd.Flags().StringVar(&o.token, "token", o.token, "Bearer token for the backend (default: $CONSOLE_BACKEND_TOKEN)")
	cmd.Flags().DurationVar(&o.timeout, "timeout", o.timeout, "HTTP timeout")
	cmd.Flags().BoolVar(&o.jsonOutput, "json", false, "Print raw JSON response")
}

func newTaskStatusCommand() *cobra.Command {
	opts := defaultTaskOptions()

	cmd := &cobra.Command{
		Use:   "status <task-id>",
		Short: "Show the current status of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			taskID := args[0]
			url := fmt.Sprintf("%s/api/v1/tasks/%s/status", opts.resolveBackend(), taskID)

			parsed, err := opts.doJSON(http.MethodGet, url, nil)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(parsed)
			}

			status, _ := parsed["status"].(string)
			fmt.Printf("Task %s: %s\n", taskID, status)
			if agent, ok := parsed["current_agent"].(string); ok && agent != "" {
				fmt.Printf("  Current agent: %s\n", agent)
			}
			if checkpoint, ok := parsed["paused_checkpoint"].(string); ok && checkpoint != "" {
				fmt.Printf("  Paused at:     %s\n", checkpoint)
			}
			return nil
		},
	}

	opts.addFlags(cmd)
	return cmd
}

func newTaskResumeCommand() *cobra.Command {
	opts := defaultTaskOptions()
	var inputs []string

	cmd := &cobra.Command{
		Use:   "resume <task-id> --input key=value",
		Short: "Resume a paused task with the missing inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			taskID := args[0]

			inputMap := make(map[string]string, len(inputs))
			for _, pair := range inputs {
				key, value, found := strings.Cut(pair, "=")
				if !found || key == "" {
					return fmt.Errorf("invalid --input %q, expected key=value", pair)
				}
				inputMap[key] = value
			}

			payload := map[string]any{
				"task_id": taskID,
				"inputs":  inputMap,
			}
			url := fmt.Sprintf("%s/api/v1/tasks/%s/resume", opts.resolveBackend(), taskID)

			parsed, err := opts.doJSON(http.MethodPost, url, payload)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(parsed)
			}

			fmt.Printf("Resume submitted for task %s\n", taskID)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringArrayVar(&inputs, "input", nil, "Missing input as key=value (repeatable)")
	return cmd
}

func (o *taskCommandOptions) doJSON(method, url string, payload any) (map[string]any, error) {
	var bodyReader *bytes.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		bodyReader = bytes.NewReader(body)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	client := &http.Client{Timeout: o.timeout}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if o.token != "" {
		req.Header.Set("Authorization", "Bearer "+o.token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backend returned %d: %v", resp.StatusCode, parsed)
	}
	return parsed, nil
}
