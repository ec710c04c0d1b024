package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sj99642/miniasm/api"
	"github.com/sj99642/miniasm/assembler"
	"github.com/sj99642/miniasm/config"
	"github.com/sj99642/miniasm/viewer"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var cfg *config.Config

func main() {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config, using defaults: %v\n", err)
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "miniasm <input-path> [hex|binstr|file|return]",
		Short:   "Two-pass assembler for the miniasm instruction set",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date),
		Args:    cobra.RangeArgs(1, 2),
		RunE:    runAssemble,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newViewCommand())

	return root
}

// runAssemble implements the CLI contract: <input-path> [hex|binstr|file|return].
// Input path "<ask>" prompts interactively for a filename.
func runAssemble(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	mode := ""
	if len(args) > 1 {
		mode = args[1]
	}
	if mode == "" {
		mode = defaultModeFromConfig()
	}

	source, name, err := readSource(inputPath)
	if err != nil {
		return err
	}

	result, err := assembler.Assemble(source, assembler.Options{Filename: name})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	return emit(result, mode)
}

func defaultModeFromConfig() string {
	if cfg.Output.DefaultMode == "stdout" {
		return "hex"
	}
	return "file"
}

// readSource loads assembly source from a path, or — when the path is the
// literal "<ask>" — prompts the user for one on stdin.
func readSource(path string) (source, name string, err error) {
	if path == "<ask>" {
		fmt.Print("Source file: ")
		reader := bufio.NewReader(os.Stdin)
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return "", "", fmt.Errorf("failed to read filename: %w", readErr)
		}
		path = strings.TrimSpace(line)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-specified source path
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), path, nil
}

func emit(result *assembler.Result, mode string) error {
	switch mode {
	case "hex":
		fmt.Print(hexDumpOutput(result.Bytes))
		return nil
	case "binstr":
		_, err := os.Stdout.Write(result.Bytes)
		return err
	case "file":
		return writeToPromptedFile(result.Bytes)
	case "return":
		// Used by embedders calling through this binary's library surface;
		// nothing to print for a standalone CLI invocation.
		return nil
	default:
		return fmt.Errorf("unknown output mode: %s (want hex, binstr, file, or return)", mode)
	}
}

func hexDumpOutput(data []byte) string {
	bytesPerLine := cfg.Output.HexBytesPerLine
	if bytesPerLine <= 0 {
		bytesPerLine = 16
	}
	var out strings.Builder
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		var parts []string
		for _, b := range data[offset:end] {
			parts = append(parts, fmt.Sprintf("%02X", b))
		}
		out.WriteString(strings.Join(parts, " "))
		out.WriteString("\n")
	}
	return out.String()
}

func writeToPromptedFile(data []byte) error {
	fmt.Print("Output file: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("failed to read output filename: %w", err)
	}
	path := strings.TrimSpace(line)

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if cfg.Output.ColorOutput {
		color.Green("wrote %d bytes to %s", len(data), path)
	} else {
		fmt.Printf("wrote %d bytes to %s\n", len(data), path)
	}
	return nil
}

func newServeCommand() *cobra.Command {
	var port int
	var watchParent bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server, streaming pipeline checkpoints over WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = cfg.API.Port
			}
			server := api.NewServer(port)

			shutdownCh := make(chan struct{})

			if watchParent {
				monitor := api.NewProcessMonitor(func() { close(shutdownCh) })
				monitor.Start()
				defer monitor.Stop()
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				select {
				case <-sigCh:
				case <-shutdownCh:
				}
				fmt.Fprintln(os.Stderr, "shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(ctx); err != nil {
					fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
				}
				os.Exit(0)
			}()

			return server.Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "API server port (default: from config)")
	cmd.Flags().BoolVar(&watchParent, "watch-parent", false,
		"Exit automatically when the process that launched serve dies")
	return cmd
}

func newViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <input-path>",
		Short: "Assemble a source file and browse the result in a terminal viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readSource(args[0])
			if err != nil {
				return err
			}

			result, err := assembler.Assemble(source, assembler.Options{Filename: name})
			if err != nil {
				return err
			}

			v := viewer.New(result, name)
			return v.Run()
		},
	}
}
