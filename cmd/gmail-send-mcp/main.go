// Gmail Send MCP server sends email via Gmail App Password authentication
// through Model Context Protocol.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/peterbourgon/ff/v3"

	"github.com/hal9000y/gmail-send-mcp/internal/mailer"
	"github.com/hal9000y/gmail-send-mcp/internal/render"
	"github.com/hal9000y/gmail-send-mcp/internal/skill"
	"github.com/hal9000y/gmail-send-mcp/internal/tool"
	"github.com/hal9000y/gmail-send-mcp/internal/version"
)

const envPrefix = "GMAIL_SEND_MCP"

func main() {
	fs := flag.NewFlagSet("gmail-send-mcp", flag.ExitOnError)
	smtpHost := fs.String("smtp-host", "smtp.gmail.com", "SMTP submission host")
	smtpPort := fs.Int("smtp-port", 587, "SMTP submission port")
	fs.String("env-file", "", "Path to env file")
	logFile := fs.String("log-file", "", "Path to log file (defaults to stderr, never stdout)")
	check := fs.Bool("check", false, "Verify server wiring and exit")
	showVersion := fs.Bool("version", false, "Print version and exit")

	// The env file must be in the environment before ff.Parse so that
	// explicit flags keep precedence over file values.
	if path := envFileArg(os.Args[1:]); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(fmt.Errorf("godotenv.Load failed: %w", err))
		}
	}

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix(envPrefix)); err != nil {
		panic(fmt.Errorf("ff.Parse failed: %w", err))
	}

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	persistLogs := setupLogger(*logFile)
	defer persistLogs()

	transport := &mailer.SMTPTransport{Host: *smtpHost, Port: *smtpPort}
	sk := skill.New(
		skill.Config{SMTPHost: *smtpHost, SMTPPort: *smtpPort},
		mailer.NewSender(transport),
		render.Default(),
		skill.NewResultStore(),
	)
	server := tool.NewServer(sk)

	if *check {
		if err := runCheck(server); err != nil {
			fmt.Fprintln(os.Stderr, "check failed:", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Starting stdio transport, SMTP endpoint", transport.Addr())

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		log.Println(fmt.Errorf("server.Run failed: %w", err))
		os.Exit(1)
	}

	log.Println("Server stopped")
}

// envFileArg extracts the -env-file value ahead of flag parsing,
// falling back to the GMAIL_SEND_MCP_ENV_FILE variable.
func envFileArg(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(arg, "=")
		if name != "-env-file" && name != "--env-file" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(envPrefix + "_ENV_FILE")
}

// runCheck connects an in-memory client and lists everything the
// server exposes. Output goes to stdout: the server is not speaking
// the protocol in this mode.
func runCheck(server *mcp.Server) error {
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return fmt.Errorf("server.Connect failed: %w", err)
	}
	defer func() {
		if err := serverSession.Close(); err != nil {
			log.Println(fmt.Errorf("serverSession.Close failed: %w", err))
		}
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "gmail-send-mcp-check"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return fmt.Errorf("client.Connect failed: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Println(fmt.Errorf("session.Close failed: %w", err))
		}
	}()

	meta, err := json.MarshalIndent(version.Info(), "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent failed: %w", err)
	}
	fmt.Println(string(meta))

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		return fmt.Errorf("session.ListTools failed: %w", err)
	}
	fmt.Printf("tools: %d\n", len(tools.Tools))
	for _, tl := range tools.Tools {
		fmt.Printf("  - %s\n", tl.Name)
	}

	resources, err := session.ListResources(ctx, nil)
	if err != nil {
		return fmt.Errorf("session.ListResources failed: %w", err)
	}
	fmt.Printf("resources: %d\n", len(resources.Resources))
	for _, res := range resources.Resources {
		fmt.Printf("  - %s\n", res.URI)
	}

	prompts, err := session.ListPrompts(ctx, nil)
	if err != nil {
		return fmt.Errorf("session.ListPrompts failed: %w", err)
	}
	fmt.Printf("prompts: %d\n", len(prompts.Prompts))
	for _, p := range prompts.Prompts {
		fmt.Printf("  - %s\n", p.Name)
	}

	return nil
}

// setupLogger keeps diagnostics off stdout: the stdio transport owns
// that stream.
func setupLogger(logFile string) func() {
	if logFile == "" {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}
	log.SetOutput(f)

	return func() {
		if err := f.Close(); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("f.Close failed: %w", err))
		}
	}
}
