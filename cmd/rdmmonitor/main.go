// Package main implements rdmmonitor, a server that decodes a stream of
// RDM frames from a file or stdin and broadcasts each decoded frame as
// JSON to every connected websocket client.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lumenctl/rdmctl/internal/config"
	"github.com/lumenctl/rdmctl/internal/logging"
	"github.com/lumenctl/rdmctl/internal/rdm"
)

var (
	appName    = "rdmmonitor"
	appVersion = "dev" // injected at build time via -ldflags
)

func main() {
	args, action := parseFlags()
	if action != "" {
		return
	}
	if err := run(args); err != nil {
		log.Fatalln(err)
	}
}

// parsedArgs holds the parsed command line arguments.
type parsedArgs struct {
	source     string
	listenAddr string
	logLevel   string
}

func parseFlags() (parsedArgs, string) {
	return parseFlagsWithArgs(os.Args[1:])
}

func parseFlagsWithArgs(args []string) (parsedArgs, string) {
	fs := flag.NewFlagSet("rdmmonitor", flag.ContinueOnError)
	sourceFlag := fs.String("source", "", "path to a file of raw RDM frame bytes, or - for stdin")
	listenFlag := fs.String("listen", "", "websocket listen address")
	logLevelFlag := fs.String("log-level", "", "log level (debug, info, warn, error)")
	helpFlag := fs.Bool("help", false, "show help")
	versionFlag := fs.Bool("version", false, "show version")

	_ = fs.Parse(args)

	if *helpFlag {
		showHelp()
		return parsedArgs{}, "help"
	}
	if *versionFlag {
		showVersion()
		return parsedArgs{}, "version"
	}

	return parsedArgs{
		source:     strings.TrimSpace(*sourceFlag),
		listenAddr: strings.TrimSpace(*listenFlag),
		logLevel:   strings.TrimSpace(*logLevelFlag),
	}, ""
}

func run(args parsedArgs) error {
	opts := config.LoadOptions{
		SourcePath: args.source,
		ListenAddr: args.listenAddr,
		LogLevel:   args.logLevel,
	}

	cfg, err := config.LoadWithOverrides(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.SetLevelFromString(cfg.Logging.Level)
	logging.SetFormatFromString(cfg.Logging.Format)
	if cfg.Logging.File != "" {
		logFile, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		logging.SetOutput(logFile)
	}

	hub := newHub()

	r, closeFn, err := openSource(cfg.Source.Path)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer closeFn()

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}
	logging.Info("read %d bytes from %s", len(data), cfg.Source.Path)

	go hub.decodeAndBroadcast(data)

	mux := http.NewServeMux()
	mux.HandleFunc("/frames", hub.serveWs)

	server := &http.Server{
		Addr:         cfg.Monitor.ListenAddr,
		Handler:      mux,
		ReadTimeout:  cfg.Monitor.ReadTimeout,
		WriteTimeout: cfg.Monitor.WriteTimeout,
	}

	logging.Info("rdmmonitor listening on %s", cfg.Monitor.ListenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func openSource(path string) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

const (
	webSocketReadBufferSize  = 4096
	webSocketWriteBufferSize = 4096
)

// hub fans decoded frames out to every connected websocket client.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *hub) serveWs(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  webSocketReadBufferSize,
		WriteBufferSize: webSocketWriteBufferSize,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("upgrade websocket: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	logging.Info("client connected from %s", r.RemoteAddr)

	// Drain and discard any client-sent messages so the connection's
	// read deadline and close handshake work correctly.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
	logging.Info("client disconnected from %s", r.RemoteAddr)
}

func (h *hub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logging.Warn("write to client failed, dropping: %v", err)
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

// decodeAndBroadcast decodes every frame in buf and broadcasts each one to
// connected clients as it is decoded.
func (h *hub) decodeAndBroadcast(buf []byte) {
	for len(buf) > 0 {
		before := len(buf)
		frame, err := rdm.Parse(&buf)
		if err != nil {
			logging.Warn("decode error: %v", err)
			continue
		}
		if frame == nil {
			if len(buf) < before {
				continue
			}
			logging.Debug("%d trailing bytes insufficient for a complete frame", len(buf))
			break
		}

		payload, marshalErr := marshalFrame(frame)
		if marshalErr != nil {
			logging.Warn("marshal frame: %v", marshalErr)
		} else {
			h.broadcast(payload)
		}

		if len(buf) == before {
			break
		}
	}
}

func showHelp() {
	fmt.Println(appName)
	fmt.Println("USAGE: rdmmonitor [options]")
	fmt.Println("OPTIONS:")
	fmt.Println("  -source     Path to a file of raw RDM frame bytes, or - for stdin (default -)")
	fmt.Println("  -listen     Websocket listen address (default :8080)")
	fmt.Println("  -log-level  Set log level (debug, info, warn, error)")
	fmt.Println("  -version    Show version information")
	fmt.Println("  -help       Show this help message")
	fmt.Println("ENVIRONMENT VARIABLES: RDMCTL_SOURCE_PATH, RDMCTL_LISTEN_ADDR, RDMCTL_LOG_LEVEL")
	fmt.Println("EXAMPLES: rdmmonitor -source capture.bin -listen :8080")
	fmt.Println("Clients connect to ws://<listen>/frames to receive decoded frames as JSON.")
}

func showVersion() {
	fmt.Printf("%s %s\n", appName, appVersion)
}
