package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	httpclient "github.com/ncastellanos/flotilla/internal/pkg/http"
	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/tracking/viewer"
)

// watch is a terminal viewer for the live fleet map. It keeps a local
// cache patched by pushed WebSocket events and reconciled against the
// transmitting-drivers endpoint every poll interval.
func main() {
	serverURL := flag.String("server", "http://localhost:8080", "fleet server base URL")
	token := flag.String("token", os.Getenv("FLEET_TOKEN"), "JWT for the viewer account")
	apiKey := flag.String("api-key", os.Getenv("WATCH_CLI_API_KEY"), "API key; polls via the internal endpoint instead of the session one")
	interval := flag.Duration("interval", 5*time.Second, "poll interval")
	flag.Parse()

	appLogger, err := logger.NewAppLogger(logger.Config{Level: "info"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()

	if *token == "" {
		appLogger.Fatal("missing token: pass -token or set FLEET_TOKEN")
	}

	live := viewer.NewLiveMap(*interval)

	// The API key, when present, is preferred for polling so a shared
	// display wall doesn't burn a user session on reads. The WebSocket
	// still needs the JWT either way.
	client := httpclient.NewAPIClient(*serverURL, httpclient.DefaultTimeout)
	pollEndpoint := "/drivers/transmitting"
	if *apiKey != "" {
		client.WithAPIKey(*apiKey)
		pollEndpoint = "/internal/drivers/transmitting"
	} else {
		client.WithBearerToken(*token)
	}

	pull := func() {
		records, err := fetchTransmitting(client, pollEndpoint)
		if err != nil {
			appLogger.WithError(err).Warn("poll failed")
			return
		}
		live.Seed(records)
	}

	// First pull before the socket opens so the map starts populated.
	pull()

	conn, err := dialTracking(*serverURL, *token)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect websocket")
	}
	defer conn.Close()

	go func() {
		for {
			var msg models.WSMessage
			if err := conn.ReadJSON(&msg); err != nil {
				appLogger.WithError(err).Error("websocket closed")
				return
			}
			if err := live.Apply(msg.Event, msg.Data); err != nil {
				appLogger.WithError(err).WithField("event", msg.Event).Warn("ignored event")
			}
		}
	}()

	pollTicker := time.NewTicker(*interval)
	defer pollTicker.Stop()
	renderTicker := time.NewTicker(time.Second)
	defer renderTicker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-pollTicker.C:
			pull()
		case <-renderTicker.C:
			render(live)
		case <-quit:
			appLogger.Info("shutting down")
			return
		}
	}
}

func fetchTransmitting(client *httpclient.APIClient, endpoint string) ([]models.LocationRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), httpclient.DefaultTimeout)
	defer cancel()

	var envelope struct {
		Data []models.LocationRecord `json:"data"`
	}
	if err := client.GetJSON(ctx, endpoint, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// dialTracking opens the live socket. The token travels as a query
// parameter because browser WebSocket clients cannot set headers, and
// the CLI uses the same handshake.
func dialTracking(serverURL, token string) (*websocket.Conn, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}

	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	wsURL := fmt.Sprintf("%s://%s/ws/tracking?token=%s", scheme, u.Host, url.QueryEscape(token))

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	return conn, err
}

func render(live *viewer.LiveMap) {
	records := live.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "\033[2J\033[H") // clear screen
	fmt.Fprintf(&b, "fleet watch — %d driver(s) — %s\n\n", len(records), time.Now().Format("15:04:05"))
	for _, r := range records {
		status := "transmitting"
		if !r.IsTransmitting {
			status = "paused"
		}
		fmt.Fprintf(&b, "  %-36s  %12s %12s  %-12s  %s\n",
			r.DriverID, r.Latitude, r.Longitude, status, r.Timestamp.Format("15:04:05"))
	}
	fmt.Print(b.String())
}
