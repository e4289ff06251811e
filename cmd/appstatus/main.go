package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/icecave/appstatus/cmd"
	"github.com/icecave/appstatus/frontend"
	"github.com/icecave/appstatus/health"
	"github.com/icecave/appstatus/keysource"
	"github.com/icecave/appstatus/proxyprotocol"
	"github.com/icecave/appstatus/publish"
	"github.com/icecave/appstatus/registry"
	"github.com/icecave/appstatus/statusapi"
	"github.com/icecave/appstatus/statuspage"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var version = "notset"

func main() {
	config := cmd.GetConfigFromEnvironment()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg, err := loadRegistry(ctx, config, logger)
	if err != nil {
		logger.Fatalln(err)
	}

	publisher, closePublisher, err := newPublisher(config, logger)
	if err != nil {
		logger.Fatalln(err)
	}
	defer closePublisher()

	handler := &frontend.Handler{
		API: &statusapi.Handler{
			Registry:   reg,
			Publisher:  publisher,
			StatusPage: statuspage.DefaultWriter,
			Logger:     logger,
		},
		HealthCheck: &health.HTTPHandler{
			Checker: &health.RegistryChecker{
				Registry: reg,
			},
			Logger: logger,
		},
		Logger: logger,
	}

	server := &http.Server{
		Addr:     ":" + config.Port,
		Handler:  h2c.NewHandler(handler, &http2.Server{}),
		ErrorLog: logger,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		logger.Fatal(err)
	}

	if config.ProxyProtocol {
		listener = proxyprotocol.NewListener(listener)
	}

	logger.Printf("Appstatus %s listening on port %s", version, config.Port)

	go func() {
		<-ctx.Done()
		shutdown(server, config.ShutdownTimeout, logger)
	}()

	err = server.Serve(listener)
	if err != nil && err != http.ErrServerClosed {
		logger.Fatalln(err)
	}
}

func loadRegistry(
	ctx context.Context,
	config *cmd.Config,
	logger *log.Logger,
) (*registry.Registry, error) {
	sources := []keysource.Source{
		keysource.FromEnv(logger),
		&keysource.YAMLFile{Path: config.KeysFile},
	}

	if config.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Address,
			Password: config.Redis.Password,
		})
		defer client.Close()

		sources = append(sources, &keysource.RedisSource{
			Client: client,
			Key:    config.Redis.KeysHash,
		})
	}

	sources = append(sources, keysource.Defaults())

	keys, err := keysource.Load(ctx, logger, sources...)
	if err != nil {
		return nil, err
	}

	var random registry.RandomSource
	if config.RandomSeed != 0 {
		logger.Printf("Using deterministic status codes with seed %d", config.RandomSeed)
		random = registry.NewLockedSource(config.RandomSeed)
	}

	return registry.New(keys, random), nil
}

func newPublisher(
	config *cmd.Config,
	logger *log.Logger,
) (publish.Publisher, func(), error) {
	if config.NATS.URL == "" {
		return publish.Discard{}, func() {}, nil
	}

	conn, err := publish.Connect(
		config.NATS.URL,
		fmt.Sprintf("appstatus/%s", version),
		logger,
	)
	if err != nil {
		return nil, nil, err
	}

	logger.Printf("Publishing status reports to %s on %s", config.NATS.Subject, conn.ConnectedUrl())

	return &publish.NATSPublisher{
		Conn:    conn,
		Subject: config.NATS.Subject,
	}, conn.Close, nil
}

func shutdown(server *http.Server, timeout time.Duration, logger *log.Logger) {
	logger.Printf("Shutting down, waiting up to %s for requests to complete", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Println(err)
	}
}
