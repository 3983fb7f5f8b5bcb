package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/enroute-bot/enroute-api/api"
	"github.com/enroute-bot/enroute-api/background"
	"github.com/enroute-bot/enroute-api/bot"
	"github.com/enroute-bot/enroute-api/external/census"
	"github.com/enroute-bot/enroute-api/external/covid"
	"github.com/enroute-bot/enroute-api/external/geoinfo"
	"github.com/enroute-bot/enroute-api/external/messenger"
	"github.com/enroute-bot/enroute-api/external/places"
	"github.com/enroute-bot/enroute-api/geo"
	"github.com/enroute-bot/enroute-api/store"
	"github.com/enroute-bot/enroute-api/utils"
)

var (
	server   *api.Server
	sessions *store.MemorySessionStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("enroute")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown webhook server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if sessions != nil {
			log.Info("Stopping session store")
			sessions.Stop()
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Bot copy
	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Loaded message bundle")

	// Google Maps client shared by geocoding and place search
	mapsClient, err := maps.NewClient(maps.WithAPIKey(viper.GetString("maps.apikey")))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Initialized maps client")

	// County adjacency is a static dataset, loaded once at startup
	adjacency, err := census.New(viper.GetString("feeds.adjacency"), httpClient).Build(initialCtx)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded county adjacency: ", adjacency.Len(), " counties")

	caseSource := covid.New(viper.GetString("feeds.cases"), httpClient)
	stateInfo := covid.NewStateInfo(viper.GetString("feeds.stateinfo"), httpClient)

	sender := messenger.New(
		viper.GetString("messenger.graph_url"),
		viper.GetString("messenger.access_token"),
		httpClient)

	sessions = store.NewSessionStore(viper.GetDuration("session.ttl"))

	resolver := geo.NewCountyResolver(geoinfo.New(mapsClient), caseSource, adjacency)

	notifier := background.NewBackground(sessions, caseSource, stateInfo, sender)
	scheduler := background.NewScheduler(viper.GetDuration("notification.delay"), notifier)

	engine := bot.NewEngine(sessions, resolver, places.New(mapsClient), sender, scheduler)

	// Init http server
	server = api.NewServer(engine)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
