package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/foodwatch/foodwatch-api/aggregate"
	"github.com/foodwatch/foodwatch-api/api"
	"github.com/foodwatch/foodwatch-api/dashboard"
	"github.com/foodwatch/foodwatch-api/external/analysis"
	"github.com/foodwatch/foodwatch-api/live"
	"github.com/foodwatch/foodwatch-api/store"
	"github.com/foodwatch/foodwatch-api/utils"
)

var (
	server *api.Server
	ormDB  *gorm.DB
	feed   store.ChangeFeed
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
	viper.SetEnvPrefix("foodwatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// newChangeFeed picks the change notification source. Without one the
// dashboards only refresh on request.
func newChangeFeed() store.ChangeFeed {
	channel := viper.GetString("notify.channel")

	switch driver := viper.GetString("notify.driver"); driver {
	case "postgres":
		return store.NewPQFeed(viper.GetString("orm.conn"), channel)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     viper.GetString("redis.conn"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		})
		return store.NewRedisFeed(client, channel)
	case "":
		return store.NewEmptyFeed()
	default:
		log.WithField("prefix", "init").Warnf("unknown notify driver %q, live updates disabled", driver)
		return store.NewEmptyFeed()
	}
}

func main() {
	var configFile string

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		// stops the hub, live sessions are closed by server.Shutdown
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if feed != nil {
			log.Info("Closing change feed")
			if err := feed.Close(); err != nil {
				log.Error(err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

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

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.WithField("prefix", "init").WithError(err).Warn("messages are not localized")
	}

	var err error
	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}
	core := store.NewFoodSafetyStore(ormDB)
	log.WithField("prefix", "init").Info("Initialized store")

	feed = newChangeFeed()
	hub := live.NewHub(feed)
	go func() {
		if err := hub.Run(ctx); err != nil {
			log.WithField("prefix", "init").WithError(err).Error("change feed unavailable, live updates disabled")
			sentry.CaptureException(err)
		}
	}()

	svc := dashboard.NewService(core,
		dashboard.WithPatientCountPolicy(aggregate.NewPatientCountPolicy(viper.GetInt("aggregation.missing_patient_count"))),
		dashboard.WithRecentLimits(viper.GetInt("dashboard.recent_cases_limit"), viper.GetInt("dashboard.recent_alerts_limit")),
	)

	trigger := analysis.NewTrigger(
		analysis.New(viper.GetString("analysis.url"), viper.GetDuration("analysis.timeout")),
		analysis.NewProgress(viper.GetDuration("analysis.progress_duration")),
	)

	// Init http server
	server = api.NewServer(core, svc, hub, trigger, viper.GetStringSlice("cors.origins"))
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
