package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foodwatch/foodwatch-api/schema"
	"github.com/foodwatch/foodwatch-api/share/mockdata"
	"github.com/foodwatch/foodwatch-api/store"
)

var (
	establishmentCount int
	days               int
	seed               int64
	publish            bool
)

// seedCmd fills the database with synthetic surveillance data
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert synthetic establishments, cases and alerts",
	Long: `Generate chain restaurants across five cities, then daily cases and
alerts for the past days, including outbreak bursts.

With --publish, a change event per table is published on the Redis change
channel so running dashboards refresh.`,
	RunE: runSeed,
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("foodwatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	seedCmd.Flags().IntVarP(&establishmentCount, "establishments", "e", 100, "number of establishments")
	seedCmd.Flags().IntVarP(&days, "days", "d", 90, "number of days of cases, ending today")
	seedCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	seedCmd.Flags().BoolVar(&publish, "publish", false, "publish change events to redis")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	core := store.NewFoodSafetyStore(db)
	defer core.Close()

	start := time.Now().UTC().AddDate(0, 0, -days)
	generator := mockdata.New(seed, start, days)

	establishments := generator.Establishments(establishmentCount)
	if err := core.CreateEstablishments(ctx, establishments); err != nil {
		return fmt.Errorf("insert establishments: %w", err)
	}
	log.WithField("prefix", "seed").Infof("inserted %d establishments", len(establishments))

	cases, alerts := generator.Incidents(establishments)
	if err := core.CreateCases(ctx, cases); err != nil {
		return fmt.Errorf("insert cases: %w", err)
	}
	if err := core.CreateAlerts(ctx, alerts); err != nil {
		return fmt.Errorf("insert alerts: %w", err)
	}
	log.WithField("prefix", "seed").Infof("inserted %d cases and %d alerts", len(cases), len(alerts))

	if publish {
		return publishChanges(ctx)
	}
	return nil
}

func publishChanges(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     viper.GetString("redis.conn"),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	})
	feed := store.NewRedisFeed(client, viper.GetString("notify.channel"))
	defer feed.Close()

	for _, table := range []string{schema.EstablishmentTable, schema.CaseTable, schema.AlertTable} {
		if err := feed.Publish(ctx, schema.ChangeEvent{Table: table, Op: "INSERT"}); err != nil {
			return fmt.Errorf("publish %s change: %w", table, err)
		}
	}
	log.WithField("prefix", "seed").Info("published change events")
	return nil
}

func main() {
	if err := seedCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
