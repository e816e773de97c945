package main

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/foodwatch/foodwatch-api/schema"
)

const notifyFunction = `
CREATE OR REPLACE FUNCTION notify_foodwatch_change() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify('%s', json_build_object('table', TG_TABLE_NAME, 'op', TG_OP)::text);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql`

const notifyTrigger = `
CREATE TRIGGER %[1]s_notify_change
AFTER INSERT OR UPDATE OR DELETE ON %[1]s
FOR EACH STATEMENT EXECUTE PROCEDURE notify_foodwatch_change()`

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("foodwatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&schema.Establishment{},
		&schema.Case{},
		&schema.Alert{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Case{}).
		AddForeignKey("establishment_id", "establishments(id)", "SET NULL", "CASCADE").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Alert{}).
		AddForeignKey("establishment_id", "establishments(id)", "SET NULL", "CASCADE").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Alert{}).AddIndex("alerts_severity_created_at", "severity", "created_at").Error; err != nil {
		panic(err)
	}

	channel := viper.GetString("notify.channel")
	if channel == "" {
		channel = schema.ChangeChannel
	}

	if err := db.Exec(fmt.Sprintf(notifyFunction, channel)).Error; err != nil {
		panic(err)
	}

	for _, table := range []string{schema.EstablishmentTable, schema.CaseTable, schema.AlertTable} {
		if err := db.Exec(fmt.Sprintf("DROP TRIGGER IF EXISTS %[1]s_notify_change ON %[1]s", table)).Error; err != nil {
			panic(err)
		}

		if err := db.Exec(fmt.Sprintf(notifyTrigger, table)).Error; err != nil {
			panic(err)
		}
	}

	fmt.Println("migration completed, change events are sent on channel", channel)
}
