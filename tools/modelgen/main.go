package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// modelgen regenerates the gorm model for the journal table from a migrated
// database. Run it after changing internal/adapter/repo/gorm/migrations.
func main() {
	var dsn, out, table string
	flag.StringVar(&dsn, "dsn", os.Getenv("ISOCITY_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.StringVar(&table, "table", "journal_entries", "table to generate")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or ISOCITY_DB_DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       out,
		ModelPkgPath:  "model",
		Mode:          gen.WithoutContext,
		FieldNullable: true,
	})
	g.UseDB(db)
	g.GenerateModelAs(table, "JournalEntry")
	g.Execute()

	fmt.Printf("generated %s model at %s\n", table, out)
}
