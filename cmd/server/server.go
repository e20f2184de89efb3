package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ssineriz/molparse/internal/service"
)

func createTables(ctx context.Context, db *sql.DB) error {
	const (
		usersTable = `
		CREATE TABLE IF NOT EXISTS users(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			login TEXT UNIQUE,
			hashedPassword TEXT NOT NULL
		);`

		formulasTable = `
		CREATE TABLE IF NOT EXISTS formulas(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hash INTEGER NOT NULL,
			formula TEXT,
			postfixFormula TEXT,
			userId INTEGER NOT NULL,
			status TEXT,
			result TEXT,

			FOREIGN KEY (userId) REFERENCES users (id)
		);`
	)

	if _, err := db.ExecContext(ctx, usersTable); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, formulasTable); err != nil {
		return err
	}
	return nil
}

func main() {
	hostPtr := flag.String("host", "http://localhost", "host of server")
	portPtr := flag.Int("port", 8080, "port of server")
	dbPtr := flag.String("db", "store.db", "path to the sqlite database")
	flag.Parse()

	db, err := sql.Open("sqlite3", *dbPtr)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	if err := db.PingContext(context.TODO()); err != nil {
		panic(err)
	}
	if err := createTables(context.TODO(), db); err != nil {
		panic(err)
	}

	go func() {
		fmt.Printf("run formula server at %s:%d\n", *hostPtr, *portPtr)
		s := service.GetServer(*hostPtr, *portPtr, db)
		s.ListenAndServe()
	}()

	var stopChan = make(chan os.Signal, 2)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stopChan // wait for SIGINT
	fmt.Println("stop formula server")
}
