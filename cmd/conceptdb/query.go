package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/9triver/conceptdb"
	"github.com/9triver/conceptdb/concept"
	"github.com/9triver/conceptdb/internal/history"
	"github.com/9triver/conceptdb/proto"
)

var (
	queryDatabase string
	queryWrite    bool
	queryStream   bool
)

var queryCmd = &cobra.Command{
	Use:   "query <query>",
	Short: "Run a query",
	Long:  "Run a query in a fresh transaction. Write queries are committed on success.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database := databaseArg(queryDatabase)
		if database == "" {
			return fmt.Errorf("no database: pass --database or set it in the config file")
		}

		start := time.Now()
		runErr := runQuery(database, args[0])
		recordHistory(database, args[0], time.Since(start), runErr)
		return runErr
	},
}

func runQuery(database, query string) error {
	session, closer, err := openSession(database, conceptdb.Data)
	if err != nil {
		return err
	}
	defer closer()

	typ := conceptdb.Read
	if queryWrite {
		typ = conceptdb.Write
	}
	tx, err := session.Transaction(typ, nil)
	if err != nil {
		return err
	}
	defer tx.Close()

	if queryStream {
		if err := streamAnswers(tx, query); err != nil {
			return err
		}
	} else {
		p, err := tx.Query(query, nil)
		if err != nil {
			return err
		}
		res, err := p.Get()
		if err != nil {
			return err
		}
		if res.Query != nil && res.Query.Answer != nil {
			if err := printAnswer(res.Query.Answer); err != nil {
				return err
			}
		}
	}

	if queryWrite {
		return tx.Commit()
	}
	return nil
}

func streamAnswers(tx *conceptdb.Transaction, query string) error {
	it, err := tx.Stream(query, nil)
	if err != nil {
		return err
	}
	for it.Next() {
		part := it.Value()
		if part.Query == nil {
			continue
		}
		for _, answer := range part.Query.Answers {
			if err := printAnswer(answer); err != nil {
				return err
			}
		}
	}
	return it.Err()
}

func printAnswer(raw *proto.ConceptMap) error {
	cm, err := concept.MapFromProto(raw)
	if err != nil {
		return err
	}
	for _, name := range cm.Variables() {
		fmt.Printf("%s = %s\t", name, cm.Get(name))
	}
	fmt.Println()
	return nil
}

// recordHistory appends to the local history store; a history failure only
// warns, it never fails the query.
func recordHistory(database, query string, took time.Duration, runErr error) {
	store, err := history.NewStore(cfg.HistoryDBPath)
	if err != nil {
		logrus.WithError(err).Warn("opening history store")
		return
	}
	defer store.Close()

	entry := &history.Entry{
		Database:       database,
		Query:          query,
		DurationMillis: took.Milliseconds(),
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}
	if err := store.Append(entry); err != nil {
		logrus.WithError(err).Warn("recording query history")
	}
}

func init() {
	queryCmd.Flags().StringVar(&queryDatabase, "database", "", "database to query")
	queryCmd.Flags().BoolVar(&queryWrite, "write", false, "run in a write transaction and commit")
	queryCmd.Flags().BoolVar(&queryStream, "stream", false, "stream answers page by page")
	rootCmd.AddCommand(queryCmd)
}
