package main

import (
	"crypto/tls"

	"github.com/9triver/conceptdb"
)

// getClient dials the first configured server with the configured transport
// options.
func getClient() (*conceptdb.Client, error) {
	return conceptdb.New(cfg.Addresses[0], clientOptions()...)
}

// openSession opens a session on the configured deployment: through the
// cluster client with failover when several addresses are configured,
// directly otherwise. The returned closer shuts down everything the session
// rides on.
func openSession(database string, typ conceptdb.SessionType) (*conceptdb.Session, func(), error) {
	if cfg.Cluster() {
		var credential *conceptdb.TokenCredential
		if cfg.Username != "" {
			var err error
			credential, err = conceptdb.NewTokenCredential(cfg.Username, cfg.Password, cfg.TLS.Enabled)
			if err != nil {
				return nil, nil, err
			}
		}
		cluster, err := conceptdb.NewCluster(cfg.Addresses, credential, clientOptions()...)
		if err != nil {
			return nil, nil, err
		}
		session, err := cluster.Session(database, typ, nil)
		if err != nil {
			cluster.Close()
			return nil, nil, err
		}
		return session, func() { cluster.Close() }, nil
	}

	client, err := getClient()
	if err != nil {
		return nil, nil, err
	}
	session, err := client.Session(database, typ, nil)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return session, func() { client.Close() }, nil
}

func clientOptions() []conceptdb.Option {
	var opts []conceptdb.Option
	if cfg.Parallelism > 0 {
		opts = append(opts, conceptdb.WithParallelism(cfg.Parallelism))
	}
	if cfg.TLS.Enabled {
		if cfg.TLS.RootCAPath != "" {
			opts = append(opts, conceptdb.WithRootCA(cfg.TLS.RootCAPath))
		} else {
			opts = append(opts, conceptdb.WithTLS(&tls.Config{}))
		}
	}
	return opts
}

// databaseArg resolves the database name from the flag or the config file.
func databaseArg(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Database
}
