// Package storage owns everything that touches Neo4j: the driver lifecycle,
// graph materialization, statistics, and on-disk snapshots of materialized
// graphs.
package storage

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Ahmed-lashari/Text2Graph/config"
)

// Runner executes one Cypher statement and returns the records as maps.
// Everything above the driver depends on this interface, not on the driver,
// so graph building is testable without a database.
type Runner interface {
	Run(query string, params map[string]interface{}) ([]map[string]interface{}, error)
}

// Store wraps the Neo4j driver and a long-lived session. Not safe for
// concurrent use; one pipeline run owns one store.
type Store struct {
	driver  neo4j.Driver
	session neo4j.Session
	uri     string
	auth    neo4j.AuthToken
	logger  *logrus.Logger
}

// NewStore connects to Neo4j and verifies the endpoint answers before
// returning. The pool settings match what the database tier expects: hour
// lifetime, fifty connections, thirty second dial timeout.
func NewStore(cfg *config.Config) (*Store, error) {
	if cfg.Neo4jPassword == "" {
		return nil, errors.New("neo4j password is empty, check your .env file")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.WithFields(logrus.Fields{
		"uri":      cfg.Neo4jURI,
		"username": cfg.Neo4jUsername,
	}).Info("Connecting to Neo4j")

	auth := neo4j.BasicAuth(cfg.Neo4jUsername, cfg.Neo4jPassword, "")
	driver, err := neo4j.NewDriver(cfg.Neo4jURI, auth, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "creating neo4j driver")
	}

	s := &Store{driver: driver, uri: cfg.Neo4jURI, auth: auth, logger: logger}
	if err := s.Ping(); err != nil {
		_ = driver.Close()
		return nil, errors.Wrap(err, "testing neo4j connection")
	}
	s.session = driver.NewSession(neo4j.SessionConfig{})

	logger.Info("Neo4j connection established")
	return s, nil
}

func poolConfig(c *neo4j.Config) {
	c.MaxConnectionLifetime = time.Hour
	c.MaxConnectionPoolSize = 50
	c.SocketConnectTimeout = 30 * time.Second
}

// Ping checks the connection with a throwaway session.
func (s *Store) Ping() error {
	session := s.driver.NewSession(neo4j.SessionConfig{})
	defer session.Close()

	result, err := session.Run("RETURN 1 as test", nil)
	if err != nil {
		return err
	}
	_, err = result.Consume()
	return err
}

// Run implements Runner on the store's session.
func (s *Store) Run(query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	result, err := s.session.Run(query, params)
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	for result.Next() {
		record := result.Record()
		row := make(map[string]interface{}, len(record.Keys))
		for i, key := range record.Keys {
			row[key] = record.Values[i]
		}
		rows = append(rows, row)
	}
	return rows, result.Err()
}

// Reconnect tears the driver down and dials again.
func (s *Store) Reconnect() error {
	s.closeQuietly()

	driver, err := neo4j.NewDriver(s.uri, s.auth, poolConfig)
	if err != nil {
		return errors.Wrap(err, "recreating neo4j driver")
	}
	s.driver = driver
	if err := s.Ping(); err != nil {
		return errors.Wrap(err, "testing neo4j connection")
	}
	s.session = driver.NewSession(neo4j.SessionConfig{})

	s.logger.Info("Neo4j connection reestablished")
	return nil
}

// Close releases the session and the driver.
func (s *Store) Close() error {
	if s.session != nil {
		if err := s.session.Close(); err != nil {
			s.logger.WithError(err).Warn("Error closing session")
		}
		s.session = nil
	}
	if s.driver != nil {
		err := s.driver.Close()
		s.driver = nil
		return err
	}
	return nil
}

func (s *Store) closeQuietly() {
	if err := s.Close(); err != nil {
		s.logger.WithError(err).Warn("Error closing connection")
	}
}
