/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
)

const (
	// DatabaseURLFlagName is the database url.
	DatabaseURLFlagName = "database-url"
	// DatabaseURLFlagUsage describes the usage.
	DatabaseURLFlagUsage = "Database URL with credentials if required." +
		" Format must be <driver>:[//]<driver-specific-dsn>." +
		" Examples: 'mem://vctrust', 'mongodb://mongodb.example.com:27017'." +
		" Supported drivers are [mem, mongodb]. Defaults to mem." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseURLEnvKey
	// DatabaseURLEnvKey is the databaes url.
	DatabaseURLEnvKey = "DATABASE_URL"

	// DatabaseTimeoutFlagName is the database timeout.
	DatabaseTimeoutFlagName = "database-timeout"
	// DatabaseTimeoutFlagUsage describes the usage.
	DatabaseTimeoutFlagUsage = "Total time in seconds to wait until the datasource is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTimeoutEnvKey
	// DatabaseTimeoutEnvKey is the database timeout.
	DatabaseTimeoutEnvKey = "DATABASE_TIMEOUT"

	// DatabasePrefixFlagName is the storage prefix.
	DatabasePrefixFlagName = "database-prefix"
	// DatabasePrefixEnvKey is the storage prefix.
	DatabasePrefixEnvKey = "DATABASE_PREFIX"
	// DatabasePrefixFlagUsage describes the usage.
	DatabasePrefixFlagUsage = "An optional prefix to be used when creating and retrieving underlying databases. " +
		"Alternatively, this can be set with the following environment variable: " + DatabasePrefixEnvKey

	// DatabaseTimeoutDefault is the default storage timeout.
	DatabaseTimeoutDefault = 30
	// DatabasePrefixDefault names the database when no prefix is set.
	DatabasePrefixDefault = "vctrust"
)

// Driver is the persistence backend selected by the scheme of the database URL.
type Driver string

const (
	DriverMem     Driver = "mem"
	DriverMongoDB Driver = "mongodb"
)

// DBParameters holds database configuration.
type DBParameters struct {
	Driver  Driver
	URL     string
	Prefix  string
	Timeout uint64
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(DatabaseURLFlagName, "", "", DatabaseURLFlagUsage)
	cmd.Flags().StringP(DatabasePrefixFlagName, "", "", DatabasePrefixFlagUsage)
	cmd.Flags().StringP(DatabaseTimeoutFlagName, "", "", DatabaseTimeoutFlagUsage)
}

// DBParams fetches the DB parameters configured for this command.
func DBParams(cmd *cobra.Command) (*DBParameters, error) {
	var err error

	params := &DBParameters{
		URL:    cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseURLFlagName, DatabaseURLEnvKey),
		Prefix: cmdutils.GetUserSetOptionalVarFromString(cmd, DatabasePrefixFlagName, DatabasePrefixEnvKey),
	}

	if params.URL == "" {
		params.URL = string(DriverMem) + "://" + DatabasePrefixDefault
	}

	if params.Prefix == "" {
		params.Prefix = DatabasePrefixDefault
	}

	params.Driver, err = parseDriver(params.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure dbURL: %w", err)
	}

	timeout := cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseTimeoutFlagName, DatabaseTimeoutEnvKey)
	if timeout == "" {
		timeout = strconv.Itoa(DatabaseTimeoutDefault)
	}

	params.Timeout, err = strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dbTimeout %s: %w", timeout, err)
	}

	return params, nil
}

func parseDriver(u string) (Driver, error) {
	const urlParts = 2

	parsed := strings.SplitN(u, ":", urlParts)

	if len(parsed) != urlParts {
		return "", fmt.Errorf("invalid dbURL %s", u)
	}

	switch driver := Driver(parsed[0]); driver {
	case DriverMem, DriverMongoDB:
		return driver, nil
	default:
		return "", fmt.Errorf("unsupported storage driver: %s", driver)
	}
}

// Retry runs task until it succeeds, sleeping one second between at most numRetries retries.
func Retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to storage, will sleep before trying again.",
				logfields.WithSleep(t), log.WithError(retryErr))
		},
	)
}
